package queries

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var (
	ErrGetAvailableBoxesQueryIsNotConstructed = errors.New(
		"GetAvailableBoxesQuery must be created via NewGetAvailableBoxesQuery constructor",
	)
)

// GetAvailableBoxesQuery retrieves all storage boxes currently open for rental.
// Boxes held by a pending or active rental are excluded.
//
// Example:
//
//	query := NewGetAvailableBoxesQuery()
//	handler := NewGetAvailableBoxesQueryHandler(db)
//
//	boxes, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get available boxes: %w", err)
//	}
//
//	fmt.Printf("Found %d available boxes\n", len(boxes))
type GetAvailableBoxesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAvailableBoxesQuery creates a query to retrieve available boxes.
// This is a parameterless query; availability is determined by box status.
func NewGetAvailableBoxesQuery() GetAvailableBoxesQuery {
	return GetAvailableBoxesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAvailableBoxesQueryIsNotConstructed if validation fails.
func (q GetAvailableBoxesQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailableBoxesQueryIsNotConstructed)
}

// GetAvailableBoxesQueryResponse represents an available storage box.
type GetAvailableBoxesQueryResponse struct {
	ID          kernel.UUID
	Location    string
	Size        string
	PricePerDay float64
}
