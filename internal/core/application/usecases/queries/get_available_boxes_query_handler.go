package queries

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/storagebox"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAvailableBoxesQueryHandler retrieves rentable storage boxes from the
// database. Uses direct SQL for optimal read performance in the CQRS pattern.
//
// Example:
//
//	handler := NewGetAvailableBoxesQueryHandler(db)
//	query := NewGetAvailableBoxesQuery()
//
//	boxes, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get available boxes: %v", err)
//	    return err
//	}
type GetAvailableBoxesQueryHandler struct {
	db *gorm.DB
}

// NewGetAvailableBoxesQueryHandler creates a handler for available box queries.
// Requires a GORM database connection for query execution.
func NewGetAvailableBoxesQueryHandler(db *gorm.DB) GetAvailableBoxesQueryHandler {
	return GetAvailableBoxesQueryHandler{db: db}
}

// Handle executes the query to retrieve all available storage boxes.
// Results are sorted by location for consistent output.
func (h GetAvailableBoxesQueryHandler) Handle(
	ctx context.Context,
	query GetAvailableBoxesQuery,
) ([]GetAvailableBoxesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	boxes := make([]GetAvailableBoxesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			location,
			size,
			price_per_day
		FROM storage_boxes
		WHERE status = ?
		ORDER BY location
	`, storagebox.Available).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var box GetAvailableBoxesQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&box.Location,
			&box.Size,
			&box.PricePerDay,
		)
		if err != nil {
			return nil, err
		}

		boxID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		box.ID = boxID
		boxes = append(boxes, box)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return boxes, nil
}
