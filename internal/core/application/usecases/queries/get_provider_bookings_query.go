package queries

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var (
	ErrGetProviderBookingsQueryIsNotConstructed = errors.New(
		"GetProviderBookingsQuery must be created via NewGetProviderBookingsQuery constructor",
	)
)

// GetProviderBookingsQuery retrieves all bookings scheduled against a provider,
// for agenda views and conflict inspection.
//
// Example:
//
//	query, err := NewGetProviderBookingsQuery(providerID)
//	if err != nil {
//	    return err
//	}
//
//	bookings, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get provider bookings: %w", err)
//	}
type GetProviderBookingsQuery struct {
	providerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetProviderBookingsQuery creates a query for a provider's bookings.
// Returns an error if the provider ID is invalid.
func NewGetProviderBookingsQuery(providerID kernel.UUID) (GetProviderBookingsQuery, error) {
	if err := providerID.Validate(); err != nil {
		return GetProviderBookingsQuery{}, err
	}

	return GetProviderBookingsQuery{
		providerID: providerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// ProviderID returns the provider whose bookings are requested.
func (q GetProviderBookingsQuery) ProviderID() kernel.UUID {
	return q.providerID
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetProviderBookingsQueryIsNotConstructed if validation fails.
func (q GetProviderBookingsQuery) Validate() error {
	return q.guard.Validate(ErrGetProviderBookingsQueryIsNotConstructed)
}

// GetProviderBookingsQueryResponse represents one booking on a provider's agenda.
type GetProviderBookingsQueryResponse struct {
	ID              kernel.UUID
	ServiceID       kernel.UUID
	CustomerID      kernel.UUID
	StartsAt        time.Time
	DurationMinutes int
	Price           float64
	Status          string
	Rating          *int
}
