// Package ports defines repository interfaces for the reservation domain.
// These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"marketplace/internal/core/domain/model/booking"
	"marketplace/internal/core/domain/model/kernel"
)

// BookingRepository defines the persistence contract for booking aggregates.
type BookingRepository interface {
	// Add persists a new booking aggregate to storage.
	// The booking must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *booking.Booking) error

	// Update persists changes to an existing booking aggregate.
	Update(ctx context.Context, aggregate *booking.Booking) error

	// Get retrieves a booking aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*booking.Booking, error)

	// GetActiveByProviderForUpdate retrieves all non-terminal bookings for a
	// provider, locking the matched rows for the duration of the transaction.
	// The conflict check runs over this set; the lock prevents two concurrent
	// reservations from both passing the check and double-booking the slot.
	GetActiveByProviderForUpdate(ctx context.Context, providerID kernel.UUID) ([]*booking.Booking, error)
}
