package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/rental"
)

// RentalRepository defines the persistence contract for box rental aggregates.
type RentalRepository interface {
	// Add persists a new rental aggregate to storage.
	Add(ctx context.Context, aggregate *rental.Rental) error

	// Update persists changes to an existing rental aggregate.
	Update(ctx context.Context, aggregate *rental.Rental) error

	// Get retrieves a rental aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*rental.Rental, error)

	// Delete removes a rental. Callers check the aggregate's CanDelete first.
	Delete(ctx context.Context, id kernel.UUID) error

	// GetHoldingByBoxForUpdate retrieves the rentals currently holding the given
	// box (Pending or Active), locking the matched rows. Together with the box
	// row lock this serializes concurrent claims on the same box.
	GetHoldingByBoxForUpdate(ctx context.Context, storageBoxID kernel.UUID) ([]*rental.Rental, error)
}
