package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/storagebox"
)

// StorageBoxRepository defines the persistence contract for storage boxes.
type StorageBoxRepository interface {
	// Add persists a new storage box to storage.
	Add(ctx context.Context, aggregate *storagebox.StorageBox) error

	// Update persists changes to an existing storage box.
	Update(ctx context.Context, aggregate *storagebox.StorageBox) error

	// Get retrieves a storage box by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*storagebox.StorageBox, error)

	// GetForUpdate retrieves a storage box by identifier, locking its row for
	// the duration of the transaction. Used by the rental lifecycle to make the
	// availability check-then-flip atomic under concurrency.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*storagebox.StorageBox, error)
}
