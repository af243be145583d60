package ports

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/contract"
	"marketplace/internal/core/domain/model/kernel"
)

// ContractRepository defines the persistence contract for merchant contracts.
type ContractRepository interface {
	// Add persists a new contract aggregate to storage.
	Add(ctx context.Context, aggregate *contract.Contract) error

	// Update persists changes to an existing contract aggregate.
	Update(ctx context.Context, aggregate *contract.Contract) error

	// Get retrieves a contract aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*contract.Contract, error)

	// Delete removes a contract. Callers check the aggregate's CanDelete first.
	Delete(ctx context.Context, id kernel.UUID) error

	// GetActiveExpiredBefore retrieves active contracts whose end date lies
	// before the given instant. Used by the expiry sweep.
	GetActiveExpiredBefore(ctx context.Context, deadline time.Time) ([]*contract.Contract, error)
}
