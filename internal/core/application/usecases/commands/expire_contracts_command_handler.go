package commands

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/contract"
	"marketplace/internal/core/domain/model/kernel"
)

// ExpireContractsCommandHandler sweeps active contracts whose end date has
// passed and expires them through the same capability table as a manual
// transition, acting as the admin role. The manual path remains primary; the
// sweep only catches contracts nobody expired by hand.
type ExpireContractsCommandHandler struct {
	uowFactory ContractUoWFactory
	now        func() time.Time
}

// NewExpireContractsCommandHandler creates a handler for the expiry sweep.
func NewExpireContractsCommandHandler(uowFactory ContractUoWFactory) ExpireContractsCommandHandler {
	return ExpireContractsCommandHandler{
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

// Handle runs one expiry sweep and returns the number of contracts expired.
func (h *ExpireContractsCommandHandler) Handle(ctx context.Context, cmd ExpireContractsCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	now := h.now()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	contractRepo := uow.ContractRepository()
	expired, err := contractRepo.GetActiveExpiredBefore(ctx, now)
	if err != nil {
		return 0, err
	}

	var count int
	for _, aggregate := range expired {
		if !aggregate.IsExpirable(now) {
			continue
		}
		if err = aggregate.TransitionTo(contract.Expired, kernel.RoleAdmin, now); err != nil {
			return 0, err
		}
		if err = contractRepo.Update(ctx, aggregate); err != nil {
			return 0, err
		}
		count++
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return count, nil
}
