package commands

import (
	"context"
	"time"
)

// TransitionContractCommandHandler handles contract lifecycle transitions.
// Signing records the signature instant on the aggregate.
type TransitionContractCommandHandler struct {
	uowFactory ContractUoWFactory
	now        func() time.Time
}

// NewTransitionContractCommandHandler creates a handler for contract transitions.
func NewTransitionContractCommandHandler(uowFactory ContractUoWFactory) TransitionContractCommandHandler {
	return TransitionContractCommandHandler{
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

// Handle processes the contract transition command.
func (h *TransitionContractCommandHandler) Handle(ctx context.Context, cmd TransitionContractCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	contractRepo := uow.ContractRepository()
	aggregate, err := contractRepo.Get(ctx, cmd.ContractID())
	if err != nil {
		return err
	}

	if err = aggregate.TransitionTo(cmd.Target(), cmd.Actor(), h.now()); err != nil {
		return err
	}

	if err = contractRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
