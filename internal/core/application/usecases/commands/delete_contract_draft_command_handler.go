package commands

import (
	"context"
)

// DeleteContractDraftCommandHandler handles contract draft deletion. Only
// drafts are deletable; anything sent for signature is permanent record.
type DeleteContractDraftCommandHandler struct {
	uowFactory ContractUoWFactory
}

// NewDeleteContractDraftCommandHandler creates a handler for draft deletion.
func NewDeleteContractDraftCommandHandler(uowFactory ContractUoWFactory) DeleteContractDraftCommandHandler {
	return DeleteContractDraftCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the draft deletion command.
func (h *DeleteContractDraftCommandHandler) Handle(ctx context.Context, cmd DeleteContractDraftCommand) error {
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

	if err = aggregate.CanDelete(); err != nil {
		return err
	}

	if err = contractRepo.Delete(ctx, aggregate.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
