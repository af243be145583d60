package commands

import (
	"context"
)

// UpdateContractDraftCommandHandler handles contract draft edits. Drafts are
// the only mutable stage; the aggregate rejects everything later.
type UpdateContractDraftCommandHandler struct {
	uowFactory ContractUoWFactory
}

// NewUpdateContractDraftCommandHandler creates a handler for draft updates.
func NewUpdateContractDraftCommandHandler(uowFactory ContractUoWFactory) UpdateContractDraftCommandHandler {
	return UpdateContractDraftCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the draft update command.
func (h *UpdateContractDraftCommandHandler) Handle(ctx context.Context, cmd UpdateContractDraftCommand) error {
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

	if err = aggregate.UpdateDraft(cmd.Title(), cmd.Value(), cmd.Currency(), cmd.Actor()); err != nil {
		return err
	}

	if err = contractRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
