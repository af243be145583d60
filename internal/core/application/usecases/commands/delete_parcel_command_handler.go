package commands

import (
	"context"
)

// DeleteParcelCommandHandler handles parcel removal. Parcels have no
// lifecycle; the record and its quote are simply discarded.
type DeleteParcelCommandHandler struct {
	uowFactory ParcelUoWFactory
}

// NewDeleteParcelCommandHandler creates a handler for parcel deletion.
func NewDeleteParcelCommandHandler(uowFactory ParcelUoWFactory) DeleteParcelCommandHandler {
	return DeleteParcelCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the parcel deletion command.
func (h *DeleteParcelCommandHandler) Handle(ctx context.Context, cmd DeleteParcelCommand) error {
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

	parcelRepo := uow.ParcelRepository()
	aggregate, err := parcelRepo.Get(ctx, cmd.ParcelID())
	if err != nil {
		return err
	}

	if err = parcelRepo.Delete(ctx, aggregate.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
