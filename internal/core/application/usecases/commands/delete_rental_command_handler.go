package commands

import (
	"context"
)

// DeleteRentalCommandHandler handles rental record removal. An Active rental
// cannot be removed. A Pending rental still holds its box, so the box is
// released in the same transaction; terminal rentals already let it go.
type DeleteRentalCommandHandler struct {
	uowFactory RentalUoWFactory
}

// NewDeleteRentalCommandHandler creates a handler for rental deletion.
func NewDeleteRentalCommandHandler(uowFactory RentalUoWFactory) DeleteRentalCommandHandler {
	return DeleteRentalCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the rental deletion command.
func (h *DeleteRentalCommandHandler) Handle(ctx context.Context, cmd DeleteRentalCommand) error {
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

	rentalRepo := uow.RentalRepository()
	aggregate, err := rentalRepo.Get(ctx, cmd.RentalID())
	if err != nil {
		return err
	}

	if err = aggregate.CanDelete(); err != nil {
		return err
	}

	heldBox := aggregate.Status().HoldsBox()

	if err = rentalRepo.Delete(ctx, aggregate.ID()); err != nil {
		return err
	}

	if heldBox {
		boxRepo := uow.StorageBoxRepository()
		box, boxErr := boxRepo.GetForUpdate(ctx, aggregate.StorageBoxID())
		if boxErr != nil {
			return boxErr
		}
		if boxErr = box.Release(); boxErr != nil {
			return boxErr
		}
		if boxErr = boxRepo.Update(ctx, box); boxErr != nil {
			return boxErr
		}
	}

	return uow.Commit(ctx)
}
