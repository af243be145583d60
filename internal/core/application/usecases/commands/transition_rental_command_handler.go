package commands

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/rental"
)

// TransitionRentalCommandHandler handles rental lifecycle transitions and
// mirrors the outcome onto the storage box: a rental that stops holding its
// box (cancelled or completed) releases it inside the same transaction.
type TransitionRentalCommandHandler struct {
	uowFactory RentalUoWFactory
	now        func() time.Time
}

// NewTransitionRentalCommandHandler creates a handler for rental transitions.
func NewTransitionRentalCommandHandler(uowFactory RentalUoWFactory) TransitionRentalCommandHandler {
	return TransitionRentalCommandHandler{
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

// Handle processes the rental transition command. Completion settles the cost:
// an open end date is fixed to the current instant before the recompute.
func (h *TransitionRentalCommandHandler) Handle(ctx context.Context, cmd TransitionRentalCommand) error {
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

	heldBox := aggregate.Status().HoldsBox()

	if cmd.Target() == rental.Completed {
		err = aggregate.Complete(h.now(), cmd.Actor())
	} else {
		err = aggregate.TransitionTo(cmd.Target(), cmd.Actor())
	}
	if err != nil {
		return err
	}

	if err = rentalRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if heldBox && !aggregate.Status().HoldsBox() {
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
