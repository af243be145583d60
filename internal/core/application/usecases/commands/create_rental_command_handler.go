package commands

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/rental"
	"marketplace/internal/pkg/errs"
)

// CreateRentalCommandHandler handles the business logic for renting a box.
//
// The box row is read FOR UPDATE, so the availability check and the status
// flip to Rented are atomic: two concurrent requests for the same box
// serialize on the row lock and the loser observes the box already rented.
// The holding rentals are checked as well, so a drifted mirror status can
// never hand out a box that a Pending or Active rental still claims.
type CreateRentalCommandHandler struct {
	uowFactory RentalUoWFactory
}

// NewCreateRentalCommandHandler creates a handler for rental creation operations.
func NewCreateRentalCommandHandler(uowFactory RentalUoWFactory) CreateRentalCommandHandler {
	return CreateRentalCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the rental creation command. The rental snapshots the box's
// current price per day, so later box repricing does not affect it.
func (h *CreateRentalCommandHandler) Handle(ctx context.Context, cmd CreateRentalCommand) error {
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

	boxRepo := uow.StorageBoxRepository()
	box, err := boxRepo.GetForUpdate(ctx, cmd.StorageBoxID())
	if err != nil {
		return err
	}

	rentalRepo := uow.RentalRepository()
	holding, err := rentalRepo.GetHoldingByBoxForUpdate(ctx, cmd.StorageBoxID())
	if err != nil {
		return err
	}
	if len(holding) > 0 {
		return errs.NewResourceConflictErrorWithCause("storageBox", cmd.StorageBoxID().String(),
			errors.New("the box is already held by a rental"))
	}

	if err = box.MarkRented(); err != nil {
		return err
	}

	newRental, err := rental.NewRental(
		cmd.RentalID(), cmd.UserID(), cmd.StorageBoxID(),
		cmd.StartDate(), cmd.EndDate(), box.PricePerDay())
	if err != nil {
		return err
	}

	if err = rentalRepo.Add(ctx, newRental); err != nil {
		return err
	}
	if err = boxRepo.Update(ctx, box); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
