package commands

import (
	"context"
)

// RateBookingCommandHandler handles post-completion booking ratings.
type RateBookingCommandHandler struct {
	uowFactory BookingUoWFactory
}

// NewRateBookingCommandHandler creates a handler for booking ratings.
func NewRateBookingCommandHandler(uowFactory BookingUoWFactory) RateBookingCommandHandler {
	return RateBookingCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the rating command. The aggregate enforces customer-only,
// completed-only, rate-once semantics; a duplicate rating surfaces as a
// resource conflict.
func (h *RateBookingCommandHandler) Handle(ctx context.Context, cmd RateBookingCommand) error {
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

	bookingRepo := uow.BookingRepository()
	aggregate, err := bookingRepo.Get(ctx, cmd.BookingID())
	if err != nil {
		return err
	}

	if err = aggregate.SetRating(cmd.Rating(), cmd.Review(), cmd.Actor()); err != nil {
		return err
	}

	if err = bookingRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
