package commands

import (
	"context"
)

// TransitionBookingCommandHandler handles booking lifecycle transitions:
// confirm, start, complete and cancel all travel through the same capability
// table inside the aggregate.
type TransitionBookingCommandHandler struct {
	uowFactory BookingUoWFactory
}

// NewTransitionBookingCommandHandler creates a handler for booking transitions.
func NewTransitionBookingCommandHandler(uowFactory BookingUoWFactory) TransitionBookingCommandHandler {
	return TransitionBookingCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the booking transition command. The aggregate rejects the
// request untouched when the edge or the role is not allowed, so a failed
// transition never leaves partial state.
func (h *TransitionBookingCommandHandler) Handle(ctx context.Context, cmd TransitionBookingCommand) error {
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

	if err = aggregate.TransitionTo(cmd.Target(), cmd.Actor()); err != nil {
		return err
	}

	if err = bookingRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
