package commands

import (
	"context"
	"time"

	"marketplace/internal/core/domain/services"
)

// RescheduleBookingCommandHandler handles booking reschedules: the shifted
// window is re-checked against the provider's calendar (ignoring the booking
// being moved) before the aggregate accepts the new start.
type RescheduleBookingCommandHandler struct {
	scheduler  services.BookingScheduler
	uowFactory BookingUoWFactory
	now        func() time.Time
}

// NewRescheduleBookingCommandHandler creates a handler for booking reschedules.
func NewRescheduleBookingCommandHandler(
	scheduler services.BookingScheduler,
	uowFactory BookingUoWFactory,
) RescheduleBookingCommandHandler {
	return RescheduleBookingCommandHandler{
		scheduler:  scheduler,
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

// Handle processes the reschedule command.
func (h *RescheduleBookingCommandHandler) Handle(ctx context.Context, cmd RescheduleBookingCommand) error {
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

	shifted, err := aggregate.Window().Shift(cmd.NewStart())
	if err != nil {
		return err
	}

	active, err := bookingRepo.GetActiveByProviderForUpdate(ctx, aggregate.ProviderID())
	if err != nil {
		return err
	}

	if err = h.scheduler.EnsureSlotFree(shifted, h.now(), active, aggregate.ID()); err != nil {
		return err
	}

	if err = aggregate.Reschedule(cmd.NewStart(), h.now(), cmd.Actor()); err != nil {
		return err
	}

	if err = bookingRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
