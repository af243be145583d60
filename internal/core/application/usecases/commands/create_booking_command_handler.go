package commands

import (
	"context"
	"errors"
	"time"

	"marketplace/internal/core/domain/model/booking"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"
)

// CreateBookingCommandHandler handles the business logic for booking creation.
//
// The flow is: resolve the service from the catalog, build the requested time
// window, lock the provider's active bookings, run the conflict check, snapshot
// the service price into the new booking and persist it — all in one
// transaction, so two concurrent requests cannot both win the same slot.
type CreateBookingCommandHandler struct {
	catalog    ports.ServiceCatalog
	scheduler  services.BookingScheduler
	uowFactory BookingUoWFactory
	now        func() time.Time
}

// NewCreateBookingCommandHandler creates a handler for booking creation operations.
func NewCreateBookingCommandHandler(
	catalog ports.ServiceCatalog,
	scheduler services.BookingScheduler,
	uowFactory BookingUoWFactory,
) CreateBookingCommandHandler {
	return CreateBookingCommandHandler{
		catalog:    catalog,
		scheduler:  scheduler,
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

// Handle processes the booking creation command.
func (h *CreateBookingCommandHandler) Handle(ctx context.Context, cmd CreateBookingCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	service, err := h.catalog.GetService(ctx, cmd.ServiceID())
	if err != nil {
		return err
	}
	if !service.Active {
		return errs.NewResourceConflictErrorWithCause("service", cmd.ServiceID().String(),
			errors.New("service is not active"))
	}

	durationMinutes := cmd.DurationMinutes()
	if durationMinutes == 0 {
		durationMinutes = service.DefaultDuration
	}

	window, err := kernel.NewTimeWindow(cmd.ScheduledAt(), time.Duration(durationMinutes)*time.Minute)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	bookingRepo := uow.BookingRepository()
	active, err := bookingRepo.GetActiveByProviderForUpdate(ctx, service.ProviderID)
	if err != nil {
		return err
	}

	var noIgnore kernel.UUID
	if err = h.scheduler.EnsureSlotFree(window, h.now(), active, noIgnore); err != nil {
		return err
	}

	newBooking, err := booking.NewBooking(
		cmd.BookingID(), cmd.ServiceID(), cmd.CustomerID(), service.ProviderID,
		window, service.Price)
	if err != nil {
		return err
	}

	if err = bookingRepo.Add(ctx, newBooking); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
