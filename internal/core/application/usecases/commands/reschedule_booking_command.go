package commands

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrRescheduleBookingCommandIsNotConstructed = errors.New(
	"RescheduleBookingCommand must be created via NewRescheduleBookingCommand constructor",
)

// RescheduleBookingCommand represents a request to move a pending booking to a
// new start instant, keeping its duration.
type RescheduleBookingCommand struct { //nolint:recvcheck //using for validation
	bookingID kernel.UUID
	newStart  time.Time
	actor     kernel.Role

	guard guard.ConstructorGuard
}

// NewRescheduleBookingCommand creates a booking reschedule command.
func NewRescheduleBookingCommand(
	bookingID kernel.UUID,
	newStart time.Time,
	actor kernel.Role,
) (RescheduleBookingCommand, error) {
	rescheduleCommand := RescheduleBookingCommand{
		guard: guard.NewConstructorGuard(),
	}

	if newStart.IsZero() {
		return RescheduleBookingCommand{}, errs.NewValueIsRequiredError("scheduledAt")
	}
	if err := errors.Join(bookingID.Validate(), actor.Validate()); err != nil {
		return RescheduleBookingCommand{}, err
	}

	rescheduleCommand.bookingID = bookingID
	rescheduleCommand.newStart = newStart
	rescheduleCommand.actor = actor
	return rescheduleCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c RescheduleBookingCommand) Validate() error {
	return c.guard.Validate(ErrRescheduleBookingCommandIsNotConstructed)
}

// BookingID returns the identifier of the booking to reschedule.
func (c RescheduleBookingCommand) BookingID() kernel.UUID {
	return c.bookingID
}

// NewStart returns the requested new start instant.
func (c RescheduleBookingCommand) NewStart() time.Time {
	return c.newStart
}

// Actor returns the role requesting the reschedule.
func (c RescheduleBookingCommand) Actor() kernel.Role {
	return c.actor
}
