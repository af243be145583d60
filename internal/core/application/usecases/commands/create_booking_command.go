package commands

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrCreateBookingCommandIsNotConstructed = errors.New(
	"CreateBookingCommand must be created via NewCreateBookingCommand constructor",
)

// CreateBookingCommand represents a customer's request to reserve a service
// slot. The duration is optional: zero means "use the service's default".
type CreateBookingCommand struct { //nolint:recvcheck //using for validation
	bookingID       kernel.UUID
	serviceID       kernel.UUID
	customerID      kernel.UUID
	scheduledAt     time.Time
	durationMinutes int

	guard guard.ConstructorGuard
}

// NewCreateBookingCommand creates a command to reserve a service slot.
// The scheduled instant must be set; whether it lies in the future is checked
// by the scheduler against the transaction's clock, not here.
func NewCreateBookingCommand(
	bookingID, serviceID, customerID kernel.UUID,
	scheduledAt time.Time,
	durationMinutes int,
) (CreateBookingCommand, error) {
	bookingCommand := CreateBookingCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		bookingCommand.setIDs(bookingID, serviceID, customerID),
		bookingCommand.setSchedule(scheduledAt, durationMinutes),
	); err != nil {
		return CreateBookingCommand{}, err
	}

	return bookingCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateBookingCommand) Validate() error {
	return c.guard.Validate(ErrCreateBookingCommandIsNotConstructed)
}

// BookingID returns the identifier for the new booking.
func (c CreateBookingCommand) BookingID() kernel.UUID {
	return c.bookingID
}

// ServiceID returns the identifier of the service being booked.
func (c CreateBookingCommand) ServiceID() kernel.UUID {
	return c.serviceID
}

// CustomerID returns the identifier of the requesting customer.
func (c CreateBookingCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// ScheduledAt returns the requested start instant.
func (c CreateBookingCommand) ScheduledAt() time.Time {
	return c.scheduledAt
}

// DurationMinutes returns the requested duration, zero for the service default.
func (c CreateBookingCommand) DurationMinutes() int {
	return c.durationMinutes
}

func (c *CreateBookingCommand) setIDs(bookingID, serviceID, customerID kernel.UUID) error {
	if err := errors.Join(
		bookingID.Validate(),
		serviceID.Validate(),
		customerID.Validate(),
	); err != nil {
		return err
	}

	c.bookingID = bookingID
	c.serviceID = serviceID
	c.customerID = customerID
	return nil
}

func (c *CreateBookingCommand) setSchedule(scheduledAt time.Time, durationMinutes int) error {
	if scheduledAt.IsZero() {
		return errs.NewValueIsRequiredError("scheduledAt")
	}
	if durationMinutes < 0 {
		return errs.NewValueIsOutOfRangeError("durationMinutes", durationMinutes, 0, nil)
	}

	c.scheduledAt = scheduledAt
	c.durationMinutes = durationMinutes
	return nil
}
