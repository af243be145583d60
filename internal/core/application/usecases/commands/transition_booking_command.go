package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/booking"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrTransitionBookingCommandIsNotConstructed = errors.New(
	"TransitionBookingCommand must be created via NewTransitionBookingCommand constructor",
)

// TransitionBookingCommand represents a request to move a booking to a target
// status on behalf of an acting role. Whether the edge is legal for that role
// is decided by the aggregate's capability table, not here.
type TransitionBookingCommand struct { //nolint:recvcheck //using for validation
	bookingID kernel.UUID
	target    booking.Status
	actor     kernel.Role

	guard guard.ConstructorGuard
}

// NewTransitionBookingCommand creates a booking transition command.
func NewTransitionBookingCommand(
	bookingID kernel.UUID,
	target booking.Status,
	actor kernel.Role,
) (TransitionBookingCommand, error) {
	transitionCommand := TransitionBookingCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		bookingID.Validate(),
		target.Validate(),
		actor.Validate(),
	); err != nil {
		return TransitionBookingCommand{}, err
	}

	transitionCommand.bookingID = bookingID
	transitionCommand.target = target
	transitionCommand.actor = actor
	return transitionCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c TransitionBookingCommand) Validate() error {
	return c.guard.Validate(ErrTransitionBookingCommandIsNotConstructed)
}

// BookingID returns the identifier of the booking to transition.
func (c TransitionBookingCommand) BookingID() kernel.UUID {
	return c.bookingID
}

// Target returns the requested target status.
func (c TransitionBookingCommand) Target() booking.Status {
	return c.target
}

// Actor returns the role requesting the transition.
func (c TransitionBookingCommand) Actor() kernel.Role {
	return c.actor
}
