package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/rental"
	"marketplace/internal/pkg/guard"
)

var ErrTransitionRentalCommandIsNotConstructed = errors.New(
	"TransitionRentalCommand must be created via NewTransitionRentalCommand constructor",
)

// TransitionRentalCommand represents a request to move a rental to a target
// status: approve, cancel or complete. Reaching a terminal status releases the
// held storage box in the same transaction.
type TransitionRentalCommand struct { //nolint:recvcheck //using for validation
	rentalID kernel.UUID
	target   rental.Status
	actor    kernel.Role

	guard guard.ConstructorGuard
}

// NewTransitionRentalCommand creates a rental transition command.
func NewTransitionRentalCommand(
	rentalID kernel.UUID,
	target rental.Status,
	actor kernel.Role,
) (TransitionRentalCommand, error) {
	transitionCommand := TransitionRentalCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		rentalID.Validate(),
		target.Validate(),
		actor.Validate(),
	); err != nil {
		return TransitionRentalCommand{}, err
	}

	transitionCommand.rentalID = rentalID
	transitionCommand.target = target
	transitionCommand.actor = actor
	return transitionCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c TransitionRentalCommand) Validate() error {
	return c.guard.Validate(ErrTransitionRentalCommandIsNotConstructed)
}

// RentalID returns the identifier of the rental to transition.
func (c TransitionRentalCommand) RentalID() kernel.UUID {
	return c.rentalID
}

// Target returns the requested target status.
func (c TransitionRentalCommand) Target() rental.Status {
	return c.target
}

// Actor returns the role requesting the transition.
func (c TransitionRentalCommand) Actor() kernel.Role {
	return c.actor
}
