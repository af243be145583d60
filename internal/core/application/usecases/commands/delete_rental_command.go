package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrDeleteRentalCommandIsNotConstructed = errors.New(
	"DeleteRentalCommand must be created via NewDeleteRentalCommand constructor",
)

// DeleteRentalCommand represents a request to remove a rental record. Running
// rentals cannot be removed; the aggregate's CanDelete decides.
type DeleteRentalCommand struct { //nolint:recvcheck //using for validation
	rentalID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteRentalCommand creates a rental deletion command.
func NewDeleteRentalCommand(rentalID kernel.UUID) (DeleteRentalCommand, error) {
	deleteCommand := DeleteRentalCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := rentalID.Validate(); err != nil {
		return DeleteRentalCommand{}, err
	}

	deleteCommand.rentalID = rentalID
	return deleteCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteRentalCommand) Validate() error {
	return c.guard.Validate(ErrDeleteRentalCommandIsNotConstructed)
}

// RentalID returns the identifier of the rental to delete.
func (c DeleteRentalCommand) RentalID() kernel.UUID {
	return c.rentalID
}
