package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrDeleteParcelCommandIsNotConstructed = errors.New(
	"DeleteParcelCommand must be created via NewDeleteParcelCommand constructor",
)

// DeleteParcelCommand represents a request to remove a parcel and its quote.
type DeleteParcelCommand struct { //nolint:recvcheck //using for validation
	parcelID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteParcelCommand creates a parcel deletion command.
func NewDeleteParcelCommand(parcelID kernel.UUID) (DeleteParcelCommand, error) {
	deleteCommand := DeleteParcelCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := parcelID.Validate(); err != nil {
		return DeleteParcelCommand{}, err
	}

	deleteCommand.parcelID = parcelID
	return deleteCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteParcelCommand) Validate() error {
	return c.guard.Validate(ErrDeleteParcelCommandIsNotConstructed)
}

// ParcelID returns the identifier of the parcel to delete.
func (c DeleteParcelCommand) ParcelID() kernel.UUID {
	return c.parcelID
}
