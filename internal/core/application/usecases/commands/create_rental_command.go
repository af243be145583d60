package commands

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrCreateRentalCommandIsNotConstructed = errors.New(
	"CreateRentalCommand must be created via NewCreateRentalCommand constructor",
)

// CreateRentalCommand represents a user's request to rent a storage box over a
// period. The end date is optional: open-ended rentals settle their cost at
// completion.
type CreateRentalCommand struct { //nolint:recvcheck //using for validation
	rentalID     kernel.UUID
	userID       kernel.UUID
	storageBoxID kernel.UUID
	startDate    time.Time
	endDate      *time.Time

	guard guard.ConstructorGuard
}

// NewCreateRentalCommand creates a command to rent a storage box.
func NewCreateRentalCommand(
	rentalID, userID, storageBoxID kernel.UUID,
	startDate time.Time,
	endDate *time.Time,
) (CreateRentalCommand, error) {
	rentalCommand := CreateRentalCommand{
		guard: guard.NewConstructorGuard(),
	}

	if storageBoxID.Validate() != nil {
		return CreateRentalCommand{}, errs.NewValueIsRequiredError("storageBoxId")
	}
	if err := errors.Join(rentalID.Validate(), userID.Validate()); err != nil {
		return CreateRentalCommand{}, err
	}
	if startDate.IsZero() {
		return CreateRentalCommand{}, errs.NewValueIsRequiredError("startDate")
	}

	rentalCommand.rentalID = rentalID
	rentalCommand.userID = userID
	rentalCommand.storageBoxID = storageBoxID
	rentalCommand.startDate = startDate
	rentalCommand.endDate = endDate
	return rentalCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateRentalCommand) Validate() error {
	return c.guard.Validate(ErrCreateRentalCommandIsNotConstructed)
}

// RentalID returns the identifier for the new rental.
func (c CreateRentalCommand) RentalID() kernel.UUID {
	return c.rentalID
}

// UserID returns the identifier of the renting user.
func (c CreateRentalCommand) UserID() kernel.UUID {
	return c.userID
}

// StorageBoxID returns the identifier of the requested box.
func (c CreateRentalCommand) StorageBoxID() kernel.UUID {
	return c.storageBoxID
}

// StartDate returns the rental start.
func (c CreateRentalCommand) StartDate() time.Time {
	return c.startDate
}

// EndDate returns the optional rental end.
func (c CreateRentalCommand) EndDate() *time.Time {
	return c.endDate
}
