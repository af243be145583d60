package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrUpdateContractDraftCommandIsNotConstructed = errors.New(
	"UpdateContractDraftCommand must be created via NewUpdateContractDraftCommand constructor",
)

// UpdateContractDraftCommand represents a request to replace the terms of a
// contract still in draft.
type UpdateContractDraftCommand struct { //nolint:recvcheck //using for validation
	contractID kernel.UUID
	title      string
	value      float64
	currency   string
	actor      kernel.Role

	guard guard.ConstructorGuard
}

// NewUpdateContractDraftCommand creates a draft update command.
func NewUpdateContractDraftCommand(
	contractID kernel.UUID,
	title string,
	value float64,
	currency string,
	actor kernel.Role,
) (UpdateContractDraftCommand, error) {
	updateCommand := UpdateContractDraftCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(contractID.Validate(), actor.Validate()); err != nil {
		return UpdateContractDraftCommand{}, err
	}
	if title == "" {
		return UpdateContractDraftCommand{}, errs.NewValueIsRequiredError("title")
	}
	if currency == "" {
		return UpdateContractDraftCommand{}, errs.NewValueIsRequiredError("currency")
	}

	updateCommand.contractID = contractID
	updateCommand.title = title
	updateCommand.value = value
	updateCommand.currency = currency
	updateCommand.actor = actor
	return updateCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateContractDraftCommand) Validate() error {
	return c.guard.Validate(ErrUpdateContractDraftCommandIsNotConstructed)
}

// ContractID returns the identifier of the contract to update.
func (c UpdateContractDraftCommand) ContractID() kernel.UUID {
	return c.contractID
}

// Title returns the new contract title.
func (c UpdateContractDraftCommand) Title() string {
	return c.title
}

// Value returns the new contract value.
func (c UpdateContractDraftCommand) Value() float64 {
	return c.value
}

// Currency returns the new currency code.
func (c UpdateContractDraftCommand) Currency() string {
	return c.currency
}

// Actor returns the role requesting the update.
func (c UpdateContractDraftCommand) Actor() kernel.Role {
	return c.actor
}
