package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrDeleteContractDraftCommandIsNotConstructed = errors.New(
	"DeleteContractDraftCommand must be created via NewDeleteContractDraftCommand constructor",
)

// DeleteContractDraftCommand represents a request to remove a contract draft.
type DeleteContractDraftCommand struct { //nolint:recvcheck //using for validation
	contractID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteContractDraftCommand creates a draft deletion command.
func NewDeleteContractDraftCommand(contractID kernel.UUID) (DeleteContractDraftCommand, error) {
	deleteCommand := DeleteContractDraftCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := contractID.Validate(); err != nil {
		return DeleteContractDraftCommand{}, err
	}

	deleteCommand.contractID = contractID
	return deleteCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteContractDraftCommand) Validate() error {
	return c.guard.Validate(ErrDeleteContractDraftCommandIsNotConstructed)
}

// ContractID returns the identifier of the draft to delete.
func (c DeleteContractDraftCommand) ContractID() kernel.UUID {
	return c.contractID
}
