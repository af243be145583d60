package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/contract"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrTransitionContractCommandIsNotConstructed = errors.New(
	"TransitionContractCommand must be created via NewTransitionContractCommand constructor",
)

// TransitionContractCommand represents a request to move a contract along its
// signature lifecycle: send, sign, activate, expire or terminate.
type TransitionContractCommand struct { //nolint:recvcheck //using for validation
	contractID kernel.UUID
	target     contract.Status
	actor      kernel.Role

	guard guard.ConstructorGuard
}

// NewTransitionContractCommand creates a contract transition command.
func NewTransitionContractCommand(
	contractID kernel.UUID,
	target contract.Status,
	actor kernel.Role,
) (TransitionContractCommand, error) {
	transitionCommand := TransitionContractCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		contractID.Validate(),
		target.Validate(),
		actor.Validate(),
	); err != nil {
		return TransitionContractCommand{}, err
	}

	transitionCommand.contractID = contractID
	transitionCommand.target = target
	transitionCommand.actor = actor
	return transitionCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c TransitionContractCommand) Validate() error {
	return c.guard.Validate(ErrTransitionContractCommandIsNotConstructed)
}

// ContractID returns the identifier of the contract to transition.
func (c TransitionContractCommand) ContractID() kernel.UUID {
	return c.contractID
}

// Target returns the requested target status.
func (c TransitionContractCommand) Target() contract.Status {
	return c.target
}

// Actor returns the role requesting the transition.
func (c TransitionContractCommand) Actor() kernel.Role {
	return c.actor
}
