package commands

import (
	"errors"

	"marketplace/internal/pkg/guard"
)

var ErrExpireContractsCommandIsNotConstructed = errors.New(
	"ExpireContractsCommand must be created via NewExpireContractsCommand constructor",
)

// ExpireContractsCommand represents the periodic sweep that expires active
// contracts past their end date. It carries no parameters; the handler reads
// the clock itself.
type ExpireContractsCommand struct {
	guard guard.ConstructorGuard
}

// NewExpireContractsCommand creates an expiry sweep command.
func NewExpireContractsCommand() (ExpireContractsCommand, error) {
	return ExpireContractsCommand{
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ExpireContractsCommand) Validate() error {
	return c.guard.Validate(ErrExpireContractsCommandIsNotConstructed)
}
