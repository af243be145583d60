package commands

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrCreateContractCommandIsNotConstructed = errors.New(
	"CreateContractCommand must be created via NewCreateContractCommand constructor",
)

// CreateContractCommand represents a merchant's request to open a contract
// draft. The optional end date drives the expiry sweep once the contract is
// active.
type CreateContractCommand struct { //nolint:recvcheck //using for validation
	contractID kernel.UUID
	merchantID kernel.UUID
	title      string
	value      float64
	currency   string
	expiresAt  *time.Time

	guard guard.ConstructorGuard
}

// NewCreateContractCommand creates a contract creation command.
func NewCreateContractCommand(
	contractID, merchantID kernel.UUID,
	title string,
	value float64,
	currency string,
	expiresAt *time.Time,
) (CreateContractCommand, error) {
	contractCommand := CreateContractCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(contractID.Validate(), merchantID.Validate()); err != nil {
		return CreateContractCommand{}, err
	}
	if title == "" {
		return CreateContractCommand{}, errs.NewValueIsRequiredError("title")
	}
	if currency == "" {
		return CreateContractCommand{}, errs.NewValueIsRequiredError("currency")
	}
	if value < 0 {
		return CreateContractCommand{}, errs.NewValueIsOutOfRangeError("value", value, 0, nil)
	}

	contractCommand.contractID = contractID
	contractCommand.merchantID = merchantID
	contractCommand.title = title
	contractCommand.value = value
	contractCommand.currency = currency
	contractCommand.expiresAt = expiresAt
	return contractCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateContractCommand) Validate() error {
	return c.guard.Validate(ErrCreateContractCommandIsNotConstructed)
}

// ContractID returns the identifier for the new contract.
func (c CreateContractCommand) ContractID() kernel.UUID {
	return c.contractID
}

// MerchantID returns the owning merchant identifier.
func (c CreateContractCommand) MerchantID() kernel.UUID {
	return c.merchantID
}

// Title returns the contract title.
func (c CreateContractCommand) Title() string {
	return c.title
}

// Value returns the contract value.
func (c CreateContractCommand) Value() float64 {
	return c.value
}

// Currency returns the contract currency code.
func (c CreateContractCommand) Currency() string {
	return c.currency
}

// ExpiresAt returns the optional contract end date.
func (c CreateContractCommand) ExpiresAt() *time.Time {
	return c.expiresAt
}
