// Package contract contains the Contract aggregate: a merchant agreement with
// a signature-driven lifecycle. Drafts are freely editable; once sent for
// signature the contract is immutable and only status transitions remain.
package contract

import (
	"errors"
	"fmt"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var (
	// ErrContractIsNotConstructed is returned when a Contract instance was not
	// created through NewContract or RestoreContract.
	ErrContractIsNotConstructed = errors.New("Contract must be created via NewContract constructor")
	// ErrTitleIsRequired is returned when the contract title is empty.
	ErrTitleIsRequired = errs.NewValueIsRequiredError("title")
	// ErrCurrencyIsRequired is returned when the currency code is empty.
	ErrCurrencyIsRequired = errs.NewValueIsRequiredError("currency")
)

// Contract represents a merchant agreement.
//
// Invariants:
//   - fields are editable and the contract deletable only while Draft
//   - signedAt is set exactly when the status transitions to Signed
//   - Expired is reachable only by explicit transition, optionally driven by
//     the expiry sweep for contracts whose end date has passed
type Contract struct {
	id         kernel.UUID
	merchantID kernel.UUID
	title      string
	value      float64
	currency   string
	status     Status
	signedAt   *time.Time
	expiresAt  *time.Time

	guard guard.ConstructorGuard
}

// NewContract creates a Draft contract. The expiry date is optional and only
// consulted by the expiry sweep once the contract is Active.
func NewContract(
	id, merchantID kernel.UUID,
	title string,
	value float64,
	currency string,
	expiresAt *time.Time,
) (*Contract, error) {
	contract := &Contract{
		status: Draft,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		contract.setIDs(id, merchantID),
		contract.setTerms(title, value, currency),
	); err != nil {
		return nil, err
	}

	contract.expiresAt = expiresAt
	return contract, nil
}

// RestoreContract reconstructs a Contract from persistence.
func RestoreContract(
	id, merchantID kernel.UUID,
	title string,
	value float64,
	currency string,
	status Status,
	signedAt, expiresAt *time.Time,
) (*Contract, error) {
	contract, err := NewContract(id, merchantID, title, value, currency, expiresAt)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}

	contract.status = status
	contract.signedAt = signedAt
	return contract, nil
}

// Validate ensures the Contract was created through a constructor.
func (c *Contract) Validate() error {
	if c == nil || c.guard.Validate(ErrContractIsNotConstructed) != nil {
		return ErrContractIsNotConstructed
	}
	return nil
}

// IsEqual compares contracts by identifier.
func (c *Contract) IsEqual(other *Contract) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// ID returns the contract identifier.
func (c *Contract) ID() kernel.UUID {
	return c.id
}

// MerchantID returns the owning merchant identifier.
func (c *Contract) MerchantID() kernel.UUID {
	return c.merchantID
}

// Title returns the contract title.
func (c *Contract) Title() string {
	return c.title
}

// Value returns the contract value.
func (c *Contract) Value() float64 {
	return c.value
}

// Currency returns the contract currency code.
func (c *Contract) Currency() string {
	return c.currency
}

// Status returns the current lifecycle status.
func (c *Contract) Status() Status {
	return c.status
}

// SignedAt returns the instant the signature was recorded, nil before Signed.
func (c *Contract) SignedAt() *time.Time {
	return c.signedAt
}

// ExpiresAt returns the optional contract end date.
func (c *Contract) ExpiresAt() *time.Time {
	return c.expiresAt
}

// TransitionTo moves the contract to the target status if the capability
// table allows it. Transitioning to Signed records the signature instant.
func (c *Contract) TransitionTo(target Status, actor kernel.Role, now time.Time) error {
	newStatus, err := c.status.TransitionTo(target, actor)
	if err != nil {
		return err
	}

	c.status = newStatus
	if newStatus == Signed {
		signed := now
		c.signedAt = &signed
	}
	return nil
}

// UpdateDraft replaces the contract terms. Allowed only while Draft, only for
// the merchant.
func (c *Contract) UpdateDraft(title string, value float64, currency string, actor kernel.Role) error {
	if actor != kernel.RoleMerchant {
		return errs.NewTransitionForbiddenError(c.status.String(), "Edit", actor.String())
	}
	if !c.status.IsMutable() {
		return errs.NewTransitionForbiddenError(c.status.String(), "Edit", actor.String())
	}

	return c.setTerms(title, value, currency)
}

// CanDelete reports whether the contract may be removed. Only drafts are
// deletable.
func (c *Contract) CanDelete() error {
	if !c.status.IsMutable() {
		return errs.NewTransitionForbiddenError(c.status.String(), "Delete", kernel.RoleMerchant.String())
	}
	return nil
}

// IsExpirable reports whether the expiry sweep should expire this contract:
// Active, with an end date in the past.
func (c *Contract) IsExpirable(now time.Time) bool {
	return c.status == Active && c.expiresAt != nil && c.expiresAt.Before(now)
}

func (c *Contract) setIDs(id, merchantID kernel.UUID) error {
	if err := errors.Join(id.Validate(), merchantID.Validate()); err != nil {
		return err
	}
	c.id = id
	c.merchantID = merchantID
	return nil
}

func (c *Contract) setTerms(title string, value float64, currency string) error {
	if title == "" {
		return ErrTitleIsRequired
	}
	if currency == "" {
		return ErrCurrencyIsRequired
	}
	if value < 0 {
		return errs.NewValueIsInvalidErrorWithCause("value",
			fmt.Errorf("%v is negative", value))
	}

	c.title = title
	c.value = value
	c.currency = currency
	return nil
}
