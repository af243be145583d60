// Package guard provides a defensive construction pattern for domain objects.
// Embedding a ConstructorGuard in a value object or entity makes zero-value
// instances detectable, so validation can reject objects that bypassed their
// constructor function.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by ConstructorGuard.Validate when
// a nil validation error is supplied, so validation always fails with a
// meaningful message.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard ensures domain objects are only created through their
// designated constructor functions. The guard holds an internal flag that is
// only set when NewConstructorGuard is called; a zero-value struct fails
// validation.
//
// Example:
//
//	type Money struct {
//	    amount   int
//	    currency string
//	    guard    guard.ConstructorGuard
//	}
//
//	func NewMoney(amount int, currency string) (Money, error) {
//	    // validate inputs ...
//	    return Money{amount: amount, currency: currency, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (m Money) Validate() error {
//	    return m.guard.Validate(ErrMoneyNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking an object as properly constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate checks whether the guarded object was created through its constructor.
// Returns the provided validationError for zero-value objects, or
// ErrDefaultConstructorGuard if validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
