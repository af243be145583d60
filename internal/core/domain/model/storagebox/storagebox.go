// Package storagebox contains the StorageBox shared resource. Its availability
// status mirrors the state of its active rental and is written exclusively by
// the rental lifecycle operations.
package storagebox

import (
	"errors"
	"fmt"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var (
	// ErrStorageBoxIsNotConstructed is returned when a StorageBox was not created
	// through NewStorageBox or RestoreStorageBox.
	ErrStorageBoxIsNotConstructed = errors.New("StorageBox must be created via NewStorageBox constructor")
	// ErrLocationIsRequired is returned when the box location is empty.
	ErrLocationIsRequired = errs.NewValueIsRequiredError("location")
	// ErrSizeIsRequired is returned when the box size label is empty.
	ErrSizeIsRequired = errs.NewValueIsRequiredError("size")
)

// StorageBox represents a rentable storage unit. It is a shared resource: many
// users may request it, but at most one rental holds it at a time. The status
// field is a mirror of that rental's state.
type StorageBox struct {
	id          kernel.UUID
	location    string
	size        string
	pricePerDay float64
	status      Status

	guard guard.ConstructorGuard
}

// NewStorageBox creates an Available storage box.
func NewStorageBox(id kernel.UUID, location, size string, pricePerDay float64) (*StorageBox, error) {
	box := &StorageBox{
		status: Available,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		box.setID(id),
		box.setLocation(location),
		box.setSize(size),
		box.setPricePerDay(pricePerDay),
	); err != nil {
		return nil, err
	}

	return box, nil
}

// RestoreStorageBox reconstructs a StorageBox from persistence.
func RestoreStorageBox(id kernel.UUID, location, size string, pricePerDay float64, status Status) (*StorageBox, error) {
	box, err := NewStorageBox(id, location, size, pricePerDay)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}

	box.status = status
	return box, nil
}

// Validate ensures the StorageBox was created through a constructor.
func (b *StorageBox) Validate() error {
	if b == nil || b.guard.Validate(ErrStorageBoxIsNotConstructed) != nil {
		return ErrStorageBoxIsNotConstructed
	}
	return nil
}

// IsEqual compares boxes by identifier.
func (b *StorageBox) IsEqual(other *StorageBox) bool {
	return other != nil && b.id.IsEqual(other.id)
}

// ID returns the box identifier.
func (b *StorageBox) ID() kernel.UUID {
	return b.id
}

// Location returns the box location label.
func (b *StorageBox) Location() string {
	return b.location
}

// Size returns the box size label.
func (b *StorageBox) Size() string {
	return b.size
}

// PricePerDay returns the rental price per day.
func (b *StorageBox) PricePerDay() float64 {
	return b.pricePerDay
}

// Status returns the mirrored availability status.
func (b *StorageBox) Status() Status {
	return b.status
}

// MarkRented flips the box to Rented when a rental is created against it.
// Only an Available box can be rented.
func (b *StorageBox) MarkRented() error {
	if b.status != Available {
		return errs.NewResourceConflictErrorWithCause("storageBox", b.id.String(),
			fmt.Errorf("box is %s, not %s", b.status, Available))
	}
	b.status = Rented
	return nil
}

// Release reverts the box to Available when its rental reaches a terminal
// status. Releasing a box that is not Rented is a transition error.
func (b *StorageBox) Release() error {
	if b.status != Rented {
		return errs.NewTransitionForbiddenError(b.status.String(), Available.String(), kernel.RoleAdmin.String())
	}
	b.status = Available
	return nil
}

// EnterMaintenance withdraws an Available box from rental. Admin only.
func (b *StorageBox) EnterMaintenance(actor kernel.Role) error {
	if actor != kernel.RoleAdmin {
		return errs.NewTransitionForbiddenError(b.status.String(), Maintenance.String(), actor.String())
	}
	if b.status != Available {
		return errs.NewTransitionForbiddenError(b.status.String(), Maintenance.String(), actor.String())
	}
	b.status = Maintenance
	return nil
}

// ExitMaintenance returns a box from Maintenance to Available. Admin only.
func (b *StorageBox) ExitMaintenance(actor kernel.Role) error {
	if actor != kernel.RoleAdmin {
		return errs.NewTransitionForbiddenError(b.status.String(), Available.String(), actor.String())
	}
	if b.status != Maintenance {
		return errs.NewTransitionForbiddenError(b.status.String(), Available.String(), actor.String())
	}
	b.status = Available
	return nil
}

func (b *StorageBox) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	b.id = id
	return nil
}

func (b *StorageBox) setLocation(location string) error {
	if location == "" {
		return ErrLocationIsRequired
	}
	b.location = location
	return nil
}

func (b *StorageBox) setSize(size string) error {
	if size == "" {
		return ErrSizeIsRequired
	}
	b.size = size
	return nil
}

func (b *StorageBox) setPricePerDay(pricePerDay float64) error {
	if pricePerDay <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("pricePerDay",
			fmt.Errorf("%v is not greater than 0", pricePerDay))
	}
	b.pricePerDay = pricePerDay
	return nil
}
