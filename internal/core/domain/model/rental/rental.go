// Package rental contains the BoxRental aggregate: a time-bounded claim on a
// storage box with a prorated cost settled on completion.
package rental

import (
	"errors"
	"fmt"
	"math"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var (
	// ErrRentalIsNotConstructed is returned when a Rental instance was not
	// created through NewRental or RestoreRental.
	ErrRentalIsNotConstructed = errors.New("Rental must be created via NewRental constructor")
	// ErrRentalIsActive is returned when attempting to delete a running rental.
	ErrRentalIsActive = errors.New("an active rental cannot be deleted")
)

// Rental represents a user's claim on a storage box over [startDate, endDate].
// The end date may be open; it is fixed at completion time at the latest. The
// total cost is derived: ceil(days) × pricePerDay, recomputed whenever the end
// date changes or the rental completes.
//
// The price per day is snapshotted from the box at creation, so later box
// repricing does not affect a running rental.
type Rental struct {
	id           kernel.UUID
	userID       kernel.UUID
	storageBoxID kernel.UUID
	startDate    time.Time
	endDate      *time.Time
	pricePerDay  float64
	totalCost    float64
	status       Status

	guard guard.ConstructorGuard
}

// NewRental creates a Pending rental. The caller verifies box availability
// first; the aggregate enforces only local invariants. An end date, when
// provided, must not precede the start date and fixes the initial total cost.
func NewRental(
	id, userID, storageBoxID kernel.UUID,
	startDate time.Time,
	endDate *time.Time,
	pricePerDay float64,
) (*Rental, error) {
	rental := &Rental{
		status: Pending,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		rental.setIDs(id, userID, storageBoxID),
		rental.setPeriod(startDate, endDate),
		rental.setPricePerDay(pricePerDay),
	); err != nil {
		return nil, err
	}

	rental.recomputeCost()
	return rental, nil
}

// RestoreRental reconstructs a Rental from persistence.
func RestoreRental(
	id, userID, storageBoxID kernel.UUID,
	startDate time.Time,
	endDate *time.Time,
	pricePerDay, totalCost float64,
	status Status,
) (*Rental, error) {
	rental, err := NewRental(id, userID, storageBoxID, startDate, endDate, pricePerDay)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}

	rental.status = status
	rental.totalCost = totalCost
	return rental, nil
}

// Validate ensures the Rental was created through a constructor.
func (r *Rental) Validate() error {
	if r == nil || r.guard.Validate(ErrRentalIsNotConstructed) != nil {
		return ErrRentalIsNotConstructed
	}
	return nil
}

// IsEqual compares rentals by identifier.
func (r *Rental) IsEqual(other *Rental) bool {
	return other != nil && r.id.IsEqual(other.id)
}

// ID returns the rental identifier.
func (r *Rental) ID() kernel.UUID {
	return r.id
}

// UserID returns the renting user identifier.
func (r *Rental) UserID() kernel.UUID {
	return r.userID
}

// StorageBoxID returns the held box identifier.
func (r *Rental) StorageBoxID() kernel.UUID {
	return r.storageBoxID
}

// StartDate returns the rental start.
func (r *Rental) StartDate() time.Time {
	return r.startDate
}

// EndDate returns the rental end, nil while open-ended.
func (r *Rental) EndDate() *time.Time {
	return r.endDate
}

// PricePerDay returns the per-day price snapshotted at creation.
func (r *Rental) PricePerDay() float64 {
	return r.pricePerDay
}

// TotalCost returns the derived cost, zero while the end date is open.
func (r *Rental) TotalCost() float64 {
	return r.totalCost
}

// Status returns the current lifecycle status.
func (r *Rental) Status() Status {
	return r.status
}

// TransitionTo moves the rental to the target status if the capability table
// allows it. Completion must go through Complete, which settles the cost.
func (r *Rental) TransitionTo(target Status, actor kernel.Role) error {
	if target == Completed {
		return errs.NewTransitionForbiddenErrorWithCause(
			r.status.String(), target.String(), actor.String(),
			errors.New("completion must settle the cost via Complete"))
	}

	newStatus, err := r.status.TransitionTo(target, actor)
	if err != nil {
		return err
	}

	r.status = newStatus
	return nil
}

// Complete ends an Active rental. If the end date is open it is fixed to now,
// and the total cost is settled as ceil(days elapsed) × pricePerDay.
func (r *Rental) Complete(now time.Time, actor kernel.Role) error {
	newStatus, err := r.status.TransitionTo(Completed, actor)
	if err != nil {
		return err
	}

	if r.endDate == nil {
		end := now
		if !end.After(r.startDate) {
			end = r.startDate
		}
		r.endDate = &end
	}

	r.status = newStatus
	r.recomputeCost()
	return nil
}

// SetEndDate changes the rental end date and recomputes the total cost.
// Only a non-terminal rental can be re-dated.
func (r *Rental) SetEndDate(endDate time.Time) error {
	if r.status.IsTerminal() {
		return errs.NewResourceConflictErrorWithCause("rental", r.id.String(),
			fmt.Errorf("a %s rental cannot be re-dated", r.status.String()))
	}
	if endDate.Before(r.startDate) {
		return errs.NewValueIsInvalidErrorWithCause("endDate",
			fmt.Errorf("%s is before the start date", endDate.Format(time.RFC3339)))
	}

	r.endDate = &endDate
	r.recomputeCost()
	return nil
}

// CanDelete reports whether the rental may be removed. Deleting is forbidden
// while the rental is running; terminal rentals no longer hold their box.
func (r *Rental) CanDelete() error {
	if r.status == Active {
		return errs.NewResourceConflictErrorWithCause("rental", r.id.String(), ErrRentalIsActive)
	}
	return nil
}

// recomputeCost derives totalCost from the current period. Open-ended rentals
// carry zero cost until an end date is known.
func (r *Rental) recomputeCost() {
	if r.endDate == nil {
		r.totalCost = 0
		return
	}

	days := r.endDate.Sub(r.startDate).Hours() / 24
	r.totalCost = math.Ceil(days) * r.pricePerDay
}

func (r *Rental) setIDs(id, userID, storageBoxID kernel.UUID) error {
	if storageBoxID.Validate() != nil {
		return errs.NewValueIsRequiredError("storageBoxId")
	}
	if err := errors.Join(id.Validate(), userID.Validate()); err != nil {
		return err
	}

	r.id = id
	r.userID = userID
	r.storageBoxID = storageBoxID
	return nil
}

// setPeriod accepts endDate == startDate: completing a rental at or before its
// start clamps the end to the start, and that state must restore from storage.
func (r *Rental) setPeriod(startDate time.Time, endDate *time.Time) error {
	if startDate.IsZero() {
		return errs.NewValueIsRequiredError("startDate")
	}
	if endDate != nil && endDate.Before(startDate) {
		return errs.NewValueIsInvalidErrorWithCause("endDate",
			fmt.Errorf("%s is before the start date", endDate.Format(time.RFC3339)))
	}

	r.startDate = startDate
	r.endDate = endDate
	return nil
}

func (r *Rental) setPricePerDay(pricePerDay float64) error {
	if pricePerDay <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("pricePerDay",
			fmt.Errorf("%v is not greater than 0", pricePerDay))
	}
	r.pricePerDay = pricePerDay
	return nil
}
