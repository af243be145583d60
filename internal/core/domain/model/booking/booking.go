package booking

import (
	"errors"
	"fmt"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

// Rating bounds.
const (
	MinRating = 1
	MaxRating = 5
)

var (
	// ErrBookingIsNotConstructed is returned when a Booking instance was not
	// created through NewBooking or RestoreBooking.
	ErrBookingIsNotConstructed = errors.New("Booking must be created via NewBooking constructor")
)

// Booking represents a scheduled service reservation against a provider's
// calendar. It is an aggregate root that owns the booking lifecycle and the
// post-completion rating.
//
// Invariants:
//   - totalAmount is fixed at creation (the service price at that instant)
//     and never revisited
//   - rating/review can be set exactly once, by the customer, in Completed
//   - the scheduled window changes only while Pending
type Booking struct {
	id          kernel.UUID
	serviceID   kernel.UUID
	customerID  kernel.UUID
	providerID  kernel.UUID
	window      kernel.TimeWindow
	totalAmount float64
	status      Status
	rating      *int
	review      string

	guard guard.ConstructorGuard
}

// NewBooking creates a Pending booking. The caller is responsible for having
// run the scheduling conflict check first; the aggregate only enforces local
// invariants.
func NewBooking(
	id, serviceID, customerID, providerID kernel.UUID,
	window kernel.TimeWindow,
	totalAmount float64,
) (*Booking, error) {
	booking := &Booking{
		status: Pending,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		booking.setIDs(id, serviceID, customerID, providerID),
		booking.setWindow(window),
		booking.setTotalAmount(totalAmount),
	); err != nil {
		return nil, err
	}

	return booking, nil
}

// RestoreBooking reconstructs a Booking from persistence.
func RestoreBooking(
	id, serviceID, customerID, providerID kernel.UUID,
	window kernel.TimeWindow,
	totalAmount float64,
	status Status,
	rating *int,
	review string,
) (*Booking, error) {
	booking, err := NewBooking(id, serviceID, customerID, providerID, window, totalAmount)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}
	if rating != nil && (*rating < MinRating || *rating > MaxRating) {
		return nil, errs.NewValueIsOutOfRangeError("rating", *rating, MinRating, MaxRating)
	}

	booking.status = status
	booking.rating = rating
	booking.review = review
	return booking, nil
}

// Validate ensures the Booking was created through a constructor.
func (b *Booking) Validate() error {
	if b == nil || b.guard.Validate(ErrBookingIsNotConstructed) != nil {
		return ErrBookingIsNotConstructed
	}
	return nil
}

// IsEqual compares bookings by identifier.
func (b *Booking) IsEqual(other *Booking) bool {
	return other != nil && b.id.IsEqual(other.id)
}

// ID returns the booking identifier.
func (b *Booking) ID() kernel.UUID {
	return b.id
}

// ServiceID returns the booked service identifier.
func (b *Booking) ServiceID() kernel.UUID {
	return b.serviceID
}

// CustomerID returns the requesting customer identifier.
func (b *Booking) CustomerID() kernel.UUID {
	return b.customerID
}

// ProviderID returns the fulfilling provider identifier.
func (b *Booking) ProviderID() kernel.UUID {
	return b.providerID
}

// Window returns the scheduled time window.
func (b *Booking) Window() kernel.TimeWindow {
	return b.window
}

// TotalAmount returns the price fixed at creation time.
func (b *Booking) TotalAmount() float64 {
	return b.totalAmount
}

// Status returns the current lifecycle status.
func (b *Booking) Status() Status {
	return b.status
}

// Rating returns the customer rating, nil until rated.
func (b *Booking) Rating() *int {
	return b.rating
}

// Review returns the customer review text, empty until rated.
func (b *Booking) Review() string {
	return b.review
}

// TransitionTo moves the booking to the target status if the capability table
// allows the edge for the acting role. No partial state is left on rejection.
func (b *Booking) TransitionTo(target Status, actor kernel.Role) error {
	newStatus, err := b.status.TransitionTo(target, actor)
	if err != nil {
		return err
	}

	b.status = newStatus
	return nil
}

// Reschedule moves the scheduled window to a new start instant, keeping the
// duration. Permitted only while Pending, only for the booking parties, and
// only to a future instant. The caller re-runs the conflict check with the
// shifted window before invoking this.
func (b *Booking) Reschedule(newStart time.Time, now time.Time, actor kernel.Role) error {
	if actor != kernel.RoleCustomer && actor != kernel.RoleProvider {
		return errs.NewTransitionForbiddenError(b.status.String(), "Reschedule", actor.String())
	}
	if b.status != Pending {
		return errs.NewTransitionForbiddenError(b.status.String(), "Reschedule", actor.String())
	}
	if !newStart.After(now) {
		return errs.NewValueIsInvalidErrorWithCause("scheduledAt",
			fmt.Errorf("%s is not in the future", newStart.Format(time.RFC3339)))
	}

	window, err := b.window.Shift(newStart)
	if err != nil {
		return err
	}

	b.window = window
	return nil
}

// SetRating records the customer rating and review. Allowed exactly once, by
// the customer, on a completed booking.
func (b *Booking) SetRating(rating int, review string, actor kernel.Role) error {
	if actor != kernel.RoleCustomer {
		return errs.NewTransitionForbiddenError(b.status.String(), "Rate", actor.String())
	}
	if b.status != Completed {
		return errs.NewTransitionForbiddenError(b.status.String(), "Rate", actor.String())
	}
	if b.rating != nil {
		return errs.NewResourceConflictErrorWithCause("booking", b.id.String(),
			errors.New("booking is already rated"))
	}
	if rating < MinRating || rating > MaxRating {
		return errs.NewValueIsOutOfRangeError("rating", rating, MinRating, MaxRating)
	}

	b.rating = &rating
	b.review = review
	return nil
}

func (b *Booking) setIDs(id, serviceID, customerID, providerID kernel.UUID) error {
	if err := errors.Join(
		id.Validate(),
		serviceID.Validate(),
		customerID.Validate(),
		providerID.Validate(),
	); err != nil {
		return err
	}

	b.id = id
	b.serviceID = serviceID
	b.customerID = customerID
	b.providerID = providerID
	return nil
}

func (b *Booking) setWindow(window kernel.TimeWindow) error {
	if err := window.Validate(); err != nil {
		return err
	}
	b.window = window
	return nil
}

func (b *Booking) setTotalAmount(totalAmount float64) error {
	if totalAmount < 0 {
		return errs.NewValueIsInvalidErrorWithCause("totalAmount",
			fmt.Errorf("%v is negative", totalAmount))
	}
	b.totalAmount = totalAmount
	return nil
}
