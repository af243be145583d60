package kernel

import (
	"fmt"
	"time"

	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

// ErrTimeWindowIsNotConstructed is returned when attempting to use an improperly
// initialized TimeWindow. Windows must be created via NewTimeWindow.
var ErrTimeWindowIsNotConstructed = errs.NewValueIsRequiredError(
	"time window must be created via NewTimeWindow constructor")

// TimeWindow represents the half-open interval [Start, Start+Duration) during
// which a resource is claimed by a reservation. It is an immutable value object;
// the zero value is invalid and fails Validate.
//
// Two windows conflict when their half-open intervals overlap: touching
// boundaries (one ends exactly when the other starts) do not conflict.
//
// Example:
//
//	window, err := kernel.NewTimeWindow(start, 90*time.Minute)
//	if err != nil {
//	    // handle validation error
//	}
//	if window.Overlaps(other) {
//	    // reject the reservation
//	}
type TimeWindow struct { //nolint:recvcheck //using for validation
	start    time.Time
	duration time.Duration
	guard    guard.ConstructorGuard
}

// NewTimeWindow creates a TimeWindow starting at the given instant with the
// given positive duration. Returns an error if start is the zero time or
// duration is not positive.
func NewTimeWindow(start time.Time, duration time.Duration) (TimeWindow, error) {
	window := TimeWindow{
		guard: guard.NewConstructorGuard(),
	}

	if start.IsZero() {
		return TimeWindow{}, errs.NewValueIsRequiredError("start")
	}
	if duration <= 0 {
		return TimeWindow{}, errs.NewValueIsInvalidErrorWithCause("duration",
			fmt.Errorf("%s is not greater than 0", duration))
	}

	window.start = start
	window.duration = duration
	return window, nil
}

// Validate ensures the window was created via NewTimeWindow.
func (w TimeWindow) Validate() error {
	return w.guard.Validate(ErrTimeWindowIsNotConstructed)
}

// Start returns the instant at which the window opens.
func (w TimeWindow) Start() time.Time {
	return w.start
}

// Duration returns the length of the window.
func (w TimeWindow) Duration() time.Duration {
	return w.duration
}

// End returns the exclusive end instant of the window.
func (w TimeWindow) End() time.Time {
	return w.start.Add(w.duration)
}

// Overlaps reports whether two half-open windows intersect:
// w.start < other.End() && other.start < w.End().
func (w TimeWindow) Overlaps(other TimeWindow) bool {
	return w.start.Before(other.End()) && other.start.Before(w.End())
}

// Shift returns a copy of the window starting at the given instant with the
// same duration. Used for rescheduling.
func (w TimeWindow) Shift(start time.Time) (TimeWindow, error) {
	return NewTimeWindow(start, w.duration)
}

// String returns a human-readable representation for logs.
func (w TimeWindow) String() string {
	return fmt.Sprintf("[%s, %s)", w.start.Format(time.RFC3339), w.End().Format(time.RFC3339))
}
