package services

import (
	"fmt"
	"time"

	"marketplace/internal/core/domain/model/booking"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

// BookingScheduler is a domain service that decides whether a requested time
// window may be booked against a provider's calendar.
//
// The conflict rule is true half-open interval overlap: a candidate booking
// conflicts when existing.start < requested.end && requested.start <
// existing.end. Only bookings holding a non-terminal status count; completed
// and cancelled bookings free their window.
type BookingScheduler struct{}

// NewBookingScheduler creates a BookingScheduler.
func NewBookingScheduler() BookingScheduler {
	return BookingScheduler{}
}

// EnsureSlotFree rejects the requested window if it starts in the past or
// overlaps any non-terminal booking in candidates. The ignore ID, when
// non-zero, excludes a booking from the check (used for rescheduling).
//
// Returns a ResourceConflictError naming the overlapping booking, or a
// validation error for a non-future start.
func (s BookingScheduler) EnsureSlotFree(
	requested kernel.TimeWindow,
	now time.Time,
	candidates []*booking.Booking,
	ignore kernel.UUID,
) error {
	if err := requested.Validate(); err != nil {
		return err
	}

	if !requested.Start().After(now) {
		return errs.NewValueIsInvalidErrorWithCause("scheduledAt",
			fmt.Errorf("%s is not in the future", requested.Start().Format(time.RFC3339)))
	}

	for _, candidate := range candidates {
		if err := candidate.Validate(); err != nil {
			return err
		}
		if ignore.Validate() == nil && candidate.ID().IsEqual(ignore) {
			continue
		}
		if candidate.Status().IsTerminal() {
			continue
		}
		if candidate.Window().Overlaps(requested) {
			return errs.NewResourceConflictErrorWithCause("booking", candidate.ID().String(),
				fmt.Errorf("window %s overlaps requested %s", candidate.Window(), requested))
		}
	}

	return nil
}
