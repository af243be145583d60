package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/booking"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrRateBookingCommandIsNotConstructed = errors.New(
	"RateBookingCommand must be created via NewRateBookingCommand constructor",
)

// RateBookingCommand represents a customer's rating of a completed booking.
type RateBookingCommand struct { //nolint:recvcheck //using for validation
	bookingID kernel.UUID
	rating    int
	review    string
	actor     kernel.Role

	guard guard.ConstructorGuard
}

// NewRateBookingCommand creates a booking rating command. The review is
// optional; the rating must lie in the aggregate's [MinRating, MaxRating].
func NewRateBookingCommand(
	bookingID kernel.UUID,
	rating int,
	review string,
	actor kernel.Role,
) (RateBookingCommand, error) {
	rateCommand := RateBookingCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(bookingID.Validate(), actor.Validate()); err != nil {
		return RateBookingCommand{}, err
	}
	if rating < booking.MinRating || rating > booking.MaxRating {
		return RateBookingCommand{}, errs.NewValueIsOutOfRangeError(
			"rating", rating, booking.MinRating, booking.MaxRating)
	}

	rateCommand.bookingID = bookingID
	rateCommand.rating = rating
	rateCommand.review = review
	rateCommand.actor = actor
	return rateCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c RateBookingCommand) Validate() error {
	return c.guard.Validate(ErrRateBookingCommandIsNotConstructed)
}

// BookingID returns the identifier of the booking to rate.
func (c RateBookingCommand) BookingID() kernel.UUID {
	return c.bookingID
}

// Rating returns the submitted rating.
func (c RateBookingCommand) Rating() int {
	return c.rating
}

// Review returns the optional review text.
func (c RateBookingCommand) Review() string {
	return c.review
}

// Actor returns the role submitting the rating.
func (c RateBookingCommand) Actor() kernel.Role {
	return c.actor
}
