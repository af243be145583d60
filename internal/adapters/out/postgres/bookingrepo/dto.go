// Package bookingrepo provides data transfer objects and mapping functions for
// booking persistence. This package implements the repository pattern for the
// booking domain aggregate, handling the conversion between domain entities and
// database representations.
package bookingrepo

import (
	"time"

	"marketplace/internal/core/domain/model/booking"
	"marketplace/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// BookingDTO represents the database structure for persisting booking aggregates.
// The scheduled window is stored as a start instant plus a duration in minutes,
// with indexing for efficient querying by provider and status.
type BookingDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	ServiceID       uuid.UUID `gorm:"type:uuid;index"`
	CustomerID      uuid.UUID `gorm:"type:uuid;index"`
	ProviderID      uuid.UUID `gorm:"type:uuid;index"`
	StartsAt        time.Time
	DurationMinutes int
	Price           float64
	Status          int `gorm:"index"`
	Rating          *int
	Review          string
}

// TableName specifies the database table name for booking entities.
// Overrides GORM's default naming convention to use "bookings".
func (BookingDTO) TableName() string {
	return "bookings"
}

// fromDomain converts a booking domain aggregate to its database representation.
func fromDomain(aggregate *booking.Booking) BookingDTO {
	window := aggregate.Window()

	return BookingDTO{
		ID:              aggregate.ID().Bytes(),
		ServiceID:       aggregate.ServiceID().Bytes(),
		CustomerID:      aggregate.CustomerID().Bytes(),
		ProviderID:      aggregate.ProviderID().Bytes(),
		StartsAt:        window.Start(),
		DurationMinutes: int(window.Duration().Minutes()),
		Price:           aggregate.TotalAmount(),
		Status:          int(aggregate.Status()),
		Rating:          aggregate.Rating(),
		Review:          aggregate.Review(),
	}
}

// toDomain converts a database DTO to a booking domain aggregate.
// Reconstructs the complete aggregate including status and rating using RestoreBooking.
func toDomain(dto BookingDTO) (*booking.Booking, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	serviceID, err := kernel.UUIDFromBytes(dto.ServiceID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	providerID, err := kernel.UUIDFromBytes(dto.ProviderID[:])
	if err != nil {
		return nil, err
	}

	window, err := kernel.NewTimeWindow(dto.StartsAt, time.Duration(dto.DurationMinutes)*time.Minute)
	if err != nil {
		return nil, err
	}

	return booking.RestoreBooking(id, serviceID, customerID, providerID,
		window, dto.Price, booking.Status(dto.Status), dto.Rating, dto.Review)
}
