// Package rentalrepo provides data transfer objects and mapping functions for
// box rental persistence.
package rentalrepo

import (
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/rental"

	"github.com/google/uuid"
)

// RentalDTO represents the database structure for persisting rental aggregates.
// The end date is nullable: an open-ended rental has no end date until it
// completes. TotalCost is persisted rather than recomputed so reads stay cheap.
type RentalDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID       uuid.UUID `gorm:"type:uuid;index"`
	StorageBoxID uuid.UUID `gorm:"type:uuid;index"`
	StartDate    time.Time
	EndDate      *time.Time
	PricePerDay  float64
	TotalCost    float64
	Status       int `gorm:"index"`
}

// TableName specifies the database table name for rental entities.
func (RentalDTO) TableName() string {
	return "rentals"
}

// fromDomain converts a rental domain aggregate to its database representation.
func fromDomain(aggregate *rental.Rental) RentalDTO {
	return RentalDTO{
		ID:           aggregate.ID().Bytes(),
		UserID:       aggregate.UserID().Bytes(),
		StorageBoxID: aggregate.StorageBoxID().Bytes(),
		StartDate:    aggregate.StartDate(),
		EndDate:      aggregate.EndDate(),
		PricePerDay:  aggregate.PricePerDay(),
		TotalCost:    aggregate.TotalCost(),
		Status:       int(aggregate.Status()),
	}
}

// toDomain converts a database DTO to a rental domain aggregate.
func toDomain(dto RentalDTO) (*rental.Rental, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	boxID, err := kernel.UUIDFromBytes(dto.StorageBoxID[:])
	if err != nil {
		return nil, err
	}

	return rental.RestoreRental(id, userID, boxID, dto.StartDate, dto.EndDate,
		dto.PricePerDay, dto.TotalCost, rental.Status(dto.Status))
}
