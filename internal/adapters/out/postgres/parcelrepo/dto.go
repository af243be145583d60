// Package parcelrepo provides data transfer objects and mapping functions for
// parcel persistence.
package parcelrepo

import (
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/parcel"

	"github.com/google/uuid"
)

// ParcelDTO represents the database structure for persisting parcel aggregates.
// The quoted size, distance and price are stored alongside the declared
// attributes so a quote survives restarts.
type ParcelDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	WeightKg        float64
	Dimensions      string
	PickupAddress   string
	DeliveryAddress string
	Size            string
	DistanceKm      float64
	Price           float64
}

// TableName specifies the database table name for parcel entities.
func (ParcelDTO) TableName() string {
	return "parcels"
}

// fromDomain converts a parcel domain aggregate to its database representation.
func fromDomain(aggregate *parcel.Parcel) ParcelDTO {
	return ParcelDTO{
		ID:              aggregate.ID().Bytes(),
		WeightKg:        aggregate.WeightKg(),
		Dimensions:      aggregate.Dimensions(),
		PickupAddress:   aggregate.PickupAddress(),
		DeliveryAddress: aggregate.DeliveryAddress(),
		Size:            string(aggregate.Size()),
		DistanceKm:      aggregate.DistanceKm(),
		Price:           aggregate.Price(),
	}
}

// toDomain converts a database DTO to a parcel domain aggregate.
func toDomain(dto ParcelDTO) (*parcel.Parcel, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return parcel.RestoreParcel(id, dto.WeightKg, dto.Dimensions,
		dto.PickupAddress, dto.DeliveryAddress,
		parcel.SizeClass(dto.Size), dto.DistanceKm, dto.Price)
}
