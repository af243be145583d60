// Package boxrepo provides data transfer objects and mapping functions for
// storage box persistence.
package boxrepo

import (
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/storagebox"

	"github.com/google/uuid"
)

// StorageBoxDTO represents the database structure for persisting storage boxes.
// Status is indexed because availability listings filter on it.
type StorageBoxDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Location    string
	Size        string
	PricePerDay float64
	Status      int `gorm:"index"`
}

// TableName specifies the database table name for storage box entities.
func (StorageBoxDTO) TableName() string {
	return "storage_boxes"
}

// fromDomain converts a storage box domain aggregate to its database representation.
func fromDomain(aggregate *storagebox.StorageBox) StorageBoxDTO {
	return StorageBoxDTO{
		ID:          aggregate.ID().Bytes(),
		Location:    aggregate.Location(),
		Size:        aggregate.Size(),
		PricePerDay: aggregate.PricePerDay(),
		Status:      int(aggregate.Status()),
	}
}

// toDomain converts a database DTO to a storage box domain aggregate.
func toDomain(dto StorageBoxDTO) (*storagebox.StorageBox, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return storagebox.RestoreStorageBox(id, dto.Location, dto.Size,
		dto.PricePerDay, storagebox.Status(dto.Status))
}
