// Package contractrepo provides data transfer objects and mapping functions for
// merchant contract persistence.
package contractrepo

import (
	"time"

	"marketplace/internal/core/domain/model/contract"
	"marketplace/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// ContractDTO represents the database structure for persisting contract
// aggregates. ExpiresAt is indexed because the expiry sweep filters on it.
type ContractDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	MerchantID uuid.UUID `gorm:"type:uuid;index"`
	Title      string
	Value      float64
	Currency   string
	Status     int `gorm:"index"`
	SignedAt   *time.Time
	ExpiresAt  *time.Time `gorm:"index"`
}

// TableName specifies the database table name for contract entities.
func (ContractDTO) TableName() string {
	return "contracts"
}

// fromDomain converts a contract domain aggregate to its database representation.
func fromDomain(aggregate *contract.Contract) ContractDTO {
	return ContractDTO{
		ID:         aggregate.ID().Bytes(),
		MerchantID: aggregate.MerchantID().Bytes(),
		Title:      aggregate.Title(),
		Value:      aggregate.Value(),
		Currency:   aggregate.Currency(),
		Status:     int(aggregate.Status()),
		SignedAt:   aggregate.SignedAt(),
		ExpiresAt:  aggregate.ExpiresAt(),
	}
}

// toDomain converts a database DTO to a contract domain aggregate.
func toDomain(dto ContractDTO) (*contract.Contract, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	merchantID, err := kernel.UUIDFromBytes(dto.MerchantID[:])
	if err != nil {
		return nil, err
	}

	return contract.RestoreContract(id, merchantID, dto.Title, dto.Value,
		dto.Currency, contract.Status(dto.Status), dto.SignedAt, dto.ExpiresAt)
}
