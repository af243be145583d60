// Package servicecatalog provides a database-backed read model of the services
// offered by providers. Booking creation consults it for the provider, price
// and default duration of the requested service.
package servicecatalog

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ServiceDTO represents the database structure for the service listing.
type ServiceDTO struct {
	ID                     uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProviderID             uuid.UUID `gorm:"type:uuid;index"`
	Price                  float64
	DefaultDurationMinutes int
	Active                 bool
}

// TableName specifies the database table name for service entities.
func (ServiceDTO) TableName() string {
	return "services"
}

// GormServiceCatalog implements ServiceCatalog using GORM.
type GormServiceCatalog struct {
	db *gorm.DB
}

// NewGormServiceCatalog creates a new GORM service catalog.
func NewGormServiceCatalog(db *gorm.DB) *GormServiceCatalog {
	return &GormServiceCatalog{db: db}
}

// GetService retrieves the description of a service by ID.
func (c *GormServiceCatalog) GetService(
	ctx context.Context, id kernel.UUID,
) (ports.ServiceDescription, error) {
	if err := id.Validate(); err != nil {
		return ports.ServiceDescription{}, err
	}

	var dto ServiceDTO
	if err := c.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.ServiceDescription{}, errs.NewObjectNotFoundError("service", id.String())
		}
		return ports.ServiceDescription{}, err
	}

	serviceID, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return ports.ServiceDescription{}, err
	}

	providerID, err := kernel.UUIDFromBytes(dto.ProviderID[:])
	if err != nil {
		return ports.ServiceDescription{}, err
	}

	return ports.ServiceDescription{
		ID:              serviceID,
		ProviderID:      providerID,
		Price:           dto.Price,
		DefaultDuration: dto.DefaultDurationMinutes,
		Active:          dto.Active,
	}, nil
}
