package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
)

// ServiceDescription is the read model of a bookable service: the subset of
// the catalog the reservation flow needs to price and route a booking.
type ServiceDescription struct {
	ID              kernel.UUID
	ProviderID      kernel.UUID
	Price           float64
	DefaultDuration int // minutes
	Active          bool
}

// ServiceCatalog provides read access to the bookable services table. The
// catalog itself is maintained elsewhere; the reservation flow only consumes it.
type ServiceCatalog interface {
	// GetService retrieves the description of a bookable service.
	// Returns an ObjectNotFoundError when the service does not exist.
	GetService(ctx context.Context, id kernel.UUID) (ServiceDescription, error)
}
