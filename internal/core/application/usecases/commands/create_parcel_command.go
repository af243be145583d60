package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/parcel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrCreateParcelCommandIsNotConstructed = errors.New(
	"CreateParcelCommand must be created via NewCreateParcelCommand constructor",
)

// CreateParcelCommand represents a request to price and register a shipment.
// Carries the raw client inputs; geocoding, distance estimation and pricing
// happen in the handler.
//
// Example:
//
//	cmd, err := NewCreateParcelCommand(kernel.NewUUID(), 2,
//	    "40x30x20", "12 rue de Rivoli, Paris", "5 place Bellecour, Lyon")
//	if err != nil {
//	    return fmt.Errorf("invalid shipment data: %w", err)
//	}
type CreateParcelCommand struct { //nolint:recvcheck //using for validation
	parcelID        kernel.UUID
	weightKg        float64
	dimensions      string
	pickupAddress   string
	deliveryAddress string

	guard guard.ConstructorGuard
}

// NewCreateParcelCommand creates a command to register a new parcel.
// The dimensions string may be empty or malformed; the pricer resolves it to a
// default size class rather than failing.
func NewCreateParcelCommand(
	parcelID kernel.UUID,
	weightKg float64,
	dimensions, pickupAddress, deliveryAddress string,
) (CreateParcelCommand, error) {
	parcelCommand := CreateParcelCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		parcelCommand.setParcelID(parcelID),
		parcelCommand.setWeight(weightKg),
		parcelCommand.setAddresses(pickupAddress, deliveryAddress),
	); err != nil {
		return CreateParcelCommand{}, err
	}

	parcelCommand.dimensions = dimensions
	return parcelCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateParcelCommand) Validate() error {
	return c.guard.Validate(ErrCreateParcelCommandIsNotConstructed)
}

// ParcelID returns the identifier for the new parcel.
func (c CreateParcelCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// WeightKg returns the declared parcel weight.
func (c CreateParcelCommand) WeightKg() float64 {
	return c.weightKg
}

// Dimensions returns the raw "LxWxH" dimensions string.
func (c CreateParcelCommand) Dimensions() string {
	return c.dimensions
}

// PickupAddress returns the free-text pickup address.
func (c CreateParcelCommand) PickupAddress() string {
	return c.pickupAddress
}

// DeliveryAddress returns the free-text delivery address.
func (c CreateParcelCommand) DeliveryAddress() string {
	return c.deliveryAddress
}

func (c *CreateParcelCommand) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}

	c.parcelID = parcelID
	return nil
}

func (c *CreateParcelCommand) setWeight(weightKg float64) error {
	if weightKg < parcel.MinWeightKg {
		return errs.NewValueIsOutOfRangeError("weightKg", weightKg, parcel.MinWeightKg, nil)
	}

	c.weightKg = weightKg
	return nil
}

func (c *CreateParcelCommand) setAddresses(pickupAddress, deliveryAddress string) error {
	if pickupAddress == "" {
		return errs.NewValueIsRequiredError("pickupAddress")
	}
	if deliveryAddress == "" {
		return errs.NewValueIsRequiredError("deliveryAddress")
	}

	c.pickupAddress = pickupAddress
	c.deliveryAddress = deliveryAddress
	return nil
}
