package parcel

import (
	"errors"
	"fmt"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

// MinWeightKg is the minimum billable parcel weight.
const MinWeightKg = 0.5

var (
	// ErrParcelIsNotConstructed is returned when a Parcel instance was not created
	// through the NewParcel factory method.
	ErrParcelIsNotConstructed = errors.New("Parcel must be created via NewParcel constructor")
	// ErrPickupAddressIsRequired is returned when the pickup address is empty.
	ErrPickupAddressIsRequired = errs.NewValueIsRequiredError("pickupAddress")
	// ErrDeliveryAddressIsRequired is returned when the delivery address is empty.
	ErrDeliveryAddressIsRequired = errs.NewValueIsRequiredError("deliveryAddress")
)

// Parcel represents a priced shipment between two free-text addresses.
// It is an aggregate root holding the client-submitted inputs (weight,
// dimensions, addresses) and the computed pricing outputs (size class,
// distance, price).
//
// Invariants:
//   - weight is at least MinWeightKg
//   - both addresses are non-empty
//   - once a quote is applied the price is at least the engine minimum and
//     only changes through another ApplyQuote from recalculated inputs
type Parcel struct {
	id              kernel.UUID
	weightKg        float64
	dimensions      string
	pickupAddress   string
	deliveryAddress string

	// computed by the pricer, zero until ApplyQuote
	size       SizeClass
	distanceKm float64
	price      float64

	guard guard.ConstructorGuard
}

// NewParcel creates an unpriced Parcel from shipment submission inputs.
// The dimensions string may be empty; invalid dimensions are tolerated here
// and resolved to a default size class by the pricer.
func NewParcel(id kernel.UUID, weightKg float64, dimensions, pickupAddress, deliveryAddress string) (*Parcel, error) {
	parcel := &Parcel{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		parcel.setID(id),
		parcel.setWeight(weightKg),
		parcel.setAddresses(pickupAddress, deliveryAddress),
	); err != nil {
		return nil, err
	}

	parcel.dimensions = dimensions
	return parcel, nil
}

// RestoreParcel reconstructs a priced Parcel from persistence.
func RestoreParcel(
	id kernel.UUID,
	weightKg float64,
	dimensions, pickupAddress, deliveryAddress string,
	size SizeClass,
	distanceKm, price float64,
) (*Parcel, error) {
	parcel, err := NewParcel(id, weightKg, dimensions, pickupAddress, deliveryAddress)
	if err != nil {
		return nil, err
	}

	if err = size.Validate(); err != nil {
		return nil, err
	}

	parcel.size = size
	parcel.distanceKm = distanceKm
	parcel.price = price
	return parcel, nil
}

// Validate ensures the Parcel was created via NewParcel.
func (p *Parcel) Validate() error {
	if p == nil || p.guard.Validate(ErrParcelIsNotConstructed) != nil {
		return ErrParcelIsNotConstructed
	}
	return nil
}

// IsEqual compares parcels by identifier.
func (p *Parcel) IsEqual(other *Parcel) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the parcel identifier.
func (p *Parcel) ID() kernel.UUID {
	return p.id
}

// WeightKg returns the billable weight.
func (p *Parcel) WeightKg() float64 {
	return p.weightKg
}

// Dimensions returns the raw "LxWxH" dimensions string, possibly empty.
func (p *Parcel) Dimensions() string {
	return p.dimensions
}

// PickupAddress returns the free-text pickup address.
func (p *Parcel) PickupAddress() string {
	return p.pickupAddress
}

// DeliveryAddress returns the free-text delivery address.
func (p *Parcel) DeliveryAddress() string {
	return p.deliveryAddress
}

// Size returns the computed size class, empty until a quote is applied.
func (p *Parcel) Size() SizeClass {
	return p.size
}

// DistanceKm returns the computed shipping distance.
func (p *Parcel) DistanceKm() float64 {
	return p.distanceKm
}

// Price returns the computed price.
func (p *Parcel) Price() float64 {
	return p.price
}

// ApplyQuote records the pricing outputs computed for this parcel's inputs.
// The price is immutable between quotes: callers re-quote from changed inputs
// rather than editing the price directly.
func (p *Parcel) ApplyQuote(size SizeClass, distanceKm, price float64) error {
	if err := size.Validate(); err != nil {
		return err
	}
	if distanceKm < 0 {
		return errs.NewValueIsInvalidErrorWithCause("distanceKm",
			fmt.Errorf("%v is negative", distanceKm))
	}
	if price <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%v is not greater than 0", price))
	}

	p.size = size
	p.distanceKm = distanceKm
	p.price = price
	return nil
}

func (p *Parcel) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Parcel) setWeight(weightKg float64) error {
	if weightKg < MinWeightKg {
		return errs.NewValueIsInvalidErrorWithCause("weight",
			fmt.Errorf("%v is less than the minimum %v kg", weightKg, MinWeightKg))
	}
	p.weightKg = weightKg
	return nil
}

func (p *Parcel) setAddresses(pickupAddress, deliveryAddress string) error {
	if pickupAddress == "" {
		return ErrPickupAddressIsRequired
	}
	if deliveryAddress == "" {
		return ErrDeliveryAddressIsRequired
	}
	p.pickupAddress = pickupAddress
	p.deliveryAddress = deliveryAddress
	return nil
}
