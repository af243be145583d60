package services

import (
	"math"

	"marketplace/internal/core/domain/model/parcel"
	"marketplace/internal/pkg/errs"
)

// Default pricing constants.
const (
	RatePerKm    = 0.5
	RatePerKg    = 2.0
	MinimumPrice = 5.0
	// MinBillableKm is the floor applied to estimated distances.
	MinBillableKm = 1.0
)

// QuoteBreakdown itemizes how a price was composed.
type QuoteBreakdown struct {
	DistanceCost   float64
	WeightCost     float64
	SizeMultiplier float64
}

// Quote is the pricing output for one shipment. Fallback is non-nil when the
// computation hit an internal fault and degraded to defaults: a default size
// class for malformed dimensions, or the minimum price when no usable inputs
// remained. A quote with a fallback detail is still a valid, usable quote.
type Quote struct {
	Price      float64
	DistanceKm float64
	Size       parcel.SizeClass
	OriginKey  string
	DestKey    string
	Breakdown  QuoteBreakdown
	Fallback   *errs.ComputationFallbackError
}

// Pricer computes shipment prices from free-text addresses, weight, and
// dimensions. It never fails: malformed input degrades to the minimum price
// with a fallback detail on the quote instead of an error.
type Pricer struct {
	geocoder Geocoder
	distance DistanceEstimator
}

// NewPricer creates a Pricer over the given geocoder and distance estimator.
func NewPricer(geocoder Geocoder, distance DistanceEstimator) Pricer {
	return Pricer{geocoder: geocoder, distance: distance}
}

// Quote prices a shipment.
//
// The weight is floored to the minimum billable weight and the estimated
// distance to MinBillableKm. Missing or malformed dimensions classify as size M
// and are reported through the quote's Fallback field. The resulting price is
// never below MinimumPrice.
func (p Pricer) Quote(pickupAddress, deliveryAddress string, weightKg float64, dimensions string) Quote {
	quote := Quote{Size: parcel.SizeM}

	size, sizeErr := parcel.ClassifyDimensions(dimensions)
	if sizeErr != nil {
		quote.Fallback = errs.NewComputationFallbackErrorWithCause("sizeClass", sizeErr)
	} else {
		quote.Size = size
	}

	quote.OriginKey = p.geocoder.CityKey(pickupAddress)
	quote.DestKey = p.geocoder.CityKey(deliveryAddress)

	distanceKm := p.distance.EstimateKm(quote.OriginKey, quote.DestKey)
	quote.DistanceKm = distanceKm

	quote.Price, quote.Breakdown = PriceFor(distanceKm, weightKg, quote.Size)
	return quote
}

// PriceFor applies the pricing formula to already-resolved inputs:
// max(MinimumPrice, (km*RatePerKm + kg*RatePerKg) * multiplier), rounded to
// two decimal places. Distance is floored to MinBillableKm and weight to
// parcel.MinWeightKg.
func PriceFor(distanceKm, weightKg float64, size parcel.SizeClass) (float64, QuoteBreakdown) {
	if distanceKm < MinBillableKm {
		distanceKm = MinBillableKm
	}
	if weightKg < parcel.MinWeightKg {
		weightKg = parcel.MinWeightKg
	}

	breakdown := QuoteBreakdown{
		DistanceCost:   distanceKm * RatePerKm,
		WeightCost:     weightKg * RatePerKg,
		SizeMultiplier: size.Multiplier(),
	}

	price := (breakdown.DistanceCost + breakdown.WeightCost) * breakdown.SizeMultiplier
	price = math.Round(price*100) / 100
	if price < MinimumPrice {
		price = MinimumPrice
	}

	return price, breakdown
}
