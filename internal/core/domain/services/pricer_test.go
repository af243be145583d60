package services_test

import (
	"testing"

	"marketplace/internal/core/domain/model/parcel"
	"marketplace/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDeterministicPricer() services.Pricer {
	return services.NewPricer(services.NewGeocoder(), services.NewDistanceEstimator(nil))
}

func TestPriceFor(t *testing.T) {
	t.Run("should apply the pricing formula", func(t *testing.T) {
		// (465*0.5 + 2*2) * 1.2 = 283.80
		price, breakdown := services.PriceFor(465, 2, parcel.SizeM)

		assert.InDelta(t, 283.80, price, 0.0001)
		assert.InDelta(t, 232.5, breakdown.DistanceCost, 0.0001)
		assert.InDelta(t, 4.0, breakdown.WeightCost, 0.0001)
		assert.InDelta(t, 1.2, breakdown.SizeMultiplier, 0.0001)
	})

	t.Run("should round to two decimal places", func(t *testing.T) {
		// (20.25*0.5 + 0.5*2) * 1 = 11.125 -> 11.13
		price, _ := services.PriceFor(20.25, 0.5, parcel.SizeS)

		assert.InDelta(t, 11.13, price, 0.0001)
	})

	t.Run("should never drop below the minimum price", func(t *testing.T) {
		price, _ := services.PriceFor(1, 0.5, parcel.SizeS)

		assert.InDelta(t, services.MinimumPrice, price, 0.0001)
	})

	t.Run("should floor distance and weight to their minimums", func(t *testing.T) {
		floored, _ := services.PriceFor(0, 0, parcel.SizeXXXL)
		explicit, _ := services.PriceFor(services.MinBillableKm, parcel.MinWeightKg, parcel.SizeXXXL)

		assert.InDelta(t, explicit, floored, 0.0001)
	})

	t.Run("should scale with the size class", func(t *testing.T) {
		previous := 0.0
		for _, size := range []parcel.SizeClass{
			parcel.SizeS, parcel.SizeM, parcel.SizeL, parcel.SizeXL, parcel.SizeXXL, parcel.SizeXXXL,
		} {
			price, _ := services.PriceFor(100, 5, size)

			assert.Greater(t, price, previous)
			previous = price
		}
	})
}

func TestPricer_Quote(t *testing.T) {
	pricer := newDeterministicPricer()

	t.Run("should price a Paris to Lyon shipment end to end", func(t *testing.T) {
		quote := pricer.Quote(
			"12 rue de Rivoli, 75001 Paris",
			"5 place Bellecour, 69002 Lyon",
			2, "40x30x20")

		assert.Equal(t, "paris", quote.OriginKey)
		assert.Equal(t, "lyon", quote.DestKey)
		assert.Equal(t, parcel.SizeM, quote.Size)
		assert.InDelta(t, 465.0, quote.DistanceKm, 0.0001)
		assert.InDelta(t, 283.80, quote.Price, 0.0001)
		assert.Nil(t, quote.Fallback)
	})

	t.Run("should degrade malformed dimensions to size M with a fallback detail", func(t *testing.T) {
		quote := pricer.Quote("Paris", "Lyon", 2, "not-a-box")

		assert.Equal(t, parcel.SizeM, quote.Size)
		require.NotNil(t, quote.Fallback)
		assert.Contains(t, quote.Fallback.Error(), "sizeClass")
		assert.InDelta(t, 283.80, quote.Price, 0.0001)
	})

	t.Run("should never fail on empty input", func(t *testing.T) {
		quote := pricer.Quote("", "", 0, "")

		require.NotNil(t, quote.Fallback)
		assert.GreaterOrEqual(t, quote.Price, services.MinimumPrice)
	})

	t.Run("should produce identical quotes for identical inputs", func(t *testing.T) {
		first := pricer.Quote("Nantes", "Rennes", 3, "10x10x10")
		second := pricer.Quote("Nantes", "Rennes", 3, "10x10x10")

		assert.Equal(t, first, second)
	})

	t.Run("should keep the price at or above the minimum for arbitrary inputs", func(t *testing.T) {
		inputs := []struct {
			pickup, delivery string
			weight           float64
			dimensions       string
		}{
			{"Paris", "Paris", 0.5, "1x1x1"},
			{"nowhere", "elsewhere", 0.5, ""},
			{"Lille", "unknown-town", 100, "200x150x100"},
			{"", "Marseille", -3, "0x0x0"},
		}

		for _, input := range inputs {
			quote := pricer.Quote(input.pickup, input.delivery, input.weight, input.dimensions)

			assert.GreaterOrEqual(t, quote.Price, services.MinimumPrice)
		}
	})

	t.Run("should floor the same-city route to the billable minimum", func(t *testing.T) {
		quote := pricer.Quote("Paris", "Paris", 2, "10x10x10")

		assert.InDelta(t, 0.0, quote.DistanceKm, 0.0001)
		// (1*0.5 + 2*2) * 1 = 4.50, floored to the minimum
		assert.InDelta(t, services.MinimumPrice, quote.Price, 0.0001)
	})
}
