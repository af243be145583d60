package services_test

import (
	"math/rand/v2"
	"testing"

	"marketplace/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
)

func TestDistanceEstimator_EstimateKm(t *testing.T) {
	estimator := services.NewDistanceEstimator(nil)

	t.Run("should resolve known routes from the table", func(t *testing.T) {
		assert.InDelta(t, 465.0, estimator.EstimateKm("paris", "lyon"), 0.0001)
		assert.InDelta(t, 775.0, estimator.EstimateKm("paris", "marseille"), 0.0001)
		assert.InDelta(t, 30.0, estimator.EstimateKm("marseille", "aix-en-provence"), 0.0001)
	})

	t.Run("should be symmetric", func(t *testing.T) {
		pairs := [][2]string{
			{"paris", "lyon"},
			{"lyon", "montpellier"},
			{"nantes", "rennes"},
			{"lille", "strasbourg"},
		}

		for _, pair := range pairs {
			forward := estimator.EstimateKm(pair[0], pair[1])
			backward := estimator.EstimateKm(pair[1], pair[0])

			assert.InDelta(t, forward, backward, 0.0001,
				"distance %s-%s should not depend on direction", pair[0], pair[1])
		}
	})

	t.Run("should resolve identical known cities to zero", func(t *testing.T) {
		assert.InDelta(t, 0.0, estimator.EstimateKm("paris", "paris"), 0.0001)
	})

	t.Run("should fall back to the mean distance for a half-known route", func(t *testing.T) {
		km := estimator.EstimateKm("paris", "villeneuve")

		assert.Positive(t, km)
		// deterministic: the same half-known route always estimates the same
		assert.InDelta(t, km, estimator.EstimateKm("paris", "villeneuve"), 0.0001)
		assert.InDelta(t, km, estimator.EstimateKm("villeneuve", "paris"), 0.0001)
	})

	t.Run("should fall back to the fixed default for unknown routes", func(t *testing.T) {
		assert.InDelta(t, 250.0, estimator.EstimateKm("villeneuve", "brignoles"), 0.0001)
		assert.InDelta(t, 250.0, estimator.EstimateKm("", ""), 0.0001)
	})
}

func TestDistanceEstimator_IsKnownCity(t *testing.T) {
	estimator := services.NewDistanceEstimator(nil)

	// cities appearing only as destinations in the table still count
	for _, city := range []string{"paris", "lyon", "rennes", "aix-en-provence", "montpellier"} {
		assert.True(t, estimator.IsKnownCity(city), city)
	}

	for _, key := range []string{"", "villeneuve", "PARIS"} {
		assert.False(t, estimator.IsKnownCity(key), key)
	}
}

func TestRandomRouteEstimator(t *testing.T) {
	rnd := rand.New(rand.NewPCG(1, 2))
	estimator := services.NewRandomRouteEstimator(rnd)

	t.Run("should jitter half-known routes within half to one-and-a-half of the mean", func(t *testing.T) {
		for range 100 {
			km := estimator.EstimateHalfKnown(400)

			assert.GreaterOrEqual(t, km, 200.0)
			assert.Less(t, km, 600.0)
		}
	})

	t.Run("should draw unknown routes from the plausible band", func(t *testing.T) {
		for range 100 {
			km := estimator.EstimateUnknown()

			assert.GreaterOrEqual(t, km, 50.0)
			assert.Less(t, km, 450.0)
		}
	})
}

func TestDistanceEstimator_WithRandomFallback(t *testing.T) {
	rnd := rand.New(rand.NewPCG(7, 7))
	estimator := services.NewDistanceEstimator(services.NewRandomRouteEstimator(rnd))

	t.Run("should keep table routes exact regardless of the fallback strategy", func(t *testing.T) {
		assert.InDelta(t, 465.0, estimator.EstimateKm("paris", "lyon"), 0.0001)
	})

	t.Run("should keep fallback estimates positive", func(t *testing.T) {
		for range 50 {
			assert.Positive(t, estimator.EstimateKm("villeneuve", "brignoles"))
			assert.Positive(t, estimator.EstimateKm("paris", "brignoles"))
		}
	})
}
