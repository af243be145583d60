package services

import (
	"math/rand/v2"
	"sort"
)

// unknownRouteDefaultKm is the deterministic estimate for a route where neither
// endpoint is a known city: the midpoint of the source heuristic's [50, 450] range.
const unknownRouteDefaultKm = 250

// cityDistances is the static symmetric road-distance table, in kilometers.
// Each pair is stored once; lookups try both directions.
var cityDistances = map[string]map[string]float64{
	"paris": {
		"lyon":            465,
		"marseille":       775,
		"toulouse":        680,
		"nice":            930,
		"nantes":          385,
		"strasbourg":      490,
		"montpellier":     750,
		"bordeaux":        585,
		"lille":           225,
		"rennes":          350,
		"aix-en-provence": 760,
	},
	"lyon": {
		"marseille":       315,
		"toulouse":        540,
		"nice":            470,
		"nantes":          660,
		"strasbourg":      490,
		"montpellier":     300,
		"bordeaux":        555,
		"lille":           690,
		"aix-en-provence": 290,
	},
	"marseille": {
		"toulouse":        405,
		"nice":            200,
		"montpellier":     170,
		"bordeaux":        645,
		"aix-en-provence": 30,
	},
	"toulouse": {
		"montpellier": 240,
		"bordeaux":    245,
		"nice":        560,
	},
	"nantes": {
		"rennes":   110,
		"bordeaux": 350,
		"lille":    600,
	},
	"lille": {
		"strasbourg": 525,
	},
	"nice": {
		"aix-en-provence": 175,
	},
	"rennes": {
		"lille": 575,
	},
}

// cityNames returns the sorted list of cities known to the distance table.
func cityNames() []string {
	seen := make(map[string]struct{})
	for origin, destinations := range cityDistances {
		seen[origin] = struct{}{}
		for destination := range destinations {
			seen[destination] = struct{}{}
		}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// RouteEstimator supplies distance estimates for routes the static table cannot
// resolve. Implementations decide whether unknown-route estimation is
// deterministic or jittered; the engine only requires a positive km figure.
type RouteEstimator interface {
	// EstimateHalfKnown estimates a route where exactly one endpoint is a known
	// city, given the mean of that city's known distances.
	EstimateHalfKnown(meanKm float64) float64

	// EstimateUnknown estimates a route where neither endpoint is known.
	EstimateUnknown() float64
}

// FixedRouteEstimator is the deterministic default: half-known routes resolve to
// the known city's mean distance, fully unknown routes to a fixed default.
// This replaces the source system's random jitter so that identical inputs
// always price identically; use RandomRouteEstimator to restore jitter.
type FixedRouteEstimator struct{}

// NewFixedRouteEstimator creates the deterministic route estimator.
func NewFixedRouteEstimator() FixedRouteEstimator {
	return FixedRouteEstimator{}
}

// EstimateHalfKnown returns the mean distance unchanged.
func (FixedRouteEstimator) EstimateHalfKnown(meanKm float64) float64 {
	return meanKm
}

// EstimateUnknown returns the fixed unknown-route default.
func (FixedRouteEstimator) EstimateUnknown() float64 {
	return unknownRouteDefaultKm
}

// RandomRouteEstimator reproduces the source system's jittered unknown-route
// estimates: half-known routes scale the mean by a factor in [0.5, 1.5), fully
// unknown routes draw uniformly from [50, 450). Prices produced through this
// estimator are not reproducible for identical inputs; inject a seeded source
// when that matters.
type RandomRouteEstimator struct {
	rnd *rand.Rand
}

// NewRandomRouteEstimator creates a jittered route estimator over the given
// random source.
func NewRandomRouteEstimator(rnd *rand.Rand) RandomRouteEstimator {
	return RandomRouteEstimator{rnd: rnd}
}

// EstimateHalfKnown scales the mean by a random factor in [0.5, 1.5).
func (e RandomRouteEstimator) EstimateHalfKnown(meanKm float64) float64 {
	return meanKm * (0.5 + e.rnd.Float64())
}

// EstimateUnknown returns a uniformly random distance in [50, 450).
func (e RandomRouteEstimator) EstimateUnknown() float64 {
	return 50 + e.rnd.Float64()*400
}

// DistanceEstimator resolves the distance in kilometers between two city keys.
// It never fails: routes missing from the static table are delegated to the
// configured RouteEstimator, so the result is always a usable non-negative figure.
type DistanceEstimator struct {
	estimator RouteEstimator
}

// NewDistanceEstimator creates a DistanceEstimator with the given fallback
// strategy. A nil estimator defaults to the deterministic FixedRouteEstimator.
func NewDistanceEstimator(estimator RouteEstimator) DistanceEstimator {
	if estimator == nil {
		estimator = NewFixedRouteEstimator()
	}
	return DistanceEstimator{estimator: estimator}
}

// EstimateKm resolves the distance between origin and destination city keys.
//
// Resolution order:
//  1. direct lookup origin -> destination
//  2. reverse lookup destination -> origin
//  3. one known endpoint: fallback estimate from that city's mean known distance
//  4. neither endpoint known: fallback unknown-route estimate
//
// Identical known keys resolve to zero; the pricer floors distances to 1 km.
func (d DistanceEstimator) EstimateKm(origin, destination string) float64 {
	if origin == destination && d.isKnownCity(origin) {
		return 0
	}

	if km, ok := lookup(origin, destination); ok {
		return km
	}
	if km, ok := lookup(destination, origin); ok {
		return km
	}

	if d.isKnownCity(origin) {
		return d.estimator.EstimateHalfKnown(d.meanDistance(origin))
	}
	if d.isKnownCity(destination) {
		return d.estimator.EstimateHalfKnown(d.meanDistance(destination))
	}

	return d.estimator.EstimateUnknown()
}

// IsKnownCity reports whether the key appears in the static distance table.
func (d DistanceEstimator) IsKnownCity(key string) bool {
	return d.isKnownCity(key)
}

func lookup(origin, destination string) (float64, bool) {
	destinations, ok := cityDistances[origin]
	if !ok {
		return 0, false
	}
	km, ok := destinations[destination]
	return km, ok
}

func (d DistanceEstimator) isKnownCity(key string) bool {
	if _, ok := cityDistances[key]; ok {
		return true
	}
	for _, destinations := range cityDistances {
		if _, ok := destinations[key]; ok {
			return true
		}
	}
	return false
}

// meanDistance returns the mean of a known city's table distances.
func (d DistanceEstimator) meanDistance(city string) float64 {
	var sum float64
	var count int

	for _, km := range cityDistances[city] {
		sum += km
		count++
	}
	for origin, destinations := range cityDistances {
		if origin == city {
			continue
		}
		if km, ok := destinations[city]; ok {
			sum += km
			count++
		}
	}

	if count == 0 {
		return unknownRouteDefaultKm
	}
	return sum / float64(count)
}
