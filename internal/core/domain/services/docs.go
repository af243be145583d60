// Package services contains stateless domain services that implement business
// logic spanning multiple aggregates or requiring no persistent state of their own:
//
//   - Geocoder: free-text address to canonical city key resolution
//   - DistanceEstimator: city-to-city distance lookup with fallback strategies
//   - Pricer: shipment price computation from distance, weight, and size class
//   - BookingScheduler: scheduling conflict detection for provider bookings
//
// Domain services validate the aggregates they operate on and never touch
// persistence; command handlers coordinate them inside unit-of-work transactions.
package services
