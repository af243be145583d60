// Package kernel contains shared value objects used across the domain model:
// identifiers, actor roles, and the time window primitive that reservation
// conflict checks are built on.
//
// All value objects are immutable and constructed through factory functions
// that enforce their invariants. Zero values fail Validate.
package kernel
