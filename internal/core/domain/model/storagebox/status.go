package storagebox

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

// Status is the mirrored availability state of a storage box. It is a derived
// projection of the box's active rental: only the rental lifecycle controller
// writes it, never clients.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Available means the box can accept a new rental.
	Available

	// Rented means a rental with status Pending or Active holds the box.
	Rented

	// Maintenance means the box is administratively withdrawn from rental.
	Maintenance
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:     "Unknown",
		Available:   "Available",
		Rented:      "Rented",
		Maintenance: "Maintenance",
	}
}

// getValidStatusStrings returns only the valid statuses, to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Available:   "Available",
		Rented:      "Rented",
		Maintenance: "Maintenance",
	}
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}
