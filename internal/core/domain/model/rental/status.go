package rental

import (
	"fmt"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

// Status represents the lifecycle state of a box rental.
//
// State transitions (with the roles allowed to trigger them):
//
//	Pending ──(admin)──> Active ──(admin/customer)──> Completed
//	   │
//	   └──(admin/customer)──> Cancelled
//
// A rental in Pending or Active holds its storage box; reaching a terminal
// status releases it.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Pending is the initial status: the rental awaits admin approval while
	// already holding the box.
	Pending

	// Active indicates an approved, running rental.
	Active

	// Completed indicates the rental ended and its cost was settled. Terminal.
	Completed

	// Cancelled indicates the rental was rejected or withdrawn. Terminal.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Pending:   "Pending",
		Active:    "Active",
		Completed: "Completed",
		Cancelled: "Cancelled",
	}
}

// getValidStatusStrings returns only the valid statuses, to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "Pending",
		Active:    "Active",
		Completed: "Completed",
		Cancelled: "Cancelled",
	}
}

// getTransitionTable is the capability table for rental transitions.
func getTransitionTable() map[Status]map[Status][]kernel.Role {
	return map[Status]map[Status][]kernel.Role{
		Pending: {
			Active:    {kernel.RoleAdmin},
			Cancelled: {kernel.RoleAdmin, kernel.RoleCustomer},
		},
		Active: {
			Completed: {kernel.RoleAdmin, kernel.RoleCustomer},
		},
	}
}

// StatusFromString parses a status name, as carried by transition requests.
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid rental status", s))
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

// IsTerminal reports whether the status admits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// HoldsBox reports whether a rental in this status keeps its storage box
// unavailable to others.
func (s Status) HoldsBox() bool {
	return s == Pending || s == Active
}

// TransitionTo validates the transition against the capability table and
// returns the new status.
func (s Status) TransitionTo(target Status, role kernel.Role) (Status, error) {
	if err := role.Validate(); err != nil {
		return Unknown, err
	}
	if err := target.Validate(); err != nil {
		return Unknown, err
	}

	allowedRoles, ok := getTransitionTable()[s][target]
	if !ok {
		return Unknown, errs.NewTransitionForbiddenError(s.String(), target.String(), role.String())
	}

	for _, allowed := range allowedRoles {
		if allowed == role {
			return target, nil
		}
	}

	return Unknown, errs.NewTransitionForbiddenError(s.String(), target.String(), role.String())
}
