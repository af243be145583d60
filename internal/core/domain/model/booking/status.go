package booking

import (
	"fmt"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

// Status represents the lifecycle state of a booking.
//
// State transitions (with the roles allowed to trigger them):
//
//	Pending ──(provider)──> Confirmed ──(provider)──> InProgress ──(provider)──> Completed
//	   │                        │
//	   └──(customer/provider)───┴──> Cancelled
//
// Completed and Cancelled are terminal. All transitions are checked against a
// single capability table; there are no ad hoc role branches elsewhere.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Pending is the initial status after a booking passes the conflict check.
	Pending

	// Confirmed indicates the provider accepted the booking.
	Confirmed

	// InProgress indicates the provider started the service.
	InProgress

	// Completed indicates the service was delivered. Terminal.
	Completed

	// Cancelled indicates either party withdrew before the service started. Terminal.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		Pending:    "Pending",
		Confirmed:  "Confirmed",
		InProgress: "InProgress",
		Completed:  "Completed",
		Cancelled:  "Cancelled",
	}
}

// getValidStatusStrings returns only the valid statuses, to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:    "Pending",
		Confirmed:  "Confirmed",
		InProgress: "InProgress",
		Completed:  "Completed",
		Cancelled:  "Cancelled",
	}
}

// getTransitionTable is the capability table: for each current status, the
// reachable target statuses and the roles allowed to request each transition.
func getTransitionTable() map[Status]map[Status][]kernel.Role {
	return map[Status]map[Status][]kernel.Role{
		Pending: {
			Confirmed: {kernel.RoleProvider},
			Cancelled: {kernel.RoleCustomer, kernel.RoleProvider},
		},
		Confirmed: {
			InProgress: {kernel.RoleProvider},
			Cancelled:  {kernel.RoleCustomer, kernel.RoleProvider},
		},
		InProgress: {
			Completed: {kernel.RoleProvider},
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
		fmt.Errorf("%q is not a valid booking status", s))
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

// TransitionTo validates the transition against the capability table and
// returns the new status. Rejections carry the attempted edge and role.
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
