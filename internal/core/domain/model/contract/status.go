package contract

import (
	"fmt"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

// Status represents the lifecycle state of a merchant contract.
//
// State transitions (with the roles allowed to trigger them):
//
//	Draft ──(merchant)──> PendingSignature ──(merchant/admin)──> Signed ──(merchant/admin)──> Active
//	                              │                                 │                           │
//	                           (admin)                           (admin)           (admin/merchant)  (admin)
//	                              v                                 v                           v        v
//	                          Terminated                        Terminated                Terminated  Expired
//
// Expired and Terminated are terminal and reachable only by explicit
// administrative transition; there is no automatic time-based expiry inside
// the state machine itself.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Draft is the initial, freely editable status.
	Draft

	// PendingSignature indicates the contract was sent and awaits signature.
	// From here on the contract is immutable.
	PendingSignature

	// Signed indicates the signature was recorded (sets the signed date).
	Signed

	// Active indicates a manually activated, running contract.
	Active

	// Expired indicates the contract passed its end date. Terminal.
	Expired

	// Terminated indicates the contract was ended administratively. Terminal.
	Terminated
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:          "Unknown",
		Draft:            "Draft",
		PendingSignature: "PendingSignature",
		Signed:           "Signed",
		Active:           "Active",
		Expired:          "Expired",
		Terminated:       "Terminated",
	}
}

// getValidStatusStrings returns only the valid statuses, to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Draft:            "Draft",
		PendingSignature: "PendingSignature",
		Signed:           "Signed",
		Active:           "Active",
		Expired:          "Expired",
		Terminated:       "Terminated",
	}
}

// getTransitionTable is the capability table for contract transitions.
func getTransitionTable() map[Status]map[Status][]kernel.Role {
	return map[Status]map[Status][]kernel.Role{
		Draft: {
			PendingSignature: {kernel.RoleMerchant},
		},
		PendingSignature: {
			Signed:     {kernel.RoleMerchant, kernel.RoleAdmin},
			Terminated: {kernel.RoleAdmin},
		},
		Signed: {
			Active:     {kernel.RoleMerchant, kernel.RoleAdmin},
			Terminated: {kernel.RoleAdmin},
		},
		Active: {
			Expired:    {kernel.RoleAdmin},
			Terminated: {kernel.RoleAdmin, kernel.RoleMerchant},
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
		fmt.Errorf("%q is not a valid contract status", s))
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
	return s == Expired || s == Terminated
}

// IsMutable reports whether contract fields may still be edited or the
// contract deleted. Only drafts are mutable.
func (s Status) IsMutable() bool {
	return s == Draft
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
