package kernel

import "marketplace/internal/pkg/errs"

// Role identifies the actor requesting a reservation lifecycle operation.
// Capability checks in the domain transition tables are expressed in terms of roles.
type Role string

const (
	// RoleCustomer is the user who placed the booking or rental.
	RoleCustomer Role = "customer"
	// RoleProvider is the service provider fulfilling a booking.
	RoleProvider Role = "provider"
	// RoleMerchant is the contract-owning merchant.
	RoleMerchant Role = "merchant"
	// RoleAdmin is the platform administrator.
	RoleAdmin Role = "admin"
)

// getValidRoles returns the set of roles recognized by the domain.
func getValidRoles() map[Role]struct{} {
	return map[Role]struct{}{
		RoleCustomer: {},
		RoleProvider: {},
		RoleMerchant: {},
		RoleAdmin:    {},
	}
}

// Validate checks that the role is one of the recognized actor roles.
func (r Role) Validate() error {
	if _, ok := getValidRoles()[r]; !ok {
		return errs.NewValueIsInvalidError("role")
	}
	return nil
}

// String returns the role name.
func (r Role) String() string {
	return string(r)
}
