package account

import (
	"fmt"

	"shiptrack/internal/pkg/errs"
)

// Role represents the actor role attached to an authenticated principal.
// Roles are data, not types: every permission decision is made by looking the
// role up in the authorization policy table, never by dispatching on a
// user subtype.
//
// Roles are assigned by the external identity service and are immutable for
// the lifetime of a session.
type Role int

const (
	// UnknownRole represents an invalid or undefined role.
	// This value (0) helps catch uninitialized Role values.
	UnknownRole Role = iota

	// Customer creates shipments and can read their own.
	Customer

	// Driver progresses the status of shipments assigned to them.
	Driver

	// Admin manages all shipments: assignment, payment state, deletion.
	Admin
)

// getRoleStrings returns a map of Role values to their wire representations.
// The strings match what the identity service sends in the role claim.
func getRoleStrings() map[Role]string {
	return map[Role]string{
		UnknownRole: "unknown",
		Customer:    "customer",
		Driver:      "driver",
		Admin:       "admin",
	}
}

// getValidRoleStrings returns a map of only valid Role values.
func getValidRoleStrings() map[Role]string {
	//nolint:exhaustive // UnknownRole is intentionally excluded as it's invalid
	return map[Role]string{
		Customer: "customer",
		Driver:   "driver",
		Admin:    "admin",
	}
}

// ParseRole converts the identity service's role claim into a Role.
// Returns an error for anything other than "customer", "driver" or "admin".
func ParseRole(s string) (Role, error) {
	for role, str := range getValidRoleStrings() {
		if str == s {
			return role, nil
		}
	}
	return UnknownRole, errs.NewValueIsInvalidErrorWithCause(
		"role", fmt.Errorf("%q is not a valid role", s))
}

// Validate checks if the Role value is valid.
// Valid roles are: Customer, Driver, Admin.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the wire name of the role, or "unknown" for invalid values.
// Implements fmt.Stringer and is safe to call on any Role value.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "unknown"
}
