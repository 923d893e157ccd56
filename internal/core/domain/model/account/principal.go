package account

import (
	"errors"

	"shiptrack/internal/pkg/errs"
	"shiptrack/internal/pkg/guard"
)

// ErrPrincipalIsNotConstructed is returned when a Principal instance was not
// created through the NewPrincipal factory method.
var ErrPrincipalIsNotConstructed = errors.New("Principal must be created via NewPrincipal constructor")

// ErrUserIDIsRequired is returned when the user id is missing or non-positive.
var ErrUserIDIsRequired = errs.NewValueIsRequiredError("user_id")

// Principal is the authenticated caller of an operation, as verified by the
// external identity service. The core trusts it completely and performs no
// credential checks of its own; it only consumes the (user id, role) pair.
//
// Principal is an immutable value object.
type Principal struct {
	// userID is the identity service's integer id for the caller
	userID int64

	// role conditions every permission decision for the caller
	role Role

	// guard ensures the principal was created via NewPrincipal
	guard guard.ConstructorGuard
}

// NewPrincipal creates a validated Principal from the identity service's
// verified (user id, role) pair.
//
// Returns a validation error if the user id is non-positive or the role is
// not one of customer, driver, admin.
func NewPrincipal(userID int64, role Role) (Principal, error) {
	p := Principal{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		p.setUserID(userID),
		p.setRole(role),
	); err != nil {
		return Principal{}, err
	}

	return p, nil
}

// Validate ensures the Principal was created through NewPrincipal.
func (p Principal) Validate() error {
	return p.guard.Validate(ErrPrincipalIsNotConstructed)
}

// UserID returns the caller's user id.
func (p Principal) UserID() int64 {
	return p.userID
}

// Role returns the caller's role.
func (p Principal) Role() Role {
	return p.role
}

// IsAdmin reports whether the caller has the admin role.
func (p Principal) IsAdmin() bool {
	return p.role == Admin
}

// IsDriver reports whether the caller has the driver role.
func (p Principal) IsDriver() bool {
	return p.role == Driver
}

// IsCustomer reports whether the caller has the customer role.
func (p Principal) IsCustomer() bool {
	return p.role == Customer
}

func (p *Principal) setUserID(userID int64) error {
	if userID <= 0 {
		return ErrUserIDIsRequired
	}
	p.userID = userID
	return nil
}

func (p *Principal) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	p.role = role
	return nil
}
