package services

import (
	"shiptrack/internal/core/domain/model/account"
	"shiptrack/internal/core/domain/model/shipment"
	"shiptrack/internal/pkg/errs"
)

// Operation enumerates everything a caller can ask this core to do.
// Permissions key on (role, operation), not on user subtypes.
type Operation int

const (
	// OpUnknown represents an invalid or undefined operation.
	OpUnknown Operation = iota

	// OpCreateShipment creates a shipment owned by some customer.
	OpCreateShipment

	// OpListShipments lists shipments; the result set is additionally
	// scoped to the caller by the read side.
	OpListShipments

	// OpGetShipment reads a single shipment by id.
	OpGetShipment

	// OpTrackShipment reads a shipment by tracking number. Public.
	OpTrackShipment

	// OpUpdateStatus moves the delivery lifecycle state.
	OpUpdateStatus

	// OpUpdatePayment sets the externally determined payment state.
	OpUpdatePayment

	// OpAssignDriver sets or changes the shipment's driver.
	OpAssignDriver

	// OpDeleteShipment destroys a shipment and its items.
	OpDeleteShipment
)

// String returns a human-readable operation name for error messages and logs.
func (op Operation) String() string {
	switch op {
	case OpCreateShipment:
		return "create shipment"
	case OpListShipments:
		return "list shipments"
	case OpGetShipment:
		return "get shipment"
	case OpTrackShipment:
		return "track shipment"
	case OpUpdateStatus:
		return "update status"
	case OpUpdatePayment:
		return "update payment status"
	case OpAssignDriver:
		return "assign driver"
	case OpDeleteShipment:
		return "delete shipment"
	case OpUnknown:
		return "unknown"
	}
	return "unknown"
}

// Resource carries the ownership facts a permission decision needs: who owns
// the shipment and who is assigned to drive it. For OpCreateShipment,
// CustomerID is the owner the new shipment would get.
type Resource struct {
	// ID identifies the shipment under decision, zero at creation time
	ID int64

	// CustomerID is the owning customer
	CustomerID int64

	// DriverID is the assigned driver, nil while unassigned
	DriverID *int64
}

// ResourceFromShipment builds the policy input from a loaded aggregate.
func ResourceFromShipment(s *shipment.Shipment) Resource {
	return Resource{
		ID:         s.ID(),
		CustomerID: s.CustomerID(),
		DriverID:   s.DriverID(),
	}
}

// decision is a single row of the permission table. allowed is consulted
// first; when ownershipBound is set the caller's id must additionally match
// the owner (for customers) or the assigned driver (for drivers).
type decision struct {
	allowed        bool
	ownershipBound bool
}

// permissionTable maps (role, operation) to a decision. Missing entries deny.
//
// It mirrors the product's access matrix:
//
//	operation            customer     driver          admin
//	create shipment      self-owned   -               any customer
//	list shipments       own only     assigned only   all
//	get shipment         own only     any             any
//	track shipment       public       public          public
//	update status        -            assigned only   any
//	update payment       -            -               any
//	assign driver        -            -               any
//	delete shipment      -            -               any
func permissionTable() map[account.Role]map[Operation]decision {
	return map[account.Role]map[Operation]decision{
		account.Customer: {
			OpCreateShipment: {allowed: true, ownershipBound: true},
			OpListShipments:  {allowed: true},
			OpGetShipment:    {allowed: true, ownershipBound: true},
			OpTrackShipment:  {allowed: true},
		},
		account.Driver: {
			OpListShipments: {allowed: true},
			OpGetShipment:   {allowed: true},
			OpTrackShipment: {allowed: true},
			OpUpdateStatus:  {allowed: true, ownershipBound: true},
		},
		account.Admin: {
			OpCreateShipment: {allowed: true},
			OpListShipments:  {allowed: true},
			OpGetShipment:    {allowed: true},
			OpTrackShipment:  {allowed: true},
			OpUpdateStatus:   {allowed: true},
			OpUpdatePayment:  {allowed: true},
			OpAssignDriver:   {allowed: true},
			OpDeleteShipment: {allowed: true},
		},
	}
}

// AccessPolicy is the pure decision function gating every shipment operation.
// It has no side effects and touches no storage: callers load the resource
// first (inside their own transaction) and pass its ownership facts in.
//
// Denials name the role, operation and resource, so they are never silent.
type AccessPolicy struct{}

// NewAccessPolicy creates the authorization policy.
func NewAccessPolicy() AccessPolicy {
	return AccessPolicy{}
}

// Authorize decides whether the principal may perform op on the resource.
// Returns nil to allow, or an AccessForbiddenError to deny.
//
// Ownership checks compare the caller's id to the resource fields, never the
// role alone: a customer or driver can never act on another party's shipment
// even with a valid token.
func (AccessPolicy) Authorize(p account.Principal, op Operation, res Resource) error {
	if err := p.Validate(); err != nil {
		return err
	}

	deny := func() error {
		return errs.NewAccessForbiddenError(p.Role().String(), op.String(), res.ID)
	}

	ops, ok := permissionTable()[p.Role()]
	if !ok {
		return deny()
	}
	d, ok := ops[op]
	if !ok || !d.allowed {
		return deny()
	}

	if d.ownershipBound && !ownershipHolds(p, res) {
		return deny()
	}

	return nil
}

// ownershipHolds checks the id-level bind for ownership-bound decisions:
// customers must own the shipment, drivers must be assigned to it.
func ownershipHolds(p account.Principal, res Resource) bool {
	switch p.Role() {
	case account.Customer:
		return res.CustomerID == p.UserID()
	case account.Driver:
		return res.DriverID != nil && *res.DriverID == p.UserID()
	case account.Admin, account.UnknownRole:
		return false
	}
	return false
}
