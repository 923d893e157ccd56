package shipment

import (
	"errors"
	"time"

	"shiptrack/internal/pkg/errs"
	"shiptrack/internal/pkg/guard"
)

// Domain errors for shipment operations.
var (
	// ErrShipmentIsNotConstructed is returned when using an improperly
	// initialized Shipment.
	ErrShipmentIsNotConstructed = errors.New("Shipment must be created via NewShipment constructor")

	// ErrOriginIsRequired is returned when the origin address is empty.
	ErrOriginIsRequired = errs.NewValueIsRequiredError("origin")

	// ErrDestinationIsRequired is returned when the destination address is empty.
	ErrDestinationIsRequired = errs.NewValueIsRequiredError("destination")

	// ErrRecipientIsRequired is returned when the recipient name is empty.
	ErrRecipientIsRequired = errs.NewValueIsRequiredError("recipient")

	// ErrCustomerIsRequired is returned when the owning customer id is missing.
	ErrCustomerIsRequired = errs.NewValueIsRequiredError("customer_id")

	// ErrDriverIDIsRequired is returned when an assignment carries no driver id.
	ErrDriverIDIsRequired = errs.NewValueIsRequiredError("driver_id")

	// ErrItemsAreRequired is returned when a shipment is created without line items.
	ErrItemsAreRequired = errs.NewValueIsRequiredError("items")

	// ErrShipmentIsUnpaid rejects the Delivered transition while the shipment
	// is not paid. The check runs against state re-read inside the update
	// transaction, so a concurrent payment flip cannot slip past it.
	ErrShipmentIsUnpaid = errs.NewDomainRuleError("shipment cannot be delivered while unpaid")

	// ErrTrackingNumberIsImmutable rejects reassigning a tracking number that
	// is already set.
	ErrTrackingNumberIsImmutable = errs.NewDomainRuleError("tracking number is immutable once assigned")
)

// Shipment represents a delivery order. It is the aggregate root owning its
// line items and the status/payment state machine.
//
// Shipment follows these invariants:
//   - Exactly one owning customer, at most one assigned driver
//   - origin, destination, recipient, customer id, creation time and
//     tracking number are immutable after creation
//   - status, payment status and driver assignment are the only fields that
//     ever change post-creation
//   - At least one line item, attached at creation, never modified after
//   - Delivered is only reachable while the shipment is Paid
//
// The struct uses private fields so every mutation flows through a validated
// method, and can only be created through NewShipment or RestoreShipment.
type Shipment struct {
	// id is assigned by storage on first persist; zero until then
	id int64

	// trackingNumber is the public immutable identifier
	trackingNumber TrackingNumber

	// origin is the pickup address
	origin string

	// destination is the delivery address
	destination string

	// recipient is the person receiving the shipment
	recipient string

	// weight in kilograms, nil when not measured
	weight *float64

	// status is the current delivery lifecycle state
	status Status

	// paymentStatus is the externally managed financial state
	paymentStatus PaymentStatus

	// notes is free-form text attached at creation
	notes string

	// customerID is the owning customer, immutable
	customerID int64

	// driverID is the assigned driver, nil while unassigned
	driverID *int64

	// createdAt is set once at creation
	createdAt time.Time

	// items are the shipment's product lines
	items []Item

	// guard ensures the shipment was created via a constructor
	guard guard.ConstructorGuard
}

// NewShipment creates a shipment ready for its first persist: status Pending,
// payment Unpaid, a freshly generated tracking number and the current UTC
// time as creation time. The line items must already be constructed; at
// least one is required.
//
// All validation failures are joined, so a malformed request reports every
// problem at once and nothing is ever written for it.
func NewShipment(
	origin, destination, recipient string,
	weight *float64,
	notes string,
	customerID int64,
	items []Item,
) (*Shipment, error) {
	s := &Shipment{
		trackingNumber: GenerateTrackingNumber(),
		status:         Pending,
		paymentStatus:  Unpaid,
		notes:          notes,
		createdAt:      time.Now().UTC(),
		guard:          guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		s.setOrigin(origin),
		s.setDestination(destination),
		s.setRecipient(recipient),
		s.setWeight(weight),
		s.setCustomerID(customerID),
		s.setItems(items),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// RestoreShipment reconstructs a shipment from persistence with its
// storage-assigned id and current state. An empty tracking number is
// tolerated here only because legacy rows exist that predate tracking
// numbers; the backfill command assigns them one.
func RestoreShipment(
	id int64,
	trackingNumber TrackingNumber,
	origin, destination, recipient string,
	weight *float64,
	status Status,
	paymentStatus PaymentStatus,
	notes string,
	customerID int64,
	driverID *int64,
	createdAt time.Time,
	items []Item,
) (*Shipment, error) {
	s := &Shipment{
		trackingNumber: trackingNumber,
		notes:          notes,
		createdAt:      createdAt,
		guard:          guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		s.setOrigin(origin),
		s.setDestination(destination),
		s.setRecipient(recipient),
		s.setWeight(weight),
		s.setCustomerID(customerID),
		s.setItems(items),
	); err != nil {
		return nil, err
	}

	if id <= 0 {
		return nil, errs.NewValueIsRequiredError("shipment id")
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if err := paymentStatus.Validate(); err != nil {
		return nil, err
	}

	s.id = id
	s.status = status
	s.paymentStatus = paymentStatus

	if driverID != nil {
		if err := s.AssignDriver(*driverID); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Validate ensures the Shipment was created through a constructor.
// Call this when receiving aggregates across a boundary, e.g. in repositories.
func (s *Shipment) Validate() error {
	if s == nil {
		return ErrShipmentIsNotConstructed
	}
	return s.guard.Validate(ErrShipmentIsNotConstructed)
}

// ID returns the storage-assigned id, zero for unpersisted shipments.
func (s *Shipment) ID() int64 {
	return s.id
}

// TrackingNumber returns the public tracking number.
// Zero only on legacy rows awaiting backfill.
func (s *Shipment) TrackingNumber() TrackingNumber {
	return s.trackingNumber
}

// Origin returns the pickup address.
func (s *Shipment) Origin() string {
	return s.origin
}

// Destination returns the delivery address.
func (s *Shipment) Destination() string {
	return s.destination
}

// Recipient returns the receiving party's name.
func (s *Shipment) Recipient() string {
	return s.recipient
}

// Weight returns the shipment weight in kilograms, nil when not measured.
func (s *Shipment) Weight() *float64 {
	return s.weight
}

// Status returns the current delivery lifecycle state.
func (s *Shipment) Status() Status {
	return s.status
}

// PaymentStatus returns the current financial state.
func (s *Shipment) PaymentStatus() PaymentStatus {
	return s.paymentStatus
}

// Notes returns the free-form text attached at creation.
func (s *Shipment) Notes() string {
	return s.notes
}

// CustomerID returns the owning customer's user id.
func (s *Shipment) CustomerID() int64 {
	return s.customerID
}

// DriverID returns the assigned driver's user id, nil while unassigned.
func (s *Shipment) DriverID() *int64 {
	return s.driverID
}

// CreatedAt returns the creation time.
func (s *Shipment) CreatedAt() time.Time {
	return s.createdAt
}

// Items returns the shipment's line items.
func (s *Shipment) Items() []Item {
	return s.items
}

// IsAssignedTo reports whether the given driver is assigned to this shipment.
// Ownership checks compare ids, never roles alone.
func (s *Shipment) IsAssignedTo(driverID int64) bool {
	return s.driverID != nil && *s.driverID == driverID
}

// IsOwnedBy reports whether the given customer owns this shipment.
func (s *Shipment) IsOwnedBy(customerID int64) bool {
	return s.customerID == customerID
}

// ChangeStatus moves the shipment to the given status.
//
// Any valid status value is accepted from an authorized caller except one
// hard business rule: entering Delivered requires the payment status to be
// Paid at this moment. Callers must invoke this on state re-read inside the
// same transaction as the write, so the rule cannot race with a concurrent
// payment update.
func (s *Shipment) ChangeStatus(next Status) error {
	if err := next.Validate(); err != nil {
		return err
	}

	if next == Delivered && s.paymentStatus != Paid {
		return ErrShipmentIsUnpaid
	}

	s.status = next
	return nil
}

// ChangePaymentStatus sets the externally determined financial state.
func (s *Shipment) ChangePaymentStatus(next PaymentStatus) error {
	if err := next.Validate(); err != nil {
		return err
	}

	s.paymentStatus = next
	return nil
}

// AssignDriver sets the shipment's driver. Reassignment is allowed; whether
// the caller may assign at all is the authorization policy's decision, not
// the aggregate's.
func (s *Shipment) AssignDriver(driverID int64) error {
	if driverID <= 0 {
		return ErrDriverIDIsRequired
	}

	s.driverID = &driverID
	return nil
}

// AssignTrackingNumber sets the tracking number on a legacy shipment that
// has none. A tracking number already present is immutable and attempting to
// replace it is a domain rule violation.
func (s *Shipment) AssignTrackingNumber(tn TrackingNumber) error {
	if !s.trackingNumber.IsZero() {
		return ErrTrackingNumberIsImmutable
	}
	if tn.IsZero() {
		return errs.NewValueIsRequiredError("tracking_number")
	}

	s.trackingNumber = tn
	return nil
}

// ReissueTrackingNumber replaces the tracking number with a freshly generated
// one. Used solely to resolve a uniqueness collision before the shipment is
// first persisted; persisted tracking numbers are never reassigned.
func (s *Shipment) ReissueTrackingNumber() {
	s.trackingNumber = GenerateTrackingNumber()
}

func (s *Shipment) setOrigin(origin string) error {
	if origin == "" {
		return ErrOriginIsRequired
	}
	s.origin = origin
	return nil
}

func (s *Shipment) setDestination(destination string) error {
	if destination == "" {
		return ErrDestinationIsRequired
	}
	s.destination = destination
	return nil
}

func (s *Shipment) setRecipient(recipient string) error {
	if recipient == "" {
		return ErrRecipientIsRequired
	}
	s.recipient = recipient
	return nil
}

func (s *Shipment) setWeight(weight *float64) error {
	if weight != nil && *weight < 0 {
		return errs.NewValueIsOutOfRangeError("weight", *weight, 0, "unbounded")
	}
	s.weight = weight
	return nil
}

func (s *Shipment) setCustomerID(customerID int64) error {
	if customerID <= 0 {
		return ErrCustomerIsRequired
	}
	s.customerID = customerID
	return nil
}

func (s *Shipment) setItems(items []Item) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	s.items = items
	return nil
}
