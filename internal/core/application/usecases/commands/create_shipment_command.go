package commands

import (
	"errors"

	"shiptrack/internal/core/domain/model/account"
	"shiptrack/internal/core/domain/model/shipment"
	"shiptrack/internal/pkg/errs"
	"shiptrack/internal/pkg/guard"
)

var (
	ErrCreateShipmentCommandIsNotConstructed = errors.New(
		"CreateShipmentCommand must be created via NewCreateShipmentCommand constructor",
	)
)

// CreateShipmentCommand represents a request to register a new shipment.
// Carries the calling principal so the handler can authorize the operation,
// plus the shipment details and already-constructed line items.
//
// Example:
//
//	item, _ := shipment.NewItem(3, 2)
//	cmd, err := NewCreateShipmentCommand(
//	    principal, "Nairobi", "Mombasa", "Jane Doe", nil, "fragile",
//	    customerID, nil, []shipment.Item{item},
//	)
//	if err != nil {
//	    return fmt.Errorf("invalid shipment data: %w", err)
//	}
//
//	created, err := handler.Handle(ctx, cmd)
type CreateShipmentCommand struct { //nolint:recvcheck //using for validation
	principal   account.Principal
	origin      string
	destination string
	recipient   string
	weight      *float64
	notes       string
	customerID  int64
	driverID    *int64
	items       []shipment.Item

	guard guard.ConstructorGuard
}

// NewCreateShipmentCommand creates a command to register a new shipment.
// Validates the principal, the required shipment fields and every line item.
// All validation failures are joined and reported together.
func NewCreateShipmentCommand(
	principal account.Principal,
	origin, destination, recipient string,
	weight *float64,
	notes string,
	customerID int64,
	driverID *int64,
	items []shipment.Item,
) (CreateShipmentCommand, error) {
	cmd := CreateShipmentCommand{
		notes: notes,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPrincipal(principal),
		cmd.setOrigin(origin),
		cmd.setDestination(destination),
		cmd.setRecipient(recipient),
		cmd.setWeight(weight),
		cmd.setCustomerID(customerID),
		cmd.setDriverID(driverID),
		cmd.setItems(items),
	); err != nil {
		return CreateShipmentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateShipmentCommandIsNotConstructed if validation fails.
func (c CreateShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCreateShipmentCommandIsNotConstructed)
}

// Principal returns the calling principal.
func (c CreateShipmentCommand) Principal() account.Principal {
	return c.principal
}

// Origin returns the pickup address.
func (c CreateShipmentCommand) Origin() string {
	return c.origin
}

// Destination returns the delivery address.
func (c CreateShipmentCommand) Destination() string {
	return c.destination
}

// Recipient returns the receiving party's name.
func (c CreateShipmentCommand) Recipient() string {
	return c.recipient
}

// Weight returns the shipment weight in kilograms, nil when not provided.
func (c CreateShipmentCommand) Weight() *float64 {
	return c.weight
}

// Notes returns the free-form notes.
func (c CreateShipmentCommand) Notes() string {
	return c.notes
}

// CustomerID returns the id of the customer who will own the shipment.
func (c CreateShipmentCommand) CustomerID() int64 {
	return c.customerID
}

// DriverID returns the driver to assign at creation, nil for none.
func (c CreateShipmentCommand) DriverID() *int64 {
	return c.driverID
}

// Items returns the shipment's line items.
func (c CreateShipmentCommand) Items() []shipment.Item {
	return c.items
}

func (c *CreateShipmentCommand) setPrincipal(principal account.Principal) error {
	if err := principal.Validate(); err != nil {
		return err
	}

	c.principal = principal
	return nil
}

func (c *CreateShipmentCommand) setOrigin(origin string) error {
	if origin == "" {
		return errs.NewValueIsRequiredError("origin")
	}

	c.origin = origin
	return nil
}

func (c *CreateShipmentCommand) setDestination(destination string) error {
	if destination == "" {
		return errs.NewValueIsRequiredError("destination")
	}

	c.destination = destination
	return nil
}

func (c *CreateShipmentCommand) setRecipient(recipient string) error {
	if recipient == "" {
		return errs.NewValueIsRequiredError("recipient")
	}

	c.recipient = recipient
	return nil
}

func (c *CreateShipmentCommand) setWeight(weight *float64) error {
	if weight != nil && *weight < 0 {
		return errs.NewValueIsOutOfRangeError("weight", *weight, 0, "unbounded")
	}

	c.weight = weight
	return nil
}

func (c *CreateShipmentCommand) setCustomerID(customerID int64) error {
	if customerID <= 0 {
		return errs.NewValueIsRequiredError("customer_id")
	}

	c.customerID = customerID
	return nil
}

func (c *CreateShipmentCommand) setDriverID(driverID *int64) error {
	if driverID != nil && *driverID <= 0 {
		return errs.NewValueIsInvalidError("driver_id")
	}

	c.driverID = driverID
	return nil
}

func (c *CreateShipmentCommand) setItems(items []shipment.Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	c.items = items
	return nil
}
