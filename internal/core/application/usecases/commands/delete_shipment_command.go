package commands

import (
	"errors"

	"shiptrack/internal/core/domain/model/account"
	"shiptrack/internal/pkg/errs"
	"shiptrack/internal/pkg/guard"
)

var (
	ErrDeleteShipmentCommandIsNotConstructed = errors.New(
		"DeleteShipmentCommand must be created via NewDeleteShipmentCommand constructor",
	)
)

// DeleteShipmentCommand represents a request to destroy a shipment together
// with its line items.
type DeleteShipmentCommand struct { //nolint:recvcheck //using for validation
	principal  account.Principal
	shipmentID int64

	guard guard.ConstructorGuard
}

// NewDeleteShipmentCommand creates a command to delete a shipment.
func NewDeleteShipmentCommand(
	principal account.Principal,
	shipmentID int64,
) (DeleteShipmentCommand, error) {
	cmd := DeleteShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPrincipal(principal),
		cmd.setShipmentID(shipmentID),
	); err != nil {
		return DeleteShipmentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteShipmentCommand) Validate() error {
	return c.guard.Validate(ErrDeleteShipmentCommandIsNotConstructed)
}

// Principal returns the calling principal.
func (c DeleteShipmentCommand) Principal() account.Principal {
	return c.principal
}

// ShipmentID returns the id of the shipment to delete.
func (c DeleteShipmentCommand) ShipmentID() int64 {
	return c.shipmentID
}

func (c *DeleteShipmentCommand) setPrincipal(principal account.Principal) error {
	if err := principal.Validate(); err != nil {
		return err
	}

	c.principal = principal
	return nil
}

func (c *DeleteShipmentCommand) setShipmentID(shipmentID int64) error {
	if shipmentID <= 0 {
		return errs.NewValueIsRequiredError("shipment id")
	}

	c.shipmentID = shipmentID
	return nil
}
