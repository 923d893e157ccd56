package commands

import (
	"errors"

	"shiptrack/internal/core/domain/model/account"
	"shiptrack/internal/core/domain/model/shipment"
	"shiptrack/internal/pkg/errs"
	"shiptrack/internal/pkg/guard"
)

var (
	ErrUpdateShipmentCommandIsNotConstructed = errors.New(
		"UpdateShipmentCommand must be created via NewUpdateShipmentCommand constructor",
	)
	ErrNoUpdateFields = errs.NewValueIsRequiredError("status, payment_status or driver_id")
)

// UpdateShipmentCommand represents a partial update of a shipment's mutable
// fields. Nil fields are left untouched. At least one field must be set.
type UpdateShipmentCommand struct { //nolint:recvcheck //using for validation
	principal     account.Principal
	shipmentID    int64
	status        *shipment.Status
	paymentStatus *shipment.PaymentStatus
	driverID      *int64

	guard guard.ConstructorGuard
}

// NewUpdateShipmentCommand creates a command to patch an existing shipment.
// Validates the principal, the shipment id and every provided field value.
func NewUpdateShipmentCommand(
	principal account.Principal,
	shipmentID int64,
	status *shipment.Status,
	paymentStatus *shipment.PaymentStatus,
	driverID *int64,
) (UpdateShipmentCommand, error) {
	cmd := UpdateShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPrincipal(principal),
		cmd.setShipmentID(shipmentID),
		cmd.setStatus(status),
		cmd.setPaymentStatus(paymentStatus),
		cmd.setDriverID(driverID),
	); err != nil {
		return UpdateShipmentCommand{}, err
	}

	if status == nil && paymentStatus == nil && driverID == nil {
		return UpdateShipmentCommand{}, ErrNoUpdateFields
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateShipmentCommand) Validate() error {
	return c.guard.Validate(ErrUpdateShipmentCommandIsNotConstructed)
}

// Principal returns the calling principal.
func (c UpdateShipmentCommand) Principal() account.Principal {
	return c.principal
}

// ShipmentID returns the id of the shipment to update.
func (c UpdateShipmentCommand) ShipmentID() int64 {
	return c.shipmentID
}

// Status returns the requested delivery status, nil when not requested.
func (c UpdateShipmentCommand) Status() *shipment.Status {
	return c.status
}

// PaymentStatus returns the requested payment status, nil when not requested.
func (c UpdateShipmentCommand) PaymentStatus() *shipment.PaymentStatus {
	return c.paymentStatus
}

// DriverID returns the driver to assign, nil when not requested.
func (c UpdateShipmentCommand) DriverID() *int64 {
	return c.driverID
}

func (c *UpdateShipmentCommand) setPrincipal(principal account.Principal) error {
	if err := principal.Validate(); err != nil {
		return err
	}

	c.principal = principal
	return nil
}

func (c *UpdateShipmentCommand) setShipmentID(shipmentID int64) error {
	if shipmentID <= 0 {
		return errs.NewValueIsRequiredError("shipment id")
	}

	c.shipmentID = shipmentID
	return nil
}

func (c *UpdateShipmentCommand) setStatus(status *shipment.Status) error {
	if status != nil {
		if err := status.Validate(); err != nil {
			return err
		}
	}

	c.status = status
	return nil
}

func (c *UpdateShipmentCommand) setPaymentStatus(paymentStatus *shipment.PaymentStatus) error {
	if paymentStatus != nil {
		if err := paymentStatus.Validate(); err != nil {
			return err
		}
	}

	c.paymentStatus = paymentStatus
	return nil
}

func (c *UpdateShipmentCommand) setDriverID(driverID *int64) error {
	if driverID != nil && *driverID <= 0 {
		return errs.NewValueIsInvalidError("driver_id")
	}

	c.driverID = driverID
	return nil
}
