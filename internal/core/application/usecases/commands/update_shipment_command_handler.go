package commands

import (
	"context"
	"errors"

	"shiptrack/internal/core/domain/model/account"
	"shiptrack/internal/core/domain/model/shipment"
	"shiptrack/internal/core/domain/services"
	"shiptrack/internal/core/ports"
	"shiptrack/internal/pkg/errs"
)

// UpdateShipmentCommandHandler handles partial shipment updates.
//
// The shipment is re-read under a row lock inside the update transaction and
// every rule runs against that fresh state. Concurrent updates of the same
// shipment serialize on the lock, so the Delivered-requires-Paid gate cannot
// race with a payment change and two callers touching different fields keep
// both writes.
//
// Field scope depends on the caller's role: drivers may only move the
// delivery status of shipments assigned to them, and any other field they
// send is dropped without error. Admins may change everything. Payment status
// and driver assignment are applied before a requested status change, so a
// single request marking a shipment Paid and Delivered succeeds.
type UpdateShipmentCommandHandler struct {
	uowFactory UpdateShipmentUoWFactory
	policy     services.AccessPolicy
}

// NewUpdateShipmentCommandHandler creates a handler for shipment updates.
func NewUpdateShipmentCommandHandler(
	uowFactory UpdateShipmentUoWFactory,
	policy services.AccessPolicy,
) UpdateShipmentCommandHandler {
	return UpdateShipmentCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

// Handle processes the update command and returns the updated shipment.
func (h *UpdateShipmentCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateShipmentCommand,
) (*shipment.Shipment, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	shipmentRepo := uow.ShipmentRepository()
	aggregate, err := shipmentRepo.Get(ctx, cmd.ShipmentID())
	if err != nil {
		return nil, err
	}

	if err = h.apply(ctx, uow, cmd, aggregate); err != nil {
		return nil, err
	}

	if err = shipmentRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}

// apply authorizes and applies the requested field changes to the aggregate.
func (h *UpdateShipmentCommandHandler) apply(
	ctx context.Context,
	uow UpdateShipmentUoW,
	cmd UpdateShipmentCommand,
	aggregate *shipment.Shipment,
) error {
	resource := services.ResourceFromShipment(aggregate)
	principal := cmd.Principal()

	if principal.IsDriver() {
		if err := h.policy.Authorize(principal, services.OpUpdateStatus, resource); err != nil {
			return err
		}

		// Drivers may only move the delivery status. Other fields in the
		// request are dropped, not rejected.
		if cmd.Status() != nil {
			return aggregate.ChangeStatus(*cmd.Status())
		}
		return nil
	}

	if cmd.DriverID() != nil {
		if err := h.policy.Authorize(principal, services.OpAssignDriver, resource); err != nil {
			return err
		}
		if err := h.verifyDriver(ctx, uow.UserRegistry(), *cmd.DriverID()); err != nil {
			return err
		}
		if err := aggregate.AssignDriver(*cmd.DriverID()); err != nil {
			return err
		}
	}

	if cmd.PaymentStatus() != nil {
		if err := h.policy.Authorize(principal, services.OpUpdatePayment, resource); err != nil {
			return err
		}
		if err := aggregate.ChangePaymentStatus(*cmd.PaymentStatus()); err != nil {
			return err
		}
	}

	if cmd.Status() != nil {
		if err := h.policy.Authorize(principal, services.OpUpdateStatus, resource); err != nil {
			return err
		}
		if err := aggregate.ChangeStatus(*cmd.Status()); err != nil {
			return err
		}
	}

	return nil
}

// verifyDriver ensures the user being assigned exists and holds the driver role.
func (h *UpdateShipmentCommandHandler) verifyDriver(
	ctx context.Context,
	users ports.UserRegistry,
	driverID int64,
) error {
	role, err := users.GetRole(ctx, driverID)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return errs.NewIntegrityViolationErrorWithCause("driver_id", driverID, err)
		}
		return err
	}
	if role != account.Driver {
		return errs.NewIntegrityViolationError("driver_id", driverID)
	}

	return nil
}
