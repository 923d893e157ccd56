package commands

import (
	"context"
	"errors"

	"shiptrack/internal/core/domain/model/account"
	"shiptrack/internal/core/domain/model/shipment"
	"shiptrack/internal/core/domain/services"
	"shiptrack/internal/pkg/errs"
)

// maxTrackingNumberAttempts bounds how often creation retries after a
// tracking number uniqueness collision before giving up.
const maxTrackingNumberAttempts = 5

// CreateShipmentCommandHandler handles the business logic for shipment
// creation: authorization, referential checks against the user and product
// stores, and atomic persistence of the shipment with its items.
//
// Tracking number collisions are resolved by reissuing the number and
// retrying the whole transaction. A failed unique insert poisons the open
// transaction, so every attempt runs on a fresh unit of work.
type CreateShipmentCommandHandler struct {
	uowFactory CreateShipmentUoWFactory
	policy     services.AccessPolicy
}

// NewCreateShipmentCommandHandler creates a handler for shipment creation.
func NewCreateShipmentCommandHandler(
	uowFactory CreateShipmentUoWFactory,
	policy services.AccessPolicy,
) CreateShipmentCommandHandler {
	return CreateShipmentCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

// Handle processes the shipment creation command and returns the persisted
// shipment carrying its storage-assigned ids and tracking number.
//
// Customers may only create shipments they own; admins may create for any
// customer. Setting an initial driver requires the assignment privilege and
// the driver must exist and hold the driver role. Every line item must
// reference an existing product. Nothing is written unless all checks pass.
func (h *CreateShipmentCommandHandler) Handle(
	ctx context.Context,
	cmd CreateShipmentCommand,
) (*shipment.Shipment, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if err := h.policy.Authorize(
		cmd.Principal(),
		services.OpCreateShipment,
		services.Resource{CustomerID: cmd.CustomerID()},
	); err != nil {
		return nil, err
	}

	aggregate, err := shipment.NewShipment(
		cmd.Origin(), cmd.Destination(), cmd.Recipient(),
		cmd.Weight(), cmd.Notes(), cmd.CustomerID(), cmd.Items(),
	)
	if err != nil {
		return nil, err
	}

	// Assigning a driver at creation is a separate privilege.
	if cmd.DriverID() != nil {
		if err = h.policy.Authorize(
			cmd.Principal(),
			services.OpAssignDriver,
			services.Resource{CustomerID: cmd.CustomerID()},
		); err != nil {
			return nil, err
		}

		if err = aggregate.AssignDriver(*cmd.DriverID()); err != nil {
			return nil, err
		}
	}

	for range maxTrackingNumberAttempts {
		var persisted *shipment.Shipment
		persisted, err = h.persist(ctx, cmd, aggregate)
		if err == nil {
			return persisted, nil
		}
		if !isTrackingNumberCollision(err) {
			return nil, err
		}

		aggregate.ReissueTrackingNumber()
	}

	return nil, err
}

// persist runs one full creation attempt in its own transaction.
func (h *CreateShipmentCommandHandler) persist(
	ctx context.Context,
	cmd CreateShipmentCommand,
	aggregate *shipment.Shipment,
) (*shipment.Shipment, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	users := uow.UserRegistry()
	if _, err := users.GetRole(ctx, cmd.CustomerID()); err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil, errs.NewIntegrityViolationErrorWithCause("customer_id", cmd.CustomerID(), err)
		}
		return nil, err
	}

	if cmd.DriverID() != nil {
		role, err := users.GetRole(ctx, *cmd.DriverID())
		if err != nil {
			if errors.Is(err, errs.ErrObjectNotFound) {
				return nil, errs.NewIntegrityViolationErrorWithCause("driver_id", *cmd.DriverID(), err)
			}
			return nil, err
		}
		if role != account.Driver {
			return nil, errs.NewIntegrityViolationError("driver_id", *cmd.DriverID())
		}
	}

	products := uow.ProductCatalog()
	for _, item := range cmd.Items() {
		exists, err := products.Exists(ctx, item.ProductID())
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, errs.NewValueIsInvalidError("product_id")
		}
	}

	persisted, err := uow.ShipmentRepository().Add(ctx, aggregate)
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return persisted, nil
}

// isTrackingNumberCollision reports whether the error is a uniqueness breach
// on the tracking number column, the only integrity violation creation may
// retry.
func isTrackingNumberCollision(err error) bool {
	var integrityErr *errs.IntegrityViolationError
	return errors.As(err, &integrityErr) && integrityErr.ParamName == "tracking_number"
}
