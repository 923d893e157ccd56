package commands

import (
	"context"

	"shiptrack/internal/core/domain/services"
)

// DeleteShipmentCommandHandler handles shipment deletion. Admin only.
// The shipment and its items are removed in one transaction; the shipment is
// loaded first so a missing id surfaces as not-found rather than a no-op.
type DeleteShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
	policy     services.AccessPolicy
}

// NewDeleteShipmentCommandHandler creates a handler for shipment deletion.
func NewDeleteShipmentCommandHandler(
	uowFactory ShipmentUoWFactory,
	policy services.AccessPolicy,
) DeleteShipmentCommandHandler {
	return DeleteShipmentCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

// Handle processes the deletion command.
func (h *DeleteShipmentCommandHandler) Handle(ctx context.Context, cmd DeleteShipmentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	// Deletion is role-gated, not ownership-gated, so authorization runs
	// before the shipment is loaded and non-admins learn nothing about
	// which ids exist.
	if err := h.policy.Authorize(
		cmd.Principal(),
		services.OpDeleteShipment,
		services.Resource{ID: cmd.ShipmentID()},
	); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	shipmentRepo := uow.ShipmentRepository()
	aggregate, err := shipmentRepo.Get(ctx, cmd.ShipmentID())
	if err != nil {
		return err
	}

	if err = shipmentRepo.Delete(ctx, aggregate.ID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
