package commands

import (
	"context"

	"shiptrack/internal/core/domain/model/shipment"
)

// BackfillTrackingNumbersCommandHandler assigns tracking numbers to shipments
// persisted before tracking numbers existed. It is an operator task run from
// a one-shot command, not part of the request path.
//
// All legacy shipments are fixed in a single transaction: the run either
// assigns a number to every one of them or, on a tracking number collision,
// rolls back completely and leaves all rows untouched. Rerunning after an
// abort redoes the whole set with freshly generated numbers.
type BackfillTrackingNumbersCommandHandler struct {
	uowFactory ShipmentUoWFactory
}

// NewBackfillTrackingNumbersCommandHandler creates a handler for the backfill run.
func NewBackfillTrackingNumbersCommandHandler(
	uowFactory ShipmentUoWFactory,
) BackfillTrackingNumbersCommandHandler {
	return BackfillTrackingNumbersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle assigns a fresh tracking number to every shipment lacking one and
// returns how many shipments were fixed.
func (h *BackfillTrackingNumbersCommandHandler) Handle(ctx context.Context) (int, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	shipmentRepo := uow.ShipmentRepository()
	legacy, err := shipmentRepo.GetAllWithoutTrackingNumber(ctx)
	if err != nil {
		return 0, err
	}

	for _, aggregate := range legacy {
		if err = aggregate.AssignTrackingNumber(shipment.GenerateTrackingNumber()); err != nil {
			return 0, err
		}
		if err = shipmentRepo.Update(ctx, aggregate); err != nil {
			return 0, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return len(legacy), nil
}
