package queries

import (
	"context"

	"shiptrack/internal/core/domain/model/account"
	"shiptrack/internal/core/domain/services"

	"gorm.io/gorm"
)

// ListShipmentsQueryHandler lists shipments scoped to the caller.
// Scoping happens in the WHERE clause rather than by filtering loaded rows,
// so a customer's query never touches other customers' data.
type ListShipmentsQueryHandler struct {
	db     *gorm.DB
	policy services.AccessPolicy
}

// NewListShipmentsQueryHandler creates a handler for shipment listings.
func NewListShipmentsQueryHandler(db *gorm.DB, policy services.AccessPolicy) ListShipmentsQueryHandler {
	return ListShipmentsQueryHandler{db: db, policy: policy}
}

// Handle executes the listing, newest shipments first.
func (h ListShipmentsQueryHandler) Handle(
	ctx context.Context,
	query ListShipmentsQuery,
) ([]ShipmentResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	principal := query.Principal()
	if err := h.policy.Authorize(principal, services.OpListShipments, services.Resource{}); err != nil {
		return nil, err
	}

	switch principal.Role() {
	case account.Customer:
		return fetchShipments(ctx, h.db, "WHERE customer_id = ?", principal.UserID())
	case account.Driver:
		return fetchShipments(ctx, h.db, "WHERE driver_id = ?", principal.UserID())
	case account.Admin, account.UnknownRole:
	}

	return fetchShipments(ctx, h.db, "")
}
