package queries

import (
	"context"

	"shiptrack/internal/core/domain/services"
	"shiptrack/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetShipmentByIDQueryHandler reads a single shipment from the database.
// The ownership check runs on the loaded row, so a customer probing another
// customer's shipment gets a forbidden error, not a not-found one.
type GetShipmentByIDQueryHandler struct {
	db     *gorm.DB
	policy services.AccessPolicy
}

// NewGetShipmentByIDQueryHandler creates a handler for single-shipment reads.
func NewGetShipmentByIDQueryHandler(db *gorm.DB, policy services.AccessPolicy) GetShipmentByIDQueryHandler {
	return GetShipmentByIDQueryHandler{db: db, policy: policy}
}

// Handle executes the query and returns the shipment read model.
func (h GetShipmentByIDQueryHandler) Handle(
	ctx context.Context,
	query GetShipmentByIDQuery,
) (ShipmentResponse, error) {
	if err := query.Validate(); err != nil {
		return ShipmentResponse{}, err
	}

	shipments, err := fetchShipments(ctx, h.db, "WHERE id = ?", query.ShipmentID())
	if err != nil {
		return ShipmentResponse{}, err
	}
	if len(shipments) == 0 {
		return ShipmentResponse{}, errs.NewObjectNotFoundError("shipment id", query.ShipmentID())
	}

	resp := shipments[0]
	if err = h.policy.Authorize(
		query.Principal(),
		services.OpGetShipment,
		services.Resource{ID: resp.ID, CustomerID: resp.CustomerID, DriverID: resp.DriverID},
	); err != nil {
		return ShipmentResponse{}, err
	}

	return resp, nil
}
