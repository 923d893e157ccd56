package queries

import (
	"context"

	"shiptrack/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetShipmentByTrackingNumberQueryHandler serves the public tracking lookup.
type GetShipmentByTrackingNumberQueryHandler struct {
	db *gorm.DB
}

// NewGetShipmentByTrackingNumberQueryHandler creates a handler for tracking lookups.
func NewGetShipmentByTrackingNumberQueryHandler(db *gorm.DB) GetShipmentByTrackingNumberQueryHandler {
	return GetShipmentByTrackingNumberQueryHandler{db: db}
}

// Handle executes the lookup and returns the shipment read model.
func (h GetShipmentByTrackingNumberQueryHandler) Handle(
	ctx context.Context,
	query GetShipmentByTrackingNumberQuery,
) (ShipmentResponse, error) {
	if err := query.Validate(); err != nil {
		return ShipmentResponse{}, err
	}

	shipments, err := fetchShipments(ctx, h.db, "WHERE tracking_number = ?", query.TrackingNumber().String())
	if err != nil {
		return ShipmentResponse{}, err
	}
	if len(shipments) == 0 {
		return ShipmentResponse{}, errs.NewObjectNotFoundError("tracking number", query.TrackingNumber().String())
	}

	return shipments[0], nil
}
