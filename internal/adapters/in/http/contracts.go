package http

import (
	"time"

	"shiptrack/internal/core/application/usecases/queries"
	"shiptrack/internal/core/domain/model/shipment"
)

// createShipmentRequest is the body of POST /api/shipments.
// CustomerID may be omitted by customers; it then defaults to the caller.
type createShipmentRequest struct {
	Origin      string                `json:"origin"`
	Destination string                `json:"destination"`
	Recipient   string                `json:"recipient"`
	Weight      *float64              `json:"weight,omitempty"`
	Notes       string                `json:"notes,omitempty"`
	CustomerID  *int64                `json:"customer_id,omitempty"`
	DriverID    *int64                `json:"driver_id,omitempty"`
	Items       []shipmentItemRequest `json:"items"`
}

type shipmentItemRequest struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

// updateShipmentRequest is the body of PATCH /api/shipments/:id.
// All fields are optional; absent fields are left untouched.
type updateShipmentRequest struct {
	Status        *string `json:"status,omitempty"`
	PaymentStatus *string `json:"payment_status,omitempty"`
	DriverID      *int64  `json:"driver_id,omitempty"`
}

// shipmentResponse is the wire representation of a shipment, shared by the
// command endpoints (rendered from the aggregate) and the query endpoints
// (rendered from the read model).
type shipmentResponse struct {
	ID             int64                  `json:"id"`
	TrackingNumber string                 `json:"tracking_number,omitempty"`
	Origin         string                 `json:"origin"`
	Destination    string                 `json:"destination"`
	Recipient      string                 `json:"recipient"`
	Weight         *float64               `json:"weight,omitempty"`
	Status         string                 `json:"status"`
	PaymentStatus  string                 `json:"payment_status"`
	Notes          string                 `json:"notes,omitempty"`
	CustomerID     int64                  `json:"customer_id"`
	DriverID       *int64                 `json:"driver_id,omitempty"`
	CreatedAt      time.Time              `json:"created_at"`
	Items          []shipmentItemResponse `json:"items"`
}

type shipmentItemResponse struct {
	ID        int64 `json:"id"`
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

// errorResponse is the JSON body returned for every failed request.
type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// shipmentResponseFromAggregate renders a domain aggregate for the wire.
func shipmentResponseFromAggregate(s *shipment.Shipment) shipmentResponse {
	items := make([]shipmentItemResponse, 0, len(s.Items()))
	for _, item := range s.Items() {
		items = append(items, shipmentItemResponse{
			ID:        item.ID(),
			ProductID: item.ProductID(),
			Quantity:  item.Quantity(),
		})
	}

	return shipmentResponse{
		ID:             s.ID(),
		TrackingNumber: s.TrackingNumber().String(),
		Origin:         s.Origin(),
		Destination:    s.Destination(),
		Recipient:      s.Recipient(),
		Weight:         s.Weight(),
		Status:         s.Status().String(),
		PaymentStatus:  s.PaymentStatus().String(),
		Notes:          s.Notes(),
		CustomerID:     s.CustomerID(),
		DriverID:       s.DriverID(),
		CreatedAt:      s.CreatedAt(),
		Items:          items,
	}
}

// shipmentResponseFromReadModel renders a query result for the wire.
func shipmentResponseFromReadModel(r queries.ShipmentResponse) shipmentResponse {
	items := make([]shipmentItemResponse, 0, len(r.Items))
	for _, item := range r.Items {
		items = append(items, shipmentItemResponse{
			ID:        item.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	return shipmentResponse{
		ID:             r.ID,
		TrackingNumber: r.TrackingNumber,
		Origin:         r.Origin,
		Destination:    r.Destination,
		Recipient:      r.Recipient,
		Weight:         r.Weight,
		Status:         r.Status,
		PaymentStatus:  r.PaymentStatus,
		Notes:          r.Notes,
		CustomerID:     r.CustomerID,
		DriverID:       r.DriverID,
		CreatedAt:      r.CreatedAt,
		Items:          items,
	}
}
