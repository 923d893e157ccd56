package queries

import (
	"errors"

	"shiptrack/internal/core/domain/model/shipment"
	"shiptrack/internal/pkg/guard"
)

var (
	ErrGetShipmentByTrackingNumberQueryIsNotConstructed = errors.New(
		"GetShipmentByTrackingNumberQuery must be created via NewGetShipmentByTrackingNumberQuery constructor",
	)
)

// GetShipmentByTrackingNumberQuery retrieves a shipment by its public
// tracking number. The endpoint is unauthenticated: knowing a valid tracking
// number is the credential, so the query carries no principal.
type GetShipmentByTrackingNumberQuery struct { //nolint:recvcheck //using for validation
	trackingNumber shipment.TrackingNumber

	guard guard.ConstructorGuard
}

// NewGetShipmentByTrackingNumberQuery creates a public tracking query.
// The raw input is parsed and normalized, so lowercase or padded tracking
// numbers are accepted.
func NewGetShipmentByTrackingNumberQuery(rawTrackingNumber string) (GetShipmentByTrackingNumberQuery, error) {
	trackingNumber, err := shipment.ParseTrackingNumber(rawTrackingNumber)
	if err != nil {
		return GetShipmentByTrackingNumberQuery{}, err
	}

	return GetShipmentByTrackingNumberQuery{
		trackingNumber: trackingNumber,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetShipmentByTrackingNumberQuery) Validate() error {
	return q.guard.Validate(ErrGetShipmentByTrackingNumberQueryIsNotConstructed)
}

// TrackingNumber returns the normalized tracking number.
func (q GetShipmentByTrackingNumberQuery) TrackingNumber() shipment.TrackingNumber {
	return q.trackingNumber
}
