package queries

import (
	"errors"

	"shiptrack/internal/core/domain/model/account"
	"shiptrack/internal/pkg/errs"
	"shiptrack/internal/pkg/guard"
)

var (
	ErrGetShipmentByIDQueryIsNotConstructed = errors.New(
		"GetShipmentByIDQuery must be created via NewGetShipmentByIDQuery constructor",
	)
)

// GetShipmentByIDQuery retrieves a single shipment with its items.
// Customers may only read their own shipments; drivers and admins any.
//
// Example:
//
//	query, err := NewGetShipmentByIDQuery(principal, 42)
//	if err != nil {
//	    return fmt.Errorf("invalid query: %w", err)
//	}
//
//	resp, err := handler.Handle(ctx, query)
type GetShipmentByIDQuery struct { //nolint:recvcheck //using for validation
	principal  account.Principal
	shipmentID int64

	guard guard.ConstructorGuard
}

// NewGetShipmentByIDQuery creates a query to read one shipment.
func NewGetShipmentByIDQuery(principal account.Principal, shipmentID int64) (GetShipmentByIDQuery, error) {
	query := GetShipmentByIDQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		query.setPrincipal(principal),
		query.setShipmentID(shipmentID),
	); err != nil {
		return GetShipmentByIDQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetShipmentByIDQuery) Validate() error {
	return q.guard.Validate(ErrGetShipmentByIDQueryIsNotConstructed)
}

// Principal returns the calling principal.
func (q GetShipmentByIDQuery) Principal() account.Principal {
	return q.principal
}

// ShipmentID returns the id of the shipment to read.
func (q GetShipmentByIDQuery) ShipmentID() int64 {
	return q.shipmentID
}

func (q *GetShipmentByIDQuery) setPrincipal(principal account.Principal) error {
	if err := principal.Validate(); err != nil {
		return err
	}

	q.principal = principal
	return nil
}

func (q *GetShipmentByIDQuery) setShipmentID(shipmentID int64) error {
	if shipmentID <= 0 {
		return errs.NewValueIsRequiredError("shipment id")
	}

	q.shipmentID = shipmentID
	return nil
}
