// Package queries contains read-only operations in the CQRS architecture.
// Query handlers read the database directly with raw SQL, bypassing the
// aggregate layer, and return flat read models ready for serialization.
package queries

import (
	"context"
	"database/sql"
	"time"

	"shiptrack/internal/core/domain/model/shipment"

	"gorm.io/gorm"
)

// ShipmentResponse is the read model for a shipment, statuses already
// rendered as their wire strings.
type ShipmentResponse struct {
	ID             int64
	TrackingNumber string
	Origin         string
	Destination    string
	Recipient      string
	Weight         *float64
	Status         string
	PaymentStatus  string
	Notes          string
	CustomerID     int64
	DriverID       *int64
	CreatedAt      time.Time
	Items          []ShipmentItemResponse
}

// ShipmentItemResponse is one product line of a shipment read model.
type ShipmentItemResponse struct {
	ID        int64
	ProductID int64
	Quantity  int
}

// fetchShipments loads shipments matching the given WHERE clause, newest
// first, and eagerly attaches their items with a second query.
func fetchShipments(
	ctx context.Context,
	db *gorm.DB,
	where string,
	args ...any,
) ([]ShipmentResponse, error) {
	shipments := make([]ShipmentResponse, 0)

	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			id,
			tracking_number,
			origin,
			destination,
			recipient,
			weight,
			status,
			payment_status,
			notes,
			customer_id,
			driver_id,
			created_at
		FROM shipments
		`+where+`
		ORDER BY id DESC
	`, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp ShipmentResponse
		var trackingNumber sql.NullString
		var weight sql.NullFloat64
		var driverID sql.NullInt64
		var status, paymentStatus int

		err = rows.Scan(
			&resp.ID,
			&trackingNumber,
			&resp.Origin,
			&resp.Destination,
			&resp.Recipient,
			&weight,
			&status,
			&paymentStatus,
			&resp.Notes,
			&resp.CustomerID,
			&driverID,
			&resp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		resp.TrackingNumber = trackingNumber.String
		if weight.Valid {
			resp.Weight = &weight.Float64
		}
		if driverID.Valid {
			resp.DriverID = &driverID.Int64
		}
		resp.Status = shipment.Status(status).String()
		resp.PaymentStatus = shipment.PaymentStatus(paymentStatus).String()
		resp.Items = make([]ShipmentItemResponse, 0)

		shipments = append(shipments, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	if len(shipments) == 0 {
		return shipments, nil
	}

	if err = attachItems(ctx, db, shipments); err != nil {
		return nil, err
	}

	return shipments, nil
}

// attachItems loads the items of all given shipments in one query and
// distributes them to their owners.
func attachItems(ctx context.Context, db *gorm.DB, shipments []ShipmentResponse) error {
	byID := make(map[int64]*ShipmentResponse, len(shipments))
	ids := make([]int64, 0, len(shipments))
	for i := range shipments {
		byID[shipments[i].ID] = &shipments[i]
		ids = append(ids, shipments[i].ID)
	}

	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			id,
			shipment_id,
			product_id,
			quantity
		FROM shipment_items
		WHERE shipment_id IN ?
		ORDER BY id
	`, ids).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var item ShipmentItemResponse
		var shipmentID int64

		if err = rows.Scan(&item.ID, &shipmentID, &item.ProductID, &item.Quantity); err != nil {
			return err
		}

		if owner, ok := byID[shipmentID]; ok {
			owner.Items = append(owner.Items, item)
		}
	}

	return rows.Err()
}
