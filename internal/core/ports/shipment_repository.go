package ports

import (
	"context"

	"shiptrack/internal/core/domain/model/shipment"
)

// ShipmentRepository defines the persistence contract for shipment aggregates.
// Implementations translate storage-level failures into errs types: missing
// rows become ObjectNotFoundError, constraint breaches become
// IntegrityViolationError.
type ShipmentRepository interface {
	// Add persists a new shipment aggregate together with its items and
	// returns the restored aggregate carrying the generated identifiers.
	// A tracking number collision surfaces as an IntegrityViolationError
	// with ParamName "tracking_number".
	Add(ctx context.Context, aggregate *shipment.Shipment) (*shipment.Shipment, error)

	// Update persists changes to the mutable fields of an existing
	// shipment: status, payment status, driver and tracking number.
	Update(ctx context.Context, aggregate *shipment.Shipment) error

	// Get retrieves a shipment by its identifier, items included.
	Get(ctx context.Context, id int64) (*shipment.Shipment, error)

	// GetAllWithoutTrackingNumber retrieves every shipment persisted before
	// tracking numbers existed. Used by the backfill command.
	GetAllWithoutTrackingNumber(ctx context.Context) ([]*shipment.Shipment, error)

	// Delete removes a shipment and its items.
	Delete(ctx context.Context, id int64) error
}
