package shipmentrepo

import (
	"context"
	"errors"

	"shiptrack/internal/core/domain/model/shipment"
	"shiptrack/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormShipmentRepository implements ShipmentRepository using GORM.
// The connection must be opened with TranslateError enabled so constraint
// breaches arrive as gorm.ErrDuplicatedKey / gorm.ErrForeignKeyViolated and
// can be mapped to errs types here.
type GormShipmentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id int64, aggregate any)
}

// NewGormShipmentRepository creates a new GORM shipment repository.
func NewGormShipmentRepository(db *gorm.DB, tracker aggregateTracker) *GormShipmentRepository {
	return &GormShipmentRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new shipment and its items to the database and returns the
// restored aggregate carrying the generated identifiers.
func (r *GormShipmentRepository) Add(
	ctx context.Context,
	aggregate *shipment.Shipment,
) (*shipment.Shipment, error) {
	if err := aggregate.Validate(); err != nil {
		return nil, err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return nil, translateWriteError(err, dto)
	}

	persisted, err := toDomain(dto)
	if err != nil {
		return nil, err
	}

	r.tracker.TrackAggregate(persisted.ID(), persisted)
	return persisted, nil
}

// Update saves the mutable fields of an existing shipment: status, payment
// status, driver assignment and tracking number. Everything else is
// immutable after creation and deliberately not written.
func (r *GormShipmentRepository) Update(ctx context.Context, aggregate *shipment.Shipment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&ShipmentDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{
			"tracking_number": dto.TrackingNumber,
			"status":          dto.Status,
			"payment_status":  dto.PaymentStatus,
			"driver_id":       dto.DriverID,
		})
	if result.Error != nil {
		return translateWriteError(result.Error, dto)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("shipment id", dto.ID)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a shipment by id, items included. The row is locked for
// update until the caller's transaction ends: handlers read through here to
// mutate, so concurrent writers serialize on the read instead of writing the
// row from a stale snapshot.
func (r *GormShipmentRepository) Get(ctx context.Context, id int64) (*shipment.Shipment, error) {
	var dto ShipmentDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Preload("Items").
		First(&dto, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("shipment id", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllWithoutTrackingNumber retrieves every shipment lacking a tracking
// number, oldest first, for the backfill run. Rows migrated from the
// predecessor system may carry an empty string instead of NULL; both count as
// missing. The rows are locked so a concurrent update cannot overwrite the
// number the backfill is about to assign.
func (r *GormShipmentRepository) GetAllWithoutTrackingNumber(ctx context.Context) ([]*shipment.Shipment, error) {
	var dtos []ShipmentDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Preload("Items").
		Order("id").
		Find(&dtos, "tracking_number IS NULL OR tracking_number = ''").Error
	if err != nil {
		return nil, err
	}

	shipments := make([]*shipment.Shipment, 0, len(dtos))
	for _, dto := range dtos {
		s, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		shipments = append(shipments, s)
	}

	return shipments, nil
}

// Delete removes a shipment and its items. The items go first because the
// schema has no ON DELETE CASCADE; both statements run in the caller's
// transaction.
func (r *GormShipmentRepository) Delete(ctx context.Context, id int64) error {
	if err := r.db.WithContext(ctx).
		Where("shipment_id = ?", id).
		Delete(&ShipmentItemDTO{}).Error; err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&ShipmentDTO{}, id)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("shipment id", id)
	}

	return nil
}

// translateWriteError maps storage-level constraint failures to errs types.
func translateWriteError(err error, dto ShipmentDTO) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		var trackingNumber string
		if dto.TrackingNumber != nil {
			trackingNumber = *dto.TrackingNumber
		}
		return errs.NewIntegrityViolationErrorWithCause("tracking_number", trackingNumber, err)
	}

	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return errs.NewIntegrityViolationErrorWithCause("customer_id", dto.CustomerID, err)
	}

	return err
}
