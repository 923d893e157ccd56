// Package shipmentrepo provides data transfer objects and mapping functions
// for shipment persistence. It implements the repository pattern for the
// shipment aggregate, converting between domain entities and database rows.
package shipmentrepo

import (
	"time"

	"shiptrack/internal/core/domain/model/shipment"
)

// ShipmentDTO represents the database structure for persisting shipment
// aggregates. The tracking number is nullable because rows persisted before
// tracking numbers existed carry none until the backfill fixes them; the
// unique index still applies to the non-null values.
type ShipmentDTO struct {
	ID             int64     `gorm:"primaryKey;autoIncrement"`
	TrackingNumber *string   `gorm:"type:varchar(8);uniqueIndex"`
	Origin         string    `gorm:"not null"`
	Destination    string    `gorm:"not null"`
	Recipient      string    `gorm:"not null"`
	Weight         *float64
	Status         int    `gorm:"not null"`
	PaymentStatus  int    `gorm:"not null"`
	Notes          string
	CustomerID     int64     `gorm:"not null;index"`
	DriverID       *int64    `gorm:"index"`
	CreatedAt      time.Time `gorm:"not null"`

	Items []ShipmentItemDTO `gorm:"foreignKey:ShipmentID"`
}

// TableName specifies the database table name for shipment entities.
func (ShipmentDTO) TableName() string {
	return "shipments"
}

// ShipmentItemDTO represents one product line of a shipment.
type ShipmentItemDTO struct {
	ID         int64 `gorm:"primaryKey;autoIncrement"`
	ShipmentID int64 `gorm:"not null;index"`
	ProductID  int64 `gorm:"not null"`
	Quantity   int   `gorm:"not null"`
}

// TableName specifies the database table name for shipment items.
func (ShipmentItemDTO) TableName() string {
	return "shipment_items"
}

// fromDomain converts a shipment aggregate to its database representation.
// A zero id stays zero so the database assigns one on insert.
func fromDomain(aggregate *shipment.Shipment) ShipmentDTO {
	var trackingNumber *string
	if tn := aggregate.TrackingNumber(); !tn.IsZero() {
		value := tn.String()
		trackingNumber = &value
	}

	items := make([]ShipmentItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, ShipmentItemDTO{
			ID:         item.ID(),
			ShipmentID: aggregate.ID(),
			ProductID:  item.ProductID(),
			Quantity:   item.Quantity(),
		})
	}

	return ShipmentDTO{
		ID:             aggregate.ID(),
		TrackingNumber: trackingNumber,
		Origin:         aggregate.Origin(),
		Destination:    aggregate.Destination(),
		Recipient:      aggregate.Recipient(),
		Weight:         aggregate.Weight(),
		Status:         int(aggregate.Status()),
		PaymentStatus:  int(aggregate.PaymentStatus()),
		Notes:          aggregate.Notes(),
		CustomerID:     aggregate.CustomerID(),
		DriverID:       aggregate.DriverID(),
		CreatedAt:      aggregate.CreatedAt(),
		Items:          items,
	}
}

// toDomain converts a database DTO back to a shipment aggregate.
func toDomain(dto ShipmentDTO) (*shipment.Shipment, error) {
	items := make([]shipment.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, err := shipment.RestoreItem(itemDTO.ID, itemDTO.ProductID, itemDTO.Quantity)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	var trackingNumber string
	if dto.TrackingNumber != nil {
		trackingNumber = *dto.TrackingNumber
	}

	return shipment.RestoreShipment(
		dto.ID,
		shipment.RestoreTrackingNumber(trackingNumber),
		dto.Origin,
		dto.Destination,
		dto.Recipient,
		dto.Weight,
		shipment.Status(dto.Status),
		shipment.PaymentStatus(dto.PaymentStatus),
		dto.Notes,
		dto.CustomerID,
		dto.DriverID,
		dto.CreatedAt,
		items,
	)
}
