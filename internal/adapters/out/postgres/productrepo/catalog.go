// Package productrepo provides read-only access to the product catalog.
// Product lifecycle is owned by another system; this subsystem only checks
// that shipment items reference products that exist.
package productrepo

import (
	"context"

	"gorm.io/gorm"
)

// ProductDTO maps the shared products table. Only the columns this subsystem
// reads are declared.
type ProductDTO struct {
	ID    int64  `gorm:"primaryKey;autoIncrement"`
	Name  string `gorm:"not null"`
	Price float64
}

// TableName specifies the database table name for product entities.
func (ProductDTO) TableName() string {
	return "products"
}

// GormProductCatalog implements ProductCatalog using GORM.
type GormProductCatalog struct {
	db *gorm.DB
}

// NewGormProductCatalog creates a new GORM product catalog.
func NewGormProductCatalog(db *gorm.DB) *GormProductCatalog {
	return &GormProductCatalog{db: db}
}

// Exists reports whether a product with the given id exists.
func (c *GormProductCatalog) Exists(ctx context.Context, productID int64) (bool, error) {
	var count int64
	err := c.db.WithContext(ctx).
		Model(&ProductDTO{}).
		Where("id = ?", productID).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}
