// Package userrepo provides read-only access to the user store.
// User lifecycle is owned by another system; this subsystem only resolves
// user ids to roles when authorizing and validating shipment references.
package userrepo

import (
	"context"
	"errors"

	"shiptrack/internal/core/domain/model/account"
	"shiptrack/internal/pkg/errs"

	"gorm.io/gorm"
)

// UserDTO maps the shared users table. Only the columns this subsystem reads
// are declared.
type UserDTO struct {
	ID   int64  `gorm:"primaryKey;autoIncrement"`
	Name string `gorm:"not null"`
	Role string `gorm:"not null"`
}

// TableName specifies the database table name for user entities.
func (UserDTO) TableName() string {
	return "users"
}

// GormUserRegistry implements UserRegistry using GORM.
type GormUserRegistry struct {
	db *gorm.DB
}

// NewGormUserRegistry creates a new GORM user registry.
func NewGormUserRegistry(db *gorm.DB) *GormUserRegistry {
	return &GormUserRegistry{db: db}
}

// GetRole resolves a user id to its role.
func (r *GormUserRegistry) GetRole(ctx context.Context, userID int64) (account.Role, error) {
	var dto UserDTO
	err := r.db.WithContext(ctx).Select("id", "role").First(&dto, "id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return account.UnknownRole, errs.NewObjectNotFoundError("user id", userID)
		}
		return account.UnknownRole, err
	}

	return account.ParseRole(dto.Role)
}
