package ports

import (
	"context"

	"shiptrack/internal/core/domain/model/account"
)

// UserRegistry exposes the read-only slice of the user store this subsystem
// needs: resolving a user id to its role. User lifecycle is owned elsewhere.
type UserRegistry interface {
	// GetRole returns the role of the given user.
	// Returns ObjectNotFoundError when no such user exists.
	GetRole(ctx context.Context, userID int64) (account.Role, error)
}

// ProductCatalog exposes read-only product existence checks used to validate
// shipment item references before persisting them.
type ProductCatalog interface {
	// Exists reports whether a product with the given id exists.
	Exists(ctx context.Context, productID int64) (bool, error)
}
