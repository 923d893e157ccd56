// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, authorization,
// transaction management, and persistence.
package commands

import (
	"context"

	"shiptrack/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// ShipmentRepoFactory provides access to the shipment repository within a transaction.
	ShipmentRepoFactory interface {
		ShipmentRepository() ports.ShipmentRepository
	}

	// UserRegistryFactory provides access to the user registry within a transaction.
	UserRegistryFactory interface {
		UserRegistry() ports.UserRegistry
	}

	// ProductCatalogFactory provides access to the product catalog within a transaction.
	ProductCatalogFactory interface {
		ProductCatalog() ports.ProductCatalog
	}

	// ShipmentUoW manages transactions for shipment-only operations.
	// Used when commands only touch the shipment aggregate.
	ShipmentUoW interface {
		TxManager
		ShipmentRepoFactory
	}

	// ShipmentUoWFactory creates new shipment unit of work instances.
	ShipmentUoWFactory interface {
		Create() ShipmentUoW
	}

	// UpdateShipmentUoW manages transactions for shipment updates that also
	// verify referenced users, such as driver assignment.
	UpdateShipmentUoW interface {
		TxManager
		ShipmentRepoFactory
		UserRegistryFactory
	}

	// UpdateShipmentUoWFactory creates new update unit of work instances.
	UpdateShipmentUoWFactory interface {
		Create() UpdateShipmentUoW
	}

	// CreateShipmentUoW manages transactions for shipment creation.
	// Creation verifies the referenced customer, driver and products, so it
	// needs every repository.
	//
	// Example:
	//
	//	uow := factory.Create()
	//	err := uow.Begin(ctx)
	//	defer uow.Rollback(ctx)
	//
	//	users := uow.UserRegistry()
	//	products := uow.ProductCatalog()
	//	shipments := uow.ShipmentRepository()
	//	// ... perform operations
	//
	//	err = uow.Commit(ctx)
	CreateShipmentUoW interface {
		TxManager
		ShipmentRepoFactory
		UserRegistryFactory
		ProductCatalogFactory
	}

	// CreateShipmentUoWFactory creates new creation unit of work instances.
	// The create handler asks for a fresh unit of work per persistence
	// attempt when retrying tracking number collisions.
	CreateShipmentUoWFactory interface {
		Create() CreateShipmentUoW
	}
)
