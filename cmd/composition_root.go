package cmd

import (
	"shiptrack/internal/adapters/out/postgres"
	"shiptrack/internal/core/application/usecases/commands"
	"shiptrack/internal/core/application/usecases/queries"
	"shiptrack/internal/core/domain/services"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// CompositionRoot wires adapters into use case handlers. Handlers are cheap
// to construct, so each Create method builds a fresh one.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	policy     services.AccessPolicy
	logger     *zap.Logger
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, logger *zap.Logger) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		policy:     services.NewAccessPolicy(),
		logger:     logger,
	}
}

// Logger returns the application-wide structured logger.
func (c *CompositionRoot) Logger() *zap.Logger {
	return c.logger
}

func (c *CompositionRoot) CreateCreateShipmentCommandHandler() commands.CreateShipmentCommandHandler {
	var f commands.CreateShipmentUoWFactory = FuncCreateShipmentUoWFactory(func() commands.CreateShipmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateShipmentCommandHandler(f, c.policy)
}

func (c *CompositionRoot) CreateUpdateShipmentCommandHandler() commands.UpdateShipmentCommandHandler {
	var f commands.UpdateShipmentUoWFactory = FuncUpdateShipmentUoWFactory(func() commands.UpdateShipmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateShipmentCommandHandler(f, c.policy)
}

func (c *CompositionRoot) CreateDeleteShipmentCommandHandler() commands.DeleteShipmentCommandHandler {
	var f commands.ShipmentUoWFactory = FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteShipmentCommandHandler(f, c.policy)
}

func (c *CompositionRoot) CreateBackfillTrackingNumbersCommandHandler() commands.BackfillTrackingNumbersCommandHandler {
	var f commands.ShipmentUoWFactory = FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewBackfillTrackingNumbersCommandHandler(f)
}

func (c *CompositionRoot) CreateGetShipmentByIDQueryHandler() queries.GetShipmentByIDQueryHandler {
	return queries.NewGetShipmentByIDQueryHandler(c.gormDB, c.policy)
}

func (c *CompositionRoot) CreateGetShipmentByTrackingNumberQueryHandler() queries.GetShipmentByTrackingNumberQueryHandler {
	return queries.NewGetShipmentByTrackingNumberQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListShipmentsQueryHandler() queries.ListShipmentsQueryHandler {
	return queries.NewListShipmentsQueryHandler(c.gormDB, c.policy)
}

type FuncCreateShipmentUoWFactory func() commands.CreateShipmentUoW

func (f FuncCreateShipmentUoWFactory) Create() commands.CreateShipmentUoW {
	return f()
}

type FuncUpdateShipmentUoWFactory func() commands.UpdateShipmentUoW

func (f FuncUpdateShipmentUoWFactory) Create() commands.UpdateShipmentUoW {
	return f()
}

type FuncShipmentUoWFactory func() commands.ShipmentUoW

func (f FuncShipmentUoWFactory) Create() commands.ShipmentUoW {
	return f()
}
