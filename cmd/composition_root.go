package cmd

import (
	"log/slog"
	"os"

	"fuelsettlement/internal/adapters/out/postgres"
	"fuelsettlement/internal/adapters/out/postgres/eventrepo"
	"fuelsettlement/internal/core/application/usecases/commands"
	"fuelsettlement/internal/core/application/usecases/queries"
	"fuelsettlement/internal/core/domain/services"
	"fuelsettlement/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB        *gorm.DB
	uowFactory    postgres.GormUnitOfWorkFactory
	eventLog      ports.EventLog
	accessControl services.AccessControl
	logger        *slog.Logger
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:        gormDB,
		uowFactory:    *postgres.NewGormUnitOfWorkFactory(gormDB),
		eventLog:      eventrepo.NewGormEventLog(gormDB),
		accessControl: services.NewAccessControl(),
		logger:        slog.New(slog.NewJSONHandler(os.Stdout, nil)),
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.settlementUoWFactory(), c.eventLog, c.logger)
}

func (c *CompositionRoot) CreateConfirmDeliveryCommandHandler() commands.ConfirmDeliveryCommandHandler {
	return commands.NewConfirmDeliveryCommandHandler(c.settlementUoWFactory(), c.accessControl, c.eventLog, c.logger)
}

func (c *CompositionRoot) CreateDeclineOrderCommandHandler() commands.DeclineOrderCommandHandler {
	return commands.NewDeclineOrderCommandHandler(c.settlementUoWFactory(), c.accessControl, c.eventLog, c.logger)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.settlementUoWFactory(), c.accessControl, c.eventLog, c.logger)
}

func (c *CompositionRoot) CreateSettleOrderCommandHandler() commands.SettleOrderCommandHandler {
	return commands.NewSettleOrderCommandHandler(c.OrderUoWFactory(), c.accessControl, c.eventLog, c.logger)
}

func (c *CompositionRoot) CreateGetAllOrdersQueryHandler() queries.GetAllOrdersQueryHandler {
	return queries.NewGetAllOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderEventsQueryHandler() queries.GetOrderEventsQueryHandler {
	return queries.NewGetOrderEventsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) OrderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) Logger() *slog.Logger {
	return c.logger
}

func (c *CompositionRoot) settlementUoWFactory() commands.SettlementUoWFactory {
	return FuncSettlementUoWFactory(func() commands.SettlementUoW {
		return c.uowFactory.Create()
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncSettlementUoWFactory func() commands.SettlementUoW

func (f FuncSettlementUoWFactory) Create() commands.SettlementUoW {
	return f()
}
