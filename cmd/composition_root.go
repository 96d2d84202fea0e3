package cmd

import (
	"context"
	"log/slog"

	"gasline/internal/adapters/out/inventory"
	"gasline/internal/adapters/out/postgres"
	"gasline/internal/core/application/usecases/commands"
	"gasline/internal/core/application/usecases/queries"
	"gasline/internal/core/domain/model/order"
	"gasline/internal/feed"

	"gorm.io/gorm"
)

// CompositionRoot wires adapters, use cases and the change feed together.
// Each Create* method hands out a fully wired handler; the feed and the unit
// of work factory are process singletons.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	inventory  *inventory.StaticProvider
	orderFeed  *feed.Feed
	logger     *slog.Logger
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB, logger *slog.Logger) *CompositionRoot {
	root := &CompositionRoot{
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		inventory:  inventory.NewStaticProvider(configs.StockCount),
		logger:     logger,
	}
	root.orderFeed = feed.New(root.loadOrderSnapshot, logger)
	return root
}

// OrderFeed returns the process-wide change feed.
func (c *CompositionRoot) OrderFeed() *feed.Feed {
	return c.orderFeed
}

// loadOrderSnapshot materializes the full order set for feed subscriptions.
func (c *CompositionRoot) loadOrderSnapshot(ctx context.Context) ([]*order.Order, error) {
	return c.uowFactory.Create().OrderRepository().GetAll(ctx)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.orderFeed)
}

func (c *CompositionRoot) CreateApproveOrderCommandHandler() commands.ApproveOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewApproveOrderCommandHandler(f, c.orderFeed)
}

func (c *CompositionRoot) CreateAssignDriverCommandHandler() commands.AssignDriverCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignDriverCommandHandler(f, c.orderFeed)
}

func (c *CompositionRoot) CreateProgressOrderCommandHandler() commands.ProgressOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewProgressOrderCommandHandler(f, c.orderFeed)
}

func (c *CompositionRoot) CreateRegisterDriverCommandHandler() commands.RegisterDriverCommandHandler {
	var f commands.DriverUoWFactory = FuncDriverUoWFactory(func() commands.DriverUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterDriverCommandHandler(f)
}

func (c *CompositionRoot) CreateReleaseStaleAssignmentsCommandHandler() commands.ReleaseStaleAssignmentsCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewReleaseStaleAssignmentsCommandHandler(f, c.orderFeed)
}

func (c *CompositionRoot) CreateGetCustomerOrdersQueryHandler() queries.GetCustomerOrdersQueryHandler {
	return queries.NewGetCustomerOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListDispatchOrdersQueryHandler() queries.ListDispatchOrdersQueryHandler {
	return queries.NewListDispatchOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDriverOrdersQueryHandler() queries.GetDriverOrdersQueryHandler {
	return queries.NewGetDriverOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDashboardStatsQueryHandler() queries.GetDashboardStatsQueryHandler {
	return queries.NewGetDashboardStatsQueryHandler(c.gormDB, c.inventory)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncDriverUoWFactory func() commands.DriverUoW

func (f FuncDriverUoWFactory) Create() commands.DriverUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
