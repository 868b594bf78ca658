package cmd

import (
	"log/slog"
	"time"

	"restaurant/internal/adapters/in/http"
	"restaurant/internal/adapters/out/postgres"
	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderingUoWFactory = FuncOrderingUoWFactory(func() commands.OrderingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	return commands.NewChangeOrderStatusCommandHandler(c.createOrderUoWFactory())
}

func (c *CompositionRoot) CreateCreateMenuItemCommandHandler() commands.CreateMenuItemCommandHandler {
	return commands.NewCreateMenuItemCommandHandler(c.createMenuItemUoWFactory())
}

func (c *CompositionRoot) CreateUpdateMenuItemCommandHandler() commands.UpdateMenuItemCommandHandler {
	return commands.NewUpdateMenuItemCommandHandler(c.createMenuItemUoWFactory())
}

func (c *CompositionRoot) CreateSetMenuItemAvailabilityCommandHandler() commands.SetMenuItemAvailabilityCommandHandler {
	return commands.NewSetMenuItemAvailabilityCommandHandler(c.createMenuItemUoWFactory())
}

func (c *CompositionRoot) CreateCreateCategoryCommandHandler() commands.CreateCategoryCommandHandler {
	var f commands.CategoryUoWFactory = FuncCategoryUoWFactory(func() commands.CategoryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateCategoryCommandHandler(f)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDailyStatsQueryHandler() queries.GetDailyStatsQueryHandler {
	return queries.NewGetDailyStatsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListMenuItemsQueryHandler() queries.ListMenuItemsQueryHandler {
	return queries.NewListMenuItemsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListCategoriesQueryHandler() queries.ListCategoriesQueryHandler {
	return queries.NewListCategoriesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateHTTPServer() *http.Server {
	return http.NewServer(
		c.CreateCreateOrderCommandHandler(),
		c.CreateChangeOrderStatusCommandHandler(),
		c.CreateCreateMenuItemCommandHandler(),
		c.CreateUpdateMenuItemCommandHandler(),
		c.CreateSetMenuItemAvailabilityCommandHandler(),
		c.CreateCreateCategoryCommandHandler(),
		c.CreateGetOrderQueryHandler(),
		c.CreateListOrdersQueryHandler(),
		c.CreateGetDailyStatsQueryHandler(),
		c.CreateListMenuItemsQueryHandler(),
		c.CreateListCategoriesQueryHandler(),
	)
}

func (c *CompositionRoot) CreateJobManager(orderTTL time.Duration, logger *slog.Logger) *jobs.JobManager {
	return jobs.NewJobManager(
		c.createOrderUoWFactory(),
		c.CreateChangeOrderStatusCommandHandler(),
		orderTTL,
		logger,
	)
}

func (c *CompositionRoot) createOrderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) createMenuItemUoWFactory() commands.MenuItemUoWFactory {
	return FuncMenuItemUoWFactory(func() commands.MenuItemUoW {
		return c.uowFactory.Create()
	})
}

type FuncOrderingUoWFactory func() commands.OrderingUoW

func (f FuncOrderingUoWFactory) Create() commands.OrderingUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncMenuItemUoWFactory func() commands.MenuItemUoW

func (f FuncMenuItemUoWFactory) Create() commands.MenuItemUoW {
	return f()
}

type FuncCategoryUoWFactory func() commands.CategoryUoW

func (f FuncCategoryUoWFactory) Create() commands.CategoryUoW {
	return f()
}
