package cmd

import (
	httpin "github.com/Amman-Khan-17/Paperless-profits/internal/adapters/in/http"
	"github.com/Amman-Khan-17/Paperless-profits/internal/adapters/out/postgres"
	"github.com/Amman-Khan-17/Paperless-profits/internal/adapters/out/postgres/catalogrepo"
	"github.com/Amman-Khan-17/Paperless-profits/internal/adapters/out/postgres/profilerepo"
	"github.com/Amman-Khan-17/Paperless-profits/internal/core/application/session"
	"github.com/Amman-Khan-17/Paperless-profits/internal/core/application/usecases/commands"
	"github.com/Amman-Khan-17/Paperless-profits/internal/core/application/usecases/queries"
	"github.com/Amman-Khan-17/Paperless-profits/internal/core/ports"

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
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateCompleteOrderCommandHandler() commands.CompleteOrderCommandHandler {
	return commands.NewCompleteOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	return commands.NewDeleteOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderByIDQueryHandler() queries.GetOrderByIDQueryHandler {
	return queries.NewGetOrderByIDQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCatalogQueryHandler() queries.GetCatalogQueryHandler {
	return queries.NewGetCatalogQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCustomersQueryHandler() queries.GetCustomersQueryHandler {
	return queries.NewGetCustomersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrdersExportQueryHandler() queries.GetOrdersExportQueryHandler {
	return queries.NewGetOrdersExportQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateCatalogRepository() ports.CatalogRepository {
	return catalogrepo.NewGormCatalogRepository(c.gormDB)
}

func (c *CompositionRoot) CreateProfileRepository() ports.ProfileRepository {
	return profilerepo.NewGormProfileRepository(c.gormDB)
}

func (c *CompositionRoot) CreateSessionRegistry() *session.Registry {
	return session.NewRegistry(c.CreateProfileRepository())
}

func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(
		c.CreateCreateOrderCommandHandler(),
		c.CreateCompleteOrderCommandHandler(),
		c.CreateCancelOrderCommandHandler(),
		c.CreateDeleteOrderCommandHandler(),
		c.CreateGetOrdersQueryHandler(),
		c.CreateGetOrderByIDQueryHandler(),
		c.CreateGetCatalogQueryHandler(),
		c.CreateGetCustomersQueryHandler(),
		c.CreateGetOrdersExportQueryHandler(),
		c.CreateCatalogRepository(),
		c.CreateProfileRepository(),
		c.CreateSessionRegistry(),
	)
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
