package postgres_test

import (
	"context"
	"testing"
	"time"

	"restaurant/internal/adapters/out/postgres"
	"restaurant/internal/adapters/out/postgres/menurepo"
	"restaurant/internal/adapters/out/postgres/orderrepo"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite verifies transaction semantics across the
// order and catalog repositories bound to one unit of work.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *tcpostgres.PostgresContainer
	db        *gorm.DB
	factory   *postgres.GormUnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:15-alpine",
		tcpostgres.WithDatabase("testdb"),
		tcpostgres.WithUsername("testuser"),
		tcpostgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&menurepo.CategoryDTO{},
		&menurepo.MenuItemDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.LineDTO{},
	))

	suite.factory = postgres.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(
		suite.db.Exec("TRUNCATE TABLE orders, order_lines, menu_items, categories CASCADE").Error,
	)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) seedMenuItem() *menu.MenuItem {
	now := time.Now().UTC().Truncate(time.Microsecond)
	item, err := menu.NewMenuItem(
		kernel.NewUUID(), "Margherita", "", decimal.RequireFromString("9.50"),
		nil, "", menu.DefaultPreparationTime, "", "", now,
	)
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(context.Background()))
	suite.Require().NoError(uow.MenuItemRepository().Add(context.Background(), item))
	suite.Require().NoError(uow.Commit(context.Background()))
	return item
}

func (suite *UnitOfWorkIntegrationTestSuite) buildOrder(item *menu.MenuItem) *order.Order {
	line, err := order.NewLine(kernel.NewUUID(), item.ID(), 2, item.Price(), "")
	suite.Require().NoError(err)

	customer, err := order.NewCustomer("Alice", "", "", nil)
	suite.Require().NoError(err)

	now := time.Now().UTC().Truncate(time.Microsecond)
	aggregate, err := order.NewOrder(kernel.NewUUID(), customer, []*order.Line{line}, "", now)
	suite.Require().NoError(err)
	return aggregate
}

func (suite *UnitOfWorkIntegrationTestSuite) orderCount() int64 {
	var count int64
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error)
	return count
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_MakesOrderAndLinesVisible() {
	ctx := context.Background()
	item := suite.seedMenuItem()
	aggregate := suite.buildOrder(item)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	// Catalog read and order write share the transaction.
	catalog, err := uow.MenuItemRepository().GetMany(ctx, []kernel.UUID{item.ID()})
	suite.Require().NoError(err)
	suite.Require().Contains(catalog, item.ID())

	suite.Require().NoError(uow.OrderRepository().Add(ctx, aggregate))
	suite.Equal(int64(0), suite.orderCount(), "uncommitted order must not be visible")

	suite.Require().NoError(uow.Commit(ctx))
	suite.Equal(int64(1), suite.orderCount())

	var lineCount int64
	suite.Require().NoError(suite.db.Model(&orderrepo.LineDTO{}).Count(&lineCount).Error)
	suite.Equal(int64(1), lineCount)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsOrderAndLines() {
	ctx := context.Background()
	item := suite.seedMenuItem()
	aggregate := suite.buildOrder(item)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, aggregate))
	suite.Require().NoError(uow.Rollback(ctx))

	suite.Equal(int64(0), suite.orderCount())

	var lineCount int64
	suite.Require().NoError(suite.db.Model(&orderrepo.LineDTO{}).Count(&lineCount).Error)
	suite.Equal(int64(0), lineCount)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_WithoutBegin_Fails() {
	uow := suite.factory.Create()
	suite.Require().Error(uow.Commit(context.Background()))
	suite.Require().Error(uow.Rollback(context.Background()))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestBegin_IsIdempotent() {
	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Rollback(ctx))
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
