package queries_test

import (
	"context"
	"testing"
	"time"

	"restaurant/internal/adapters/out/postgres/orderrepo"
	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// stubAggregateTracker is a no-op tracker for seeding through the repository.
type stubAggregateTracker struct{}

func (stubAggregateTracker) TrackAggregate(_ kernel.UUID, _ any) {}

type GetDailyStatsQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetDailyStatsQueryHandler
	orderRepo *orderrepo.GormOrderRepository
}

func (suite *GetDailyStatsQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
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

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.LineDTO{}))

	suite.handler = queries.NewGetDailyStatsQueryHandler(db)
	suite.orderRepo = orderrepo.NewGormOrderRepository(db, stubAggregateTracker{})
}

func (suite *GetDailyStatsQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *GetDailyStatsQueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders, order_lines CASCADE").Error)
}

// seedOrder persists an order in the given status, with one line whose price
// equals the order total, created at the given instant.
func (suite *GetDailyStatsQueryHandlerTestSuite) seedOrder(
	status order.Status, amount string, createdAt time.Time,
) {
	price := decimal.RequireFromString(amount)
	line, err := order.NewLine(kernel.NewUUID(), kernel.NewUUID(), 1, price, "")
	suite.Require().NoError(err)

	customer, err := order.NewCustomer("Alice", "", "", nil)
	suite.Require().NoError(err)

	seeded, err := order.RestoreOrder(
		kernel.NewUUID(), customer, []*order.Line{line}, price, status, "", createdAt, createdAt,
	)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.orderRepo.Add(context.Background(), seeded))
}

func (suite *GetDailyStatsQueryHandlerTestSuite) TestHandle_MixedStatuses_RevenueOverDeliveredOnly() {
	day := time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)

	suite.seedOrder(order.Pending, "5.00", day.Add(8*time.Hour))
	suite.seedOrder(order.Pending, "7.00", day.Add(9*time.Hour))
	suite.seedOrder(order.Preparing, "9.00", day.Add(10*time.Hour))
	suite.seedOrder(order.Delivered, "10.00", day.Add(11*time.Hour))
	suite.seedOrder(order.Delivered, "20.00", day.Add(12*time.Hour))
	suite.seedOrder(order.Delivered, "30.00", day.Add(13*time.Hour))

	// The next day must not leak into the aggregate.
	suite.seedOrder(order.Delivered, "99.00", day.Add(25*time.Hour))

	// A mid-day timestamp selects the same calendar day.
	query, err := queries.NewGetDailyStatsQuery(day.Add(15 * time.Hour))
	suite.Require().NoError(err)

	stats, err := suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)

	suite.Equal(day, stats.Date)
	suite.Equal(6, stats.TotalOrders)
	suite.Equal(2, stats.PendingOrders)
	suite.Equal(0, stats.ConfirmedOrders)
	suite.Equal(1, stats.PreparingOrders)
	suite.Equal(0, stats.ReadyOrders)
	suite.Equal(3, stats.DeliveredOrders)
	suite.Equal(0, stats.CancelledOrders)
	suite.True(stats.TotalRevenue.Equal(decimal.RequireFromString("60.00")),
		"expected 60.00, got %s", stats.TotalRevenue)
	suite.Require().NotNil(stats.AverageOrderValue)
	suite.True(stats.AverageOrderValue.Equal(decimal.RequireFromString("20.00")),
		"expected 20.00, got %s", stats.AverageOrderValue)
}

func (suite *GetDailyStatsQueryHandlerTestSuite) TestHandle_NoDeliveredOrders_AverageIsNil() {
	day := time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)

	suite.seedOrder(order.Pending, "5.00", day.Add(8*time.Hour))
	suite.seedOrder(order.Cancelled, "7.00", day.Add(9*time.Hour))

	query, err := queries.NewGetDailyStatsQuery(day)
	suite.Require().NoError(err)

	stats, err := suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)

	suite.Equal(2, stats.TotalOrders)
	suite.Equal(1, stats.PendingOrders)
	suite.Equal(1, stats.CancelledOrders)
	suite.Equal(0, stats.DeliveredOrders)
	suite.True(stats.TotalRevenue.IsZero(), "cancelled orders must not count as revenue")
	suite.Nil(stats.AverageOrderValue)
}

func (suite *GetDailyStatsQueryHandlerTestSuite) TestHandle_EmptyDay_ZeroCountsNilAverage() {
	query, err := queries.NewGetDailyStatsQuery(time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC))
	suite.Require().NoError(err)

	stats, err := suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)

	suite.Equal(0, stats.TotalOrders)
	suite.True(stats.TotalRevenue.IsZero())
	suite.Nil(stats.AverageOrderValue)
}

func (suite *GetDailyStatsQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	_, err := suite.handler.Handle(context.Background(), queries.GetDailyStatsQuery{})

	suite.Require().Error(err)
	suite.Contains(err.Error(), "must be created via NewGetDailyStatsQuery constructor")
}

func TestGetDailyStatsQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetDailyStatsQueryHandlerTestSuite))
}
