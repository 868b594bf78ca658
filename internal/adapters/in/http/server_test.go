package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/ports"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type WireOrderRepository struct{ mock.Mock }

func (m *WireOrderRepository) Add(_ context.Context, _ *order.Order) error {
	return errors.New("not implemented in mock")
}
func (m *WireOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}
func (m *WireOrderRepository) GetAllPendingBefore(_ context.Context, _ time.Time) ([]*order.Order, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *WireOrderRepository) UpdateStatus(ctx context.Context, o *order.Order, previous order.Status) error {
	args := m.Called(ctx, o, previous)
	return args.Error(0)
}

type WireOrderUoW struct{ mock.Mock }

func (m *WireOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *WireOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *WireOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *WireOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type WireOrderUoWFactory struct{ mock.Mock }

func (m *WireOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

func pendingOrder(t *testing.T) *order.Order {
	t.Helper()
	line, err := order.NewLine(kernel.NewUUID(), kernel.NewUUID(), 1, decimal.RequireFromString("12.00"), "")
	require.NoError(t, err)
	customer, err := order.NewCustomer("Alice", "", "", nil)
	require.NoError(t, err)
	aggregate, err := order.NewOrder(kernel.NewUUID(), customer, []*order.Line{line}, "", time.Now().UTC())
	require.NoError(t, err)
	return aggregate
}

func TestChangeOrderStatus_SuccessBodyCarriesMessage(t *testing.T) {
	aggregate := pendingOrder(t)

	repo := new(WireOrderRepository)
	uow := new(WireOrderUoW)
	factory := new(WireOrderUoWFactory)
	factory.On("Create").Return(uow).Once()
	uow.On("Begin", mock.Anything).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once()
	repo.On("UpdateStatus", mock.Anything, aggregate, order.Pending).Return(nil).Once()
	uow.On("Commit", mock.Anything).Return(nil).Once()
	uow.On("Rollback", mock.Anything).Return(nil).Once()

	server := &Server{
		changeOrderStatusHandler: commands.NewChangeOrderStatusCommandHandler(factory),
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodPatch, "/api/orders/"+aggregate.ID().String()+"/status",
		strings.NewReader(`{"status":"confirmed"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)
	ctx.SetParamNames("id")
	ctx.SetParamValues(aggregate.ID().String())

	require.NoError(t, server.ChangeOrderStatus(ctx))
	require.Equal(t, http.StatusOK, rec.Code)

	var body ChangeOrderStatusResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, aggregate.ID().String(), body.ID)
	assert.Equal(t, "confirmed", body.Status)
	assert.Equal(t, "Order status updated to confirmed", body.Message)

	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestDailyStatsResponse_WireShape(t *testing.T) {
	average := decimal.RequireFromString("20.00")
	resp := DailyStatsResponse{
		Date:              "2026-08-20",
		TotalOrders:       6,
		PendingOrders:     2,
		PreparingOrders:   1,
		DeliveredOrders:   3,
		TotalRevenue:      decimal.RequireFromString("60.00"),
		AverageOrderValue: &average,
	}

	raw, err := json.Marshal(resp)
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(raw, &fields))

	for _, key := range []string{
		"date", "total_orders", "pending_orders", "confirmed_orders",
		"preparing_orders", "ready_orders", "delivered_orders",
		"cancelled_orders", "total_revenue", "average_order_value",
	} {
		assert.Contains(t, fields, key)
	}
	assert.Equal(t, "60", fields["total_revenue"])
}

func TestDailyStatsResponse_NilAverageMarshalsToNull(t *testing.T) {
	raw, err := json.Marshal(DailyStatsResponse{
		Date:         "2026-08-20",
		TotalRevenue: decimal.Zero,
	})
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(raw, &fields))

	require.Contains(t, fields, "average_order_value")
	assert.Nil(t, fields["average_order_value"])
}
