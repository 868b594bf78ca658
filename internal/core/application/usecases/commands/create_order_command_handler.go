package commands

import (
	"context"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/services"
)

// CreateOrderCommandHandler handles the business logic for order creation:
// resolve every cart entry against the catalog, snapshot prices, compute the
// total, and persist the order with all of its lines as one atomic unit.
//
// The catalog read and the order insert run inside the same transaction, so
// an item disabled mid-request cannot leak into a priced order, and no reader
// ever observes an order without its lines.
type CreateOrderCommandHandler struct {
	uowFactory OrderingUoWFactory
	pricer     *services.OrderPricer
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires an OrderingUoWFactory for transactional persistence.
func NewCreateOrderCommandHandler(uowFactory OrderingUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		pricer:     services.NewOrderPricer(),
	}
}

// Handle processes the order creation command and returns the persisted order
// with its generated total and pending status.
//
// Failure modes: a missing catalog entry surfaces as ObjectNotFoundError, a
// disabled one as ObjectUnavailableError; in both cases the transaction rolls
// back and nothing is persisted.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	ids := make([]kernel.UUID, 0, len(cmd.Items()))
	for _, item := range cmd.Items() {
		ids = append(ids, item.MenuItemID)
	}

	catalog, err := uow.MenuItemRepository().GetMany(ctx, ids)
	if err != nil {
		return nil, err
	}

	lines, err := h.pricer.Price(cmd.Items(), catalog)
	if err != nil {
		return nil, err
	}

	newOrder, err := order.NewOrder(cmd.OrderID(), cmd.Customer(), lines, cmd.Notes(), time.Now().UTC())
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newOrder, nil
}
