package services

import (
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/errs"
)

// LineRequest is one unpriced cart entry: a menu item reference with a
// quantity and an optional preparation note. It carries no price: pricing is
// always resolved from the catalog, never taken from the client.
type LineRequest struct {
	MenuItemID          kernel.UUID
	Quantity            int
	SpecialInstructions string
}

// OrderPricer is a domain service that turns a cart into priced order lines.
//
// Business rules:
//   - Every requested item must resolve in the supplied catalog snapshot;
//     a missing item rejects the whole cart (ObjectNotFoundError)
//   - Every resolved item must be available; an unavailable item rejects
//     the whole cart (ObjectUnavailableError)
//   - Each line's unit price is snapshotted from the catalog, never taken
//     from the client
//   - Duplicate menu item entries stay independent lines; quantities are
//     not merged
//
// The pricer is stateless; callers supply the catalog snapshot they resolved
// inside their transactional boundary so that pricing and persistence share
// one consistent view.
type OrderPricer struct{}

// NewOrderPricer creates a new OrderPricer instance.
func NewOrderPricer() *OrderPricer {
	return &OrderPricer{}
}

// Price resolves each request against the catalog snapshot and produces
// order lines with freshly generated identifiers and snapshot prices.
// The whole cart is rejected on the first missing or unavailable item;
// no partial result is ever returned.
func (p *OrderPricer) Price(
	requests []LineRequest,
	catalog map[kernel.UUID]*menu.MenuItem,
) ([]*order.Line, error) {
	if len(requests) == 0 {
		return nil, errs.NewValueIsRequiredError("items")
	}

	lines := make([]*order.Line, 0, len(requests))
	for _, request := range requests {
		item, ok := catalog[request.MenuItemID]
		if !ok {
			return nil, errs.NewObjectNotFoundError("menuItem", request.MenuItemID.String())
		}
		if err := item.Validate(); err != nil {
			return nil, err
		}
		if !item.IsAvailable() {
			return nil, errs.NewObjectUnavailableError("menuItem", item.ID().String())
		}

		line, err := order.NewLine(
			kernel.NewUUID(),
			item.ID(),
			request.Quantity,
			item.Price(),
			request.SpecialInstructions,
		)
		if err != nil {
			return nil, err
		}

		lines = append(lines, line)
	}

	return lines, nil
}
