package queries

import (
	"errors"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves a single order with its lines.
//
// Example:
//
//	query, err := NewGetOrderQuery(orderID)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewGetOrderQueryHandler(db)
//	resp, err := handler.Handle(ctx, query)
type GetOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query to retrieve an order by its identifier.
func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}
	return GetOrderQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the identifier of the order to retrieve.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetOrderQueryResponse carries the full order view: header fields plus every
// line, each line enriched with the current catalog name and preparation time
// of the referenced item. Prices on the lines are the snapshot taken when the
// order was placed, not the item's current price.
type GetOrderQueryResponse struct {
	ID            kernel.UUID
	CustomerName  string
	CustomerPhone string
	CustomerEmail string
	TableNumber   *int
	Status        string
	TotalAmount   decimal.Decimal
	Notes         string
	CreatedAt     time.Time
	UpdatedAt     time.Time
	Lines         []GetOrderQueryLineResponse
}

// GetOrderQueryLineResponse is one line of the order view.
type GetOrderQueryLineResponse struct {
	ID                  kernel.UUID
	MenuItemID          kernel.UUID
	Name                string
	Quantity            int
	UnitPrice           decimal.Decimal
	Subtotal            decimal.Decimal
	SpecialInstructions string
	PreparationTime     int
}
