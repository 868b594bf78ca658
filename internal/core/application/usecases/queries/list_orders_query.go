package queries

import (
	"errors"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

const (
	// DefaultListOrdersLimit is applied when the caller does not request an
	// explicit page size.
	DefaultListOrdersLimit = 50

	// MaxListOrdersLimit caps the page size regardless of what the caller
	// requests.
	MaxListOrdersLimit = 200
)

// ListOrdersQuery retrieves recent orders, newest first, optionally filtered
// by status.
//
// Example:
//
//	status := order.Pending
//	query, err := NewListOrdersQuery(&status, 20)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewListOrdersQueryHandler(db)
//	orders, err := handler.Handle(ctx, query)
type ListOrdersQuery struct {
	statusFilter *order.Status
	limit        int

	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates a query to list recent orders.
// A nil statusFilter selects every status. A non-positive limit falls back to
// DefaultListOrdersLimit; anything above MaxListOrdersLimit is clamped.
func NewListOrdersQuery(statusFilter *order.Status, limit int) (ListOrdersQuery, error) {
	if statusFilter != nil {
		if err := statusFilter.Validate(); err != nil {
			return ListOrdersQuery{}, err
		}
	}

	if limit <= 0 {
		limit = DefaultListOrdersLimit
	}
	if limit > MaxListOrdersLimit {
		limit = MaxListOrdersLimit
	}

	return ListOrdersQuery{
		statusFilter: statusFilter,
		limit:        limit,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// StatusFilter returns the requested status, or nil for all statuses.
func (q ListOrdersQuery) StatusFilter() *order.Status {
	return q.statusFilter
}

// Limit returns the effective page size.
func (q ListOrdersQuery) Limit() int {
	return q.limit
}

// ListOrdersQueryResponse is one row of the order listing: header fields plus
// the number of lines, without the lines themselves.
type ListOrdersQueryResponse struct {
	ID           kernel.UUID
	CustomerName string
	TableNumber  *int
	Status       string
	TotalAmount  decimal.Decimal
	ItemCount    int
	CreatedAt    time.Time
}
