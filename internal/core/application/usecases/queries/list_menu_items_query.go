package queries

import (
	"errors"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrListMenuItemsQueryIsNotConstructed = errors.New(
	"ListMenuItemsQuery must be created via NewListMenuItemsQuery constructor",
)

// ListMenuItemsQuery retrieves the catalog, optionally narrowed to one
// category or to items currently available for ordering.
//
// Example:
//
//	query, err := NewListMenuItemsQuery(nil, true)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewListMenuItemsQueryHandler(db)
//	items, err := handler.Handle(ctx, query)
type ListMenuItemsQuery struct {
	categoryID    *kernel.UUID
	availableOnly bool

	guard guard.ConstructorGuard
}

// NewListMenuItemsQuery creates a query to list catalog items.
// A nil categoryID selects every category; availableOnly drops items
// currently off sale.
func NewListMenuItemsQuery(categoryID *kernel.UUID, availableOnly bool) (ListMenuItemsQuery, error) {
	if categoryID != nil {
		if err := categoryID.Validate(); err != nil {
			return ListMenuItemsQuery{}, err
		}
	}

	return ListMenuItemsQuery{
		categoryID:    categoryID,
		availableOnly: availableOnly,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListMenuItemsQuery) Validate() error {
	return q.guard.Validate(ErrListMenuItemsQueryIsNotConstructed)
}

// CategoryID returns the requested category, or nil for all categories.
func (q ListMenuItemsQuery) CategoryID() *kernel.UUID {
	return q.categoryID
}

// AvailableOnly reports whether off-sale items are excluded.
func (q ListMenuItemsQuery) AvailableOnly() bool {
	return q.availableOnly
}

// ListMenuItemsQueryResponse is one catalog item in the listing, enriched
// with the name of its category when it has one.
type ListMenuItemsQueryResponse struct {
	ID              kernel.UUID
	Name            string
	Description     string
	Price           decimal.Decimal
	CategoryID      *kernel.UUID
	CategoryName    string
	ImageURL        string
	IsAvailable     bool
	PreparationTime int
	Ingredients     string
	Allergens       string
	CreatedAt       time.Time
}
