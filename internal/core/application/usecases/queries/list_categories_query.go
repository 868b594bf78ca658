package queries

import (
	"errors"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var ErrListCategoriesQueryIsNotConstructed = errors.New(
	"ListCategoriesQuery must be created via NewListCategoriesQuery constructor",
)

// ListCategoriesQuery retrieves all menu categories with their item counts.
// This is a parameterless query.
type ListCategoriesQuery struct {
	guard guard.ConstructorGuard
}

// NewListCategoriesQuery creates a query to list categories.
func NewListCategoriesQuery() ListCategoriesQuery {
	return ListCategoriesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q ListCategoriesQuery) Validate() error {
	return q.guard.Validate(ErrListCategoriesQueryIsNotConstructed)
}

// ListCategoriesQueryResponse is one category in the listing together with
// the number of catalog items assigned to it.
type ListCategoriesQueryResponse struct {
	ID          kernel.UUID
	Name        string
	Description string
	ItemCount   int
	CreatedAt   time.Time
}
