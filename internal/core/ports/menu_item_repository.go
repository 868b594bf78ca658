package ports

import (
	"context"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"
)

// MenuItemRepository defines the persistence contract for catalog items.
// The order subsystem uses only the read side (Get/GetMany) to resolve
// authoritative prices and availability; the write side belongs to catalog
// administration.
type MenuItemRepository interface {
	// Add persists a new menu item.
	Add(ctx context.Context, aggregate *menu.MenuItem) error

	// Update persists changes to an existing menu item.
	// Returns an ObjectNotFoundError if the item does not exist.
	Update(ctx context.Context, aggregate *menu.MenuItem) error

	// Get retrieves a menu item by its unique identifier.
	// Returns an ObjectNotFoundError if no such item exists.
	Get(ctx context.Context, id kernel.UUID) (*menu.MenuItem, error)

	// GetMany retrieves the catalog snapshot for the given ids, keyed by id.
	// Ids that do not resolve are simply absent from the result; callers
	// decide whether a missing entry is an error.
	GetMany(ctx context.Context, ids []kernel.UUID) (map[kernel.UUID]*menu.MenuItem, error)
}

// CategoryRepository defines the persistence contract for menu categories.
type CategoryRepository interface {
	// Add persists a new category. Name uniqueness is enforced by storage;
	// a duplicate name surfaces as a ValueIsInvalidError.
	Add(ctx context.Context, aggregate *menu.Category) error
}
