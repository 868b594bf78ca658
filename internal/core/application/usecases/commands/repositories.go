// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"restaurant/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// MenuItemRepoFactory provides access to the menu item repository within a transaction.
	MenuItemRepoFactory interface {
		MenuItemRepository() ports.MenuItemRepository
	}

	// CategoryRepoFactory provides access to the category repository within a transaction.
	CategoryRepoFactory interface {
		CategoryRepository() ports.CategoryRepository
	}

	// OrderUoW manages transactions for order-only operations.
	// Used by commands that only touch the order aggregate, such as
	// status changes.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// MenuItemUoW manages transactions for catalog item operations.
	MenuItemUoW interface {
		TxManager
		MenuItemRepoFactory
	}

	// MenuItemUoWFactory creates new menu item unit of work instances.
	MenuItemUoWFactory interface {
		Create() MenuItemUoW
	}

	// CategoryUoW manages transactions for category operations.
	CategoryUoW interface {
		TxManager
		CategoryRepoFactory
	}

	// CategoryUoWFactory creates new category unit of work instances.
	CategoryUoWFactory interface {
		Create() CategoryUoW
	}

	// OrderingUoW manages the order-creation transaction, which reads the
	// catalog and writes the order aggregate inside one transactional
	// boundary so that pricing and persistence share a consistent view.
	OrderingUoW interface {
		TxManager
		OrderRepoFactory
		MenuItemRepoFactory
	}

	// OrderingUoWFactory creates new ordering unit of work instances.
	OrderingUoWFactory interface {
		Create() OrderingUoW
	}
)
