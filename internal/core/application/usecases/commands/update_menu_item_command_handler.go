package commands

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// UpdateMenuItemCommandHandler handles partial catalog item updates. The item
// is loaded inside the transaction, the command's set fields are merged over
// its current values, and the result is written back.
type UpdateMenuItemCommandHandler struct {
	uowFactory MenuItemUoWFactory
}

// NewUpdateMenuItemCommandHandler creates a handler for catalog item updates.
func NewUpdateMenuItemCommandHandler(uowFactory MenuItemUoWFactory) UpdateMenuItemCommandHandler {
	return UpdateMenuItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the menu item update command.
// Fails with ObjectNotFoundError for an unknown item. Price changes affect
// future orders only; existing order lines keep their snapshotted price.
func (h *UpdateMenuItemCommandHandler) Handle(ctx context.Context, cmd UpdateMenuItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.MenuItemRepository()
	item, err := repo.Get(ctx, cmd.ItemID())
	if err != nil {
		return err
	}

	categoryID := item.CategoryID()
	if cmd.CategoryID() != nil {
		categoryID = cmd.CategoryID()
	}

	err = item.ChangeDetails(
		mergeString(cmd.Name(), item.Name()),
		mergeString(cmd.Description(), item.Description()),
		mergeDecimal(cmd.Price(), item.Price()),
		categoryID,
		mergeString(cmd.ImageURL(), item.ImageURL()),
		mergeInt(cmd.PreparationTime(), item.PreparationTime()),
		mergeString(cmd.Ingredients(), item.Ingredients()),
		mergeString(cmd.Allergens(), item.Allergens()),
		time.Now().UTC(),
	)
	if err != nil {
		return err
	}

	if err = repo.Update(ctx, item); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func mergeString(next *string, current string) string {
	if next != nil {
		return *next
	}
	return current
}

func mergeDecimal(next *decimal.Decimal, current decimal.Decimal) decimal.Decimal {
	if next != nil {
		return *next
	}
	return current
}

func mergeInt(next *int, current int) int {
	if next != nil {
		return *next
	}
	return current
}
