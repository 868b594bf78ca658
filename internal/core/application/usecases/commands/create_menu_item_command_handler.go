package commands

import (
	"context"
	"time"

	"restaurant/internal/core/domain/model/menu"
)

// CreateMenuItemCommandHandler handles catalog item creation.
type CreateMenuItemCommandHandler struct {
	uowFactory MenuItemUoWFactory
}

// NewCreateMenuItemCommandHandler creates a handler for catalog item creation.
func NewCreateMenuItemCommandHandler(uowFactory MenuItemUoWFactory) CreateMenuItemCommandHandler {
	return CreateMenuItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the menu item creation command.
// New items start out available for ordering.
func (h *CreateMenuItemCommandHandler) Handle(ctx context.Context, cmd CreateMenuItemCommand) error {
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

	item, err := menu.NewMenuItem(
		cmd.ItemID(),
		cmd.Name(),
		cmd.Description(),
		cmd.Price(),
		cmd.CategoryID(),
		cmd.ImageURL(),
		cmd.PreparationTime(),
		cmd.Ingredients(),
		cmd.Allergens(),
		time.Now().UTC(),
	)
	if err != nil {
		return err
	}

	if err = uow.MenuItemRepository().Add(ctx, item); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
