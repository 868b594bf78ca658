package commands

import (
	"context"
	"time"
)

// SetMenuItemAvailabilityCommandHandler handles availability toggles for
// catalog items.
type SetMenuItemAvailabilityCommandHandler struct {
	uowFactory MenuItemUoWFactory
}

// NewSetMenuItemAvailabilityCommandHandler creates a handler for availability toggles.
func NewSetMenuItemAvailabilityCommandHandler(uowFactory MenuItemUoWFactory) SetMenuItemAvailabilityCommandHandler {
	return SetMenuItemAvailabilityCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the availability toggle.
// Fails with ObjectNotFoundError for an unknown item. Orders already placed
// for the item are unaffected.
func (h *SetMenuItemAvailabilityCommandHandler) Handle(ctx context.Context, cmd SetMenuItemAvailabilityCommand) error {
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

	item.SetAvailability(cmd.Available(), time.Now().UTC())

	if err = repo.Update(ctx, item); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
