package commands

import (
	"context"
	"time"

	"restaurant/internal/core/domain/model/menu"
)

// CreateCategoryCommandHandler handles catalog category creation.
type CreateCategoryCommandHandler struct {
	uowFactory CategoryUoWFactory
}

// NewCreateCategoryCommandHandler creates a handler for category creation.
func NewCreateCategoryCommandHandler(uowFactory CategoryUoWFactory) CreateCategoryCommandHandler {
	return CreateCategoryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the category creation command.
// Category names are unique; inserting a duplicate fails with a
// ValueIsInvalidError from the repository.
func (h *CreateCategoryCommandHandler) Handle(ctx context.Context, cmd CreateCategoryCommand) error {
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

	category, err := menu.NewCategory(cmd.CategoryID(), cmd.Name(), cmd.Description(), time.Now().UTC())
	if err != nil {
		return err
	}

	if err = uow.CategoryRepository().Add(ctx, category); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
