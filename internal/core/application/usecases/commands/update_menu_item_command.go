package commands

import (
	"errors"
	"fmt"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrUpdateMenuItemCommandIsNotConstructed = errors.New(
	"UpdateMenuItemCommand must be created via NewUpdateMenuItemCommand constructor",
)

// UpdateMenuItemCommand represents a partial update of a catalog item. Nil
// fields keep the item's current value; the handler merges the command onto
// the loaded item.
type UpdateMenuItemCommand struct { //nolint:recvcheck //using for validation
	itemID          kernel.UUID
	name            *string
	description     *string
	price           *decimal.Decimal
	categoryID      *kernel.UUID
	imageURL        *string
	preparationTime *int
	ingredients     *string
	allergens       *string

	guard guard.ConstructorGuard
}

// NewUpdateMenuItemCommand creates a command to update a catalog item.
// Every field except the item ID is optional; provided fields are validated
// with the same rules as item creation.
func NewUpdateMenuItemCommand(
	itemID kernel.UUID,
	name *string,
	description *string,
	price *decimal.Decimal,
	categoryID *kernel.UUID,
	imageURL *string,
	preparationTime *int,
	ingredients *string,
	allergens *string,
) (UpdateMenuItemCommand, error) {
	cmd := UpdateMenuItemCommand{
		description: description,
		imageURL:    imageURL,
		ingredients: ingredients,
		allergens:   allergens,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setItemID(itemID),
		cmd.setName(name),
		cmd.setPrice(price),
		cmd.setCategoryID(categoryID),
		cmd.setPreparationTime(preparationTime),
	); err != nil {
		return UpdateMenuItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrUpdateMenuItemCommandIsNotConstructed)
}

// ItemID returns the identifier of the item to update.
func (c UpdateMenuItemCommand) ItemID() kernel.UUID { return c.itemID }

// Name returns the new name, or nil to keep the current one.
func (c UpdateMenuItemCommand) Name() *string { return c.name }

// Description returns the new description, or nil to keep the current one.
func (c UpdateMenuItemCommand) Description() *string { return c.description }

// Price returns the new price, or nil to keep the current one.
func (c UpdateMenuItemCommand) Price() *decimal.Decimal { return c.price }

// CategoryID returns the new owning category, or nil to keep the current one.
func (c UpdateMenuItemCommand) CategoryID() *kernel.UUID { return c.categoryID }

// ImageURL returns the new image URL, or nil to keep the current one.
func (c UpdateMenuItemCommand) ImageURL() *string { return c.imageURL }

// PreparationTime returns the new preparation time, or nil to keep the current one.
func (c UpdateMenuItemCommand) PreparationTime() *int { return c.preparationTime }

// Ingredients returns the new ingredient list, or nil to keep the current one.
func (c UpdateMenuItemCommand) Ingredients() *string { return c.ingredients }

// Allergens returns the new allergen note, or nil to keep the current one.
func (c UpdateMenuItemCommand) Allergens() *string { return c.allergens }

func (c *UpdateMenuItemCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}
	c.itemID = itemID
	return nil
}

func (c *UpdateMenuItemCommand) setName(name *string) error {
	if name != nil && *name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *UpdateMenuItemCommand) setPrice(price *decimal.Decimal) error {
	if price != nil && price.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%s is negative", price))
	}
	c.price = price
	return nil
}

func (c *UpdateMenuItemCommand) setCategoryID(categoryID *kernel.UUID) error {
	if categoryID != nil {
		if err := categoryID.Validate(); err != nil {
			return err
		}
	}
	c.categoryID = categoryID
	return nil
}

func (c *UpdateMenuItemCommand) setPreparationTime(preparationTime *int) error {
	if preparationTime != nil && *preparationTime < 1 {
		return errs.NewValueIsInvalidErrorWithCause(
			"preparationTime",
			fmt.Errorf("%d is not greater than 0", *preparationTime),
		)
	}
	c.preparationTime = preparationTime
	return nil
}
