package commands

import (
	"errors"
	"fmt"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrCreateMenuItemCommandIsNotConstructed = errors.New(
	"CreateMenuItemCommand must be created via NewCreateMenuItemCommand constructor",
)

// CreateMenuItemCommand represents a request to add a new item to the catalog.
// A zero preparation time selects the catalog default.
type CreateMenuItemCommand struct { //nolint:recvcheck //using for validation
	itemID          kernel.UUID
	name            string
	description     string
	price           decimal.Decimal
	categoryID      *kernel.UUID
	imageURL        string
	preparationTime int
	ingredients     string
	allergens       string

	guard guard.ConstructorGuard
}

// NewCreateMenuItemCommand creates a command to add a catalog item.
// Validates that the item ID is valid, the name is non-empty, the price is
// non-negative, and the preparation time is positive (zero selects
// menu.DefaultPreparationTime).
func NewCreateMenuItemCommand(
	itemID kernel.UUID,
	name string,
	description string,
	price decimal.Decimal,
	categoryID *kernel.UUID,
	imageURL string,
	preparationTime int,
	ingredients string,
	allergens string,
) (CreateMenuItemCommand, error) {
	cmd := CreateMenuItemCommand{
		description: description,
		imageURL:    imageURL,
		ingredients: ingredients,
		allergens:   allergens,
		guard:       guard.NewConstructorGuard(),
	}

	if preparationTime == 0 {
		preparationTime = menu.DefaultPreparationTime
	}

	if err := errors.Join(
		cmd.setItemID(itemID),
		cmd.setName(name),
		cmd.setPrice(price),
		cmd.setCategoryID(categoryID),
		cmd.setPreparationTime(preparationTime),
	); err != nil {
		return CreateMenuItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrCreateMenuItemCommandIsNotConstructed)
}

// ItemID returns the identifier assigned to the new item.
func (c CreateMenuItemCommand) ItemID() kernel.UUID { return c.itemID }

// Name returns the item's display name.
func (c CreateMenuItemCommand) Name() string { return c.name }

// Description returns the optional item description.
func (c CreateMenuItemCommand) Description() string { return c.description }

// Price returns the item's catalog price.
func (c CreateMenuItemCommand) Price() decimal.Decimal { return c.price }

// CategoryID returns the optional owning category.
func (c CreateMenuItemCommand) CategoryID() *kernel.UUID { return c.categoryID }

// ImageURL returns the optional presentation image.
func (c CreateMenuItemCommand) ImageURL() string { return c.imageURL }

// PreparationTime returns the preparation time in minutes.
func (c CreateMenuItemCommand) PreparationTime() int { return c.preparationTime }

// Ingredients returns the optional ingredient list.
func (c CreateMenuItemCommand) Ingredients() string { return c.ingredients }

// Allergens returns the optional allergen note.
func (c CreateMenuItemCommand) Allergens() string { return c.allergens }

func (c *CreateMenuItemCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}
	c.itemID = itemID
	return nil
}

func (c *CreateMenuItemCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *CreateMenuItemCommand) setPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%s is negative", price))
	}
	c.price = price
	return nil
}

func (c *CreateMenuItemCommand) setCategoryID(categoryID *kernel.UUID) error {
	if categoryID != nil {
		if err := categoryID.Validate(); err != nil {
			return err
		}
	}
	c.categoryID = categoryID
	return nil
}

func (c *CreateMenuItemCommand) setPreparationTime(preparationTime int) error {
	if preparationTime < 1 {
		return errs.NewValueIsInvalidErrorWithCause(
			"preparationTime",
			fmt.Errorf("%d is not greater than 0", preparationTime),
		)
	}
	c.preparationTime = preparationTime
	return nil
}
