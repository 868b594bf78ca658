package menu

import (
	"errors"
	"fmt"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

// ErrCategoryIsNotConstructed is returned when a Category instance was not
// created through the NewCategory or RestoreCategory factory functions.
var ErrCategoryIsNotConstructed = errors.New("Category must be created via NewCategory or RestoreCategory")

// maxCategoryNameLength bounds category names for display purposes.
const maxCategoryNameLength = 100

// Category groups menu items for presentation. Names are unique across the
// catalog; uniqueness is enforced by the persistence layer.
type Category struct {
	id          kernel.UUID
	name        string
	description string
	createdAt   time.Time

	guard guard.ConstructorGuard
}

// NewCategory creates a category. The name must be non-empty and at most 100
// characters.
func NewCategory(id kernel.UUID, name, description string, now time.Time) (*Category, error) {
	category := &Category{
		description: description,
		createdAt:   now,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		category.setID(id),
		category.setName(name),
	); err != nil {
		return nil, err
	}

	return category, nil
}

// RestoreCategory reconstructs a category from persistence.
func RestoreCategory(id kernel.UUID, name, description string, createdAt time.Time) (*Category, error) {
	return NewCategory(id, name, description, createdAt)
}

// Validate ensures the Category instance was properly constructed.
func (c *Category) Validate() error {
	if c == nil {
		return ErrCategoryIsNotConstructed
	}
	return c.guard.Validate(ErrCategoryIsNotConstructed)
}

// ID returns the category's unique identifier.
func (c *Category) ID() kernel.UUID { return c.id }

// Name returns the category's unique display name.
func (c *Category) Name() string { return c.name }

// Description returns the optional category description.
func (c *Category) Description() string { return c.description }

// CreatedAt returns the creation timestamp.
func (c *Category) CreatedAt() time.Time { return c.createdAt }

func (c *Category) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Category) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	if len(name) > maxCategoryNameLength {
		return errs.NewValueIsInvalidErrorWithCause(
			"name",
			fmt.Errorf("length %d exceeds %d characters", len(name), maxCategoryNameLength),
		)
	}
	c.name = name
	return nil
}
