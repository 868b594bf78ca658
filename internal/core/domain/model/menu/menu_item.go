package menu

import (
	"errors"
	"fmt"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrMenuItemIsNotConstructed is returned when a MenuItem instance was not
// created through the NewMenuItem or RestoreMenuItem factory functions.
var ErrMenuItemIsNotConstructed = errors.New("MenuItem must be created via NewMenuItem or RestoreMenuItem")

// DefaultPreparationTime is the preparation time in minutes assumed for items
// created without an explicit value.
const DefaultPreparationTime = 15

// MenuItem is a sellable catalog entry. Orders reference menu items by id and
// snapshot their price at creation time; changing an item's price or
// availability never affects existing orders.
type MenuItem struct {
	id              kernel.UUID
	name            string
	description     string
	price           decimal.Decimal
	categoryID      *kernel.UUID
	imageURL        string
	isAvailable     bool
	preparationTime int
	ingredients     string
	allergens       string
	createdAt       time.Time
	updatedAt       time.Time

	guard guard.ConstructorGuard
}

// NewMenuItem creates an available menu item. The name must be non-empty, the
// price non-negative, and the preparation time positive (use
// DefaultPreparationTime when the caller has no better value).
func NewMenuItem(
	id kernel.UUID,
	name string,
	description string,
	price decimal.Decimal,
	categoryID *kernel.UUID,
	imageURL string,
	preparationTime int,
	ingredients string,
	allergens string,
	now time.Time,
) (*MenuItem, error) {
	item := &MenuItem{
		description: description,
		imageURL:    imageURL,
		isAvailable: true,
		ingredients: ingredients,
		allergens:   allergens,
		createdAt:   now,
		updatedAt:   now,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setID(id),
		item.setName(name),
		item.setPrice(price),
		item.setCategoryID(categoryID),
		item.setPreparationTime(preparationTime),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// RestoreMenuItem reconstructs a menu item from persistence, including its
// stored availability flag and timestamps.
func RestoreMenuItem(
	id kernel.UUID,
	name string,
	description string,
	price decimal.Decimal,
	categoryID *kernel.UUID,
	imageURL string,
	isAvailable bool,
	preparationTime int,
	ingredients string,
	allergens string,
	createdAt time.Time,
	updatedAt time.Time,
) (*MenuItem, error) {
	item, err := NewMenuItem(
		id, name, description, price, categoryID, imageURL,
		preparationTime, ingredients, allergens, createdAt,
	)
	if err != nil {
		return nil, err
	}

	item.isAvailable = isAvailable
	item.updatedAt = updatedAt
	return item, nil
}

// Validate ensures the MenuItem instance was properly constructed.
func (m *MenuItem) Validate() error {
	if m == nil {
		return ErrMenuItemIsNotConstructed
	}
	return m.guard.Validate(ErrMenuItemIsNotConstructed)
}

// ID returns the item's unique identifier.
func (m *MenuItem) ID() kernel.UUID { return m.id }

// Name returns the item's display name.
func (m *MenuItem) Name() string { return m.name }

// Description returns the optional item description.
func (m *MenuItem) Description() string { return m.description }

// Price returns the current catalog price.
func (m *MenuItem) Price() decimal.Decimal { return m.price }

// CategoryID returns the owning category, or nil for uncategorized items.
func (m *MenuItem) CategoryID() *kernel.UUID { return m.categoryID }

// ImageURL returns the optional presentation image.
func (m *MenuItem) ImageURL() string { return m.imageURL }

// IsAvailable reports whether the item can currently be ordered.
func (m *MenuItem) IsAvailable() bool { return m.isAvailable }

// PreparationTime returns the expected preparation time in minutes.
func (m *MenuItem) PreparationTime() int { return m.preparationTime }

// Ingredients returns the optional ingredient list.
func (m *MenuItem) Ingredients() string { return m.ingredients }

// Allergens returns the optional allergen note.
func (m *MenuItem) Allergens() string { return m.allergens }

// CreatedAt returns the creation timestamp.
func (m *MenuItem) CreatedAt() time.Time { return m.createdAt }

// UpdatedAt returns the timestamp of the last modification.
func (m *MenuItem) UpdatedAt() time.Time { return m.updatedAt }

// ChangeDetails replaces the item's editable attributes. Callers keeping a
// field unchanged pass its current value. Existing orders are unaffected:
// their lines carry the price snapshotted when they were created.
func (m *MenuItem) ChangeDetails(
	name string,
	description string,
	price decimal.Decimal,
	categoryID *kernel.UUID,
	imageURL string,
	preparationTime int,
	ingredients string,
	allergens string,
	now time.Time,
) error {
	if err := errors.Join(
		m.setName(name),
		m.setPrice(price),
		m.setCategoryID(categoryID),
		m.setPreparationTime(preparationTime),
	); err != nil {
		return err
	}

	m.description = description
	m.imageURL = imageURL
	m.ingredients = ingredients
	m.allergens = allergens
	m.updatedAt = now
	return nil
}

// SetAvailability toggles whether the item can be ordered.
func (m *MenuItem) SetAvailability(available bool, now time.Time) {
	m.isAvailable = available
	m.updatedAt = now
}

func (m *MenuItem) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.id = id
	return nil
}

func (m *MenuItem) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	m.name = name
	return nil
}

func (m *MenuItem) setPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%s is negative", price))
	}
	m.price = price
	return nil
}

func (m *MenuItem) setCategoryID(categoryID *kernel.UUID) error {
	if categoryID != nil {
		if err := categoryID.Validate(); err != nil {
			return err
		}
	}
	m.categoryID = categoryID
	return nil
}

func (m *MenuItem) setPreparationTime(preparationTime int) error {
	if preparationTime < 1 {
		return errs.NewValueIsInvalidErrorWithCause(
			"preparationTime",
			fmt.Errorf("%d is not greater than 0", preparationTime),
		)
	}
	m.preparationTime = preparationTime
	return nil
}
