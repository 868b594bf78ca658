// Package menurepo provides data transfer objects and mapping functions for
// catalog persistence. It implements the repository pattern for menu items
// and categories, handling the conversion between domain entities and
// database representations.
package menurepo

import (
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MenuItemDTO represents the database structure for persisting catalog items.
// The category reference is optional; availability is indexed because the
// public catalog listing filters on it.
type MenuItemDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name            string
	Description     string
	Price           decimal.Decimal `gorm:"type:numeric(10,2)"`
	CategoryID      *uuid.UUID      `gorm:"type:uuid;index"`
	ImageURL        string
	IsAvailable     bool `gorm:"index"`
	PreparationTime int
	Ingredients     string
	Allergens       string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName specifies the database table name for menu item entities.
func (MenuItemDTO) TableName() string {
	return "menu_items"
}

// CategoryDTO represents the database structure for persisting categories.
// The name carries a unique index; duplicate inserts fail at the database.
type CategoryDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"uniqueIndex"`
	Description string
	CreatedAt   time.Time
}

// TableName specifies the database table name for category entities.
func (CategoryDTO) TableName() string {
	return "categories"
}

// menuItemFromDomain converts a menu item aggregate to its database representation.
func menuItemFromDomain(item *menu.MenuItem) MenuItemDTO {
	var categoryID *uuid.UUID
	if id := item.CategoryID(); id != nil {
		raw := id.Bytes()
		categoryID = &raw
	}

	return MenuItemDTO{
		ID:              item.ID().Bytes(),
		Name:            item.Name(),
		Description:     item.Description(),
		Price:           item.Price(),
		CategoryID:      categoryID,
		ImageURL:        item.ImageURL(),
		IsAvailable:     item.IsAvailable(),
		PreparationTime: item.PreparationTime(),
		Ingredients:     item.Ingredients(),
		Allergens:       item.Allergens(),
		CreatedAt:       item.CreatedAt(),
		UpdatedAt:       item.UpdatedAt(),
	}
}

// menuItemToDomain converts a database DTO to a menu item aggregate.
func menuItemToDomain(dto MenuItemDTO) (*menu.MenuItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var categoryID *kernel.UUID
	if dto.CategoryID != nil {
		cID, catErr := kernel.UUIDFromBytes((*dto.CategoryID)[:])
		if catErr != nil {
			return nil, catErr
		}
		categoryID = &cID
	}

	return menu.RestoreMenuItem(
		id,
		dto.Name,
		dto.Description,
		dto.Price,
		categoryID,
		dto.ImageURL,
		dto.IsAvailable,
		dto.PreparationTime,
		dto.Ingredients,
		dto.Allergens,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}

// categoryFromDomain converts a category aggregate to its database representation.
func categoryFromDomain(category *menu.Category) CategoryDTO {
	return CategoryDTO{
		ID:          category.ID().Bytes(),
		Name:        category.Name(),
		Description: category.Description(),
		CreatedAt:   category.CreatedAt(),
	}
}
