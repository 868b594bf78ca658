package menurepo

import (
	"context"
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormMenuItemRepository implements MenuItemRepository using GORM.
type GormMenuItemRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormMenuItemRepository creates a new GORM menu item repository.
func NewGormMenuItemRepository(db *gorm.DB, tracker aggregateTracker) *GormMenuItemRepository {
	return &GormMenuItemRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new menu item to the database.
func (r *GormMenuItemRepository) Add(ctx context.Context, aggregate *menu.MenuItem) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := menuItemFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return errs.NewPersistenceError("insert menu item", err)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing menu item to the database.
func (r *GormMenuItemRepository) Update(ctx context.Context, aggregate *menu.MenuItem) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := menuItemFromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&MenuItemDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(&dto)
	if result.Error != nil {
		return errs.NewPersistenceError("update menu item", result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("menu item", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a menu item by ID.
func (r *GormMenuItemRepository) Get(ctx context.Context, id kernel.UUID) (*menu.MenuItem, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto MenuItemDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("menu item", id.String())
		}
		return nil, err
	}

	return menuItemToDomain(dto)
}

// GetMany retrieves the catalog entries for the given ids, keyed by id.
// Missing ids are absent from the result rather than an error.
func (r *GormMenuItemRepository) GetMany(
	ctx context.Context,
	ids []kernel.UUID,
) (map[kernel.UUID]*menu.MenuItem, error) {
	raw := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		raw = append(raw, id.Bytes())
	}

	var dtos []MenuItemDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "id IN ?", raw).Error; err != nil {
		return nil, err
	}

	items := make(map[kernel.UUID]*menu.MenuItem, len(dtos))
	for _, dto := range dtos {
		item, err := menuItemToDomain(dto)
		if err != nil {
			return nil, err
		}
		items[item.ID()] = item
	}

	return items, nil
}

// GormCategoryRepository implements CategoryRepository using GORM.
type GormCategoryRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// NewGormCategoryRepository creates a new GORM category repository.
func NewGormCategoryRepository(db *gorm.DB, tracker aggregateTracker) *GormCategoryRepository {
	return &GormCategoryRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new category. The unique index on the name turns duplicate
// inserts into a ValueIsInvalidError. Requires the connection to be opened
// with TranslateError so the driver's duplicate-key error maps onto
// gorm.ErrDuplicatedKey.
func (r *GormCategoryRepository) Add(ctx context.Context, aggregate *menu.Category) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := categoryFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewValueIsInvalidErrorWithCause("name", err)
		}
		return errs.NewPersistenceError("insert category", err)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}
