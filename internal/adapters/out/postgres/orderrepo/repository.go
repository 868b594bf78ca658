package orderrepo

import (
	"context"
	"errors"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order together with all of its lines. GORM persists the
// association in the same statement batch, so within a transaction the order
// and its lines commit or roll back as one.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return errs.NewPersistenceError("insert order", err)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order with its lines by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).Preload("Lines").First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllPendingBefore retrieves all pending orders created strictly before cutoff.
func (r *GormOrderRepository) GetAllPendingBefore(ctx context.Context, cutoff time.Time) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Lines").
		Find(&dtos, "status = ? AND created_at < ?", int(order.Pending), cutoff).Error
	if err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}

// UpdateStatus persists the aggregate's status as a conditional update.
// The row is touched only when its stored status still equals previous; a
// concurrent transition that already moved the order on leaves zero affected
// rows and surfaces as a ConflictError.
func (r *GormOrderRepository) UpdateStatus(
	ctx context.Context,
	aggregate *order.Order,
	previous order.Status,
) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ? AND status = ?", aggregate.ID().Bytes(), int(previous)).
		Updates(map[string]any{
			"status":     int(aggregate.Status()),
			"updated_at": aggregate.UpdatedAt(),
		})
	if result.Error != nil {
		return errs.NewPersistenceError("update order status", result.Error)
	}

	if result.RowsAffected == 0 {
		var count int64
		err := r.db.WithContext(ctx).
			Model(&OrderDTO{}).
			Where("id = ?", aggregate.ID().Bytes()).
			Count(&count).Error
		if err != nil {
			return errs.NewPersistenceError("update order status", err)
		}
		if count == 0 {
			return errs.NewObjectNotFoundError("order", aggregate.ID().String())
		}
		return errs.NewConflictError("order", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}
