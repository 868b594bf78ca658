package ports

import (
	"context"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Orders are written together with their lines; the repository never exposes
// partial aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate together with all of its lines.
	// Within a unit of work the insert is atomic: either the order row and
	// every line become visible on commit, or nothing does.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate with its lines by unique identifier.
	// Returns an ObjectNotFoundError if no such order exists.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllPendingBefore retrieves all orders still pending whose creation
	// time is strictly before cutoff. Used by the expiry job to cancel
	// abandoned orders; returns an empty slice when none qualify.
	GetAllPendingBefore(ctx context.Context, cutoff time.Time) ([]*order.Order, error)

	// UpdateStatus persists a status change as a conditional single-row
	// update: it succeeds only if the stored status still equals previous,
	// the status the caller validated the transition against. A stale write
	// is rejected with a ConflictError so the caller can re-read and decide
	// whether to retry; a missing order yields an ObjectNotFoundError.
	UpdateStatus(ctx context.Context, aggregate *order.Order, previous order.Status) error
}
