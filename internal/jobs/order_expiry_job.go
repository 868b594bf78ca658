package jobs

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/errs"

	"github.com/robfig/cron/v3"
)

// PendingOrderExpiryJob cancels orders that were placed but never confirmed.
// Runs every minute and moves every pending order older than the configured
// TTL to cancelled through the regular status-change path, so the same state
// machine and conflict detection apply as for staff-initiated transitions.
type PendingOrderExpiryJob struct {
	uowFactory commands.OrderUoWFactory
	handler    commands.ChangeOrderStatusCommandHandler
	ttl        time.Duration
	cron       *cron.Cron
	logger     *slog.Logger
}

// NewPendingOrderExpiryJob creates a job that expires stale pending orders.
// ttl is how long an order may stay pending before it is cancelled.
func NewPendingOrderExpiryJob(
	uowFactory commands.OrderUoWFactory,
	handler commands.ChangeOrderStatusCommandHandler,
	ttl time.Duration,
	logger *slog.Logger,
) *PendingOrderExpiryJob {
	return &PendingOrderExpiryJob{
		uowFactory: uowFactory,
		handler:    handler,
		ttl:        ttl,
		cron:       cron.New(cron.WithSeconds()),
		logger:     logger.With("component", "pending_order_expiry_job"),
	}
}

// Start begins the expiry job to run every minute.
func (j *PendingOrderExpiryJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		j.Run(context.Background())
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Pending order expiry job started (running every minute)",
		"ttl", j.ttl.String())
	return nil
}

// Stop stops the expiry job.
func (j *PendingOrderExpiryJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Pending order expiry job stopped")
}

// Run executes one expiry sweep. Each stale order is cancelled individually;
// an order that a concurrent update already moved on is skipped, never
// retried, and never blocks the rest of the sweep.
func (j *PendingOrderExpiryJob) Run(ctx context.Context) {
	cutoff := time.Now().UTC().Add(-j.ttl)

	uow := j.uowFactory.Create()
	stale, err := uow.OrderRepository().GetAllPendingBefore(ctx, cutoff)
	if err != nil {
		j.logger.ErrorContext(ctx, "Pending order expiry sweep failed", "error", err)
		return
	}

	for _, aggregate := range stale {
		cmd, cmdErr := commands.NewChangeOrderStatusCommand(aggregate.ID(), order.Cancelled)
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Failed to build cancellation command",
				"order_id", aggregate.ID().String(), "error", cmdErr)
			continue
		}

		handleErr := j.handler.Handle(ctx, cmd)
		switch {
		case handleErr == nil:
			j.logger.InfoContext(ctx, "Cancelled stale pending order",
				"order_id", aggregate.ID().String())
		case errors.Is(handleErr, errs.ErrConflict), errors.Is(handleErr, errs.ErrInvalidTransition):
			// A staff member or a previous sweep got there first.
			j.logger.InfoContext(ctx, "Skipped order already moved on",
				"order_id", aggregate.ID().String())
		default:
			j.logger.ErrorContext(ctx, "Failed to cancel stale pending order",
				"order_id", aggregate.ID().String(), "error", handleErr)
		}
	}
}
