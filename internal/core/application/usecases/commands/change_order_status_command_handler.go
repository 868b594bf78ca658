package commands

import (
	"context"
	"time"
)

// ChangeOrderStatusCommandHandler enforces the fulfillment state machine for
// status updates. It loads the order, validates the requested transition in
// the domain model, and persists the change as a conditional update keyed on
// the status it validated against.
//
// Two concurrent updates on the same order cannot both win: the repository
// rejects the stale write with a ConflictError, and the losing caller can
// re-fetch and decide whether to retry.
type ChangeOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewChangeOrderStatusCommandHandler creates a handler for status change operations.
// Requires an OrderUoWFactory for transactional persistence.
func NewChangeOrderStatusCommandHandler(uowFactory OrderUoWFactory) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status change command.
// Fails with ObjectNotFoundError for an unknown order, InvalidTransitionError
// for a move the state machine forbids, and ConflictError when a concurrent
// transition won the race; in every failure case the stored order is left
// exactly as it was.
func (h *ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) error {
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

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	previous := aggregate.Status()
	if err = aggregate.ChangeStatus(cmd.Target(), time.Now().UTC()); err != nil {
		return err
	}

	if err = orderRepo.UpdateStatus(ctx, aggregate, previous); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
