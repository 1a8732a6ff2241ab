package commands

import (
	"context"
)

// DeleteOrderCommandHandler removes orders that never entered the kitchen or
// were cancelled. The pickup code of a deleted order is never handed out again.
type DeleteOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	events     OrderEventPublisher
}

func NewDeleteOrderCommandHandler(uowFactory OrderUoWFactory, events OrderEventPublisher) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{
		uowFactory: uowFactory,
		events:     events,
	}
}

// Handle fails with *errs.InvalidTransitionError unless the order is PENDING
// or CANCELLED.
func (h DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
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

	o, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = o.EnsureDeletable(); err != nil {
		return err
	}

	if err = orderRepo.Delete(ctx, o.ID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.events.OrderDeleted(ctx, o)
	return nil
}
