package commands

import (
	"context"
	"time"

	"canteen/internal/core/domain/model/order"
)

// UpdateOrderCommandHandler replaces the details of an order that the kitchen
// has not confirmed yet.
type UpdateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	events     OrderEventPublisher
}

func NewUpdateOrderCommandHandler(uowFactory OrderUoWFactory, events OrderEventPublisher) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		uowFactory: uowFactory,
		events:     events,
	}
}

// Handle fails with *errs.InvalidTransitionError unless the order is PENDING.
func (h UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	o, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = o.UpdateDetails(cmd.Notes(), cmd.Items(), time.Now().UTC()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.events.OrderUpdated(ctx, o)
	return o, nil
}
