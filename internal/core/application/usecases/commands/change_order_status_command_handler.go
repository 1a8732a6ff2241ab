package commands

import (
	"context"
	"time"

	"canteen/internal/core/domain/model/order"
)

// ChangeOrderStatusCommandHandler applies a status transition. The order is
// read with GetForUpdate so two concurrent transitions from the same status
// cannot both succeed.
type ChangeOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	events     OrderEventPublisher
}

func NewChangeOrderStatusCommandHandler(uowFactory OrderUoWFactory, events OrderEventPublisher) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
		events:     events,
	}
}

// Handle returns *errs.ObjectNotFoundError for an unknown order and
// *errs.InvalidTransitionError for an illegal change. Nothing is written in
// either case.
func (h ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) (*order.Order, error) {
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

	from := o.Status()
	if err = o.ChangeStatus(cmd.Target(), cmd.Notes(), time.Now().UTC()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.events.OrderStatusChanged(ctx, o, from, o.Status())
	return o, nil
}
