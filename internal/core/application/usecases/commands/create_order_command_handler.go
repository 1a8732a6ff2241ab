package commands

import (
	"context"
	"errors"
	"time"

	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/core/domain/model/order"
	"canteen/internal/core/domain/services"
	"canteen/internal/pkg/errs"
)

// MaxCreateOrderAttempts bounds how often a creation is retried after the
// store rejected its pickup code or queue number as already taken.
const MaxCreateOrderAttempts = 3

// CreateOrderCommandHandler places new orders. Each attempt draws a pickup
// code, takes the next queue number and stores the PENDING order inside one
// unit of work.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, codes, dispatcher)
//	created, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
//	fmt.Printf("pickup code %s, queue number %d\n", created.PickupCode(), created.QueueNumber())
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	codes      services.PickupCodeGenerator
	events     OrderEventPublisher
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	codes services.PickupCodeGenerator,
	events OrderEventPublisher,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		codes:      codes,
		events:     events,
	}
}

// Handle creates the order and publishes NEW_ORDER once it is committed.
// Conflicts on the pickup code or queue number are retried with fresh values
// up to MaxCreateOrderAttempts times; any other error is returned at once.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	var (
		created *order.Order
		err     error
	)
	for range MaxCreateOrderAttempts {
		created, err = h.create(ctx, cmd)
		if !errors.Is(err, errs.ErrConflict) {
			break
		}
	}
	if err != nil {
		return nil, err
	}

	h.events.OrderCreated(ctx, created)
	return created, nil
}

func (h CreateOrderCommandHandler) create(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	code, err := h.codes.Generate(ctx, orderRepo)
	if err != nil {
		return nil, err
	}

	queueNumber, err := orderRepo.NextQueueNumber(ctx)
	if err != nil {
		return nil, err
	}

	created, err := order.NewOrder(
		kernel.NewUUID(),
		cmd.UserID(),
		code,
		queueNumber,
		cmd.Notes(),
		cmd.Items(),
		time.Now().UTC(),
	)
	if err != nil {
		return nil, err
	}

	if err = orderRepo.Add(ctx, created); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return created, nil
}
