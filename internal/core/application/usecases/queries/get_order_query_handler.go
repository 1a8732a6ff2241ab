package queries

import (
	"context"

	"canteen/internal/core/domain/model/order"
)

type GetOrderQueryHandler struct {
	orders OrderReader
}

func NewGetOrderQueryHandler(orders OrderReader) GetOrderQueryHandler {
	return GetOrderQueryHandler{orders: orders}
}

// Handle returns *errs.ObjectNotFoundError when nothing matches.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if query.byPickupCode() {
		return h.orders.GetByPickupCode(ctx, query.PickupCode())
	}
	return h.orders.Get(ctx, query.ID())
}
