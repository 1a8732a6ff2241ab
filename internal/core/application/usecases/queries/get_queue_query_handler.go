package queries

import (
	"context"

	"canteen/internal/core/domain/model/order"
)

type GetQueueQueryHandler struct {
	orders ActiveOrdersReader
}

func NewGetQueueQueryHandler(orders ActiveOrdersReader) GetQueueQueryHandler {
	return GetQueueQueryHandler{orders: orders}
}

// Handle returns PENDING, CONFIRMED, PREPARING and READY orders sorted by
// queue number ascending. An empty queue yields an empty, non-nil slice.
func (h GetQueueQueryHandler) Handle(ctx context.Context, query GetQueueQuery) ([]*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	queue, err := h.orders.GetAllActive(ctx)
	if err != nil {
		return nil, err
	}
	if queue == nil {
		queue = make([]*order.Order, 0)
	}
	return queue, nil
}
