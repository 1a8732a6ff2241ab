package queries

import (
	"context"

	"canteen/internal/core/domain/model/order"
)

type GetOrdersQueryHandler struct {
	orders OrderReader
}

func NewGetOrdersQueryHandler(orders OrderReader) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{orders: orders}
}

// Handle lists every order newest first, or the orders in one status with the
// most recently updated first.
func (h GetOrdersQueryHandler) Handle(ctx context.Context, query GetOrdersQuery) ([]*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var (
		result []*order.Order
		err    error
	)
	if query.Status() == order.Unknown {
		result, err = h.orders.GetAll(ctx)
	} else {
		result, err = h.orders.GetAllByStatus(ctx, query.Status())
	}
	if err != nil {
		return nil, err
	}
	if result == nil {
		result = make([]*order.Order, 0)
	}
	return result, nil
}
