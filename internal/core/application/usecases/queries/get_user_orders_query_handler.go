package queries

import (
	"context"

	"canteen/internal/core/domain/model/order"
)

type GetUserOrdersQueryHandler struct {
	orders OrderReader
}

func NewGetUserOrdersQueryHandler(orders OrderReader) GetUserOrdersQueryHandler {
	return GetUserOrdersQueryHandler{orders: orders}
}

// Handle keeps the store's newest-first ordering. ScopeActive keeps orders
// still in the queue, ScopeHistory keeps completed and cancelled ones.
func (h GetUserOrdersQueryHandler) Handle(ctx context.Context, query GetUserOrdersQuery) ([]*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	all, err := h.orders.GetAllByUserID(ctx, query.UserID())
	if err != nil {
		return nil, err
	}

	result := make([]*order.Order, 0, len(all))
	for _, o := range all {
		switch query.Scope() {
		case ScopeActive:
			if !o.IsActive() {
				continue
			}
		case ScopeHistory:
			if !o.Status().IsTerminal() {
				continue
			}
		case ScopeAll:
		}
		result = append(result, o)
	}
	return result, nil
}
