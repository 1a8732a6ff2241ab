package queries

import (
	"context"

	"canteen/internal/core/domain/services"
)

// GetQueuePositionQueryHandler computes the position from a single read of
// the active queue, so the count and the user's order are consistent.
type GetQueuePositionQueryHandler struct {
	orders   ActiveOrdersReader
	analyzer services.QueueAnalyzer
}

func NewGetQueuePositionQueryHandler(orders ActiveOrdersReader) GetQueuePositionQueryHandler {
	return GetQueuePositionQueryHandler{
		orders:   orders,
		analyzer: services.NewQueueAnalyzer(),
	}
}

// Handle reports HasActiveOrder false with zero position when the user has no
// active order. That is a normal answer, not an error.
func (h GetQueuePositionQueryHandler) Handle(
	ctx context.Context,
	query GetQueuePositionQuery,
) (services.QueuePosition, error) {
	if err := query.Validate(); err != nil {
		return services.QueuePosition{}, err
	}

	active, err := h.orders.GetAllActive(ctx)
	if err != nil {
		return services.QueuePosition{}, err
	}

	return h.analyzer.Position(query.UserID(), active), nil
}
