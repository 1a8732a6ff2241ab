package queries

import (
	"context"

	"canteen/internal/core/domain/services"
)

// GetQueueStatisticsQueryHandler aggregates the active queue.
//
// Example:
//
//	handler := NewGetQueueStatisticsQueryHandler(repo)
//	stats, err := handler.Handle(ctx, NewGetQueueStatisticsQuery())
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("%d in queue, about %.1f min each\n", stats.TotalInQueue, stats.AverageWaitTime)
type GetQueueStatisticsQueryHandler struct {
	orders   ActiveOrdersReader
	analyzer services.QueueAnalyzer
}

func NewGetQueueStatisticsQueryHandler(orders ActiveOrdersReader) GetQueueStatisticsQueryHandler {
	return GetQueueStatisticsQueryHandler{
		orders:   orders,
		analyzer: services.NewQueueAnalyzer(),
	}
}

func (h GetQueueStatisticsQueryHandler) Handle(
	ctx context.Context,
	query GetQueueStatisticsQuery,
) (services.QueueStatistics, error) {
	if err := query.Validate(); err != nil {
		return services.QueueStatistics{}, err
	}

	active, err := h.orders.GetAllActive(ctx)
	if err != nil {
		return services.QueueStatistics{}, err
	}

	return h.analyzer.Statistics(active), nil
}
