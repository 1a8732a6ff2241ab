package queries

import (
	"errors"

	"canteen/internal/pkg/guard"
)

var ErrGetQueueStatisticsQueryIsNotConstructed = errors.New(
	"GetQueueStatisticsQuery must be created via NewGetQueueStatisticsQuery constructor",
)

// GetQueueStatisticsQuery retrieves per-status counts and the average
// estimated wait of the active queue.
type GetQueueStatisticsQuery struct {
	guard guard.ConstructorGuard
}

func NewGetQueueStatisticsQuery() GetQueueStatisticsQuery {
	return GetQueueStatisticsQuery{guard: guard.NewConstructorGuard()}
}

func (q GetQueueStatisticsQuery) Validate() error {
	return q.guard.Validate(ErrGetQueueStatisticsQueryIsNotConstructed)
}
