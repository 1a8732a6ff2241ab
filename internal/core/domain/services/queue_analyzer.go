package services

import (
	"canteen/internal/core/domain/model/order"
)

// QueueStatistics is a point-in-time view of the active queue.
type QueueStatistics struct {
	PendingCount   int
	ConfirmedCount int
	PreparingCount int
	ReadyCount     int
	TotalInQueue   int
	// AverageWaitTime is the mean TotalEstimatedTime of active orders, in
	// minutes. Zero when the queue is empty.
	AverageWaitTime float64
}

// CountByStatus returns the count for one active status, zero for any other.
func (s QueueStatistics) CountByStatus(status order.Status) int {
	switch status {
	case order.Pending:
		return s.PendingCount
	case order.Confirmed:
		return s.ConfirmedCount
	case order.Preparing:
		return s.PreparingCount
	case order.Ready:
		return s.ReadyCount
	default:
		return 0
	}
}

// QueuePosition describes where a user's order stands in the queue.
type QueuePosition struct {
	HasActiveOrder bool
	OrdersAhead    int
	QueueNumber    int
	Status         order.Status
}

// QueueAnalyzer computes read-only views over a set of orders. Orders that
// are not active are ignored, so callers may pass any snapshot of the store.
type QueueAnalyzer struct{}

func NewQueueAnalyzer() QueueAnalyzer {
	return QueueAnalyzer{}
}

// Statistics aggregates per-status counts and the average estimated wait.
func (QueueAnalyzer) Statistics(orders []*order.Order) QueueStatistics {
	var (
		stats     QueueStatistics
		totalWait int
	)

	for _, o := range orders {
		if !o.IsActive() {
			continue
		}

		switch o.Status() {
		case order.Pending:
			stats.PendingCount++
		case order.Confirmed:
			stats.ConfirmedCount++
		case order.Preparing:
			stats.PreparingCount++
		case order.Ready:
			stats.ReadyCount++
		}
		stats.TotalInQueue++
		totalWait += o.TotalEstimatedTime()
	}

	if stats.TotalInQueue > 0 {
		stats.AverageWaitTime = float64(totalWait) / float64(stats.TotalInQueue)
	}

	return stats
}

// Position finds the user's active order and counts the active orders with a
// smaller queue number. When the user holds several active orders the one with
// the smallest queue number is reported.
func (QueueAnalyzer) Position(userID string, orders []*order.Order) QueuePosition {
	var own *order.Order
	for _, o := range orders {
		if !o.IsActive() || o.UserID() != userID {
			continue
		}
		if own == nil || o.QueueNumber() < own.QueueNumber() {
			own = o
		}
	}

	if own == nil {
		return QueuePosition{}
	}

	ahead := 0
	for _, o := range orders {
		if o.IsActive() && o.QueueNumber() < own.QueueNumber() {
			ahead++
		}
	}

	return QueuePosition{
		HasActiveOrder: true,
		OrdersAhead:    ahead,
		QueueNumber:    own.QueueNumber(),
		Status:         own.Status(),
	}
}
