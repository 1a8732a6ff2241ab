package ports

import (
	"context"
	"time"

	"canteen/internal/core/domain/model/order"
	"canteen/internal/core/domain/services"
)

// EventType names a notification. The values are part of the wire format.
type EventType string

const (
	EventNewOrder        EventType = "NEW_ORDER"
	EventStatusChanged   EventType = "STATUS_CHANGED"
	EventQueueStatistics EventType = "QUEUE_STATISTICS"
	EventOrderUpdate     EventType = "ORDER_UPDATE"
)

// Event is an abstract notification. Which fields are set depends on Type:
//   - NEW_ORDER: Order
//   - STATUS_CHANGED: Order, OldStatus, NewStatus
//   - QUEUE_STATISTICS: Statistics
//   - ORDER_UPDATE: Order, Message
type Event struct {
	Type       EventType
	Order      *order.Order
	OldStatus  order.Status
	NewStatus  order.Status
	Statistics *services.QueueStatistics
	Message    string
	OccurredAt time.Time
}

// NotificationChannel delivers events to staff and customers. Delivery is best
// effort: callers log returned errors and carry on.
type NotificationChannel interface {
	PublishAdmin(ctx context.Context, event Event) error
	PublishToUser(ctx context.Context, userID string, event Event) error
}
