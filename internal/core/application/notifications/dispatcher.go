// Package notifications turns committed order changes into events for the
// kitchen staff and the customers.
package notifications

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"canteen/internal/core/application/usecases/queries"
	"canteen/internal/core/domain/model/order"
	"canteen/internal/core/ports"
	"canteen/internal/pkg/metrics"
)

// Dispatcher implements commands.OrderEventPublisher on top of a
// ports.NotificationChannel. Every change is followed by a fresh
// QUEUE_STATISTICS event so admin dashboards never need to poll.
//
// Delivery errors are logged and counted, never returned to the command that
// caused them.
type Dispatcher struct {
	channel ports.NotificationChannel
	stats   queries.GetQueueStatisticsQueryHandler
	metrics *metrics.Metrics
	logger  *slog.Logger
	now     func() time.Time
}

// NewDispatcher creates a dispatcher. m may be nil when metrics are not
// collected.
func NewDispatcher(
	channel ports.NotificationChannel,
	active queries.ActiveOrdersReader,
	m *metrics.Metrics,
	logger *slog.Logger,
) *Dispatcher {
	return &Dispatcher{
		channel: channel,
		stats:   queries.NewGetQueueStatisticsQueryHandler(active),
		metrics: m,
		logger:  logger.With("component", "notifications"),
		now:     func() time.Time { return time.Now().UTC() },
	}
}

func (d *Dispatcher) OrderCreated(ctx context.Context, o *order.Order) {
	if d.metrics != nil {
		d.metrics.OrderCreated()
	}

	d.publishAdmin(ctx, ports.Event{
		Type:    ports.EventNewOrder,
		Order:   o,
		Message: "New order created, pickup code: " + o.PickupCode(),
	})
	d.refreshStatistics(ctx)
}

func (d *Dispatcher) OrderStatusChanged(ctx context.Context, o *order.Order, from, to order.Status) {
	if d.metrics != nil {
		d.metrics.OrderTransitioned(from.String(), to.String())
	}

	msg := fmt.Sprintf("Order %s changed from %s to %s", o.PickupCode(), from.DisplayName(), to.DisplayName())
	d.publishAdmin(ctx, ports.Event{
		Type:      ports.EventStatusChanged,
		Order:     o,
		OldStatus: from,
		NewStatus: to,
		Message:   msg,
	})
	d.publishUser(ctx, o, "Your order status is now: "+to.DisplayName())
	d.refreshStatistics(ctx)
}

func (d *Dispatcher) OrderUpdated(ctx context.Context, o *order.Order) {
	d.publishUser(ctx, o, "Your order has been updated")
	d.refreshStatistics(ctx)
}

func (d *Dispatcher) OrderDeleted(ctx context.Context, _ *order.Order) {
	d.refreshStatistics(ctx)
}

// PublishStatistics recomputes the queue statistics, updates the queue gauges
// and sends QUEUE_STATISTICS to the admin channel.
func (d *Dispatcher) PublishStatistics(ctx context.Context) error {
	stats, err := d.stats.Handle(ctx, queries.NewGetQueueStatisticsQuery())
	if err != nil {
		return err
	}

	if d.metrics != nil {
		for _, s := range order.ActiveStatuses() {
			d.metrics.SetActiveOrders(s.String(), stats.CountByStatus(s))
		}
	}

	return d.channel.PublishAdmin(ctx, ports.Event{
		Type:       ports.EventQueueStatistics,
		Statistics: &stats,
		OccurredAt: d.now(),
	})
}

func (d *Dispatcher) refreshStatistics(ctx context.Context) {
	if err := d.PublishStatistics(ctx); err != nil {
		d.failed(ctx, ports.EventQueueStatistics, err)
	}
}

func (d *Dispatcher) publishAdmin(ctx context.Context, event ports.Event) {
	event.OccurredAt = d.now()
	if err := d.channel.PublishAdmin(ctx, event); err != nil {
		d.failed(ctx, event.Type, err, "order_id", event.Order.ID().String())
	}
}

func (d *Dispatcher) publishUser(ctx context.Context, o *order.Order, message string) {
	event := ports.Event{
		Type:       ports.EventOrderUpdate,
		Order:      o,
		Message:    message,
		OccurredAt: d.now(),
	}
	if err := d.channel.PublishToUser(ctx, o.UserID(), event); err != nil {
		d.failed(ctx, event.Type, err, "order_id", o.ID().String(), "user_id", o.UserID())
	}
}

func (d *Dispatcher) failed(ctx context.Context, eventType ports.EventType, err error, attrs ...any) {
	if d.metrics != nil {
		d.metrics.NotificationFailed(string(eventType))
	}
	attrs = append(attrs, "event", string(eventType), "error", err)
	d.logger.WarnContext(ctx, "Failed to publish event", attrs...)
}
