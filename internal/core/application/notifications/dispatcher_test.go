package notifications_test

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"testing"
	"time"

	"canteen/internal/adapters/out/memory"
	"canteen/internal/core/application/notifications"
	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/core/domain/model/order"
	"canteen/internal/core/ports"
	"canteen/internal/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type published struct {
	userID string
	event  ports.Event
}

type recordingChannel struct {
	mu   sync.Mutex
	sent []published
	err  error
}

func (c *recordingChannel) PublishAdmin(_ context.Context, event ports.Event) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sent = append(c.sent, published{event: event})
	return c.err
}

func (c *recordingChannel) PublishToUser(_ context.Context, userID string, event ports.Event) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sent = append(c.sent, published{userID: userID, event: event})
	return c.err
}

func (c *recordingChannel) types() []ports.EventType {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]ports.EventType, 0, len(c.sent))
	for _, p := range c.sent {
		out = append(out, p.event.Type)
	}
	return out
}

func storedOrder(t *testing.T, repo *memory.OrderRepository, userID string, n int) *order.Order {
	t.Helper()
	price, err := kernel.NewMoney(500)
	require.NoError(t, err)
	item, err := order.NewItem("Dumplings", "Main Course", price, 1, 10, "")
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), userID, fmt.Sprintf("%06d", 100000+n), n, "", []order.Item{item}, time.Now())
	require.NoError(t, err)
	require.NoError(t, repo.Add(t.Context(), o))
	return o
}

func newDispatcher(channel ports.NotificationChannel, repo *memory.OrderRepository, m *metrics.Metrics) *notifications.Dispatcher {
	return notifications.NewDispatcher(channel, repo, m, slog.New(slog.DiscardHandler))
}

func TestDispatcher_OrderCreated(t *testing.T) {
	repo := memory.NewStore().OrderRepository()
	o := storedOrder(t, repo, "device-1", 1)
	channel := &recordingChannel{}
	m := metrics.New()

	newDispatcher(channel, repo, m).OrderCreated(t.Context(), o)

	assert.Equal(t, []ports.EventType{ports.EventNewOrder, ports.EventQueueStatistics}, channel.types())
	assert.Same(t, o, channel.sent[0].event.Order)
	assert.Empty(t, channel.sent[0].userID)
	assert.Equal(t, "New order created, pickup code: "+o.PickupCode(), channel.sent[0].event.Message)
	require.NotNil(t, channel.sent[1].event.Statistics)
	assert.Equal(t, 1, channel.sent[1].event.Statistics.PendingCount)
	assert.InDelta(t, 1, testutil.ToFloat64(m.OrdersCreated), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.ActiveOrders.WithLabelValues("PENDING")), 0)
}

func TestDispatcher_OrderStatusChanged(t *testing.T) {
	repo := memory.NewStore().OrderRepository()
	o := storedOrder(t, repo, "device-1", 1)
	require.NoError(t, o.ChangeStatus(order.Confirmed, "", time.Now()))
	require.NoError(t, repo.Update(t.Context(), o))
	channel := &recordingChannel{}
	m := metrics.New()

	newDispatcher(channel, repo, m).OrderStatusChanged(t.Context(), o, order.Pending, order.Confirmed)

	require.Equal(t,
		[]ports.EventType{ports.EventStatusChanged, ports.EventOrderUpdate, ports.EventQueueStatistics},
		channel.types())

	changed := channel.sent[0].event
	assert.Equal(t, order.Pending, changed.OldStatus)
	assert.Equal(t, order.Confirmed, changed.NewStatus)

	update := channel.sent[1]
	assert.Equal(t, "device-1", update.userID)
	assert.Equal(t, "Your order status is now: Confirmed", update.event.Message)

	assert.Equal(t, 1, channel.sent[2].event.Statistics.ConfirmedCount)
	assert.InDelta(t, 1, testutil.ToFloat64(m.OrderTransitions.WithLabelValues("PENDING", "CONFIRMED")), 0)
	assert.InDelta(t, 0, testutil.ToFloat64(m.ActiveOrders.WithLabelValues("PENDING")), 0)
}

func TestDispatcher_OrderUpdatedAndDeleted(t *testing.T) {
	repo := memory.NewStore().OrderRepository()
	o := storedOrder(t, repo, "device-1", 1)
	channel := &recordingChannel{}
	d := newDispatcher(channel, repo, nil)

	d.OrderUpdated(t.Context(), o)
	d.OrderDeleted(t.Context(), o)

	assert.Equal(t,
		[]ports.EventType{ports.EventOrderUpdate, ports.EventQueueStatistics, ports.EventQueueStatistics},
		channel.types())
	assert.Equal(t, "device-1", channel.sent[0].userID)
}

func TestDispatcher_DeliveryFailuresAreSwallowed(t *testing.T) {
	repo := memory.NewStore().OrderRepository()
	o := storedOrder(t, repo, "device-1", 1)
	channel := &recordingChannel{err: errors.New("redis down")}
	m := metrics.New()

	assert.NotPanics(t, func() {
		newDispatcher(channel, repo, m).OrderStatusChanged(t.Context(), o, order.Pending, order.Confirmed)
	})

	assert.Len(t, channel.sent, 3)
	assert.InDelta(t, 1, testutil.ToFloat64(m.NotifyFailures.WithLabelValues("ORDER_UPDATE")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.NotifyFailures.WithLabelValues("QUEUE_STATISTICS")), 0)
}

func TestDispatcher_PublishStatistics_EmptyQueue(t *testing.T) {
	channel := &recordingChannel{}

	err := newDispatcher(channel, memory.NewStore().OrderRepository(), nil).PublishStatistics(t.Context())

	require.NoError(t, err)
	require.Len(t, channel.sent, 1)
	stats := channel.sent[0].event.Statistics
	assert.Zero(t, stats.TotalInQueue)
	assert.Zero(t, stats.AverageWaitTime)
}
