// Package ws delivers order events to browsers over WebSocket.
//
// Clients subscribe to exactly one topic when they connect:
//
//	GET /ws?topic=admin         kitchen staff, every admin event
//	GET /ws?userId=device-42    one customer's ORDER_UPDATE events
//
// The Hub implements ports.NotificationChannel for single-instance
// deployments. With Redis configured, events reach the Hub through
// Deliver instead, so every instance fans out every event.
package ws

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"canteen/internal/adapters/out/notification"
	"canteen/internal/core/ports"
	"canteen/internal/pkg/errs"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512 * 1024
	sendBuffer     = 256
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(*http.Request) bool { return true },
}

type delivery struct {
	topic   string
	payload []byte
}

// Hub keeps the connected clients grouped by topic. All map writes happen on
// the Run goroutine.
type Hub struct {
	mu      sync.RWMutex
	clients map[string]map[*client]struct{}

	register   chan *client
	unregister chan *client
	deliveries chan delivery
	done       chan struct{}

	logger *slog.Logger
}

// ErrHubStopped is returned by Deliver once Run has returned.
var ErrHubStopped = errors.New("ws: hub stopped")

func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		clients:    make(map[string]map[*client]struct{}),
		register:   make(chan *client),
		unregister: make(chan *client),
		deliveries: make(chan delivery, sendBuffer),
		done:       make(chan struct{}),
		logger:     logger.With("component", "ws_hub"),
	}
}

// Run processes registrations and deliveries until ctx is done, then closes
// every connection.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)

	for {
		select {
		case c := <-h.register:
			h.mu.Lock()
			if h.clients[c.topic] == nil {
				h.clients[c.topic] = make(map[*client]struct{})
			}
			h.clients[c.topic][c] = struct{}{}
			h.mu.Unlock()

		case c := <-h.unregister:
			h.remove(c)

		case d := <-h.deliveries:
			h.mu.RLock()
			var slow []*client
			for c := range h.clients[d.topic] {
				select {
				case c.send <- d.payload:
				default:
					slow = append(slow, c)
				}
			}
			h.mu.RUnlock()

			for _, c := range slow {
				h.logger.Warn("Dropping slow WebSocket client", "topic", c.topic)
				h.remove(c)
			}

		case <-ctx.Done():
			h.mu.Lock()
			for topic, set := range h.clients {
				for c := range set {
					close(c.send)
				}
				delete(h.clients, topic)
			}
			h.mu.Unlock()
			return
		}
	}
}

func (h *Hub) remove(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	set, ok := h.clients[c.topic]
	if !ok {
		return
	}
	if _, ok = set[c]; !ok {
		return
	}
	delete(set, c)
	close(c.send)
	if len(set) == 0 {
		delete(h.clients, c.topic)
	}
}

// Subscribers returns the number of clients connected to topic.
func (h *Hub) Subscribers(topic string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[topic])
}

// Deliver queues an encoded event for every client of topic.
func (h *Hub) Deliver(ctx context.Context, topic string, payload []byte) error {
	select {
	case h.deliveries <- delivery{topic: topic, payload: payload}:
		return nil
	case <-h.done:
		return ErrHubStopped
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (h *Hub) PublishAdmin(ctx context.Context, event ports.Event) error {
	payload, err := notification.Encode(event)
	if err != nil {
		return err
	}
	return h.Deliver(ctx, notification.AdminTopic, payload)
}

func (h *Hub) PublishToUser(ctx context.Context, userID string, event ports.Event) error {
	payload, err := notification.Encode(event)
	if err != nil {
		return err
	}
	return h.Deliver(ctx, notification.UserTopic(userID), payload)
}

// Handler upgrades the request and subscribes the connection to the topic
// named by the query string.
func (h *Hub) Handler() echo.HandlerFunc {
	return func(c echo.Context) error {
		topic, err := topicFromQuery(c.QueryParam("topic"), c.QueryParam("userId"))
		if err != nil {
			return err
		}

		conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
		if err != nil {
			// The upgrader has already answered the request.
			h.logger.Debug("WebSocket upgrade failed", "error", err)
			return nil
		}

		cl := &client{
			hub:   h,
			conn:  conn,
			topic: topic,
			send:  make(chan []byte, sendBuffer),
		}

		select {
		case h.register <- cl:
		case <-h.done:
			_ = conn.Close()
			return nil
		case <-c.Request().Context().Done():
			_ = conn.Close()
			return nil
		}

		go cl.writePump()
		go cl.readPump()
		return nil
	}
}

func topicFromQuery(topic, userID string) (string, error) {
	switch {
	case topic == notification.AdminTopic:
		return notification.AdminTopic, nil
	case userID != "":
		return notification.UserTopic(userID), nil
	}

	if id, ok := notification.UserIDFromTopic(topic); ok {
		return notification.UserTopic(id), nil
	}
	return "", errs.NewValueIsRequiredError("topic=admin or userId")
}
