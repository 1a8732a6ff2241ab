// Package notification defines the wire format of order events and the topic
// names they are delivered on. Both the Redis fan-out and the in-process
// WebSocket hub use it, so subscribers see the same JSON whichever transport
// is configured.
package notification

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"canteen/internal/core/domain/model/order"
	"canteen/internal/core/domain/services"
	"canteen/internal/core/ports"
)

// AdminTopic carries every event meant for kitchen staff.
const AdminTopic = "admin"

const userTopicPrefix = "user:"

// UserTopic is the topic of one customer's order updates.
func UserTopic(userID string) string {
	return userTopicPrefix + userID
}

// UserIDFromTopic is the inverse of UserTopic.
func UserIDFromTopic(topic string) (string, bool) {
	userID, ok := strings.CutPrefix(topic, userTopicPrefix)
	return userID, ok && userID != ""
}

// OrderMessage is the order summary embedded in events. Items are left out;
// clients fetch the full order over HTTP when they need them.
type OrderMessage struct {
	ID                 string    `json:"id"`
	UserID             string    `json:"userId"`
	PickupCode         string    `json:"pickupCode"`
	OrderStatus        string    `json:"orderStatus"`
	QueueNumber        int       `json:"queueNumber"`
	Notes              string    `json:"notes,omitempty"`
	TotalPrice         float64   `json:"totalPrice"`
	TotalEstimatedTime int       `json:"totalEstimatedTime"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

type StatisticsMessage struct {
	PendingCount    int     `json:"pendingCount"`
	ConfirmedCount  int     `json:"confirmedCount"`
	PreparingCount  int     `json:"preparingCount"`
	ReadyCount      int     `json:"readyCount"`
	TotalInQueue    int     `json:"totalInQueue"`
	AverageWaitTime float64 `json:"averageWaitTime"`
}

// Message is one event as subscribers receive it. Status fields carry display
// names.
type Message struct {
	Type       string             `json:"type"`
	Order      *OrderMessage      `json:"order,omitempty"`
	OldStatus  string             `json:"oldStatus,omitempty"`
	NewStatus  string             `json:"newStatus,omitempty"`
	Statistics *StatisticsMessage `json:"statistics,omitempty"`
	Message    string             `json:"message,omitempty"`
	PickupCode string             `json:"pickupCode,omitempty"`
	Status     string             `json:"status,omitempty"`
	OccurredAt time.Time          `json:"occurredAt"`
}

func NewOrderMessage(o *order.Order) *OrderMessage {
	return &OrderMessage{
		ID:                 o.ID().String(),
		UserID:             o.UserID(),
		PickupCode:         o.PickupCode(),
		OrderStatus:        o.Status().String(),
		QueueNumber:        o.QueueNumber(),
		Notes:              o.Notes(),
		TotalPrice:         o.TotalPrice().Float64(),
		TotalEstimatedTime: o.TotalEstimatedTime(),
		CreatedAt:          o.CreatedAt(),
		UpdatedAt:          o.UpdatedAt(),
	}
}

func NewStatisticsMessage(s services.QueueStatistics) *StatisticsMessage {
	return &StatisticsMessage{
		PendingCount:    s.PendingCount,
		ConfirmedCount:  s.ConfirmedCount,
		PreparingCount:  s.PreparingCount,
		ReadyCount:      s.ReadyCount,
		TotalInQueue:    s.TotalInQueue,
		AverageWaitTime: s.AverageWaitTime,
	}
}

func NewMessage(event ports.Event) Message {
	msg := Message{
		Type:       string(event.Type),
		Message:    event.Message,
		OccurredAt: event.OccurredAt,
	}

	if event.Order != nil {
		msg.Order = NewOrderMessage(event.Order)
	}
	if event.Statistics != nil {
		msg.Statistics = NewStatisticsMessage(*event.Statistics)
	}

	switch event.Type {
	case ports.EventStatusChanged:
		msg.OldStatus = event.OldStatus.DisplayName()
		msg.NewStatus = event.NewStatus.DisplayName()
	case ports.EventOrderUpdate:
		if event.Order != nil {
			msg.PickupCode = event.Order.PickupCode()
			msg.Status = event.Order.Status().DisplayName()
		}
	case ports.EventNewOrder, ports.EventQueueStatistics:
	}

	return msg
}

// Encode renders event as JSON.
func Encode(event ports.Event) ([]byte, error) {
	payload, err := json.Marshal(NewMessage(event))
	if err != nil {
		return nil, fmt.Errorf("notification: encode %s: %w", event.Type, err)
	}
	return payload, nil
}
