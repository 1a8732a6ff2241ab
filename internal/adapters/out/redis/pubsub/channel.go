// Package pubsub fans order events out through Redis so that every service
// instance can push them to its own WebSocket clients.
package pubsub

import (
	"context"
	"fmt"

	"canteen/internal/adapters/out/notification"
	"canteen/internal/core/ports"

	"github.com/redis/go-redis/v9"
)

const channelPrefix = "canteen:"

func channelName(topic string) string {
	return channelPrefix + topic
}

// Channel implements ports.NotificationChannel with Redis PUBLISH.
type Channel struct {
	rdb *redis.Client
}

func NewChannel(rdb *redis.Client) *Channel {
	return &Channel{rdb: rdb}
}

func (c *Channel) PublishAdmin(ctx context.Context, event ports.Event) error {
	return c.publish(ctx, notification.AdminTopic, event)
}

func (c *Channel) PublishToUser(ctx context.Context, userID string, event ports.Event) error {
	return c.publish(ctx, notification.UserTopic(userID), event)
}

func (c *Channel) publish(ctx context.Context, topic string, event ports.Event) error {
	payload, err := notification.Encode(event)
	if err != nil {
		return err
	}

	if err = c.rdb.Publish(ctx, channelName(topic), payload).Err(); err != nil {
		return fmt.Errorf("pubsub/redis: publish %s: %w", topic, err)
	}
	return nil
}
