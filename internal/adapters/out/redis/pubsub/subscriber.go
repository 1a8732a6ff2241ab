package pubsub

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/redis/go-redis/v9"
)

// Sink receives events read from Redis. The WebSocket hub is the only one.
type Sink interface {
	Deliver(ctx context.Context, topic string, payload []byte) error
}

// Subscriber forwards every canteen event published by any instance to sink.
type Subscriber struct {
	rdb    *redis.Client
	sink   Sink
	logger *slog.Logger
}

func NewSubscriber(rdb *redis.Client, sink Sink, logger *slog.Logger) *Subscriber {
	return &Subscriber{
		rdb:    rdb,
		sink:   sink,
		logger: logger.With("component", "redis_subscriber"),
	}
}

// Run blocks until ctx is done or the subscription fails to start.
// ready, when not nil, is closed once Redis has confirmed the subscription.
func (s *Subscriber) Run(ctx context.Context, ready chan<- struct{}) error {
	sub := s.rdb.PSubscribe(ctx, channelPrefix+"*")
	defer func() {
		_ = sub.Close()
	}()

	if _, err := sub.Receive(ctx); err != nil {
		return fmt.Errorf("pubsub/redis: subscribe: %w", err)
	}
	if ready != nil {
		close(ready)
	}
	s.logger.InfoContext(ctx, "Listening for order events")

	messages := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-messages:
			if !ok {
				return nil
			}

			topic := strings.TrimPrefix(msg.Channel, channelPrefix)
			if err := s.sink.Deliver(ctx, topic, []byte(msg.Payload)); err != nil {
				s.logger.WarnContext(ctx, "Failed to deliver event", "topic", topic, "error", err)
			}
		}
	}
}
