// Package cartrepo stores shopping carts as Redis hashes, one hash per user
// mapping dish name to quantity. Idle carts expire.
package cartrepo

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"canteen/internal/core/domain/model/cart"

	"github.com/redis/go-redis/v9"
)

const (
	keyPrefix = "canteen:cart:"

	// DefaultTTL is how long an untouched cart survives.
	DefaultTTL = 24 * time.Hour
)

// RedisCartRepository implements ports.CartRepository.
type RedisCartRepository struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisCartRepository(rdb *redis.Client, ttl time.Duration) *RedisCartRepository {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &RedisCartRepository{rdb: rdb, ttl: ttl}
}

func key(userID string) string {
	return keyPrefix + userID
}

func (r *RedisCartRepository) Get(ctx context.Context, userID string) (cart.Cart, error) {
	fields, err := r.rdb.HGetAll(ctx, key(userID)).Result()
	if err != nil {
		return cart.Cart{}, fmt.Errorf("cart/redis: get: %w", err)
	}

	lines := make([]cart.Line, 0, len(fields))
	for dishName, raw := range fields {
		qty, convErr := strconv.Atoi(raw)
		if convErr != nil {
			return cart.Cart{}, fmt.Errorf("cart/redis: quantity of %q: %w", dishName, convErr)
		}
		lines = append(lines, cart.Line{DishName: dishName, Quantity: qty})
	}

	return cart.NewCart(userID, lines)
}

// SetItem writes the line and refreshes the expiry in one round trip.
func (r *RedisCartRepository) SetItem(ctx context.Context, userID, dishName string, quantity int) error {
	if err := cart.ValidateLine(dishName, quantity); err != nil {
		return err
	}

	pipe := r.rdb.TxPipeline()
	pipe.HSet(ctx, key(userID), dishName, quantity)
	pipe.Expire(ctx, key(userID), r.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("cart/redis: set item: %w", err)
	}
	return nil
}

func (r *RedisCartRepository) RemoveItem(ctx context.Context, userID, dishName string) error {
	if err := r.rdb.HDel(ctx, key(userID), dishName).Err(); err != nil {
		return fmt.Errorf("cart/redis: remove item: %w", err)
	}
	return nil
}

func (r *RedisCartRepository) Clear(ctx context.Context, userID string) error {
	if err := r.rdb.Del(ctx, key(userID)).Err(); err != nil {
		return fmt.Errorf("cart/redis: clear: %w", err)
	}
	return nil
}
