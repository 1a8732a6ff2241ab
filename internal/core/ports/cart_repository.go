package ports

import (
	"context"

	"canteen/internal/core/domain/model/cart"
)

// CartRepository keeps one cart per user. A user without a cart has an empty
// one; Get never returns not found.
type CartRepository interface {
	Get(ctx context.Context, userID string) (cart.Cart, error)

	// SetItem sets the quantity of dishName, adding the line if needed.
	SetItem(ctx context.Context, userID, dishName string, quantity int) error

	RemoveItem(ctx context.Context, userID, dishName string) error

	Clear(ctx context.Context, userID string) error
}
