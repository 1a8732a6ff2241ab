// Package ports defines the contracts between the canteen core and its
// infrastructure: order persistence, the catalog, carts and the notification
// channel. Adapters under internal/adapters implement them.
package ports

import (
	"context"

	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Items are stored and loaded together with their order.
//
// Lookups that match nothing return an *errs.ObjectNotFoundError.
type OrderRepository interface {
	// Add persists a new order and reserves its pickup code. A pickup code or
	// active queue number that is already taken yields an *errs.ConflictError.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists status, notes, items and timestamps of an existing order.
	Update(ctx context.Context, aggregate *order.Order) error

	// Delete removes the order and its items. The pickup code stays reserved.
	Delete(ctx context.Context, id kernel.UUID) error

	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForUpdate is Get that also locks the order until the surrounding
	// transaction ends, so read-validate-write sequences on one order are
	// serialized.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)

	GetByPickupCode(ctx context.Context, code string) (*order.Order, error)

	// PickupCodeExists reports whether code was ever assigned, including to
	// orders that have since been deleted.
	PickupCodeExists(ctx context.Context, code string) (bool, error)

	// GetAllActive returns non-terminal orders by queue number ascending.
	GetAllActive(ctx context.Context) ([]*order.Order, error)

	// GetAllByUserID returns the user's orders, newest first.
	GetAllByUserID(ctx context.Context, userID string) ([]*order.Order, error)

	// GetAllByStatus returns orders in status, most recently updated first.
	GetAllByStatus(ctx context.Context, status order.Status) ([]*order.Order, error)

	// GetAll returns every order, newest first.
	GetAll(ctx context.Context) ([]*order.Order, error)

	// NextQueueNumber draws the next value of the store-owned queue sequence.
	// Values are strictly increasing and never handed out twice, even when the
	// drawing transaction rolls back.
	NextQueueNumber(ctx context.Context) (int, error)
}
