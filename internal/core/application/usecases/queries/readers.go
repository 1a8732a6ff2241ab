// Package queries contains read-only operations over orders, carts and the
// menu. Query handlers depend on narrow reader interfaces so they can run on
// any store adapter without opening a unit of work.
package queries

import (
	"context"

	"canteen/internal/core/domain/model/cart"
	"canteen/internal/core/domain/model/dish"
	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/core/domain/model/order"
)

type (
	// ActiveOrdersReader lists orders that still occupy the queue, by queue
	// number ascending.
	ActiveOrdersReader interface {
		GetAllActive(ctx context.Context) ([]*order.Order, error)
	}

	// OrderReader is the read side of ports.OrderRepository.
	OrderReader interface {
		ActiveOrdersReader

		Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
		GetByPickupCode(ctx context.Context, code string) (*order.Order, error)
		GetAllByUserID(ctx context.Context, userID string) ([]*order.Order, error)
		GetAllByStatus(ctx context.Context, status order.Status) ([]*order.Order, error)
		GetAll(ctx context.Context) ([]*order.Order, error)
	}

	CartReader interface {
		Get(ctx context.Context, userID string) (cart.Cart, error)
	}

	DishLister interface {
		List(ctx context.Context) ([]*dish.Dish, error)
	}

	DishGetter interface {
		GetByName(ctx context.Context, name string) (*dish.Dish, error)
	}
)
