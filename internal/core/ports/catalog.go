package ports

import (
	"context"

	"canteen/internal/core/domain/model/dish"
)

// Catalog stores the dishes customers can order, keyed by name.
type Catalog interface {
	// Add stores a new dish. A name that already exists yields an
	// *errs.ConflictError.
	Add(ctx context.Context, d *dish.Dish) error

	// Update replaces the stored dish with the same name.
	Update(ctx context.Context, d *dish.Dish) error

	// Delete removes a dish. Carts that still name it fail at checkout.
	Delete(ctx context.Context, name string) error

	GetByName(ctx context.Context, name string) (*dish.Dish, error)

	// List returns all dishes ordered by name.
	List(ctx context.Context) ([]*dish.Dish, error)
}
