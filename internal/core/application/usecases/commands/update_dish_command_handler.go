package commands

import (
	"context"

	"canteen/internal/core/domain/model/dish"
	"canteen/internal/core/ports"
)

type UpdateDishCommandHandler struct {
	catalog ports.Catalog
}

func NewUpdateDishCommandHandler(catalog ports.Catalog) UpdateDishCommandHandler {
	return UpdateDishCommandHandler{catalog: catalog}
}

// Handle fails with *errs.ObjectNotFoundError for an unknown dish. The new
// details are validated like a freshly added dish.
func (h UpdateDishCommandHandler) Handle(ctx context.Context, cmd UpdateDishCommand) (*dish.Dish, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	current, err := h.catalog.GetByName(ctx, cmd.name)
	if err != nil {
		return nil, err
	}

	available := current.IsAvailable()
	if cmd.available != nil {
		available = *cmd.available
	}

	updated, err := dish.NewDish(current.Name(), cmd.dishType, cmd.price, cmd.estimatedMinutes, available)
	if err != nil {
		return nil, err
	}

	if err = h.catalog.Update(ctx, updated); err != nil {
		return nil, err
	}
	return updated, nil
}
