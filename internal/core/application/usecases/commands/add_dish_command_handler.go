package commands

import (
	"context"

	"canteen/internal/core/domain/model/dish"
	"canteen/internal/core/ports"
)

type AddDishCommandHandler struct {
	catalog ports.Catalog
}

func NewAddDishCommandHandler(catalog ports.Catalog) AddDishCommandHandler {
	return AddDishCommandHandler{catalog: catalog}
}

// Handle stores the dish. A duplicate name is reported as *errs.ConflictError.
func (h AddDishCommandHandler) Handle(ctx context.Context, cmd AddDishCommand) (*dish.Dish, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if err := h.catalog.Add(ctx, cmd.Dish()); err != nil {
		return nil, err
	}

	return cmd.Dish(), nil
}
