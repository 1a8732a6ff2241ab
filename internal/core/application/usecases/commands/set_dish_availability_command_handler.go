package commands

import (
	"context"

	"canteen/internal/core/domain/model/dish"
	"canteen/internal/core/ports"
)

type SetDishAvailabilityCommandHandler struct {
	catalog ports.Catalog
}

func NewSetDishAvailabilityCommandHandler(catalog ports.Catalog) SetDishAvailabilityCommandHandler {
	return SetDishAvailabilityCommandHandler{catalog: catalog}
}

// Handle fails with *errs.ObjectNotFoundError for an unknown dish. Setting
// the current value again is not an error.
func (h SetDishAvailabilityCommandHandler) Handle(
	ctx context.Context,
	cmd SetDishAvailabilityCommand,
) (*dish.Dish, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	d, err := h.catalog.GetByName(ctx, cmd.Name())
	if err != nil {
		return nil, err
	}

	d.SetAvailable(cmd.Available())
	if err = h.catalog.Update(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}
