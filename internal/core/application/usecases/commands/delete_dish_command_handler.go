package commands

import (
	"context"

	"canteen/internal/core/ports"
)

type DeleteDishCommandHandler struct {
	catalog ports.Catalog
}

func NewDeleteDishCommandHandler(catalog ports.Catalog) DeleteDishCommandHandler {
	return DeleteDishCommandHandler{catalog: catalog}
}

func (h DeleteDishCommandHandler) Handle(ctx context.Context, cmd DeleteDishCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	return h.catalog.Delete(ctx, cmd.Name())
}
