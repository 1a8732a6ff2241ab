package commands

import (
	"context"
	"fmt"

	"canteen/internal/core/domain/model/cart"
	"canteen/internal/core/ports"
)

// ChangeCartCommandHandler applies cart mutations. Dishes are checked against
// the catalog before they are added, so a cart never names an unknown dish at
// the time it was filled.
type ChangeCartCommandHandler struct {
	carts   ports.CartRepository
	catalog ports.Catalog
}

func NewChangeCartCommandHandler(carts ports.CartRepository, catalog ports.Catalog) ChangeCartCommandHandler {
	return ChangeCartCommandHandler{
		carts:   carts,
		catalog: catalog,
	}
}

// Handle returns the cart as it is after the change.
func (h ChangeCartCommandHandler) Handle(ctx context.Context, cmd ChangeCartCommand) (cart.Cart, error) {
	if err := cmd.Validate(); err != nil {
		return cart.Cart{}, err
	}

	var err error
	switch cmd.Operation() {
	case CartSetItem:
		if _, err = h.catalog.GetByName(ctx, cmd.DishName()); err != nil {
			return cart.Cart{}, err
		}
		err = h.carts.SetItem(ctx, cmd.UserID(), cmd.DishName(), cmd.Quantity())
	case CartRemoveItem:
		err = h.carts.RemoveItem(ctx, cmd.UserID(), cmd.DishName())
	case CartClear:
		err = h.carts.Clear(ctx, cmd.UserID())
	default:
		err = fmt.Errorf("unsupported cart operation %d", cmd.Operation())
	}
	if err != nil {
		return cart.Cart{}, err
	}

	return h.carts.Get(ctx, cmd.UserID())
}
