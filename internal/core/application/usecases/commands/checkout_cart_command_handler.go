package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"canteen/internal/core/domain/model/order"
	"canteen/internal/core/ports"
	"canteen/internal/pkg/errs"
)

// CheckoutCartCommandHandler prices the cart through the catalog, places the
// order through CreateOrderCommandHandler and empties the cart.
type CheckoutCartCommandHandler struct {
	carts   ports.CartRepository
	catalog ports.Catalog
	create  CreateOrderCommandHandler
	logger  *slog.Logger
}

func NewCheckoutCartCommandHandler(
	carts ports.CartRepository,
	catalog ports.Catalog,
	create CreateOrderCommandHandler,
	logger *slog.Logger,
) CheckoutCartCommandHandler {
	return CheckoutCartCommandHandler{
		carts:   carts,
		catalog: catalog,
		create:  create,
		logger:  logger.With("component", "checkout"),
	}
}

// Handle fails with a validation error when the cart is empty or names a dish
// that is unknown or unavailable. Prices and preparation times are taken from
// the catalog at checkout time.
func (h CheckoutCartCommandHandler) Handle(ctx context.Context, cmd CheckoutCartCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	c, err := h.carts.Get(ctx, cmd.UserID())
	if err != nil {
		return nil, err
	}
	if c.IsEmpty() {
		return nil, errs.NewValueIsRequiredError("cart items")
	}

	items := make([]order.Item, 0, len(c.Lines()))
	for _, line := range c.Lines() {
		d, getErr := h.catalog.GetByName(ctx, line.DishName)
		if errors.Is(getErr, errs.ErrObjectNotFound) {
			return nil, errs.NewValueIsInvalidErrorWithCause("cart item", fmt.Errorf("dish %q is not on the menu", line.DishName))
		}
		if getErr != nil {
			return nil, getErr
		}

		item, itemErr := d.ToItem(line.Quantity, "")
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	createCmd, err := NewCreateOrderCommand(cmd.UserID(), cmd.Notes(), items)
	if err != nil {
		return nil, err
	}

	created, err := h.create.Handle(ctx, createCmd)
	if err != nil {
		return nil, err
	}

	if err = h.carts.Clear(ctx, cmd.UserID()); err != nil {
		h.logger.ErrorContext(ctx, "Failed to clear cart after checkout",
			"user_id", cmd.UserID(), "order_id", created.ID().String(), "error", err)
	}

	return created, nil
}
