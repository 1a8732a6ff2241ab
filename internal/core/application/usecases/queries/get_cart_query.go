package queries

import (
	"context"
	"errors"
	"strings"

	"canteen/internal/core/domain/model/cart"
	"canteen/internal/pkg/errs"
	"canteen/internal/pkg/guard"
)

var ErrGetCartQueryIsNotConstructed = errors.New(
	"GetCartQuery must be created via NewGetCartQuery constructor",
)

type GetCartQuery struct {
	userID string

	guard guard.ConstructorGuard
}

func NewGetCartQuery(userID string) (GetCartQuery, error) {
	if strings.TrimSpace(userID) == "" {
		return GetCartQuery{}, errs.NewValueIsRequiredError("user id")
	}
	return GetCartQuery{userID: userID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetCartQuery) Validate() error {
	return q.guard.Validate(ErrGetCartQueryIsNotConstructed)
}

func (q GetCartQuery) UserID() string {
	return q.userID
}

type GetCartQueryHandler struct {
	carts CartReader
}

func NewGetCartQueryHandler(carts CartReader) GetCartQueryHandler {
	return GetCartQueryHandler{carts: carts}
}

// Handle returns an empty cart for a user who never added anything.
func (h GetCartQueryHandler) Handle(ctx context.Context, query GetCartQuery) (cart.Cart, error) {
	if err := query.Validate(); err != nil {
		return cart.Cart{}, err
	}
	return h.carts.Get(ctx, query.UserID())
}
