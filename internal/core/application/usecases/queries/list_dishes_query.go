package queries

import (
	"context"
	"errors"
	"strings"

	"canteen/internal/core/domain/model/dish"
	"canteen/internal/pkg/errs"
	"canteen/internal/pkg/guard"
)

var ErrListDishesQueryIsNotConstructed = errors.New(
	"ListDishesQuery must be created via NewListDishesQuery constructor",
)

// ListDishesQuery retrieves the menu. With availableOnly set, dishes the
// kitchen cannot currently make are left out. A dish type, when set, is
// matched case-insensitively.
type ListDishesQuery struct {
	availableOnly bool
	dishType      string

	guard guard.ConstructorGuard
}

func NewListDishesQuery(availableOnly bool) ListDishesQuery {
	return ListDishesQuery{availableOnly: availableOnly, guard: guard.NewConstructorGuard()}
}

func NewListDishesByTypeQuery(dishType string, availableOnly bool) (ListDishesQuery, error) {
	if strings.TrimSpace(dishType) == "" {
		return ListDishesQuery{}, errs.NewValueIsRequiredError("dish type")
	}
	return ListDishesQuery{
		availableOnly: availableOnly,
		dishType:      strings.TrimSpace(dishType),
		guard:         guard.NewConstructorGuard(),
	}, nil
}

func (q ListDishesQuery) Validate() error {
	return q.guard.Validate(ErrListDishesQueryIsNotConstructed)
}

type ListDishesQueryHandler struct {
	dishes DishLister
}

func NewListDishesQueryHandler(dishes DishLister) ListDishesQueryHandler {
	return ListDishesQueryHandler{dishes: dishes}
}

// Handle returns dishes sorted by name.
func (h ListDishesQueryHandler) Handle(ctx context.Context, query ListDishesQuery) ([]*dish.Dish, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	all, err := h.dishes.List(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*dish.Dish, 0, len(all))
	for _, d := range all {
		if query.availableOnly && !d.IsAvailable() {
			continue
		}
		if query.dishType != "" && !strings.EqualFold(d.DishType(), query.dishType) {
			continue
		}
		result = append(result, d)
	}
	return result, nil
}

var ErrGetDishQueryIsNotConstructed = errors.New(
	"GetDishQuery must be created via NewGetDishQuery constructor",
)

type GetDishQuery struct {
	name string

	guard guard.ConstructorGuard
}

func NewGetDishQuery(name string) (GetDishQuery, error) {
	if strings.TrimSpace(name) == "" {
		return GetDishQuery{}, errs.NewValueIsRequiredError("dish name")
	}
	return GetDishQuery{name: strings.TrimSpace(name), guard: guard.NewConstructorGuard()}, nil
}

func (q GetDishQuery) Validate() error {
	return q.guard.Validate(ErrGetDishQueryIsNotConstructed)
}

type GetDishQueryHandler struct {
	dishes DishGetter
}

func NewGetDishQueryHandler(dishes DishGetter) GetDishQueryHandler {
	return GetDishQueryHandler{dishes: dishes}
}

// Handle fails with *errs.ObjectNotFoundError for an unknown dish.
func (h GetDishQueryHandler) Handle(ctx context.Context, query GetDishQuery) (*dish.Dish, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return h.dishes.GetByName(ctx, query.name)
}
