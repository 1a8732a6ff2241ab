package commands

import (
	"errors"

	"canteen/internal/core/domain/model/dish"
	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/pkg/guard"
)

var ErrAddDishCommandIsNotConstructed = errors.New(
	"AddDishCommand must be created via NewAddDishCommand constructor",
)

// AddDishCommand registers a new dish in the catalog.
type AddDishCommand struct { //nolint:recvcheck //using for validation
	dish *dish.Dish

	guard guard.ConstructorGuard
}

func NewAddDishCommand(
	name, dishType string,
	price kernel.Money,
	estimatedMinutes int,
	available bool,
) (AddDishCommand, error) {
	d, err := dish.NewDish(name, dishType, price, estimatedMinutes, available)
	if err != nil {
		return AddDishCommand{}, err
	}

	return AddDishCommand{
		dish:  d,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (c AddDishCommand) Validate() error {
	return c.guard.Validate(ErrAddDishCommandIsNotConstructed)
}

func (c AddDishCommand) Dish() *dish.Dish {
	return c.dish
}
