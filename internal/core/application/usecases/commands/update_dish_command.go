package commands

import (
	"errors"
	"strings"

	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/pkg/errs"
	"canteen/internal/pkg/guard"
)

var ErrUpdateDishCommandIsNotConstructed = errors.New(
	"UpdateDishCommand must be created via NewUpdateDishCommand constructor",
)

// UpdateDishCommand replaces the details of an existing dish. A nil
// available keeps the current availability.
type UpdateDishCommand struct { //nolint:recvcheck //using for validation
	name             string
	dishType         string
	price            kernel.Money
	estimatedMinutes int
	available        *bool

	guard guard.ConstructorGuard
}

func NewUpdateDishCommand(
	name, dishType string,
	price kernel.Money,
	estimatedMinutes int,
	available *bool,
) (UpdateDishCommand, error) {
	if strings.TrimSpace(name) == "" {
		return UpdateDishCommand{}, errs.NewValueIsRequiredError("dish name")
	}

	return UpdateDishCommand{
		name:             strings.TrimSpace(name),
		dishType:         dishType,
		price:            price,
		estimatedMinutes: estimatedMinutes,
		available:        available,
		guard:            guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateDishCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDishCommandIsNotConstructed)
}

func (c UpdateDishCommand) Name() string {
	return c.name
}
