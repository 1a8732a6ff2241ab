package commands

import (
	"errors"
	"strings"

	"canteen/internal/pkg/errs"
	"canteen/internal/pkg/guard"
)

var ErrDeleteDishCommandIsNotConstructed = errors.New(
	"DeleteDishCommand must be created via NewDeleteDishCommand constructor",
)

// DeleteDishCommand removes a dish from the catalog. Orders already placed
// keep their own copy of the dish data.
type DeleteDishCommand struct { //nolint:recvcheck //using for validation
	name string

	guard guard.ConstructorGuard
}

func NewDeleteDishCommand(name string) (DeleteDishCommand, error) {
	if strings.TrimSpace(name) == "" {
		return DeleteDishCommand{}, errs.NewValueIsRequiredError("dish name")
	}
	return DeleteDishCommand{name: strings.TrimSpace(name), guard: guard.NewConstructorGuard()}, nil
}

func (c DeleteDishCommand) Validate() error {
	return c.guard.Validate(ErrDeleteDishCommandIsNotConstructed)
}

func (c DeleteDishCommand) Name() string {
	return c.name
}
