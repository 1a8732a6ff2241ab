package commands

import (
	"errors"
	"strings"

	"canteen/internal/pkg/errs"
	"canteen/internal/pkg/guard"
)

var ErrSetDishAvailabilityCommandIsNotConstructed = errors.New(
	"SetDishAvailabilityCommand must be created via NewSetDishAvailabilityCommand constructor",
)

// SetDishAvailabilityCommand takes a dish off the menu or puts it back.
type SetDishAvailabilityCommand struct { //nolint:recvcheck //using for validation
	name      string
	available bool

	guard guard.ConstructorGuard
}

func NewSetDishAvailabilityCommand(name string, available bool) (SetDishAvailabilityCommand, error) {
	if strings.TrimSpace(name) == "" {
		return SetDishAvailabilityCommand{}, errs.NewValueIsRequiredError("dish name")
	}

	return SetDishAvailabilityCommand{
		name:      strings.TrimSpace(name),
		available: available,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c SetDishAvailabilityCommand) Validate() error {
	return c.guard.Validate(ErrSetDishAvailabilityCommandIsNotConstructed)
}

func (c SetDishAvailabilityCommand) Name() string {
	return c.name
}

func (c SetDishAvailabilityCommand) Available() bool {
	return c.available
}
