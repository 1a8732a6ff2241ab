package commands

import (
	"errors"

	"canteen/internal/pkg/guard"
)

var ErrCheckoutCartCommandIsNotConstructed = errors.New(
	"CheckoutCartCommand must be created via NewCheckoutCartCommand constructor",
)

// CheckoutCartCommand turns a user's cart into an order.
type CheckoutCartCommand struct { //nolint:recvcheck //using for validation
	userID string
	notes  string

	guard guard.ConstructorGuard
}

func NewCheckoutCartCommand(userID, notes string) (CheckoutCartCommand, error) {
	if err := validateUserID(userID); err != nil {
		return CheckoutCartCommand{}, err
	}

	return CheckoutCartCommand{
		userID: userID,
		notes:  notes,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (c CheckoutCartCommand) Validate() error {
	return c.guard.Validate(ErrCheckoutCartCommandIsNotConstructed)
}

func (c CheckoutCartCommand) UserID() string {
	return c.userID
}

func (c CheckoutCartCommand) Notes() string {
	return c.notes
}
