package commands

import (
	"errors"
	"strings"

	"canteen/internal/core/domain/model/cart"
	"canteen/internal/pkg/errs"
	"canteen/internal/pkg/guard"
)

var ErrChangeCartCommandIsNotConstructed = errors.New(
	"ChangeCartCommand must be created via one of the NewChangeCartCommand constructors",
)

// CartOperation selects what ChangeCartCommand does to the cart.
type CartOperation int

const (
	CartSetItem CartOperation = iota + 1
	CartRemoveItem
	CartClear
)

// ChangeCartCommand mutates one user's cart.
//
// Example:
//
//	cmd, err := NewSetCartItemCommand("device-42", "Dumplings", 2)
//	c, err := handler.Handle(ctx, cmd)
type ChangeCartCommand struct { //nolint:recvcheck //using for validation
	operation CartOperation
	userID    string
	dishName  string
	quantity  int

	guard guard.ConstructorGuard
}

// NewSetCartItemCommand sets the quantity of a dish in the cart.
func NewSetCartItemCommand(userID, dishName string, quantity int) (ChangeCartCommand, error) {
	if err := errors.Join(
		validateUserID(userID),
		cart.ValidateLine(dishName, quantity),
	); err != nil {
		return ChangeCartCommand{}, err
	}

	return ChangeCartCommand{
		operation: CartSetItem,
		userID:    userID,
		dishName:  strings.TrimSpace(dishName),
		quantity:  quantity,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// NewRemoveCartItemCommand drops a dish from the cart.
func NewRemoveCartItemCommand(userID, dishName string) (ChangeCartCommand, error) {
	if err := errors.Join(
		validateUserID(userID),
		cart.ValidateLine(dishName, 1),
	); err != nil {
		return ChangeCartCommand{}, err
	}

	return ChangeCartCommand{
		operation: CartRemoveItem,
		userID:    userID,
		dishName:  strings.TrimSpace(dishName),
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// NewClearCartCommand empties the cart.
func NewClearCartCommand(userID string) (ChangeCartCommand, error) {
	if err := validateUserID(userID); err != nil {
		return ChangeCartCommand{}, err
	}

	return ChangeCartCommand{
		operation: CartClear,
		userID:    userID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c ChangeCartCommand) Validate() error {
	return c.guard.Validate(ErrChangeCartCommandIsNotConstructed)
}

func (c ChangeCartCommand) Operation() CartOperation {
	return c.operation
}

func (c ChangeCartCommand) UserID() string {
	return c.userID
}

func (c ChangeCartCommand) DishName() string {
	return c.dishName
}

func (c ChangeCartCommand) Quantity() int {
	return c.quantity
}

func validateUserID(userID string) error {
	if strings.TrimSpace(userID) == "" {
		return errs.NewValueIsRequiredError("user id")
	}
	return nil
}
