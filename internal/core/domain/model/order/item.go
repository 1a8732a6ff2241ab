package order

import (
	"errors"
	"fmt"
	"strings"

	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/pkg/errs"
	"canteen/internal/pkg/guard"
)

var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is one order line. It is a value object owned by exactly one Order.
type Item struct {
	dishName         string
	dishType         string
	unitPrice        kernel.Money
	quantity         int
	estimatedMinutes int
	notes            string

	guard guard.ConstructorGuard
}

// NewItem validates and creates an order line. A zero unit price counts as
// missing.
//
// Example:
//
//	price, _ := kernel.MoneyFromFloat(5.00)
//	item, err := order.NewItem("Dumplings", "Main Course", price, 2, 10, "no chili")
func NewItem(
	dishName, dishType string,
	unitPrice kernel.Money,
	quantity, estimatedMinutes int,
	notes string,
) (Item, error) {
	item := Item{
		notes: notes,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setDishName(dishName),
		item.setDishType(dishType),
		item.setUnitPrice(unitPrice),
		item.setQuantity(quantity),
		item.setEstimatedMinutes(estimatedMinutes),
	); err != nil {
		return Item{}, err
	}

	return item, nil
}

func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

func (i Item) DishName() string {
	return i.dishName
}

func (i Item) DishType() string {
	return i.dishType
}

func (i Item) UnitPrice() kernel.Money {
	return i.unitPrice
}

func (i Item) Quantity() int {
	return i.quantity
}

// Subtotal is UnitPrice × Quantity.
func (i Item) Subtotal() kernel.Money {
	return i.unitPrice.Multiply(i.quantity)
}

// EstimatedMinutes is the preparation time of this line.
func (i Item) EstimatedMinutes() int {
	return i.estimatedMinutes
}

func (i Item) Notes() string {
	return i.notes
}

func (i *Item) setDishName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("dish name")
	}
	i.dishName = name
	return nil
}

func (i *Item) setDishType(dishType string) error {
	if strings.TrimSpace(dishType) == "" {
		return errs.NewValueIsRequiredError("dish type")
	}
	i.dishType = dishType
	return nil
}

func (i *Item) setUnitPrice(price kernel.Money) error {
	if price.IsZero() {
		return errs.NewValueIsRequiredError("unit price")
	}
	i.unitPrice = price
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid", fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}

func (i *Item) setEstimatedMinutes(minutes int) error {
	if minutes < 0 {
		return errs.NewValueIsInvalidErrorWithCause("estimated time is invalid", fmt.Errorf("%d is negative", minutes))
	}
	i.estimatedMinutes = minutes
	return nil
}
