// Package dish provides the catalog entry a customer orders from.
package dish

import (
	"errors"
	"fmt"
	"strings"

	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/core/domain/model/order"
	"canteen/internal/pkg/errs"
)

var ErrDishIsNotConstructed = errors.New("Dish must be created via NewDish constructor")

// Dish is a menu entry identified by its name. It carries the price, type and
// preparation time that are copied onto an order line at checkout.
type Dish struct {
	name             string
	dishType         string
	price            kernel.Money
	estimatedMinutes int
	available        bool

	isConstructed bool
}

// NewDish validates and creates a catalog entry.
//
// Example:
//
//	price, _ := kernel.MoneyFromFloat(7.50)
//	d, err := dish.NewDish("Beef Noodles", "Main Course", price, 12, true)
func NewDish(name, dishType string, price kernel.Money, estimatedMinutes int, available bool) (*Dish, error) {
	d := &Dish{
		available:     available,
		isConstructed: true,
	}

	if err := errors.Join(
		d.setName(name),
		d.setDishType(dishType),
		d.setPrice(price),
		d.setEstimatedMinutes(estimatedMinutes),
	); err != nil {
		return nil, err
	}

	return d, nil
}

func (d *Dish) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDishIsNotConstructed
	}
	return nil
}

func (d *Dish) Name() string {
	return d.name
}

func (d *Dish) DishType() string {
	return d.dishType
}

func (d *Dish) Price() kernel.Money {
	return d.price
}

func (d *Dish) EstimatedMinutes() int {
	return d.estimatedMinutes
}

func (d *Dish) IsAvailable() bool {
	return d.available
}

// SetAvailable takes the dish off the menu or puts it back.
func (d *Dish) SetAvailable(available bool) {
	d.available = available
}

// ToItem builds an order line for quantity portions of this dish. Unavailable
// dishes cannot be ordered.
func (d *Dish) ToItem(quantity int, notes string) (order.Item, error) {
	if !d.available {
		return order.Item{}, errs.NewValueIsInvalidErrorWithCause("dish", fmt.Errorf("%s is not available", d.name))
	}
	return order.NewItem(d.name, d.dishType, d.price, quantity, d.estimatedMinutes, notes)
}

func (d *Dish) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("dish name")
	}
	d.name = strings.TrimSpace(name)
	return nil
}

func (d *Dish) setDishType(dishType string) error {
	if strings.TrimSpace(dishType) == "" {
		return errs.NewValueIsRequiredError("dish type")
	}
	d.dishType = dishType
	return nil
}

func (d *Dish) setPrice(price kernel.Money) error {
	if price.IsZero() {
		return errs.NewValueIsRequiredError("price")
	}
	d.price = price
	return nil
}

func (d *Dish) setEstimatedMinutes(minutes int) error {
	if minutes < 0 {
		return errs.NewValueIsInvalidErrorWithCause("estimated time is invalid", fmt.Errorf("%d is negative", minutes))
	}
	d.estimatedMinutes = minutes
	return nil
}
