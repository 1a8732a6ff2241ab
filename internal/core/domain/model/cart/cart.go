// Package cart holds the pre-checkout selection of a single user.
package cart

import (
	"fmt"
	"sort"
	"strings"

	"canteen/internal/pkg/errs"
)

// Line is one dish in a cart.
type Line struct {
	DishName string
	Quantity int
}

// Cart maps dish names to quantities for one user. Lines are kept sorted by
// dish name so that every store returns them in the same order.
type Cart struct {
	userID string
	lines  []Line
}

// NewCart validates lines and builds a cart. A nil or empty slice yields an
// empty cart.
func NewCart(userID string, lines []Line) (Cart, error) {
	if strings.TrimSpace(userID) == "" {
		return Cart{}, errs.NewValueIsRequiredError("user id")
	}

	merged := make(map[string]int, len(lines))
	for _, l := range lines {
		if err := ValidateLine(l.DishName, l.Quantity); err != nil {
			return Cart{}, err
		}
		merged[l.DishName] += l.Quantity
	}

	c := Cart{userID: userID, lines: make([]Line, 0, len(merged))}
	for name, qty := range merged {
		c.lines = append(c.lines, Line{DishName: name, Quantity: qty})
	}
	sort.Slice(c.lines, func(i, j int) bool {
		return c.lines[i].DishName < c.lines[j].DishName
	})

	return c, nil
}

// ValidateLine checks the arguments of a cart mutation.
func ValidateLine(dishName string, quantity int) error {
	if strings.TrimSpace(dishName) == "" {
		return errs.NewValueIsRequiredError("dish name")
	}
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid", fmt.Errorf("%d is not greater than 0", quantity))
	}
	return nil
}

func (c Cart) UserID() string {
	return c.userID
}

// Lines returns a copy of the cart lines.
func (c Cart) Lines() []Line {
	lines := make([]Line, len(c.lines))
	copy(lines, c.lines)
	return lines
}

func (c Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

func (c Cart) TotalQuantity() int {
	total := 0
	for _, l := range c.lines {
		total += l.Quantity
	}
	return total
}
