package queries

import (
	"errors"
	"strings"

	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/pkg/errs"
	"canteen/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery or NewGetOrderByPickupCodeQuery constructor",
)

// GetOrderQuery looks up a single order either by id or by pickup code.
type GetOrderQuery struct {
	id         kernel.UUID
	pickupCode string

	guard guard.ConstructorGuard
}

func NewGetOrderQuery(id kernel.UUID) (GetOrderQuery, error) {
	if err := id.Validate(); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{id: id, guard: guard.NewConstructorGuard()}, nil
}

// NewGetOrderByPickupCodeQuery builds a lookup by the code shown to the
// customer at the counter.
func NewGetOrderByPickupCodeQuery(code string) (GetOrderQuery, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return GetOrderQuery{}, errs.NewValueIsRequiredError("pickup code")
	}

	return GetOrderQuery{pickupCode: code, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) ID() kernel.UUID {
	return q.id
}

func (q GetOrderQuery) PickupCode() string {
	return q.pickupCode
}

func (q GetOrderQuery) byPickupCode() bool {
	return q.pickupCode != ""
}
