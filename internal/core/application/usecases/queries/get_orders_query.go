package queries

import (
	"errors"

	"canteen/internal/core/domain/model/order"
	"canteen/internal/pkg/guard"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetAllOrdersQuery or NewGetOrdersByStatusQuery constructor",
)

// GetOrdersQuery lists orders for the admin panel, optionally narrowed to
// one status.
type GetOrdersQuery struct {
	status order.Status

	guard guard.ConstructorGuard
}

func NewGetAllOrdersQuery() GetOrdersQuery {
	return GetOrdersQuery{guard: guard.NewConstructorGuard()}
}

func NewGetOrdersByStatusQuery(status order.Status) (GetOrdersQuery, error) {
	if err := status.Validate(); err != nil {
		return GetOrdersQuery{}, err
	}

	return GetOrdersQuery{status: status, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// Status is order.Unknown when every order is requested.
func (q GetOrdersQuery) Status() order.Status {
	return q.status
}
