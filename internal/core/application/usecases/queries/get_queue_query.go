package queries

import (
	"errors"

	"canteen/internal/pkg/guard"
)

var ErrGetQueueQueryIsNotConstructed = errors.New(
	"GetQueueQuery must be created via NewGetQueueQuery constructor",
)

// GetQueueQuery retrieves every active order in queue order. This is what the
// kitchen display shows.
//
// Example:
//
//	query := NewGetQueueQuery()
//	queue, err := handler.Handle(ctx, query)
//	for _, o := range queue {
//	    fmt.Printf("#%d %s\n", o.QueueNumber(), o.Status().DisplayName())
//	}
type GetQueueQuery struct {
	guard guard.ConstructorGuard
}

func NewGetQueueQuery() GetQueueQuery {
	return GetQueueQuery{guard: guard.NewConstructorGuard()}
}

func (q GetQueueQuery) Validate() error {
	return q.guard.Validate(ErrGetQueueQueryIsNotConstructed)
}
