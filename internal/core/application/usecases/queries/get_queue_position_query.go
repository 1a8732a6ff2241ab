package queries

import (
	"errors"
	"strings"

	"canteen/internal/pkg/errs"
	"canteen/internal/pkg/guard"
)

var ErrGetQueuePositionQueryIsNotConstructed = errors.New(
	"GetQueuePositionQuery must be created via NewGetQueuePositionQuery constructor",
)

// GetQueuePositionQuery asks how many orders are ahead of the user's order.
type GetQueuePositionQuery struct {
	userID string

	guard guard.ConstructorGuard
}

func NewGetQueuePositionQuery(userID string) (GetQueuePositionQuery, error) {
	if strings.TrimSpace(userID) == "" {
		return GetQueuePositionQuery{}, errs.NewValueIsRequiredError("user id")
	}

	return GetQueuePositionQuery{
		userID: userID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (q GetQueuePositionQuery) Validate() error {
	return q.guard.Validate(ErrGetQueuePositionQueryIsNotConstructed)
}

func (q GetQueuePositionQuery) UserID() string {
	return q.userID
}
