package queries

import (
	"errors"
	"fmt"
	"strings"

	"canteen/internal/pkg/errs"
	"canteen/internal/pkg/guard"
)

var ErrGetUserOrdersQueryIsNotConstructed = errors.New(
	"GetUserOrdersQuery must be created via NewGetUserOrdersQuery constructor",
)

// UserOrdersScope narrows a user's order list.
type UserOrdersScope string

const (
	ScopeAll     UserOrdersScope = "all"
	ScopeActive  UserOrdersScope = "active"
	ScopeHistory UserOrdersScope = "history"
)

// ParseUserOrdersScope accepts "", "all", "active" and "history". The empty
// string means all.
func ParseUserOrdersScope(s string) (UserOrdersScope, error) {
	switch scope := UserOrdersScope(strings.ToLower(strings.TrimSpace(s))); scope {
	case "", ScopeAll:
		return ScopeAll, nil
	case ScopeActive, ScopeHistory:
		return scope, nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("scope", fmt.Errorf("%q is not one of all, active, history", s))
	}
}

// GetUserOrdersQuery lists the orders placed by one user, newest first.
type GetUserOrdersQuery struct {
	userID string
	scope  UserOrdersScope

	guard guard.ConstructorGuard
}

func NewGetUserOrdersQuery(userID string, scope UserOrdersScope) (GetUserOrdersQuery, error) {
	if strings.TrimSpace(userID) == "" {
		return GetUserOrdersQuery{}, errs.NewValueIsRequiredError("user id")
	}

	parsed, err := ParseUserOrdersScope(string(scope))
	if err != nil {
		return GetUserOrdersQuery{}, err
	}

	return GetUserOrdersQuery{
		userID: userID,
		scope:  parsed,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (q GetUserOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetUserOrdersQueryIsNotConstructed)
}

func (q GetUserOrdersQuery) UserID() string {
	return q.userID
}

func (q GetUserOrdersQuery) Scope() UserOrdersScope {
	return q.scope
}
