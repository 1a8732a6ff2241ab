package guard_test

import (
	"errors"
	"testing"

	"canteen/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	errNotConstructed := errors.New("command not constructed")

	t.Run("constructed_guard_returns_nil", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errNotConstructed))
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(errNotConstructed)

		require.Error(t, err)
		assert.Equal(t, errNotConstructed, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		require.ErrorIs(t, err, guard.ErrDefaultConstructorGuard)
	})
}

func TestConstructorGuard_Embedded(t *testing.T) {
	type query struct {
		userID string
		guard  guard.ConstructorGuard
	}
	errQueryNotConstructed := errors.New("query must be created via newQuery")

	newQuery := func(userID string) query {
		return query{userID: userID, guard: guard.NewConstructorGuard()}
	}

	t.Run("copies_keep_the_constructed_flag", func(t *testing.T) {
		q := newQuery("device-1")
		copied := q

		require.NoError(t, copied.guard.Validate(errQueryNotConstructed))
	})

	t.Run("literal_without_constructor_is_rejected", func(t *testing.T) {
		q := query{userID: "device-1"}

		require.ErrorIs(t, q.guard.Validate(errQueryNotConstructed), errQueryNotConstructed)
	})
}
