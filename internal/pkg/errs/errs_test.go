package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"canteen/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMessages(t *testing.T) {
	cause := errors.New("connection reset")

	tests := []struct {
		name     string
		err      error
		sentinel error
		want     string
	}{
		{
			name:     "order not found",
			err:      errs.NewObjectNotFoundError("order", "5f0c"),
			sentinel: errs.ErrObjectNotFound,
			want:     "object not found: 5f0c",
		},
		{
			name:     "pickup code not found with cause",
			err:      errs.NewObjectNotFoundErrorWithCause("pickup code", "482913", cause),
			sentinel: errs.ErrObjectNotFound,
			want:     "object not found: param is: pickup code, ID is: 482913 (cause: connection reset)",
		},
		{
			name:     "numeric id",
			err:      errs.NewObjectNotFoundError("queue number", 7),
			sentinel: errs.ErrObjectNotFound,
			want:     "object not found: 7",
		},
		{
			name:     "invalid status",
			err:      errs.NewValueIsInvalidError("status"),
			sentinel: errs.ErrValueIsInvalid,
			want:     "value is invalid: status",
		},
		{
			name:     "invalid price with cause",
			err:      errs.NewValueIsInvalidErrorWithCause("unit price", errors.New("negative")),
			sentinel: errs.ErrValueIsInvalid,
			want:     "value is invalid: unit price (cause: negative)",
		},
		{
			name:     "quantity out of range",
			err:      errs.NewValueIsOutOfRangeError("quantity", 0, 1, 99),
			sentinel: errs.ErrValueIsOutOfRange,
			want:     "value is invalid: 0 is quantity, min value is 1, max value is 99",
		},
		{
			name:     "estimated time out of range with cause",
			err:      errs.NewValueIsOutOfRangeErrorWithCause("estimated time", -5, 0, 240, cause),
			sentinel: errs.ErrValueIsOutOfRange,
			want:     "value is invalid: -5 is estimated time, min value is 0, max value is 240 (cause: connection reset)",
		},
		{
			name:     "missing user id",
			err:      errs.NewValueIsRequiredError("user id"),
			sentinel: errs.ErrValueIsRequired,
			want:     "value is required: user id",
		},
		{
			name:     "missing items with cause",
			err:      errs.NewValueIsRequiredErrorWithCause("items", errors.New("empty cart")),
			sentinel: errs.ErrValueIsRequired,
			want:     "value is required: items (cause: empty cart)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
			assert.Equal(t, tt.sentinel, errors.Unwrap(tt.err))
		})
	}
}

func TestErrorFields(t *testing.T) {
	notFound := errs.NewObjectNotFoundError("order", "5f0c")
	assert.Equal(t, "order", notFound.ParamName)
	assert.Equal(t, "5f0c", notFound.ID)
	require.NoError(t, notFound.Cause)

	outOfRange := errs.NewValueIsOutOfRangeError("quantity", 150, 1, 99)
	assert.Equal(t, "quantity", outOfRange.ParamName)
	assert.Equal(t, 150, outOfRange.Value)
	assert.Equal(t, 1, outOfRange.Min)
	assert.Equal(t, 99, outOfRange.Max)

	cause := errors.New("bad input")
	required := errs.NewValueIsRequiredErrorWithCause("dish name", cause)
	assert.Equal(t, cause, required.Cause)
}

func TestErrorMessagesAreSingleLine(t *testing.T) {
	err := errs.NewValueIsOutOfRangeError("notes", "no onions\nextra sauce", 0, 10)

	assert.Contains(t, err.Error(), "no onions extra sauce")
	assert.NotContains(t, err.Error(), "\n")
}

func TestSentinelErrors(t *testing.T) {
	assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
	assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
	assert.Equal(t, "value is out of range", errs.ErrValueIsOutOfRange.Error())
	assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
	assert.Equal(t, "invalid transition", errs.ErrInvalidTransition.Error())
	assert.Equal(t, "conflict", errs.ErrConflict.Error())
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	t.Run("errors.Is works with custom errors", func(t *testing.T) {
		wrapped := fmt.Errorf("orderrepo: %w", errs.NewObjectNotFoundError("order", "5f0c"))
		require.ErrorIs(t, wrapped, errs.ErrObjectNotFound)

		transitionErr := errs.NewOperationIsNotAllowedError("update", stringer("READY"))
		require.ErrorIs(t, transitionErr, errs.ErrInvalidTransition)

		conflictErr := errs.NewConflictError("pickup code")
		require.ErrorIs(t, conflictErr, errs.ErrConflict)
	})

	t.Run("validation errors share the ErrValidation class", func(t *testing.T) {
		require.ErrorIs(t, errs.NewValueIsRequiredError("items"), errs.ErrValidation)
		require.ErrorIs(t, errs.NewValueIsInvalidError("quantity"), errs.ErrValidation)
		require.ErrorIs(t, errs.NewValueIsOutOfRangeError("quantity", 0, 1, 99), errs.ErrValidation)
		require.NotErrorIs(t, errs.NewObjectNotFoundError("order", "1"), errs.ErrValidation)
		require.NotErrorIs(t, errs.NewConflictError("pickup code"), errs.ErrValidation)
	})
}

type stringer string

func (s stringer) String() string { return string(s) }

func TestInvalidTransitionError(t *testing.T) {
	t.Run("NewInvalidTransitionError", func(t *testing.T) {
		err := errs.NewInvalidTransitionError(stringer("PENDING"), stringer("READY"))

		assert.Equal(t, "PENDING", err.From)
		assert.Equal(t, "READY", err.To)
		assert.Empty(t, err.Operation)
		assert.Equal(t, "invalid transition: PENDING -> READY", err.Error())
		assert.Equal(t, errs.ErrInvalidTransition, err.Unwrap())
	})

	t.Run("NewOperationIsNotAllowedError", func(t *testing.T) {
		err := errs.NewOperationIsNotAllowedError("update", stringer("CONFIRMED"))

		assert.Equal(t, "CONFIRMED", err.From)
		assert.Empty(t, err.To)
		assert.Equal(t, "invalid transition: cannot update order in status CONFIRMED", err.Error())
	})

	t.Run("can be extracted with errors.As", func(t *testing.T) {
		wrapped := fmt.Errorf("handler: %w", errs.NewInvalidTransitionError(stringer("READY"), stringer("PENDING")))

		var target *errs.InvalidTransitionError
		require.ErrorAs(t, wrapped, &target)
		assert.Equal(t, "READY", target.From)
		assert.Equal(t, "PENDING", target.To)
	})
}

func TestConflictError(t *testing.T) {
	t.Run("NewConflictError", func(t *testing.T) {
		err := errs.NewConflictError("pickup code")

		assert.Equal(t, "pickup code", err.Resource)
		require.NoError(t, err.Cause)
		assert.Equal(t, "conflict: pickup code", err.Error())
		assert.Equal(t, errs.ErrConflict, err.Unwrap())
	})

	t.Run("NewConflictErrorWithCause", func(t *testing.T) {
		cause := errors.New("10 attempts exhausted")
		err := errs.NewConflictErrorWithCause("pickup code", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "conflict: pickup code (cause: 10 attempts exhausted)", err.Error())
	})
}
