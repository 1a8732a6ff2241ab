package order_test

import (
	"testing"
	"time"

	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/core/domain/model/order"
	"canteen/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var baseTime = time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)

func mustItem(t *testing.T, name string, quantity int, price float64, minutes int) order.Item {
	t.Helper()
	p, err := kernel.MoneyFromFloat(price)
	require.NoError(t, err)
	item, err := order.NewItem(name, "Main Course", p, quantity, minutes, "")
	require.NoError(t, err)
	return item
}

func newPendingOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), "device-1", "123456", 1, "", []order.Item{
		mustItem(t, "dishA", 2, 5.00, 10),
		mustItem(t, "dishB", 1, 3.00, 5),
	}, baseTime)
	require.NoError(t, err)
	return o
}

func advance(t *testing.T, o *order.Order, statuses ...order.Status) {
	t.Helper()
	for _, s := range statuses {
		require.NoError(t, o.ChangeStatus(s, "", baseTime))
	}
}

func TestNewOrder(t *testing.T) {
	t.Run("should derive totals from items", func(t *testing.T) {
		o := newPendingOrder(t)

		require.NoError(t, o.Validate())
		assert.Equal(t, int64(1300), o.TotalPrice().Cents())
		assert.Equal(t, 10, o.TotalEstimatedTime())
		assert.Equal(t, order.Pending, o.Status())
		assert.Equal(t, "123456", o.PickupCode())
		assert.Equal(t, 1, o.QueueNumber())
		assert.Equal(t, "device-1", o.UserID())
		assert.Equal(t, baseTime, o.CreatedAt())
		assert.Equal(t, baseTime, o.UpdatedAt())
		assert.True(t, o.IsActive())
	})

	t.Run("should keep item order", func(t *testing.T) {
		o := newPendingOrder(t)

		items := o.Items()
		require.Len(t, items, 2)
		assert.Equal(t, "dishA", items[0].DishName())
		assert.Equal(t, int64(1000), items[0].Subtotal().Cents())
		assert.Equal(t, "dishB", items[1].DishName())
	})

	t.Run("should reject empty item list", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), "device-1", "123456", 1, "", nil, baseTime)

		require.ErrorIs(t, err, errs.ErrValidation)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "items")
	})

	t.Run("should reject item not built by NewItem", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), "device-1", "123456", 1, "", []order.Item{{}}, baseTime)

		require.ErrorIs(t, err, order.ErrItemIsNotConstructed)
	})

	t.Run("should join all validation errors", func(t *testing.T) {
		var invalidID kernel.UUID

		_, err := order.NewOrder(invalidID, " ", "", 0, "", nil, baseTime)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "UUID must be created")
		assert.Contains(t, err.Error(), "user id")
		assert.Contains(t, err.Error(), "pickup code")
		assert.Contains(t, err.Error(), "0 is not greater than 0")
		assert.Contains(t, err.Error(), "items")
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("should rebuild state and recompute totals", func(t *testing.T) {
		original := newPendingOrder(t)
		advance(t, original, order.Confirmed, order.Preparing)
		snapshot := original.Snapshot()
		snapshot.TotalPrice = kernel.Money{}

		restored, err := order.RestoreOrder(snapshot)

		require.NoError(t, err)
		assert.True(t, restored.ID().IsEqual(original.ID()))
		assert.Equal(t, order.Preparing, restored.Status())
		assert.Equal(t, int64(1300), restored.TotalPrice().Cents())
	})

	t.Run("should reject unknown status", func(t *testing.T) {
		snapshot := newPendingOrder(t).Snapshot()
		snapshot.Status = order.Unknown

		_, err := order.RestoreOrder(snapshot)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "not a valid status")
	})
}

func TestOrder_Validate(t *testing.T) {
	var nilOrder *order.Order
	require.ErrorIs(t, nilOrder.Validate(), order.ErrOrderIsNotConstructed)

	var zero order.Order
	require.ErrorIs(t, zero.Validate(), order.ErrOrderIsNotConstructed)
}

func TestOrder_ChangeStatus(t *testing.T) {
	later := baseTime.Add(5 * time.Minute)

	t.Run("should follow the full kitchen workflow", func(t *testing.T) {
		o := newPendingOrder(t)

		for _, s := range []order.Status{order.Confirmed, order.Preparing, order.Ready, order.Completed} {
			require.NoError(t, o.ChangeStatus(s, "", later))
			assert.Equal(t, s, o.Status())
		}
		assert.False(t, o.IsActive())
		assert.Equal(t, later, o.UpdatedAt())
	})

	t.Run("should reject skipping PENDING to READY", func(t *testing.T) {
		o := newPendingOrder(t)

		err := o.ChangeStatus(order.Ready, "", later)

		var transitionErr *errs.InvalidTransitionError
		require.ErrorAs(t, err, &transitionErr)
		assert.Equal(t, "PENDING", transitionErr.From)
		assert.Equal(t, "READY", transitionErr.To)
		assert.Equal(t, order.Pending, o.Status())
		assert.Equal(t, baseTime, o.UpdatedAt())
	})

	t.Run("should complete READY order then refuse to reopen it", func(t *testing.T) {
		o := newPendingOrder(t)
		advance(t, o, order.Confirmed, order.Preparing, order.Ready)

		require.NoError(t, o.ChangeStatus(order.Completed, "", later))

		err := o.ChangeStatus(order.Pending, "", later)
		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Contains(t, err.Error(), "COMPLETED -> PENDING")
		assert.Equal(t, order.Completed, o.Status())
	})

	t.Run("should never leave terminal statuses", func(t *testing.T) {
		for _, terminal := range []order.Status{order.Completed, order.Cancelled} {
			o := newPendingOrder(t)
			if terminal == order.Completed {
				advance(t, o, order.Confirmed, order.Preparing, order.Ready, order.Completed)
			} else {
				advance(t, o, order.Cancelled)
			}

			for _, target := range order.AllStatuses() {
				require.ErrorIs(t, o.ChangeStatus(target, "", later), errs.ErrInvalidTransition)
				assert.Equal(t, terminal, o.Status())
			}
		}
	})

	t.Run("should not cancel a READY order", func(t *testing.T) {
		o := newPendingOrder(t)
		advance(t, o, order.Confirmed, order.Preparing, order.Ready)

		require.ErrorIs(t, o.ChangeStatus(order.Cancelled, "", later), errs.ErrInvalidTransition)
	})

	t.Run("should replace notes only when non blank", func(t *testing.T) {
		o := newPendingOrder(t)

		require.NoError(t, o.ChangeStatus(order.Confirmed, "extra napkins", later))
		assert.Equal(t, "extra napkins", o.Notes())

		require.NoError(t, o.ChangeStatus(order.Preparing, "   ", later))
		assert.Equal(t, "extra napkins", o.Notes())
	})
}

func TestOrder_UpdateDetails(t *testing.T) {
	later := baseTime.Add(time.Minute)

	t.Run("should replace items and recompute totals while PENDING", func(t *testing.T) {
		o := newPendingOrder(t)

		err := o.UpdateDetails("less salt", []order.Item{mustItem(t, "soup", 3, 4.50, 12)}, later)

		require.NoError(t, err)
		assert.Equal(t, "less salt", o.Notes())
		assert.Len(t, o.Items(), 1)
		assert.Equal(t, int64(1350), o.TotalPrice().Cents())
		assert.Equal(t, 12, o.TotalEstimatedTime())
		assert.Equal(t, later, o.UpdatedAt())
	})

	t.Run("should reject CONFIRMED order regardless of payload", func(t *testing.T) {
		o := newPendingOrder(t)
		advance(t, o, order.Confirmed)

		err := o.UpdateDetails("x", []order.Item{mustItem(t, "soup", 1, 1, 1)}, later)
		require.ErrorIs(t, err, errs.ErrInvalidTransition)

		err = o.UpdateDetails("x", nil, later)
		require.ErrorIs(t, err, errs.ErrInvalidTransition)

		assert.Len(t, o.Items(), 2)
		assert.Equal(t, int64(1300), o.TotalPrice().Cents())
	})

	t.Run("should reject empty items and keep previous state", func(t *testing.T) {
		o := newPendingOrder(t)

		err := o.UpdateDetails("x", []order.Item{}, later)

		require.ErrorIs(t, err, errs.ErrValidation)
		assert.Len(t, o.Items(), 2)
		assert.Empty(t, o.Notes())
	})

	t.Run("should not share the caller's slice", func(t *testing.T) {
		o := newPendingOrder(t)
		items := []order.Item{mustItem(t, "soup", 1, 2, 3)}
		require.NoError(t, o.UpdateDetails("", items, later))

		items[0] = mustItem(t, "other", 9, 9, 9)

		assert.Equal(t, "soup", o.Items()[0].DishName())
	})
}

func TestOrder_EnsureDeletable(t *testing.T) {
	testCases := []struct {
		name      string
		path      []order.Status
		deletable bool
	}{
		{"pending", nil, true},
		{"cancelled", []order.Status{order.Cancelled}, true},
		{"confirmed", []order.Status{order.Confirmed}, false},
		{"preparing", []order.Status{order.Confirmed, order.Preparing}, false},
		{"ready", []order.Status{order.Confirmed, order.Preparing, order.Ready}, false},
		{"completed", []order.Status{order.Confirmed, order.Preparing, order.Ready, order.Completed}, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			o := newPendingOrder(t)
			advance(t, o, tc.path...)

			err := o.EnsureDeletable()

			if tc.deletable {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, errs.ErrInvalidTransition)
				assert.Contains(t, err.Error(), "cannot delete")
			}
		})
	}
}
