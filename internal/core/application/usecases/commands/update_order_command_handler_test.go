package commands_test

import (
	"testing"

	"canteen/internal/core/application/usecases/commands"
	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/core/domain/model/order"
	"canteen/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUpdateOrderCommand(t *testing.T) {
	_, err := commands.NewUpdateOrderCommand(kernel.UUID{}, "", nil)

	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	assert.Contains(t, err.Error(), "items")
}

func TestUpdateOrderCommandHandler_Handle_PendingOrder(t *testing.T) {
	factory, store := newMemoryUoWFactory()
	created := seedOrder(t, factory, "device-1")
	events := &recordingPublisher{}
	h := commands.NewUpdateOrderCommandHandler(factory, events)

	cmd, err := commands.NewUpdateOrderCommand(created.ID(), "less salt", []order.Item{mustItem(t, "soup", 3, 4.50, 12)})
	require.NoError(t, err)
	updated, err := h.Handle(t.Context(), cmd)

	require.NoError(t, err)
	assert.Equal(t, "less salt", updated.Notes())
	assert.Equal(t, int64(1350), updated.TotalPrice().Cents())
	assert.Equal(t, created.PickupCode(), updated.PickupCode())
	assert.Equal(t, created.QueueNumber(), updated.QueueNumber())
	require.Len(t, events.updated, 1)

	stored, err := store.OrderRepository().Get(t.Context(), created.ID())
	require.NoError(t, err)
	require.Len(t, stored.Items(), 1)
	assert.Equal(t, "soup", stored.Items()[0].DishName())
}

func TestUpdateOrderCommandHandler_Handle_ConfirmedOrderIsRejected(t *testing.T) {
	factory, store := newMemoryUoWFactory()
	created := seedOrder(t, factory, "device-1")
	_, err := changeStatus(t, commands.NewChangeOrderStatusCommandHandler(factory, &recordingPublisher{}), created.ID(), order.Confirmed)
	require.NoError(t, err)

	events := &recordingPublisher{}
	h := commands.NewUpdateOrderCommandHandler(factory, events)
	cmd, err := commands.NewUpdateOrderCommand(created.ID(), "x", []order.Item{mustItem(t, "soup", 1, 1, 1)})
	require.NoError(t, err)

	_, err = h.Handle(t.Context(), cmd)

	require.ErrorIs(t, err, errs.ErrInvalidTransition)
	assert.Empty(t, events.updated)
	stored, err := store.OrderRepository().Get(t.Context(), created.ID())
	require.NoError(t, err)
	assert.Len(t, stored.Items(), 2)
}

func TestUpdateOrderCommandHandler_Handle_NotFound(t *testing.T) {
	factory, _ := newMemoryUoWFactory()
	h := commands.NewUpdateOrderCommandHandler(factory, &recordingPublisher{})
	cmd, err := commands.NewUpdateOrderCommand(kernel.NewUUID(), "", sampleItems(t))
	require.NoError(t, err)

	_, err = h.Handle(t.Context(), cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}
