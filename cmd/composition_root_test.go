package cmd

import (
	"context"
	"log/slog"
	"testing"

	"canteen/internal/core/application/usecases/commands"
	"canteen/internal/core/application/usecases/queries"
	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMemoryRoot(t *testing.T) *CompositionRoot {
	t.Helper()

	root, err := NewCompositionRoot(context.Background(), Config{StorageDriver: StorageMemory}, slog.New(slog.DiscardHandler))
	require.NoError(t, err)
	t.Cleanup(func() { _ = root.Close() })
	return root
}

func TestConfig_DSN(t *testing.T) {
	cfg := Config{
		DBHost:     "db",
		DBPort:     "5432",
		DBUser:     "canteen",
		DBPassword: "secret",
		DBName:     "orders",
		DBSslMode:  "disable",
	}

	assert.Equal(t, "host=db port=5432 user=canteen password=secret dbname=orders sslmode=disable", cfg.DSN())
	assert.False(t, cfg.RedisEnabled())
}

func TestNewCompositionRoot_UnknownDriver(t *testing.T) {
	_, err := NewCompositionRoot(context.Background(), Config{StorageDriver: "sqlite"}, slog.New(slog.DiscardHandler))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "sqlite")
}

func TestCompositionRoot_MemoryWiring(t *testing.T) {
	ctx := context.Background()
	root := newMemoryRoot(t)
	handlers := root.HTTPHandlers()

	price, err := kernel.NewMoney(450)
	require.NoError(t, err)
	item, err := order.NewItem("Borscht", "soup", price, 2, 12, "")
	require.NoError(t, err)

	createCmd, err := commands.NewCreateOrderCommand("user-1", "", []order.Item{item})
	require.NoError(t, err)
	created, err := handlers.CreateOrder.Handle(ctx, createCmd)
	require.NoError(t, err)
	assert.Equal(t, 1, created.QueueNumber())

	stats, err := handlers.GetStatistics.Handle(ctx, queries.NewGetQueueStatisticsQuery())
	require.NoError(t, err)
	assert.Equal(t, 1, stats.PendingCount)

	assert.NoError(t, root.Dispatcher().PublishStatistics(ctx))
	assert.Nil(t, root.Subscriber())
}
