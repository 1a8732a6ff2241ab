package commands_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"canteen/internal/adapters/out/memory"
	"canteen/internal/core/application/usecases/commands"
	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/core/domain/model/order"
	"canteen/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) GetByPickupCode(ctx context.Context, code string) (*order.Order, error) {
	args := m.Called(ctx, code)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) PickupCodeExists(ctx context.Context, code string) (bool, error) {
	args := m.Called(ctx, code)
	return args.Bool(0), args.Error(1)
}

func (m *MockOrderRepository) GetAllActive(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	orders, _ := args.Get(0).([]*order.Order)
	return orders, args.Error(1)
}

func (m *MockOrderRepository) GetAllByUserID(ctx context.Context, userID string) ([]*order.Order, error) {
	args := m.Called(ctx, userID)
	orders, _ := args.Get(0).([]*order.Order)
	return orders, args.Error(1)
}

func (m *MockOrderRepository) GetAllByStatus(ctx context.Context, status order.Status) ([]*order.Order, error) {
	args := m.Called(ctx, status)
	orders, _ := args.Get(0).([]*order.Order)
	return orders, args.Error(1)
}

func (m *MockOrderRepository) GetAll(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	orders, _ := args.Get(0).([]*order.Order)
	return orders, args.Error(1)
}

func (m *MockOrderRepository) NextQueueNumber(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type statusChange struct {
	orderID  kernel.UUID
	from, to order.Status
}

// recordingPublisher collects the events a handler publishes.
type recordingPublisher struct {
	mu      sync.Mutex
	created []*order.Order
	changed []statusChange
	updated []*order.Order
	deleted []*order.Order
}

func (p *recordingPublisher) OrderCreated(_ context.Context, o *order.Order) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.created = append(p.created, o)
}

func (p *recordingPublisher) OrderStatusChanged(_ context.Context, o *order.Order, from, to order.Status) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.changed = append(p.changed, statusChange{orderID: o.ID(), from: from, to: to})
}

func (p *recordingPublisher) OrderUpdated(_ context.Context, o *order.Order) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.updated = append(p.updated, o)
}

func (p *recordingPublisher) OrderDeleted(_ context.Context, o *order.Order) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.deleted = append(p.deleted, o)
}

type memoryUoWFactory struct {
	factory *memory.UnitOfWorkFactory
}

func (f memoryUoWFactory) Create() commands.OrderUoW {
	return f.factory.Create()
}

func newMemoryUoWFactory() (memoryUoWFactory, *memory.Store) {
	store := memory.NewStore()
	return memoryUoWFactory{factory: memory.NewUnitOfWorkFactory(store)}, store
}

func mustItem(t *testing.T, name string, quantity int, price float64, minutes int) order.Item {
	t.Helper()
	p, err := kernel.MoneyFromFloat(price)
	require.NoError(t, err)
	item, err := order.NewItem(name, "Main Course", p, quantity, minutes, "")
	require.NoError(t, err)
	return item
}

func sampleItems(t *testing.T) []order.Item {
	t.Helper()
	return []order.Item{
		mustItem(t, "dishA", 2, 5.00, 10),
		mustItem(t, "dishB", 1, 3.00, 5),
	}
}

func mustCreateCommand(t *testing.T, userID string) commands.CreateOrderCommand {
	t.Helper()
	cmd, err := commands.NewCreateOrderCommand(userID, "", sampleItems(t))
	require.NoError(t, err)
	return cmd
}

var baseTime = time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)
