package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	httpadapter "canteen/internal/adapters/in/http"
	"canteen/internal/adapters/in/ws"
	"canteen/internal/adapters/out/memory"
	"canteen/internal/adapters/out/postgres"
	"canteen/internal/adapters/out/postgres/dishrepo"
	"canteen/internal/adapters/out/postgres/orderrepo"
	"canteen/internal/adapters/out/redis"
	"canteen/internal/adapters/out/redis/cartrepo"
	"canteen/internal/adapters/out/redis/pubsub"
	"canteen/internal/core/application/notifications"
	"canteen/internal/core/application/usecases/commands"
	"canteen/internal/core/application/usecases/queries"
	"canteen/internal/core/domain/services"
	"canteen/internal/core/ports"
	"canteen/internal/pkg/metrics"

	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// CompositionRoot owns every long-lived dependency of the service.
type CompositionRoot struct {
	cfg    Config
	logger *slog.Logger

	uowFactory ports.UnitOfWorkFactory
	orders     queries.OrderReader
	catalog    ports.Catalog
	carts      ports.CartRepository
	codes      services.PickupCodeGenerator

	metrics    *metrics.Metrics
	hub        *ws.Hub
	subscriber *pubsub.Subscriber
	dispatcher *notifications.Dispatcher

	closers []func() error
}

// NewCompositionRoot connects to the configured stores. On error everything
// opened so far is closed again.
func NewCompositionRoot(ctx context.Context, cfg Config, logger *slog.Logger) (*CompositionRoot, error) {
	c := &CompositionRoot{
		cfg:     cfg,
		logger:  logger,
		codes:   services.NewPickupCodeGenerator(cfg.PickupCodeAttempts, nil),
		metrics: metrics.New(),
		hub:     ws.NewHub(logger),
	}

	if err := c.openOrderStore(ctx); err != nil {
		_ = c.Close()
		return nil, err
	}

	var channel ports.NotificationChannel = c.hub
	if cfg.RedisEnabled() {
		rdb, err := redis.NewClient(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			_ = c.Close()
			return nil, err
		}
		c.closers = append(c.closers, rdb.Close)

		c.carts = cartrepo.NewRedisCartRepository(rdb, cfg.CartTTL)
		c.subscriber = pubsub.NewSubscriber(rdb, c.hub, logger)
		channel = pubsub.NewChannel(rdb)
	} else {
		c.carts = memory.NewCartRepository()
	}

	c.dispatcher = notifications.NewDispatcher(channel, c.orders, c.metrics, logger)

	logger.InfoContext(ctx, "Composition root ready",
		"storage", cfg.StorageDriver,
		"redis", cfg.RedisEnabled(),
	)
	return c, nil
}

func (c *CompositionRoot) openOrderStore(ctx context.Context) error {
	switch c.cfg.StorageDriver {
	case StorageMemory:
		store := memory.NewStore()
		c.uowFactory = memory.NewUnitOfWorkFactory(store)
		c.orders = store.OrderRepository()
		c.catalog = memory.NewCatalog()
		return nil

	case StoragePostgres:
		db, err := OpenDatabase(c.cfg)
		if err != nil {
			return err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return fmt.Errorf("postgres: underlying connection: %w", err)
		}
		c.closers = append(c.closers, sqlDB.Close)

		if err = sqlDB.PingContext(ctx); err != nil {
			return fmt.Errorf("postgres: ping: %w", err)
		}
		if err = postgres.Migrate(db); err != nil {
			return err
		}

		c.uowFactory = postgres.NewGormUnitOfWorkFactory(db)
		c.orders = orderrepo.NewGormOrderRepository(db)
		c.catalog = dishrepo.NewGormCatalog(db)
		return nil

	default:
		return fmt.Errorf("unknown storage driver %q", c.cfg.StorageDriver)
	}
}

// OpenDatabase opens the PostgreSQL pool. Constraint violations are translated
// to gorm errors so the repositories can report conflicts.
func OpenDatabase(cfg Config) (*gorm.DB, error) {
	db, err := gorm.Open(gorm_postgres.Open(cfg.DSN()), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("postgres: open: %w", err)
	}
	return db, nil
}

// Close releases the connections in reverse order of opening.
func (c *CompositionRoot) Close() error {
	var err error
	for i := len(c.closers) - 1; i >= 0; i-- {
		err = errors.Join(err, c.closers[i]())
	}
	c.closers = nil
	return err
}

func (c *CompositionRoot) Metrics() *metrics.Metrics {
	return c.metrics
}

func (c *CompositionRoot) Hub() *ws.Hub {
	return c.hub
}

// Subscriber is nil unless Redis is configured.
func (c *CompositionRoot) Subscriber() *pubsub.Subscriber {
	return c.subscriber
}

func (c *CompositionRoot) Dispatcher() *notifications.Dispatcher {
	return c.dispatcher
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory(), c.codes, c.dispatcher)
}

func (c *CompositionRoot) CreateUpdateOrderCommandHandler() commands.UpdateOrderCommandHandler {
	return commands.NewUpdateOrderCommandHandler(c.orderUoWFactory(), c.dispatcher)
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	return commands.NewDeleteOrderCommandHandler(c.orderUoWFactory(), c.dispatcher)
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	return commands.NewChangeOrderStatusCommandHandler(c.orderUoWFactory(), c.dispatcher)
}

func (c *CompositionRoot) CreateAddDishCommandHandler() commands.AddDishCommandHandler {
	return commands.NewAddDishCommandHandler(c.catalog)
}

func (c *CompositionRoot) CreateUpdateDishCommandHandler() commands.UpdateDishCommandHandler {
	return commands.NewUpdateDishCommandHandler(c.catalog)
}

func (c *CompositionRoot) CreateSetDishAvailabilityCommandHandler() commands.SetDishAvailabilityCommandHandler {
	return commands.NewSetDishAvailabilityCommandHandler(c.catalog)
}

func (c *CompositionRoot) CreateDeleteDishCommandHandler() commands.DeleteDishCommandHandler {
	return commands.NewDeleteDishCommandHandler(c.catalog)
}

func (c *CompositionRoot) CreateChangeCartCommandHandler() commands.ChangeCartCommandHandler {
	return commands.NewChangeCartCommandHandler(c.carts, c.catalog)
}

func (c *CompositionRoot) CreateCheckoutCartCommandHandler() commands.CheckoutCartCommandHandler {
	return commands.NewCheckoutCartCommandHandler(c.carts, c.catalog, c.CreateCreateOrderCommandHandler(), c.logger)
}

// HTTPHandlers wires every use case the REST API exposes.
func (c *CompositionRoot) HTTPHandlers() httpadapter.Handlers {
	return httpadapter.Handlers{
		CreateOrder:  c.CreateCreateOrderCommandHandler(),
		UpdateOrder:  c.CreateUpdateOrderCommandHandler(),
		DeleteOrder:  c.CreateDeleteOrderCommandHandler(),
		ChangeStatus: c.CreateChangeOrderStatusCommandHandler(),
		AddDish:      c.CreateAddDishCommandHandler(),
		UpdateDish:   c.CreateUpdateDishCommandHandler(),
		SetDishAvail: c.CreateSetDishAvailabilityCommandHandler(),
		DeleteDish:   c.CreateDeleteDishCommandHandler(),
		ChangeCart:   c.CreateChangeCartCommandHandler(),
		Checkout:     c.CreateCheckoutCartCommandHandler(),

		GetOrder:      queries.NewGetOrderQueryHandler(c.orders),
		GetOrders:     queries.NewGetOrdersQueryHandler(c.orders),
		GetUserOrders: queries.NewGetUserOrdersQueryHandler(c.orders),
		GetQueue:      queries.NewGetQueueQueryHandler(c.orders),
		GetPosition:   queries.NewGetQueuePositionQueryHandler(c.orders),
		GetStatistics: queries.NewGetQueueStatisticsQueryHandler(c.orders),
		ListDishes:    queries.NewListDishesQueryHandler(c.catalog),
		GetDish:       queries.NewGetDishQueryHandler(c.catalog),
		GetCart:       queries.NewGetCartQueryHandler(c.carts),
	}
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
