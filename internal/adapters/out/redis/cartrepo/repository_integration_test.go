package cartrepo_test

import (
	"context"
	"testing"
	"time"

	"canteen/internal/adapters/out/redis/cartrepo"
	"canteen/internal/core/domain/model/cart"
	"canteen/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

type RedisCartRepositoryTestSuite struct {
	suite.Suite
	container testcontainers.Container
	rdb       *redis.Client
	repo      *cartrepo.RedisCartRepository
}

func (suite *RedisCartRepositoryTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor: wait.ForLog("Ready to accept connections").
				WithStartupTimeout(30 * time.Second),
		},
		Started: true,
	})
	suite.Require().NoError(err)
	suite.container = container

	endpoint, err := container.Endpoint(ctx, "")
	suite.Require().NoError(err)

	suite.rdb = redis.NewClient(&redis.Options{Addr: endpoint})
	suite.Require().NoError(suite.rdb.Ping(ctx).Err())
	suite.repo = cartrepo.NewRedisCartRepository(suite.rdb, time.Hour)
}

func (suite *RedisCartRepositoryTestSuite) TearDownSuite() {
	if suite.rdb != nil {
		_ = suite.rdb.Close()
	}
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *RedisCartRepositoryTestSuite) SetupTest() {
	suite.Require().NoError(suite.rdb.FlushDB(context.Background()).Err())
}

func (suite *RedisCartRepositoryTestSuite) TestGet_UnknownUserHasEmptyCart() {
	c, err := suite.repo.Get(context.Background(), "nobody")

	suite.Require().NoError(err)
	suite.True(c.IsEmpty())
	suite.Equal("nobody", c.UserID())
}

func (suite *RedisCartRepositoryTestSuite) TestSetItem_AddsAndReplacesLines() {
	ctx := context.Background()

	suite.Require().NoError(suite.repo.SetItem(ctx, "u1", "Tea", 1))
	suite.Require().NoError(suite.repo.SetItem(ctx, "u1", "Dumplings", 2))
	suite.Require().NoError(suite.repo.SetItem(ctx, "u1", "Tea", 3))

	c, err := suite.repo.Get(ctx, "u1")
	suite.Require().NoError(err)
	suite.Equal([]cart.Line{
		{DishName: "Dumplings", Quantity: 2},
		{DishName: "Tea", Quantity: 3},
	}, c.Lines())
}

func (suite *RedisCartRepositoryTestSuite) TestSetItem_SetsExpiry() {
	ctx := context.Background()
	suite.Require().NoError(suite.repo.SetItem(ctx, "u1", "Tea", 1))

	ttl, err := suite.rdb.TTL(ctx, "canteen:cart:u1").Result()

	suite.Require().NoError(err)
	suite.Greater(ttl, 59*time.Minute)
}

func (suite *RedisCartRepositoryTestSuite) TestSetItem_RejectsInvalidQuantity() {
	err := suite.repo.SetItem(context.Background(), "u1", "Tea", 0)

	suite.Require().ErrorIs(err, errs.ErrValidation)
}

func (suite *RedisCartRepositoryTestSuite) TestRemoveItemAndClear() {
	ctx := context.Background()
	suite.Require().NoError(suite.repo.SetItem(ctx, "u1", "Tea", 1))
	suite.Require().NoError(suite.repo.SetItem(ctx, "u1", "Dumplings", 2))

	suite.Require().NoError(suite.repo.RemoveItem(ctx, "u1", "Tea"))
	c, err := suite.repo.Get(ctx, "u1")
	suite.Require().NoError(err)
	suite.Equal(2, c.TotalQuantity())

	suite.Require().NoError(suite.repo.Clear(ctx, "u1"))
	c, err = suite.repo.Get(ctx, "u1")
	suite.Require().NoError(err)
	suite.True(c.IsEmpty())
}

func (suite *RedisCartRepositoryTestSuite) TestCartsAreIsolatedPerUser() {
	ctx := context.Background()
	suite.Require().NoError(suite.repo.SetItem(ctx, "u1", "Tea", 1))

	c, err := suite.repo.Get(ctx, "u2")

	suite.Require().NoError(err)
	suite.True(c.IsEmpty())
}

func TestRedisCartRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisCartRepositoryTestSuite))
}
