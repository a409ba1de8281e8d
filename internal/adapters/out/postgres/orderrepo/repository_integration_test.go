package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"fuelsettlement/internal/adapters/out/postgres/orderrepo"
	"fuelsettlement/internal/core/domain/model/kernel"
	"fuelsettlement/internal/core/domain/model/order"
	"fuelsettlement/internal/core/ports"
	"fuelsettlement/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id any, aggregate any) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite provides integration tests for OrderRepository
// using PostgreSQL containers to verify database persistence behavior.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders RESTART IDENTITY").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) newTestOrder() *order.Order {
	price, err := kernel.NewMoney(150)
	suite.Require().NoError(err)

	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), 5000, price, time.Now().UTC())
	suite.Require().NoError(err)
	return o
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_AssignsSequentialIDs() {
	ctx := context.Background()

	first := suite.newTestOrder()
	second := suite.newTestOrder()

	suite.Require().NoError(suite.repository.Add(ctx, first))
	suite.Require().NoError(suite.repository.Add(ctx, second))

	suite.Positive(first.ID())
	suite.Equal(first.ID()+1, second.ID())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_ExistingOrder_RoundTrips() {
	ctx := context.Background()

	original := suite.newTestOrder()
	suite.Require().NoError(suite.repository.Add(ctx, original))

	retrieved, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)

	suite.Equal(original.ID(), retrieved.ID())
	suite.True(retrieved.Buyer().IsEqual(original.Buyer()))
	suite.True(retrieved.Supplier().IsEqual(original.Supplier()))
	suite.Equal(5000, retrieved.QuantityLitres())
	suite.EqualValues(150, retrieved.PricePerLitre().Amount())
	suite.EqualValues(750_000, retrieved.TotalAmount().Amount())
	suite.Equal(order.Created, retrieved.Status())
	suite.False(retrieved.DeliveryConfirmed())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.Get(ctx, 9999)

	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetForUpdate_ExistingOrder_ReturnsOrder() {
	ctx := context.Background()

	original := suite.newTestOrder()
	suite.Require().NoError(suite.repository.Add(ctx, original))

	tx := suite.db.Begin()
	suite.Require().NoError(tx.Error)
	defer tx.Rollback()

	txRepo := orderrepo.NewGormOrderRepository(tx, suite.tracker)
	retrieved, err := txRepo.GetForUpdate(ctx, original.ID())
	suite.Require().NoError(err)
	suite.Equal(original.ID(), retrieved.ID())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_StatusGuard() {
	ctx := context.Background()

	original := suite.newTestOrder()
	suite.Require().NoError(suite.repository.Add(ctx, original))

	suite.Require().NoError(original.ConfirmDelivery())
	suite.Require().NoError(suite.repository.Update(ctx, original, order.Created))

	retrieved, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Delivered, retrieved.Status())
	suite.True(retrieved.DeliveryConfirmed())

	// A stale writer still expecting Created must not match any row.
	suite.Require().NoError(retrieved.Settle())
	err = suite.repository.Update(ctx, retrieved, order.Created)
	suite.Require().ErrorIs(err, ports.ErrConcurrentUpdate)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_NonExistentOrder_ReturnsConflict() {
	ctx := context.Background()

	phantom := suite.newTestOrder()
	suite.Require().NoError(phantom.AssignID(4242))

	err := suite.repository.Update(ctx, phantom, order.Created)
	suite.Require().ErrorIs(err, ports.ErrConcurrentUpdate)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllInDeliveredStatus() {
	ctx := context.Background()

	created := suite.newTestOrder()
	suite.Require().NoError(suite.repository.Add(ctx, created))

	delivered := suite.newTestOrder()
	suite.Require().NoError(suite.repository.Add(ctx, delivered))
	suite.Require().NoError(delivered.ConfirmDelivery())
	suite.Require().NoError(suite.repository.Update(ctx, delivered, order.Created))

	settled := suite.newTestOrder()
	suite.Require().NoError(suite.repository.Add(ctx, settled))
	suite.Require().NoError(settled.ConfirmDelivery())
	suite.Require().NoError(settled.Settle())
	suite.Require().NoError(suite.repository.Update(ctx, settled, order.Created))

	result, err := suite.repository.GetAllInDeliveredStatus(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(delivered.ID(), result[0].ID())
	suite.Equal(order.Delivered, result[0].Status())
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
