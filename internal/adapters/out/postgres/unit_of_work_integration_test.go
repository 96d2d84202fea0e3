package postgres_test

import (
	"context"
	"testing"

	postgres_adapter "gasline/internal/adapters/out/postgres"
	"gasline/internal/adapters/out/postgres/driverrepo"
	"gasline/internal/adapters/out/postgres/orderrepo"
	"gasline/internal/core/domain/model/driver"
	"gasline/internal/core/domain/model/kernel"
	"gasline/internal/core/domain/model/order"
	"gasline/internal/core/ports"
	"gasline/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite provides integration testing for the
// GORM-based Unit of Work implementation with a real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.ItemDTO{},
		&orderrepo.StatusChangeDTO{},
		&driverrepo.UserDTO{},
	)
	suite.Require().NoError(err)

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, order_items, order_history, users").Error
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

// TestCreate_ProducesIsolatedInstances verifies each unit of work carries its
// own transaction state and aggregate tracking.
func (suite *UnitOfWorkIntegrationTestSuite) TestCreate_ProducesIsolatedInstances() {
	first := suite.factory.Create()
	second := suite.factory.Create()

	suite.NotNil(first)
	suite.NotNil(second)
	suite.NotSame(first, second)
	suite.Empty(first.TrackedAggregates())
	suite.Empty(second.TrackedAggregates())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_PersistsChanges() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	testOrder := suite.createPendingOrder()
	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))
	suite.Require().NoError(uow.Commit(ctx))

	// Visible through a fresh unit of work
	retrieved, err := suite.factory.Create().OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.True(testOrder.ID().IsEqual(retrieved.ID()))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsChanges() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))

	testOrder := suite.createPendingOrder()
	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))
	suite.Require().NoError(uow.Rollback(ctx))

	_, err := suite.factory.Create().OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_WithoutTransaction_IsNoOp() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Rollback(ctx))
}

// TestRollback_AfterCommit_IsNoOp covers the handler pattern of unconditionally
// deferring Rollback while committing on the success path.
func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_AfterCommit_IsNoOp() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))

	testOrder := suite.createPendingOrder()
	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))
	suite.Require().NoError(uow.Commit(ctx))
	suite.Require().NoError(uow.Rollback(ctx))

	// Rollback after commit must not undo the committed write
	_, err := suite.factory.Create().OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_WithoutTransaction_ReturnsError() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().ErrorIs(uow.Commit(ctx), gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestBegin_Twice_IsNoOp() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Commit(ctx))
}

// TestTrackedAggregates_SurfaceRepositoryWrites verifies aggregates written
// through the unit of work's repositories are reported for post-commit
// publication, in modification order.
func (suite *UnitOfWorkIntegrationTestSuite) TestTrackedAggregates_SurfaceRepositoryWrites() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	first := suite.createPendingOrder()
	second := suite.createPendingOrder()
	suite.Require().NoError(uow.OrderRepository().Add(ctx, first))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, second))
	suite.Require().NoError(uow.Commit(ctx))

	tracked := uow.TrackedAggregates()
	suite.Require().Len(tracked, 2)
	suite.True(first.ID().IsEqual(tracked[0].ID))
	suite.Same(first, tracked[0].Aggregate)
	suite.True(second.ID().IsEqual(tracked[1].ID))
	suite.Same(second, tracked[1].Aggregate)
}

// TestOrderAndDriverWrites_ShareOneTransaction verifies an assignment-style
// operation touching both repositories commits or rolls back as one unit.
func (suite *UnitOfWorkIntegrationTestSuite) TestOrderAndDriverWrites_ShareOneTransaction() {
	ctx := context.Background()
	dispatcher := suite.dispatcherActor()

	// Seed committed state
	testOrder := suite.createPendingOrder()
	suite.Require().NoError(testOrder.Approve(dispatcher))
	testDriver, err := driver.NewDriver(kernel.NewUUID(), "Musa Bello", "+2348098765432")
	suite.Require().NoError(err)

	seed := suite.factory.Create()
	suite.Require().NoError(seed.Begin(ctx))
	suite.Require().NoError(seed.OrderRepository().Add(ctx, testOrder))
	suite.Require().NoError(seed.DriverRepository().Add(ctx, testDriver))
	suite.Require().NoError(seed.Commit(ctx))

	// Assign inside one transaction, then roll it back
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	contact, err := order.NewDriverContact(testDriver.ID(), testDriver.Name(), testDriver.Phone())
	suite.Require().NoError(err)
	suite.Require().NoError(testOrder.AssignDriver(contact, dispatcher))
	suite.Require().NoError(testDriver.Reserve())

	suite.Require().NoError(uow.OrderRepository().Update(ctx, testOrder, order.Approved))
	suite.Require().NoError(uow.DriverRepository().Update(ctx, testDriver))
	suite.Require().NoError(uow.Rollback(ctx))

	// Neither write survives the rollback
	fresh := suite.factory.Create()
	retrievedOrder, err := fresh.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Approved, retrievedOrder.Status())
	suite.Nil(retrievedOrder.Driver())

	retrievedDriver, err := fresh.DriverRepository().Get(ctx, testDriver.ID())
	suite.Require().NoError(err)
	suite.True(retrievedDriver.IsAvailable())
}

func (suite *UnitOfWorkIntegrationTestSuite) createPendingOrder() *order.Order {
	suite.T().Helper()

	customer, err := order.NewCustomer(
		kernel.NewUUID(), "Amina Yusuf", "+2348012345678", "12 Marina Rd, Lagos",
	)
	suite.Require().NoError(err)

	cylinder, err := order.NewLineItem("cyl-12kg", "12kg Cylinder Refill", 12000, 850000)
	suite.Require().NoError(err)

	destination, err := kernel.NewGeoPoint(6.4550, 3.3841, "15 Adeola Odeku St, Victoria Island")
	suite.Require().NoError(err)

	testOrder, err := order.NewOrder(
		kernel.NewUUID(), customer, []order.LineItem{cylinder}, destination,
	)
	suite.Require().NoError(err)
	return testOrder
}

func (suite *UnitOfWorkIntegrationTestSuite) dispatcherActor() kernel.Actor {
	suite.T().Helper()
	actor, err := kernel.NewActor(kernel.NewUUID(), kernel.RoleDispatcher)
	suite.Require().NoError(err)
	return actor
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
