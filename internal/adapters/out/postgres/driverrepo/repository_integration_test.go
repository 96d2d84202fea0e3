package driverrepo_test

import (
	"context"
	"testing"
	"time"

	"gasline/internal/adapters/out/postgres/driverrepo"
	"gasline/internal/core/domain/model/driver"
	"gasline/internal/core/domain/model/kernel"
	"gasline/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// DriverRepositoryIntegrationTestSuite provides integration tests for the
// driver roster repository backed by the shared user table.
type DriverRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *driverrepo.GormDriverRepository
}

func (suite *DriverRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&driverrepo.UserDTO{}))
}

func (suite *DriverRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE users").Error)
	suite.repository = driverrepo.NewGormDriverRepository(suite.db)
}

func (suite *DriverRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *DriverRepositoryIntegrationTestSuite) TestAdd_ValidDriver_Success() {
	ctx := context.Background()

	testDriver := suite.createDriver("Musa Bello", "+2348098765432")

	err := suite.repository.Add(ctx, testDriver)
	suite.Require().NoError(err)

	retrieved, err := suite.repository.Get(ctx, testDriver.ID())
	suite.Require().NoError(err)
	suite.True(testDriver.ID().IsEqual(retrieved.ID()))
	suite.Equal("Musa Bello", retrieved.Name())
	suite.Equal("+2348098765432", retrieved.Phone())
	suite.True(retrieved.IsAvailable())
}

func (suite *DriverRepositoryIntegrationTestSuite) TestGet_NonDriverUser_ReturnsNotFoundError() {
	ctx := context.Background()

	// A user row with a different role must never surface as a driver
	dispatcherID := kernel.NewUUID()
	suite.Require().NoError(suite.db.Create(&driverrepo.UserDTO{
		ID:    dispatcherID.Bytes(),
		Role:  "dispatcher",
		Name:  "Ngozi Eze",
		Phone: "+2348011111111",
	}).Error)

	retrieved, err := suite.repository.Get(ctx, dispatcherID)
	suite.Nil(retrieved)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *DriverRepositoryIntegrationTestSuite) TestGet_NonExistentDriver_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Nil(retrieved)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *DriverRepositoryIntegrationTestSuite) TestUpdate_PersistsAvailability() {
	ctx := context.Background()

	testDriver := suite.createDriver("Musa Bello", "+2348098765432")
	suite.Require().NoError(suite.repository.Add(ctx, testDriver))

	suite.Require().NoError(testDriver.Reserve())
	suite.Require().NoError(suite.repository.Update(ctx, testDriver))

	retrieved, err := suite.repository.Get(ctx, testDriver.ID())
	suite.Require().NoError(err)
	suite.False(retrieved.IsAvailable())

	retrieved.Release()
	suite.Require().NoError(suite.repository.Update(ctx, retrieved))

	retrieved, err = suite.repository.Get(ctx, testDriver.ID())
	suite.Require().NoError(err)
	suite.True(retrieved.IsAvailable())
}

func (suite *DriverRepositoryIntegrationTestSuite) TestUpdate_NonExistentDriver_ReturnsNotFoundError() {
	ctx := context.Background()

	missing := suite.createDriver("Musa Bello", "+2348098765432")

	err := suite.repository.Update(ctx, missing)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *DriverRepositoryIntegrationTestSuite) TestGetAllAvailable_FiltersAndSortsByName() {
	ctx := context.Background()

	musa := suite.createDriver("Musa Bello", "+2348098765432")
	ada := suite.createDriver("Ada Obi", "+2348022222222")
	busy := suite.createDriver("Chidi Okafor", "+2348033333333")
	suite.Require().NoError(busy.Reserve())

	suite.Require().NoError(suite.repository.Add(ctx, musa))
	suite.Require().NoError(suite.repository.Add(ctx, ada))
	suite.Require().NoError(suite.repository.Add(ctx, busy))

	// Non-driver user row must not appear either
	suite.Require().NoError(suite.db.Create(&driverrepo.UserDTO{
		ID:        kernel.NewUUID().Bytes(),
		Role:      "customer",
		Name:      "Amina Yusuf",
		Phone:     "+2348012345678",
		Available: true,
	}).Error)

	available, err := suite.repository.GetAllAvailable(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(available, 2)
	suite.Equal("Ada Obi", available[0].Name())
	suite.Equal("Musa Bello", available[1].Name())
}

func (suite *DriverRepositoryIntegrationTestSuite) TestGetAllAvailable_EmptyRoster_ReturnsEmptySlice() {
	ctx := context.Background()

	available, err := suite.repository.GetAllAvailable(ctx)
	suite.Require().NoError(err)
	suite.Empty(available)
}

func (suite *DriverRepositoryIntegrationTestSuite) createDriver(name, phone string) *driver.Driver {
	suite.T().Helper()
	testDriver, err := driver.NewDriver(kernel.NewUUID(), name, phone)
	suite.Require().NoError(err)
	return testDriver
}

func TestDriverRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(DriverRepositoryIntegrationTestSuite))
}
