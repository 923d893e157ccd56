package shipmentrepo_test

import (
	"context"
	"testing"
	"time"

	"shiptrack/internal/adapters/out/postgres/shipmentrepo"
	"shiptrack/internal/core/domain/model/shipment"
	"shiptrack/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of the aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id int64, aggregate interface{}) {
	m.Called(id, aggregate)
}

// ShipmentRepositoryIntegrationTestSuite provides integration tests for
// ShipmentRepository using PostgreSQL containers.
type ShipmentRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *shipmentrepo.GormShipmentRepository
	tracker    *MockAggregateTracker
}

func (suite *ShipmentRepositoryIntegrationTestSuite) SetupSuite() {
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

	// TranslateError is required so constraint breaches surface as
	// gorm.ErrDuplicatedKey and can be mapped to errs types.
	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&shipmentrepo.ShipmentDTO{}, &shipmentrepo.ShipmentItemDTO{}))
}

func (suite *ShipmentRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(
		suite.db.Exec("TRUNCATE TABLE shipments, shipment_items RESTART IDENTITY").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = shipmentrepo.NewGormShipmentRepository(suite.db, suite.tracker)
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ShipmentRepositoryIntegrationTestSuite) newTestShipment() *shipment.Shipment {
	first, err := shipment.NewItem(3, 2)
	suite.Require().NoError(err)
	second, err := shipment.NewItem(5, 1)
	suite.Require().NoError(err)

	weight := 12.5
	s, err := shipment.NewShipment(
		"Nairobi", "Mombasa", "Jane Doe", &weight, "fragile", 7,
		[]shipment.Item{first, second},
	)
	suite.Require().NoError(err)
	return s
}

func (suite *ShipmentRepositoryIntegrationTestSuite) expectTracking() {
	suite.tracker.On("TrackAggregate", mock.AnythingOfType("int64"), mock.Anything).Maybe()
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestAdd_PersistsShipmentWithItems() {
	ctx := context.Background()
	suite.expectTracking()

	created, err := suite.repository.Add(ctx, suite.newTestShipment())
	suite.Require().NoError(err)

	suite.Positive(created.ID())
	suite.False(created.TrackingNumber().IsZero())
	suite.Len(created.Items(), 2)
	for _, item := range created.Items() {
		suite.Positive(item.ID())
	}

	retrieved, err := suite.repository.Get(ctx, created.ID())
	suite.Require().NoError(err)
	suite.Equal(created.TrackingNumber().String(), retrieved.TrackingNumber().String())
	suite.Equal("Nairobi", retrieved.Origin())
	suite.Equal(shipment.Pending, retrieved.Status())
	suite.Equal(shipment.Unpaid, retrieved.PaymentStatus())
	suite.Require().NotNil(retrieved.Weight())
	suite.InDelta(12.5, *retrieved.Weight(), 0.001)
	suite.Len(retrieved.Items(), 2)
	suite.Equal(int64(3), retrieved.Items()[0].ProductID())
	suite.Equal(2, retrieved.Items()[0].Quantity())
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestAdd_DuplicateTrackingNumber_ReturnsIntegrityViolation() {
	ctx := context.Background()
	suite.expectTracking()

	aggregate := suite.newTestShipment()
	trackingNumber := aggregate.TrackingNumber().String()

	// Seed a row already holding this tracking number.
	seeded := shipmentrepo.ShipmentDTO{
		TrackingNumber: &trackingNumber,
		Origin:         "Kisumu",
		Destination:    "Eldoret",
		Recipient:      "John Doe",
		Status:         int(shipment.Pending),
		PaymentStatus:  int(shipment.Unpaid),
		CustomerID:     8,
		CreatedAt:      time.Now().UTC(),
	}
	suite.Require().NoError(suite.db.Create(&seeded).Error)

	_, err := suite.repository.Add(ctx, aggregate)
	suite.Require().Error(err)

	var integrityErr *errs.IntegrityViolationError
	suite.Require().ErrorAs(err, &integrityErr)
	suite.Equal("tracking_number", integrityErr.ParamName)
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestGet_NonExistentShipment_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.Get(ctx, 999)
	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestUpdate_PersistsMutableFields() {
	ctx := context.Background()
	suite.expectTracking()

	created, err := suite.repository.Add(ctx, suite.newTestShipment())
	suite.Require().NoError(err)

	suite.Require().NoError(created.ChangePaymentStatus(shipment.Paid))
	suite.Require().NoError(created.ChangeStatus(shipment.Delivered))
	suite.Require().NoError(created.AssignDriver(30))
	suite.Require().NoError(suite.repository.Update(ctx, created))

	retrieved, err := suite.repository.Get(ctx, created.ID())
	suite.Require().NoError(err)
	suite.Equal(shipment.Delivered, retrieved.Status())
	suite.Equal(shipment.Paid, retrieved.PaymentStatus())
	suite.Require().NotNil(retrieved.DriverID())
	suite.Equal(int64(30), *retrieved.DriverID())
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestUpdate_NonExistentShipment_ReturnsNotFoundError() {
	ctx := context.Background()

	item, err := shipment.RestoreItem(1, 3, 2)
	suite.Require().NoError(err)
	missing, err := shipment.RestoreShipment(
		999, shipment.RestoreTrackingNumber("ZZ99XX88"),
		"Nairobi", "Mombasa", "Jane Doe", nil,
		shipment.Pending, shipment.Unpaid, "",
		7, nil, time.Now().UTC(), []shipment.Item{item},
	)
	suite.Require().NoError(err)

	err = suite.repository.Update(ctx, missing)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestDelete_RemovesShipmentAndItems() {
	ctx := context.Background()
	suite.expectTracking()

	created, err := suite.repository.Add(ctx, suite.newTestShipment())
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repository.Delete(ctx, created.ID()))

	suite.assertCount(&shipmentrepo.ShipmentDTO{}, 0)
	suite.assertCount(&shipmentrepo.ShipmentItemDTO{}, 0)
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestDelete_NonExistentShipment_ReturnsNotFoundError() {
	ctx := context.Background()

	err := suite.repository.Delete(ctx, 999)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestGetAllWithoutTrackingNumber_ReturnsOnlyLegacyRows() {
	ctx := context.Background()
	suite.expectTracking()

	// One modern shipment with a tracking number.
	_, err := suite.repository.Add(ctx, suite.newTestShipment())
	suite.Require().NoError(err)

	// Two legacy rows with NULL and one migrated row carrying an empty
	// string; both forms count as missing.
	emptyTrackingNumber := ""
	for _, legacy := range []shipmentrepo.ShipmentDTO{
		{Recipient: "Legacy One"},
		{Recipient: "Legacy Two"},
		{Recipient: "Legacy Three", TrackingNumber: &emptyTrackingNumber},
	} {
		legacy.Origin = "Kisumu"
		legacy.Destination = "Eldoret"
		legacy.Status = int(shipment.Pending)
		legacy.PaymentStatus = int(shipment.Unpaid)
		legacy.CustomerID = 8
		legacy.CreatedAt = time.Now().UTC()
		legacy.Items = []shipmentrepo.ShipmentItemDTO{{ProductID: 3, Quantity: 1}}
		suite.Require().NoError(suite.db.Create(&legacy).Error)
	}

	legacy, err := suite.repository.GetAllWithoutTrackingNumber(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(legacy, 3)
	suite.Equal("Legacy One", legacy[0].Recipient())
	suite.Equal("Legacy Two", legacy[1].Recipient())
	suite.Equal("Legacy Three", legacy[2].Recipient())
	for _, s := range legacy {
		suite.True(s.TrackingNumber().IsZero())
		suite.Len(s.Items(), 1)
	}
}

func (suite *ShipmentRepositoryIntegrationTestSuite) assertCount(model any, expected int64) {
	var count int64
	suite.Require().NoError(suite.db.Model(model).Count(&count).Error)
	suite.Equal(expected, count)
}

func TestShipmentRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ShipmentRepositoryIntegrationTestSuite))
}
