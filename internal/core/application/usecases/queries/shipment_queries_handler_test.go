package queries_test

import (
	"context"
	"testing"
	"time"

	"shiptrack/internal/adapters/out/postgres/shipmentrepo"
	"shiptrack/internal/core/application/usecases/queries"
	"shiptrack/internal/core/domain/model/account"
	"shiptrack/internal/core/domain/services"
	"shiptrack/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// ShipmentQueriesTestSuite exercises all shipment query handlers against one
// PostgreSQL container with a shared seed data set.
type ShipmentQueriesTestSuite struct {
	suite.Suite
	container      *postgres.PostgresContainer
	db             *gorm.DB
	getHandler     queries.GetShipmentByIDQueryHandler
	trackHandler   queries.GetShipmentByTrackingNumberQueryHandler
	listHandler    queries.ListShipmentsQueryHandler
	customer       account.Principal
	otherCustomer  account.Principal
	driver         account.Principal
	admin          account.Principal
}

func (suite *ShipmentQueriesTestSuite) SetupSuite() {
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

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&shipmentrepo.ShipmentDTO{}, &shipmentrepo.ShipmentItemDTO{})
	suite.Require().NoError(err)

	policy := services.NewAccessPolicy()
	suite.getHandler = queries.NewGetShipmentByIDQueryHandler(db, policy)
	suite.trackHandler = queries.NewGetShipmentByTrackingNumberQueryHandler(db)
	suite.listHandler = queries.NewListShipmentsQueryHandler(db, policy)

	suite.customer = suite.principal(7, account.Customer)
	suite.otherCustomer = suite.principal(8, account.Customer)
	suite.driver = suite.principal(30, account.Driver)
	suite.admin = suite.principal(1, account.Admin)

	suite.seed()
}

func (suite *ShipmentQueriesTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ShipmentQueriesTestSuite) principal(userID int64, role account.Role) account.Principal {
	p, err := account.NewPrincipal(userID, role)
	suite.Require().NoError(err)
	return p
}

// seed inserts three shipments: two for customer 7 (one driven by driver 30)
// and one for customer 8, plus one legacy row without a tracking number.
func (suite *ShipmentQueriesTestSuite) seed() {
	driverID := int64(30)
	otherDriverID := int64(31)
	weight := 12.5
	tn1, tn2, tn3 := "AAAA1111", "BBBB2222", "CCCC3333"

	dtos := []shipmentrepo.ShipmentDTO{
		{
			ID: 1, TrackingNumber: &tn1, Origin: "Nairobi", Destination: "Mombasa",
			Recipient: "Jane Doe", Weight: &weight, Status: 2, PaymentStatus: 1,
			Notes: "fragile", CustomerID: 7, DriverID: &driverID,
			CreatedAt: time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC),
			Items: []shipmentrepo.ShipmentItemDTO{
				{ShipmentID: 1, ProductID: 3, Quantity: 2},
				{ShipmentID: 1, ProductID: 5, Quantity: 1},
			},
		},
		{
			ID: 2, TrackingNumber: &tn2, Origin: "Kisumu", Destination: "Nakuru",
			Recipient: "John Doe", Status: 1, PaymentStatus: 1,
			CustomerID: 7,
			CreatedAt:  time.Date(2025, 3, 2, 10, 0, 0, 0, time.UTC),
			Items: []shipmentrepo.ShipmentItemDTO{
				{ShipmentID: 2, ProductID: 3, Quantity: 1},
			},
		},
		{
			ID: 3, TrackingNumber: &tn3, Origin: "Eldoret", Destination: "Thika",
			Recipient: "Mary Major", Status: 3, PaymentStatus: 2,
			CustomerID: 8, DriverID: &otherDriverID,
			CreatedAt: time.Date(2025, 3, 3, 10, 0, 0, 0, time.UTC),
			Items: []shipmentrepo.ShipmentItemDTO{
				{ShipmentID: 3, ProductID: 5, Quantity: 4},
			},
		},
		{
			ID: 4, Origin: "Garissa", Destination: "Lamu",
			Recipient: "Legacy Row", Status: 1, PaymentStatus: 1,
			CustomerID: 8,
			CreatedAt:  time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC),
			Items: []shipmentrepo.ShipmentItemDTO{
				{ShipmentID: 4, ProductID: 3, Quantity: 1},
			},
		},
	}
	suite.Require().NoError(suite.db.Create(&dtos).Error)
}

func (suite *ShipmentQueriesTestSuite) TestList_AdminSeesEverythingNewestFirst() {
	query, err := queries.NewListShipmentsQuery(suite.admin)
	suite.Require().NoError(err)

	shipments, err := suite.listHandler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Require().Len(shipments, 4)

	ids := []int64{shipments[0].ID, shipments[1].ID, shipments[2].ID, shipments[3].ID}
	suite.Equal([]int64{4, 3, 2, 1}, ids)
}

func (suite *ShipmentQueriesTestSuite) TestList_CustomerSeesOnlyOwnShipments() {
	query, err := queries.NewListShipmentsQuery(suite.customer)
	suite.Require().NoError(err)

	shipments, err := suite.listHandler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Require().Len(shipments, 2)
	suite.Equal(int64(2), shipments[0].ID)
	suite.Equal(int64(1), shipments[1].ID)
	for _, s := range shipments {
		suite.Equal(int64(7), s.CustomerID)
	}
}

func (suite *ShipmentQueriesTestSuite) TestList_DriverSeesOnlyAssignedShipments() {
	query, err := queries.NewListShipmentsQuery(suite.driver)
	suite.Require().NoError(err)

	shipments, err := suite.listHandler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Require().Len(shipments, 1)
	suite.Equal(int64(1), shipments[0].ID)
}

func (suite *ShipmentQueriesTestSuite) TestList_AttachesItemsAndWireStrings() {
	query, err := queries.NewListShipmentsQuery(suite.driver)
	suite.Require().NoError(err)

	shipments, err := suite.listHandler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Require().Len(shipments, 1)

	resp := shipments[0]
	suite.Equal("AAAA1111", resp.TrackingNumber)
	suite.Equal("In Transit", resp.Status)
	suite.Equal("Unpaid", resp.PaymentStatus)
	suite.Require().NotNil(resp.Weight)
	suite.InDelta(12.5, *resp.Weight, 0.001)
	suite.Require().Len(resp.Items, 2)
	suite.Equal(int64(3), resp.Items[0].ProductID)
	suite.Equal(2, resp.Items[0].Quantity)
}

func (suite *ShipmentQueriesTestSuite) TestGetByID_OwnerReadsOwnShipment() {
	query, err := queries.NewGetShipmentByIDQuery(suite.customer, 1)
	suite.Require().NoError(err)

	resp, err := suite.getHandler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Equal(int64(1), resp.ID)
	suite.Equal("Jane Doe", resp.Recipient)
}

func (suite *ShipmentQueriesTestSuite) TestGetByID_ForeignCustomerIsForbidden() {
	query, err := queries.NewGetShipmentByIDQuery(suite.otherCustomer, 1)
	suite.Require().NoError(err)

	_, err = suite.getHandler.Handle(context.Background(), query)
	suite.Require().ErrorIs(err, errs.ErrAccessForbidden)
}

func (suite *ShipmentQueriesTestSuite) TestGetByID_DriverReadsAnyShipment() {
	query, err := queries.NewGetShipmentByIDQuery(suite.driver, 3)
	suite.Require().NoError(err)

	resp, err := suite.getHandler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Equal(int64(3), resp.ID)
}

func (suite *ShipmentQueriesTestSuite) TestGetByID_NonExistentShipment() {
	query, err := queries.NewGetShipmentByIDQuery(suite.admin, 999)
	suite.Require().NoError(err)

	_, err = suite.getHandler.Handle(context.Background(), query)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ShipmentQueriesTestSuite) TestTrack_NormalizesInput() {
	query, err := queries.NewGetShipmentByTrackingNumberQuery("bbbb2222")
	suite.Require().NoError(err)

	resp, err := suite.trackHandler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Equal(int64(2), resp.ID)
	suite.Equal("BBBB2222", resp.TrackingNumber)
}

func (suite *ShipmentQueriesTestSuite) TestTrack_UnknownTrackingNumber() {
	query, err := queries.NewGetShipmentByTrackingNumberQuery("ZZZZ9999")
	suite.Require().NoError(err)

	_, err = suite.trackHandler.Handle(context.Background(), query)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ShipmentQueriesTestSuite) TestTrack_MalformedTrackingNumberIsRejected() {
	_, err := queries.NewGetShipmentByTrackingNumberQuery("nope")
	suite.Require().ErrorIs(err, errs.ErrValueIsInvalid)
}

func TestShipmentQueriesTestSuite(t *testing.T) {
	suite.Run(t, new(ShipmentQueriesTestSuite))
}
