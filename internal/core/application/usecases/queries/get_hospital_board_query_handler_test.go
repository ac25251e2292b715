package queries_test

import (
	"context"
	"testing"
	"time"

	"lifelink/internal/adapters/out/postgres/hospitalrepo"
	"lifelink/internal/adapters/out/postgres/listingrepo"
	"lifelink/internal/adapters/out/postgres/orderrepo"
	"lifelink/internal/core/application/usecases/queries"
	"lifelink/internal/core/domain/model/hospital"
	"lifelink/internal/core/domain/model/kernel"
	"lifelink/internal/core/domain/model/listing"
	"lifelink/internal/core/domain/model/order"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetHospitalBoardQueryHandlerTestSuite struct {
	suite.Suite
	container    *postgres.PostgresContainer
	db           *gorm.DB
	handler      queries.GetHospitalBoardQueryHandler
	hospitalRepo *hospitalrepo.GormHospitalRepository
	listingRepo  *listingrepo.GormListingRepository
	orderRepo    *orderrepo.GormTransportRequestRepository
}

func (suite *GetHospitalBoardQueryHandlerTestSuite) SetupSuite() {
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

	err = db.AutoMigrate(
		&hospitalrepo.HospitalDTO{},
		&listingrepo.ListingDTO{},
		&orderrepo.TransportRequestDTO{},
	)
	suite.Require().NoError(err)

	suite.handler = queries.NewGetHospitalBoardQueryHandler(db)
	suite.hospitalRepo = hospitalrepo.NewGormHospitalRepository(db, &mockAggregateTracker{})
	suite.listingRepo = listingrepo.NewGormListingRepository(db, &mockAggregateTracker{})
	suite.orderRepo = orderrepo.NewGormTransportRequestRepository(db, &mockAggregateTracker{})
}

func (suite *GetHospitalBoardQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetHospitalBoardQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE hospitals, organ_listings, transport_requests").Error
	suite.Require().NoError(err)
}

func (suite *GetHospitalBoardQueryHandlerTestSuite) addHospital(name, city string) *hospital.Hospital {
	h, err := hospital.NewHospital(kernel.NewUUID(), name, city, "TX", "transplant@example.org")
	suite.Require().NoError(err)
	err = suite.hospitalRepo.Add(context.Background(), h)
	suite.Require().NoError(err)
	return h
}

func (suite *GetHospitalBoardQueryHandlerTestSuite) addListingFor(h *hospital.Hospital) *listing.Listing {
	l, err := listing.NewListing(kernel.NewUUID(), h.ID(), h.Name(),
		"Kidney", "O+", 40, 70, kernel.PriorityNormal, listing.Available,
		h.City(), h.State(), time.Now().UTC())
	suite.Require().NoError(err)
	err = suite.listingRepo.Add(context.Background(), l)
	suite.Require().NoError(err)
	return l
}

// addRequestAgainst places a transport request by requester against l.
func (suite *GetHospitalBoardQueryHandlerTestSuite) addRequestAgainst(
	requester string, l *listing.Listing,
) *order.TransportRequest {
	tr, err := order.NewTransportRequest(kernel.NewUUID(), l.ID(), requester,
		l.OrganType(), l.OriginLabel(), requester+" transplant wing", "713-555-0100", "",
		l.Priority(), time.Now().UTC())
	suite.Require().NoError(err)
	err = suite.orderRepo.Add(context.Background(), tr)
	suite.Require().NoError(err)
	return tr
}

func (suite *GetHospitalBoardQueryHandlerTestSuite) TestHandle_NoHospitals_ReturnsEmptyBoard() {
	query, err := queries.NewGetHospitalBoardQuery(nil)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Empty(result.Hospitals)
	suite.Nil(result.Selected)
	suite.Empty(result.Outbound)
	suite.Empty(result.Inbound)
	suite.Empty(result.Listings)
}

func (suite *GetHospitalBoardQueryHandlerTestSuite) TestHandle_DirectoryIsSortedByName() {
	methodist := suite.addHospital("Houston Methodist", "Houston")
	baylor := suite.addHospital("Baylor St. Luke's", "Houston")
	university := suite.addHospital("University Hospital", "San Antonio")

	query, err := queries.NewGetHospitalBoardQuery(nil)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result.Hospitals, 3)
	suite.Equal(baylor.ID(), result.Hospitals[0].ID)
	suite.Equal(methodist.ID(), result.Hospitals[1].ID)
	suite.Equal(university.ID(), result.Hospitals[2].ID)

	// No explicit selection falls back to the first hospital by name.
	suite.Require().NotNil(result.Selected)
	suite.Equal(baylor.ID(), result.Selected.ID)
	suite.Equal("Baylor St. Luke's", result.Selected.Name)
}

func (suite *GetHospitalBoardQueryHandlerTestSuite) TestHandle_SelectsRequestedHospital() {
	suite.addHospital("Baylor St. Luke's", "Houston")
	methodist := suite.addHospital("Houston Methodist", "Houston")

	methodistID := methodist.ID()
	query, err := queries.NewGetHospitalBoardQuery(&methodistID)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().NotNil(result.Selected)
	suite.Equal(methodist.ID(), result.Selected.ID)
}

func (suite *GetHospitalBoardQueryHandlerTestSuite) TestHandle_SeparatesOutboundAndInbound() {
	methodist := suite.addHospital("Houston Methodist", "Houston")
	dallas := suite.addHospital("Medical City Dallas", "Dallas")

	methodistListing := suite.addListingFor(methodist)
	dallasListing := suite.addListingFor(dallas)

	// Methodist requests an organ offered by Dallas; Dallas requests one
	// offered by Methodist.
	outbound := suite.addRequestAgainst("Houston Methodist", dallasListing)
	inbound := suite.addRequestAgainst("Medical City Dallas", methodistListing)

	methodistID := methodist.ID()
	query, err := queries.NewGetHospitalBoardQuery(&methodistID)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)

	suite.Require().Len(result.Outbound, 1)
	suite.Equal(outbound.ID(), result.Outbound[0].ID)
	suite.Equal("Medical City Dallas", result.Outbound[0].SourceHospital)

	suite.Require().Len(result.Inbound, 1)
	suite.Equal(inbound.ID(), result.Inbound[0].ID)
	suite.Equal("Medical City Dallas", result.Inbound[0].Hospital)

	// Only the hospital's own listings appear on its board.
	suite.Require().Len(result.Listings, 1)
	suite.Equal(methodistListing.ID(), result.Listings[0].ID)
}

func (suite *GetHospitalBoardQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetHospitalBoardQuery{}

	_, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Contains(err.Error(), "must be created via NewGetHospitalBoardQuery constructor")
}

func TestGetHospitalBoardQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetHospitalBoardQueryHandlerTestSuite))
}
