package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	lifelinkhttp "lifelink/internal/adapters/in/http"
	"lifelink/internal/adapters/out/postgres/listingrepo"
	"lifelink/internal/core/application/usecases/commands"
	"lifelink/internal/core/application/usecases/queries"
	"lifelink/internal/core/domain/model/kernel"
	"lifelink/internal/core/domain/model/listing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type noopTracker struct{}

func (noopTracker) TrackAggregate(_ kernel.UUID, _ any) {}

// ServerIntegrationTestSuite drives the catalog and form routes through a
// real echo router backed by PostgreSQL, covering query-parameter wiring
// and the availability check on the transport request form.
type ServerIntegrationTestSuite struct {
	suite.Suite
	container   *postgres.PostgresContainer
	db          *gorm.DB
	echo        *echo.Echo
	listingRepo *listingrepo.GormListingRepository
}

func (suite *ServerIntegrationTestSuite) SetupSuite() {
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

	db, err := gorm.Open(gorm_postgres.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&listingrepo.ListingDTO{}))

	suite.listingRepo = listingrepo.NewGormListingRepository(db, noopTracker{})

	// Only the catalog query is live; the command handlers are not
	// exercised by these routes.
	server := lifelinkhttp.NewServer(
		commands.CreateTransportRequestCommandHandler{},
		commands.CreateEmergencyRequestCommandHandler{},
		commands.ClaimOrderCommandHandler{},
		commands.UpdateOrderStatusCommandHandler{},
		commands.RegisterHospitalCommandHandler{},
		commands.CreateListingCommandHandler{},
		commands.ApplyDriverCommandHandler{},
		queries.NewListListingsQueryHandler(db),
		queries.GetOrderDetailsQueryHandler{},
		queries.GetHospitalBoardQueryHandler{},
		queries.GetDriverPortalQueryHandler{},
		queries.GetAllOrgansQueryHandler{},
	)

	suite.echo = echo.New()
	server.RegisterRoutes(suite.echo)
}

func (suite *ServerIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE organ_listings").Error)
}

func (suite *ServerIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ServerIntegrationTestSuite) addListing(organType string) *listing.Listing {
	l, err := listing.NewListing(
		kernel.NewUUID(), kernel.NewUUID(), "Houston Methodist",
		organType, "O+", 34, 72.5,
		kernel.PriorityUrgent, listing.Available, "Houston", "TX",
		time.Now().UTC())
	suite.Require().NoError(err)
	suite.Require().NoError(suite.listingRepo.Add(context.Background(), l))
	return l
}

func (suite *ServerIntegrationTestSuite) get(target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	suite.echo.ServeHTTP(rec, req)
	return rec
}

func (suite *ServerIntegrationTestSuite) TestOrganListings_TypeParamFiltersCatalog() {
	suite.addListing("Kidney")
	suite.addListing("Heart")

	rec := suite.get("/organ-listings?type=Kidney")
	suite.Require().Equal(http.StatusOK, rec.Code)

	var rows []struct {
		OrganType string
	}
	suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &rows))
	suite.Require().Len(rows, 1)
	suite.Equal("Kidney", rows[0].OrganType)
}

func (suite *ServerIntegrationTestSuite) TestOrganListings_NoFilterReturnsAll() {
	suite.addListing("Kidney")
	suite.addListing("Heart")

	rec := suite.get("/organ-listings")
	suite.Require().Equal(http.StatusOK, rec.Code)

	var rows []struct {
		OrganType string
	}
	suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &rows))
	suite.Len(rows, 2)
}

func (suite *ServerIntegrationTestSuite) TestRequestTransportForm_AvailableListing() {
	l := suite.addListing("Kidney")

	rec := suite.get("/request-transport/" + l.ID().String())
	suite.Equal(http.StatusOK, rec.Code)
}

func (suite *ServerIntegrationTestSuite) TestRequestTransportForm_UnavailableListingRejected() {
	l := suite.addListing("Kidney")
	suite.Require().NoError(l.Reserve())
	suite.Require().NoError(suite.listingRepo.Update(context.Background(), l))

	rec := suite.get("/request-transport/" + l.ID().String())
	suite.Equal(http.StatusBadRequest, rec.Code)
	suite.Equal("This organ listing is no longer available", rec.Body.String())
}

func (suite *ServerIntegrationTestSuite) TestRequestTransportForm_MissingListing() {
	rec := suite.get("/request-transport/" + kernel.NewUUID().String())
	suite.Equal(http.StatusNotFound, rec.Code)
}

func TestServerIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ServerIntegrationTestSuite))
}
