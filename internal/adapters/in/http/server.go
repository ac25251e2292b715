// Package http exposes the web surface: hospital-facing forms, the driver
// portal, and the public organ catalog. Views are JSON; presentation is
// rendered by an external front end. Mutating routes follow the
// post-then-redirect flow, and domain failures map onto plain-text 400/404
// responses.
package http

import (
	"errors"
	"net/http"
	"strconv"

	"lifelink/internal/core/application/usecases/commands"
	"lifelink/internal/core/application/usecases/queries"
	"lifelink/internal/core/domain/model/kernel"
	"lifelink/internal/core/domain/model/listing"
	"lifelink/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createRequestHandler   commands.CreateTransportRequestCommandHandler
	createEmergencyHandler commands.CreateEmergencyRequestCommandHandler
	claimOrderHandler      commands.ClaimOrderCommandHandler
	updateStatusHandler    commands.UpdateOrderStatusCommandHandler
	registerHospital       commands.RegisterHospitalCommandHandler
	createListingHandler   commands.CreateListingCommandHandler
	applyDriverHandler     commands.ApplyDriverCommandHandler

	// Query handlers
	listListingsHandler  queries.ListListingsQueryHandler
	orderDetailsHandler  queries.GetOrderDetailsQueryHandler
	hospitalBoardHandler queries.GetHospitalBoardQueryHandler
	driverPortalHandler  queries.GetDriverPortalQueryHandler
	getAllOrgansHandler  queries.GetAllOrgansQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createRequestHandler commands.CreateTransportRequestCommandHandler,
	createEmergencyHandler commands.CreateEmergencyRequestCommandHandler,
	claimOrderHandler commands.ClaimOrderCommandHandler,
	updateStatusHandler commands.UpdateOrderStatusCommandHandler,
	registerHospital commands.RegisterHospitalCommandHandler,
	createListingHandler commands.CreateListingCommandHandler,
	applyDriverHandler commands.ApplyDriverCommandHandler,
	listListingsHandler queries.ListListingsQueryHandler,
	orderDetailsHandler queries.GetOrderDetailsQueryHandler,
	hospitalBoardHandler queries.GetHospitalBoardQueryHandler,
	driverPortalHandler queries.GetDriverPortalQueryHandler,
	getAllOrgansHandler queries.GetAllOrgansQueryHandler,
) *Server {
	return &Server{
		createRequestHandler:   createRequestHandler,
		createEmergencyHandler: createEmergencyHandler,
		claimOrderHandler:      claimOrderHandler,
		updateStatusHandler:    updateStatusHandler,
		registerHospital:       registerHospital,
		createListingHandler:   createListingHandler,
		applyDriverHandler:     applyDriverHandler,
		listListingsHandler:    listListingsHandler,
		orderDetailsHandler:    orderDetailsHandler,
		hospitalBoardHandler:   hospitalBoardHandler,
		driverPortalHandler:    driverPortalHandler,
		getAllOrgansHandler:    getAllOrgansHandler,
	}
}

// RegisterRoutes attaches every route to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/", s.Home)
	e.GET("/health", s.Health)
	e.GET("/contact", s.Contact)
	e.GET("/reports", s.Reports)

	e.GET("/organ-listings", s.OrganListings)
	e.GET("/request-transport/:listing_id", s.RequestTransportForm)
	e.POST("/request-transport/:listing_id", s.RequestTransport)
	e.GET("/order-confirmation/:order_id", s.OrderConfirmation)
	e.GET("/emergency-transport", s.EmergencyTransportForm)
	e.POST("/emergency-transport", s.EmergencyTransport)

	e.GET("/for_hospitals", s.HospitalBoard)
	e.GET("/hospital-registration", s.HospitalRegistrationForm)
	e.POST("/hospital-registration", s.HospitalRegistration)
	e.GET("/hospital-login", s.HospitalLoginForm)
	e.POST("/hospital-login", s.HospitalLogin)
	e.GET("/new-listing", s.NewListingForm)
	e.POST("/new-listing", s.NewListing)

	e.GET("/driver-portal", s.DriverPortal)
	e.POST("/apply-driver", s.ApplyDriver)
	e.POST("/driver-claim/:order_id", s.DriverClaim)
	e.POST("/driver-update-status/:order_id", s.DriverUpdateStatus)

	e.GET("/api/organs", s.APIOrgans)
}

// Home handles GET / - static landing payload.
func (s *Server) Home(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{
		"service": "LifeLink",
		"tagline": "Organ transport coordination for hospitals and drivers",
	})
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// Contact handles GET /contact - static info page.
func (s *Server) Contact(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{
		"email": "dispatch@lifelink.example",
		"phone": "1-800-555-0199",
	})
}

// Reports handles GET /reports - static info page.
func (s *Server) Reports(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{
		"page": "reports",
	})
}

// OrganListings handles GET /organ-listings - the filterable public catalog.
func (s *Server) OrganListings(ctx echo.Context) error {
	query := queries.NewListListingsQuery(
		ctx.QueryParam("q"),
		ctx.QueryParam("type"),
		ctx.QueryParam("availability"),
	)

	listings, err := s.listListingsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, listings)
}

// RequestTransportForm handles GET /request-transport/:listing_id - the
// form view, carrying the listing the request would consume.
func (s *Server) RequestTransportForm(ctx echo.Context) error {
	listingID, err := kernel.UUIDFromString(ctx.Param("listing_id"))
	if err != nil {
		return ctx.String(http.StatusBadRequest, "Invalid listing id")
	}

	listings, err := s.listListingsHandler.Handle(ctx.Request().Context(),
		queries.NewListListingsQuery("", "", ""))
	if err != nil {
		return respondError(ctx, err)
	}

	for _, l := range listings {
		if l.ID.IsEqual(listingID) {
			if l.Availability != listing.Available.String() {
				return ctx.String(http.StatusBadRequest, "This organ listing is no longer available")
			}
			return ctx.JSON(http.StatusOK, l)
		}
	}
	return ctx.String(http.StatusNotFound, "Listing not found")
}

// RequestTransport handles POST /request-transport/:listing_id - places a
// transport request and consumes the listing.
func (s *Server) RequestTransport(ctx echo.Context) error {
	listingID, err := kernel.UUIDFromString(ctx.Param("listing_id"))
	if err != nil {
		return ctx.String(http.StatusBadRequest, "Invalid listing id")
	}
	hospitalID, err := kernel.UUIDFromString(ctx.FormValue("hospital_id"))
	if err != nil {
		return ctx.String(http.StatusBadRequest, "Invalid hospital id")
	}

	requestID := kernel.NewUUID()
	cmd, err := commands.NewCreateTransportRequestCommand(
		requestID,
		listingID,
		hospitalID,
		ctx.FormValue("destination"),
		ctx.FormValue("contact_phone"),
		ctx.FormValue("notes"),
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.createRequestHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.Redirect(http.StatusFound, "/order-confirmation/"+requestID.String())
}

// OrderConfirmation handles GET /order-confirmation/:order_id.
func (s *Server) OrderConfirmation(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("order_id"))
	if err != nil {
		return ctx.String(http.StatusBadRequest, "Invalid order id")
	}

	query, err := queries.NewGetOrderDetailsQuery(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	details, err := s.orderDetailsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, details)
}

// EmergencyTransportForm handles GET /emergency-transport.
func (s *Server) EmergencyTransportForm(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{
		"form": "emergency-transport",
	})
}

// EmergencyTransport handles POST /emergency-transport - places an ad-hoc
// Emergency-priority request with no listing linkage.
func (s *Server) EmergencyTransport(ctx echo.Context) error {
	requestID := kernel.NewUUID()
	cmd, err := commands.NewCreateEmergencyRequestCommand(
		requestID,
		ctx.FormValue("hospital"),
		ctx.FormValue("organ_type"),
		ctx.FormValue("origin"),
		ctx.FormValue("destination"),
		ctx.FormValue("contact_phone"),
		ctx.FormValue("notes"),
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.createEmergencyHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.Redirect(http.StatusFound, "/order-confirmation/"+requestID.String())
}

// HospitalBoard handles GET /for_hospitals - the hospital dashboard.
// An optional hospital_id query parameter selects the hospital; otherwise
// the first hospital by name is shown.
func (s *Server) HospitalBoard(ctx echo.Context) error {
	var selected *kernel.UUID
	if raw := ctx.QueryParam("hospital_id"); raw != "" {
		id, err := kernel.UUIDFromString(raw)
		if err != nil {
			return ctx.String(http.StatusBadRequest, "Invalid hospital id")
		}
		selected = &id
	}

	query, err := queries.NewGetHospitalBoardQuery(selected)
	if err != nil {
		return respondError(ctx, err)
	}

	board, err := s.hospitalBoardHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, board)
}

// HospitalRegistrationForm handles GET /hospital-registration.
func (s *Server) HospitalRegistrationForm(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{
		"form": "hospital-registration",
	})
}

// HospitalRegistration handles POST /hospital-registration.
func (s *Server) HospitalRegistration(ctx echo.Context) error {
	cmd, err := commands.NewRegisterHospitalCommand(
		kernel.NewUUID(),
		ctx.FormValue("name"),
		ctx.FormValue("city"),
		ctx.FormValue("state"),
		ctx.FormValue("email"),
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.registerHospital.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.Redirect(http.StatusFound, "/for_hospitals")
}

// HospitalLoginForm handles GET /hospital-login.
func (s *Server) HospitalLoginForm(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{
		"form": "hospital-login",
	})
}

// HospitalLogin handles POST /hospital-login. There is no account system;
// the route exists as an identity placeholder and simply forwards to the
// hospital board.
func (s *Server) HospitalLogin(ctx echo.Context) error {
	return ctx.Redirect(http.StatusFound, "/for_hospitals")
}

// NewListingForm handles GET /new-listing.
func (s *Server) NewListingForm(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{
		"form": "new-listing",
	})
}

// NewListing handles POST /new-listing - offers an organ for transport.
func (s *Server) NewListing(ctx echo.Context) error {
	hospitalID, err := kernel.UUIDFromString(ctx.FormValue("hospital_id"))
	if err != nil {
		return ctx.String(http.StatusBadRequest, "Invalid hospital id")
	}

	age, err := strconv.Atoi(ctx.FormValue("age"))
	if err != nil {
		return ctx.String(http.StatusBadRequest, "Invalid age")
	}
	weightKg, err := strconv.ParseFloat(ctx.FormValue("weight_kg"), 64)
	if err != nil {
		return ctx.String(http.StatusBadRequest, "Invalid weight")
	}

	cmd, err := commands.NewCreateListingCommand(
		kernel.NewUUID(),
		hospitalID,
		ctx.FormValue("organ_type"),
		ctx.FormValue("blood_type"),
		age,
		weightKg,
		ctx.FormValue("priority"),
		ctx.FormValue("availability"),
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.createListingHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.Redirect(http.StatusFound, "/for_hospitals?hospital_id="+hospitalID.String())
}

// DriverPortal handles GET /driver-portal. An optional driver_id query
// parameter selects the driver; otherwise the first driver by name is shown.
func (s *Server) DriverPortal(ctx echo.Context) error {
	var selected *kernel.UUID
	if raw := ctx.QueryParam("driver_id"); raw != "" {
		id, err := kernel.UUIDFromString(raw)
		if err != nil {
			return ctx.String(http.StatusBadRequest, "Invalid driver id")
		}
		selected = &id
	}

	query, err := queries.NewGetDriverPortalQuery(selected)
	if err != nil {
		return respondError(ctx, err)
	}

	portal, err := s.driverPortalHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, portal)
}

// ApplyDriver handles POST /apply-driver - files a driver application and
// activates the driver.
func (s *Server) ApplyDriver(ctx echo.Context) error {
	cmd, err := commands.NewApplyDriverCommand(
		kernel.NewUUID(),
		kernel.NewUUID(),
		ctx.FormValue("first_name"),
		ctx.FormValue("last_name"),
		ctx.FormValue("email"),
		ctx.FormValue("phone"),
		ctx.FormValue("cdl"),
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.applyDriverHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.Redirect(http.StatusFound, "/driver-portal")
}

// DriverClaim handles POST /driver-claim/:order_id - assigns the order to
// the posting driver.
func (s *Server) DriverClaim(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("order_id"))
	if err != nil {
		return ctx.String(http.StatusBadRequest, "Invalid order id")
	}
	driverID, err := kernel.UUIDFromString(ctx.FormValue("driver_id"))
	if err != nil {
		return ctx.String(http.StatusBadRequest, "Invalid driver id")
	}

	cmd, err := commands.NewClaimOrderCommand(orderID, driverID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.claimOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.Redirect(http.StatusFound, "/driver-portal?driver_id="+driverID.String())
}

// DriverUpdateStatus handles POST /driver-update-status/:order_id - moves
// the order through its lifecycle.
func (s *Server) DriverUpdateStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("order_id"))
	if err != nil {
		return ctx.String(http.StatusBadRequest, "Invalid order id")
	}
	driverID, err := kernel.UUIDFromString(ctx.FormValue("driver_id"))
	if err != nil {
		return ctx.String(http.StatusBadRequest, "Invalid driver id")
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, driverID, ctx.FormValue("status"))
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.updateStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.Redirect(http.StatusFound, "/driver-portal?driver_id="+driverID.String())
}

// APIOrgans handles GET /api/organs - the full catalog dump.
func (s *Server) APIOrgans(ctx echo.Context) error {
	organs, err := s.getAllOrgansHandler.Handle(ctx.Request().Context(),
		queries.NewGetAllOrgansQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, organs)
}

// respondError maps the error taxonomy onto plain-text HTTP responses:
// missing objects are 404, every rejected input or state transition is 400,
// anything else is a 500 with the detail kept server-side.
func respondError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.String(http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrInvalidState),
		errors.Is(err, errs.ErrConflict):
		return ctx.String(http.StatusBadRequest, err.Error())
	default:
		return ctx.String(http.StatusInternalServerError, "Internal server error")
	}
}
