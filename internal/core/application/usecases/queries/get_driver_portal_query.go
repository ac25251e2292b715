package queries

import (
	"errors"
	"time"

	"lifelink/internal/core/domain/model/kernel"
	"lifelink/internal/pkg/guard"
)

var (
	ErrGetDriverPortalQueryIsNotConstructed = errors.New(
		"GetDriverPortalQuery must be created via NewGetDriverPortalQuery constructor",
	)
)

// GetDriverPortalQuery assembles the driver dashboard: the driver
// directory, the selected driver, their current and completed orders, and
// the pool of claimable requests.
type GetDriverPortalQuery struct {
	selectedDriverID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetDriverPortalQuery builds the query. selectedDriverID may be nil;
// the handler then falls back to the first driver by name.
func NewGetDriverPortalQuery(selectedDriverID *kernel.UUID) (GetDriverPortalQuery, error) {
	if selectedDriverID != nil {
		if err := selectedDriverID.Validate(); err != nil {
			return GetDriverPortalQuery{}, err
		}
	}
	return GetDriverPortalQuery{
		selectedDriverID: selectedDriverID,
		guard:            guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDriverPortalQuery) Validate() error {
	return q.guard.Validate(ErrGetDriverPortalQueryIsNotConstructed)
}

// SelectedDriverID returns the requested driver, or nil for the default.
func (q GetDriverPortalQuery) SelectedDriverID() *kernel.UUID {
	return q.selectedDriverID
}

// DriverDirectoryEntry is one row of the driver directory.
type DriverDirectoryEntry struct {
	ID        kernel.UUID
	FirstName string
	LastName  string
	Email     string
	Phone     string
	CDL       string
}

// PortalOrderResponse is a transport request row on the driver portal.
type PortalOrderResponse struct {
	ID           kernel.UUID
	Hospital     string
	OrganType    string
	Origin       string
	Destination  string
	ContactPhone string
	Notes        string
	Priority     string
	Status       string
	CreatedAt    time.Time
	UpdatedAt    time.Time

	SourceHospital   string
	ListingOrganType string
	ListingBloodType string
}

// GetDriverPortalQueryResponse is the complete portal payload. Selected is
// nil only when no drivers are registered; CurrentOrder is nil when the
// selected driver has nothing in flight.
type GetDriverPortalQueryResponse struct {
	Drivers         []DriverDirectoryEntry
	Selected        *DriverDirectoryEntry
	CurrentOrder    *PortalOrderResponse
	CompletedOrders []PortalOrderResponse
	AvailableOrders []PortalOrderResponse
}
