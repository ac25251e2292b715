package queries

import (
	"errors"
	"time"

	"lifelink/internal/core/domain/model/kernel"
	"lifelink/internal/pkg/guard"
)

var (
	ErrGetHospitalBoardQueryIsNotConstructed = errors.New(
		"GetHospitalBoardQuery must be created via NewGetHospitalBoardQuery constructor",
	)
)

// GetHospitalBoardQuery assembles the hospital dashboard: the directory of
// all hospitals, the selected one, its outbound and inbound transport
// requests, and its own listings.
type GetHospitalBoardQuery struct {
	selectedHospitalID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetHospitalBoardQuery builds the query. selectedHospitalID may be nil;
// the handler then falls back to the first hospital by name.
func NewGetHospitalBoardQuery(selectedHospitalID *kernel.UUID) (GetHospitalBoardQuery, error) {
	if selectedHospitalID != nil {
		if err := selectedHospitalID.Validate(); err != nil {
			return GetHospitalBoardQuery{}, err
		}
	}
	return GetHospitalBoardQuery{
		selectedHospitalID: selectedHospitalID,
		guard:              guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetHospitalBoardQuery) Validate() error {
	return q.guard.Validate(ErrGetHospitalBoardQueryIsNotConstructed)
}

// SelectedHospitalID returns the requested hospital, or nil for the default.
func (q GetHospitalBoardQuery) SelectedHospitalID() *kernel.UUID {
	return q.selectedHospitalID
}

// HospitalDirectoryEntry is one row of the hospital directory.
type HospitalDirectoryEntry struct {
	ID    kernel.UUID
	Name  string
	City  string
	State string
	Email string
}

// BoardOrderResponse is a transport request row on the hospital board,
// decorated with its source listing when one exists.
type BoardOrderResponse struct {
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
	SourceCity       string
	SourceState      string
	ListingOrganType string
	ListingBloodType string
}

// GetHospitalBoardQueryResponse is the complete dashboard payload. Selected
// is nil only when no hospitals are registered at all.
type GetHospitalBoardQueryResponse struct {
	Hospitals []HospitalDirectoryEntry
	Selected  *HospitalDirectoryEntry
	Outbound  []BoardOrderResponse
	Inbound   []BoardOrderResponse
	Listings  []ListListingsQueryResponse
}
