// Package queries contains read-side operations in the CQRS split. Each
// handler reads straight from the database with raw SQL, bypassing the
// domain model and repositories for optimal read performance.
package queries

import (
	"errors"
	"time"

	"lifelink/internal/core/domain/model/kernel"
	"lifelink/internal/pkg/guard"
)

var (
	ErrListListingsQueryIsNotConstructed = errors.New(
		"ListListingsQuery must be created via NewListListingsQuery constructor",
	)
)

// ListListingsQuery retrieves the organ catalog, optionally filtered.
//
// All filters are optional: an empty or "All" organ type matches every
// type, an availability outside {Available, Unavailable} matches both, and
// an empty search term disables the substring match.
type ListListingsQuery struct {
	searchTerm   string
	organType    string
	availability string

	guard guard.ConstructorGuard
}

// NewListListingsQuery creates a catalog query. searchTerm is matched
// case-insensitively as a substring across organ type, blood type, hospital
// name, city, and state.
func NewListListingsQuery(searchTerm, organType, availability string) ListListingsQuery {
	return ListListingsQuery{
		searchTerm:   searchTerm,
		organType:    organType,
		availability: availability,
		guard:        guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q ListListingsQuery) Validate() error {
	return q.guard.Validate(ErrListListingsQueryIsNotConstructed)
}

// SearchTerm returns the free-text filter.
func (q ListListingsQuery) SearchTerm() string {
	return q.searchTerm
}

// OrganType returns the organ type filter.
func (q ListListingsQuery) OrganType() string {
	return q.organType
}

// Availability returns the availability filter.
func (q ListListingsQuery) Availability() string {
	return q.availability
}

// ListListingsQueryResponse is one catalog row.
type ListListingsQueryResponse struct {
	ID           kernel.UUID
	HospitalID   kernel.UUID
	HospitalName string
	OrganType    string
	BloodType    string
	Age          int
	WeightKg     float64
	Priority     string
	Availability string
	City         string
	State        string
	CreatedAt    time.Time
}
