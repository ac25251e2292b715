package queries

import (
	"errors"

	"lifelink/internal/pkg/guard"
)

var (
	ErrGetAllOrgansQueryIsNotConstructed = errors.New(
		"GetAllOrgansQuery must be created via NewGetAllOrgansQuery constructor",
	)
)

// GetAllOrgansQuery retrieves every organ listing, newest first, for the
// JSON API. No filters: consumers post-process as they see fit.
type GetAllOrgansQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllOrgansQuery creates an unfiltered listing dump query.
func NewGetAllOrgansQuery() GetAllOrgansQuery {
	return GetAllOrgansQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllOrgansQuery) Validate() error {
	return q.guard.Validate(ErrGetAllOrgansQueryIsNotConstructed)
}
