package queries

import (
	"errors"

	"lifelink/internal/core/domain/model/kernel"
	"lifelink/internal/pkg/guard"
)

var (
	ErrGetOrderDetailsQueryIsNotConstructed = errors.New(
		"GetOrderDetailsQuery must be created via NewGetOrderDetailsQuery constructor",
	)
)

// GetOrderDetailsQuery retrieves one transport request with its source
// listing and assigned driver for the confirmation view.
type GetOrderDetailsQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderDetailsQuery validates and builds the query.
func NewGetOrderDetailsQuery(orderID kernel.UUID) (GetOrderDetailsQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderDetailsQuery{}, err
	}
	return GetOrderDetailsQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderDetailsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderDetailsQueryIsNotConstructed)
}

// OrderID returns the request to look up.
func (q GetOrderDetailsQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetOrderDetailsQueryResponse is the confirmation view of one request.
// Listing and driver fields are empty for emergency requests and unclaimed
// orders respectively. Created and Updated are local-time display strings.
type GetOrderDetailsQueryResponse struct {
	ID           kernel.UUID
	ListingID    *kernel.UUID
	Hospital     string
	OrganType    string
	Origin       string
	Destination  string
	ContactPhone string
	Notes        string
	Priority     string
	Status       string

	SourceHospital   string
	SourceCity       string
	SourceState      string
	ListingOrganType string
	ListingBloodType string

	DriverName  string
	DriverPhone string

	Created string
	Updated string
}
