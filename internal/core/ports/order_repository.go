package ports

import (
	"context"

	"lifelink/internal/core/domain/model/kernel"
	"lifelink/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for transport request aggregates.
type OrderRepository interface {
	// Add persists a new transport request.
	Add(ctx context.Context, aggregate *order.TransportRequest) error

	// Update persists changes to an existing request. The write is
	// conditioned on the aggregate's persisted status: if a concurrent
	// transaction moved the order since it was loaded (for example a
	// second driver claiming it), Update returns
	// order.ErrOrderNoLongerAvailable and writes nothing.
	Update(ctx context.Context, aggregate *order.TransportRequest) error

	// Get retrieves a transport request by its identifier.
	// Returns errs.ObjectNotFoundError if no such request exists.
	Get(ctx context.Context, id kernel.UUID) (*order.TransportRequest, error)

	// CountActiveByDriver counts the driver's requests in Assigned or
	// En-route status. Used to enforce the one-active-order limit.
	CountActiveByDriver(ctx context.Context, driverID kernel.UUID) (int64, error)
}
