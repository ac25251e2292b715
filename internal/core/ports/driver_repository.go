package ports

import (
	"context"

	"lifelink/internal/core/domain/model/driver"
	"lifelink/internal/core/domain/model/kernel"
)

// DriverRepository defines the persistence contract for drivers and their
// intake applications.
type DriverRepository interface {
	// Add persists a new driver.
	Add(ctx context.Context, entity *driver.Driver) error

	// AddApplication persists a driver application for review.
	AddApplication(ctx context.Context, entity *driver.Application) error

	// Get retrieves a driver by its identifier.
	// Returns errs.ObjectNotFoundError if no such driver exists.
	Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error)
}
