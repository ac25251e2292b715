package ports

import (
	"context"

	"lifelink/internal/core/domain/model/hospital"
	"lifelink/internal/core/domain/model/kernel"
)

// HospitalRepository defines the persistence contract for hospital entities.
// Hospitals are immutable once registered, so there is no Update.
type HospitalRepository interface {
	// Add persists a new hospital.
	Add(ctx context.Context, entity *hospital.Hospital) error

	// Get retrieves a hospital by its identifier.
	// Returns errs.ObjectNotFoundError if no such hospital exists.
	Get(ctx context.Context, id kernel.UUID) (*hospital.Hospital, error)
}
