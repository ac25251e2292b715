package ports

import (
	"context"

	"lifelink/internal/core/domain/model/kernel"
	"lifelink/internal/core/domain/model/listing"
)

// ListingRepository defines the persistence contract for organ listing aggregates.
type ListingRepository interface {
	// Add persists a new listing.
	Add(ctx context.Context, aggregate *listing.Listing) error

	// Update persists changes to an existing listing. The write is
	// conditioned on the aggregate's persisted availability: if another
	// transaction consumed the listing since it was loaded, Update returns
	// listing.ErrListingUnavailable and writes nothing.
	Update(ctx context.Context, aggregate *listing.Listing) error

	// Get retrieves a listing by its identifier.
	// Returns errs.ObjectNotFoundError if no such listing exists.
	Get(ctx context.Context, id kernel.UUID) (*listing.Listing, error)
}
