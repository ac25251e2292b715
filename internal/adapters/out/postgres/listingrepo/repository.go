package listingrepo

import (
	"context"
	"errors"

	"lifelink/internal/core/domain/model/kernel"
	"lifelink/internal/core/domain/model/listing"
	"lifelink/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormListingRepository implements ports.ListingRepository using GORM.
type GormListingRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormListingRepository creates a new GORM listing repository.
func NewGormListingRepository(db *gorm.DB, tracker aggregateTracker) *GormListingRepository {
	return &GormListingRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new listing to the database.
func (r *GormListingRepository) Add(ctx context.Context, aggregate *listing.Listing) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing listing. The write is conditioned on the
// availability the aggregate was loaded with: when two transport requests
// race to reserve the same listing, the second matches zero rows and gets
// listing.ErrListingUnavailable.
func (r *GormListingRepository) Update(ctx context.Context, aggregate *listing.Listing) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&ListingDTO{}).
		Where("id = ? AND availability_status = ?", dto.ID, string(aggregate.PersistedAvailability())).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return listing.ErrListingUnavailable
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a listing by ID.
func (r *GormListingRepository) Get(ctx context.Context, id kernel.UUID) (*listing.Listing, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ListingDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("listing", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
