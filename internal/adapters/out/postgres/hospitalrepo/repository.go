package hospitalrepo

import (
	"context"
	"errors"

	"lifelink/internal/core/domain/model/hospital"
	"lifelink/internal/core/domain/model/kernel"
	"lifelink/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormHospitalRepository implements ports.HospitalRepository using GORM.
// Hospitals are immutable once registered, so there is no Update.
type GormHospitalRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormHospitalRepository creates a new GORM hospital repository.
func NewGormHospitalRepository(db *gorm.DB, tracker aggregateTracker) *GormHospitalRepository {
	return &GormHospitalRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new hospital to the database.
func (r *GormHospitalRepository) Add(ctx context.Context, entity *hospital.Hospital) error {
	if err := entity.Validate(); err != nil {
		return err
	}

	dto := fromDomain(entity)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(entity.ID(), entity)
	return nil
}

// Get retrieves a hospital by ID.
func (r *GormHospitalRepository) Get(ctx context.Context, id kernel.UUID) (*hospital.Hospital, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto HospitalDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("hospital", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
