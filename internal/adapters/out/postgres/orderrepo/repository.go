package orderrepo

import (
	"context"
	"errors"

	"lifelink/internal/core/domain/model/kernel"
	"lifelink/internal/core/domain/model/order"
	"lifelink/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormTransportRequestRepository implements ports.OrderRepository using GORM.
type GormTransportRequestRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormTransportRequestRepository creates a new GORM transport request repository.
func NewGormTransportRequestRepository(db *gorm.DB, tracker aggregateTracker) *GormTransportRequestRepository {
	return &GormTransportRequestRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new transport request to the database.
func (r *GormTransportRequestRepository) Add(ctx context.Context, aggregate *order.TransportRequest) error {
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

// Update saves an existing transport request. The write is conditioned on
// the status the aggregate was loaded with, so two transactions that both
// read a Requested order cannot both move it: the second one matches zero
// rows and gets order.ErrOrderNoLongerAvailable. Select("*") forces NULLs
// through, clearing driver_id on reversion.
func (r *GormTransportRequestRepository) Update(ctx context.Context, aggregate *order.TransportRequest) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&TransportRequestDTO{}).
		Where("id = ? AND status = ?", dto.ID, aggregate.PersistedStatus().String()).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return order.ErrOrderNoLongerAvailable
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a transport request by ID.
func (r *GormTransportRequestRepository) Get(ctx context.Context, id kernel.UUID) (*order.TransportRequest, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto TransportRequestDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// CountActiveByDriver counts the driver's requests in Assigned or En-route
// status.
func (r *GormTransportRequestRepository) CountActiveByDriver(ctx context.Context, driverID kernel.UUID) (int64, error) {
	if err := driverID.Validate(); err != nil {
		return 0, err
	}

	var count int64
	err := r.db.WithContext(ctx).
		Model(&TransportRequestDTO{}).
		Where("driver_id = ? AND status IN ?",
			driverID.Bytes(),
			[]string{order.Assigned.String(), order.EnRoute.String()}).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}
