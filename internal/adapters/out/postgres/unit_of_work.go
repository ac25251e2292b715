// Package postgres provides the GORM-based Unit of Work that scopes each
// business operation to one database transaction. Repositories obtained
// from a unit of work share its transaction; aggregates written through
// them are tracked for post-commit processing.
package postgres

import (
	"context"

	"lifelink/internal/adapters/out/postgres/driverrepo"
	"lifelink/internal/adapters/out/postgres/hospitalrepo"
	"lifelink/internal/adapters/out/postgres/listingrepo"
	"lifelink/internal/adapters/out/postgres/orderrepo"
	"lifelink/internal/core/domain/model/kernel"
	"lifelink/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate represents an aggregate modified during the unit of work.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate any
}

// GormUnitOfWorkFactory creates UnitOfWork instances over a shared GORM
// connection. Each business operation gets a fresh instance, so concurrent
// requests never share transaction state.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory bound to the given connection.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork with its own transaction state and
// aggregate tracking.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates one database transaction across the hospital,
// driver, listing, and transport request repositories. Begin is idempotent;
// Commit and Rollback close the transaction and return
// gorm.ErrInvalidTransaction when none is active.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin starts a transaction. Calling Begin again on an active unit of
// work is a no-op rather than a nested transaction.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		return uow.tx.Error
	}

	return nil
}

// Commit finalizes the current transaction.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards the current transaction.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// HospitalRepository returns a hospital repository bound to the current
// transaction, or to the main connection if none is active.
func (uow *GormUnitOfWork) HospitalRepository() ports.HospitalRepository {
	return hospitalrepo.NewGormHospitalRepository(uow.conn(), uow)
}

// DriverRepository returns a driver repository bound to the current
// transaction, or to the main connection if none is active.
func (uow *GormUnitOfWork) DriverRepository() ports.DriverRepository {
	return driverrepo.NewGormDriverRepository(uow.conn(), uow)
}

// ListingRepository returns a listing repository bound to the current
// transaction, or to the main connection if none is active.
func (uow *GormUnitOfWork) ListingRepository() ports.ListingRepository {
	return listingrepo.NewGormListingRepository(uow.conn(), uow)
}

// OrderRepository returns a transport request repository bound to the
// current transaction, or to the main connection if none is active.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormTransportRequestRepository(uow.conn(), uow)
}

// TrackAggregate registers an aggregate modified within this unit of work.
// Called by the repositories on every successful write.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
