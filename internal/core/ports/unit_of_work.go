package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances, one per business
// operation, so concurrent requests never share transaction state.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary over the store.
// Repositories obtained from it run inside the transaction started by
// Begin; client code manages the transaction lifecycle explicitly.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns an error if no transaction is active or the commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns an error if no transaction is active or the rollback fails.
	Rollback(ctx context.Context) error

	// HospitalRepository returns a HospitalRepository bound to the current transaction.
	HospitalRepository() HospitalRepository

	// DriverRepository returns a DriverRepository bound to the current transaction.
	DriverRepository() DriverRepository

	// ListingRepository returns a ListingRepository bound to the current transaction.
	ListingRepository() ListingRepository

	// OrderRepository returns an OrderRepository bound to the current transaction.
	OrderRepository() OrderRepository
}
