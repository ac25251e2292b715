// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS split.
// All commands follow a consistent shape: validation, transaction
// management, and persistence through a unit of work.
package commands

import (
	"context"

	"lifelink/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command
// handlers. Each handler depends only on the repositories it touches.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// HospitalRepoFactory provides the hospital repository within a transaction.
	HospitalRepoFactory interface {
		HospitalRepository() ports.HospitalRepository
	}

	// DriverRepoFactory provides the driver repository within a transaction.
	DriverRepoFactory interface {
		DriverRepository() ports.DriverRepository
	}

	// ListingRepoFactory provides the listing repository within a transaction.
	ListingRepoFactory interface {
		ListingRepository() ports.ListingRepository
	}

	// OrderRepoFactory provides the transport request repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// HospitalUoW manages transactions for hospital-only operations.
	HospitalUoW interface {
		TxManager
		HospitalRepoFactory
	}

	// HospitalUoWFactory creates hospital unit of work instances.
	HospitalUoWFactory interface {
		Create() HospitalUoW
	}

	// DriverUoW manages transactions for driver intake operations.
	DriverUoW interface {
		TxManager
		DriverRepoFactory
	}

	// DriverUoWFactory creates driver unit of work instances.
	DriverUoWFactory interface {
		Create() DriverUoW
	}

	// ListingUoW manages transactions for listing creation, which reads the
	// offering hospital and writes the listing.
	ListingUoW interface {
		TxManager
		HospitalRepoFactory
		ListingRepoFactory
	}

	// ListingUoWFactory creates listing unit of work instances.
	ListingUoWFactory interface {
		Create() ListingUoW
	}

	// OrderUoW manages transactions for order-only operations
	// (emergency requests, claims, status updates).
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// RequestUoW manages the transport request creation transaction, which
	// spans the listing (reserve), the hospital (origin lookup), and the
	// new request.
	RequestUoW interface {
		TxManager
		HospitalRepoFactory
		ListingRepoFactory
		OrderRepoFactory
	}

	// RequestUoWFactory creates request unit of work instances.
	RequestUoWFactory interface {
		Create() RequestUoW
	}
)
