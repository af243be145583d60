// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"marketplace/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// BookingRepoFactory provides access to the booking repository within a transaction.
	BookingRepoFactory interface {
		BookingRepository() ports.BookingRepository
	}

	// RentalRepoFactory provides access to the rental repository within a transaction.
	RentalRepoFactory interface {
		RentalRepository() ports.RentalRepository
	}

	// StorageBoxRepoFactory provides access to the storage box repository within a transaction.
	StorageBoxRepoFactory interface {
		StorageBoxRepository() ports.StorageBoxRepository
	}

	// ContractRepoFactory provides access to the contract repository within a transaction.
	ContractRepoFactory interface {
		ContractRepository() ports.ContractRepository
	}

	// ParcelRepoFactory provides access to the parcel repository within a transaction.
	ParcelRepoFactory interface {
		ParcelRepository() ports.ParcelRepository
	}

	// BookingUoW manages transactions for booking-only operations.
	BookingUoW interface {
		TxManager
		BookingRepoFactory
	}

	// BookingUoWFactory creates new booking unit of work instances.
	BookingUoWFactory interface {
		Create() BookingUoW
	}

	// RentalUoW manages transactions spanning a rental and its storage box.
	// Every rental lifecycle operation flips the box status in the same
	// transaction, so the two repositories always travel together.
	RentalUoW interface {
		TxManager
		RentalRepoFactory
		StorageBoxRepoFactory
	}

	// RentalUoWFactory creates new rental unit of work instances.
	RentalUoWFactory interface {
		Create() RentalUoW
	}

	// ContractUoW manages transactions for contract-only operations.
	ContractUoW interface {
		TxManager
		ContractRepoFactory
	}

	// ContractUoWFactory creates new contract unit of work instances.
	ContractUoWFactory interface {
		Create() ContractUoW
	}

	// ParcelUoW manages transactions for parcel-only operations.
	ParcelUoW interface {
		TxManager
		ParcelRepoFactory
	}

	// ParcelUoWFactory creates new parcel unit of work instances.
	ParcelUoWFactory interface {
		Create() ParcelUoW
	}
)
