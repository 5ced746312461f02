// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"forwarding/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler asks only for the repositories it touches.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	CarrierRepoFactory interface {
		CarrierRepository() ports.CarrierRepository
	}

	StoragePolicyRepoFactory interface {
		StoragePolicyRepository() ports.StoragePolicyRepository
	}

	ConsolidationRepoFactory interface {
		ConsolidationRepository() ports.ConsolidationRepository
	}

	// CarrierUoW manages transactions for carrier catalog administration.
	CarrierUoW interface {
		TxManager
		CarrierRepoFactory
	}

	CarrierUoWFactory interface {
		Create() CarrierUoW
	}

	// StoragePolicyUoW manages transactions for storage policy administration.
	// Activation deactivates the previous policy in the same transaction.
	StoragePolicyUoW interface {
		TxManager
		StoragePolicyRepoFactory
	}

	StoragePolicyUoWFactory interface {
		Create() StoragePolicyUoW
	}

	// ConsolidationUoW manages transactions for consolidation-only operations.
	ConsolidationUoW interface {
		TxManager
		ConsolidationRepoFactory
	}

	ConsolidationUoWFactory interface {
		Create() ConsolidationUoW
	}

	// StorageWarningUoW reads the active policy and updates consolidations
	// in one transaction.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   policy, err := uow.StoragePolicyRepository().GetActive(ctx)
	//   held, err := uow.ConsolidationRepository().GetAllHeldWithoutWarning(ctx)
	//   // ... publish and mark warnings
	//
	//   err = uow.Commit(ctx)
	StorageWarningUoW interface {
		TxManager
		StoragePolicyRepoFactory
		ConsolidationRepoFactory
	}

	StorageWarningUoWFactory interface {
		Create() StorageWarningUoW
	}
)
