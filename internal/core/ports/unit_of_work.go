package ports

import (
	"context"
)

// UnitOfWorkFactory hands out a fresh UnitOfWork per command, so concurrent
// requests never share a transaction.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is the transaction boundary of a write. Repositories obtained
// from it after Begin run inside the transaction; before Begin they read
// straight from the pool, which is what snapshot queries rely on.
//
// Callers own the lifecycle: Begin, defer Rollback, Commit.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	// Commit fails when no transaction is open.
	Commit(ctx context.Context) error
	// Rollback fails when no transaction is open, so a deferred Rollback
	// after Commit returns an error callers discard.
	Rollback(ctx context.Context) error

	CarrierRepository() CarrierRepository
	StoragePolicyRepository() StoragePolicyRepository
	ConsolidationRepository() ConsolidationRepository
}
