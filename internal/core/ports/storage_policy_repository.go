package ports

import (
	"context"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/core/domain/model/storagepolicy"
)

// StoragePolicyRepository defines the persistence contract for storage policies.
// Inactive policies are never deleted.
type StoragePolicyRepository interface {
	Add(ctx context.Context, aggregate *storagepolicy.StoragePolicy) error

	Update(ctx context.Context, aggregate *storagepolicy.StoragePolicy) error

	// Get returns errs.ErrObjectNotFound when no policy has the given ID.
	Get(ctx context.Context, id kernel.UUID) (*storagepolicy.StoragePolicy, error)

	// GetActive returns the policy in force, or errs.ErrObjectNotFound when
	// no policy has been activated yet.
	GetActive(ctx context.Context) (*storagepolicy.StoragePolicy, error)

	// GetAllActive returns every policy flagged active. The activation use
	// case relies on it to retire the previous policy.
	GetAllActive(ctx context.Context) ([]*storagepolicy.StoragePolicy, error)

	// LockForAdministration serializes policy writers for the rest of the
	// current transaction. Create and activate take it before reading the
	// active set or the latest version.
	LockForAdministration(ctx context.Context) error

	// LatestVersion returns the highest stored version number, or 0 when no
	// policy exists.
	LatestVersion(ctx context.Context) (int, error)
}
