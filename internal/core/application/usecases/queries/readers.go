// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Admin listings read rows directly with SQL; quoting and fee queries load
// aggregate snapshots and run the pricing engines over them.
package queries

import (
	"context"

	"forwarding/internal/core/domain/model/carrier"
	"forwarding/internal/core/domain/model/consolidation"
	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/core/domain/model/storagepolicy"
)

// Snapshot readers. The repositories in ports satisfy them; queries ask only
// for the reads they perform.
type (
	CarrierCatalogReader interface {
		GetAllActive(ctx context.Context) ([]*carrier.Carrier, error)
	}

	ActiveStoragePolicyReader interface {
		GetActive(ctx context.Context) (*storagepolicy.StoragePolicy, error)
	}

	ConsolidationReader interface {
		Get(ctx context.Context, id kernel.UUID) (*consolidation.Consolidation, error)
	}
)
