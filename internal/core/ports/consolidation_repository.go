package ports

import (
	"context"

	"forwarding/internal/core/domain/model/consolidation"
	"forwarding/internal/core/domain/model/kernel"
)

// ConsolidationRepository defines the persistence contract for consolidations
// held in storage.
type ConsolidationRepository interface {
	Add(ctx context.Context, aggregate *consolidation.Consolidation) error

	Update(ctx context.Context, aggregate *consolidation.Consolidation) error

	// Get returns errs.ErrObjectNotFound when no consolidation has the given ID.
	Get(ctx context.Context, id kernel.UUID) (*consolidation.Consolidation, error)

	// GetAllHeldWithoutWarning returns held consolidations whose storage
	// warning has not been sent, oldest first. Within a transaction the rows
	// are claimed: a concurrent caller does not receive them.
	GetAllHeldWithoutWarning(ctx context.Context) ([]*consolidation.Consolidation, error)
}
