// Package ports defines the persistence and messaging contracts of the pricing
// core. Adapters implement them; use cases depend only on these interfaces.
package ports

import (
	"context"

	"forwarding/internal/core/domain/model/carrier"
	"forwarding/internal/core/domain/model/kernel"
)

// CarrierRepository defines the persistence contract for carrier aggregates,
// including the services and zones they own.
type CarrierRepository interface {
	// Add persists a new carrier with its services and zones.
	// Returns errs.ErrObjectAlreadyExists when the carrier code is taken.
	Add(ctx context.Context, aggregate *carrier.Carrier) error

	// Update persists changes to an existing carrier. Services and zones
	// added to the aggregate since it was loaded are inserted.
	Update(ctx context.Context, aggregate *carrier.Carrier) error

	// Delete removes a carrier together with its services and zones.
	// Returns errs.ErrObjectNotFound when no carrier has the given ID.
	Delete(ctx context.Context, id kernel.UUID) error

	// Get retrieves a carrier with its services and zones.
	// Returns errs.ErrObjectNotFound when no carrier has the given ID.
	Get(ctx context.Context, id kernel.UUID) (*carrier.Carrier, error)

	// GetAllActive is the catalog accessor used for quoting: every active
	// carrier with its services and zones, ordered by code.
	//
	// Example:
	//   catalog, err := repo.GetAllActive(ctx)
	//   if err != nil {
	//       return fmt.Errorf("failed to load carrier catalog: %w", err)
	//   }
	//   best, err := engine.FindBestCarrier(catalog, shipment, nil)
	GetAllActive(ctx context.Context) ([]*carrier.Carrier, error)
}
