package queries

import (
	"errors"

	"forwarding/internal/core/domain/model/carrier"
	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/pkg/guard"
)

var (
	ErrGetAllCarriersQueryIsNotConstructed = errors.New(
		"GetAllCarriersQuery must be created via NewGetAllCarriersQuery constructor",
	)
)

// GetAllCarriersQuery lists the carrier catalog for admin screens, services
// and zones included.
//
// Example:
//
//	query := NewGetAllCarriersQuery(false)
//	handler := NewGetAllCarriersQueryHandler(db)
//
//	carriers, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve carriers: %w", err)
//	}
type GetAllCarriersQuery struct {
	activeOnly bool

	guard guard.ConstructorGuard
}

// NewGetAllCarriersQuery creates the listing query. With activeOnly set,
// deactivated carriers are left out.
func NewGetAllCarriersQuery(activeOnly bool) GetAllCarriersQuery {
	return GetAllCarriersQuery{
		activeOnly: activeOnly,
		guard:      guard.NewConstructorGuard(),
	}
}

func (q GetAllCarriersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllCarriersQueryIsNotConstructed)
}

func (q GetAllCarriersQuery) ActiveOnly() bool {
	return q.activeOnly
}

// GetAllCarriersQueryResponse is one carrier of the catalog listing.
type GetAllCarriersQueryResponse struct {
	ID        kernel.UUID
	Name      string
	Code      string
	Rates     carrier.RateCard
	Insurance carrier.InsuranceTerms
	Priority  int
	IsActive  bool
	Services  []CarrierServiceView
	Zones     []CarrierZoneView
}

type CarrierServiceView struct {
	ID    kernel.UUID
	Name  string
	Rates carrier.RateCard
}

type CarrierZoneView struct {
	ID    kernel.UUID
	Name  string
	Rates carrier.ZoneRateCard
}
