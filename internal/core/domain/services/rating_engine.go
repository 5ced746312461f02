package services

import (
	"cmp"
	"errors"
	"slices"
	"strings"

	"forwarding/internal/core/domain/model/carrier"
	"forwarding/internal/core/domain/model/kernel"
)

// ErrCarrierNotFound is returned by FindBestCarrier when no candidate remains:
// the catalog is empty, or no carrier can insure the declared value.
var ErrCarrierNotFound = errors.New("carrier not found")

// Shipment holds the physical parameters a rate is computed for.
// A DistanceKm of zero (or less) means the distance is unknown and every
// per-kilometre component is skipped.
type Shipment struct {
	WeightKg   float64
	DistanceKm float64
}

// InsuranceRequirement asks carrier selection to keep only carriers able to
// insure DeclaredValue.
type InsuranceRequirement struct {
	DeclaredValue float64
}

// RatingEngine turns catalog data and shipment parameters into money amounts
// and picks the preferred carrier for a shipment.
//
// Rates are strictly additive: carrier card, then the optional service layer,
// then the optional zone layer. The sum is floored at zero so negative override
// layers never produce a negative charge. Inputs are not validated; a negative
// weight is the caller's mistake and simply flows through the arithmetic.
//
// Example usage:
//
//	engine := services.NewRatingEngine()
//	rate := engine.CalculateShippingRate(dhl, services.Shipment{WeightKg: 2.5, DistanceKm: 800}, overnight, nil)
//	premium := engine.CalculateInsuranceRate(dhl, 1000)
//
//	best, err := engine.FindBestCarrier(catalog, services.Shipment{WeightKg: 2.5},
//	    &services.InsuranceRequirement{DeclaredValue: 1000})
//	if errors.Is(err, services.ErrCarrierNotFound) {
//	    // No carrier can take this shipment
//	}
type RatingEngine struct{}

// NewRatingEngine creates a RatingEngine.
func NewRatingEngine() RatingEngine {
	return RatingEngine{}
}

// CalculateShippingRate prices a shipment with one carrier and optional
// service and zone override layers. service and zone may be nil.
func (e RatingEngine) CalculateShippingRate(
	c *carrier.Carrier,
	shipment Shipment,
	service *carrier.Service,
	zone *carrier.Zone,
) float64 {
	rate := cardRate(c.Rates(), shipment)

	if service != nil {
		rate += cardRate(service.Rates(), shipment)
	}

	if zone != nil {
		zr := zone.Rates()
		rate += zr.BaseRate + zr.RatePerKg*shipment.WeightKg
	}

	return kernel.NonNegative(rate)
}

// CalculateInsuranceRate returns the premium for insuring declaredValue with c.
// It is zero when the carrier does not insure or the value lies outside the
// carrier's declared-value band; no insurance should be offered in that case.
func (e RatingEngine) CalculateInsuranceRate(c *carrier.Carrier, declaredValue float64) float64 {
	terms := c.Insurance()
	if !terms.Covers(declaredValue) {
		return 0
	}
	return declaredValue * terms.RatePercent / 100
}

// FindBestCarrier selects a carrier from a catalog of active carriers.
//
// Selection algorithm:
//   - With an insurance requirement, only carriers that cover the declared
//     value stay candidates; there is no fallback to uninsurable carriers
//   - Candidates are ranked by priority (highest first), then by their
//     carrier-level shipping rate (cheapest first), then by code
//   - The first ranked candidate wins
//
// The catalog is expected to hold active carriers only; filtering inactive
// ones is the catalog accessor's job. Returns ErrCarrierNotFound when no
// candidate remains, or a validation error for an improperly built carrier.
func (e RatingEngine) FindBestCarrier(
	catalog []*carrier.Carrier,
	shipment Shipment,
	insurance *InsuranceRequirement,
) (*carrier.Carrier, error) {
	type candidate struct {
		carrier *carrier.Carrier
		rate    float64
	}

	candidates := make([]candidate, 0, len(catalog))
	for _, c := range catalog {
		if err := c.Validate(); err != nil {
			return nil, err
		}

		if insurance != nil && !c.Insurance().Covers(insurance.DeclaredValue) {
			continue
		}

		candidates = append(candidates, candidate{
			carrier: c,
			rate:    e.CalculateShippingRate(c, shipment, nil, nil),
		})
	}

	if len(candidates) == 0 {
		return nil, ErrCarrierNotFound
	}

	slices.SortStableFunc(candidates, func(a, b candidate) int {
		return cmp.Or(
			cmp.Compare(b.carrier.Priority(), a.carrier.Priority()),
			cmp.Compare(a.rate, b.rate),
			strings.Compare(a.carrier.Code(), b.carrier.Code()),
		)
	})

	return candidates[0].carrier, nil
}

// EstimateTransitDays returns the most specific advertised transit time:
// the zone's when set, else the service's, else the carrier's own.
func (e RatingEngine) EstimateTransitDays(c *carrier.Carrier, service *carrier.Service, zone *carrier.Zone) int {
	if zone != nil && zone.Rates().EstimatedDays > 0 {
		return zone.Rates().EstimatedDays
	}
	if service != nil && service.Rates().EstimatedDays > 0 {
		return service.Rates().EstimatedDays
	}
	return c.Rates().EstimatedDays
}

// cardRate prices one carrier or service layer. The distance term applies only
// to a known distance on a card that prices distance.
func cardRate(card carrier.RateCard, shipment Shipment) float64 {
	rate := card.BaseRate + card.RatePerKg*shipment.WeightKg
	if shipment.DistanceKm > 0 && card.RatePerKm > 0 {
		rate += card.RatePerKm * shipment.DistanceKm
	}
	return rate
}
