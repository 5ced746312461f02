package queries

import (
	"errors"
	"fmt"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/core/domain/services"
	"forwarding/internal/pkg/errs"
	"forwarding/internal/pkg/guard"
)

var (
	ErrQuoteShipmentQueryIsNotConstructed = errors.New(
		"QuoteShipmentQuery must be created via NewQuoteShipmentQuery constructor",
	)
	// ErrCarrierIsRequired is returned when a service or zone is requested
	// without naming the carrier that owns it.
	ErrCarrierIsRequired = errs.NewValueIsRequiredError("carrierId")
)

// QuoteShipmentQuery prices a shipment against the active carrier catalog.
//
// Without a carrier the best carrier is selected; when insurance is required
// selection is restricted to carriers able to insure the declared value. With
// a carrier, that carrier is quoted as is and the premium is zero when it
// cannot insure. A declared value without RequiresInsurance prices no cover.
//
// Example:
//
//	declared := 1200.0
//	query, err := NewQuoteShipmentQuery(QuoteShipmentParams{
//	    WeightKg:          2.5,
//	    DistanceKm:        800,
//	    RequiresInsurance: true,
//	    DeclaredValue:     &declared,
//	})
type QuoteShipmentQuery struct {
	params QuoteShipmentParams

	guard guard.ConstructorGuard
}

// QuoteShipmentParams is the raw quote request. Nil pointers mean "not given".
type QuoteShipmentParams struct {
	WeightKg          float64
	DistanceKm        float64
	RequiresInsurance bool
	DeclaredValue     *float64
	CarrierID         *kernel.UUID
	ServiceID         *kernel.UUID
	ZoneID            *kernel.UUID
}

func NewQuoteShipmentQuery(params QuoteShipmentParams) (QuoteShipmentQuery, error) {
	var weightErr, distanceErr, declaredErr, layerErr error

	if params.WeightKg < 0 {
		weightErr = errs.NewValueIsInvalidErrorWithCause("weightKg", fmt.Errorf("%v is negative", params.WeightKg))
	}
	if params.DistanceKm < 0 {
		distanceErr = errs.NewValueIsInvalidErrorWithCause("distanceKm", fmt.Errorf("%v is negative", params.DistanceKm))
	}
	switch {
	case params.DeclaredValue != nil && *params.DeclaredValue < 0:
		declaredErr = errs.NewValueIsInvalidErrorWithCause(
			"declaredValue",
			fmt.Errorf("%v is negative", *params.DeclaredValue),
		)
	case params.RequiresInsurance && params.DeclaredValue == nil:
		declaredErr = errs.NewValueIsRequiredError("declaredValue")
	}
	if params.CarrierID == nil && (params.ServiceID != nil || params.ZoneID != nil) {
		layerErr = ErrCarrierIsRequired
	}

	if err := errors.Join(weightErr, distanceErr, declaredErr, layerErr); err != nil {
		return QuoteShipmentQuery{}, err
	}

	return QuoteShipmentQuery{
		params: params,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (q QuoteShipmentQuery) Validate() error {
	return q.guard.Validate(ErrQuoteShipmentQueryIsNotConstructed)
}

func (q QuoteShipmentQuery) Params() QuoteShipmentParams {
	return q.params
}

func (q QuoteShipmentQuery) insurance() *services.InsuranceRequirement {
	if !q.params.RequiresInsurance || q.params.DeclaredValue == nil {
		return nil
	}
	return &services.InsuranceRequirement{DeclaredValue: *q.params.DeclaredValue}
}

// QuoteShipmentQueryResponse is a priced quote. Service and zone fields are
// empty when no layer was applied. Total is ShippingRate plus InsurancePremium,
// and the premium stays zero unless insurance was required.
type QuoteShipmentQueryResponse struct {
	CarrierID        kernel.UUID
	CarrierName      string
	CarrierCode      string
	ServiceID        *kernel.UUID
	ServiceName      string
	ZoneID           *kernel.UUID
	ZoneName         string
	ShippingRate     float64
	InsurancePremium float64
	Insured          bool
	Total            float64
	EstimatedDays    int
}
