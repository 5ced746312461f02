package carrier

import (
	"errors"
	"fmt"

	"forwarding/internal/pkg/errs"
)

const maxInsuranceRatePercent = 100

// RateCard is the rate shape shared by a carrier and its services:
// a fixed base charge plus per-kilogram and per-kilometre components.
// EstimatedDays is the advertised transit time of the layer.
type RateCard struct {
	BaseRate      float64
	RatePerKg     float64
	RatePerKm     float64
	EstimatedDays int
}

// ValidateNonNegative reports every negative field of the card. Carrier-level
// cards must pass it on the admin write path; override layers may carry
// negative adjustments and are not required to.
func (r RateCard) ValidateNonNegative() error {
	return errors.Join(
		nonNegative("baseRate", r.BaseRate),
		nonNegative("ratePerKg", r.RatePerKg),
		nonNegative("ratePerKm", r.RatePerKm),
		nonNegativeDays(r.EstimatedDays),
	)
}

// ZoneRateCard is the destination override layer. Zones never price distance,
// so the shape has no per-kilometre component.
type ZoneRateCard struct {
	BaseRate      float64
	RatePerKg     float64
	EstimatedDays int
}

// InsuranceTerms describe whether a carrier insures shipments and for which
// declared values. RatePercent is a percentage of the declared value (0–100).
type InsuranceTerms struct {
	Available        bool
	RatePercent      float64
	MinDeclaredValue float64
	MaxDeclaredValue float64
}

// NoInsurance is the terms of a carrier that does not offer insurance.
func NoInsurance() InsuranceTerms {
	return InsuranceTerms{}
}

// Covers reports whether the declared value can be insured: insurance must be
// available and the value must lie inside [MinDeclaredValue, MaxDeclaredValue].
func (t InsuranceTerms) Covers(declaredValue float64) bool {
	return t.Available &&
		declaredValue >= t.MinDeclaredValue &&
		declaredValue <= t.MaxDeclaredValue
}

// Validate checks the declared-value band of available insurance. Unavailable
// terms are always valid, whatever their remaining fields hold.
func (t InsuranceTerms) Validate() error {
	if !t.Available {
		return nil
	}

	var bandErr error
	if t.MinDeclaredValue > t.MaxDeclaredValue {
		bandErr = errs.NewValueIsInvalidErrorWithCause(
			"insurance band",
			fmt.Errorf("min declared value %v is greater than max declared value %v",
				t.MinDeclaredValue, t.MaxDeclaredValue),
		)
	}

	var rateErr error
	if t.RatePercent < 0 || t.RatePercent > maxInsuranceRatePercent {
		rateErr = errs.NewValueIsOutOfRangeError("insuranceRate", t.RatePercent, 0, maxInsuranceRatePercent)
	}

	return errors.Join(
		rateErr,
		nonNegative("minInsuranceValue", t.MinDeclaredValue),
		nonNegative("maxInsuranceValue", t.MaxDeclaredValue),
		bandErr,
	)
}

func nonNegative(name string, value float64) error {
	if value < 0 {
		return errs.NewValueIsInvalidErrorWithCause(name, fmt.Errorf("%v is negative", value))
	}
	return nil
}

func nonNegativeDays(days int) error {
	if days < 0 {
		return errs.NewValueIsInvalidErrorWithCause("estimatedDays", fmt.Errorf("%d is negative", days))
	}
	return nil
}
