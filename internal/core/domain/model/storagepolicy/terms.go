package storagepolicy

import (
	"errors"
	"fmt"

	"forwarding/internal/pkg/errs"
)

// Terms is the administrator-edited rule set of a storage policy.
//
// Daily rates are in the platform's single currency unit. FlatDailyRate, when
// set and positive, replaces the whole weight-tiered model with one daily charge.
type Terms struct {
	// FreeDays is the grace period before charges start.
	FreeDays int

	DailyRateSmall   float64
	DailyRateMedium  float64
	DailyRateLarge   float64
	DailyRatePerItem float64

	// FlatDailyRate is optional; nil and non-positive values leave the tiered model in force.
	FlatDailyRate *float64

	WeekendCharges bool
	HolidayCharges bool

	// WarningDays is how long before the free period ends a warning should fire.
	WarningDays int
	// MaxDaysAllowed caps billable days.
	MaxDaysAllowed int
}

// ValidateNonNegativeRates reports every negative rate of the terms.
// Called on the admin write path only; the fee calculation tolerates negative
// rates and floors its total at zero.
func (t Terms) ValidateNonNegativeRates() error {
	var flatErr error
	if t.FlatDailyRate != nil {
		flatErr = nonNegativeRate("flatDailyRate", *t.FlatDailyRate)
	}

	return errors.Join(
		nonNegativeRate("dailyRateSmall", t.DailyRateSmall),
		nonNegativeRate("dailyRateMedium", t.DailyRateMedium),
		nonNegativeRate("dailyRateLarge", t.DailyRateLarge),
		nonNegativeRate("dailyRatePerItem", t.DailyRatePerItem),
		flatErr,
	)
}

// ValidateDays reports every negative day count of the terms.
func (t Terms) ValidateDays() error {
	return errors.Join(
		nonNegativeDays("freeDays", t.FreeDays),
		nonNegativeDays("warningDays", t.WarningDays),
		nonNegativeDays("maxDaysAllowed", t.MaxDaysAllowed),
	)
}

func nonNegativeRate(name string, value float64) error {
	if value < 0 {
		return errs.NewValueIsInvalidErrorWithCause(name, fmt.Errorf("%v is negative", value))
	}
	return nil
}

func nonNegativeDays(name string, value int) error {
	if value < 0 {
		return errs.NewValueIsInvalidErrorWithCause(name, fmt.Errorf("%d is negative", value))
	}
	return nil
}
