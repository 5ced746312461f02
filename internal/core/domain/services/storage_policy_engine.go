package services

import (
	"time"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/core/domain/model/storagepolicy"
)

// Surcharge approximations over the chargeable window: two weekend days per
// week and one holiday per ten days, each billed at half the daily rate.
const (
	weekendDaysPerWeek  = 2
	daysPerWeek         = 7
	daysPerHoliday      = 10
	surchargeRateFactor = 0.5
)

// StorageUsage is what a set of held packages has consumed.
type StorageUsage struct {
	WeightKg  float64
	ItemCount int
	DaysUsed  int
}

// Surcharges carries the call-level switches for the weekend and holiday
// surcharges. A surcharge applies only when both the policy and the call enable it.
type Surcharges struct {
	Weekends bool
	Holidays bool
}

// StorageFeeBreakdown itemizes a storage fee for invoices.
type StorageFeeBreakdown struct {
	BaseFee        float64
	ItemFee        float64
	WeekendFee     float64
	HolidayFee     float64
	ChargeableDays int
}

// StorageFee is the total owed together with its breakdown.
type StorageFee struct {
	TotalFee  float64
	Breakdown StorageFeeBreakdown
}

// StoragePolicyEngine computes storage fees and the dates around a policy's
// free period. The clock is injected so date helpers are testable; fee
// calculation does not depend on it.
type StoragePolicyEngine struct {
	now func() time.Time
}

// NewStoragePolicyEngine creates an engine reading "now" from the given clock.
// A nil clock means time.Now.
func NewStoragePolicyEngine(now func() time.Time) StoragePolicyEngine {
	if now == nil {
		now = time.Now
	}
	return StoragePolicyEngine{now: now}
}

// CalculateStorageFee computes the fee owed under policy for the given usage.
//
// Algorithm:
//   - Billable days are capped at the policy's MaxDaysAllowed
//   - Days inside the free period are free; no chargeable days means no fee
//   - A positive flat daily rate replaces everything below: fee = flat × days
//   - Otherwise the weight bracket selects the daily rate, and the fee is
//     base (rate × days) + items (count × per-item rate × days)
//     + weekend surcharge + holiday surcharge, floored at zero
func (e StoragePolicyEngine) CalculateStorageFee(
	policy *storagepolicy.StoragePolicy,
	usage StorageUsage,
	surcharges Surcharges,
) StorageFee {
	effectiveDays := min(usage.DaysUsed, policy.MaxDaysAllowed())
	chargeableDays := max(0, effectiveDays-policy.FreeDays())
	if chargeableDays == 0 {
		return StorageFee{}
	}

	days := float64(chargeableDays)

	if flat, ok := policy.FlatDailyRate(); ok {
		total := flat * days
		return StorageFee{
			TotalFee: total,
			Breakdown: StorageFeeBreakdown{
				BaseFee:        total,
				ChargeableDays: chargeableDays,
			},
		}
	}

	dailyRate := selectDailyRate(policy.WeightBrackets(), usage.WeightKg)

	breakdown := StorageFeeBreakdown{
		BaseFee:        dailyRate * days,
		ItemFee:        float64(usage.ItemCount) * policy.DailyRatePerItem() * days,
		ChargeableDays: chargeableDays,
	}

	if policy.WeekendCharges() && surcharges.Weekends {
		breakdown.WeekendFee = dailyRate * float64(weekendDays(chargeableDays)) * surchargeRateFactor
	}

	if policy.HolidayCharges() && surcharges.Holidays {
		breakdown.HolidayFee = dailyRate * float64(holidayDays(chargeableDays)) * surchargeRateFactor
	}

	return StorageFee{
		TotalFee:  kernel.NonNegative(breakdown.BaseFee + breakdown.ItemFee + breakdown.WeekendFee + breakdown.HolidayFee),
		Breakdown: breakdown,
	}
}

// FreePeriodEnd is the moment storage charges start: consolidation date plus free days.
func (e StoragePolicyEngine) FreePeriodEnd(consolidatedAt time.Time, policy *storagepolicy.StoragePolicy) time.Time {
	return kernel.AddDays(consolidatedAt, policy.FreeDays())
}

// WarningDate is when the "storage charges approaching" notice is due:
// WarningDays before the free period ends.
func (e StoragePolicyEngine) WarningDate(consolidatedAt time.Time, policy *storagepolicy.StoragePolicy) time.Time {
	return kernel.AddDays(consolidatedAt, policy.FreeDays()-policy.WarningDays())
}

// IsNearChargingPeriod reports whether the warning date has been reached.
func (e StoragePolicyEngine) IsNearChargingPeriod(consolidatedAt time.Time, policy *storagepolicy.StoragePolicy) bool {
	return !e.now().Before(e.WarningDate(consolidatedAt, policy))
}

// IsOverFreePeriod reports whether the free period has ended.
func (e StoragePolicyEngine) IsOverFreePeriod(consolidatedAt time.Time, policy *storagepolicy.StoragePolicy) bool {
	return e.now().After(e.FreePeriodEnd(consolidatedAt, policy))
}

// RemainingFreeDays counts whole days left in the free period, rounding a
// partial day up. Never negative.
func (e StoragePolicyEngine) RemainingFreeDays(consolidatedAt time.Time, policy *storagepolicy.StoragePolicy) int {
	return max(0, kernel.CeilDays(e.FreePeriodEnd(consolidatedAt, policy).Sub(e.now())))
}

// selectDailyRate walks the tier table top-down and takes the first bracket
// whose strict lower bound the weight exceeds. The small rate is the fallback.
func selectDailyRate(brackets []storagepolicy.WeightBracket, weightKg float64) float64 {
	for _, bracket := range brackets {
		if weightKg > bracket.AboveKg {
			return bracket.DailyRate
		}
	}
	return brackets[len(brackets)-1].DailyRate
}

// weekendDays is ceil(days × 2/7), computed on integers.
func weekendDays(chargeableDays int) int {
	return (chargeableDays*weekendDaysPerWeek + daysPerWeek - 1) / daysPerWeek
}

// holidayDays is ceil(days × 0.1), computed on integers.
func holidayDays(chargeableDays int) int {
	return (chargeableDays + daysPerHoliday - 1) / daysPerHoliday
}
