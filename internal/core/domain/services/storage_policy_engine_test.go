package services_test

import (
	"testing"
	"time"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/core/domain/model/storagepolicy"
	"forwarding/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func standardTerms() storagepolicy.Terms {
	return storagepolicy.Terms{
		FreeDays:         30,
		DailyRateSmall:   50,
		DailyRateMedium:  100,
		DailyRateLarge:   200,
		DailyRatePerItem: 25,
		WarningDays:      7,
		MaxDaysAllowed:   90,
	}
}

func newPolicy(t *testing.T, terms storagepolicy.Terms) *storagepolicy.StoragePolicy {
	t.Helper()
	p, err := storagepolicy.NewStoragePolicy(kernel.NewUUID(), 1, terms, time.Now())
	require.NoError(t, err)
	return p
}

func fixedClock(now time.Time) func() time.Time {
	return func() time.Time { return now }
}

func TestStoragePolicyEngine_CalculateStorageFee_RoundTrip(t *testing.T) {
	engine := services.NewStoragePolicyEngine(nil)
	policy := newPolicy(t, standardTerms())

	fee := engine.CalculateStorageFee(policy, services.StorageUsage{WeightKg: 0.8, ItemCount: 3, DaysUsed: 40}, services.Surcharges{})

	assert.Equal(t, 10, fee.Breakdown.ChargeableDays)
	assert.InDelta(t, 500, fee.Breakdown.BaseFee, delta)
	assert.InDelta(t, 750, fee.Breakdown.ItemFee, delta)
	assert.Zero(t, fee.Breakdown.WeekendFee)
	assert.Zero(t, fee.Breakdown.HolidayFee)
	assert.InDelta(t, 1250, fee.TotalFee, delta)
}

func TestStoragePolicyEngine_CalculateStorageFee_FreePeriod(t *testing.T) {
	engine := services.NewStoragePolicyEngine(nil)
	policy := newPolicy(t, standardTerms())

	for _, days := range []int{0, 1, 15, 29, 30} {
		fee := engine.CalculateStorageFee(
			policy,
			services.StorageUsage{WeightKg: 12, ItemCount: 8, DaysUsed: days},
			services.Surcharges{Weekends: true, Holidays: true},
		)
		assert.Equal(t, services.StorageFee{}, fee, "days used %d", days)
	}
}

func TestStoragePolicyEngine_CalculateStorageFee_MaxDaysClamp(t *testing.T) {
	engine := services.NewStoragePolicyEngine(nil)
	terms := standardTerms()
	terms.WeekendCharges = true
	terms.HolidayCharges = true
	policy := newPolicy(t, terms)
	surcharges := services.Surcharges{Weekends: true, Holidays: true}

	atCap := engine.CalculateStorageFee(policy, services.StorageUsage{WeightKg: 3, ItemCount: 2, DaysUsed: 90}, surcharges)
	overCap := engine.CalculateStorageFee(policy, services.StorageUsage{WeightKg: 3, ItemCount: 2, DaysUsed: 1090}, surcharges)

	assert.Equal(t, atCap, overCap)
	assert.Equal(t, 60, overCap.Breakdown.ChargeableDays)
}

func TestStoragePolicyEngine_CalculateStorageFee_FlatRate(t *testing.T) {
	engine := services.NewStoragePolicyEngine(nil)
	flat := 100.0
	terms := standardTerms()
	terms.FlatDailyRate = &flat
	terms.WeekendCharges = true
	terms.HolidayCharges = true
	policy := newPolicy(t, terms)

	for _, usage := range []services.StorageUsage{
		{WeightKg: 0.2, ItemCount: 1, DaysUsed: 35},
		{WeightKg: 40, ItemCount: 50, DaysUsed: 35},
	} {
		fee := engine.CalculateStorageFee(policy, usage, services.Surcharges{Weekends: true, Holidays: true})

		assert.InDelta(t, 500, fee.TotalFee, delta)
		assert.InDelta(t, 500, fee.Breakdown.BaseFee, delta)
		assert.Zero(t, fee.Breakdown.ItemFee)
		assert.Zero(t, fee.Breakdown.WeekendFee)
		assert.Zero(t, fee.Breakdown.HolidayFee)
		assert.Equal(t, 5, fee.Breakdown.ChargeableDays)
	}
}

func TestStoragePolicyEngine_CalculateStorageFee_ZeroFlatRateKeepsTiers(t *testing.T) {
	engine := services.NewStoragePolicyEngine(nil)
	zero := 0.0
	terms := standardTerms()
	terms.FlatDailyRate = &zero
	policy := newPolicy(t, terms)

	fee := engine.CalculateStorageFee(policy, services.StorageUsage{WeightKg: 0.8, ItemCount: 3, DaysUsed: 40}, services.Surcharges{})

	assert.InDelta(t, 1250, fee.TotalFee, delta)
}

func TestStoragePolicyEngine_CalculateStorageFee_WeightBrackets(t *testing.T) {
	engine := services.NewStoragePolicyEngine(nil)
	policy := newPolicy(t, standardTerms())

	tests := []struct {
		name     string
		weightKg float64
		wantRate float64
	}{
		{"light parcel", 0.5, 50},
		{"exactly one kilogram is small", 1, 50},
		{"just above one kilogram is medium", 1.01, 100},
		{"exactly five kilograms is medium", 5, 100},
		{"just above five kilograms is large", 5.01, 200},
		{"heavy parcel", 30, 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fee := engine.CalculateStorageFee(policy, services.StorageUsage{WeightKg: tt.weightKg, DaysUsed: 31}, services.Surcharges{})

			assert.InDelta(t, tt.wantRate, fee.Breakdown.BaseFee, delta)
			assert.InDelta(t, tt.wantRate, fee.TotalFee, delta)
		})
	}
}

func TestStoragePolicyEngine_CalculateStorageFee_Surcharges(t *testing.T) {
	engine := services.NewStoragePolicyEngine(nil)
	usage := services.StorageUsage{WeightKg: 0.8, DaysUsed: 40}

	tests := []struct {
		name           string
		policyWeekends bool
		policyHolidays bool
		surcharges     services.Surcharges
		wantWeekend    float64
		wantHoliday    float64
	}{
		{
			name:           "both enabled on both sides",
			policyWeekends: true,
			policyHolidays: true,
			surcharges:     services.Surcharges{Weekends: true, Holidays: true},
			wantWeekend:    75, // ceil(10*2/7)=3 days at 25
			wantHoliday:    25, // ceil(10*0.1)=1 day at 25
		},
		{
			name:           "policy enables, call does not",
			policyWeekends: true,
			policyHolidays: true,
			surcharges:     services.Surcharges{},
		},
		{
			name:       "call enables, policy does not",
			surcharges: services.Surcharges{Weekends: true, Holidays: true},
		},
		{
			name:           "weekends only",
			policyWeekends: true,
			policyHolidays: true,
			surcharges:     services.Surcharges{Weekends: true},
			wantWeekend:    75,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			terms := standardTerms()
			terms.WeekendCharges = tt.policyWeekends
			terms.HolidayCharges = tt.policyHolidays
			policy := newPolicy(t, terms)

			fee := engine.CalculateStorageFee(policy, usage, tt.surcharges)

			assert.InDelta(t, tt.wantWeekend, fee.Breakdown.WeekendFee, delta)
			assert.InDelta(t, tt.wantHoliday, fee.Breakdown.HolidayFee, delta)
			assert.InDelta(t, 500+tt.wantWeekend+tt.wantHoliday, fee.TotalFee, delta)
		})
	}
}

func TestStoragePolicyEngine_CalculateStorageFee_SurchargeDayCounts(t *testing.T) {
	engine := services.NewStoragePolicyEngine(nil)
	terms := standardTerms()
	terms.FreeDays = 0
	terms.DailyRateSmall = 2
	terms.DailyRatePerItem = 0
	terms.WeekendCharges = true
	terms.HolidayCharges = true
	policy := newPolicy(t, terms)

	tests := []struct {
		days        int
		weekendDays int
		holidayDays int
	}{
		{1, 1, 1},
		{7, 2, 1},
		{8, 3, 1},
		{10, 3, 1},
		{11, 4, 2},
		{14, 4, 2},
		{21, 6, 3},
	}

	for _, tt := range tests {
		fee := engine.CalculateStorageFee(
			policy,
			services.StorageUsage{WeightKg: 1, DaysUsed: tt.days},
			services.Surcharges{Weekends: true, Holidays: true},
		)

		// half of a daily rate of 2 is one unit per surcharged day
		assert.InDelta(t, float64(tt.weekendDays), fee.Breakdown.WeekendFee, delta, "days %d", tt.days)
		assert.InDelta(t, float64(tt.holidayDays), fee.Breakdown.HolidayFee, delta, "days %d", tt.days)
	}
}

func TestStoragePolicyEngine_CalculateStorageFee_FlooredAtZero(t *testing.T) {
	engine := services.NewStoragePolicyEngine(nil)
	terms := standardTerms()
	terms.DailyRateSmall = -10
	terms.DailyRatePerItem = -5
	terms.WeekendCharges = true
	policy := newPolicy(t, terms)

	fee := engine.CalculateStorageFee(
		policy,
		services.StorageUsage{WeightKg: 0.5, ItemCount: 4, DaysUsed: 45},
		services.Surcharges{Weekends: true},
	)

	assert.Zero(t, fee.TotalFee)
	assert.Negative(t, fee.Breakdown.BaseFee, "breakdown keeps the raw components")
}

func TestStoragePolicyEngine_CalculateStorageFee_FreeDaysBeyondCap(t *testing.T) {
	engine := services.NewStoragePolicyEngine(nil)
	terms := standardTerms()
	terms.FreeDays = 100
	policy := newPolicy(t, terms)

	fee := engine.CalculateStorageFee(policy, services.StorageUsage{WeightKg: 2, DaysUsed: 500}, services.Surcharges{})

	assert.Equal(t, services.StorageFee{}, fee)
}

func TestStoragePolicyEngine_WarningDate(t *testing.T) {
	engine := services.NewStoragePolicyEngine(nil)
	policy := newPolicy(t, standardTerms())
	consolidatedAt := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, time.Date(2024, 1, 24, 0, 0, 0, 0, time.UTC), engine.WarningDate(consolidatedAt, policy))
	assert.Equal(t, time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC), engine.FreePeriodEnd(consolidatedAt, policy))
}

func TestStoragePolicyEngine_ClockDependentHelpers(t *testing.T) {
	policy := newPolicy(t, standardTerms())
	consolidatedAt := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		now           time.Time
		wantNear      bool
		wantOver      bool
		wantRemaining int
	}{
		{
			name:          "day of consolidation",
			now:           consolidatedAt,
			wantRemaining: 30,
		},
		{
			name:          "just before the warning date",
			now:           time.Date(2024, 1, 23, 23, 59, 0, 0, time.UTC),
			wantRemaining: 8,
		},
		{
			name:          "on the warning date",
			now:           time.Date(2024, 1, 24, 0, 0, 0, 0, time.UTC),
			wantNear:      true,
			wantRemaining: 7,
		},
		{
			name:          "partial day rounds up",
			now:           time.Date(2024, 1, 30, 12, 0, 0, 0, time.UTC),
			wantNear:      true,
			wantRemaining: 1,
		},
		{
			name:     "exactly at the end of the free period",
			now:      time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
			wantNear: true,
		},
		{
			name:     "after the free period",
			now:      time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC),
			wantNear: true,
			wantOver: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := services.NewStoragePolicyEngine(fixedClock(tt.now))

			assert.Equal(t, tt.wantNear, engine.IsNearChargingPeriod(consolidatedAt, policy))
			assert.Equal(t, tt.wantOver, engine.IsOverFreePeriod(consolidatedAt, policy))
			assert.Equal(t, tt.wantRemaining, engine.RemainingFreeDays(consolidatedAt, policy))
		})
	}
}
