package carrier_test

import (
	"testing"

	"forwarding/internal/core/domain/model/carrier"
	"forwarding/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateCard_ValidateNonNegative(t *testing.T) {
	require.NoError(t, carrier.RateCard{BaseRate: 1, RatePerKg: 2, RatePerKm: 3, EstimatedDays: 4}.ValidateNonNegative())
	require.NoError(t, carrier.RateCard{}.ValidateNonNegative())

	err := carrier.RateCard{BaseRate: -1, RatePerKg: -2}.ValidateNonNegative()
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Contains(t, err.Error(), "baseRate")
	assert.Contains(t, err.Error(), "ratePerKg")
	assert.NotContains(t, err.Error(), "ratePerKm")

	require.ErrorIs(t, carrier.RateCard{EstimatedDays: -1}.ValidateNonNegative(), errs.ErrValueIsInvalid)
}

func TestInsuranceTerms_Covers(t *testing.T) {
	terms := standardInsurance()

	tests := []struct {
		name  string
		value float64
		want  bool
	}{
		{name: "below band", value: 50, want: false},
		{name: "at lower bound", value: 100, want: true},
		{name: "inside band", value: 1000, want: true},
		{name: "at upper bound", value: 5000, want: true},
		{name: "above band", value: 6000, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, terms.Covers(tt.value))
		})
	}

	assert.False(t, carrier.NoInsurance().Covers(0))
}

func TestInsuranceTerms_Validate(t *testing.T) {
	require.NoError(t, carrier.NoInsurance().Validate())
	require.NoError(t, carrier.InsuranceTerms{Available: false, MinDeclaredValue: 10, MaxDeclaredValue: 1}.Validate())
	require.NoError(t, standardInsurance().Validate())

	err := carrier.InsuranceTerms{Available: true, RatePercent: 1, MinDeclaredValue: -5, MaxDeclaredValue: 10}.Validate()
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Contains(t, err.Error(), "minInsuranceValue")
}
