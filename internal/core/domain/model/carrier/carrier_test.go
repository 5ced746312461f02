package carrier_test

import (
	"testing"

	"forwarding/internal/core/domain/model/carrier"
	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func standardInsurance() carrier.InsuranceTerms {
	return carrier.InsuranceTerms{
		Available:        true,
		RatePercent:      2,
		MinDeclaredValue: 100,
		MaxDeclaredValue: 5000,
	}
}

func newTestCarrier(t *testing.T) *carrier.Carrier {
	t.Helper()
	c, err := carrier.NewCarrier(
		kernel.NewUUID(),
		"DHL Express",
		"dhl",
		carrier.RateCard{BaseRate: 10, RatePerKg: 2, RatePerKm: 0.1, EstimatedDays: 5},
		standardInsurance(),
		10,
	)
	require.NoError(t, err)
	return c
}

func TestNewCarrier(t *testing.T) {
	tests := []struct {
		name      string
		id        kernel.UUID
		carrier   string
		code      string
		insurance carrier.InsuranceTerms
		wantErr   error
	}{
		{
			name:      "valid carrier",
			id:        kernel.NewUUID(),
			carrier:   "FedEx",
			code:      "fedex",
			insurance: standardInsurance(),
		},
		{
			name:      "valid carrier without insurance",
			id:        kernel.NewUUID(),
			carrier:   "USPS",
			code:      "usps",
			insurance: carrier.NoInsurance(),
		},
		{
			name:    "empty name",
			id:      kernel.NewUUID(),
			carrier: "   ",
			code:    "ups",
			wantErr: errs.ErrValueIsRequired,
		},
		{
			name:    "empty code",
			id:      kernel.NewUUID(),
			carrier: "UPS",
			code:    "",
			wantErr: errs.ErrValueIsRequired,
		},
		{
			name:    "zero id",
			id:      kernel.UUID{},
			carrier: "UPS",
			code:    "ups",
			wantErr: errs.ErrValueIsRequired,
		},
		{
			name:    "inverted insurance band",
			id:      kernel.NewUUID(),
			carrier: "UPS",
			code:    "ups",
			insurance: carrier.InsuranceTerms{
				Available: true, RatePercent: 1, MinDeclaredValue: 500, MaxDeclaredValue: 100,
			},
			wantErr: errs.ErrValueIsInvalid,
		},
		{
			name:    "insurance rate above one hundred percent",
			id:      kernel.NewUUID(),
			carrier: "UPS",
			code:    "ups",
			insurance: carrier.InsuranceTerms{
				Available: true, RatePercent: 120, MinDeclaredValue: 0, MaxDeclaredValue: 100,
			},
			wantErr: errs.ErrValueIsOutOfRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := carrier.NewCarrier(tt.id, tt.carrier, tt.code, carrier.RateCard{BaseRate: 5}, tt.insurance, 1)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, c)
				return
			}

			require.NoError(t, err)
			require.NoError(t, c.Validate())
			assert.True(t, c.IsActive())
			assert.Empty(t, c.Services())
			assert.Empty(t, c.Zones())
		})
	}
}

func TestNewCarrier_NormalizesCode(t *testing.T) {
	c, err := carrier.NewCarrier(kernel.NewUUID(), " Aramex ", " arx ", carrier.RateCard{}, carrier.NoInsurance(), 0)
	require.NoError(t, err)

	assert.Equal(t, "ARX", c.Code())
	assert.Equal(t, "Aramex", c.Name())
}

func TestCarrier_Validate(t *testing.T) {
	var zero carrier.Carrier
	assert.Equal(t, carrier.ErrCarrierIsNotConstructed, zero.Validate())

	var nilCarrier *carrier.Carrier
	assert.Equal(t, carrier.ErrCarrierIsNotConstructed, nilCarrier.Validate())

	assert.NoError(t, newTestCarrier(t).Validate())
}

func TestCarrier_ActivateDeactivate(t *testing.T) {
	c := newTestCarrier(t)

	c.Deactivate()
	assert.False(t, c.IsActive())

	c.Activate()
	assert.True(t, c.IsActive())
}

func TestCarrier_AddService(t *testing.T) {
	c := newTestCarrier(t)

	ground, err := c.AddService("Ground", carrier.RateCard{BaseRate: 1, EstimatedDays: 7})
	require.NoError(t, err)
	overnight, err := c.AddService("Overnight", carrier.RateCard{BaseRate: 25, EstimatedDays: 1})
	require.NoError(t, err)

	assert.Len(t, c.Services(), 2)

	found, err := c.FindService(overnight.ID())
	require.NoError(t, err)
	assert.Equal(t, "Overnight", found.Name())

	_, err = c.AddService("ground", carrier.RateCard{})
	require.ErrorIs(t, err, carrier.ErrServiceAlreadyExists)

	_, err = c.AddService("", carrier.RateCard{})
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = c.FindService(kernel.NewUUID())
	require.ErrorIs(t, err, carrier.ErrServiceNotFound)

	assert.True(t, ground.ID().IsEqual(c.Services()[0].ID()))
}

func TestCarrier_AddZone(t *testing.T) {
	c := newTestCarrier(t)

	eu, err := c.AddZone("EU", carrier.ZoneRateCard{BaseRate: 3, RatePerKg: 0.5})
	require.NoError(t, err)

	found, err := c.FindZone(eu.ID())
	require.NoError(t, err)
	assert.InDelta(t, 0.5, found.Rates().RatePerKg, 1e-9)

	_, err = c.AddZone("eu", carrier.ZoneRateCard{})
	require.ErrorIs(t, err, carrier.ErrZoneAlreadyExists)

	_, err = c.FindZone(kernel.NewUUID())
	require.ErrorIs(t, err, carrier.ErrZoneNotFound)
}

func TestCarrier_ServicesReturnsCopy(t *testing.T) {
	c := newTestCarrier(t)
	_, err := c.AddService("Ground", carrier.RateCard{})
	require.NoError(t, err)

	services := c.Services()
	services[0] = nil

	assert.NotNil(t, c.Services()[0])
}

func TestRestoreCarrier(t *testing.T) {
	id := kernel.NewUUID()
	service, err := carrier.NewService(kernel.NewUUID(), "Ground", carrier.RateCard{BaseRate: 1})
	require.NoError(t, err)
	zone, err := carrier.NewZone(kernel.NewUUID(), "Asia", carrier.ZoneRateCard{BaseRate: 2})
	require.NoError(t, err)

	c, err := carrier.RestoreCarrier(id, "Aramex", "ARX", carrier.RateCard{BaseRate: 3},
		carrier.NoInsurance(), 5, false, []*carrier.Service{service}, []*carrier.Zone{zone})
	require.NoError(t, err)

	assert.True(t, c.ID().IsEqual(id))
	assert.False(t, c.IsActive())
	assert.Equal(t, 5, c.Priority())
	assert.Len(t, c.Services(), 1)
	assert.Len(t, c.Zones(), 1)

	_, err = carrier.RestoreCarrier(id, "Aramex", "ARX", carrier.RateCard{}, carrier.NoInsurance(), 0, true,
		[]*carrier.Service{{}}, nil)
	require.ErrorIs(t, err, carrier.ErrServiceIsNotConstructed)
}

func TestCarrier_IsEqual(t *testing.T) {
	c := newTestCarrier(t)
	other := newTestCarrier(t)

	assert.True(t, c.IsEqual(c))
	assert.False(t, c.IsEqual(other))
	assert.False(t, c.IsEqual(nil))
}
