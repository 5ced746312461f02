package http

import (
	"forwarding/internal/core/application/usecases/queries"
	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/generated/servers"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

func valueOr[T any](v *T, fallback T) T {
	if v == nil {
		return fallback
	}
	return *v
}

// fromAPIUUID rejects the nil UUID, which the binder accepts.
func fromAPIUUID(id openapi_types.UUID) (kernel.UUID, error) {
	return kernel.UUIDFromBytes(id[:])
}

func fromOptionalAPIUUID(id *openapi_types.UUID) (*kernel.UUID, error) {
	if id == nil {
		return nil, nil //nolint:nilnil // absent identifier
	}

	converted, err := fromAPIUUID(*id)
	if err != nil {
		return nil, err
	}
	return &converted, nil
}

func toAPICarrier(c queries.GetAllCarriersQueryResponse) servers.Carrier {
	response := servers.Carrier{
		Id:            c.ID.Bytes(),
		Name:          c.Name,
		Code:          c.Code,
		BaseRate:      c.Rates.BaseRate,
		RatePerKg:     c.Rates.RatePerKg,
		RatePerKm:     c.Rates.RatePerKm,
		EstimatedDays: c.Rates.EstimatedDays,
		Insurance: servers.Insurance{
			Available:        c.Insurance.Available,
			RatePercent:      c.Insurance.RatePercent,
			MinDeclaredValue: c.Insurance.MinDeclaredValue,
			MaxDeclaredValue: c.Insurance.MaxDeclaredValue,
		},
		Priority: c.Priority,
		IsActive: c.IsActive,
		Services: make([]servers.CarrierService, len(c.Services)),
		Zones:    make([]servers.CarrierZone, len(c.Zones)),
	}

	for i, s := range c.Services {
		response.Services[i] = servers.CarrierService{
			Id:            s.ID.Bytes(),
			Name:          s.Name,
			BaseRate:      s.Rates.BaseRate,
			RatePerKg:     s.Rates.RatePerKg,
			RatePerKm:     s.Rates.RatePerKm,
			EstimatedDays: s.Rates.EstimatedDays,
		}
	}

	for i, z := range c.Zones {
		response.Zones[i] = servers.CarrierZone{
			Id:            z.ID.Bytes(),
			Name:          z.Name,
			BaseRate:      z.Rates.BaseRate,
			RatePerKg:     z.Rates.RatePerKg,
			EstimatedDays: z.Rates.EstimatedDays,
		}
	}

	return response
}

func toAPIQuote(q queries.QuoteShipmentQueryResponse) servers.Quote {
	response := servers.Quote{
		CarrierId:        q.CarrierID.Bytes(),
		CarrierName:      q.CarrierName,
		CarrierCode:      q.CarrierCode,
		ShippingRate:     q.ShippingRate,
		InsurancePremium: q.InsurancePremium,
		Insured:          q.Insured,
		Total:            q.Total,
		EstimatedDays:    q.EstimatedDays,
	}

	if q.ServiceID != nil {
		id, name := q.ServiceID.Bytes(), q.ServiceName
		response.ServiceId, response.ServiceName = &id, &name
	}
	if q.ZoneID != nil {
		id, name := q.ZoneID.Bytes(), q.ZoneName
		response.ZoneId, response.ZoneName = &id, &name
	}

	return response
}

func toAPIStorageFee(f queries.GetStorageFeeQueryResponse) servers.StorageFee {
	return servers.StorageFee{
		ConsolidationId: f.ConsolidationID.Bytes(),
		SuiteNumber:     f.SuiteNumber,
		PolicyVersion:   f.PolicyVersion,
		DaysStored:      f.DaysStored,
		TotalFee:        f.Fee.TotalFee,
		Breakdown: servers.StorageFeeBreakdown{
			BaseFee:        f.Fee.Breakdown.BaseFee,
			ItemFee:        f.Fee.Breakdown.ItemFee,
			WeekendFee:     f.Fee.Breakdown.WeekendFee,
			HolidayFee:     f.Fee.Breakdown.HolidayFee,
			ChargeableDays: f.Fee.Breakdown.ChargeableDays,
		},
		WarningDate:          f.WarningDate,
		FreePeriodEnd:        f.FreePeriodEnd,
		IsNearChargingPeriod: f.IsNearChargingPeriod,
		IsOverFreePeriod:     f.IsOverFreePeriod,
		RemainingFreeDays:    f.RemainingFreeDays,
	}
}
