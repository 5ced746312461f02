package queries

import (
	"context"

	"forwarding/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetAllCarriersQueryHandler reads the catalog with three flat queries
// (carriers, services, zones) and stitches the rows together in memory.
type GetAllCarriersQueryHandler struct {
	db *gorm.DB
}

func NewGetAllCarriersQueryHandler(db *gorm.DB) GetAllCarriersQueryHandler {
	return GetAllCarriersQueryHandler{db: db}
}

// Handle returns carriers ordered by code; services and zones are ordered by name.
func (h GetAllCarriersQueryHandler) Handle(
	ctx context.Context,
	query GetAllCarriersQuery,
) ([]GetAllCarriersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	carriers, index, err := h.readCarriers(ctx, query.ActiveOnly())
	if err != nil {
		return nil, err
	}
	if len(carriers) == 0 {
		return carriers, nil
	}

	if err = h.readServices(ctx, carriers, index); err != nil {
		return nil, err
	}

	if err = h.readZones(ctx, carriers, index); err != nil {
		return nil, err
	}

	return carriers, nil
}

func (h GetAllCarriersQueryHandler) readCarriers(
	ctx context.Context,
	activeOnly bool,
) ([]GetAllCarriersQueryResponse, map[uuid.UUID]int, error) {
	carriers := make([]GetAllCarriersQueryResponse, 0)
	index := make(map[uuid.UUID]int)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			code,
			base_rate,
			rate_per_kg,
			rate_per_km,
			estimated_days,
			insurance_available,
			insurance_rate_percent,
			insurance_min_declared_value,
			insurance_max_declared_value,
			priority,
			is_active
		FROM carriers
		WHERE is_active OR NOT ?
		ORDER BY code
	`, activeOnly).Rows()
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			c                       GetAllCarriersQueryResponse
			id                      uuid.UUID
			baseRate, perKg, perKm  decimal.Decimal
			insRate, insMin, insMax decimal.Decimal
		)

		err = rows.Scan(
			&id,
			&c.Name,
			&c.Code,
			&baseRate,
			&perKg,
			&perKm,
			&c.Rates.EstimatedDays,
			&c.Insurance.Available,
			&insRate,
			&insMin,
			&insMax,
			&c.Priority,
			&c.IsActive,
		)
		if err != nil {
			return nil, nil, err
		}

		if c.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, nil, err
		}
		c.Rates.BaseRate = baseRate.InexactFloat64()
		c.Rates.RatePerKg = perKg.InexactFloat64()
		c.Rates.RatePerKm = perKm.InexactFloat64()
		c.Insurance.RatePercent = insRate.InexactFloat64()
		c.Insurance.MinDeclaredValue = insMin.InexactFloat64()
		c.Insurance.MaxDeclaredValue = insMax.InexactFloat64()
		c.Services = make([]CarrierServiceView, 0)
		c.Zones = make([]CarrierZoneView, 0)

		index[id] = len(carriers)
		carriers = append(carriers, c)
	}

	if err = rows.Err(); err != nil {
		return nil, nil, err
	}

	return carriers, index, nil
}

func (h GetAllCarriersQueryHandler) readServices(
	ctx context.Context,
	carriers []GetAllCarriersQueryResponse,
	index map[uuid.UUID]int,
) error {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			carrier_id,
			name,
			base_rate,
			rate_per_kg,
			rate_per_km,
			estimated_days
		FROM carrier_services
		ORDER BY name
	`).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			s                      CarrierServiceView
			id, carrierID          uuid.UUID
			baseRate, perKg, perKm decimal.Decimal
		)

		if err = rows.Scan(&id, &carrierID, &s.Name, &baseRate, &perKg, &perKm, &s.Rates.EstimatedDays); err != nil {
			return err
		}

		i, ok := index[carrierID]
		if !ok {
			continue
		}

		if s.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return err
		}
		s.Rates.BaseRate = baseRate.InexactFloat64()
		s.Rates.RatePerKg = perKg.InexactFloat64()
		s.Rates.RatePerKm = perKm.InexactFloat64()
		carriers[i].Services = append(carriers[i].Services, s)
	}

	return rows.Err()
}

func (h GetAllCarriersQueryHandler) readZones(
	ctx context.Context,
	carriers []GetAllCarriersQueryResponse,
	index map[uuid.UUID]int,
) error {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			carrier_id,
			name,
			base_rate,
			rate_per_kg,
			estimated_days
		FROM carrier_zones
		ORDER BY name
	`).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			z               CarrierZoneView
			id, carrierID   uuid.UUID
			baseRate, perKg decimal.Decimal
		)

		if err = rows.Scan(&id, &carrierID, &z.Name, &baseRate, &perKg, &z.Rates.EstimatedDays); err != nil {
			return err
		}

		i, ok := index[carrierID]
		if !ok {
			continue
		}

		if z.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return err
		}
		z.Rates.BaseRate = baseRate.InexactFloat64()
		z.Rates.RatePerKg = perKg.InexactFloat64()
		carriers[i].Zones = append(carriers[i].Zones, z)
	}

	return rows.Err()
}
