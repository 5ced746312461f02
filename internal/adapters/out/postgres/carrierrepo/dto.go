// Package carrierrepo provides data transfer objects and mapping functions for carrier persistence.
// Money columns are stored as numeric and carried as decimal.Decimal so that
// rates round-trip through the database exactly as an administrator typed them.
package carrierrepo

import (
	"forwarding/internal/core/domain/model/carrier"
	"forwarding/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CarrierDTO represents the database structure for persisting carrier aggregates.
type CarrierDTO struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name          string          `gorm:"type:varchar(255);not null"`
	Code          string          `gorm:"type:varchar(32);not null;uniqueIndex"`
	BaseRate      decimal.Decimal `gorm:"type:numeric(12,4);not null"`
	RatePerKg     decimal.Decimal `gorm:"type:numeric(12,4);not null"`
	RatePerKm     decimal.Decimal `gorm:"type:numeric(12,4);not null"`
	EstimatedDays int             `gorm:"type:int;not null"`
	Insurance     InsuranceDTO    `gorm:"embedded;embeddedPrefix:insurance_"`
	Priority      int             `gorm:"type:int;not null;default:0"`
	IsActive      bool            `gorm:"not null;index"`
	Services      []ServiceDTO    `gorm:"foreignKey:CarrierID;constraint:OnDelete:CASCADE"`
	Zones         []ZoneDTO       `gorm:"foreignKey:CarrierID;constraint:OnDelete:CASCADE"`
}

func (CarrierDTO) TableName() string {
	return "carriers"
}

// InsuranceDTO is embedded in the carriers table.
type InsuranceDTO struct {
	Available        bool            `gorm:"not null;default:false"`
	RatePercent      decimal.Decimal `gorm:"type:numeric(7,4);not null"`
	MinDeclaredValue decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	MaxDeclaredValue decimal.Decimal `gorm:"type:numeric(14,2);not null"`
}

// ServiceDTO represents a carrier service row.
type ServiceDTO struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CarrierID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name          string          `gorm:"type:varchar(255);not null"`
	BaseRate      decimal.Decimal `gorm:"type:numeric(12,4);not null"`
	RatePerKg     decimal.Decimal `gorm:"type:numeric(12,4);not null"`
	RatePerKm     decimal.Decimal `gorm:"type:numeric(12,4);not null"`
	EstimatedDays int             `gorm:"type:int;not null"`
}

func (ServiceDTO) TableName() string {
	return "carrier_services"
}

// ZoneDTO represents a carrier zone row.
type ZoneDTO struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CarrierID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name          string          `gorm:"type:varchar(255);not null"`
	BaseRate      decimal.Decimal `gorm:"type:numeric(12,4);not null"`
	RatePerKg     decimal.Decimal `gorm:"type:numeric(12,4);not null"`
	EstimatedDays int             `gorm:"type:int;not null"`
}

func (ZoneDTO) TableName() string {
	return "carrier_zones"
}

// fromDomain converts a carrier aggregate, services and zones included, to its database representation.
func fromDomain(aggregate *carrier.Carrier) CarrierDTO {
	carrierID := aggregate.ID().Bytes()
	rates := aggregate.Rates()
	insurance := aggregate.Insurance()

	services := make([]ServiceDTO, 0, len(aggregate.Services()))
	for _, s := range aggregate.Services() {
		sr := s.Rates()
		services = append(services, ServiceDTO{
			ID:            s.ID().Bytes(),
			CarrierID:     carrierID,
			Name:          s.Name(),
			BaseRate:      decimal.NewFromFloat(sr.BaseRate),
			RatePerKg:     decimal.NewFromFloat(sr.RatePerKg),
			RatePerKm:     decimal.NewFromFloat(sr.RatePerKm),
			EstimatedDays: sr.EstimatedDays,
		})
	}

	zones := make([]ZoneDTO, 0, len(aggregate.Zones()))
	for _, z := range aggregate.Zones() {
		zr := z.Rates()
		zones = append(zones, ZoneDTO{
			ID:            z.ID().Bytes(),
			CarrierID:     carrierID,
			Name:          z.Name(),
			BaseRate:      decimal.NewFromFloat(zr.BaseRate),
			RatePerKg:     decimal.NewFromFloat(zr.RatePerKg),
			EstimatedDays: zr.EstimatedDays,
		})
	}

	return CarrierDTO{
		ID:            carrierID,
		Name:          aggregate.Name(),
		Code:          aggregate.Code(),
		BaseRate:      decimal.NewFromFloat(rates.BaseRate),
		RatePerKg:     decimal.NewFromFloat(rates.RatePerKg),
		RatePerKm:     decimal.NewFromFloat(rates.RatePerKm),
		EstimatedDays: rates.EstimatedDays,
		Insurance: InsuranceDTO{
			Available:        insurance.Available,
			RatePercent:      decimal.NewFromFloat(insurance.RatePercent),
			MinDeclaredValue: decimal.NewFromFloat(insurance.MinDeclaredValue),
			MaxDeclaredValue: decimal.NewFromFloat(insurance.MaxDeclaredValue),
		},
		Priority: aggregate.Priority(),
		IsActive: aggregate.IsActive(),
		Services: services,
		Zones:    zones,
	}
}

// toDomain reconstructs the carrier aggregate with RestoreCarrier.
func toDomain(dto CarrierDTO) (*carrier.Carrier, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	services := make([]*carrier.Service, 0, len(dto.Services))
	for _, sDto := range dto.Services {
		s, sErr := serviceToDomain(sDto)
		if sErr != nil {
			return nil, sErr
		}
		services = append(services, s)
	}

	zones := make([]*carrier.Zone, 0, len(dto.Zones))
	for _, zDto := range dto.Zones {
		z, zErr := zoneToDomain(zDto)
		if zErr != nil {
			return nil, zErr
		}
		zones = append(zones, z)
	}

	return carrier.RestoreCarrier(
		id,
		dto.Name,
		dto.Code,
		carrier.RateCard{
			BaseRate:      dto.BaseRate.InexactFloat64(),
			RatePerKg:     dto.RatePerKg.InexactFloat64(),
			RatePerKm:     dto.RatePerKm.InexactFloat64(),
			EstimatedDays: dto.EstimatedDays,
		},
		carrier.InsuranceTerms{
			Available:        dto.Insurance.Available,
			RatePercent:      dto.Insurance.RatePercent.InexactFloat64(),
			MinDeclaredValue: dto.Insurance.MinDeclaredValue.InexactFloat64(),
			MaxDeclaredValue: dto.Insurance.MaxDeclaredValue.InexactFloat64(),
		},
		dto.Priority,
		dto.IsActive,
		services,
		zones,
	)
}

func serviceToDomain(dto ServiceDTO) (*carrier.Service, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return carrier.NewService(id, dto.Name, carrier.RateCard{
		BaseRate:      dto.BaseRate.InexactFloat64(),
		RatePerKg:     dto.RatePerKg.InexactFloat64(),
		RatePerKm:     dto.RatePerKm.InexactFloat64(),
		EstimatedDays: dto.EstimatedDays,
	})
}

func zoneToDomain(dto ZoneDTO) (*carrier.Zone, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return carrier.NewZone(id, dto.Name, carrier.ZoneRateCard{
		BaseRate:      dto.BaseRate.InexactFloat64(),
		RatePerKg:     dto.RatePerKg.InexactFloat64(),
		EstimatedDays: dto.EstimatedDays,
	})
}
