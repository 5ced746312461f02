// Package storagepolicyrepo persists versioned storage policies.
package storagepolicyrepo

import (
	"time"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/core/domain/model/storagepolicy"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// StoragePolicyDTO represents the database structure for storage policies.
// FlatDailyRate is NULL when the policy has no flat override. At most one row
// may have IsActive set.
type StoragePolicyDTO struct {
	ID               uuid.UUID           `gorm:"type:uuid;primaryKey"`
	Version          int                 `gorm:"type:int;not null;uniqueIndex"`
	FreeDays         int                 `gorm:"type:int;not null"`
	DailyRateSmall   decimal.Decimal     `gorm:"type:numeric(12,4);not null"`
	DailyRateMedium  decimal.Decimal     `gorm:"type:numeric(12,4);not null"`
	DailyRateLarge   decimal.Decimal     `gorm:"type:numeric(12,4);not null"`
	DailyRatePerItem decimal.Decimal     `gorm:"type:numeric(12,4);not null"`
	FlatDailyRate    decimal.NullDecimal `gorm:"type:numeric(12,4)"`
	WeekendCharges   bool                `gorm:"not null;default:false"`
	HolidayCharges   bool                `gorm:"not null;default:false"`
	WarningDays      int                 `gorm:"type:int;not null"`
	MaxDaysAllowed   int                 `gorm:"type:int;not null"`
	IsActive         bool                `gorm:"not null;uniqueIndex:idx_storage_policies_single_active,where:is_active"`
	CreatedAt        time.Time           `gorm:"not null"`
}

func (StoragePolicyDTO) TableName() string {
	return "storage_policies"
}

func fromDomain(policy *storagepolicy.StoragePolicy) StoragePolicyDTO {
	terms := policy.Terms()

	var flat decimal.NullDecimal
	if terms.FlatDailyRate != nil {
		flat = decimal.NewNullDecimal(decimal.NewFromFloat(*terms.FlatDailyRate))
	}

	return StoragePolicyDTO{
		ID:               policy.ID().Bytes(),
		Version:          policy.Version(),
		FreeDays:         terms.FreeDays,
		DailyRateSmall:   decimal.NewFromFloat(terms.DailyRateSmall),
		DailyRateMedium:  decimal.NewFromFloat(terms.DailyRateMedium),
		DailyRateLarge:   decimal.NewFromFloat(terms.DailyRateLarge),
		DailyRatePerItem: decimal.NewFromFloat(terms.DailyRatePerItem),
		FlatDailyRate:    flat,
		WeekendCharges:   terms.WeekendCharges,
		HolidayCharges:   terms.HolidayCharges,
		WarningDays:      terms.WarningDays,
		MaxDaysAllowed:   terms.MaxDaysAllowed,
		IsActive:         policy.IsActive(),
		CreatedAt:        policy.CreatedAt(),
	}
}

func toDomain(dto StoragePolicyDTO) (*storagepolicy.StoragePolicy, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var flat *float64
	if dto.FlatDailyRate.Valid {
		v := dto.FlatDailyRate.Decimal.InexactFloat64()
		flat = &v
	}

	terms := storagepolicy.Terms{
		FreeDays:         dto.FreeDays,
		DailyRateSmall:   dto.DailyRateSmall.InexactFloat64(),
		DailyRateMedium:  dto.DailyRateMedium.InexactFloat64(),
		DailyRateLarge:   dto.DailyRateLarge.InexactFloat64(),
		DailyRatePerItem: dto.DailyRatePerItem.InexactFloat64(),
		FlatDailyRate:    flat,
		WeekendCharges:   dto.WeekendCharges,
		HolidayCharges:   dto.HolidayCharges,
		WarningDays:      dto.WarningDays,
		MaxDaysAllowed:   dto.MaxDaysAllowed,
	}

	return storagepolicy.RestoreStoragePolicy(id, dto.Version, terms, dto.IsActive, dto.CreatedAt)
}
