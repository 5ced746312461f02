// Package consolidationrepo persists consolidations held in storage.
package consolidationrepo

import (
	"time"

	"forwarding/internal/core/domain/model/consolidation"
	"forwarding/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ConsolidationDTO represents the database structure for consolidations.
// The (status, warning_sent_at) index backs the storage warning scan.
type ConsolidationDTO struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	SuiteNumber    string          `gorm:"type:varchar(64);not null;index"`
	ConsolidatedAt time.Time       `gorm:"not null"`
	WeightKg       decimal.Decimal `gorm:"type:numeric(10,3);not null"`
	ItemCount      int             `gorm:"type:int;not null"`
	Status         int             `gorm:"type:smallint;not null;index:idx_consolidations_warning_scan,priority:1"`
	WarningSentAt  *time.Time      `gorm:"index:idx_consolidations_warning_scan,priority:2"`
	ReleasedAt     *time.Time
}

func (ConsolidationDTO) TableName() string {
	return "consolidations"
}

func fromDomain(aggregate *consolidation.Consolidation) ConsolidationDTO {
	return ConsolidationDTO{
		ID:             aggregate.ID().Bytes(),
		SuiteNumber:    aggregate.SuiteNumber(),
		ConsolidatedAt: aggregate.ConsolidatedAt(),
		WeightKg:       decimal.NewFromFloat(aggregate.WeightKg()),
		ItemCount:      aggregate.ItemCount(),
		Status:         int(aggregate.Status()),
		WarningSentAt:  aggregate.WarningSentAt(),
		ReleasedAt:     aggregate.ReleasedAt(),
	}
}

func toDomain(dto ConsolidationDTO) (*consolidation.Consolidation, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return consolidation.RestoreConsolidation(
		id,
		dto.SuiteNumber,
		dto.ConsolidatedAt,
		dto.WeightKg.InexactFloat64(),
		dto.ItemCount,
		consolidation.Status(dto.Status),
		dto.WarningSentAt,
		dto.ReleasedAt,
	)
}
