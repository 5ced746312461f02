package consolidationrepo

import (
	"context"
	"errors"

	"forwarding/internal/core/domain/model/consolidation"
	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormConsolidationRepository implements ports.ConsolidationRepository using GORM.
type GormConsolidationRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormConsolidationRepository(db *gorm.DB, tracker aggregateTracker) *GormConsolidationRepository {
	return &GormConsolidationRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormConsolidationRepository) Add(ctx context.Context, aggregate *consolidation.Consolidation) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormConsolidationRepository) Update(ctx context.Context, aggregate *consolidation.Consolidation) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Save(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("consolidation", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormConsolidationRepository) Get(ctx context.Context, id kernel.UUID) (*consolidation.Consolidation, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ConsolidationDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("consolidation", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllHeldWithoutWarning returns held consolidations with no warning sent,
// oldest consolidation first. Inside a transaction the returned rows stay
// locked until it ends, and rows locked by another transaction are skipped.
func (r *GormConsolidationRepository) GetAllHeldWithoutWarning(
	ctx context.Context,
) ([]*consolidation.Consolidation, error) {
	var dtos []ConsolidationDTO
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate, Options: clause.LockingOptionsSkipLocked}).
		Where("status = ? AND warning_sent_at IS NULL", int(consolidation.Held)).
		Order("consolidated_at").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	result := make([]*consolidation.Consolidation, 0, len(dtos))
	for _, dto := range dtos {
		c, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		result = append(result, c)
	}

	return result, nil
}
