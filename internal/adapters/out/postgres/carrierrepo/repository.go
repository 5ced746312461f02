package carrierrepo

import (
	"context"
	"errors"

	"forwarding/internal/adapters/out/postgres/pgerr"
	"forwarding/internal/core/domain/model/carrier"
	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCarrierRepository implements ports.CarrierRepository using GORM.
type GormCarrierRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormCarrierRepository(db *gorm.DB, tracker aggregateTracker) *GormCarrierRepository {
	return &GormCarrierRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new carrier with its services and zones.
func (r *GormCarrierRepository) Add(ctx context.Context, aggregate *carrier.Carrier) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerr.TranslateWrite(err, "code", aggregate.Code())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing carrier. New services and zones are inserted,
// existing ones are overwritten.
func (r *GormCarrierRepository) Update(ctx context.Context, aggregate *carrier.Carrier) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	result := r.db.WithContext(ctx).Session(&gorm.Session{FullSaveAssociations: true}).Save(&dto)
	if result.Error != nil {
		return pgerr.TranslateWrite(result.Error, "code", aggregate.Code())
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("carrier", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Delete removes the carrier; services and zones go with it through the
// foreign key cascade.
func (r *GormCarrierRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&CarrierDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("carrier", id.String())
	}

	return nil
}

// Get retrieves a carrier by ID.
func (r *GormCarrierRepository) Get(ctx context.Context, id kernel.UUID) (*carrier.Carrier, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CarrierDTO
	if err := r.preloaded(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("carrier", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllActive retrieves every active carrier ordered by code.
func (r *GormCarrierRepository) GetAllActive(ctx context.Context) ([]*carrier.Carrier, error) {
	var dtos []CarrierDTO
	if err := r.preloaded(ctx).
		Where("is_active = ?", true).
		Order("code").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	carriers := make([]*carrier.Carrier, 0, len(dtos))
	for _, dto := range dtos {
		c, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		carriers = append(carriers, c)
	}

	return carriers, nil
}

func (r *GormCarrierRepository) preloaded(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Services", func(db *gorm.DB) *gorm.DB { return db.Order("name") }).
		Preload("Zones", func(db *gorm.DB) *gorm.DB { return db.Order("name") })
}
