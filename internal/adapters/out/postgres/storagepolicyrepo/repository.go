package storagepolicyrepo

import (
	"context"
	"errors"

	"forwarding/internal/adapters/out/postgres/pgerr"
	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/core/domain/model/storagepolicy"
	"forwarding/internal/pkg/errs"

	"gorm.io/gorm"
)

// adminLockKey names the transaction-scoped advisory lock taken by policy writers.
const adminLockKey int64 = 0x73746f7261676570

// GormStoragePolicyRepository implements ports.StoragePolicyRepository using GORM.
type GormStoragePolicyRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormStoragePolicyRepository(db *gorm.DB, tracker aggregateTracker) *GormStoragePolicyRepository {
	return &GormStoragePolicyRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new policy. A second policy with the same version number is
// rejected with errs.ErrObjectAlreadyExists.
func (r *GormStoragePolicyRepository) Add(ctx context.Context, aggregate *storagepolicy.StoragePolicy) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerr.TranslateWrite(err, "version", aggregate.Version())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormStoragePolicyRepository) Update(ctx context.Context, aggregate *storagepolicy.StoragePolicy) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Save(&dto)
	if result.Error != nil {
		return pgerr.TranslateWrite(result.Error, "version", aggregate.Version())
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("storagePolicy", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormStoragePolicyRepository) Get(ctx context.Context, id kernel.UUID) (*storagepolicy.StoragePolicy, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto StoragePolicyDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("storagePolicy", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetActive returns the active policy. Should the table ever hold more than
// one active row, the highest version wins.
func (r *GormStoragePolicyRepository) GetActive(ctx context.Context) (*storagepolicy.StoragePolicy, error) {
	var dto StoragePolicyDTO
	if err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("version DESC").
		First(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("storagePolicy", "active")
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormStoragePolicyRepository) GetAllActive(ctx context.Context) ([]*storagepolicy.StoragePolicy, error) {
	var dtos []StoragePolicyDTO
	if err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("version").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	policies := make([]*storagepolicy.StoragePolicy, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		policies = append(policies, p)
	}

	return policies, nil
}

// LockForAdministration blocks until no other transaction administers
// policies. The lock is released when the surrounding transaction ends, so
// calling it outside a transaction has no lasting effect.
func (r *GormStoragePolicyRepository) LockForAdministration(ctx context.Context) error {
	return r.db.WithContext(ctx).Exec("SELECT pg_advisory_xact_lock(?)", adminLockKey).Error
}

func (r *GormStoragePolicyRepository) LatestVersion(ctx context.Context) (int, error) {
	var version int
	if err := r.db.WithContext(ctx).
		Model(&StoragePolicyDTO{}).
		Select("COALESCE(MAX(version), 0)").
		Scan(&version).Error; err != nil {
		return 0, err
	}
	return version, nil
}
