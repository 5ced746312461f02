package queries

import (
	"context"
	"database/sql"
	"errors"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type GetActiveStoragePolicyQueryHandler struct {
	db *gorm.DB
}

func NewGetActiveStoragePolicyQueryHandler(db *gorm.DB) GetActiveStoragePolicyQueryHandler {
	return GetActiveStoragePolicyQueryHandler{db: db}
}

// Handle returns errs.ErrObjectNotFound when no policy has been activated.
// Should two rows ever be flagged active, the highest version wins.
func (h GetActiveStoragePolicyQueryHandler) Handle(
	ctx context.Context,
	query GetActiveStoragePolicyQuery,
) (GetActiveStoragePolicyQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetActiveStoragePolicyQueryResponse{}, err
	}

	var (
		resp                       GetActiveStoragePolicyQueryResponse
		id                         uuid.UUID
		small, medium, large, item decimal.Decimal
		flat                       decimal.NullDecimal
	)

	err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			version,
			free_days,
			daily_rate_small,
			daily_rate_medium,
			daily_rate_large,
			daily_rate_per_item,
			flat_daily_rate,
			weekend_charges,
			holiday_charges,
			warning_days,
			max_days_allowed,
			created_at
		FROM storage_policies
		WHERE is_active
		ORDER BY version DESC
		LIMIT 1
	`).Row().Scan(
		&id,
		&resp.Version,
		&resp.Terms.FreeDays,
		&small,
		&medium,
		&large,
		&item,
		&flat,
		&resp.Terms.WeekendCharges,
		&resp.Terms.HolidayCharges,
		&resp.Terms.WarningDays,
		&resp.Terms.MaxDaysAllowed,
		&resp.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetActiveStoragePolicyQueryResponse{}, errs.NewObjectNotFoundError("storagePolicy", "active")
	}
	if err != nil {
		return GetActiveStoragePolicyQueryResponse{}, err
	}

	if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return GetActiveStoragePolicyQueryResponse{}, err
	}

	resp.Terms.DailyRateSmall = small.InexactFloat64()
	resp.Terms.DailyRateMedium = medium.InexactFloat64()
	resp.Terms.DailyRateLarge = large.InexactFloat64()
	resp.Terms.DailyRatePerItem = item.InexactFloat64()
	if flat.Valid {
		rate := flat.Decimal.InexactFloat64()
		resp.Terms.FlatDailyRate = &rate
	}

	return resp, nil
}
