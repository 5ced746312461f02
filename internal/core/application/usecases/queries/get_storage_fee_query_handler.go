package queries

import (
	"context"
	"time"

	"forwarding/internal/core/domain/services"
)

// GetStorageFeeQueryHandler loads a consolidation and the active policy and
// runs the storage policy engine over them.
type GetStorageFeeQueryHandler struct {
	consolidations ConsolidationReader
	policies       ActiveStoragePolicyReader
}

func NewGetStorageFeeQueryHandler(
	consolidations ConsolidationReader,
	policies ActiveStoragePolicyReader,
) GetStorageFeeQueryHandler {
	return GetStorageFeeQueryHandler{
		consolidations: consolidations,
		policies:       policies,
	}
}

// Handle returns errs.ErrObjectNotFound when the consolidation is unknown or
// no policy is active. A released consolidation is evaluated at its release
// time: days, fee, flags and remaining free days all stop there.
func (h GetStorageFeeQueryHandler) Handle(
	ctx context.Context,
	query GetStorageFeeQuery,
) (GetStorageFeeQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetStorageFeeQueryResponse{}, err
	}

	held, err := h.consolidations.Get(ctx, query.ConsolidationID())
	if err != nil {
		return GetStorageFeeQueryResponse{}, err
	}

	policy, err := h.policies.GetActive(ctx)
	if err != nil {
		return GetStorageFeeQueryResponse{}, err
	}

	end := held.StorageEnd(query.At())
	engine := services.NewStoragePolicyEngine(func() time.Time { return end })
	consolidatedAt := held.ConsolidatedAt()
	daysStored := held.DaysStored(end)

	return GetStorageFeeQueryResponse{
		ConsolidationID: held.ID(),
		SuiteNumber:     held.SuiteNumber(),
		PolicyVersion:   policy.Version(),
		DaysStored:      daysStored,
		Fee: engine.CalculateStorageFee(policy, services.StorageUsage{
			WeightKg:  held.WeightKg(),
			ItemCount: held.ItemCount(),
			DaysUsed:  daysStored,
		}, query.Surcharges()),
		WarningDate:          engine.WarningDate(consolidatedAt, policy),
		FreePeriodEnd:        engine.FreePeriodEnd(consolidatedAt, policy),
		IsNearChargingPeriod: engine.IsNearChargingPeriod(consolidatedAt, policy),
		IsOverFreePeriod:     engine.IsOverFreePeriod(consolidatedAt, policy),
		RemainingFreeDays:    engine.RemainingFreeDays(consolidatedAt, policy),
	}, nil
}
