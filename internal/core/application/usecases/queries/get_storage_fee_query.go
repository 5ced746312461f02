package queries

import (
	"errors"
	"time"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/core/domain/services"
	"forwarding/internal/pkg/guard"
)

var (
	ErrGetStorageFeeQueryIsNotConstructed = errors.New(
		"GetStorageFeeQuery must be created via NewGetStorageFeeQuery constructor",
	)
)

// GetStorageFeeQuery computes what a consolidation owes for storage under
// the active policy, as of a given moment.
//
// Example:
//
//	query, err := NewGetStorageFeeQuery(id, services.Surcharges{Weekends: true}, time.Time{})
//	fee, err := handler.Handle(ctx, query)
//	fmt.Printf("%d chargeable days, total %.2f\n", fee.Fee.Breakdown.ChargeableDays, fee.Fee.TotalFee)
type GetStorageFeeQuery struct {
	consolidationID kernel.UUID
	surcharges      services.Surcharges
	at              time.Time

	guard guard.ConstructorGuard
}

// NewGetStorageFeeQuery evaluates at the given moment; a zero time means now.
func NewGetStorageFeeQuery(
	consolidationID kernel.UUID,
	surcharges services.Surcharges,
	at time.Time,
) (GetStorageFeeQuery, error) {
	if err := consolidationID.Validate(); err != nil {
		return GetStorageFeeQuery{}, err
	}

	if at.IsZero() {
		at = time.Now()
	}

	return GetStorageFeeQuery{
		consolidationID: consolidationID,
		surcharges:      surcharges,
		at:              at.UTC(),
		guard:           guard.NewConstructorGuard(),
	}, nil
}

func (q GetStorageFeeQuery) Validate() error {
	return q.guard.Validate(ErrGetStorageFeeQueryIsNotConstructed)
}

func (q GetStorageFeeQuery) ConsolidationID() kernel.UUID {
	return q.consolidationID
}

func (q GetStorageFeeQuery) Surcharges() services.Surcharges {
	return q.surcharges
}

func (q GetStorageFeeQuery) At() time.Time {
	return q.at
}

// GetStorageFeeQueryResponse reports the fee with its breakdown and where the
// consolidation stands relative to its free period.
type GetStorageFeeQueryResponse struct {
	ConsolidationID      kernel.UUID
	SuiteNumber          string
	PolicyVersion        int
	DaysStored           int
	Fee                  services.StorageFee
	WarningDate          time.Time
	FreePeriodEnd        time.Time
	IsNearChargingPeriod bool
	IsOverFreePeriod     bool
	RemainingFreeDays    int
}
