package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"forwarding/internal/core/domain/model/consolidation"
	"forwarding/internal/core/domain/model/storagepolicy"
	"forwarding/internal/core/domain/services"
	"forwarding/internal/core/ports"
	"forwarding/internal/pkg/errs"
)

// SendStorageWarningsCommandHandler publishes a StorageWarning for each held
// consolidation that reached its warning date under the active policy and
// records the warning on the consolidation.
//
// A warning is published before the transaction commits, so a failed commit
// leads to the warning being published again on the next sweep.
type SendStorageWarningsCommandHandler struct {
	uowFactory StorageWarningUoWFactory
	publisher  ports.StorageWarningPublisher
}

func NewSendStorageWarningsCommandHandler(
	uowFactory StorageWarningUoWFactory,
	publisher ports.StorageWarningPublisher,
) SendStorageWarningsCommandHandler {
	return SendStorageWarningsCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle returns the number of warnings sent. A consolidation whose warning
// could not be published is left unmarked and retried by the next sweep; its
// error is joined into the returned error while the others are still committed.
func (h *SendStorageWarningsCommandHandler) Handle(ctx context.Context, cmd SendStorageWarningsCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	policy, err := uow.StoragePolicyRepository().GetActive(ctx)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}

	consolidationRepo := uow.ConsolidationRepository()
	held, err := consolidationRepo.GetAllHeldWithoutWarning(ctx)
	if err != nil {
		return 0, err
	}

	engine := services.NewStoragePolicyEngine(func() time.Time { return cmd.Now() })

	var (
		sent       int
		publishErr error
	)
	for _, aggregate := range held {
		if !engine.IsNearChargingPeriod(aggregate.ConsolidatedAt(), policy) {
			continue
		}

		if err = h.publisher.Publish(ctx, newStorageWarning(engine, aggregate, policy)); err != nil {
			publishErr = errors.Join(publishErr, fmt.Errorf("consolidation %s: %w", aggregate.ID(), err))
			continue
		}

		if err = aggregate.MarkWarningSent(cmd.Now()); err != nil {
			return 0, err
		}

		if err = consolidationRepo.Update(ctx, aggregate); err != nil {
			return 0, err
		}
		sent++
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return sent, publishErr
}

func newStorageWarning(
	engine services.StoragePolicyEngine,
	aggregate *consolidation.Consolidation,
	policy *storagepolicy.StoragePolicy,
) ports.StorageWarning {
	consolidatedAt := aggregate.ConsolidatedAt()
	return ports.StorageWarning{
		ConsolidationID:   aggregate.ID(),
		SuiteNumber:       aggregate.SuiteNumber(),
		ConsolidatedAt:    consolidatedAt,
		WarningDate:       engine.WarningDate(consolidatedAt, policy),
		FreePeriodEnd:     engine.FreePeriodEnd(consolidatedAt, policy),
		RemainingFreeDays: engine.RemainingFreeDays(consolidatedAt, policy),
		PolicyVersion:     policy.Version(),
	}
}
