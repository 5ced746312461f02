package commands

import (
	"context"
)

type ReleaseConsolidationCommandHandler struct {
	uowFactory ConsolidationUoWFactory
}

func NewReleaseConsolidationCommandHandler(uowFactory ConsolidationUoWFactory) ReleaseConsolidationCommandHandler {
	return ReleaseConsolidationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle fails with errs.ErrValueIsInvalid when the consolidation was already released.
func (h *ReleaseConsolidationCommandHandler) Handle(ctx context.Context, cmd ReleaseConsolidationCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	consolidationRepo := uow.ConsolidationRepository()
	aggregate, err := consolidationRepo.Get(ctx, cmd.ConsolidationID())
	if err != nil {
		return err
	}

	if err = aggregate.Release(cmd.ReleasedAt()); err != nil {
		return err
	}

	if err = consolidationRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
