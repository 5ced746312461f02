package commands

import (
	"context"

	"forwarding/internal/core/domain/model/consolidation"
)

type RegisterConsolidationCommandHandler struct {
	uowFactory ConsolidationUoWFactory
}

func NewRegisterConsolidationCommandHandler(uowFactory ConsolidationUoWFactory) RegisterConsolidationCommandHandler {
	return RegisterConsolidationCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *RegisterConsolidationCommandHandler) Handle(ctx context.Context, cmd RegisterConsolidationCommand) error {
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

	aggregate, err := consolidation.NewConsolidation(
		cmd.ConsolidationID(),
		cmd.SuiteNumber(),
		cmd.ConsolidatedAt(),
		cmd.WeightKg(),
		cmd.ItemCount(),
	)
	if err != nil {
		return err
	}

	if err = uow.ConsolidationRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
