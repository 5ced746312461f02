package commands

import (
	"context"
)

type ChangeCarrierStatusCommandHandler struct {
	uowFactory CarrierUoWFactory
}

func NewChangeCarrierStatusCommandHandler(uowFactory CarrierUoWFactory) ChangeCarrierStatusCommandHandler {
	return ChangeCarrierStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *ChangeCarrierStatusCommandHandler) Handle(ctx context.Context, cmd ChangeCarrierStatusCommand) error {
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

	carrierRepo := uow.CarrierRepository()
	aggregate, err := carrierRepo.Get(ctx, cmd.CarrierID())
	if err != nil {
		return err
	}

	if aggregate.IsActive() == cmd.Active() {
		return nil
	}

	if cmd.Active() {
		aggregate.Activate()
	} else {
		aggregate.Deactivate()
	}

	if err = carrierRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
