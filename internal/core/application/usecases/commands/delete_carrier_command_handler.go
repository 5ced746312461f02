package commands

import (
	"context"
)

type DeleteCarrierCommandHandler struct {
	uowFactory CarrierUoWFactory
}

func NewDeleteCarrierCommandHandler(uowFactory CarrierUoWFactory) DeleteCarrierCommandHandler {
	return DeleteCarrierCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns errs.ErrObjectNotFound when the carrier does not exist.
func (h *DeleteCarrierCommandHandler) Handle(ctx context.Context, cmd DeleteCarrierCommand) error {
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

	if err := uow.CarrierRepository().Delete(ctx, cmd.CarrierID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
