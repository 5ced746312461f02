package commands

import (
	"context"

	"forwarding/internal/core/domain/model/carrier"
)

// CreateCarrierCommandHandler persists new carriers. A duplicate code is
// reported by the repository as errs.ErrObjectAlreadyExists.
type CreateCarrierCommandHandler struct {
	uowFactory CarrierUoWFactory
}

func NewCreateCarrierCommandHandler(uowFactory CarrierUoWFactory) CreateCarrierCommandHandler {
	return CreateCarrierCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *CreateCarrierCommandHandler) Handle(ctx context.Context, cmd CreateCarrierCommand) error {
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

	aggregate, err := carrier.NewCarrier(
		cmd.CarrierID(),
		cmd.Name(),
		cmd.Code(),
		cmd.Rates(),
		cmd.Insurance(),
		cmd.Priority(),
	)
	if err != nil {
		return err
	}

	if err = uow.CarrierRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
