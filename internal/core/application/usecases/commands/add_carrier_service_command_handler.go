package commands

import (
	"context"

	"forwarding/internal/core/domain/model/kernel"
)

// AddCarrierServiceCommandHandler loads the carrier, attaches the service
// and saves the aggregate.
type AddCarrierServiceCommandHandler struct {
	uowFactory CarrierUoWFactory
}

func NewAddCarrierServiceCommandHandler(uowFactory CarrierUoWFactory) AddCarrierServiceCommandHandler {
	return AddCarrierServiceCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns the ID of the new service.
func (h *AddCarrierServiceCommandHandler) Handle(
	ctx context.Context,
	cmd AddCarrierServiceCommand,
) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	carrierRepo := uow.CarrierRepository()
	aggregate, err := carrierRepo.Get(ctx, cmd.CarrierID())
	if err != nil {
		return kernel.UUID{}, err
	}

	service, err := aggregate.AddService(cmd.Name(), cmd.Rates())
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = carrierRepo.Update(ctx, aggregate); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return service.ID(), nil
}
