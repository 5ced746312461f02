package commands

import (
	"context"

	"forwarding/internal/core/domain/model/kernel"
)

// AddCarrierZoneCommandHandler loads the carrier, attaches the zone and saves
// the aggregate.
type AddCarrierZoneCommandHandler struct {
	uowFactory CarrierUoWFactory
}

func NewAddCarrierZoneCommandHandler(uowFactory CarrierUoWFactory) AddCarrierZoneCommandHandler {
	return AddCarrierZoneCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns the ID of the new zone.
func (h *AddCarrierZoneCommandHandler) Handle(ctx context.Context, cmd AddCarrierZoneCommand) (kernel.UUID, error) {
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

	zone, err := aggregate.AddZone(cmd.Name(), cmd.Rates())
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = carrierRepo.Update(ctx, aggregate); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return zone.ID(), nil
}
