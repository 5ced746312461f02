package commands

import (
	"errors"
	"strings"

	"forwarding/internal/core/domain/model/carrier"
	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/pkg/guard"
)

var ErrAddCarrierZoneCommandIsNotConstructed = errors.New(
	"AddCarrierZoneCommand must be created via NewAddCarrierZoneCommand constructor",
)

// AddCarrierZoneCommand attaches a destination override ("Remote islands")
// to a carrier. Zones never price distance; like services, their rates may be
// negative adjustments.
type AddCarrierZoneCommand struct { //nolint:recvcheck //using for validation
	carrierID kernel.UUID
	name      string
	rates     carrier.ZoneRateCard

	guard guard.ConstructorGuard
}

func NewAddCarrierZoneCommand(
	carrierID kernel.UUID,
	name string,
	rates carrier.ZoneRateCard,
) (AddCarrierZoneCommand, error) {
	command := AddCarrierZoneCommand{
		rates: rates,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCarrierID(carrierID),
		command.setName(name),
		validateEstimatedDays(rates.EstimatedDays),
	); err != nil {
		return AddCarrierZoneCommand{}, err
	}

	return command, nil
}

func (c AddCarrierZoneCommand) Validate() error {
	return c.guard.Validate(ErrAddCarrierZoneCommandIsNotConstructed)
}

func (c AddCarrierZoneCommand) CarrierID() kernel.UUID {
	return c.carrierID
}

func (c AddCarrierZoneCommand) Name() string {
	return c.name
}

func (c AddCarrierZoneCommand) Rates() carrier.ZoneRateCard {
	return c.rates
}

func (c *AddCarrierZoneCommand) setCarrierID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.carrierID = id
	return nil
}

func (c *AddCarrierZoneCommand) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}
