package commands

import (
	"errors"
	"fmt"
	"strings"

	"forwarding/internal/core/domain/model/carrier"
	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/pkg/errs"
	"forwarding/internal/pkg/guard"
)

var ErrAddCarrierServiceCommandIsNotConstructed = errors.New(
	"AddCarrierServiceCommand must be created via NewAddCarrierServiceCommand constructor",
)

// AddCarrierServiceCommand attaches a named service layer ("Ground",
// "Overnight") to a carrier. Service rates may be negative: they are added
// to the carrier rate, and the final quote is floored at zero.
type AddCarrierServiceCommand struct { //nolint:recvcheck //using for validation
	carrierID kernel.UUID
	name      string
	rates     carrier.RateCard

	guard guard.ConstructorGuard
}

func NewAddCarrierServiceCommand(
	carrierID kernel.UUID,
	name string,
	rates carrier.RateCard,
) (AddCarrierServiceCommand, error) {
	command := AddCarrierServiceCommand{
		rates: rates,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCarrierID(carrierID),
		command.setName(name),
		validateEstimatedDays(rates.EstimatedDays),
	); err != nil {
		return AddCarrierServiceCommand{}, err
	}

	return command, nil
}

func (c AddCarrierServiceCommand) Validate() error {
	return c.guard.Validate(ErrAddCarrierServiceCommandIsNotConstructed)
}

func (c AddCarrierServiceCommand) CarrierID() kernel.UUID {
	return c.carrierID
}

func (c AddCarrierServiceCommand) Name() string {
	return c.name
}

func (c AddCarrierServiceCommand) Rates() carrier.RateCard {
	return c.rates
}

func (c *AddCarrierServiceCommand) setCarrierID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.carrierID = id
	return nil
}

func (c *AddCarrierServiceCommand) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}

// validateEstimatedDays rejects negative transit times. Zero means "not set"
// and falls back to the carrier's own estimate.
func validateEstimatedDays(days int) error {
	if days < 0 {
		return errs.NewValueIsInvalidErrorWithCause("estimatedDays", fmt.Errorf("%d is negative", days))
	}
	return nil
}
