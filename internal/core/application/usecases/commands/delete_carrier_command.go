package commands

import (
	"errors"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/pkg/guard"
)

var ErrDeleteCarrierCommandIsNotConstructed = errors.New(
	"DeleteCarrierCommand must be created via NewDeleteCarrierCommand constructor",
)

// DeleteCarrierCommand removes a carrier together with its services and zones.
type DeleteCarrierCommand struct { //nolint:recvcheck //using for validation
	carrierID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteCarrierCommand(carrierID kernel.UUID) (DeleteCarrierCommand, error) {
	if err := carrierID.Validate(); err != nil {
		return DeleteCarrierCommand{}, err
	}

	return DeleteCarrierCommand{
		carrierID: carrierID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c DeleteCarrierCommand) Validate() error {
	return c.guard.Validate(ErrDeleteCarrierCommandIsNotConstructed)
}

func (c DeleteCarrierCommand) CarrierID() kernel.UUID {
	return c.carrierID
}
