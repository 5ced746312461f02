package commands

import (
	"errors"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/pkg/guard"
)

var ErrChangeCarrierStatusCommandIsNotConstructed = errors.New(
	"ChangeCarrierStatusCommand must be created via NewChangeCarrierStatusCommand constructor",
)

// ChangeCarrierStatusCommand activates or deactivates a carrier. Inactive
// carriers keep their configuration but drop out of the quoting catalog.
type ChangeCarrierStatusCommand struct { //nolint:recvcheck //using for validation
	carrierID kernel.UUID
	active    bool

	guard guard.ConstructorGuard
}

func NewChangeCarrierStatusCommand(carrierID kernel.UUID, active bool) (ChangeCarrierStatusCommand, error) {
	if err := carrierID.Validate(); err != nil {
		return ChangeCarrierStatusCommand{}, err
	}

	return ChangeCarrierStatusCommand{
		carrierID: carrierID,
		active:    active,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c ChangeCarrierStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeCarrierStatusCommandIsNotConstructed)
}

func (c ChangeCarrierStatusCommand) CarrierID() kernel.UUID {
	return c.carrierID
}

func (c ChangeCarrierStatusCommand) Active() bool {
	return c.active
}
