package commands

import (
	"errors"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/pkg/guard"
)

var ErrActivateStoragePolicyCommandIsNotConstructed = errors.New(
	"ActivateStoragePolicyCommand must be created via NewActivateStoragePolicyCommand constructor",
)

// ActivateStoragePolicyCommand puts a stored policy version in force and
// retires the one it replaces.
type ActivateStoragePolicyCommand struct { //nolint:recvcheck //using for validation
	policyID kernel.UUID

	guard guard.ConstructorGuard
}

func NewActivateStoragePolicyCommand(policyID kernel.UUID) (ActivateStoragePolicyCommand, error) {
	if err := policyID.Validate(); err != nil {
		return ActivateStoragePolicyCommand{}, err
	}

	return ActivateStoragePolicyCommand{
		policyID: policyID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c ActivateStoragePolicyCommand) Validate() error {
	return c.guard.Validate(ErrActivateStoragePolicyCommandIsNotConstructed)
}

func (c ActivateStoragePolicyCommand) PolicyID() kernel.UUID {
	return c.policyID
}
