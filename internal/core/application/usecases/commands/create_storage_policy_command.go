package commands

import (
	"errors"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/core/domain/model/storagepolicy"
	"forwarding/internal/pkg/guard"
)

var ErrCreateStoragePolicyCommandIsNotConstructed = errors.New(
	"CreateStoragePolicyCommand must be created via NewCreateStoragePolicyCommand constructor",
)

// CreateStoragePolicyCommand stores a new version of the storage rules.
// With activate set, the new version replaces the active policy in the same
// transaction; otherwise it is stored inactive for later activation.
//
// Example:
//
//	flat := 1.0
//	cmd, err := NewCreateStoragePolicyCommand(storagepolicy.Terms{
//	    FreeDays:       30,
//	    DailyRateSmall: 0.5,
//	    FlatDailyRate:  &flat,
//	    WarningDays:    7,
//	    MaxDaysAllowed: 90,
//	}, true)
type CreateStoragePolicyCommand struct { //nolint:recvcheck //using for validation
	policyID kernel.UUID
	terms    storagepolicy.Terms
	activate bool

	guard guard.ConstructorGuard
}

// NewCreateStoragePolicyCommand rejects negative rates and day counts.
func NewCreateStoragePolicyCommand(terms storagepolicy.Terms, activate bool) (CreateStoragePolicyCommand, error) {
	if err := errors.Join(terms.ValidateNonNegativeRates(), terms.ValidateDays()); err != nil {
		return CreateStoragePolicyCommand{}, err
	}

	return CreateStoragePolicyCommand{
		policyID: kernel.NewUUID(),
		terms:    terms,
		activate: activate,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c CreateStoragePolicyCommand) Validate() error {
	return c.guard.Validate(ErrCreateStoragePolicyCommandIsNotConstructed)
}

func (c CreateStoragePolicyCommand) PolicyID() kernel.UUID {
	return c.policyID
}

func (c CreateStoragePolicyCommand) Terms() storagepolicy.Terms {
	return c.terms
}

func (c CreateStoragePolicyCommand) Activate() bool {
	return c.activate
}
