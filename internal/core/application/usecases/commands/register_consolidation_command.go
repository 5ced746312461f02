package commands

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/pkg/errs"
	"forwarding/internal/pkg/guard"
)

var (
	ErrRegisterConsolidationCommandIsNotConstructed = errors.New(
		"RegisterConsolidationCommand must be created via NewRegisterConsolidationCommand constructor",
	)
	ErrSuiteNumberIsRequired    = errs.NewValueIsRequiredError("suiteNumber")
	ErrConsolidatedAtIsRequired = errs.NewValueIsRequiredError("consolidatedAt")
)

// RegisterConsolidationCommand starts storage tracking for a consolidation.
// The consolidation date opens the policy's free period.
type RegisterConsolidationCommand struct { //nolint:recvcheck //using for validation
	consolidationID kernel.UUID
	suiteNumber     string
	consolidatedAt  time.Time
	weightKg        float64
	itemCount       int

	guard guard.ConstructorGuard
}

func NewRegisterConsolidationCommand(
	suiteNumber string,
	consolidatedAt time.Time,
	weightKg float64,
	itemCount int,
) (RegisterConsolidationCommand, error) {
	command := RegisterConsolidationCommand{
		consolidationID: kernel.NewUUID(),
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setSuiteNumber(suiteNumber),
		command.setConsolidatedAt(consolidatedAt),
		command.setWeight(weightKg),
		command.setItemCount(itemCount),
	); err != nil {
		return RegisterConsolidationCommand{}, err
	}

	return command, nil
}

func (c RegisterConsolidationCommand) Validate() error {
	return c.guard.Validate(ErrRegisterConsolidationCommandIsNotConstructed)
}

func (c RegisterConsolidationCommand) ConsolidationID() kernel.UUID {
	return c.consolidationID
}

func (c RegisterConsolidationCommand) SuiteNumber() string {
	return c.suiteNumber
}

func (c RegisterConsolidationCommand) ConsolidatedAt() time.Time {
	return c.consolidatedAt
}

func (c RegisterConsolidationCommand) WeightKg() float64 {
	return c.weightKg
}

func (c RegisterConsolidationCommand) ItemCount() int {
	return c.itemCount
}

func (c *RegisterConsolidationCommand) setSuiteNumber(suite string) error {
	suite = strings.TrimSpace(suite)
	if suite == "" {
		return ErrSuiteNumberIsRequired
	}

	c.suiteNumber = suite
	return nil
}

func (c *RegisterConsolidationCommand) setConsolidatedAt(at time.Time) error {
	if at.IsZero() {
		return ErrConsolidatedAtIsRequired
	}

	c.consolidatedAt = at.UTC()
	return nil
}

func (c *RegisterConsolidationCommand) setWeight(weightKg float64) error {
	if weightKg <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("weightKg", fmt.Errorf("%v is not positive", weightKg))
	}

	c.weightKg = weightKg
	return nil
}

func (c *RegisterConsolidationCommand) setItemCount(count int) error {
	if count <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("itemCount", fmt.Errorf("%d is not positive", count))
	}

	c.itemCount = count
	return nil
}
