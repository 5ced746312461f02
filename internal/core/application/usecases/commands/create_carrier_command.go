package commands

import (
	"errors"
	"strings"

	"forwarding/internal/core/domain/model/carrier"
	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/pkg/errs"
	"forwarding/internal/pkg/guard"
)

var (
	ErrCreateCarrierCommandIsNotConstructed = errors.New(
		"CreateCarrierCommand must be created via NewCreateCarrierCommand constructor",
	)
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	ErrCodeIsRequired = errs.NewValueIsRequiredError("code")
)

// CreateCarrierCommand registers a carrier in the rate catalog.
//
// This is the write path that enforces the catalog invariants the rating
// engine trusts: carrier rates are non-negative and, when insurance is
// offered, the declared-value band is well formed.
//
// Example:
//
//	cmd, err := NewCreateCarrierCommand(
//	    "DHL Express", "DHL",
//	    carrier.RateCard{BaseRate: 12, RatePerKg: 3.5, EstimatedDays: 4},
//	    carrier.InsuranceTerms{Available: true, RatePercent: 2, MinDeclaredValue: 100, MaxDeclaredValue: 5000},
//	    10,
//	)
//	if err != nil {
//	    return fmt.Errorf("invalid carrier data: %w", err)
//	}
//
//	handler := NewCreateCarrierCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create carrier: %w", err)
//	}
type CreateCarrierCommand struct { //nolint:recvcheck //using for validation
	carrierID kernel.UUID
	name      string
	code      string
	rates     carrier.RateCard
	insurance carrier.InsuranceTerms
	priority  int

	guard guard.ConstructorGuard
}

// NewCreateCarrierCommand validates the carrier data and generates the carrier ID.
func NewCreateCarrierCommand(
	name string,
	code string,
	rates carrier.RateCard,
	insurance carrier.InsuranceTerms,
	priority int,
) (CreateCarrierCommand, error) {
	command := CreateCarrierCommand{
		carrierID: kernel.NewUUID(),
		rates:     rates,
		priority:  priority,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setName(name),
		command.setCode(code),
		rates.ValidateNonNegative(),
		command.setInsurance(insurance),
	); err != nil {
		return CreateCarrierCommand{}, err
	}

	return command, nil
}

func (c CreateCarrierCommand) Validate() error {
	return c.guard.Validate(ErrCreateCarrierCommandIsNotConstructed)
}

func (c CreateCarrierCommand) CarrierID() kernel.UUID {
	return c.carrierID
}

func (c CreateCarrierCommand) Name() string {
	return c.name
}

func (c CreateCarrierCommand) Code() string {
	return c.code
}

func (c CreateCarrierCommand) Rates() carrier.RateCard {
	return c.rates
}

func (c CreateCarrierCommand) Insurance() carrier.InsuranceTerms {
	return c.insurance
}

func (c CreateCarrierCommand) Priority() int {
	return c.priority
}

func (c *CreateCarrierCommand) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateCarrierCommand) setCode(code string) error {
	code = strings.TrimSpace(code)
	if code == "" {
		return ErrCodeIsRequired
	}

	c.code = code
	return nil
}

func (c *CreateCarrierCommand) setInsurance(insurance carrier.InsuranceTerms) error {
	if err := insurance.Validate(); err != nil {
		return err
	}

	c.insurance = insurance
	return nil
}
