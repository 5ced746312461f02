package commands

import (
	"errors"
	"time"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/pkg/errs"
	"forwarding/internal/pkg/guard"
)

var (
	ErrReleaseConsolidationCommandIsNotConstructed = errors.New(
		"ReleaseConsolidationCommand must be created via NewReleaseConsolidationCommand constructor",
	)
	ErrReleasedAtIsRequired = errs.NewValueIsRequiredError("releasedAt")
)

// ReleaseConsolidationCommand ends storage for a consolidation that leaves
// the warehouse. Storage days stop accruing at releasedAt.
type ReleaseConsolidationCommand struct { //nolint:recvcheck //using for validation
	consolidationID kernel.UUID
	releasedAt      time.Time

	guard guard.ConstructorGuard
}

func NewReleaseConsolidationCommand(
	consolidationID kernel.UUID,
	releasedAt time.Time,
) (ReleaseConsolidationCommand, error) {
	var timeErr error
	if releasedAt.IsZero() {
		timeErr = ErrReleasedAtIsRequired
	}

	if err := errors.Join(consolidationID.Validate(), timeErr); err != nil {
		return ReleaseConsolidationCommand{}, err
	}

	return ReleaseConsolidationCommand{
		consolidationID: consolidationID,
		releasedAt:      releasedAt.UTC(),
		guard:           guard.NewConstructorGuard(),
	}, nil
}

func (c ReleaseConsolidationCommand) Validate() error {
	return c.guard.Validate(ErrReleaseConsolidationCommandIsNotConstructed)
}

func (c ReleaseConsolidationCommand) ConsolidationID() kernel.UUID {
	return c.consolidationID
}

func (c ReleaseConsolidationCommand) ReleasedAt() time.Time {
	return c.releasedAt
}
