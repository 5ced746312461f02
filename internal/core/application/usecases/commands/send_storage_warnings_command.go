package commands

import (
	"errors"
	"time"

	"forwarding/internal/pkg/guard"
)

var (
	ErrSendStorageWarningsCommandIsNotConstructed = errors.New(
		"SendStorageWarningsCommand must be created via NewSendStorageWarningsCommand constructor",
	)
)

// SendStorageWarningsCommand sweeps held consolidations and notifies every
// suite whose free storage period is about to end. Each consolidation is
// warned once.
//
// Example:
//
//	cmd := NewSendStorageWarningsCommand(time.Now())
//	sent, err := handler.Handle(ctx, cmd)
type SendStorageWarningsCommand struct {
	now time.Time

	guard guard.ConstructorGuard
}

// NewSendStorageWarningsCommand fixes the moment the sweep evaluates dates
// against. A zero time means time.Now.
func NewSendStorageWarningsCommand(now time.Time) SendStorageWarningsCommand {
	if now.IsZero() {
		now = time.Now()
	}

	return SendStorageWarningsCommand{
		now:   now.UTC(),
		guard: guard.NewConstructorGuard(),
	}
}

func (c *SendStorageWarningsCommand) Validate() error {
	return c.guard.Validate(ErrSendStorageWarningsCommandIsNotConstructed)
}

func (c *SendStorageWarningsCommand) Now() time.Time {
	return c.now
}
