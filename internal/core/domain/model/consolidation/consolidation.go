package consolidation

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
	// ErrConsolidationIsNotConstructed is returned when using an improperly initialized Consolidation.
	ErrConsolidationIsNotConstructed = errors.New("Consolidation must be created via NewConsolidation constructor")
	// ErrWarningAlreadySent is returned when a storage warning was already recorded.
	ErrWarningAlreadySent = errors.New("storage warning already sent")
	// ErrConsolidationIsNotHeld is returned when a warning is recorded for a released consolidation.
	ErrConsolidationIsNotHeld = errors.New("consolidation is not held in storage")
)

// Consolidation is a group of packages held in the warehouse for one client
// suite. It is the unit storage fees are computed for: its weight selects the
// daily rate bracket, its item count drives the per-item fee and its
// consolidation date starts the free period.
//
// Invariants:
//   - Suite number is required
//   - Weight and item count are positive
//   - A storage warning is recorded at most once, and only while Held
//   - Released consolidations carry the release time that ends storage
type Consolidation struct {
	id             kernel.UUID
	suiteNumber    string
	consolidatedAt time.Time
	weightKg       float64
	itemCount      int
	status         Status
	warningSentAt  *time.Time
	releasedAt     *time.Time
	guard          guard.ConstructorGuard
}

// NewConsolidation registers packages as held from consolidatedAt.
//
// Example:
//
//	c, err := consolidation.NewConsolidation(kernel.NewUUID(), "FWD-10042", time.Now(), 3.2, 4)
//	if err != nil {
//	    // Handle validation error
//	}
func NewConsolidation(
	id kernel.UUID,
	suiteNumber string,
	consolidatedAt time.Time,
	weightKg float64,
	itemCount int,
) (*Consolidation, error) {
	return RestoreConsolidation(id, suiteNumber, consolidatedAt, weightKg, itemCount, Held, nil, nil)
}

// RestoreConsolidation reconstructs a consolidation from storage.
func RestoreConsolidation(
	id kernel.UUID,
	suiteNumber string,
	consolidatedAt time.Time,
	weightKg float64,
	itemCount int,
	status Status,
	warningSentAt *time.Time,
	releasedAt *time.Time,
) (*Consolidation, error) {
	c := &Consolidation{
		consolidatedAt: consolidatedAt,
		warningSentAt:  warningSentAt,
		guard:          guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setSuiteNumber(suiteNumber),
		c.setWeight(weightKg),
		c.setItemCount(itemCount),
		c.setStatus(status, releasedAt),
	); err != nil {
		return nil, err
	}

	return c, nil
}

func (c *Consolidation) Validate() error {
	if c == nil {
		return ErrConsolidationIsNotConstructed
	}
	return c.guard.Validate(ErrConsolidationIsNotConstructed)
}

func (c *Consolidation) ID() kernel.UUID {
	return c.id
}

// SuiteNumber returns the client's virtual mailbox identifier.
func (c *Consolidation) SuiteNumber() string {
	return c.suiteNumber
}

func (c *Consolidation) ConsolidatedAt() time.Time {
	return c.consolidatedAt
}

func (c *Consolidation) WeightKg() float64 {
	return c.weightKg
}

func (c *Consolidation) ItemCount() int {
	return c.itemCount
}

func (c *Consolidation) Status() Status {
	return c.status
}

func (c *Consolidation) WarningSentAt() *time.Time {
	return c.warningSentAt
}

func (c *Consolidation) ReleasedAt() *time.Time {
	return c.releasedAt
}

// WarningSent reports whether the storage warning was already recorded.
func (c *Consolidation) WarningSent() bool {
	return c.warningSentAt != nil
}

// StorageEnd is the moment storage is measured to: now while held, the
// release time once released.
func (c *Consolidation) StorageEnd(now time.Time) time.Time {
	if c.releasedAt != nil {
		return *c.releasedAt
	}
	return now
}

// DaysStored counts storage days up to StorageEnd(now). Partial days count as
// whole days; the result is never negative.
func (c *Consolidation) DaysStored(now time.Time) int {
	return max(0, kernel.CeilDays(c.StorageEnd(now).Sub(c.consolidatedAt)))
}

// MarkWarningSent records that the "storage charges approaching" notice went out.
func (c *Consolidation) MarkWarningSent(at time.Time) error {
	if c.status != Held {
		return ErrConsolidationIsNotHeld
	}
	if c.warningSentAt != nil {
		return ErrWarningAlreadySent
	}
	c.warningSentAt = &at
	return nil
}

// Release ends storage at the given time.
func (c *Consolidation) Release(at time.Time) error {
	newStatus, err := c.status.Release()
	if err != nil {
		return err
	}
	c.status = newStatus
	c.releasedAt = &at
	return nil
}

func (c *Consolidation) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Consolidation) setSuiteNumber(suite string) error {
	suite = strings.TrimSpace(suite)
	if suite == "" {
		return errs.NewValueIsRequiredError("suiteNumber")
	}
	c.suiteNumber = suite
	return nil
}

func (c *Consolidation) setWeight(weightKg float64) error {
	if weightKg <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("weightKg", fmt.Errorf("%v is not greater than 0", weightKg))
	}
	c.weightKg = weightKg
	return nil
}

func (c *Consolidation) setItemCount(count int) error {
	if count <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("itemCount", fmt.Errorf("%d is not greater than 0", count))
	}
	c.itemCount = count
	return nil
}

func (c *Consolidation) setStatus(status Status, releasedAt *time.Time) error {
	if err := status.Validate(); err != nil {
		return err
	}
	if status == Released && releasedAt == nil {
		return errs.NewValueIsRequiredError("releasedAt")
	}
	if status == Held && releasedAt != nil {
		return errs.NewValueIsInvalidErrorWithCause("releasedAt", errors.New("held consolidation cannot have a release time"))
	}
	c.status = status
	c.releasedAt = releasedAt
	return nil
}
