package storagepolicy

import (
	"errors"
	"fmt"
	"time"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/pkg/errs"
	"forwarding/internal/pkg/guard"
)

// ErrStoragePolicyIsNotConstructed is returned when using an improperly initialized StoragePolicy.
var ErrStoragePolicyIsNotConstructed = errors.New("StoragePolicy must be created via NewStoragePolicy constructor")

// StoragePolicy is a versioned rule set for free and charged storage.
//
// Exactly one policy is active system-wide. The aggregate only carries the
// flag; the activation use case deactivates the other policies in the same
// transaction. Historical policies stay stored for audit and are never used
// for new calculations.
type StoragePolicy struct {
	id        kernel.UUID
	version   int
	terms     Terms
	isActive  bool
	createdAt time.Time
	guard     guard.ConstructorGuard
}

// NewStoragePolicy creates an inactive policy. Version numbers start at 1.
func NewStoragePolicy(id kernel.UUID, version int, terms Terms, createdAt time.Time) (*StoragePolicy, error) {
	return RestoreStoragePolicy(id, version, terms, false, createdAt)
}

// RestoreStoragePolicy reconstructs a policy, including its active flag, from storage.
func RestoreStoragePolicy(
	id kernel.UUID,
	version int,
	terms Terms,
	isActive bool,
	createdAt time.Time,
) (*StoragePolicy, error) {
	p := &StoragePolicy{
		isActive:  isActive,
		createdAt: createdAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(p.setID(id), p.setVersion(version), p.setTerms(terms)); err != nil {
		return nil, err
	}

	return p, nil
}

func (p *StoragePolicy) Validate() error {
	if p == nil {
		return ErrStoragePolicyIsNotConstructed
	}
	return p.guard.Validate(ErrStoragePolicyIsNotConstructed)
}

func (p *StoragePolicy) ID() kernel.UUID {
	return p.id
}

func (p *StoragePolicy) Version() int {
	return p.version
}

// Terms returns a copy of the rule set. The flat rate pointer is copied too,
// so callers cannot change the policy through it.
func (p *StoragePolicy) Terms() Terms {
	t := p.terms
	if t.FlatDailyRate != nil {
		flat := *t.FlatDailyRate
		t.FlatDailyRate = &flat
	}
	return t
}

func (p *StoragePolicy) FreeDays() int {
	return p.terms.FreeDays
}

func (p *StoragePolicy) WarningDays() int {
	return p.terms.WarningDays
}

func (p *StoragePolicy) MaxDaysAllowed() int {
	return p.terms.MaxDaysAllowed
}

func (p *StoragePolicy) DailyRatePerItem() float64 {
	return p.terms.DailyRatePerItem
}

// FlatDailyRate returns the flat override and whether it is in force
// (configured and strictly positive).
func (p *StoragePolicy) FlatDailyRate() (float64, bool) {
	if p.terms.FlatDailyRate == nil || *p.terms.FlatDailyRate <= 0 {
		return 0, false
	}
	return *p.terms.FlatDailyRate, true
}

func (p *StoragePolicy) WeekendCharges() bool {
	return p.terms.WeekendCharges
}

func (p *StoragePolicy) HolidayCharges() bool {
	return p.terms.HolidayCharges
}

func (p *StoragePolicy) IsActive() bool {
	return p.isActive
}

func (p *StoragePolicy) CreatedAt() time.Time {
	return p.createdAt
}

// Activate flags the policy as the one in force.
func (p *StoragePolicy) Activate() {
	p.isActive = true
}

// Deactivate retires the policy; it remains stored for reporting.
func (p *StoragePolicy) Deactivate() {
	p.isActive = false
}

func (p *StoragePolicy) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *StoragePolicy) setVersion(version int) error {
	if version < 1 {
		return errs.NewVersionIsInvalidError("version", fmt.Errorf("%d is less than 1", version))
	}
	p.version = version
	return nil
}

func (p *StoragePolicy) setTerms(terms Terms) error {
	if err := terms.ValidateDays(); err != nil {
		return err
	}
	if terms.FlatDailyRate != nil {
		flat := *terms.FlatDailyRate
		terms.FlatDailyRate = &flat
	}
	p.terms = terms
	return nil
}
