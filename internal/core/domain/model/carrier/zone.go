package carrier

import (
	"errors"
	"strings"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/pkg/errs"
	"forwarding/internal/pkg/guard"
)

var (
	// ErrZoneIsNotConstructed is returned when a Zone was built without NewZone.
	ErrZoneIsNotConstructed = errors.New("Zone must be created via NewZone constructor")
	// ErrZoneNotFound is returned when a carrier has no zone with the requested ID.
	ErrZoneNotFound = errors.New("carrier zone not found")
	// ErrZoneAlreadyExists is returned when a carrier already has a zone with the same name.
	ErrZoneAlreadyExists = errors.New("carrier zone with this name already exists")
)

// Zone is a destination-based override of one carrier, e.g. "EU" or "Remote islands".
type Zone struct {
	id    kernel.UUID
	name  string
	rates ZoneRateCard
	guard guard.ConstructorGuard
}

// NewZone creates a zone layer. Like services, zones may carry negative adjustments.
func NewZone(id kernel.UUID, name string, rates ZoneRateCard) (*Zone, error) {
	z := &Zone{
		rates: rates,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(z.setID(id), z.setName(name)); err != nil {
		return nil, err
	}

	return z, nil
}

func (z *Zone) Validate() error {
	if z == nil {
		return ErrZoneIsNotConstructed
	}
	return z.guard.Validate(ErrZoneIsNotConstructed)
}

func (z *Zone) ID() kernel.UUID {
	return z.id
}

func (z *Zone) Name() string {
	return z.name
}

func (z *Zone) Rates() ZoneRateCard {
	return z.rates
}

func (z *Zone) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	z.id = id
	return nil
}

func (z *Zone) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("zone name")
	}
	z.name = name
	return nil
}
