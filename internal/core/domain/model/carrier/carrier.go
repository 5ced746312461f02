package carrier

import (
	"errors"
	"strings"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/pkg/errs"
	"forwarding/internal/pkg/guard"
)

// Domain errors for carrier operations.
var (
	// ErrCarrierIsNotConstructed is returned when using an improperly initialized Carrier.
	ErrCarrierIsNotConstructed = errors.New("Carrier must be created via NewCarrier constructor")
	// ErrNameIsRequired is returned when a carrier has no display name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrCodeIsRequired is returned when a carrier has no short code.
	ErrCodeIsRequired = errs.NewValueIsRequiredError("code")
)

// Carrier is the aggregate root of the shipping catalog: a provider with its
// own rate card, insurance terms and ranking priority, owning its services and
// zones exclusively.
//
// Business rules:
//   - ID, name and code are required; the code is stored upper-cased
//   - Insurance terms must describe a consistent declared-value band
//   - Service and zone names are unique within the carrier
//   - Deactivation hides the carrier from quoting without deleting it
//
// Rate-card signs are not checked here. The admin write path rejects negative
// carrier rates, while pricing tolerates whatever the catalog holds and floors
// the result at zero.
//
// Example usage:
//
//	c, err := carrier.NewCarrier(kernel.NewUUID(), "DHL Express", "dhl",
//	    carrier.RateCard{BaseRate: 12, RatePerKg: 4.5, EstimatedDays: 3},
//	    carrier.InsuranceTerms{Available: true, RatePercent: 2, MinDeclaredValue: 100, MaxDeclaredValue: 5000},
//	    20,
//	)
//	if err != nil {
//	    // Handle construction error
//	}
//	_, _ = c.AddService("Overnight", carrier.RateCard{BaseRate: 25, EstimatedDays: 1})
type Carrier struct {
	id        kernel.UUID
	name      string
	code      string
	rates     RateCard
	insurance InsuranceTerms
	priority  int
	isActive  bool
	services  []*Service
	zones     []*Zone
	guard     guard.ConstructorGuard
}

// NewCarrier creates an active carrier without services or zones.
// All validation errors are aggregated into the returned error.
func NewCarrier(
	id kernel.UUID,
	name string,
	code string,
	rates RateCard,
	insurance InsuranceTerms,
	priority int,
) (*Carrier, error) {
	c := &Carrier{
		rates:    rates,
		priority: priority,
		isActive: true,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
		c.setCode(code),
		c.setInsurance(insurance),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreCarrier reconstructs a carrier aggregate, including its active flag,
// services and zones, from persistent storage.
func RestoreCarrier(
	id kernel.UUID,
	name string,
	code string,
	rates RateCard,
	insurance InsuranceTerms,
	priority int,
	isActive bool,
	services []*Service,
	zones []*Zone,
) (*Carrier, error) {
	c := &Carrier{
		rates:    rates,
		priority: priority,
		isActive: isActive,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
		c.setCode(code),
		c.setInsurance(insurance),
		c.setServices(services),
		c.setZones(zones),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// Validate reports whether the carrier was created via NewCarrier or RestoreCarrier.
func (c *Carrier) Validate() error {
	if c == nil {
		return ErrCarrierIsNotConstructed
	}
	return c.guard.Validate(ErrCarrierIsNotConstructed)
}

// IsEqual compares carriers by identity.
func (c *Carrier) IsEqual(other *Carrier) bool {
	if other == nil {
		return false
	}
	return c.id.IsEqual(other.id)
}

func (c *Carrier) ID() kernel.UUID {
	return c.id
}

func (c *Carrier) Name() string {
	return c.name
}

// Code returns the unique, upper-cased short code (e.g. "DHL").
func (c *Carrier) Code() string {
	return c.code
}

func (c *Carrier) Rates() RateCard {
	return c.rates
}

func (c *Carrier) Insurance() InsuranceTerms {
	return c.insurance
}

// Priority ranks carriers during selection; higher wins before price is compared.
func (c *Carrier) Priority() int {
	return c.priority
}

func (c *Carrier) IsActive() bool {
	return c.isActive
}

// Services returns a copy of the carrier's service list.
func (c *Carrier) Services() []*Service {
	out := make([]*Service, len(c.services))
	copy(out, c.services)
	return out
}

// Zones returns a copy of the carrier's zone list.
func (c *Carrier) Zones() []*Zone {
	out := make([]*Zone, len(c.zones))
	copy(out, c.zones)
	return out
}

// Activate makes the carrier visible to quoting. Activating an active carrier is a no-op.
func (c *Carrier) Activate() {
	c.isActive = true
}

// Deactivate hides the carrier from quoting while keeping its configuration.
func (c *Carrier) Deactivate() {
	c.isActive = false
}

// AddService attaches a new service layer to the carrier.
// Returns ErrServiceAlreadyExists when the name is taken (case-insensitive).
func (c *Carrier) AddService(name string, rates RateCard) (*Service, error) {
	for _, s := range c.services {
		if strings.EqualFold(s.Name(), strings.TrimSpace(name)) {
			return nil, ErrServiceAlreadyExists
		}
	}

	service, err := NewService(kernel.NewUUID(), name, rates)
	if err != nil {
		return nil, err
	}

	c.services = append(c.services, service)
	return service, nil
}

// AddZone attaches a new zone layer to the carrier.
// Returns ErrZoneAlreadyExists when the name is taken (case-insensitive).
func (c *Carrier) AddZone(name string, rates ZoneRateCard) (*Zone, error) {
	for _, z := range c.zones {
		if strings.EqualFold(z.Name(), strings.TrimSpace(name)) {
			return nil, ErrZoneAlreadyExists
		}
	}

	zone, err := NewZone(kernel.NewUUID(), name, rates)
	if err != nil {
		return nil, err
	}

	c.zones = append(c.zones, zone)
	return zone, nil
}

// FindService looks up one of the carrier's own services.
func (c *Carrier) FindService(id kernel.UUID) (*Service, error) {
	for _, s := range c.services {
		if s.ID().IsEqual(id) {
			return s, nil
		}
	}
	return nil, ErrServiceNotFound
}

// FindZone looks up one of the carrier's own zones.
func (c *Carrier) FindZone(id kernel.UUID) (*Zone, error) {
	for _, z := range c.zones {
		if z.ID().IsEqual(id) {
			return z, nil
		}
	}
	return nil, ErrZoneNotFound
}

func (c *Carrier) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Carrier) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameIsRequired
	}
	c.name = name
	return nil
}

func (c *Carrier) setCode(code string) error {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return ErrCodeIsRequired
	}
	c.code = code
	return nil
}

func (c *Carrier) setInsurance(terms InsuranceTerms) error {
	if err := terms.Validate(); err != nil {
		return err
	}
	c.insurance = terms
	return nil
}

func (c *Carrier) setServices(services []*Service) error {
	for _, s := range services {
		if err := s.Validate(); err != nil {
			return err
		}
	}
	c.services = append([]*Service(nil), services...)
	return nil
}

func (c *Carrier) setZones(zones []*Zone) error {
	for _, z := range zones {
		if err := z.Validate(); err != nil {
			return err
		}
	}
	c.zones = append([]*Zone(nil), zones...)
	return nil
}
