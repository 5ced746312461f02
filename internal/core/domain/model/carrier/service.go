package carrier

import (
	"errors"
	"strings"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/pkg/errs"
	"forwarding/internal/pkg/guard"
)

var (
	// ErrServiceIsNotConstructed is returned when a Service was built without NewService.
	ErrServiceIsNotConstructed = errors.New("Service must be created via NewService constructor")
	// ErrServiceNotFound is returned when a carrier has no service with the requested ID.
	ErrServiceNotFound = errors.New("carrier service not found")
	// ErrServiceAlreadyExists is returned when a carrier already has a service with the same name.
	ErrServiceAlreadyExists = errors.New("carrier service with this name already exists")
)

// Service is a named product of one carrier ("Ground", "Overnight"). Its rate
// card is added on top of the carrier's own card when a quote names the service.
type Service struct {
	id    kernel.UUID
	name  string
	rates RateCard
	guard guard.ConstructorGuard
}

// NewService creates a service layer. The rate card may hold negative values,
// which act as discounts against the carrier rate.
func NewService(id kernel.UUID, name string, rates RateCard) (*Service, error) {
	s := &Service{
		rates: rates,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(s.setID(id), s.setName(name)); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *Service) Validate() error {
	if s == nil {
		return ErrServiceIsNotConstructed
	}
	return s.guard.Validate(ErrServiceIsNotConstructed)
}

func (s *Service) ID() kernel.UUID {
	return s.id
}

func (s *Service) Name() string {
	return s.name
}

func (s *Service) Rates() RateCard {
	return s.rates
}

func (s *Service) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Service) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("service name")
	}
	s.name = name
	return nil
}
