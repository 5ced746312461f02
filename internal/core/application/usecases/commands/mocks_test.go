package commands_test

import (
	"context"

	"forwarding/internal/core/application/usecases/commands"
	"forwarding/internal/core/domain/model/carrier"
	"forwarding/internal/core/domain/model/consolidation"
	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/core/domain/model/storagepolicy"
	"forwarding/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockCarrierRepo struct{ mock.Mock }

func (m *MockCarrierRepo) Add(ctx context.Context, c *carrier.Carrier) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCarrierRepo) Update(ctx context.Context, c *carrier.Carrier) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCarrierRepo) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCarrierRepo) Get(ctx context.Context, id kernel.UUID) (*carrier.Carrier, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*carrier.Carrier), args.Error(1)
}

func (m *MockCarrierRepo) GetAllActive(ctx context.Context) ([]*carrier.Carrier, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*carrier.Carrier), args.Error(1)
}

type MockStoragePolicyRepo struct{ mock.Mock }

func (m *MockStoragePolicyRepo) Add(ctx context.Context, p *storagepolicy.StoragePolicy) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockStoragePolicyRepo) Update(ctx context.Context, p *storagepolicy.StoragePolicy) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockStoragePolicyRepo) Get(ctx context.Context, id kernel.UUID) (*storagepolicy.StoragePolicy, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*storagepolicy.StoragePolicy), args.Error(1)
}

func (m *MockStoragePolicyRepo) GetActive(ctx context.Context) (*storagepolicy.StoragePolicy, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*storagepolicy.StoragePolicy), args.Error(1)
}

func (m *MockStoragePolicyRepo) GetAllActive(ctx context.Context) ([]*storagepolicy.StoragePolicy, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*storagepolicy.StoragePolicy), args.Error(1)
}

func (m *MockStoragePolicyRepo) LockForAdministration(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockStoragePolicyRepo) LatestVersion(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

type MockConsolidationRepo struct{ mock.Mock }

func (m *MockConsolidationRepo) Add(ctx context.Context, c *consolidation.Consolidation) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockConsolidationRepo) Update(ctx context.Context, c *consolidation.Consolidation) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockConsolidationRepo) Get(ctx context.Context, id kernel.UUID) (*consolidation.Consolidation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*consolidation.Consolidation), args.Error(1)
}

func (m *MockConsolidationRepo) GetAllHeldWithoutWarning(ctx context.Context) ([]*consolidation.Consolidation, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*consolidation.Consolidation), args.Error(1)
}

// MockUnitOfWork satisfies every UoW flavour the handlers ask for.
type MockUnitOfWork struct{ mock.Mock }

func (m *MockUnitOfWork) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUnitOfWork) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUnitOfWork) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUnitOfWork) CarrierRepository() ports.CarrierRepository {
	args := m.Called()
	return args.Get(0).(ports.CarrierRepository)
}

func (m *MockUnitOfWork) StoragePolicyRepository() ports.StoragePolicyRepository {
	args := m.Called()
	return args.Get(0).(ports.StoragePolicyRepository)
}

func (m *MockUnitOfWork) ConsolidationRepository() ports.ConsolidationRepository {
	args := m.Called()
	return args.Get(0).(ports.ConsolidationRepository)
}

type MockCarrierUoWFactory struct{ mock.Mock }

func (m *MockCarrierUoWFactory) Create() commands.CarrierUoW {
	args := m.Called()
	return args.Get(0).(commands.CarrierUoW)
}

type MockStoragePolicyUoWFactory struct{ mock.Mock }

func (m *MockStoragePolicyUoWFactory) Create() commands.StoragePolicyUoW {
	args := m.Called()
	return args.Get(0).(commands.StoragePolicyUoW)
}

type MockConsolidationUoWFactory struct{ mock.Mock }

func (m *MockConsolidationUoWFactory) Create() commands.ConsolidationUoW {
	args := m.Called()
	return args.Get(0).(commands.ConsolidationUoW)
}

type MockStorageWarningUoWFactory struct{ mock.Mock }

func (m *MockStorageWarningUoWFactory) Create() commands.StorageWarningUoW {
	args := m.Called()
	return args.Get(0).(commands.StorageWarningUoW)
}

type MockStorageWarningPublisher struct{ mock.Mock }

func (m *MockStorageWarningPublisher) Publish(ctx context.Context, warning ports.StorageWarning) error {
	args := m.Called(ctx, warning)
	return args.Error(0)
}
