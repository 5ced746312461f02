package queries_test

import (
	"context"

	"forwarding/internal/core/domain/model/carrier"
	"forwarding/internal/core/domain/model/consolidation"
	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/core/domain/model/storagepolicy"

	"github.com/stretchr/testify/mock"
)

type MockCatalogReader struct{ mock.Mock }

func (m *MockCatalogReader) GetAllActive(ctx context.Context) ([]*carrier.Carrier, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*carrier.Carrier), args.Error(1)
}

type MockPolicyReader struct{ mock.Mock }

func (m *MockPolicyReader) GetActive(ctx context.Context) (*storagepolicy.StoragePolicy, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*storagepolicy.StoragePolicy), args.Error(1)
}

type MockConsolidationReader struct{ mock.Mock }

func (m *MockConsolidationReader) Get(ctx context.Context, id kernel.UUID) (*consolidation.Consolidation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*consolidation.Consolidation), args.Error(1)
}
