package consolidationrepo_test

import (
	"context"
	"testing"
	"time"

	"forwarding/internal/adapters/out/postgres"
	"forwarding/internal/adapters/out/postgres/consolidationrepo"
	"forwarding/internal/core/domain/model/consolidation"
	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"
)

type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

type ConsolidationRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *tcpostgres.PostgresContainer
	db         *gorm.DB
	repository *consolidationrepo.GormConsolidationRepository
	tracker    *MockAggregateTracker
}

func (suite *ConsolidationRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:15-alpine",
		tcpostgres.WithDatabase("testdb"),
		tcpostgres.WithUsername("testuser"),
		tcpostgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := postgres.Open(connStr)
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(postgres.Migrate(db))
}

func (suite *ConsolidationRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE consolidations").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.repository = consolidationrepo.NewGormConsolidationRepository(suite.db, suite.tracker)
}

func (suite *ConsolidationRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ConsolidationRepositoryIntegrationTestSuite) newConsolidation(
	suiteNumber string,
	at time.Time,
) *consolidation.Consolidation {
	c, err := consolidation.NewConsolidation(kernel.NewUUID(), suiteNumber, at, 2.345, 3)
	suite.Require().NoError(err)
	return c
}

func (suite *ConsolidationRepositoryIntegrationTestSuite) TestAdd_RoundTrips() {
	ctx := context.Background()
	at := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)
	c := suite.newConsolidation("FWD-1001", at)

	suite.Require().NoError(suite.repository.Add(ctx, c))

	loaded, err := suite.repository.Get(ctx, c.ID())
	suite.Require().NoError(err)
	suite.Equal("FWD-1001", loaded.SuiteNumber())
	suite.True(at.Equal(loaded.ConsolidatedAt()))
	suite.InDelta(2.345, loaded.WeightKg(), 1e-9)
	suite.Equal(3, loaded.ItemCount())
	suite.Equal(consolidation.Held, loaded.Status())
	suite.Nil(loaded.WarningSentAt())
	suite.Nil(loaded.ReleasedAt())
}

func (suite *ConsolidationRepositoryIntegrationTestSuite) TestUpdate_PersistsWarningAndRelease() {
	ctx := context.Background()
	at := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	c := suite.newConsolidation("FWD-1002", at)
	suite.Require().NoError(suite.repository.Add(ctx, c))

	suite.Require().NoError(c.MarkWarningSent(at.AddDate(0, 0, 23)))
	suite.Require().NoError(c.Release(at.AddDate(0, 0, 40)))
	suite.Require().NoError(suite.repository.Update(ctx, c))

	loaded, err := suite.repository.Get(ctx, c.ID())
	suite.Require().NoError(err)
	suite.Equal(consolidation.Released, loaded.Status())
	suite.Require().NotNil(loaded.WarningSentAt())
	suite.True(at.AddDate(0, 0, 23).Equal(*loaded.WarningSentAt()))
	suite.Require().NotNil(loaded.ReleasedAt())
	suite.Equal(40, loaded.DaysStored(time.Now()))
}

func (suite *ConsolidationRepositoryIntegrationTestSuite) TestGet_Missing_ReturnsNotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ConsolidationRepositoryIntegrationTestSuite) TestGetAllHeldWithoutWarning() {
	ctx := context.Background()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	newer := suite.newConsolidation("FWD-2", base.AddDate(0, 0, 5))
	older := suite.newConsolidation("FWD-1", base)
	warned := suite.newConsolidation("FWD-3", base)
	suite.Require().NoError(warned.MarkWarningSent(base.AddDate(0, 0, 23)))
	released := suite.newConsolidation("FWD-4", base)
	suite.Require().NoError(released.Release(base.AddDate(0, 0, 3)))

	for _, c := range []*consolidation.Consolidation{newer, older, warned, released} {
		suite.Require().NoError(suite.repository.Add(ctx, c))
	}

	pending, err := suite.repository.GetAllHeldWithoutWarning(ctx)

	suite.Require().NoError(err)
	suite.Require().Len(pending, 2)
	suite.Equal(older.ID(), pending[0].ID())
	suite.Equal(newer.ID(), pending[1].ID())
}

func (suite *ConsolidationRepositoryIntegrationTestSuite) TestGetAllHeldWithoutWarning_SkipsRowsClaimedByAnotherTransaction() {
	ctx := context.Background()
	pending := suite.newConsolidation("FWD-5", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	suite.Require().NoError(suite.repository.Add(ctx, pending))

	first := suite.db.WithContext(ctx).Begin()
	suite.Require().NoError(first.Error)
	defer first.Rollback()
	claimed, err := consolidationrepo.NewGormConsolidationRepository(first, suite.tracker).GetAllHeldWithoutWarning(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(claimed, 1)

	second := suite.db.WithContext(ctx).Begin()
	suite.Require().NoError(second.Error)
	defer second.Rollback()
	overlapping, err := consolidationrepo.NewGormConsolidationRepository(second, suite.tracker).GetAllHeldWithoutWarning(ctx)
	suite.Require().NoError(err)
	suite.Empty(overlapping)

	suite.Require().NoError(first.Rollback().Error)

	released, err := consolidationrepo.NewGormConsolidationRepository(second, suite.tracker).GetAllHeldWithoutWarning(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(released, 1)
	suite.Equal(pending.ID(), released[0].ID())
}

func TestConsolidationRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ConsolidationRepositoryIntegrationTestSuite))
}
