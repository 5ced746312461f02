package queries_test

import (
	"context"
	"testing"
	"time"

	"forwarding/internal/adapters/out/postgres"
	"forwarding/internal/core/application/usecases/queries"
	"forwarding/internal/core/domain/model/carrier"
	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/core/domain/model/storagepolicy"
	"forwarding/internal/core/ports"
	"forwarding/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"
)

// ReadModelsTestSuite runs the SQL read models against a real PostgreSQL
// schema created by the same migration as production.
type ReadModelsTestSuite struct {
	suite.Suite
	container  *tcpostgres.PostgresContainer
	db         *gorm.DB
	uowFactory ports.UnitOfWorkFactory
}

func (suite *ReadModelsTestSuite) SetupSuite() {
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

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := postgres.Open(dsn)
	suite.Require().NoError(err)
	suite.Require().NoError(postgres.Migrate(db))
	suite.db = db

	suite.uowFactory = postgres.NewGormUnitOfWorkFactory(db)
}

func (suite *ReadModelsTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *ReadModelsTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE carriers, carrier_services, carrier_zones, storage_policies CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *ReadModelsTestSuite) TestGetAllCarriers_EmptyDatabase_ReturnsEmptySlice() {
	handler := queries.NewGetAllCarriersQueryHandler(suite.db)

	result, err := handler.Handle(context.Background(), queries.NewGetAllCarriersQuery(false))

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *ReadModelsTestSuite) TestGetAllCarriers_ReturnsCatalogOrderedByCode() {
	ctx := context.Background()

	ups := suite.newCarrier("UPS Worldwide", "UPS", 3)
	_, err := ups.AddService("Saver", carrier.RateCard{BaseRate: -2.5, RatePerKg: 0.75, EstimatedDays: 4})
	suite.Require().NoError(err)
	_, err = ups.AddService("Express", carrier.RateCard{BaseRate: 8, RatePerKm: 0.01, EstimatedDays: 1})
	suite.Require().NoError(err)
	_, err = ups.AddZone("Remote", carrier.ZoneRateCard{BaseRate: 12, RatePerKg: 1.5, EstimatedDays: 9})
	suite.Require().NoError(err)

	dhl := suite.newCarrier("DHL Express", "DHL", 10)
	dhl.Deactivate()

	suite.save(ups, dhl)

	handler := queries.NewGetAllCarriersQueryHandler(suite.db)
	result, err := handler.Handle(ctx, queries.NewGetAllCarriersQuery(false))

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)

	suite.Equal(dhl.ID(), result[0].ID)
	suite.False(result[0].IsActive)
	suite.Empty(result[0].Services)
	suite.Empty(result[0].Zones)

	got := result[1]
	suite.Equal(ups.ID(), got.ID)
	suite.Equal("UPS Worldwide", got.Name)
	suite.Equal(ups.Rates(), got.Rates)
	suite.Equal(ups.Insurance(), got.Insurance)
	suite.Equal(3, got.Priority)
	suite.True(got.IsActive)

	suite.Require().Len(got.Services, 2)
	suite.Equal("Express", got.Services[0].Name)
	suite.Equal("Saver", got.Services[1].Name)
	suite.InDelta(-2.5, got.Services[1].Rates.BaseRate, 1e-9)
	suite.Require().Len(got.Zones, 1)
	suite.Equal(carrier.ZoneRateCard{BaseRate: 12, RatePerKg: 1.5, EstimatedDays: 9}, got.Zones[0].Rates)
}

func (suite *ReadModelsTestSuite) TestGetAllCarriers_ActiveOnly() {
	active := suite.newCarrier("UPS Worldwide", "UPS", 3)
	inactive := suite.newCarrier("DHL Express", "DHL", 10)
	inactive.Deactivate()
	suite.save(active, inactive)

	handler := queries.NewGetAllCarriersQueryHandler(suite.db)
	result, err := handler.Handle(context.Background(), queries.NewGetAllCarriersQuery(true))

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(active.ID(), result[0].ID)
}

func (suite *ReadModelsTestSuite) TestGetAllCarriers_InvalidQuery_ReturnsError() {
	handler := queries.NewGetAllCarriersQueryHandler(suite.db)

	result, err := handler.Handle(context.Background(), queries.GetAllCarriersQuery{})

	suite.Require().ErrorIs(err, queries.ErrGetAllCarriersQueryIsNotConstructed)
	suite.Nil(result)
}

func (suite *ReadModelsTestSuite) TestGetActiveStoragePolicy_NoPolicy_ReturnsNotFound() {
	handler := queries.NewGetActiveStoragePolicyQueryHandler(suite.db)

	_, err := handler.Handle(context.Background(), queries.NewGetActiveStoragePolicyQuery())

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ReadModelsTestSuite) TestGetActiveStoragePolicy_ReturnsActiveVersion() {
	ctx := context.Background()
	flat := 1.25

	retired, err := storagepolicy.RestoreStoragePolicy(kernel.NewUUID(), 1, storagepolicy.Terms{
		FreeDays: 14, DailyRateSmall: 1, MaxDaysAllowed: 60,
	}, false, time.Now().UTC())
	suite.Require().NoError(err)

	terms := storagepolicy.Terms{
		FreeDays:         30,
		DailyRateSmall:   0.5,
		DailyRateMedium:  1,
		DailyRateLarge:   2,
		DailyRatePerItem: 0.1,
		FlatDailyRate:    &flat,
		WeekendCharges:   true,
		WarningDays:      7,
		MaxDaysAllowed:   90,
	}
	current, err := storagepolicy.RestoreStoragePolicy(kernel.NewUUID(), 2, terms, true, time.Now().UTC())
	suite.Require().NoError(err)

	uow := suite.uowFactory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.StoragePolicyRepository().Add(ctx, retired))
	suite.Require().NoError(uow.StoragePolicyRepository().Add(ctx, current))
	suite.Require().NoError(uow.Commit(ctx))

	handler := queries.NewGetActiveStoragePolicyQueryHandler(suite.db)
	result, err := handler.Handle(ctx, queries.NewGetActiveStoragePolicyQuery())

	suite.Require().NoError(err)
	suite.Equal(current.ID(), result.ID)
	suite.Equal(2, result.Version)
	suite.Equal(terms, result.Terms)
}

func (suite *ReadModelsTestSuite) newCarrier(name, code string, priority int) *carrier.Carrier {
	c, err := carrier.NewCarrier(
		kernel.NewUUID(),
		name,
		code,
		carrier.RateCard{BaseRate: 9.5, RatePerKg: 1.2, RatePerKm: 0.05, EstimatedDays: 6},
		carrier.InsuranceTerms{Available: true, RatePercent: 1.5, MinDeclaredValue: 50, MaxDeclaredValue: 2500},
		priority,
	)
	suite.Require().NoError(err)
	return c
}

func (suite *ReadModelsTestSuite) save(carriers ...*carrier.Carrier) {
	ctx := context.Background()
	uow := suite.uowFactory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	for _, c := range carriers {
		suite.Require().NoError(uow.CarrierRepository().Add(ctx, c))
	}
	suite.Require().NoError(uow.Commit(ctx))
}

func TestReadModelsTestSuite(t *testing.T) {
	suite.Run(t, new(ReadModelsTestSuite))
}
