package cmd

import (
	"log/slog"

	httpin "forwarding/internal/adapters/in/http"
	"forwarding/internal/adapters/out/postgres"
	"forwarding/internal/core/application/usecases/commands"
	"forwarding/internal/core/application/usecases/queries"
	"forwarding/internal/core/ports"
	"forwarding/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	configs    Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	publisher  ports.StorageWarningPublisher
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB, publisher ports.StorageWarningPublisher) CompositionRoot {
	return CompositionRoot{
		configs:    configs,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		publisher:  publisher,
	}
}

func (c *CompositionRoot) CreateCreateCarrierCommandHandler() commands.CreateCarrierCommandHandler {
	return commands.NewCreateCarrierCommandHandler(c.carrierUoWFactory())
}

func (c *CompositionRoot) CreateAddCarrierServiceCommandHandler() commands.AddCarrierServiceCommandHandler {
	return commands.NewAddCarrierServiceCommandHandler(c.carrierUoWFactory())
}

func (c *CompositionRoot) CreateAddCarrierZoneCommandHandler() commands.AddCarrierZoneCommandHandler {
	return commands.NewAddCarrierZoneCommandHandler(c.carrierUoWFactory())
}

func (c *CompositionRoot) CreateChangeCarrierStatusCommandHandler() commands.ChangeCarrierStatusCommandHandler {
	return commands.NewChangeCarrierStatusCommandHandler(c.carrierUoWFactory())
}

func (c *CompositionRoot) CreateDeleteCarrierCommandHandler() commands.DeleteCarrierCommandHandler {
	return commands.NewDeleteCarrierCommandHandler(c.carrierUoWFactory())
}

func (c *CompositionRoot) CreateCreateStoragePolicyCommandHandler() commands.CreateStoragePolicyCommandHandler {
	return commands.NewCreateStoragePolicyCommandHandler(c.storagePolicyUoWFactory())
}

func (c *CompositionRoot) CreateActivateStoragePolicyCommandHandler() commands.ActivateStoragePolicyCommandHandler {
	return commands.NewActivateStoragePolicyCommandHandler(c.storagePolicyUoWFactory())
}

func (c *CompositionRoot) CreateRegisterConsolidationCommandHandler() commands.RegisterConsolidationCommandHandler {
	return commands.NewRegisterConsolidationCommandHandler(c.consolidationUoWFactory())
}

func (c *CompositionRoot) CreateReleaseConsolidationCommandHandler() commands.ReleaseConsolidationCommandHandler {
	return commands.NewReleaseConsolidationCommandHandler(c.consolidationUoWFactory())
}

func (c *CompositionRoot) CreateSendStorageWarningsCommandHandler() commands.SendStorageWarningsCommandHandler {
	var f commands.StorageWarningUoWFactory = FuncStorageWarningUoWFactory(func() commands.StorageWarningUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSendStorageWarningsCommandHandler(f, c.publisher)
}

func (c *CompositionRoot) CreateGetAllCarriersQueryHandler() queries.GetAllCarriersQueryHandler {
	return queries.NewGetAllCarriersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetActiveStoragePolicyQueryHandler() queries.GetActiveStoragePolicyQueryHandler {
	return queries.NewGetActiveStoragePolicyQueryHandler(c.gormDB)
}

// CreateQuoteShipmentQueryHandler reads the catalog outside any transaction;
// a repository of a unit of work that never began uses the pool directly.
func (c *CompositionRoot) CreateQuoteShipmentQueryHandler() queries.QuoteShipmentQueryHandler {
	return queries.NewQuoteShipmentQueryHandler(c.uowFactory.Create().CarrierRepository())
}

func (c *CompositionRoot) CreateGetStorageFeeQueryHandler() queries.GetStorageFeeQueryHandler {
	uow := c.uowFactory.Create()
	return queries.NewGetStorageFeeQueryHandler(uow.ConsolidationRepository(), uow.StoragePolicyRepository())
}

// CreateHTTPServer wires every use case into the HTTP adapter.
func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	createCarrier := c.CreateCreateCarrierCommandHandler()
	addCarrierService := c.CreateAddCarrierServiceCommandHandler()
	addCarrierZone := c.CreateAddCarrierZoneCommandHandler()
	changeCarrierStatus := c.CreateChangeCarrierStatusCommandHandler()
	deleteCarrier := c.CreateDeleteCarrierCommandHandler()
	createStoragePolicy := c.CreateCreateStoragePolicyCommandHandler()
	activateStoragePolicy := c.CreateActivateStoragePolicyCommandHandler()
	registerConsolidation := c.CreateRegisterConsolidationCommandHandler()
	releaseConsolidation := c.CreateReleaseConsolidationCommandHandler()
	sendStorageWarnings := c.CreateSendStorageWarningsCommandHandler()

	return httpin.NewServer(httpin.Handlers{
		CreateCarrier:         &createCarrier,
		AddCarrierService:     &addCarrierService,
		AddCarrierZone:        &addCarrierZone,
		ChangeCarrierStatus:   &changeCarrierStatus,
		DeleteCarrier:         &deleteCarrier,
		CreateStoragePolicy:   &createStoragePolicy,
		ActivateStoragePolicy: &activateStoragePolicy,
		RegisterConsolidation: &registerConsolidation,
		ReleaseConsolidation:  &releaseConsolidation,
		SendStorageWarnings:   &sendStorageWarnings,

		GetAllCarriers:         c.CreateGetAllCarriersQueryHandler(),
		GetActiveStoragePolicy: c.CreateGetActiveStoragePolicyQueryHandler(),
		QuoteShipment:          c.CreateQuoteShipmentQueryHandler(),
		GetStorageFee:          c.CreateGetStorageFeeQueryHandler(),
	})
}

func (c *CompositionRoot) CreateJobManager(logger *slog.Logger) *jobs.JobManager {
	sendStorageWarnings := c.CreateSendStorageWarningsCommandHandler()
	return jobs.NewJobManager(&sendStorageWarnings, c.configs.StorageWarningSchedule, logger)
}

func (c *CompositionRoot) carrierUoWFactory() commands.CarrierUoWFactory {
	return FuncCarrierUoWFactory(func() commands.CarrierUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) storagePolicyUoWFactory() commands.StoragePolicyUoWFactory {
	return FuncStoragePolicyUoWFactory(func() commands.StoragePolicyUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) consolidationUoWFactory() commands.ConsolidationUoWFactory {
	return FuncConsolidationUoWFactory(func() commands.ConsolidationUoW {
		return c.uowFactory.Create()
	})
}

type FuncCarrierUoWFactory func() commands.CarrierUoW

func (f FuncCarrierUoWFactory) Create() commands.CarrierUoW {
	return f()
}

type FuncStoragePolicyUoWFactory func() commands.StoragePolicyUoW

func (f FuncStoragePolicyUoWFactory) Create() commands.StoragePolicyUoW {
	return f()
}

type FuncConsolidationUoWFactory func() commands.ConsolidationUoW

func (f FuncConsolidationUoWFactory) Create() commands.ConsolidationUoW {
	return f()
}

type FuncStorageWarningUoWFactory func() commands.StorageWarningUoW

func (f FuncStorageWarningUoWFactory) Create() commands.StorageWarningUoW {
	return f()
}
