package http

import (
	"context"
	"net/http"
	"time"

	"forwarding/internal/core/application/usecases/commands"
	"forwarding/internal/core/application/usecases/queries"
	"forwarding/internal/core/domain/model/carrier"
	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/core/domain/model/storagepolicy"
	"forwarding/internal/core/domain/services"
	"forwarding/internal/generated/servers"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Handler contracts the server depends on. The application handlers in
// commands and queries satisfy them.
type (
	CreateCarrierHandler interface {
		Handle(ctx context.Context, cmd commands.CreateCarrierCommand) error
	}
	AddCarrierServiceHandler interface {
		Handle(ctx context.Context, cmd commands.AddCarrierServiceCommand) (kernel.UUID, error)
	}
	AddCarrierZoneHandler interface {
		Handle(ctx context.Context, cmd commands.AddCarrierZoneCommand) (kernel.UUID, error)
	}
	ChangeCarrierStatusHandler interface {
		Handle(ctx context.Context, cmd commands.ChangeCarrierStatusCommand) error
	}
	DeleteCarrierHandler interface {
		Handle(ctx context.Context, cmd commands.DeleteCarrierCommand) error
	}
	CreateStoragePolicyHandler interface {
		Handle(ctx context.Context, cmd commands.CreateStoragePolicyCommand) (int, error)
	}
	ActivateStoragePolicyHandler interface {
		Handle(ctx context.Context, cmd commands.ActivateStoragePolicyCommand) error
	}
	RegisterConsolidationHandler interface {
		Handle(ctx context.Context, cmd commands.RegisterConsolidationCommand) error
	}
	ReleaseConsolidationHandler interface {
		Handle(ctx context.Context, cmd commands.ReleaseConsolidationCommand) error
	}
	SendStorageWarningsHandler interface {
		Handle(ctx context.Context, cmd commands.SendStorageWarningsCommand) (int, error)
	}
	GetAllCarriersHandler interface {
		Handle(ctx context.Context, query queries.GetAllCarriersQuery) ([]queries.GetAllCarriersQueryResponse, error)
	}
	GetActiveStoragePolicyHandler interface {
		Handle(
			ctx context.Context,
			query queries.GetActiveStoragePolicyQuery,
		) (queries.GetActiveStoragePolicyQueryResponse, error)
	}
	QuoteShipmentHandler interface {
		Handle(ctx context.Context, query queries.QuoteShipmentQuery) (queries.QuoteShipmentQueryResponse, error)
	}
	GetStorageFeeHandler interface {
		Handle(ctx context.Context, query queries.GetStorageFeeQuery) (queries.GetStorageFeeQueryResponse, error)
	}
)

// Handlers groups the use cases served over HTTP.
type Handlers struct {
	// Command handlers
	CreateCarrier         CreateCarrierHandler
	AddCarrierService     AddCarrierServiceHandler
	AddCarrierZone        AddCarrierZoneHandler
	ChangeCarrierStatus   ChangeCarrierStatusHandler
	DeleteCarrier         DeleteCarrierHandler
	CreateStoragePolicy   CreateStoragePolicyHandler
	ActivateStoragePolicy ActivateStoragePolicyHandler
	RegisterConsolidation RegisterConsolidationHandler
	ReleaseConsolidation  ReleaseConsolidationHandler
	SendStorageWarnings   SendStorageWarningsHandler

	// Query handlers
	GetAllCarriers         GetAllCarriersHandler
	GetActiveStoragePolicy GetActiveStoragePolicyHandler
	QuoteShipment          QuoteShipmentHandler
	GetStorageFee          GetStorageFeeHandler
}

// Server implements servers.ServerInterface. It turns requests into commands
// and queries and renders their results; failures are returned to echo and
// rendered by the error handler installed in NewRouter.
type Server struct {
	handlers Handlers
	now      func() time.Time
}

var _ servers.ServerInterface = (*Server)(nil)

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(handlers Handlers) *Server {
	return &Server{
		handlers: handlers,
		now:      time.Now,
	}
}

// GetCarriers handles GET /api/v1/carriers.
func (s *Server) GetCarriers(ctx echo.Context, params servers.GetCarriersParams) error {
	query := queries.NewGetAllCarriersQuery(valueOr(params.ActiveOnly, false))

	carriers, err := s.handlers.GetAllCarriers.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	response := make([]servers.Carrier, len(carriers))
	for i, c := range carriers {
		response[i] = toAPICarrier(c)
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateCarrier handles POST /api/v1/carriers.
func (s *Server) CreateCarrier(ctx echo.Context) error {
	var body servers.CreateCarrierJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return errInvalidBody
	}

	insurance := carrier.NoInsurance()
	if body.Insurance != nil {
		insurance = carrier.InsuranceTerms{
			Available:        body.Insurance.Available,
			RatePercent:      body.Insurance.RatePercent,
			MinDeclaredValue: body.Insurance.MinDeclaredValue,
			MaxDeclaredValue: body.Insurance.MaxDeclaredValue,
		}
	}

	cmd, err := commands.NewCreateCarrierCommand(
		body.Name,
		body.Code,
		carrier.RateCard{
			BaseRate:      body.BaseRate,
			RatePerKg:     body.RatePerKg,
			RatePerKm:     valueOr(body.RatePerKm, 0),
			EstimatedDays: valueOr(body.EstimatedDays, 0),
		},
		insurance,
		valueOr(body.Priority, 0),
	)
	if err != nil {
		return err
	}

	if err = s.handlers.CreateCarrier.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, servers.CreatedResource{Id: cmd.CarrierID().Bytes()})
}

// DeleteCarrier handles DELETE /api/v1/carriers/{carrierId}.
func (s *Server) DeleteCarrier(ctx echo.Context, carrierID servers.CarrierId) error {
	id, err := fromAPIUUID(carrierID)
	if err != nil {
		return err
	}

	cmd, err := commands.NewDeleteCarrierCommand(id)
	if err != nil {
		return err
	}

	if err = s.handlers.DeleteCarrier.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AddCarrierService handles POST /api/v1/carriers/{carrierId}/services.
func (s *Server) AddCarrierService(ctx echo.Context, carrierID servers.CarrierId) error {
	var body servers.AddCarrierServiceJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return errInvalidBody
	}

	id, err := fromAPIUUID(carrierID)
	if err != nil {
		return err
	}

	cmd, err := commands.NewAddCarrierServiceCommand(id, body.Name, carrier.RateCard{
		BaseRate:      body.BaseRate,
		RatePerKg:     body.RatePerKg,
		RatePerKm:     valueOr(body.RatePerKm, 0),
		EstimatedDays: valueOr(body.EstimatedDays, 0),
	})
	if err != nil {
		return err
	}

	serviceID, err := s.handlers.AddCarrierService.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, servers.CreatedResource{Id: serviceID.Bytes()})
}

// AddCarrierZone handles POST /api/v1/carriers/{carrierId}/zones.
func (s *Server) AddCarrierZone(ctx echo.Context, carrierID servers.CarrierId) error {
	var body servers.AddCarrierZoneJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return errInvalidBody
	}

	id, err := fromAPIUUID(carrierID)
	if err != nil {
		return err
	}

	cmd, err := commands.NewAddCarrierZoneCommand(id, body.Name, carrier.ZoneRateCard{
		BaseRate:      body.BaseRate,
		RatePerKg:     body.RatePerKg,
		EstimatedDays: valueOr(body.EstimatedDays, 0),
	})
	if err != nil {
		return err
	}

	zoneID, err := s.handlers.AddCarrierZone.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, servers.CreatedResource{Id: zoneID.Bytes()})
}

// ChangeCarrierStatus handles PUT /api/v1/carriers/{carrierId}/status.
func (s *Server) ChangeCarrierStatus(ctx echo.Context, carrierID servers.CarrierId) error {
	var body servers.ChangeCarrierStatusJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return errInvalidBody
	}

	id, err := fromAPIUUID(carrierID)
	if err != nil {
		return err
	}

	cmd, err := commands.NewChangeCarrierStatusCommand(id, body.Active)
	if err != nil {
		return err
	}

	if err = s.handlers.ChangeCarrierStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}

// QuoteShipment handles POST /api/v1/quotes.
func (s *Server) QuoteShipment(ctx echo.Context) error {
	var body servers.QuoteShipmentJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return errInvalidBody
	}

	params := queries.QuoteShipmentParams{
		WeightKg:          body.WeightKg,
		DistanceKm:        valueOr(body.DistanceKm, 0),
		RequiresInsurance: valueOr(body.RequiresInsurance, false),
		DeclaredValue:     body.DeclaredValue,
	}

	var err error
	if params.CarrierID, err = fromOptionalAPIUUID(body.CarrierId); err != nil {
		return err
	}
	if params.ServiceID, err = fromOptionalAPIUUID(body.ServiceId); err != nil {
		return err
	}
	if params.ZoneID, err = fromOptionalAPIUUID(body.ZoneId); err != nil {
		return err
	}

	query, err := queries.NewQuoteShipmentQuery(params)
	if err != nil {
		return err
	}

	quote, err := s.handlers.QuoteShipment.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, toAPIQuote(quote))
}

// CreateStoragePolicy handles POST /api/v1/storage-policies.
func (s *Server) CreateStoragePolicy(ctx echo.Context) error {
	var body servers.CreateStoragePolicyJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return errInvalidBody
	}

	cmd, err := commands.NewCreateStoragePolicyCommand(storagepolicy.Terms{
		FreeDays:         body.FreeDays,
		DailyRateSmall:   body.DailyRateSmall,
		DailyRateMedium:  body.DailyRateMedium,
		DailyRateLarge:   body.DailyRateLarge,
		DailyRatePerItem: body.DailyRatePerItem,
		FlatDailyRate:    body.FlatDailyRate,
		WeekendCharges:   valueOr(body.WeekendCharges, false),
		HolidayCharges:   valueOr(body.HolidayCharges, false),
		WarningDays:      body.WarningDays,
		MaxDaysAllowed:   body.MaxDaysAllowed,
	}, valueOr(body.Activate, false))
	if err != nil {
		return err
	}

	version, err := s.handlers.CreateStoragePolicy.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, servers.CreatedStoragePolicy{
		Id:      cmd.PolicyID().Bytes(),
		Version: version,
	})
}

// GetActiveStoragePolicy handles GET /api/v1/storage-policies/active.
func (s *Server) GetActiveStoragePolicy(ctx echo.Context) error {
	policy, err := s.handlers.GetActiveStoragePolicy.Handle(
		ctx.Request().Context(),
		queries.NewGetActiveStoragePolicyQuery(),
	)
	if err != nil {
		return err
	}

	terms := policy.Terms
	return ctx.JSON(http.StatusOK, servers.StoragePolicy{
		Id:               policy.ID.Bytes(),
		Version:          policy.Version,
		CreatedAt:        policy.CreatedAt,
		FreeDays:         terms.FreeDays,
		DailyRateSmall:   terms.DailyRateSmall,
		DailyRateMedium:  terms.DailyRateMedium,
		DailyRateLarge:   terms.DailyRateLarge,
		DailyRatePerItem: terms.DailyRatePerItem,
		FlatDailyRate:    terms.FlatDailyRate,
		WeekendCharges:   terms.WeekendCharges,
		HolidayCharges:   terms.HolidayCharges,
		WarningDays:      terms.WarningDays,
		MaxDaysAllowed:   terms.MaxDaysAllowed,
	})
}

// ActivateStoragePolicy handles PUT /api/v1/storage-policies/{policyId}/activate.
func (s *Server) ActivateStoragePolicy(ctx echo.Context, policyID openapi_types.UUID) error {
	id, err := fromAPIUUID(policyID)
	if err != nil {
		return err
	}

	cmd, err := commands.NewActivateStoragePolicyCommand(id)
	if err != nil {
		return err
	}

	if err = s.handlers.ActivateStoragePolicy.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SendStorageWarnings handles POST /api/v1/storage-warnings/sweep. A sweep
// with failed publications still reports an error even though the others
// were sent and recorded.
func (s *Server) SendStorageWarnings(ctx echo.Context) error {
	cmd := commands.NewSendStorageWarningsCommand(s.now())

	sent, err := s.handlers.SendStorageWarnings.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, servers.StorageWarningSweep{Sent: sent})
}

// RegisterConsolidation handles POST /api/v1/consolidations.
func (s *Server) RegisterConsolidation(ctx echo.Context) error {
	var body servers.RegisterConsolidationJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return errInvalidBody
	}

	cmd, err := commands.NewRegisterConsolidationCommand(
		body.SuiteNumber,
		valueOr(body.ConsolidatedAt, s.now()),
		body.WeightKg,
		body.ItemCount,
	)
	if err != nil {
		return err
	}

	if err = s.handlers.RegisterConsolidation.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, servers.CreatedResource{Id: cmd.ConsolidationID().Bytes()})
}

// ReleaseConsolidation handles POST /api/v1/consolidations/{consolidationId}/release.
// The body is optional; without releasedAt the consolidation is released now.
func (s *Server) ReleaseConsolidation(ctx echo.Context, consolidationID servers.ConsolidationId) error {
	var body servers.ReleaseConsolidationJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return errInvalidBody
	}

	id, err := fromAPIUUID(consolidationID)
	if err != nil {
		return err
	}

	cmd, err := commands.NewReleaseConsolidationCommand(id, valueOr(body.ReleasedAt, s.now()))
	if err != nil {
		return err
	}

	if err = s.handlers.ReleaseConsolidation.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetStorageFee handles GET /api/v1/consolidations/{consolidationId}/storage-fee.
func (s *Server) GetStorageFee(
	ctx echo.Context,
	consolidationID servers.ConsolidationId,
	params servers.GetStorageFeeParams,
) error {
	id, err := fromAPIUUID(consolidationID)
	if err != nil {
		return err
	}

	query, err := queries.NewGetStorageFeeQuery(
		id,
		services.Surcharges{
			Weekends: valueOr(params.IncludeWeekends, false),
			Holidays: valueOr(params.IncludeHolidays, false),
		},
		valueOr(params.At, s.now()),
	)
	if err != nil {
		return err
	}

	fee, err := s.handlers.GetStorageFee.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, toAPIStorageFee(fee))
}
