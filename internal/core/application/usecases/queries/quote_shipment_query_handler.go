package queries

import (
	"context"
	"fmt"

	"forwarding/internal/core/domain/model/carrier"
	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/core/domain/services"
	"forwarding/internal/pkg/errs"

	"golang.org/x/sync/singleflight"
)

const catalogSnapshotKey = "active-carriers"

// QuoteShipmentQueryHandler quotes shipments over a snapshot of the active
// catalog. Concurrent requests share one in-flight catalog load.
type QuoteShipmentQueryHandler struct {
	catalog CarrierCatalogReader
	engine  services.RatingEngine
	loads   *singleflight.Group
}

func NewQuoteShipmentQueryHandler(catalog CarrierCatalogReader) QuoteShipmentQueryHandler {
	return QuoteShipmentQueryHandler{
		catalog: catalog,
		engine:  services.NewRatingEngine(),
		loads:   &singleflight.Group{},
	}
}

// Handle returns services.ErrCarrierNotFound when no carrier qualifies, and
// errs.ErrObjectNotFound, carrier.ErrServiceNotFound or carrier.ErrZoneNotFound
// when a requested carrier, service or zone is not in the active catalog.
func (h QuoteShipmentQueryHandler) Handle(
	ctx context.Context,
	query QuoteShipmentQuery,
) (QuoteShipmentQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return QuoteShipmentQueryResponse{}, err
	}
	params := query.Params()

	catalog, err := h.loadCatalog(ctx)
	if err != nil {
		return QuoteShipmentQueryResponse{}, err
	}

	shipment := services.Shipment{WeightKg: params.WeightKg, DistanceKm: params.DistanceKm}

	insurance := query.insurance()

	selected, err := h.selectCarrier(catalog, shipment, params.CarrierID, insurance)
	if err != nil {
		return QuoteShipmentQueryResponse{}, err
	}

	var (
		service *carrier.Service
		zone    *carrier.Zone
	)
	if params.ServiceID != nil {
		if service, err = selected.FindService(*params.ServiceID); err != nil {
			return QuoteShipmentQueryResponse{}, err
		}
	}
	if params.ZoneID != nil {
		if zone, err = selected.FindZone(*params.ZoneID); err != nil {
			return QuoteShipmentQueryResponse{}, err
		}
	}

	resp := QuoteShipmentQueryResponse{
		CarrierID:     selected.ID(),
		CarrierName:   selected.Name(),
		CarrierCode:   selected.Code(),
		ShippingRate:  h.engine.CalculateShippingRate(selected, shipment, service, zone),
		EstimatedDays: h.engine.EstimateTransitDays(selected, service, zone),
	}
	if service != nil {
		id := service.ID()
		resp.ServiceID = &id
		resp.ServiceName = service.Name()
	}
	if zone != nil {
		id := zone.ID()
		resp.ZoneID = &id
		resp.ZoneName = zone.Name()
	}
	if insurance != nil {
		resp.Insured = selected.Insurance().Covers(insurance.DeclaredValue)
		resp.InsurancePremium = h.engine.CalculateInsuranceRate(selected, insurance.DeclaredValue)
	}
	resp.Total = resp.ShippingRate + resp.InsurancePremium

	return resp, nil
}

func (h QuoteShipmentQueryHandler) selectCarrier(
	catalog []*carrier.Carrier,
	shipment services.Shipment,
	carrierID *kernel.UUID,
	insurance *services.InsuranceRequirement,
) (*carrier.Carrier, error) {
	if carrierID == nil {
		return h.engine.FindBestCarrier(catalog, shipment, insurance)
	}

	for _, c := range catalog {
		if c.ID().IsEqual(*carrierID) {
			return c, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("carrier", *carrierID)
}

// loadCatalog coalesces concurrent loads. The shared load is detached from
// the first caller's cancellation; every caller still stops waiting when its
// own context ends.
func (h QuoteShipmentQueryHandler) loadCatalog(ctx context.Context) ([]*carrier.Carrier, error) {
	loaded := h.loads.DoChan(catalogSnapshotKey, func() (any, error) {
		return h.catalog.GetAllActive(context.WithoutCancel(ctx))
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-loaded:
		if res.Err != nil {
			return nil, fmt.Errorf("load carrier catalog: %w", res.Err)
		}
		catalog, _ := res.Val.([]*carrier.Carrier)
		return catalog, nil
	}
}
