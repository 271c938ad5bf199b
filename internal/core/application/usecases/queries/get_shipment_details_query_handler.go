package queries

import (
	"context"
)

type GetShipmentDetailsQueryHandler struct {
	shipments ShipmentReader
}

func NewGetShipmentDetailsQueryHandler(shipments ShipmentReader) GetShipmentDetailsQueryHandler {
	return GetShipmentDetailsQueryHandler{shipments: shipments}
}

// Handle fails with ObjectNotFound for an unknown shipment.
func (h GetShipmentDetailsQueryHandler) Handle(
	ctx context.Context,
	query GetShipmentDetailsQuery,
) (GetShipmentDetailsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetShipmentDetailsQueryResponse{}, err
	}

	s, err := h.shipments.Get(ctx, query.ShipmentID())
	if err != nil {
		return GetShipmentDetailsQueryResponse{}, err
	}

	resp := GetShipmentDetailsQueryResponse{
		ID:           s.ID(),
		Number:       s.Number(),
		OrderType:    s.OrderType().String(),
		Status:       s.Status().String(),
		TotalCartons: s.TotalCartons(),
		Destination:  s.Destination(),
		Sessions:     s.Links(),
		Cartons:      s.Cartons(),
		CreatedAt:    s.CreatedAt(),
		UpdatedAt:    s.UpdatedAt(),
	}
	if cfg := s.Configuration(); cfg != nil {
		resp.Configuration = &ConfigurationView{
			DispatchType:    cfg.DispatchType.String(),
			LoadingStrategy: cfg.LoadingStrategy.String(),
			Truck:           cfg.Truck,
			Courier:         cfg.Courier,
			Instructions:    cfg.Instructions,
			DispatchTime:    cfg.DispatchTime,
			ConfiguredAt:    cfg.ConfiguredAt,
		}
	}
	return resp, nil
}
