package http

import (
	"packing/internal/core/application/usecases/queries"
	"packing/internal/core/domain/model/kernel"
	"packing/internal/core/domain/model/packaging"
	"packing/internal/core/domain/model/shipment"
	"packing/internal/generated/servers"
	"packing/internal/pkg/errs"

	"github.com/google/uuid"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

func toKernelUUID(param string, id openapi_types.UUID) (kernel.UUID, error) {
	if id == uuid.Nil {
		return kernel.UUID{}, errs.NewValueIsRequiredError(param)
	}
	return kernel.UUIDFromBytes(id[:])
}

func toBoxConfig(b servers.BoxConfig) (packaging.BoxConfig, error) {
	var weight *kernel.Weight
	if b.EstimatedWeight != nil && *b.EstimatedWeight != "" {
		w, err := kernel.WeightFromString(*b.EstimatedWeight)
		if err != nil {
			return packaging.BoxConfig{}, err
		}
		weight = &w
	}
	return packaging.NewBoxConfig(b.BoxType, deref(b.Size), weight)
}

func toConfigureParams(c servers.ShipmentConfiguration) (shipment.ConfigureParams, error) {
	dispatchType, err := shipment.ParseDispatchType(string(c.DispatchType))
	if err != nil {
		return shipment.ConfigureParams{}, err
	}
	params := shipment.ConfigureParams{
		DispatchType: dispatchType,
		Instructions: deref(c.Instructions),
		DispatchTime: c.DispatchTime,
	}
	if c.LoadingStrategy != nil {
		if params.LoadingStrategy, err = shipment.ParseLoadingStrategy(string(*c.LoadingStrategy)); err != nil {
			return shipment.ConfigureParams{}, err
		}
	}
	if c.Truck != nil {
		params.Truck = &shipment.TruckDetails{
			PlateNumber: c.Truck.PlateNumber,
			DriverName:  deref(c.Truck.DriverName),
			DriverPhone: deref(c.Truck.DriverPhone),
		}
	}
	if c.Courier != nil {
		params.Courier = &shipment.CourierDetails{
			Company:        c.Courier.Company,
			TrackingNumber: deref(c.Courier.TrackingNumber),
			ContactPhone:   deref(c.Courier.ContactPhone),
		}
	}
	return params, nil
}

func toSessionResponse(s queries.GetSessionQueryResponse) servers.Session {
	response := servers.Session{
		Id:              s.ID.Bytes(),
		Token:           s.Token,
		OrderId:         s.OrderID.Bytes(),
		Operator:        s.Operator,
		Status:          servers.SessionStatus(s.Status),
		TotalItems:      s.TotalItems,
		TotalCartons:    s.TotalCartons,
		ItemsPacked:     s.ItemsPacked,
		StartedAt:       s.StartedAt,
		CompletedAt:     s.CompletedAt,
		ShipmentCreated: s.ShipmentCreated,
		Cartons:         make([]servers.Carton, len(s.Cartons)),
	}
	if s.ShipmentID != nil {
		shipmentID := openapi_types.UUID(s.ShipmentID.Bytes())
		response.ShipmentId = &shipmentID
	}

	for i, c := range s.Cartons {
		carton := servers.Carton{
			Id:              c.ID.Bytes(),
			BoxNumber:       c.BoxNumber,
			Barcode:         c.Barcode,
			BoxType:         c.BoxType,
			BoxSize:         optional(c.BoxSize),
			EstimatedWeight: optional(c.EstimatedWeight),
			ActualWeight:    optional(c.ActualWeight),
			Status:          servers.CartonStatus(c.Status),
			ItemsCount:      c.ItemsCount,
			SealedAt:        c.SealedAt,
			SealedBy:        optional(c.SealedBy),
			CreatedAt:       c.CreatedAt,
			Entries:         make([]servers.LedgerEntry, len(c.Entries)),
		}
		for j, e := range c.Entries {
			carton.Entries[j] = servers.LedgerEntry{
				Id:       e.ID.Bytes(),
				LineId:   e.LineID.Bytes(),
				Quantity: e.Quantity,
				Operator: e.Operator,
				AddedAt:  e.AddedAt,
			}
		}
		response.Cartons[i] = carton
	}
	return response
}

func toShipmentDetailsResponse(d queries.GetShipmentDetailsQueryResponse) servers.ShipmentDetails {
	response := servers.ShipmentDetails{
		Id:           d.ID.Bytes(),
		Number:       d.Number,
		OrderType:    d.OrderType,
		Status:       d.Status,
		TotalCartons: d.TotalCartons,
		Destination:  d.Destination,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
		Sessions:     make([]servers.SessionLink, len(d.Sessions)),
		Cartons:      make([]servers.CartonRef, len(d.Cartons)),
	}
	for i, l := range d.Sessions {
		response.Sessions[i] = servers.SessionLink{
			SessionId:    l.SessionID.Bytes(),
			OrderId:      l.OrderID.Bytes(),
			OrderNumber:  l.OrderNumber,
			CustomerName: l.CustomerName,
			CartonCount:  l.CartonCount,
		}
	}
	for i, r := range d.Cartons {
		response.Cartons[i] = servers.CartonRef{
			CartonId:     r.CartonID.Bytes(),
			SessionId:    r.SessionID.Bytes(),
			Barcode:      r.Barcode,
			CustomerName: r.CustomerName,
			IsLoaded:     r.IsLoaded,
		}
	}

	if c := d.Configuration; c != nil {
		loading := servers.ShipmentConfigurationLoadingStrategy(c.LoadingStrategy)
		configuredAt := c.ConfiguredAt
		config := &servers.ShipmentConfiguration{
			DispatchType:    servers.ShipmentConfigurationDispatchType(c.DispatchType),
			LoadingStrategy: &loading,
			Instructions:    optional(c.Instructions),
			DispatchTime:    c.DispatchTime,
			ConfiguredAt:    &configuredAt,
		}
		if c.Truck != nil {
			config.Truck = &servers.TruckDetails{
				PlateNumber: c.Truck.PlateNumber,
				DriverName:  optional(c.Truck.DriverName),
				DriverPhone: optional(c.Truck.DriverPhone),
			}
		}
		if c.Courier != nil {
			config.Courier = &servers.CourierDetails{
				Company:        c.Courier.Company,
				TrackingNumber: optional(c.Courier.TrackingNumber),
				ContactPhone:   optional(c.Courier.ContactPhone),
			}
		}
		response.Configuration = config
	}
	return response
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
