package queries

import (
	"errors"
	"time"

	"packing/internal/core/domain/model/kernel"
	"packing/internal/core/domain/model/shipment"
	"packing/internal/pkg/guard"
)

var ErrGetShipmentDetailsQueryIsNotConstructed = errors.New(
	"GetShipmentDetailsQuery must be created via NewGetShipmentDetailsQuery constructor",
)

type GetShipmentDetailsQuery struct {
	shipmentID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetShipmentDetailsQuery(shipmentID kernel.UUID) (GetShipmentDetailsQuery, error) {
	if err := shipmentID.Validate(); err != nil {
		return GetShipmentDetailsQuery{}, err
	}
	return GetShipmentDetailsQuery{
		shipmentID: shipmentID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (q GetShipmentDetailsQuery) Validate() error {
	return q.guard.Validate(ErrGetShipmentDetailsQueryIsNotConstructed)
}

func (q GetShipmentDetailsQuery) ShipmentID() kernel.UUID {
	return q.shipmentID
}

// GetShipmentDetailsQueryResponse is a shipment with its session links and
// carton references. Configuration is nil until the shipment is configured.
type GetShipmentDetailsQueryResponse struct {
	ID            kernel.UUID
	Number        string
	OrderType     string
	Status        string
	TotalCartons  int
	Destination   string
	Sessions      []shipment.SessionLink
	Cartons       []shipment.CartonRef
	Configuration *ConfigurationView
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type ConfigurationView struct {
	DispatchType    string
	LoadingStrategy string
	Truck           *shipment.TruckDetails
	Courier         *shipment.CourierDetails
	Instructions    string
	DispatchTime    *time.Time
	ConfiguredAt    time.Time
}
