package shipment

import (
	"strings"
	"time"
)

// Configuration is the dispatch setup of a shipment.
type Configuration struct {
	DispatchType    DispatchType
	LoadingStrategy LoadingStrategy
	Truck           *TruckDetails
	Courier         *CourierDetails
	Instructions    string
	DispatchTime    *time.Time
	ConfiguredAt    time.Time
}

// ConfigureParams are the operator's choices for Configure. A zero
// LoadingStrategy means the default (non-LIFO).
type ConfigureParams struct {
	DispatchType    DispatchType
	LoadingStrategy LoadingStrategy
	Truck           *TruckDetails
	Courier         *CourierDetails
	Instructions    string
	DispatchTime    *time.Time
}

func (p ConfigureParams) validate() error {
	if err := p.DispatchType.Validate(); err != nil {
		return err
	}
	if err := p.LoadingStrategy.Validate(); err != nil {
		return err
	}
	switch p.DispatchType {
	case Truck:
		return p.Truck.Validate()
	case Courier:
		return p.Courier.Validate()
	default:
		return nil
	}
}

func (p ConfigureParams) toConfiguration(at time.Time) *Configuration {
	cfg := &Configuration{
		DispatchType:    p.DispatchType,
		LoadingStrategy: p.LoadingStrategy.OrDefault(),
		Instructions:    strings.TrimSpace(p.Instructions),
		DispatchTime:    p.DispatchTime,
		ConfiguredAt:    at,
	}
	// Only the details matching the dispatch type are kept.
	if p.DispatchType == Truck {
		truck := *p.Truck
		cfg.Truck = &truck
	} else {
		courier := *p.Courier
		cfg.Courier = &courier
	}
	return cfg
}
