package shipment

import (
	"fmt"

	"packing/internal/pkg/errs"
)

// OrderType tells single-order shipments from multi-order (MSO) ones.
type OrderType int

const (
	UnknownOrderType OrderType = iota
	Single
	Multi
)

var orderTypeNames = map[OrderType]string{
	Single: "single",
	Multi:  "multi",
}

func (t OrderType) Validate() error {
	if _, ok := orderTypeNames[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("order type", fmt.Errorf("%d is not a valid order type", t))
	}
	return nil
}

func (t OrderType) String() string {
	if name, ok := orderTypeNames[t]; ok {
		return name
	}
	return "unknown"
}

func ParseOrderType(name string) (OrderType, error) {
	return parse(orderTypeNames, "order type", name)
}

// Status is the lifecycle state of a shipment record.
type Status int

const (
	UnknownStatus Status = iota
	Draft
	PendingDispatch
	// Dispatched is set by the shipment subsystem, never by consolidation.
	Dispatched
)

var statusNames = map[Status]string{
	Draft:           "draft",
	PendingDispatch: "pending_dispatch",
	Dispatched:      "dispatched",
}

func (s Status) Validate() error {
	if _, ok := statusNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("shipment status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "unknown"
}

// IsConfigurable reports whether the dispatch configuration may still change.
func (s Status) IsConfigurable() bool {
	return s == Draft || s == PendingDispatch
}

func ParseStatus(name string) (Status, error) {
	return parse(statusNames, "shipment status", name)
}

// DispatchType is how the shipment leaves the warehouse.
type DispatchType int

const (
	UnknownDispatchType DispatchType = iota
	Truck
	Courier
)

var dispatchTypeNames = map[DispatchType]string{
	Truck:   "truck",
	Courier: "courier",
}

func (t DispatchType) Validate() error {
	if _, ok := dispatchTypeNames[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("dispatch type", fmt.Errorf("%d is not a valid dispatch type", t))
	}
	return nil
}

func (t DispatchType) String() string {
	if name, ok := dispatchTypeNames[t]; ok {
		return name
	}
	return "unknown"
}

func ParseDispatchType(name string) (DispatchType, error) {
	return parse(dispatchTypeNames, "dispatch type", name)
}

// LoadingStrategy orders cartons onto the vehicle. NonLIFO is the default.
type LoadingStrategy int

const (
	DefaultLoadingStrategy LoadingStrategy = iota
	NonLIFO
	LIFO
)

var loadingStrategyNames = map[LoadingStrategy]string{
	NonLIFO: "non_lifo",
	LIFO:    "lifo",
}

func (s LoadingStrategy) String() string {
	if name, ok := loadingStrategyNames[s]; ok {
		return name
	}
	return "unknown"
}

// OrDefault resolves DefaultLoadingStrategy to NonLIFO.
func (s LoadingStrategy) OrDefault() LoadingStrategy {
	if s == DefaultLoadingStrategy {
		return NonLIFO
	}
	return s
}

func (s LoadingStrategy) Validate() error {
	if _, ok := loadingStrategyNames[s.OrDefault()]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("loading strategy", fmt.Errorf("%d is not a valid strategy", s))
	}
	return nil
}

// ParseLoadingStrategy accepts an empty name as the default strategy.
func ParseLoadingStrategy(name string) (LoadingStrategy, error) {
	if name == "" {
		return NonLIFO, nil
	}
	return parse(loadingStrategyNames, "loading strategy", name)
}

func parse[T comparable](names map[T]string, param, name string) (T, error) {
	for value, n := range names {
		if n == name {
			return value, nil
		}
	}
	var zero T
	return zero, errs.NewValueIsInvalidErrorWithCause(param, fmt.Errorf("%q is not valid", name))
}
