package shipment

import (
	"errors"

	"packing/internal/pkg/errs"
)

var (
	ErrShipmentIsNotConstructed = errors.New("Shipment must be created via NewShipment or RestoreShipment constructor")

	ErrNoSealedCartons = errs.NewPreconditionFailedError(
		"no_sealed_cartons", "the selected sessions have no sealed cartons")
	ErrIncompleteSessionSet = errs.NewPreconditionFailedError(
		"incomplete_session_set", "not every requested session was found")
	ErrWrongShipmentKind = errs.NewPreconditionFailedError(
		"wrong_shipment_kind", "operation applies to multi-order shipments only")
	ErrNotConfigurable = errs.NewPreconditionFailedError(
		"shipment_not_configurable", "shipment can be configured only in draft or pending dispatch")

	ErrSessionsAreRequired       = errs.NewValueIsRequiredError("session ids")
	ErrTruckDetailsAreRequired   = errs.NewValueIsRequiredError("truck details")
	ErrCourierDetailsAreRequired = errs.NewValueIsRequiredError("courier details")
)
