package commands

import (
	"errors"

	"packing/internal/core/domain/model/kernel"
	"packing/internal/core/domain/model/shipment"
	"packing/internal/pkg/guard"
)

var ErrConfigureShipmentCommandIsNotConstructed = errors.New(
	"ConfigureShipmentCommand must be created via NewConfigureShipmentCommand constructor",
)

type ConfigureShipmentCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID
	multiOnly  bool
	params     shipment.ConfigureParams

	guard guard.ConstructorGuard
}

// NewConfigureShipmentCommand builds the command. multiOnly selects the
// multi-order entry point, which rejects single-order shipments. Dispatch
// details are checked by the shipment itself.
func NewConfigureShipmentCommand(
	shipmentID kernel.UUID,
	multiOnly bool,
	params shipment.ConfigureParams,
) (ConfigureShipmentCommand, error) {
	cmd := ConfigureShipmentCommand{
		multiOnly: multiOnly,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setShipmentID(shipmentID),
		cmd.setParams(params),
	); err != nil {
		return ConfigureShipmentCommand{}, err
	}

	return cmd, nil
}

func (c ConfigureShipmentCommand) Validate() error {
	return c.guard.Validate(ErrConfigureShipmentCommandIsNotConstructed)
}

func (c ConfigureShipmentCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

func (c ConfigureShipmentCommand) MultiOnly() bool {
	return c.multiOnly
}

func (c ConfigureShipmentCommand) Params() shipment.ConfigureParams {
	return c.params
}

func (c *ConfigureShipmentCommand) setShipmentID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.shipmentID = id
	return nil
}

func (c *ConfigureShipmentCommand) setParams(params shipment.ConfigureParams) error {
	if err := params.DispatchType.Validate(); err != nil {
		return err
	}
	if err := params.LoadingStrategy.Validate(); err != nil {
		return err
	}
	c.params = params
	return nil
}
