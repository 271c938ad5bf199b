package commands

import (
	"errors"
	"slices"

	"packing/internal/core/domain/model/kernel"
	"packing/internal/core/domain/model/shipment"
	"packing/internal/pkg/guard"
)

var ErrConsolidateShipmentCommandIsNotConstructed = errors.New(
	"ConsolidateShipmentCommand must be created via NewConsolidateShipmentCommand constructor",
)

type ConsolidateShipmentCommand struct { //nolint:recvcheck //using for validation
	orderType  shipment.OrderType
	sessionIDs []kernel.UUID

	guard guard.ConstructorGuard
}

// NewConsolidateShipmentCommand checks the session count for the order type:
// exactly one distinct id for single, two or more for multi.
func NewConsolidateShipmentCommand(
	orderType shipment.OrderType,
	sessionIDs []kernel.UUID,
) (ConsolidateShipmentCommand, error) {
	cmd := ConsolidateShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setSessions(orderType, sessionIDs); err != nil {
		return ConsolidateShipmentCommand{}, err
	}

	return cmd, nil
}

func (c ConsolidateShipmentCommand) Validate() error {
	return c.guard.Validate(ErrConsolidateShipmentCommandIsNotConstructed)
}

func (c ConsolidateShipmentCommand) OrderType() shipment.OrderType {
	return c.orderType
}

func (c ConsolidateShipmentCommand) SessionIDs() []kernel.UUID {
	return slices.Clone(c.sessionIDs)
}

func (c *ConsolidateShipmentCommand) setSessions(orderType shipment.OrderType, sessionIDs []kernel.UUID) error {
	if err := orderType.Validate(); err != nil {
		return err
	}
	for _, id := range sessionIDs {
		if err := id.Validate(); err != nil {
			return err
		}
	}
	if err := shipment.ValidateSessionCount(orderType, sessionIDs); err != nil {
		return err
	}
	c.orderType = orderType
	c.sessionIDs = slices.Clone(sessionIDs)
	return nil
}
