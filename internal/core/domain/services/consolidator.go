package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"packing/internal/core/domain/model/kernel"
	"packing/internal/core/domain/model/order"
	"packing/internal/core/domain/model/packaging"
	"packing/internal/core/domain/model/shipment"
	"packing/internal/pkg/errs"
)

// SessionWithOrder pairs a session with the order it packs, which supplies
// the customer name and order number for shipment links.
type SessionWithOrder struct {
	Session *packaging.Session
	Order   *order.Order
}

// Consolidator turns sealed cartons of completed sessions into one shipment.
type Consolidator struct{}

func NewConsolidator() Consolidator {
	return Consolidator{}
}

// Consolidate builds a draft shipment from the requested sessions and marks
// every session as shipped. found holds the sessions that could be loaded
// for requested; any missing one fails the whole call.
//
// Checks, in order:
//   - cardinality of requested (one for single, two or more for multi)
//   - every requested session was found (ErrIncompleteSessionSet)
//   - no session was consolidated before (ErrAlreadyShipped naming each one)
//   - every session is completed
//   - at least one sealed carton overall (ErrNoSealedCartons)
//
// Nothing is changed unless every check passes.
func (c Consolidator) Consolidate(
	shipmentID kernel.UUID,
	orderType shipment.OrderType,
	requested []kernel.UUID,
	found []SessionWithOrder,
	now time.Time,
) (*shipment.Shipment, error) {
	if err := shipment.ValidateSessionCount(orderType, requested); err != nil {
		return nil, err
	}
	if err := c.validateFound(requested, found); err != nil {
		return nil, err
	}
	if err := c.validateNotShipped(found); err != nil {
		return nil, err
	}
	for _, item := range found {
		if err := item.Session.ValidateCanConsolidate(); err != nil {
			return nil, err
		}
	}

	links := make([]shipment.SessionLink, 0, len(found))
	var cartons []shipment.CartonRef
	for _, item := range found {
		sealed := item.Session.SealedCartons()
		links = append(links, shipment.SessionLink{
			SessionID:    item.Session.ID(),
			OrderID:      item.Order.ID(),
			OrderNumber:  item.Order.Number(),
			CustomerName: item.Order.CustomerName(),
			CartonCount:  len(sealed),
		})
		for _, carton := range sealed {
			cartons = append(cartons, shipment.CartonRef{
				CartonID:     carton.ID(),
				SessionID:    item.Session.ID(),
				Barcode:      carton.Barcode(),
				CustomerName: item.Order.CustomerName(),
			})
		}
	}
	if len(cartons) == 0 {
		return nil, shipment.ErrNoSealedCartons
	}

	created, err := shipment.NewShipment(shipmentID, shipment.NewShipmentNumber(orderType, now),
		orderType, links, cartons, now)
	if err != nil {
		return nil, err
	}

	for _, item := range found {
		if err := item.Session.MarkShipped(created.ID()); err != nil {
			return nil, err
		}
	}
	return created, nil
}

func (c Consolidator) validateFound(requested []kernel.UUID, found []SessionWithOrder) error {
	byID := make(map[kernel.UUID]SessionWithOrder, len(found))
	for _, item := range found {
		if err := errors.Join(item.Session.Validate(), item.Order.Validate()); err != nil {
			return err
		}
		if !item.Order.ID().IsEqual(item.Session.OrderID()) {
			return errs.NewValueIsInvalidErrorWithCause("session order",
				fmt.Errorf("session %s does not pack order %s", item.Session.Token(), item.Order.Number()))
		}
		byID[item.Session.ID()] = item
	}

	var missing []string
	for _, id := range requested {
		if _, ok := byID[id]; !ok {
			missing = append(missing, id.String())
		}
	}
	if len(missing) > 0 || len(byID) != len(requested) {
		return errs.NewPreconditionFailedError(shipment.ErrIncompleteSessionSet.Code,
			fmt.Sprintf("requested %d sessions, found %d; missing: %s",
				len(requested), len(byID), strings.Join(missing, ", ")))
	}
	return nil
}

func (c Consolidator) validateNotShipped(found []SessionWithOrder) error {
	var shipped []string
	for _, item := range found {
		if item.Session.ShipmentCreated() {
			shipped = append(shipped, item.Session.Token())
		}
	}
	if len(shipped) > 0 {
		return errs.NewConflictError(packaging.ErrAlreadyShipped.Code,
			"sessions already consolidated into a shipment: "+strings.Join(shipped, ", "))
	}
	return nil
}
