package order

import (
	"errors"
	"fmt"
	"strings"

	"packing/internal/core/domain/model/kernel"
	"packing/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

	// ErrNotDeleted is returned when restoring an order whose packaging was never deleted.
	ErrNotDeleted = errs.NewPreconditionFailedError("not_deleted", "order packaging is not deleted")

	// ErrPackagingDeleted is returned when starting packaging on an order that was
	// removed from the intake queue by a session deletion.
	ErrPackagingDeleted = errs.NewPreconditionFailedError(
		"order_packaging_deleted", "order packaging was deleted, restore the order first",
	)
)

// Order is the packing service's view of a customer order owned by the
// upstream order subsystem.
//
// Order follows these invariants:
//   - Must have a valid unique identifier, order number and customer name
//   - Total item count is never negative
//   - The packaging-deleted flag only changes through MarkPackagingDeleted
//     and RestorePackaging
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// number is the human-facing order number
	number string

	// customerName is shown on shipment links and carton attributions
	customerName string

	// totalItems is the item count declared by the order subsystem
	totalItems int

	// status is the upstream order_status value
	status Status

	// packagingDeleted keeps the order out of intake until explicitly restored
	packagingDeleted bool

	isConstructed bool
}

// NewOrder creates an order as received from the order subsystem, with the
// packaging-deleted flag cleared.
func NewOrder(id kernel.UUID, number, customerName string, totalItems int, status Status) (*Order, error) {
	return RestoreOrder(id, number, customerName, totalItems, status, false)
}

// RestoreOrder rebuilds an order from persistence, including its
// packaging-deleted flag.
func RestoreOrder(
	id kernel.UUID,
	number, customerName string,
	totalItems int,
	status Status,
	packagingDeleted bool,
) (*Order, error) {
	order := &Order{
		packagingDeleted: packagingDeleted,
		isConstructed:    true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setNumber(number),
		order.setCustomerName(customerName),
		order.setTotalItems(totalItems),
		order.setStatus(status),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the Order was created through one of its constructors.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Number returns the human-facing order number.
func (o *Order) Number() string {
	return o.number
}

// CustomerName returns the customer the order ships to.
func (o *Order) CustomerName() string {
	return o.customerName
}

// TotalItems returns the item count declared by the order subsystem.
func (o *Order) TotalItems() int {
	return o.totalItems
}

// Status returns the upstream order status.
func (o *Order) Status() Status {
	return o.status
}

// IsPackagingDeleted reports whether a deleted session removed the order from intake.
func (o *Order) IsPackagingDeleted() bool {
	return o.packagingDeleted
}

// ValidateCanStartPackaging rejects orders whose packaging was deleted.
func (o *Order) ValidateCanStartPackaging() error {
	if o.packagingDeleted {
		return ErrPackagingDeleted
	}
	return nil
}

// MarkPackagingDeleted removes the order from the intake queue until it is
// restored. Marking twice is harmless.
func (o *Order) MarkPackagingDeleted() {
	o.packagingDeleted = true
}

// RestorePackaging returns the order to the intake queue.
// Returns ErrNotDeleted if the flag is not set. It does not bring back any
// deleted session or carton.
func (o *Order) RestorePackaging() error {
	if !o.packagingDeleted {
		return ErrNotDeleted
	}
	o.packagingDeleted = false
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setNumber(number string) error {
	number = strings.TrimSpace(number)
	if number == "" {
		return errs.NewValueIsRequiredError("order number")
	}
	o.number = number
	return nil
}

func (o *Order) setCustomerName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("customer name")
	}
	o.customerName = name
	return nil
}

func (o *Order) setTotalItems(totalItems int) error {
	if totalItems < 0 {
		return errs.NewValueIsInvalidErrorWithCause("total items", fmt.Errorf("%d is negative", totalItems))
	}
	o.totalItems = totalItems
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}
