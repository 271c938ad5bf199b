package order

import (
	"errors"
	"fmt"
	"strings"

	"packing/internal/core/domain/model/kernel"
	"packing/internal/pkg/errs"
)

var ErrLineIsNotConstructed = errors.New("Line must be created via NewLine constructor")

// Line is a picked order line (a picklist item). It is read-only here:
// quantityPicked is the ceiling for what one packaging session may place
// into its cartons.
type Line struct {
	id             kernel.UUID
	orderID        kernel.UUID
	sku            string
	name           string
	barcode        string
	quantityPicked int
	isConstructed  bool
}

func NewLine(id, orderID kernel.UUID, sku, name, barcode string, quantityPicked int) (*Line, error) {
	line := &Line{
		name:          strings.TrimSpace(name),
		barcode:       strings.TrimSpace(barcode),
		isConstructed: true,
	}

	if err := errors.Join(
		line.setID(id),
		line.setOrderID(orderID),
		line.setSKU(sku),
		line.setQuantityPicked(quantityPicked),
	); err != nil {
		return nil, err
	}

	return line, nil
}

func (l *Line) Validate() error {
	if l == nil || !l.isConstructed {
		return ErrLineIsNotConstructed
	}
	return nil
}

func (l *Line) ID() kernel.UUID {
	return l.id
}

func (l *Line) OrderID() kernel.UUID {
	return l.orderID
}

func (l *Line) SKU() string {
	return l.sku
}

func (l *Line) Name() string {
	return l.name
}

func (l *Line) Barcode() string {
	return l.barcode
}

// NormalizedBarcode is the barcode in the form scans are compared against.
func (l *Line) NormalizedBarcode() string {
	return kernel.NormalizeBarcode(l.barcode)
}

func (l *Line) QuantityPicked() int {
	return l.quantityPicked
}

// IsPicked reports whether at least one unit of the line has been picked.
func (l *Line) IsPicked() bool {
	return l.quantityPicked > 0
}

func (l *Line) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.id = id
	return nil
}

func (l *Line) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	l.orderID = orderID
	return nil
}

func (l *Line) setSKU(sku string) error {
	sku = strings.TrimSpace(sku)
	if sku == "" {
		return errs.NewValueIsRequiredError("sku")
	}
	l.sku = sku
	return nil
}

func (l *Line) setQuantityPicked(quantity int) error {
	if quantity < 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity picked", fmt.Errorf("%d is negative", quantity))
	}
	l.quantityPicked = quantity
	return nil
}
