package shipment

import (
	"errors"
	"fmt"
	"strings"

	"packing/internal/core/domain/model/kernel"
	"packing/internal/pkg/errs"
)

// SessionLink ties a consolidated packaging session to its shipment.
type SessionLink struct {
	SessionID    kernel.UUID
	OrderID      kernel.UUID
	OrderNumber  string
	CustomerName string
	CartonCount  int
}

func (l SessionLink) Validate() error {
	var countErr error
	if l.CartonCount < 0 {
		countErr = errs.NewValueIsInvalidErrorWithCause("carton count", fmt.Errorf("%d is negative", l.CartonCount))
	}
	var customerErr error
	if strings.TrimSpace(l.CustomerName) == "" {
		customerErr = errs.NewValueIsRequiredError("customer name")
	}
	return errors.Join(l.SessionID.Validate(), l.OrderID.Validate(), countErr, customerErr)
}

// CartonRef is one sealed carton attributed to the customer of its session.
type CartonRef struct {
	CartonID     kernel.UUID
	SessionID    kernel.UUID
	Barcode      string
	CustomerName string
	IsLoaded     bool
}

func (r CartonRef) Validate() error {
	var barcodeErr error
	if strings.TrimSpace(r.Barcode) == "" {
		barcodeErr = errs.NewValueIsRequiredError("carton barcode")
	}
	return errors.Join(r.CartonID.Validate(), r.SessionID.Validate(), barcodeErr)
}

// TruckDetails are required for truck dispatch.
type TruckDetails struct {
	PlateNumber string
	DriverName  string
	DriverPhone string
}

func (d *TruckDetails) Validate() error {
	if d == nil || strings.TrimSpace(d.PlateNumber) == "" {
		return ErrTruckDetailsAreRequired
	}
	return nil
}

// CourierDetails are required for courier dispatch.
type CourierDetails struct {
	Company        string
	TrackingNumber string
	ContactPhone   string
}

func (d *CourierDetails) Validate() error {
	if d == nil || strings.TrimSpace(d.Company) == "" {
		return ErrCourierDetailsAreRequired
	}
	return nil
}
