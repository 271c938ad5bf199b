package queries

import (
	"errors"
	"strings"

	"packing/internal/core/domain/model/kernel"
	"packing/internal/pkg/errs"
	"packing/internal/pkg/guard"
)

var ErrValidateScanQueryIsNotConstructed = errors.New(
	"ValidateScanQuery must be created via NewValidateScanQuery constructor",
)

// ValidateScanQuery checks whether a scanned barcode can be packed in a
// session of the given order.
type ValidateScanQuery struct {
	orderID   kernel.UUID
	sessionID kernel.UUID
	barcode   string

	guard guard.ConstructorGuard
}

func NewValidateScanQuery(orderID, sessionID kernel.UUID, barcode string) (ValidateScanQuery, error) {
	var barcodeErr error
	barcode = strings.TrimSpace(barcode)
	if barcode == "" {
		barcodeErr = errs.NewValueIsRequiredError("barcode")
	}
	if err := errors.Join(orderID.Validate(), sessionID.Validate(), barcodeErr); err != nil {
		return ValidateScanQuery{}, err
	}

	return ValidateScanQuery{
		orderID:   orderID,
		sessionID: sessionID,
		barcode:   barcode,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (q ValidateScanQuery) Validate() error {
	return q.guard.Validate(ErrValidateScanQueryIsNotConstructed)
}

func (q ValidateScanQuery) OrderID() kernel.UUID {
	return q.orderID
}

func (q ValidateScanQuery) SessionID() kernel.UUID {
	return q.sessionID
}

func (q ValidateScanQuery) Barcode() string {
	return q.barcode
}

// ValidateScanQueryResponse describes the matched line.
type ValidateScanQueryResponse struct {
	LineID         kernel.UUID
	SKU            string
	Name           string
	Barcode        string
	QuantityPicked int
	AlreadyPacked  int
	Remaining      int
}
