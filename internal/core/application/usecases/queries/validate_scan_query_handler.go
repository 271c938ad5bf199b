package queries

import (
	"context"

	"packing/internal/core/domain/services"
)

type ValidateScanQueryHandler struct {
	orders    OrderReader
	sessions  SessionReader
	validator services.ScanValidator
}

func NewValidateScanQueryHandler(orders OrderReader, sessions SessionReader) ValidateScanQueryHandler {
	return ValidateScanQueryHandler{
		orders:    orders,
		sessions:  sessions,
		validator: services.NewScanValidator(),
	}
}

// Handle resolves the barcode against the order's lines. Failures are the
// scan errors of services.ScanValidator, or ErrSessionOrderMismatch when the
// session packs another order.
func (h ValidateScanQueryHandler) Handle(
	ctx context.Context,
	query ValidateScanQuery,
) (ValidateScanQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ValidateScanQueryResponse{}, err
	}

	session, err := loadSessionOfOrder(ctx, h.sessions, query.SessionID(), query.OrderID())
	if err != nil {
		return ValidateScanQueryResponse{}, err
	}
	lines, err := h.orders.GetLines(ctx, query.OrderID())
	if err != nil {
		return ValidateScanQueryResponse{}, err
	}

	result, err := h.validator.Validate(session, lines, query.Barcode())
	if err != nil {
		return ValidateScanQueryResponse{}, err
	}

	return ValidateScanQueryResponse{
		LineID:         result.Line.ID(),
		SKU:            result.Line.SKU(),
		Name:           result.Line.Name(),
		Barcode:        result.Line.Barcode(),
		QuantityPicked: result.Line.QuantityPicked(),
		AlreadyPacked:  result.AlreadyPacked,
		Remaining:      result.Remaining,
	}, nil
}
