package services

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"packing/internal/core/domain/model/kernel"
	"packing/internal/core/domain/model/order"
	"packing/internal/core/domain/model/packaging"
	"packing/internal/pkg/errs"
)

// ScanResult is a successful scan: the matched line, how many units this
// session already packed and how many may still be packed.
type ScanResult struct {
	Line          *order.Line
	AlreadyPacked int
	Remaining     int
}

// ScanValidator checks a scanned barcode against the order's lines and the
// session's own ledger.
type ScanValidator struct{}

func NewScanValidator() ScanValidator {
	return ScanValidator{}
}

// Validate resolves barcode to a line of the session's order and checks it
// can still be packed in this session.
//
// Matching normalizes both sides (trim, width fold, upper case). An exact
// match wins; otherwise the first line, in SKU order, whose barcode contains
// the scan or is contained in it is used. Lines without a barcode never
// match.
//
// Returns ErrItemNotInOrder, ErrNotYetPicked or ErrFullyPackedInSession when
// the scan cannot be packed.
func (v ScanValidator) Validate(session *packaging.Session, lines []*order.Line, barcode string) (ScanResult, error) {
	if err := session.Validate(); err != nil {
		return ScanResult{}, err
	}
	scanned := strings.TrimSpace(barcode)
	if scanned == "" {
		return ScanResult{}, errs.NewValueIsRequiredError("barcode")
	}

	line := v.match(session, lines, scanned)
	if line == nil {
		return ScanResult{}, errs.NewPreconditionFailedError(packaging.ErrItemNotInOrder.Code,
			fmt.Sprintf("barcode %s does not match any item of the order", scanned))
	}
	if !line.IsPicked() {
		return ScanResult{}, errs.NewPreconditionFailedError(packaging.ErrNotYetPicked.Code,
			fmt.Sprintf("item %s has not been picked yet", line.SKU()))
	}

	packed := session.PackedQuantity(line.ID())
	remaining := line.QuantityPicked() - packed
	if remaining <= 0 {
		return ScanResult{}, errs.NewPreconditionFailedError(packaging.ErrFullyPackedInSession.Code,
			fmt.Sprintf("item %s is fully packed in this session (%d of %d)", line.SKU(), packed, line.QuantityPicked()))
	}

	return ScanResult{Line: line, AlreadyPacked: packed, Remaining: remaining}, nil
}

func (v ScanValidator) match(session *packaging.Session, lines []*order.Line, scanned string) *order.Line {
	normalized := kernel.NormalizeBarcode(scanned)

	candidates := make([]*order.Line, 0, len(lines))
	for _, l := range lines {
		if l.Validate() != nil || !l.OrderID().IsEqual(session.OrderID()) || l.NormalizedBarcode() == "" {
			continue
		}
		candidates = append(candidates, l)
	}
	slices.SortStableFunc(candidates, func(a, b *order.Line) int { return cmp.Compare(a.SKU(), b.SKU()) })

	for _, l := range candidates {
		if l.NormalizedBarcode() == normalized {
			return l
		}
	}
	for _, l := range candidates {
		if strings.Contains(l.NormalizedBarcode(), normalized) || strings.Contains(normalized, l.NormalizedBarcode()) {
			return l
		}
	}
	return nil
}
