package packaging

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"packing/internal/core/domain/model/kernel"
	"packing/internal/pkg/errs"
)

// LedgerEntry records how many units of one order line were placed into one
// carton. A carton holds at most one entry per line: repeated scans add to
// the existing entry.
type LedgerEntry struct {
	id            kernel.UUID
	cartonID      kernel.UUID
	lineID        kernel.UUID
	quantity      int
	operator      string
	addedAt       time.Time
	isConstructed bool
}

// RestoreLedgerEntry rebuilds an entry from persistence.
func RestoreLedgerEntry(
	id, cartonID, lineID kernel.UUID,
	quantity int,
	operator string,
	addedAt time.Time,
) (*LedgerEntry, error) {
	var quantityErr error
	if quantity <= 0 {
		quantityErr = errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	var operatorErr error
	if strings.TrimSpace(operator) == "" {
		operatorErr = ErrOperatorIsRequired
	}

	if err := errors.Join(
		id.Validate(),
		cartonID.Validate(),
		lineID.Validate(),
		quantityErr,
		operatorErr,
	); err != nil {
		return nil, err
	}

	return &LedgerEntry{
		id:            id,
		cartonID:      cartonID,
		lineID:        lineID,
		quantity:      quantity,
		operator:      strings.TrimSpace(operator),
		addedAt:       addedAt,
		isConstructed: true,
	}, nil
}

func (e *LedgerEntry) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrLedgerEntryIsNotConstructed
	}
	return nil
}

func (e *LedgerEntry) ID() kernel.UUID {
	return e.id
}

func (e *LedgerEntry) CartonID() kernel.UUID {
	return e.cartonID
}

func (e *LedgerEntry) LineID() kernel.UUID {
	return e.lineID
}

func (e *LedgerEntry) Quantity() int {
	return e.quantity
}

// Operator is the operator of the most recent scan merged into the entry.
func (e *LedgerEntry) Operator() string {
	return e.operator
}

// AddedAt is the time of the most recent scan merged into the entry.
func (e *LedgerEntry) AddedAt() time.Time {
	return e.addedAt
}

func (e *LedgerEntry) merge(quantity int, operator string, at time.Time) {
	e.quantity += quantity
	e.operator = operator
	e.addedAt = at
}
