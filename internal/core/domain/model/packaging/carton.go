package packaging

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"packing/internal/core/domain/model/kernel"
	"packing/internal/pkg/errs"
)

// Carton is one physical shipping box within a session. Its state changes
// only through the owning Session, which keeps the single-open-carton rule.
type Carton struct {
	id              kernel.UUID
	sessionID       kernel.UUID
	boxNumber       int
	barcode         string
	boxType         string
	boxSize         string
	estimatedWeight *kernel.Weight
	actualWeight    *kernel.Weight
	status          CartonStatus
	sealedAt        *time.Time
	sealedBy        string
	createdAt       time.Time
	entries         []*LedgerEntry
	isConstructed   bool
}

// CartonBarcode is the label printed on box n of the session with the given token.
func CartonBarcode(token string, boxNumber int) string {
	return fmt.Sprintf("%s-B%02d", token, boxNumber)
}

func newCarton(sessionID kernel.UUID, token string, boxNumber int, cfg BoxConfig, status CartonStatus, createdAt time.Time) *Carton {
	estimated, ok := cfg.EstimatedWeight()
	c := &Carton{
		id:            kernel.NewUUID(),
		sessionID:     sessionID,
		boxNumber:     boxNumber,
		barcode:       CartonBarcode(token, boxNumber),
		boxType:       cfg.BoxType(),
		boxSize:       cfg.Size(),
		status:        status,
		createdAt:     createdAt,
		isConstructed: true,
	}
	if ok {
		c.estimatedWeight = &estimated
	}
	return c
}

// CartonState is the persisted state of a carton, used by RestoreCarton.
type CartonState struct {
	ID              kernel.UUID
	SessionID       kernel.UUID
	BoxNumber       int
	Barcode         string
	BoxType         string
	BoxSize         string
	EstimatedWeight *kernel.Weight
	ActualWeight    *kernel.Weight
	Status          CartonStatus
	SealedAt        *time.Time
	SealedBy        string
	CreatedAt       time.Time
	Entries         []*LedgerEntry
}

// RestoreCarton rebuilds a carton and its ledger entries from persistence.
func RestoreCarton(state CartonState) (*Carton, error) {
	var boxNumberErr error
	if state.BoxNumber <= 0 {
		boxNumberErr = errs.NewValueIsInvalidErrorWithCause("box number",
			fmt.Errorf("%d is not greater than 0", state.BoxNumber))
	}
	var barcodeErr error
	if strings.TrimSpace(state.Barcode) == "" {
		barcodeErr = errs.NewValueIsRequiredError("carton barcode")
	}
	entryErrs := make([]error, 0, len(state.Entries))
	for _, entry := range state.Entries {
		if err := entry.Validate(); err != nil {
			entryErrs = append(entryErrs, err)
			continue
		}
		if !entry.CartonID().IsEqual(state.ID) {
			entryErrs = append(entryErrs, errs.NewValueIsInvalidErrorWithCause("ledger entry",
				fmt.Errorf("entry %s belongs to carton %s", entry.ID(), entry.CartonID())))
		}
	}

	if err := errors.Join(
		state.ID.Validate(),
		state.SessionID.Validate(),
		state.Status.Validate(),
		boxNumberErr,
		barcodeErr,
		errors.Join(entryErrs...),
	); err != nil {
		return nil, err
	}

	return &Carton{
		id:              state.ID,
		sessionID:       state.SessionID,
		boxNumber:       state.BoxNumber,
		barcode:         state.Barcode,
		boxType:         state.BoxType,
		boxSize:         state.BoxSize,
		estimatedWeight: state.EstimatedWeight,
		actualWeight:    state.ActualWeight,
		status:          state.Status,
		sealedAt:        state.SealedAt,
		sealedBy:        state.SealedBy,
		createdAt:       state.CreatedAt,
		entries:         slices.Clone(state.Entries),
		isConstructed:   true,
	}, nil
}

func (c *Carton) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCartonIsNotConstructed
	}
	return nil
}

func (c *Carton) ID() kernel.UUID {
	return c.id
}

func (c *Carton) SessionID() kernel.UUID {
	return c.sessionID
}

// BoxNumber is the 1-based position of the carton in its session. Numbers
// are never reused within a session.
func (c *Carton) BoxNumber() int {
	return c.boxNumber
}

func (c *Carton) Barcode() string {
	return c.barcode
}

func (c *Carton) BoxType() string {
	return c.boxType
}

func (c *Carton) BoxSize() string {
	return c.boxSize
}

// EstimatedWeight returns the weight estimated at creation, if any.
func (c *Carton) EstimatedWeight() *kernel.Weight {
	return c.estimatedWeight
}

// ActualWeight returns the weight captured at sealing, if any.
func (c *Carton) ActualWeight() *kernel.Weight {
	return c.actualWeight
}

func (c *Carton) Status() CartonStatus {
	return c.status
}

func (c *Carton) IsOpen() bool {
	return c.status == CartonOpen
}

func (c *Carton) IsSealed() bool {
	return c.status == CartonSealed
}

func (c *Carton) SealedAt() *time.Time {
	return c.sealedAt
}

func (c *Carton) SealedBy() string {
	return c.sealedBy
}

func (c *Carton) CreatedAt() time.Time {
	return c.createdAt
}

// Entries returns a copy of the carton's ledger entries.
func (c *Carton) Entries() []*LedgerEntry {
	return slices.Clone(c.entries)
}

// ItemsCount is the sum of the quantities of the carton's ledger entries.
func (c *Carton) ItemsCount() int {
	total := 0
	for _, e := range c.entries {
		total += e.quantity
	}
	return total
}

// QuantityOf returns how many units of lineID the carton holds.
func (c *Carton) QuantityOf(lineID kernel.UUID) int {
	if e := c.entryForLine(lineID); e != nil {
		return e.quantity
	}
	return 0
}

func (c *Carton) entryForLine(lineID kernel.UUID) *LedgerEntry {
	for _, e := range c.entries {
		if e.lineID.IsEqual(lineID) {
			return e
		}
	}
	return nil
}

func (c *Carton) addItem(lineID kernel.UUID, quantity int, operator string, at time.Time) *LedgerEntry {
	if e := c.entryForLine(lineID); e != nil {
		e.merge(quantity, operator, at)
		return e
	}
	e := &LedgerEntry{
		id:            kernel.NewUUID(),
		cartonID:      c.id,
		lineID:        lineID,
		quantity:      quantity,
		operator:      operator,
		addedAt:       at,
		isConstructed: true,
	}
	c.entries = append(c.entries, e)
	return e
}

func (c *Carton) removeEntry(entryID kernel.UUID) error {
	idx := slices.IndexFunc(c.entries, func(e *LedgerEntry) bool { return e.id.IsEqual(entryID) })
	if idx < 0 {
		return errs.NewObjectNotFoundError("ledger entry", entryID.String())
	}
	c.entries = slices.Delete(c.entries, idx, idx+1)
	return nil
}

func (c *Carton) seal(weight kernel.Weight, operator string, at time.Time) error {
	if c.status != CartonOpen {
		return ErrCartonNotOpen
	}
	if c.ItemsCount() == 0 {
		return ErrEmptyCarton
	}
	c.status = CartonSealed
	c.actualWeight = &weight
	c.sealedBy = operator
	c.sealedAt = &at
	return nil
}

// forceSeal closes the carton without touching weight or seal metadata.
func (c *Carton) forceSeal() {
	c.status = CartonSealed
}

func (c *Carton) open() {
	c.status = CartonOpen
}

func (c *Carton) reopen() {
	c.status = CartonOpen
	c.actualWeight = nil
	c.sealedAt = nil
	c.sealedBy = ""
}
