package packaging

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"packing/internal/core/domain/model/kernel"
	"packing/internal/core/domain/model/order"
	"packing/internal/pkg/errs"
	"packing/internal/pkg/guard"
)

// cartonCreationStep separates the creation timestamps of consecutive cartons
// so that ordering by time matches ordering by box number.
const cartonCreationStep = time.Millisecond

// Session is the aggregate root for one packaging run of one order.
//
// Session follows these invariants:
//   - For every order line, the packed quantity summed over the session's
//     cartons never exceeds the line's picked quantity
//   - At most one carton is open
//   - Box numbers strictly increase with creation order and are never reused
//   - The declared carton count equals the number of cartons
//   - Once consolidated into a shipment the session is read-only
//
// Example usage:
//
//	box, _ := NewBoxConfig("standard", "M", nil)
//	session, err := NewSession(kernel.NewUUID(), orderID, NewSessionToken(now), "alice", 5,
//	    []BoxConfig{box, box}, now)
//	entry, err := session.AddItem(session.OpenCarton().ID(), line, 3, "alice", now)
type Session struct {
	id              kernel.UUID
	orderID         kernel.UUID
	token           string
	operator        string
	status          SessionStatus
	totalItems      int
	totalCartons    int
	lastBoxNumber   int
	startedAt       time.Time
	completedAt     *time.Time
	shipmentCreated bool
	shipmentID      *kernel.UUID
	cartons         []*Carton
	guard           guard.ConstructorGuard
}

// NewSession starts a packaging session with one carton per box
// configuration. The first carton is open, the rest are pending, and each
// carton's creation time follows the previous one.
func NewSession(
	id, orderID kernel.UUID,
	token, operator string,
	totalItems int,
	boxes []BoxConfig,
	startedAt time.Time,
) (*Session, error) {
	session := &Session{
		status:    SessionInProgress,
		startedAt: startedAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		session.setID(id),
		session.setOrderID(orderID),
		session.setToken(token),
		session.setOperator(operator),
		session.setTotalItems(totalItems),
		validateBoxes(boxes),
	); err != nil {
		return nil, err
	}

	for i, cfg := range boxes {
		status := CartonPending
		if i == 0 {
			status = CartonOpen
		}
		session.lastBoxNumber++
		createdAt := startedAt.Add(time.Duration(i) * cartonCreationStep)
		session.cartons = append(session.cartons,
			newCarton(session.id, session.token, session.lastBoxNumber, cfg, status, createdAt))
	}
	session.totalCartons = len(session.cartons)

	return session, nil
}

// SessionState is the persisted state of a session, used by RestoreSession.
type SessionState struct {
	ID              kernel.UUID
	OrderID         kernel.UUID
	Token           string
	Operator        string
	Status          SessionStatus
	TotalItems      int
	TotalCartons    int
	LastBoxNumber   int
	StartedAt       time.Time
	CompletedAt     *time.Time
	ShipmentCreated bool
	ShipmentID      *kernel.UUID
	Cartons         []*Carton
}

// RestoreSession rebuilds a session and its cartons from persistence.
// Cartons are ordered by box number. State holding more than one open
// carton is rejected.
func RestoreSession(state SessionState) (*Session, error) {
	session := &Session{
		totalCartons:    state.TotalCartons,
		lastBoxNumber:   state.LastBoxNumber,
		startedAt:       state.StartedAt,
		completedAt:     state.CompletedAt,
		shipmentCreated: state.ShipmentCreated,
		shipmentID:      state.ShipmentID,
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		session.setID(state.ID),
		session.setOrderID(state.OrderID),
		session.setToken(state.Token),
		session.setOperator(state.Operator),
		session.setTotalItems(state.TotalItems),
		session.setStatus(state.Status),
		session.setCartons(state.Cartons),
	); err != nil {
		return nil, err
	}

	return session, nil
}

func (s *Session) Validate() error {
	if s == nil {
		return ErrSessionIsNotConstructed
	}
	return s.guard.Validate(ErrSessionIsNotConstructed)
}

func (s *Session) ID() kernel.UUID {
	return s.id
}

func (s *Session) OrderID() kernel.UUID {
	return s.orderID
}

// Token is the human-facing session identifier, for example PKG-20240102-1A2B3C4D.
func (s *Session) Token() string {
	return s.token
}

func (s *Session) Operator() string {
	return s.operator
}

func (s *Session) Status() SessionStatus {
	return s.status
}

// TotalItems is the item count declared when the session started.
func (s *Session) TotalItems() int {
	return s.totalItems
}

// TotalCartons is the declared carton count, kept equal to the number of cartons.
func (s *Session) TotalCartons() int {
	return s.totalCartons
}

// LastBoxNumber is the highest box number ever issued in the session.
func (s *Session) LastBoxNumber() int {
	return s.lastBoxNumber
}

func (s *Session) StartedAt() time.Time {
	return s.startedAt
}

func (s *Session) CompletedAt() *time.Time {
	return s.completedAt
}

func (s *Session) ShipmentCreated() bool {
	return s.shipmentCreated
}

func (s *Session) ShipmentID() *kernel.UUID {
	return s.shipmentID
}

// Cartons returns a copy of the cartons ordered by box number.
func (s *Session) Cartons() []*Carton {
	return slices.Clone(s.cartons)
}

// SealedCartons returns the sealed cartons ordered by box number.
func (s *Session) SealedCartons() []*Carton {
	sealed := make([]*Carton, 0, len(s.cartons))
	for _, c := range s.cartons {
		if c.IsSealed() {
			sealed = append(sealed, c)
		}
	}
	return sealed
}

// Carton finds a carton of this session by id.
func (s *Session) Carton(id kernel.UUID) (*Carton, error) {
	for _, c := range s.cartons {
		if c.id.IsEqual(id) {
			return c, nil
		}
	}
	return nil, cartonNotFound(id)
}

// OpenCarton returns the open carton, or nil when none is open.
func (s *Session) OpenCarton() *Carton {
	for _, c := range s.cartons {
		if c.IsOpen() {
			return c
		}
	}
	return nil
}

// PackedQuantity sums the units of lineID across this session's cartons only.
func (s *Session) PackedQuantity(lineID kernel.UUID) int {
	total := 0
	for _, c := range s.cartons {
		total += c.QuantityOf(lineID)
	}
	return total
}

// ItemsPacked sums every ledger quantity in the session.
func (s *Session) ItemsPacked() int {
	total := 0
	for _, c := range s.cartons {
		total += c.ItemsCount()
	}
	return total
}

// Remaining is how many more units of line this session may still pack.
func (s *Session) Remaining(line *order.Line) int {
	return line.QuantityPicked() - s.PackedQuantity(line.ID())
}

// AddItem places quantity units of line into the carton. The remaining
// quantity is derived from the session's own ledger, so a stale client
// cannot overpack. A second scan of the same line into the same carton
// merges into the existing entry.
//
// Returns the resulting ledger entry, or:
//   - ErrAlreadyShipped if the session was consolidated
//   - an InvalidInput error if quantity is not positive
//   - ErrItemNotInOrder if the line belongs to another order
//   - ObjectNotFound if the carton is not part of the session
//   - ErrCartonNotOpen if the carton is pending or sealed
//   - ErrQuantityExceeded if quantity is more than what remains
func (s *Session) AddItem(
	cartonID kernel.UUID,
	line *order.Line,
	quantity int,
	operator string,
	at time.Time,
) (*LedgerEntry, error) {
	if err := s.ensureMutable(); err != nil {
		return nil, err
	}
	if quantity <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	operator = strings.TrimSpace(operator)
	if operator == "" {
		return nil, ErrOperatorIsRequired
	}
	if err := line.Validate(); err != nil {
		return nil, err
	}
	if !line.OrderID().IsEqual(s.orderID) {
		return nil, ErrItemNotInOrder
	}

	carton, err := s.Carton(cartonID)
	if err != nil {
		return nil, err
	}
	if !carton.IsOpen() {
		return nil, ErrCartonNotOpen
	}

	if remaining := s.Remaining(line); quantity > remaining {
		return nil, quantityExceeded(quantity, max(remaining, 0))
	}

	return carton.addItem(line.ID(), quantity, operator, at), nil
}

// RemoveItem deletes a ledger entry from a carton that is not sealed.
// No quantity check is needed since removal only lowers the packed total.
func (s *Session) RemoveItem(cartonID, entryID kernel.UUID) error {
	if err := s.ensureMutable(); err != nil {
		return err
	}
	carton, err := s.Carton(cartonID)
	if err != nil {
		return err
	}
	if carton.IsSealed() {
		return ErrCartonSealed
	}
	return carton.removeEntry(entryID)
}

// SealCarton closes the open carton, capturing its actual weight and the
// sealing operator. Empty cartons cannot be sealed and a sealed carton
// cannot be sealed again.
func (s *Session) SealCarton(cartonID kernel.UUID, actualWeight kernel.Weight, operator string, at time.Time) error {
	if err := s.ensureMutable(); err != nil {
		return err
	}
	if err := actualWeight.Validate(); err != nil {
		return err
	}
	operator = strings.TrimSpace(operator)
	if operator == "" {
		return ErrOperatorIsRequired
	}
	carton, err := s.Carton(cartonID)
	if err != nil {
		return err
	}
	return carton.seal(actualWeight, operator, at)
}

// OpenNextCarton opens the pending carton with the lowest box number.
// When no pending carton is left it returns (nil, false, nil). It never seals
// anything: if a carton is still open it fails with ErrAnotherCartonOpen.
func (s *Session) OpenNextCarton() (*Carton, bool, error) {
	if err := s.ensureMutable(); err != nil {
		return nil, false, err
	}
	if s.OpenCarton() != nil {
		return nil, false, ErrAnotherCartonOpen
	}
	for _, c := range s.cartons {
		if c.status == CartonPending {
			c.open()
			return c, true, nil
		}
	}
	return nil, false, nil
}

// ReopenCarton makes a sealed carton the open one again. Any other open
// carton is sealed by status only, and the target's weight and seal
// metadata are cleared. Reopening the open carton changes nothing.
func (s *Session) ReopenCarton(cartonID kernel.UUID) error {
	if err := s.ensureMutable(); err != nil {
		return err
	}
	target, err := s.Carton(cartonID)
	if err != nil {
		return err
	}
	switch target.status {
	case CartonOpen:
		return nil
	case CartonSealed:
	default:
		return ErrCartonNotSealed
	}

	for _, c := range s.cartons {
		if c != target && c.IsOpen() {
			c.forceSeal()
		}
	}
	target.reopen()
	return nil
}

// DeleteCarton removes a carton with its ledger entries and recomputes the
// declared carton count. The box number is not reused.
func (s *Session) DeleteCarton(cartonID kernel.UUID) (*Carton, error) {
	if err := s.ensureMutable(); err != nil {
		return nil, err
	}
	idx := slices.IndexFunc(s.cartons, func(c *Carton) bool { return c.id.IsEqual(cartonID) })
	if idx < 0 {
		return nil, cartonNotFound(cartonID)
	}
	removed := s.cartons[idx]
	s.cartons = slices.Delete(s.cartons, idx, idx+1)
	s.totalCartons = len(s.cartons)
	return removed, nil
}

// AddCarton appends a carton numbered after the last issued box number. It
// is opened right away when the session has neither an open nor a pending
// carton, otherwise it waits as pending.
func (s *Session) AddCarton(cfg BoxConfig, at time.Time) (*Carton, error) {
	if err := s.ensureMutable(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	status := CartonOpen
	for _, c := range s.cartons {
		if c.status == CartonOpen || c.status == CartonPending {
			status = CartonPending
			break
		}
	}

	createdAt := at
	if n := len(s.cartons); n > 0 {
		if next := s.cartons[n-1].createdAt.Add(cartonCreationStep); createdAt.Before(next) {
			createdAt = next
		}
	}

	s.lastBoxNumber++
	carton := newCarton(s.id, s.token, s.lastBoxNumber, cfg, status, createdAt)
	s.cartons = append(s.cartons, carton)
	s.totalCartons = len(s.cartons)
	return carton, nil
}

// Complete marks the session completed. It does not require every carton
// to be sealed or every line to be packed: completion is the operator's call.
func (s *Session) Complete(at time.Time) error {
	if err := s.ensureMutable(); err != nil {
		return err
	}
	if s.status != SessionInProgress {
		return ErrSessionNotInProgress
	}
	s.status = SessionCompleted
	s.completedAt = &at
	return nil
}

// ValidateCanConsolidate checks that the session is completed and was not
// consolidated before.
func (s *Session) ValidateCanConsolidate() error {
	if s.shipmentCreated {
		return alreadyShipped(s.token)
	}
	if s.status != SessionCompleted {
		return errs.NewPreconditionFailedError(ErrSessionNotCompleted.Code,
			fmt.Sprintf("session %s is not completed", s.token))
	}
	return nil
}

// MarkShipped links the session to the shipment it was consolidated into.
// A session can be marked only once.
func (s *Session) MarkShipped(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}
	if err := s.ValidateCanConsolidate(); err != nil {
		return err
	}
	s.shipmentCreated = true
	s.shipmentID = &shipmentID
	return nil
}

// ValidateDeletable rejects deleting a session that was consolidated.
func (s *Session) ValidateDeletable() error {
	return s.ensureMutable()
}

func (s *Session) ensureMutable() error {
	if s.shipmentCreated {
		return alreadyShipped(s.token)
	}
	return nil
}

func (s *Session) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Session) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	s.orderID = orderID
	return nil
}

func (s *Session) setToken(token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return errs.NewValueIsRequiredError("session token")
	}
	s.token = token
	return nil
}

func (s *Session) setOperator(operator string) error {
	operator = strings.TrimSpace(operator)
	if operator == "" {
		return ErrOperatorIsRequired
	}
	s.operator = operator
	return nil
}

func (s *Session) setTotalItems(totalItems int) error {
	if totalItems < 0 {
		return errs.NewValueIsInvalidErrorWithCause("total items", fmt.Errorf("%d is negative", totalItems))
	}
	s.totalItems = totalItems
	return nil
}

func (s *Session) setStatus(status SessionStatus) error {
	if err := status.Validate(); err != nil {
		return err
	}
	s.status = status
	return nil
}

func (s *Session) setCartons(cartons []*Carton) error {
	open := 0
	for _, c := range cartons {
		if err := c.Validate(); err != nil {
			return err
		}
		if !c.sessionID.IsEqual(s.id) {
			return errs.NewValueIsInvalidErrorWithCause("cartons",
				fmt.Errorf("carton %s belongs to session %s", c.id, c.sessionID))
		}
		if c.IsOpen() {
			open++
		}
		s.lastBoxNumber = max(s.lastBoxNumber, c.boxNumber)
	}
	if open > 1 {
		return errs.NewValueIsInvalidErrorWithCause("cartons", fmt.Errorf("%d cartons are open", open))
	}
	s.cartons = slices.Clone(cartons)
	slices.SortFunc(s.cartons, func(a, b *Carton) int { return cmp.Compare(a.boxNumber, b.boxNumber) })
	return nil
}

func validateBoxes(boxes []BoxConfig) error {
	if len(boxes) == 0 {
		return ErrBoxesAreRequired
	}
	for _, b := range boxes {
		if err := b.Validate(); err != nil {
			return err
		}
	}
	return nil
}
