package shipment

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"packing/internal/core/domain/model/kernel"
	"packing/internal/pkg/errs"
	"packing/internal/pkg/guard"

	"github.com/google/uuid"
)

// MultipleDestinations is the destination label of multi-order shipments.
const MultipleDestinations = "Multiple destinations"

// Shipment is the aggregate root for an outbound shipment record.
//
// Shipment follows these invariants:
//   - A single shipment links exactly one session, a multi shipment at least two
//   - Linked sessions are distinct and fixed after creation
//   - At least one carton is referenced and totalCartons equals their count
//   - Configuration changes only while the status is draft or pending dispatch
type Shipment struct {
	id            kernel.UUID
	number        string
	orderType     OrderType
	status        Status
	totalCartons  int
	destination   string
	links         []SessionLink
	cartons       []CartonRef
	configuration *Configuration
	createdAt     time.Time
	updatedAt     time.Time
	guard         guard.ConstructorGuard
}

// NewShipmentNumber returns SHP-YYYYMMDD-XXXXXXXX for single shipments and
// MSO-YYYYMMDD-XXXXXXXX for multi shipments.
func NewShipmentNumber(orderType OrderType, now time.Time) string {
	prefix := "SHP"
	if orderType == Multi {
		prefix = "MSO"
	}
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return prefix + "-" + now.UTC().Format("20060102") + "-" + suffix
}

// ValidateSessionCount checks the cardinality of a consolidation request:
// exactly one distinct session for single, at least two for multi.
func ValidateSessionCount(orderType OrderType, sessionIDs []kernel.UUID) error {
	if err := orderType.Validate(); err != nil {
		return err
	}
	if len(sessionIDs) == 0 {
		return ErrSessionsAreRequired
	}

	distinct := make(map[kernel.UUID]struct{}, len(sessionIDs))
	for _, id := range sessionIDs {
		if err := id.Validate(); err != nil {
			return err
		}
		distinct[id] = struct{}{}
	}
	if len(distinct) != len(sessionIDs) {
		return errs.NewValueIsInvalidErrorWithCause("session ids", errors.New("session ids must be distinct"))
	}

	switch orderType {
	case Single:
		if len(sessionIDs) != 1 {
			return errs.NewValueIsOutOfRangeError("session count", len(sessionIDs), 1, 1)
		}
	case Multi:
		if len(sessionIDs) < 2 {
			return errs.NewValueIsOutOfRangeError("session count", len(sessionIDs), 2, "unbounded")
		}
	}
	return nil
}

// NewShipment creates a draft shipment for the given session links and
// sealed carton references.
func NewShipment(
	id kernel.UUID,
	number string,
	orderType OrderType,
	links []SessionLink,
	cartons []CartonRef,
	now time.Time,
) (*Shipment, error) {
	sessionIDs := make([]kernel.UUID, 0, len(links))
	for _, l := range links {
		sessionIDs = append(sessionIDs, l.SessionID)
	}
	if err := ValidateSessionCount(orderType, sessionIDs); err != nil {
		return nil, err
	}
	if len(cartons) == 0 {
		return nil, ErrNoSealedCartons
	}

	destination := MultipleDestinations
	if orderType == Single {
		destination = links[0].CustomerName
	}

	s := &Shipment{
		status:      Draft,
		destination: destination,
		createdAt:   now,
		updatedAt:   now,
		guard:       guard.NewConstructorGuard(),
	}
	if err := errors.Join(
		s.setID(id),
		s.setNumber(number),
		s.setOrderType(orderType),
		s.setLinks(links),
		s.setCartons(cartons),
	); err != nil {
		return nil, err
	}
	return s, nil
}

// ShipmentState is the persisted state of a shipment, used by RestoreShipment.
type ShipmentState struct {
	ID            kernel.UUID
	Number        string
	OrderType     OrderType
	Status        Status
	Destination   string
	Links         []SessionLink
	Cartons       []CartonRef
	Configuration *Configuration
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func RestoreShipment(state ShipmentState) (*Shipment, error) {
	s := &Shipment{
		destination:   state.Destination,
		configuration: state.Configuration,
		createdAt:     state.CreatedAt,
		updatedAt:     state.UpdatedAt,
		guard:         guard.NewConstructorGuard(),
	}
	if err := errors.Join(
		s.setID(state.ID),
		s.setNumber(state.Number),
		s.setOrderType(state.OrderType),
		s.setStatus(state.Status),
		s.setLinks(state.Links),
		s.setCartons(state.Cartons),
	); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Shipment) Validate() error {
	if s == nil {
		return ErrShipmentIsNotConstructed
	}
	return s.guard.Validate(ErrShipmentIsNotConstructed)
}

func (s *Shipment) ID() kernel.UUID {
	return s.id
}

func (s *Shipment) Number() string {
	return s.number
}

func (s *Shipment) OrderType() OrderType {
	return s.orderType
}

func (s *Shipment) Status() Status {
	return s.status
}

// TotalCartons is the number of sealed cartons across all linked sessions.
func (s *Shipment) TotalCartons() int {
	return s.totalCartons
}

// Destination is the customer name for a single shipment and
// MultipleDestinations for a multi one.
func (s *Shipment) Destination() string {
	return s.destination
}

func (s *Shipment) Links() []SessionLink {
	return slices.Clone(s.links)
}

func (s *Shipment) Cartons() []CartonRef {
	return slices.Clone(s.cartons)
}

// Configuration returns the dispatch configuration, or nil before Configure.
func (s *Shipment) Configuration() *Configuration {
	return s.configuration
}

func (s *Shipment) CreatedAt() time.Time {
	return s.createdAt
}

func (s *Shipment) UpdatedAt() time.Time {
	return s.updatedAt
}

// Configure sets the dispatch configuration and moves the shipment to
// pending dispatch. Truck dispatch needs truck details, courier dispatch
// needs courier details.
func (s *Shipment) Configure(params ConfigureParams, at time.Time) error {
	if !s.status.IsConfigurable() {
		return errs.NewPreconditionFailedError(ErrNotConfigurable.Code,
			fmt.Sprintf("shipment %s is %s", s.number, s.status))
	}
	if err := params.validate(); err != nil {
		return err
	}
	s.configuration = params.toConfiguration(at)
	s.status = PendingDispatch
	s.updatedAt = at
	return nil
}

// ConfigureMulti is Configure restricted to multi-order shipments.
func (s *Shipment) ConfigureMulti(params ConfigureParams, at time.Time) error {
	if s.orderType != Multi {
		return ErrWrongShipmentKind
	}
	return s.Configure(params, at)
}

func (s *Shipment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Shipment) setNumber(number string) error {
	number = strings.TrimSpace(number)
	if number == "" {
		return errs.NewValueIsRequiredError("shipment number")
	}
	s.number = number
	return nil
}

func (s *Shipment) setOrderType(orderType OrderType) error {
	if err := orderType.Validate(); err != nil {
		return err
	}
	s.orderType = orderType
	return nil
}

func (s *Shipment) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	s.status = status
	return nil
}

func (s *Shipment) setLinks(links []SessionLink) error {
	if len(links) == 0 {
		return ErrSessionsAreRequired
	}
	for _, l := range links {
		if err := l.Validate(); err != nil {
			return err
		}
	}
	s.links = slices.Clone(links)
	return nil
}

func (s *Shipment) setCartons(cartons []CartonRef) error {
	if len(cartons) == 0 {
		return ErrNoSealedCartons
	}
	for _, c := range cartons {
		if err := c.Validate(); err != nil {
			return err
		}
	}
	s.cartons = slices.Clone(cartons)
	s.totalCartons = len(cartons)
	return nil
}
