package commands_test

import (
	"context"
	"testing"
	"time"

	"packing/internal/core/application/usecases/commands"
	"packing/internal/core/domain/model/kernel"
	"packing/internal/core/domain/model/order"
	"packing/internal/core/domain/model/packaging"
	"packing/internal/core/domain/model/shipment"
	"packing/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order, lines []*order.Line) error {
	args := m.Called(ctx, o, lines)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) GetLines(ctx context.Context, orderID kernel.UUID) ([]*order.Line, error) {
	args := m.Called(ctx, orderID)
	lines, _ := args.Get(0).([]*order.Line)
	return lines, args.Error(1)
}

func (m *MockOrderRepository) GetLine(ctx context.Context, lineID kernel.UUID) (*order.Line, error) {
	args := m.Called(ctx, lineID)
	l, _ := args.Get(0).(*order.Line)
	return l, args.Error(1)
}

type MockSessionRepository struct{ mock.Mock }

func (m *MockSessionRepository) Add(ctx context.Context, s *packaging.Session) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockSessionRepository) Update(ctx context.Context, s *packaging.Session) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockSessionRepository) Get(ctx context.Context, id kernel.UUID) (*packaging.Session, error) {
	args := m.Called(ctx, id)
	s, _ := args.Get(0).(*packaging.Session)
	return s, args.Error(1)
}

func (m *MockSessionRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*packaging.Session, error) {
	args := m.Called(ctx, id)
	s, _ := args.Get(0).(*packaging.Session)
	return s, args.Error(1)
}

func (m *MockSessionRepository) GetByCartonForUpdate(
	ctx context.Context,
	cartonID kernel.UUID,
) (*packaging.Session, error) {
	args := m.Called(ctx, cartonID)
	s, _ := args.Get(0).(*packaging.Session)
	return s, args.Error(1)
}

func (m *MockSessionRepository) GetManyForUpdate(
	ctx context.Context,
	ids []kernel.UUID,
) ([]*packaging.Session, error) {
	args := m.Called(ctx, ids)
	s, _ := args.Get(0).([]*packaging.Session)
	return s, args.Error(1)
}

func (m *MockSessionRepository) FindInProgressByOrder(
	ctx context.Context,
	orderID kernel.UUID,
) (*packaging.Session, error) {
	args := m.Called(ctx, orderID)
	s, _ := args.Get(0).(*packaging.Session)
	return s, args.Error(1)
}

func (m *MockSessionRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockSessionRepository) MarkShipped(ctx context.Context, ids []kernel.UUID, shipmentID kernel.UUID) error {
	args := m.Called(ctx, ids, shipmentID)
	return args.Error(0)
}

type MockShipmentRepository struct{ mock.Mock }

func (m *MockShipmentRepository) Add(ctx context.Context, s *shipment.Shipment) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockShipmentRepository) Update(ctx context.Context, s *shipment.Shipment) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockShipmentRepository) Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error) {
	args := m.Called(ctx, id)
	s, _ := args.Get(0).(*shipment.Shipment)
	return s, args.Error(1)
}

func (m *MockShipmentRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error) {
	args := m.Called(ctx, id)
	s, _ := args.Get(0).(*shipment.Shipment)
	return s, args.Error(1)
}

// MockUoW satisfies every unit of work shape used by the handlers.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) SessionRepository() ports.SessionRepository {
	args := m.Called()
	return args.Get(0).(ports.SessionRepository)
}

func (m *MockUoW) ShipmentRepository() ports.ShipmentRepository {
	args := m.Called()
	return args.Get(0).(ports.ShipmentRepository)
}

type MockSessionUoWFactory struct{ uow *MockUoW }

func (f MockSessionUoWFactory) Create() commands.SessionUoW { return f.uow }

type MockPackingUoWFactory struct{ uow *MockUoW }

func (f MockPackingUoWFactory) Create() commands.PackingUoW { return f.uow }

type MockShipmentUoWFactory struct{ uow *MockUoW }

func (f MockShipmentUoWFactory) Create() commands.ShipmentUoW { return f.uow }

type MockInvalidator struct{ mock.Mock }

func (m *MockInvalidator) Invalidate(ctx context.Context) {
	m.Called(ctx)
}

type MockMetrics struct{ mock.Mock }

func (m *MockMetrics) SessionCreated(ctx context.Context, cartons int) { m.Called(ctx, cartons) }
func (m *MockMetrics) SessionCompleted(ctx context.Context)            { m.Called(ctx) }
func (m *MockMetrics) SessionDeleted(ctx context.Context)              { m.Called(ctx) }
func (m *MockMetrics) ItemsPacked(ctx context.Context, quantity int)   { m.Called(ctx, quantity) }
func (m *MockMetrics) CartonSealed(ctx context.Context)                { m.Called(ctx) }
func (m *MockMetrics) ShipmentConsolidated(ctx context.Context, orderType string, cartons int) {
	m.Called(ctx, orderType, cartons)
}

type stubCatalog map[string]ports.BoxPreset

func (c stubCatalog) Preset(boxType string) (ports.BoxPreset, bool) {
	p, ok := c[boxType]
	return p, ok
}

var testNow = time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC)

func newOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), "SO-1001", "ACME", 4, order.Completed)
	require.NoError(t, err)
	return o
}

func newLine(t *testing.T, orderID kernel.UUID, picked int) *order.Line {
	t.Helper()
	l, err := order.NewLine(kernel.NewUUID(), orderID, "SKU-1", "Widget", "4006381333931", picked)
	require.NoError(t, err)
	return l
}

func boxConfig(t *testing.T) packaging.BoxConfig {
	t.Helper()
	cfg, err := packaging.NewBoxConfig("standard", "M", nil)
	require.NoError(t, err)
	return cfg
}

func newSession(t *testing.T, orderID kernel.UUID, boxes int) *packaging.Session {
	t.Helper()
	configs := make([]packaging.BoxConfig, boxes)
	for i := range configs {
		configs[i] = boxConfig(t)
	}
	s, err := packaging.NewSession(kernel.NewUUID(), orderID, packaging.NewSessionToken(testNow),
		"alice", 4, configs, testNow)
	require.NoError(t, err)
	return s
}

func weight(t *testing.T, kg int64) kernel.Weight {
	t.Helper()
	w, err := kernel.NewWeight(decimal.NewFromInt(kg))
	require.NoError(t, err)
	return w
}

// packedSession returns a session whose first carton holds one unit of line.
func packedSession(t *testing.T, line *order.Line, boxes int) *packaging.Session {
	t.Helper()
	s := newSession(t, line.OrderID(), boxes)
	_, err := s.AddItem(s.OpenCarton().ID(), line, 1, "alice", testNow)
	require.NoError(t, err)
	return s
}
