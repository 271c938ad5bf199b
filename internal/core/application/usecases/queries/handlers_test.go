package queries_test

import (
	"context"
	"testing"
	"time"

	"packing/internal/adapters/out/cache"
	"packing/internal/adapters/out/postgres"
	"packing/internal/adapters/out/postgres/orderrepo"
	"packing/internal/adapters/out/postgres/sessionrepo"
	"packing/internal/adapters/out/postgres/shipmentrepo"
	"packing/internal/adapters/out/postgres/testdb"
	"packing/internal/core/application/usecases/queries"
	"packing/internal/core/domain/model/kernel"
	"packing/internal/core/domain/model/order"
	"packing/internal/core/domain/model/packaging"
	"packing/internal/core/domain/model/shipment"
	"packing/internal/core/ports"
	"packing/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type stubLedgerCache struct {
	views map[ports.LedgerViewKey]ports.LedgerView
	hits  int
}

func newStubLedgerCache() *stubLedgerCache {
	return &stubLedgerCache{views: make(map[ports.LedgerViewKey]ports.LedgerView)}
}

func (c *stubLedgerCache) Get(key ports.LedgerViewKey) (ports.LedgerView, bool) {
	view, ok := c.views[key]
	if ok {
		c.hits++
	}
	return view, ok
}

func (c *stubLedgerCache) Generation() uint64 {
	return 0
}

func (c *stubLedgerCache) SetIfGeneration(key ports.LedgerViewKey, view ports.LedgerView, _ uint64) bool {
	c.views[key] = view
	return true
}

// linesHook runs onLines once, before delegating GetLines, so a test can
// commit a mutation while a ledger view is being built.
type linesHook struct {
	queries.OrderReader
	onLines func()
}

func (r *linesHook) GetLines(ctx context.Context, orderID kernel.UUID) ([]*order.Line, error) {
	if r.onLines != nil {
		hook := r.onLines
		r.onLines = nil
		hook()
	}
	return r.OrderReader.GetLines(ctx, orderID)
}

func (c *stubLedgerCache) Clear() {
	clear(c.views)
}

func repos(db *gorm.DB) (*orderrepo.GormOrderRepository, *sessionrepo.GormSessionRepository) {
	return orderrepo.NewGormOrderRepository(db, testdb.NopTracker{}),
		sessionrepo.NewGormSessionRepository(db, testdb.NopTracker{})
}

func TestValidateScanQueryHandler(t *testing.T) {
	ctx := context.Background()
	db := testdb.Open(t)
	orders, sessions := repos(db)
	o, lines := testdb.SeedOrder(t, db, "SO-1001", "ACME", 2, 0)
	s := testdb.SeedSession(t, db, o, "small")
	_, err := s.AddItem(s.Cartons()[0].ID(), lines[0], 1, "operator-1", testdb.Now())
	require.NoError(t, err)
	require.NoError(t, sessions.Update(ctx, s))

	handler := queries.NewValidateScanQueryHandler(orders, sessions)

	t.Run("exact match", func(t *testing.T) {
		q, err := queries.NewValidateScanQuery(o.ID(), s.ID(), lines[0].Barcode())
		require.NoError(t, err)
		resp, err := handler.Handle(ctx, q)
		require.NoError(t, err)
		assert.True(t, resp.LineID.IsEqual(lines[0].ID()))
		assert.Equal(t, 1, resp.AlreadyPacked)
		assert.Equal(t, 1, resp.Remaining)
	})

	t.Run("not yet picked", func(t *testing.T) {
		q, err := queries.NewValidateScanQuery(o.ID(), s.ID(), lines[1].Barcode())
		require.NoError(t, err)
		_, err = handler.Handle(ctx, q)
		require.ErrorIs(t, err, packaging.ErrNotYetPicked)
	})

	t.Run("unknown barcode", func(t *testing.T) {
		q, err := queries.NewValidateScanQuery(o.ID(), s.ID(), "999")
		require.NoError(t, err)
		_, err = handler.Handle(ctx, q)
		require.ErrorIs(t, err, packaging.ErrItemNotInOrder)
	})

	t.Run("session of another order", func(t *testing.T) {
		other, _ := testdb.SeedOrder(t, db, "SO-1002", "Globex", 1)
		q, err := queries.NewValidateScanQuery(other.ID(), s.ID(), lines[0].Barcode())
		require.NoError(t, err)
		_, err = handler.Handle(ctx, q)
		require.ErrorIs(t, err, queries.ErrSessionOrderMismatch)
	})
}

func TestGetLedgerViewQueryHandler_ServesFromCache(t *testing.T) {
	ctx := context.Background()
	db := testdb.Open(t)
	orders, sessions := repos(db)
	o, lines := testdb.SeedOrder(t, db, "SO-1001", "ACME", 3, 2)
	s := testdb.SeedSession(t, db, o, "small", "large")
	_, err := s.AddItem(s.Cartons()[0].ID(), lines[0], 3, "operator-1", testdb.Now())
	require.NoError(t, err)
	require.NoError(t, sessions.Update(ctx, s))

	stub := newStubLedgerCache()
	handler := queries.NewGetLedgerViewQueryHandler(orders, sessions, stub)
	q, err := queries.NewGetLedgerViewQuery(o.ID(), s.ID())
	require.NoError(t, err)

	view, err := handler.Handle(ctx, q)
	require.NoError(t, err)
	assert.Equal(t, s.Token(), view.SessionToken)
	assert.Equal(t, 5, view.TotalPicked)
	assert.Equal(t, 3, view.TotalPacked)
	assert.Equal(t, 2, view.TotalCartons)
	assert.Zero(t, view.SealedCount)
	require.Len(t, view.Lines, 2)
	assert.Equal(t, 0, view.Lines[0].Remaining)
	assert.Equal(t, 2, view.Lines[1].Remaining)
	assert.Zero(t, stub.hits)

	again, err := handler.Handle(ctx, q)
	require.NoError(t, err)
	assert.Equal(t, view, again)
	assert.Equal(t, 1, stub.hits)
}

func TestGetLedgerViewQueryHandler_InvalidationDuringLoad(t *testing.T) {
	ctx := context.Background()
	db := testdb.Open(t)
	orders, sessions := repos(db)
	o, lines := testdb.SeedOrder(t, db, "SO-1001", "ACME", 5)
	s := testdb.SeedSession(t, db, o, "small")

	views := cache.NewLedgerViewCache()
	reader := &linesHook{
		OrderReader: orders,
		onLines: func() {
			current, err := sessions.Get(ctx, s.ID())
			require.NoError(t, err)
			_, err = current.AddItem(current.Cartons()[0].ID(), lines[0], 3, "operator-1", testdb.Now())
			require.NoError(t, err)
			require.NoError(t, sessions.Update(ctx, current))
			views.Invalidate(ctx)
		},
	}
	handler := queries.NewGetLedgerViewQueryHandler(reader, sessions, views)
	q, err := queries.NewGetLedgerViewQuery(o.ID(), s.ID())
	require.NoError(t, err)

	stale, err := handler.Handle(ctx, q)
	require.NoError(t, err)
	assert.Zero(t, stale.TotalPacked)
	assert.Zero(t, views.Len(), "a view built before the invalidation is not cached")

	fresh, err := handler.Handle(ctx, q)
	require.NoError(t, err)
	assert.Equal(t, 3, fresh.TotalPacked)
	require.Len(t, fresh.Lines, 1)
	assert.Equal(t, 2, fresh.Lines[0].Remaining)
	assert.Equal(t, 1, views.Len())
}

func TestGetSessionQueryHandler(t *testing.T) {
	ctx := context.Background()
	db := testdb.Open(t)
	_, sessions := repos(db)
	o, lines := testdb.SeedOrder(t, db, "SO-1001", "ACME", 2)
	s := testdb.SeedSession(t, db, o, "small", "large")
	_, err := s.AddItem(s.Cartons()[0].ID(), lines[0], 2, "operator-1", testdb.Now())
	require.NoError(t, err)
	require.NoError(t, sessions.Update(ctx, s))

	q, err := queries.NewGetSessionQuery(s.ID())
	require.NoError(t, err)
	resp, err := queries.NewGetSessionQueryHandler(sessions).Handle(ctx, q)
	require.NoError(t, err)

	assert.Equal(t, "in_progress", resp.Status)
	assert.Equal(t, 2, resp.ItemsPacked)
	require.Len(t, resp.Cartons, 2)
	assert.Equal(t, "open", resp.Cartons[0].Status)
	assert.Equal(t, "pending", resp.Cartons[1].Status)
	require.Len(t, resp.Cartons[0].Entries, 1)
	assert.Equal(t, 2, resp.Cartons[0].Entries[0].Quantity)

	missing, err := queries.NewGetSessionQuery(kernel.NewUUID())
	require.NoError(t, err)
	_, err = queries.NewGetSessionQueryHandler(sessions).Handle(ctx, missing)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestListIntakeOrdersQueryHandler(t *testing.T) {
	ctx := context.Background()
	db := testdb.Open(t)
	orders, sessions := repos(db)

	eligible, _ := testdb.SeedOrder(t, db, "SO-1001", "ACME", 1)
	inProgress, _ := testdb.SeedOrder(t, db, "SO-1002", "ACME", 1)
	testdb.SeedSession(t, db, inProgress, "small")
	completed, _ := testdb.SeedOrder(t, db, "SO-1003", "Globex", 1)
	done := testdb.SeedSession(t, db, completed, "small")
	require.NoError(t, done.Complete(testdb.Now()))
	require.NoError(t, sessions.Update(ctx, done))
	deleted, _ := testdb.SeedOrder(t, db, "SO-1004", "Initech", 1)
	deleted.MarkPackagingDeleted()
	require.NoError(t, orders.Update(ctx, deleted))
	other, _ := testdb.SeedOrder(t, db, "SO-1005", "Globex", 1)

	handler := queries.NewListIntakeOrdersQueryHandler(db, zap.NewNop())

	all, err := queries.NewListIntakeOrdersQuery("", 0)
	require.NoError(t, err)
	result, err := handler.Handle(ctx, all)
	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.True(t, result[0].ID.IsEqual(eligible.ID()))
	assert.True(t, result[1].ID.IsEqual(other.ID()))

	search, err := queries.NewListIntakeOrdersQuery("GLOB", 0)
	require.NoError(t, err)
	result, err = handler.Handle(ctx, search)
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "SO-1005", result[0].OrderNumber)
}

func TestListIntakeOrdersQueryHandler_DeletedSessionDoesNotReappear(t *testing.T) {
	ctx := context.Background()
	db := testdb.Open(t)
	orders, sessions := repos(db)
	o, _ := testdb.SeedOrder(t, db, "SO-1001", "ACME", 1)
	s := testdb.SeedSession(t, db, o, "small")

	require.NoError(t, sessions.Delete(ctx, s.ID()))
	o.MarkPackagingDeleted()
	require.NoError(t, orders.Update(ctx, o))

	q, err := queries.NewListIntakeOrdersQuery("", 0)
	require.NoError(t, err)
	result, err := queries.NewListIntakeOrdersQueryHandler(db, zap.NewNop()).Handle(ctx, q)
	require.NoError(t, err)
	assert.Empty(t, result)
}

func TestGetAvailableSessionsQueryHandler(t *testing.T) {
	ctx := context.Background()
	db := testdb.Open(t)
	_, sessions := repos(db)

	first, lines := testdb.SeedOrder(t, db, "SO-1001", "ACME", 1)
	ready := testdb.SeedSession(t, db, first, "small", "small")
	_, err := ready.AddItem(ready.Cartons()[0].ID(), lines[0], 1, "operator-1", testdb.Now())
	require.NoError(t, err)
	weight, err := kernel.WeightFromString("1.000")
	require.NoError(t, err)
	require.NoError(t, ready.SealCarton(ready.Cartons()[0].ID(), weight, "operator-1", testdb.Now()))
	require.NoError(t, ready.Complete(testdb.Now().Add(time.Minute)))
	require.NoError(t, sessions.Update(ctx, ready))

	second, _ := testdb.SeedOrder(t, db, "SO-1002", "Globex", 1)
	shipped := testdb.SeedSession(t, db, second, "small")
	require.NoError(t, shipped.Complete(testdb.Now()))
	require.NoError(t, sessions.Update(ctx, shipped))
	require.NoError(t, sessions.MarkShipped(ctx, []kernel.UUID{shipped.ID()}, kernel.NewUUID()))

	third, _ := testdb.SeedOrder(t, db, "SO-1003", "Initech", 1)
	testdb.SeedSession(t, db, third, "small")

	handler := queries.NewGetAvailableSessionsQueryHandler(db, zap.NewNop())
	result, err := handler.Handle(ctx, queries.NewGetAvailableSessionsQuery())
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.True(t, result[0].SessionID.IsEqual(ready.ID()))
	assert.Equal(t, "SO-1001", result[0].OrderNumber)
	assert.Equal(t, "ACME", result[0].CustomerName)
	assert.Equal(t, 2, result[0].TotalCartons)
	assert.Equal(t, 1, result[0].SealedCartons)
	require.NotNil(t, result[0].CompletedAt)
	assert.True(t, result[0].CompletedAt.Equal(testdb.Now().Add(time.Minute)))
}

func seedShipment(t *testing.T, db *gorm.DB, customer string, createdAt time.Time) *shipment.Shipment {
	t.Helper()

	link := shipment.SessionLink{
		SessionID: kernel.NewUUID(), OrderID: kernel.NewUUID(),
		OrderNumber: "SO-" + customer, CustomerName: customer, CartonCount: 1,
	}
	ref := shipment.CartonRef{
		CartonID: kernel.NewUUID(), SessionID: link.SessionID,
		Barcode: "PKG-" + customer + "-B01", CustomerName: customer,
	}
	s, err := shipment.NewShipment(kernel.NewUUID(), shipment.NewShipmentNumber(shipment.Single, createdAt),
		shipment.Single, []shipment.SessionLink{link}, []shipment.CartonRef{ref}, createdAt)
	require.NoError(t, err)
	require.NoError(t, shipmentrepo.NewGormShipmentRepository(db, testdb.NopTracker{}).Add(context.Background(), s))
	return s
}

func TestListShipmentsQueryHandler(t *testing.T) {
	ctx := context.Background()
	db := testdb.Open(t)
	older := seedShipment(t, db, "ACME", testdb.Now())
	newer := seedShipment(t, db, "Globex", testdb.Now().Add(time.Hour))

	repo := shipmentrepo.NewGormShipmentRepository(db, testdb.NopTracker{})
	require.NoError(t, older.Configure(shipment.ConfigureParams{
		DispatchType: shipment.Courier,
		Courier:      &shipment.CourierDetails{Company: "FastShip"},
	}, testdb.Now().Add(2*time.Hour)))
	require.NoError(t, repo.Update(ctx, older))

	handler := queries.NewListShipmentsQueryHandler(db, zap.NewNop())

	all, err := queries.NewListShipmentsQuery("", 0)
	require.NoError(t, err)
	result, err := handler.Handle(ctx, all)
	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.True(t, result[0].ID.IsEqual(newer.ID()))
	assert.Equal(t, "Globex", result[0].Destination)
	assert.Equal(t, "single", result[0].OrderType)

	pending, err := queries.NewListShipmentsQuery("pending_dispatch", 0)
	require.NoError(t, err)
	result, err = handler.Handle(ctx, pending)
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.True(t, result[0].ID.IsEqual(older.ID()))
}

func TestGetShipmentDetailsQueryHandler(t *testing.T) {
	ctx := context.Background()
	db := testdb.Open(t)
	s := seedShipment(t, db, "ACME", testdb.Now())
	handler := queries.NewGetShipmentDetailsQueryHandler(shipmentrepo.NewGormShipmentRepository(db, testdb.NopTracker{}))

	q, err := queries.NewGetShipmentDetailsQuery(s.ID())
	require.NoError(t, err)
	resp, err := handler.Handle(ctx, q)
	require.NoError(t, err)
	assert.Equal(t, s.Number(), resp.Number)
	assert.Equal(t, "draft", resp.Status)
	assert.Equal(t, "ACME", resp.Destination)
	assert.Len(t, resp.Sessions, 1)
	assert.Len(t, resp.Cartons, 1)
	assert.Nil(t, resp.Configuration)

	missing, err := queries.NewGetShipmentDetailsQuery(kernel.NewUUID())
	require.NoError(t, err)
	_, err = handler.Handle(ctx, missing)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestListings_DegradeToEmptyOnStoreFailure(t *testing.T) {
	ctx := context.Background()
	db := testdb.Open(t)
	testdb.SeedOrder(t, db, "SO-1001", "ACME", 1)
	require.NoError(t, postgres.Close(db))

	intake, err := queries.NewListIntakeOrdersQuery("", 0)
	require.NoError(t, err)
	orders, err := queries.NewListIntakeOrdersQueryHandler(db, zap.NewNop()).Handle(ctx, intake)
	require.NoError(t, err)
	assert.Empty(t, orders)

	sessions, err := queries.NewGetAvailableSessionsQueryHandler(db, zap.NewNop()).
		Handle(ctx, queries.NewGetAvailableSessionsQuery())
	require.NoError(t, err)
	assert.Empty(t, sessions)

	list, err := queries.NewListShipmentsQuery("", 0)
	require.NoError(t, err)
	shipments, err := queries.NewListShipmentsQueryHandler(db, zap.NewNop()).Handle(ctx, list)
	require.NoError(t, err)
	assert.Empty(t, shipments)
}
