package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	httpin "packing/internal/adapters/in/http"
	"packing/internal/adapters/out/cache"
	"packing/internal/adapters/out/catalog"
	"packing/internal/adapters/out/postgres"
	"packing/internal/adapters/out/postgres/orderrepo"
	"packing/internal/adapters/out/postgres/sessionrepo"
	"packing/internal/adapters/out/postgres/shipmentrepo"
	"packing/internal/adapters/out/postgres/testdb"
	"packing/internal/adapters/out/telemetry"
	"packing/internal/core/application/usecases/commands"
	"packing/internal/core/application/usecases/queries"
	"packing/internal/generated/servers"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type (
	sessionUoWFactory  func() commands.SessionUoW
	packingUoWFactory  func() commands.PackingUoW
	shipmentUoWFactory func() commands.ShipmentUoW
)

func (f sessionUoWFactory) Create() commands.SessionUoW   { return f() }
func (f packingUoWFactory) Create() commands.PackingUoW   { return f() }
func (f shipmentUoWFactory) Create() commands.ShipmentUoW { return f() }

func newRouter(t *testing.T, db *gorm.DB) *echo.Echo {
	t.Helper()

	uow := postgres.NewGormUnitOfWorkFactory(db)
	sessions := sessionUoWFactory(func() commands.SessionUoW { return uow.Create() })
	packing := packingUoWFactory(func() commands.PackingUoW { return uow.Create() })
	shipments := shipmentUoWFactory(func() commands.ShipmentUoW { return uow.Create() })

	boxes, err := catalog.Default()
	require.NoError(t, err)
	ledgerCache := cache.NewLedgerViewCache()
	metrics := telemetry.NopMetrics{}

	orderRepo := orderrepo.NewGormOrderRepository(db, testdb.NopTracker{})
	sessionRepo := sessionrepo.NewGormSessionRepository(db, testdb.NopTracker{})
	shipmentRepo := shipmentrepo.NewGormShipmentRepository(db, testdb.NopTracker{})

	server := httpin.NewServer(
		httpin.CommandHandlers{
			CreateSession:       commands.NewCreateSessionCommandHandler(packing, boxes, ledgerCache, metrics),
			CompleteSession:     commands.NewCompleteSessionCommandHandler(sessions, ledgerCache, metrics),
			DeleteSession:       commands.NewDeleteSessionCommandHandler(packing, ledgerCache, metrics),
			RestoreDeletedOrder: commands.NewRestoreDeletedOrderCommandHandler(packing, ledgerCache),
			AddCarton:           commands.NewAddCartonCommandHandler(sessions, boxes, ledgerCache),
			OpenNextCarton:      commands.NewOpenNextCartonCommandHandler(sessions, ledgerCache),
			DeleteCarton:        commands.NewDeleteCartonCommandHandler(sessions, ledgerCache),
			SealCarton:          commands.NewSealCartonCommandHandler(sessions, ledgerCache, metrics),
			ReopenCarton:        commands.NewReopenCartonCommandHandler(sessions, ledgerCache),
			AddItemToCarton:     commands.NewAddItemToCartonCommandHandler(packing, ledgerCache, metrics),
			RemoveItem:          commands.NewRemoveItemFromCartonCommandHandler(sessions, ledgerCache),
			ConsolidateShipment: commands.NewConsolidateShipmentCommandHandler(
				shipments, ledgerCache, metrics, commands.DefaultConsolidationTimeout),
			ConfigureShipment: commands.NewConfigureShipmentCommandHandler(shipments, ledgerCache),
		},
		httpin.QueryHandlers{
			ListIntakeOrders:     queries.NewListIntakeOrdersQueryHandler(db, zap.NewNop()),
			ValidateScan:         queries.NewValidateScanQueryHandler(orderRepo, sessionRepo),
			GetLedgerView:        queries.NewGetLedgerViewQueryHandler(orderRepo, sessionRepo, ledgerCache),
			GetSession:           queries.NewGetSessionQueryHandler(sessionRepo),
			GetAvailableSessions: queries.NewGetAvailableSessionsQueryHandler(db, zap.NewNop()),
			ListShipments:        queries.NewListShipmentsQueryHandler(db, zap.NewNop()),
			GetShipmentDetails:   queries.NewGetShipmentDetailsQueryHandler(shipmentRepo),
		},
	)
	return httpin.NewRouter(server, zap.NewNop())
}

func do(t *testing.T, e *echo.Echo, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func TestServer_PackingFlow(t *testing.T) {
	db := testdb.Open(t)
	e := newRouter(t, db)
	o, lines := testdb.SeedOrder(t, db, "SO-2001", "ACME", 2)
	orderID := o.ID().String()

	// intake lists the order
	rec := do(t, e, http.MethodGet, "/api/v1/orders/intake", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	intake := decode[[]servers.IntakeOrder](t, rec)
	require.Len(t, intake, 1)
	assert.Equal(t, "SO-2001", intake[0].OrderNumber)

	// create a session
	newSession := map[string]any{
		"orderId":  orderID,
		"operator": "alice",
		"boxes":    []map[string]any{{"boxType": "small"}},
	}
	rec = do(t, e, http.MethodPost, "/api/v1/sessions", newSession)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decode[servers.CreatedSession](t, rec)
	require.Len(t, created.CartonIds, 1)
	sessionID := created.SessionId.String()
	cartonID := created.CartonIds[0].String()

	// a second session for the same order conflicts and names the active one
	rec = do(t, e, http.MethodPost, "/api/v1/sessions", newSession)
	require.Equal(t, http.StatusConflict, rec.Code)
	conflict := decode[servers.Error](t, rec)
	assert.Equal(t, servers.Conflict, conflict.Kind)
	require.NotNil(t, conflict.SessionToken)
	assert.Equal(t, created.Token, *conflict.SessionToken)

	// the scanned barcode resolves to the line
	rec = do(t, e, http.MethodGet,
		"/api/v1/orders/"+orderID+"/sessions/"+sessionID+"/scan?barcode="+lines[0].Barcode(), nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	scan := decode[servers.ScanResult](t, rec)
	assert.Equal(t, 2, scan.Remaining)

	itemsPath := "/api/v1/sessions/" + sessionID + "/cartons/" + cartonID + "/items"

	// packing more than picked is rejected
	rec = do(t, e, http.MethodPost, itemsPath, map[string]any{
		"lineId": lines[0].ID().String(), "quantity": 3, "operator": "alice",
	})
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	rejected := decode[servers.Error](t, rec)
	require.NotNil(t, rejected.Reason)
	assert.Equal(t, "quantity_exceeded", *rejected.Reason)

	rec = do(t, e, http.MethodPost, itemsPath, map[string]any{
		"lineId": lines[0].ID().String(), "quantity": 2, "operator": "alice",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	added := decode[servers.AddedItem](t, rec)
	assert.Equal(t, 2, added.PackedInSession)
	assert.Equal(t, 0, added.Remaining)

	// ledger view reflects the packed quantity
	rec = do(t, e, http.MethodGet, "/api/v1/orders/"+orderID+"/sessions/"+sessionID+"/ledger", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	ledger := decode[servers.LedgerView](t, rec)
	assert.Equal(t, 2, ledger.TotalPacked)
	assert.Equal(t, 2, ledger.TotalPicked)

	rec = do(t, e, http.MethodPost, "/api/v1/cartons/"+cartonID+"/seal", map[string]any{
		"actualWeight": "1.25", "operator": "alice",
	})
	require.Equal(t, http.StatusNoContent, rec.Code, rec.Body.String())

	rec = do(t, e, http.MethodPost, "/api/v1/sessions/"+sessionID+"/complete", nil)
	require.Equal(t, http.StatusNoContent, rec.Code, rec.Body.String())

	rec = do(t, e, http.MethodGet, "/api/v1/sessions/"+sessionID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	session := decode[servers.Session](t, rec)
	assert.Equal(t, servers.Completed, session.Status)
	require.Len(t, session.Cartons, 1)
	assert.Equal(t, servers.CartonStatusSealed, session.Cartons[0].Status)
	require.NotNil(t, session.Cartons[0].ActualWeight)
	assert.Equal(t, "1.250", *session.Cartons[0].ActualWeight)

	rec = do(t, e, http.MethodGet, "/api/v1/sessions/available", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	available := decode[[]servers.AvailableSession](t, rec)
	require.Len(t, available, 1)
	assert.Equal(t, 1, available[0].SealedCartons)

	// consolidate and configure
	rec = do(t, e, http.MethodPost, "/api/v1/shipments", map[string]any{
		"orderType": "single", "sessionIds": []string{sessionID},
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	shipment := decode[servers.CreatedShipment](t, rec)
	assert.Equal(t, 1, shipment.TotalCartons)
	assert.Equal(t, "ACME", shipment.Destination)
	shipmentID := shipment.ShipmentId.String()

	rec = do(t, e, http.MethodPut, "/api/v1/multi-shipments/"+shipmentID+"/configuration", map[string]any{
		"dispatchType": "truck", "truck": map[string]any{"plateNumber": "AB-123"},
	})
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	wrongKind := decode[servers.Error](t, rec)
	require.NotNil(t, wrongKind.Reason)
	assert.Equal(t, "wrong_shipment_kind", *wrongKind.Reason)

	rec = do(t, e, http.MethodPut, "/api/v1/shipments/"+shipmentID+"/configuration", map[string]any{
		"dispatchType": "truck", "truck": map[string]any{"plateNumber": "AB-123"},
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "pending_dispatch", decode[servers.ShipmentStatus](t, rec).Status)

	rec = do(t, e, http.MethodGet, "/api/v1/shipments/"+shipmentID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	details := decode[servers.ShipmentDetails](t, rec)
	require.NotNil(t, details.Configuration)
	require.NotNil(t, details.Configuration.Truck)
	assert.Equal(t, "AB-123", details.Configuration.Truck.PlateNumber)
	require.Len(t, details.Cartons, 1)

	rec = do(t, e, http.MethodGet, "/api/v1/shipments?status=pending_dispatch", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]servers.ShipmentSummary](t, rec), 1)

	// a shipped session can no longer be deleted
	rec = do(t, e, http.MethodDelete, "/api/v1/sessions/"+sessionID, nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestServer_RequestValidation(t *testing.T) {
	db := testdb.Open(t)
	e := newRouter(t, db)
	o, _ := testdb.SeedOrder(t, db, "SO-2002", "ACME", 1)

	tests := []struct {
		name   string
		method string
		path   string
		body   any
		status int
		kind   servers.ErrorKind
	}{
		{
			name:   "no boxes",
			method: http.MethodPost,
			path:   "/api/v1/sessions",
			body:   map[string]any{"orderId": o.ID().String(), "operator": "alice", "boxes": []any{}},
			status: http.StatusBadRequest,
			kind:   servers.InvalidInput,
		},
		{
			name:   "missing operator",
			method: http.MethodPost,
			path:   "/api/v1/sessions",
			body:   map[string]any{"orderId": o.ID().String(), "boxes": []map[string]any{{"boxType": "small"}}},
			status: http.StatusBadRequest,
			kind:   servers.InvalidInput,
		},
		{
			name:   "malformed path id",
			method: http.MethodGet,
			path:   "/api/v1/sessions/not-a-uuid",
			status: http.StatusBadRequest,
			kind:   servers.InvalidInput,
		},
		{
			name:   "unknown session",
			method: http.MethodGet,
			path:   "/api/v1/sessions/6f1c2b9e-3b8d-4a55-9a37-0d6f7f5b0c11",
			status: http.StatusNotFound,
			kind:   servers.NotFound,
		},
		{
			name:   "non-numeric weight",
			method: http.MethodPost,
			path:   "/api/v1/cartons/6f1c2b9e-3b8d-4a55-9a37-0d6f7f5b0c11/seal",
			body:   map[string]any{"actualWeight": "heavy", "operator": "alice"},
			status: http.StatusBadRequest,
			kind:   servers.InvalidInput,
		},
		{
			name:   "unknown order type",
			method: http.MethodPost,
			path:   "/api/v1/shipments",
			body:   map[string]any{"orderType": "bulk", "sessionIds": []string{"6f1c2b9e-3b8d-4a55-9a37-0d6f7f5b0c11"}},
			status: http.StatusBadRequest,
			kind:   servers.InvalidInput,
		},
		{
			name:   "unknown route",
			method: http.MethodGet,
			path:   "/api/v1/nothing-here",
			status: http.StatusNotFound,
			kind:   servers.NotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, e, tt.method, tt.path, tt.body)
			require.Equal(t, tt.status, rec.Code, rec.Body.String())
			body := decode[servers.Error](t, rec)
			assert.Equal(t, tt.status, body.Code)
			assert.Equal(t, tt.kind, body.Kind)
		})
	}
}

func TestServer_DeleteAndRestore(t *testing.T) {
	db := testdb.Open(t)
	e := newRouter(t, db)
	o, _ := testdb.SeedOrder(t, db, "SO-2003", "ACME", 1)
	s := testdb.SeedSession(t, db, o, "small")

	rec := do(t, e, http.MethodDelete, "/api/v1/sessions/"+s.ID().String(), nil)
	require.Equal(t, http.StatusNoContent, rec.Code, rec.Body.String())

	rec = do(t, e, http.MethodGet, "/api/v1/orders/intake", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decode[[]servers.IntakeOrder](t, rec))

	rec = do(t, e, http.MethodPost, "/api/v1/orders/"+o.ID().String()+"/restore", nil)
	require.Equal(t, http.StatusNoContent, rec.Code, rec.Body.String())

	rec = do(t, e, http.MethodGet, "/api/v1/orders/intake?search=2003", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]servers.IntakeOrder](t, rec), 1)
}

func TestServer_CartonLifecycle(t *testing.T) {
	db := testdb.Open(t)
	e := newRouter(t, db)
	o, lines := testdb.SeedOrder(t, db, "SO-2004", "ACME", 3)
	s := testdb.SeedSession(t, db, o, "small", "medium")
	first := s.Cartons()[0].ID().String()
	sessionID := s.ID().String()

	// the second carton stays pending while the first is open
	rec := do(t, e, http.MethodPost, "/api/v1/sessions/"+sessionID+"/cartons/next", nil)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = do(t, e, http.MethodPost, "/api/v1/sessions/"+sessionID+"/cartons/"+first+"/items", map[string]any{
		"lineId": lines[0].ID().String(), "quantity": 1, "operator": "bob",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	entryID := decode[servers.AddedItem](t, rec).EntryId.String()

	rec = do(t, e, http.MethodDelete, "/api/v1/cartons/"+first+"/items/"+entryID, nil)
	require.Equal(t, http.StatusNoContent, rec.Code, rec.Body.String())

	// empty cartons cannot be sealed
	rec = do(t, e, http.MethodPost, "/api/v1/cartons/"+first+"/seal", map[string]any{
		"actualWeight": "0.5", "operator": "bob",
	})
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "empty_carton", *decode[servers.Error](t, rec).Reason)

	rec = do(t, e, http.MethodPost, "/api/v1/sessions/"+sessionID+"/cartons/"+first+"/items", map[string]any{
		"lineId": lines[0].ID().String(), "quantity": 1, "operator": "bob",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = do(t, e, http.MethodPost, "/api/v1/cartons/"+first+"/seal", map[string]any{
		"actualWeight": "0.5", "operator": "bob",
	})
	require.Equal(t, http.StatusNoContent, rec.Code, rec.Body.String())

	rec = do(t, e, http.MethodPost, "/api/v1/sessions/"+sessionID+"/cartons/next", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	opened := decode[servers.OpenedCarton](t, rec)
	assert.True(t, opened.Opened)
	require.NotNil(t, opened.BoxNumber)
	assert.Equal(t, 2, *opened.BoxNumber)

	rec = do(t, e, http.MethodPost, "/api/v1/cartons/"+first+"/reopen", nil)
	require.Equal(t, http.StatusNoContent, rec.Code, rec.Body.String())

	rec = do(t, e, http.MethodPost, "/api/v1/sessions/"+sessionID+"/cartons", map[string]any{"boxType": "large"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	carton := decode[servers.CreatedCarton](t, rec)
	assert.Equal(t, 3, carton.BoxNumber)

	rec = do(t, e, http.MethodDelete, "/api/v1/cartons/"+carton.CartonId.String(), nil)
	require.Equal(t, http.StatusNoContent, rec.Code, rec.Body.String())

	rec = do(t, e, http.MethodGet, "/api/v1/sessions/"+sessionID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[servers.Session](t, rec).Cartons, 2)
}

func TestRouter_ServiceEndpoints(t *testing.T) {
	e := newRouter(t, testdb.Open(t))

	rec := do(t, e, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Healthy", rec.Body.String())

	rec = do(t, e, http.MethodGet, "/api/openapi.json", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	doc := decode[map[string]any](t, rec)
	assert.Equal(t, "3.0.3", doc["openapi"])
}
