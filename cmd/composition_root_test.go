package cmd_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"packing/cmd"
	httpin "packing/internal/adapters/in/http"
	"packing/internal/adapters/out/postgres/testdb"
	"packing/internal/adapters/out/telemetry"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testConfig(t *testing.T) cmd.Config {
	t.Helper()

	cfg, err := cmd.LoadConfig("")
	require.NoError(t, err)
	return cfg
}

func TestCompositionRoot_ServesAPI(t *testing.T) {
	db := testdb.Open(t)
	o, _ := testdb.SeedOrder(t, db, "SO-3001", "ACME", 1)

	app, err := cmd.NewCompositionRoot(testConfig(t), db, nil, telemetry.NopMetrics{}, zap.NewNop())
	require.NoError(t, err)
	e := httpin.NewRouter(app.CreateHTTPServer(), zap.NewNop())

	body := `{"orderId":"` + o.ID().String() + `","operator":"alice","boxes":[{"boxType":"medium"}]}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/sessions", bytes.NewBufferString(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	req = httptest.NewRequest(http.MethodGet, "/api/v1/sessions/available", nil)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCompositionRoot_UnreachableRedisDoesNotSlowMutations(t *testing.T) {
	db := testdb.Open(t)
	o, _ := testdb.SeedOrder(t, db, "SO-3002", "ACME", 1)
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", DialTimeout: 50 * time.Millisecond})
	t.Cleanup(func() { _ = client.Close() })

	cfg := testConfig(t)
	app, err := cmd.NewCompositionRoot(cfg, db, client, telemetry.NopMetrics{}, zap.NewNop())
	require.NoError(t, err)
	e := httpin.NewRouter(app.CreateHTTPServer(), zap.NewNop())

	body := `{"orderId":"` + o.ID().String() + `","operator":"alice","boxes":[{"boxType":"small"}]}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/sessions", bytes.NewBufferString(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	app.Close()
}

func TestCompositionRoot_JobManager(t *testing.T) {
	app, err := cmd.NewCompositionRoot(testConfig(t), testdb.Open(t), nil, telemetry.NopMetrics{}, zap.NewNop())
	require.NoError(t, err)

	jobManager := app.CreateJobManager()
	require.NoError(t, jobManager.StartAll())
	jobManager.StopAll()
}

func TestCompositionRoot_MissingCatalog(t *testing.T) {
	cfg := testConfig(t)
	cfg.BoxCatalogPath = filepath.Join(t.TempDir(), "boxes.yaml")

	_, err := cmd.NewCompositionRoot(cfg, testdb.Open(t), nil, telemetry.NopMetrics{}, zap.NewNop())

	assert.ErrorContains(t, err, "box catalog")
}
