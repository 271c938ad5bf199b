package cmd_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"packing/cmd"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := cmd.LoadConfig(filepath.Join(t.TempDir(), "missing.env"))

	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, "packing", cfg.DBName)
	assert.Equal(t, 30*time.Second, cfg.LedgerCacheTTL)
	assert.Equal(t, 1024, cfg.LedgerCacheMaxEntries)
	assert.Equal(t, 10*time.Second, cfg.ConsolidationTimeout)
	assert.Empty(t, cfg.RedisAddr)
	assert.False(t, cfg.TelemetryEnabled)
}

func TestLoadConfig_EnvironmentOverrides(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("LEDGER_CACHE_TTL", "2m")
	t.Setenv("REDIS_ADDR", "redis:6379")
	t.Setenv("TELEMETRY_ENABLED", "true")

	cfg, err := cmd.LoadConfig("")

	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.HTTPPort)
	assert.Equal(t, 2*time.Minute, cfg.LedgerCacheTTL)
	assert.Equal(t, "redis:6379", cfg.RedisAddr)
	assert.True(t, cfg.DatabaseConfig().Tracing)
	assert.True(t, cfg.TelemetryConfig().Enabled)
}

func TestLoadConfig_EnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("DB_NAME=from_file\nCONSOLIDATION_TIMEOUT=3s\n"), 0o600))
	t.Setenv("CONSOLIDATION_TIMEOUT", "5s")
	t.Cleanup(func() { _ = os.Unsetenv("DB_NAME") })

	cfg, err := cmd.LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, "from_file", cfg.DBName)
	assert.Equal(t, 5*time.Second, cfg.ConsolidationTimeout)
}

func TestConfig_Validate(t *testing.T) {
	cfg, err := cmd.LoadConfig("")
	require.NoError(t, err)

	cfg.HTTPPort = "http"
	cfg.DBHost = ""
	cfg.LedgerCacheMaxEntries = 0

	err = cfg.Validate()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP_PORT")
	assert.Contains(t, err.Error(), "DB_HOST")
	assert.Contains(t, err.Error(), "LEDGER_CACHE_MAX_ENTRIES")
}
