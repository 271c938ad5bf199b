package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"strings"
	"time"

	"packing/internal/adapters/out/postgres"
	"packing/internal/adapters/out/telemetry"
	"packing/internal/pkg/logger"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	HTTPPort        string
	ShutdownTimeout time.Duration

	DBHost            string
	DBPort            string
	DBUser            string
	DBPassword        string
	DBName            string
	DBSslMode         string
	DBMaxOpenConns    int
	DBMaxIdleConns    int
	DBConnMaxLifetime time.Duration
	DBLogLevel        string

	RedisAddr            string
	RedisPassword        string
	RedisDB              int
	ShipmentCachePrefix  string
	ShipmentCacheChannel string

	LedgerCacheTTL        time.Duration
	LedgerCacheMaxEntries int
	CacheSweepSchedule    string

	ConsolidationTimeout time.Duration
	BoxCatalogPath       string

	LogLevel  string
	LogFormat string
	LogOutput string

	TelemetryEnabled        bool
	TelemetryEndpoint       string
	TelemetryInsecure       bool
	TelemetryExportInterval time.Duration
	ServiceName             string
	ServiceVersion          string
}

var defaults = map[string]any{
	"HTTP_PORT":        "8080",
	"SHUTDOWN_TIMEOUT": "15s",

	"DB_HOST":              "localhost",
	"DB_PORT":              "5432",
	"DB_USER":              "postgres",
	"DB_NAME":              "packing",
	"DB_SSLMODE":           "disable",
	"DB_MAX_OPEN_CONNS":    25,
	"DB_MAX_IDLE_CONNS":    5,
	"DB_CONN_MAX_LIFETIME": "1h",
	"DB_LOG_LEVEL":         "warn",

	"REDIS_DB":               0,
	"SHIPMENT_CACHE_PREFIX":  "shipments:",
	"SHIPMENT_CACHE_CHANNEL": "shipments:invalidate",

	"LEDGER_CACHE_TTL":         "30s",
	"LEDGER_CACHE_MAX_ENTRIES": 1024,
	"CACHE_SWEEP_SCHEDULE":     "*/30 * * * * *",

	"CONSOLIDATION_TIMEOUT": "10s",

	"LOG_LEVEL":  "info",
	"LOG_FORMAT": "json",
	"LOG_OUTPUT": "stdout",

	"TELEMETRY_ENABLED":         false,
	"TELEMETRY_INSECURE":        true,
	"TELEMETRY_EXPORT_INTERVAL": "60s",
	"SERVICE_NAME":              "packing",
	"SERVICE_VERSION":           "dev",
}

// LoadConfig reads envFile when it exists, then resolves every setting from
// the environment with built-in defaults. Variables already set in the
// environment win over the file.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	}

	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	cfg := Config{
		HTTPPort:        v.GetString("HTTP_PORT"),
		ShutdownTimeout: v.GetDuration("SHUTDOWN_TIMEOUT"),

		DBHost:            v.GetString("DB_HOST"),
		DBPort:            v.GetString("DB_PORT"),
		DBUser:            v.GetString("DB_USER"),
		DBPassword:        v.GetString("DB_PASSWORD"),
		DBName:            v.GetString("DB_NAME"),
		DBSslMode:         v.GetString("DB_SSLMODE"),
		DBMaxOpenConns:    v.GetInt("DB_MAX_OPEN_CONNS"),
		DBMaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
		DBConnMaxLifetime: v.GetDuration("DB_CONN_MAX_LIFETIME"),
		DBLogLevel:        v.GetString("DB_LOG_LEVEL"),

		RedisAddr:            v.GetString("REDIS_ADDR"),
		RedisPassword:        v.GetString("REDIS_PASSWORD"),
		RedisDB:              v.GetInt("REDIS_DB"),
		ShipmentCachePrefix:  v.GetString("SHIPMENT_CACHE_PREFIX"),
		ShipmentCacheChannel: v.GetString("SHIPMENT_CACHE_CHANNEL"),

		LedgerCacheTTL:        v.GetDuration("LEDGER_CACHE_TTL"),
		LedgerCacheMaxEntries: v.GetInt("LEDGER_CACHE_MAX_ENTRIES"),
		CacheSweepSchedule:    v.GetString("CACHE_SWEEP_SCHEDULE"),

		ConsolidationTimeout: v.GetDuration("CONSOLIDATION_TIMEOUT"),
		BoxCatalogPath:       v.GetString("BOX_CATALOG_PATH"),

		LogLevel:  v.GetString("LOG_LEVEL"),
		LogFormat: v.GetString("LOG_FORMAT"),
		LogOutput: v.GetString("LOG_OUTPUT"),

		TelemetryEnabled:        v.GetBool("TELEMETRY_ENABLED"),
		TelemetryEndpoint:       v.GetString("TELEMETRY_ENDPOINT"),
		TelemetryInsecure:       v.GetBool("TELEMETRY_INSECURE"),
		TelemetryExportInterval: v.GetDuration("TELEMETRY_EXPORT_INTERVAL"),
		ServiceName:             v.GetString("SERVICE_NAME"),
		ServiceVersion:          v.GetString("SERVICE_VERSION"),
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	var errList []error
	if port, err := strconv.Atoi(c.HTTPPort); err != nil || port < 1 || port > 65535 {
		errList = append(errList, fmt.Errorf("HTTP_PORT must be a port number, got %q", c.HTTPPort))
	}
	for name, value := range map[string]string{
		"DB_HOST": c.DBHost,
		"DB_PORT": c.DBPort,
		"DB_USER": c.DBUser,
		"DB_NAME": c.DBName,
	} {
		if strings.TrimSpace(value) == "" {
			errList = append(errList, fmt.Errorf("%s is required", name))
		}
	}
	if c.LedgerCacheTTL <= 0 {
		errList = append(errList, errors.New("LEDGER_CACHE_TTL must be positive"))
	}
	if c.LedgerCacheMaxEntries <= 0 {
		errList = append(errList, errors.New("LEDGER_CACHE_MAX_ENTRIES must be positive"))
	}
	if c.ConsolidationTimeout <= 0 {
		errList = append(errList, errors.New("CONSOLIDATION_TIMEOUT must be positive"))
	}
	if c.TelemetryEnabled && c.ServiceName == "" {
		errList = append(errList, errors.New("SERVICE_NAME is required when telemetry is enabled"))
	}
	return errors.Join(errList...)
}

func (c Config) DatabaseConfig() postgres.Config {
	return postgres.Config{
		Host:            c.DBHost,
		Port:            c.DBPort,
		User:            c.DBUser,
		Password:        c.DBPassword,
		Name:            c.DBName,
		SSLMode:         c.DBSslMode,
		MaxOpenConns:    c.DBMaxOpenConns,
		MaxIdleConns:    c.DBMaxIdleConns,
		ConnMaxLifetime: c.DBConnMaxLifetime,
		LogLevel:        c.DBLogLevel,
		Tracing:         c.TelemetryEnabled,
	}
}

func (c Config) LoggerConfig() logger.Config {
	return logger.Config{
		Level:  c.LogLevel,
		Format: c.LogFormat,
		Output: c.LogOutput,
	}
}

func (c Config) TelemetryConfig() telemetry.Config {
	return telemetry.Config{
		Enabled:           c.TelemetryEnabled,
		ServiceName:       c.ServiceName,
		ServiceVersion:    c.ServiceVersion,
		CollectorEndpoint: c.TelemetryEndpoint,
		Insecure:          c.TelemetryInsecure,
		ExportInterval:    c.TelemetryExportInterval,
	}
}
