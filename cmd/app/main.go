package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"packing/cmd"
	httpin "packing/internal/adapters/in/http"
	"packing/internal/adapters/out/postgres"
	"packing/internal/adapters/out/telemetry"
	"packing/internal/pkg/logger"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	configs, err := cmd.LoadConfig(".env")
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	zapLogger, err := logger.New(configs.LoggerConfig())
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer func() { _ = zapLogger.Sync() }()

	if err := run(configs, zapLogger); err != nil {
		zapLogger.Fatal("packing service stopped", zap.Error(err))
	}
}

func run(configs cmd.Config, zapLogger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	meterProvider, err := telemetry.NewMeterProvider(ctx, configs.TelemetryConfig(), zapLogger)
	if err != nil {
		return err
	}
	defer shutdown(zapLogger, "meter provider", configs, meterProvider.Shutdown)

	metrics, err := telemetry.NewPackingMetrics(meterProvider.Meter(telemetry.MeterName), zapLogger)
	if err != nil {
		return err
	}

	gormDB, err := postgres.Open(configs.DatabaseConfig(), zapLogger)
	if err != nil {
		return err
	}
	defer func() { _ = postgres.Close(gormDB) }()

	var redisClient redis.UniversalClient
	if configs.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     configs.RedisAddr,
			Password: configs.RedisPassword,
			DB:       configs.RedisDB,
		})
		defer func() { _ = client.Close() }()
		if err := client.Ping(ctx).Err(); err != nil {
			zapLogger.Warn("redis unreachable, shipment cache invalidation will be retried per mutation in the background",
				zap.String("addr", configs.RedisAddr), zap.Error(err))
		}
		redisClient = client
	}

	app, err := cmd.NewCompositionRoot(configs, gormDB, redisClient, metrics, zapLogger)
	if err != nil {
		return err
	}
	defer app.Close()

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	return startWebServer(ctx, app, configs, zapLogger)
}

func startWebServer(ctx context.Context, app cmd.CompositionRoot, configs cmd.Config, zapLogger *zap.Logger) error {
	e := httpin.NewRouter(app.CreateHTTPServer(), zapLogger)

	errCh := make(chan error, 1)
	go func() {
		zapLogger.Info("HTTP server started", zap.String("port", configs.HTTPPort))
		errCh <- e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort))
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	zapLogger.Info("shutting down HTTP server")
	shutdown(zapLogger, "HTTP server", configs, e.Shutdown)
	return nil
}

func shutdown(zapLogger *zap.Logger, name string, configs cmd.Config, fn func(context.Context) error) {
	ctx, cancel := context.WithTimeout(context.Background(), configs.ShutdownTimeout)
	defer cancel()
	if err := fn(ctx); err != nil {
		zapLogger.Warn("shutdown failed", zap.String("component", name), zap.Error(err))
	}
}
