// Package main is the entry point for the service. It wires all dependencies
// using samber/do v2, starts the HTTP server, and handles graceful shutdown
// on SIGINT/SIGTERM.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/samber/do/v2"

	adapthttp "github.com/brunogodoif/projectmanagement/internal/adapters/http"
	"github.com/brunogodoif/projectmanagement/internal/adapters/http/handlers"
	"github.com/brunogodoif/projectmanagement/internal/adapters/http/middleware"

	"github.com/brunogodoif/projectmanagement/internal/app"
	"github.com/brunogodoif/projectmanagement/internal/platform/config"
	"github.com/brunogodoif/projectmanagement/internal/platform/health"
	"github.com/brunogodoif/projectmanagement/internal/platform/logging"
	"github.com/brunogodoif/projectmanagement/internal/platform/metrics"
	"github.com/brunogodoif/projectmanagement/internal/platform/telemetry"
	"github.com/brunogodoif/projectmanagement/internal/ports"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const (
	serverShutdownTimeout = 15 * time.Second
	otelShutdownTimeout   = 5 * time.Second
	healthCheckTimeout    = 2 * time.Second
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// A .env file is optional; real environment variables take precedence.
	_ = godotenv.Load()

	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE environment variable is required (e.g. local, dev, prod)")
	}

	// Bootstrap: config, logger, telemetry.
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)
	slog.SetDefault(logger)

	ctx := context.Background()
	otel, err := initTelemetry(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	// DI container.
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.metrics)

	registerDependencies(ctx, injector, cfg, logger)

	// Resolve the server (eagerly wires the full graph).
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}

	// Register health checkers after the graph is wired.
	registry := do.MustInvoke[ports.HealthRegistry](injector)
	repos := do.MustInvoke[*repositories](injector)
	for _, c := range repos.checkers {
		registry.Register(c)
	}

	logger.Info("server starting",
		slog.String("addr", server.Addr()),
		slog.String("profile", profile),
		slog.String("storage", driverName(cfg.Storage.Driver)),
	)

	// Start server in background.
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	// Wait for shutdown signal or server error.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	case err := <-serverErr:
		_ = repos.Shutdown()
		return fmt.Errorf("server failed: %w", err)
	}

	// Graceful shutdown: drain HTTP requests.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	}

	// Wait for Start() goroutine to return.
	<-serverErr

	// Close storage connections.
	if err := repos.Shutdown(); err != nil {
		logger.Error("storage shutdown error", slog.Any("error", err))
	}

	// Flush telemetry.
	otelCtx, otelCancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
	defer otelCancel()

	if err := otel.Shutdown(otelCtx); err != nil {
		logger.Error("telemetry shutdown error", slog.Any("error", err))
	}

	logger.Info("shutdown complete")
	return nil
}

// otelProviders bundles OpenTelemetry provider lifecycle. All fields are nil
// when telemetry is disabled.
type otelProviders struct {
	tracer  *sdktrace.TracerProvider
	meter   *sdkmetric.MeterProvider
	metrics *telemetry.Metrics
}

// Shutdown flushes both providers. Nil-safe.
func (o *otelProviders) Shutdown(ctx context.Context) error {
	var errs []error
	if o.tracer != nil {
		if err := o.tracer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer shutdown: %w", err))
		}
	}
	if o.meter != nil {
		if err := o.meter.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter shutdown: %w", err))
		}
	}
	return errors.Join(errs...)
}

func initTelemetry(ctx context.Context, cfg *config.Config) (*otelProviders, error) {
	if !cfg.Telemetry.Enabled {
		return &otelProviders{}, nil
	}

	tp, err := telemetry.InitTracer(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}

	mp, err := telemetry.InitMeter(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		_ = tp.Shutdown(ctx)
		return nil, fmt.Errorf("init meter: %w", err)
	}

	m, err := telemetry.NewMetrics(mp, cfg.Telemetry.ServiceName)
	if err != nil {
		_ = tp.Shutdown(ctx)
		_ = mp.Shutdown(ctx)
		return nil, fmt.Errorf("creating metrics: %w", err)
	}

	return &otelProviders{
		tracer:  tp,
		meter:   mp,
		metrics: m,
	}, nil
}

func registerDependencies(ctx context.Context, injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(i do.Injector) (*repositories, error) {
		otelMetrics := do.MustInvoke[*telemetry.Metrics](i)
		return openRepositories(ctx, cfg.Storage, logger, otelMetrics)
	})

	do.Provide(injector, func(_ do.Injector) (*metrics.Metrics, error) {
		return metrics.New(), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.ClientService, error) {
		repos := do.MustInvoke[*repositories](i)
		m := do.MustInvoke[*metrics.Metrics](i)
		return app.NewClientService(repos.clients, repos.projects, logger, app.WithMetrics(m)), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.ProjectService, error) {
		repos := do.MustInvoke[*repositories](i)
		m := do.MustInvoke[*metrics.Metrics](i)
		return app.NewProjectService(repos.projects, repos.clients, repos.activities, logger, app.WithMetrics(m)), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.ActivityService, error) {
		repos := do.MustInvoke[*repositories](i)
		m := do.MustInvoke[*metrics.Metrics](i)
		return app.NewActivityService(repos.activities, repos.projects, logger, app.WithMetrics(m)), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(health.WithCheckTimeout(healthCheckTimeout)), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.ClientHandler, error) {
		return handlers.NewClientHandler(do.MustInvoke[ports.ClientService](i)), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.ProjectHandler, error) {
		return handlers.NewProjectHandler(do.MustInvoke[ports.ProjectService](i)), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.ActivityHandler, error) {
		return handlers.NewActivityHandler(do.MustInvoke[ports.ActivityService](i)), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.HealthHandler, error) {
		registry := do.MustInvoke[ports.HealthRegistry](i)
		return handlers.NewHealthHandler(registry), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		otelMetrics := do.MustInvoke[*telemetry.Metrics](i)

		h := adapthttp.Handlers{
			Clients:    do.MustInvoke[*handlers.ClientHandler](i),
			Projects:   do.MustInvoke[*handlers.ProjectHandler](i),
			Activities: do.MustInvoke[*handlers.ActivityHandler](i),
			Health:     do.MustInvoke[*handlers.HealthHandler](i),
			Metrics:    do.MustInvoke[*metrics.Metrics](i).Handler(),
		}
		var throttle, authenticate func(nethttp.Handler) nethttp.Handler
		if cfg.Server.RateLimit.Enabled {
			throttle = middleware.RateLimit(middleware.NewRateLimiter(cfg.Server.RateLimit))
		}
		if cfg.Auth.Enabled {
			authenticate = middleware.Auth(middleware.NewAuthenticator(cfg.Auth))
		}
		h.API = middleware.Chain(throttle, authenticate)

		return adapthttp.NewRouter(h,
			middleware.Recovery(logger),
			middleware.RequestID(),
			middleware.CorrelationID(),
			middleware.OpenTelemetry(otelMetrics),
			middleware.Logging(logger),
			middleware.Timeout(cfg.Server.WriteTimeout),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}
