// Package resilient decorates the repository ports with a circuit breaker,
// OpenTelemetry tracing and call metrics. Every call passes through:
//
//	Span → Circuit Breaker → Repository
//
// Construction:
//
//	guard := resilient.NewGuard("postgres", cfg.Storage.CircuitBreaker, logger,
//		resilient.WithMetrics(metrics))
//	clients := resilient.NewClientRepository(postgres.NewClientStore(db), guard)
//
// A missing record is a normal answer, not a storage failure, so
// ports.ErrRecordNotFound never counts against the breaker.
package resilient

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/brunogodoif/projectmanagement/internal/platform/config"
	"github.com/brunogodoif/projectmanagement/internal/platform/telemetry"
	"github.com/brunogodoif/projectmanagement/internal/ports"
)

var _ ports.HealthChecker = (*Guard)(nil)

// Guard is shared by the decorators of one storage driver so that failures
// anywhere in that driver trip a single breaker.
type Guard struct {
	driver  string
	breaker *gobreaker.CircuitBreaker[struct{}] // nil when the breaker is disabled
	tracer  trace.Tracer
	metrics *telemetry.Metrics
	logger  *slog.Logger
}

// Option configures a Guard.
type Option func(*Guard)

// WithMetrics records storage.call.* instruments. Nil disables recording.
func WithMetrics(m *telemetry.Metrics) Option {
	return func(g *Guard) { g.metrics = m }
}

// WithTracerProvider overrides the global tracer provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(g *Guard) {
		if tp != nil {
			g.tracer = tp.Tracer("storage")
		}
	}
}

// NewGuard builds the guard for driver. When cfg.Enabled is false calls are
// still traced and measured but never rejected.
func NewGuard(driver string, cfg config.CircuitBreakerConfig, logger *slog.Logger, opts ...Option) *Guard {
	g := &Guard{
		driver: driver,
		tracer: otel.GetTracerProvider().Tracer("storage"),
		logger: logger,
	}
	for _, opt := range opts {
		opt(g)
	}

	if cfg.Enabled {
		g.breaker = gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
			Name:        driver,
			MaxRequests: toUint32(cfg.HalfOpenLimit),
			Timeout:     cfg.Timeout,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return int(counts.ConsecutiveFailures) >= cfg.MaxFailures
			},
			IsSuccessful: func(err error) bool {
				return err == nil || errors.Is(err, ports.ErrRecordNotFound)
			},
			OnStateChange: func(name string, from, to gobreaker.State) {
				logger.Warn("circuit breaker state change",
					slog.String("breaker", name),
					slog.String("from", from.String()),
					slog.String("to", to.String()),
				)
			},
		})
	}
	return g
}

// Name identifies the guard in the health registry (e.g. "postgres-breaker").
func (g *Guard) Name() string {
	return g.driver + "-breaker"
}

// HealthCheck reports the breaker state without touching storage.
//
//   - "closed" or disabled: nil.
//   - "half-open": degraded error while recovery is probed.
//   - "open": failing error while calls are rejected.
func (g *Guard) HealthCheck(_ context.Context) error {
	if g.breaker == nil {
		return nil
	}
	state := g.breaker.State()
	switch state {
	case gobreaker.StateClosed:
		return nil
	case gobreaker.StateHalfOpen:
		return fmt.Errorf("%s: degraded (circuit breaker half-open)", g.driver)
	case gobreaker.StateOpen:
		return fmt.Errorf("%s: failing (circuit breaker open)", g.driver)
	default:
		return fmt.Errorf("%s: unknown circuit breaker state %v", g.driver, state)
	}
}

// call runs fn as operation op of repo through the span and the breaker.
func call[T any](ctx context.Context, g *Guard, repo, op string, fn func(context.Context) (T, error)) (T, error) {
	start := time.Now()
	operation := repo + "." + op

	ctx, span := g.tracer.Start(ctx, "storage "+operation,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("db.system", g.driver),
			attribute.String("db.operation", operation),
		),
	)
	defer span.End()

	var out T
	run := func() (struct{}, error) {
		var err error
		out, err = fn(ctx)
		return struct{}{}, err
	}

	var err error
	if g.breaker != nil {
		_, err = g.breaker.Execute(run)
	} else {
		_, err = run()
	}

	if err != nil && !errors.Is(err, ports.ErrRecordNotFound) {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	g.record(ctx, operation, start, err)

	return out, err
}

// exec is call for operations without a result.
func exec(ctx context.Context, g *Guard, repo, op string, fn func(context.Context) error) error {
	_, err := call(ctx, g, repo, op, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, fn(ctx)
	})
	return err
}

// record runs outside the breaker so rejected calls are counted too.
func (g *Guard) record(ctx context.Context, operation string, start time.Time, err error) {
	if g.metrics == nil {
		return
	}

	result := "success"
	switch {
	case err == nil, errors.Is(err, ports.ErrRecordNotFound):
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		result = "circuit_open"
	default:
		result = "error"
	}

	attrs := metric.WithAttributes(
		telemetry.AttrStorageDriver.String(g.driver),
		telemetry.AttrOperation.String(operation),
		telemetry.AttrResult.String(result),
	)
	g.metrics.StorageCallDuration.Record(ctx, time.Since(start).Seconds(), attrs)
	g.metrics.StorageCallTotal.Add(ctx, 1, attrs)
}

// toUint32 converts a non-negative int to uint32, clamping at the uint32
// maximum. Negative values are treated as zero.
func toUint32(v int) uint32 {
	if v <= 0 {
		return 0
	}
	if v > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(v)
}
