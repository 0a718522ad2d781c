package resilient_test

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sony/gobreaker/v2"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/brunogodoif/projectmanagement/internal/adapters/storage/memory"
	"github.com/brunogodoif/projectmanagement/internal/adapters/storage/resilient"
	"github.com/brunogodoif/projectmanagement/internal/adapters/storage/storagetest"
	"github.com/brunogodoif/projectmanagement/internal/platform/config"
	"github.com/brunogodoif/projectmanagement/internal/platform/telemetry"
	"github.com/brunogodoif/projectmanagement/internal/ports"
	"github.com/brunogodoif/projectmanagement/mocks"
)

var errStorage = errors.New("connection refused")

func testConfig() config.CircuitBreakerConfig {
	return config.CircuitBreakerConfig{
		Enabled:       true,
		MaxFailures:   2,
		Timeout:       1 * time.Second,
		HalfOpenLimit: 1,
	}
}

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestGuardedRepositories_Contract(t *testing.T) {
	t.Parallel()

	suite.Run(t, &storagetest.RepositorySuite{
		NewRepos: func() storagetest.Repos {
			guard := resilient.NewGuard("memory", testConfig(), testLogger())
			return storagetest.Repos{
				Clients:    resilient.NewClientRepository(memory.NewClientStore(), guard),
				Projects:   resilient.NewProjectRepository(memory.NewProjectStore(), guard),
				Activities: resilient.NewActivityRepository(memory.NewActivityStore(), guard),
			}
		},
	})
}

func TestGuard_OpensAfterConsecutiveFailures(t *testing.T) {
	t.Parallel()

	inner := mocks.NewMockClientRepository(t)
	inner.EXPECT().FindAll(mock.Anything).Return(nil, errStorage).Times(2)

	repo := resilient.NewClientRepository(inner, resilient.NewGuard("postgres", testConfig(), testLogger()))
	ctx := context.Background()

	for range 2 {
		if _, err := repo.FindAll(ctx); !errors.Is(err, errStorage) {
			t.Fatalf("FindAll() error = %v, want %v", err, errStorage)
		}
	}

	_, err := repo.FindAll(ctx)
	if !errors.Is(err, gobreaker.ErrOpenState) {
		t.Errorf("FindAll() error = %v, want gobreaker.ErrOpenState", err)
	}
}

func TestGuard_NotFoundDoesNotTrip(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	inner := mocks.NewMockProjectRepository(t)
	inner.EXPECT().FindByID(mock.Anything, id).Return(nil, ports.ErrRecordNotFound).Times(5)

	guard := resilient.NewGuard("postgres", testConfig(), testLogger())
	repo := resilient.NewProjectRepository(inner, guard)

	for range 5 {
		if _, err := repo.FindByID(context.Background(), id); !errors.Is(err, ports.ErrRecordNotFound) {
			t.Fatalf("FindByID() error = %v, want ErrRecordNotFound", err)
		}
	}
	if err := guard.HealthCheck(context.Background()); err != nil {
		t.Errorf("HealthCheck() = %v, want nil", err)
	}
}

func TestGuard_Recovery(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	inner := mocks.NewMockActivityRepository(t)
	inner.EXPECT().DeleteByID(mock.Anything, id).Return(errStorage).Times(2)
	inner.EXPECT().DeleteByID(mock.Anything, id).Return(nil).Once()

	cfg := testConfig()
	cfg.Timeout = 100 * time.Millisecond
	guard := resilient.NewGuard("redis", cfg, testLogger())
	repo := resilient.NewActivityRepository(inner, guard)
	ctx := context.Background()

	_ = repo.DeleteByID(ctx, id)
	_ = repo.DeleteByID(ctx, id)

	err := guard.HealthCheck(ctx)
	if err == nil || !strings.Contains(err.Error(), "failing") {
		t.Fatalf("HealthCheck() = %v, want error containing %q", err, "failing")
	}

	time.Sleep(150 * time.Millisecond)

	err = guard.HealthCheck(ctx)
	if err == nil || !strings.Contains(err.Error(), "degraded") {
		t.Fatalf("HealthCheck() = %v, want error containing %q", err, "degraded")
	}

	if err := repo.DeleteByID(ctx, id); err != nil {
		t.Fatalf("DeleteByID() error = %v", err)
	}
	if err := guard.HealthCheck(ctx); err != nil {
		t.Errorf("HealthCheck() = %v, want nil after recovery", err)
	}
}

func TestGuard_Disabled(t *testing.T) {
	t.Parallel()

	inner := mocks.NewMockClientRepository(t)
	inner.EXPECT().ExistsByEmail(mock.Anything, "a@x.com").Return(false, errStorage).Times(5)

	guard := resilient.NewGuard("postgres", config.CircuitBreakerConfig{}, testLogger())
	repo := resilient.NewClientRepository(inner, guard)

	for range 5 {
		if _, err := repo.ExistsByEmail(context.Background(), "a@x.com"); !errors.Is(err, errStorage) {
			t.Fatalf("ExistsByEmail() error = %v, want %v", err, errStorage)
		}
	}
	if err := guard.HealthCheck(context.Background()); err != nil {
		t.Errorf("HealthCheck() = %v, want nil with breaker disabled", err)
	}
}

func TestGuard_Name(t *testing.T) {
	t.Parallel()

	guard := resilient.NewGuard("postgres", testConfig(), testLogger())
	if got := guard.Name(); got != "postgres-breaker" {
		t.Errorf("Name() = %q, want %q", got, "postgres-breaker")
	}
}

func TestGuard_RecordsSpansAndMetrics(t *testing.T) {
	t.Parallel()

	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() {
		_ = tp.Shutdown(context.Background())
		_ = mp.Shutdown(context.Background())
	})

	metrics, err := telemetry.NewMetrics(mp, "test-service")
	if err != nil {
		t.Fatalf("NewMetrics() error = %v", err)
	}

	inner := mocks.NewMockClientRepository(t)
	inner.EXPECT().FindAllActive(mock.Anything).Return(nil, errStorage).Once()

	guard := resilient.NewGuard("postgres", testConfig(), testLogger(),
		resilient.WithMetrics(metrics), resilient.WithTracerProvider(tp))
	repo := resilient.NewClientRepository(inner, guard)

	_, _ = repo.FindAllActive(context.Background())

	spans := recorder.Ended()
	if len(spans) != 1 {
		t.Fatalf("ended spans = %d, want 1", len(spans))
	}
	if got := spans[0].Name(); got != "storage clients.FindAllActive" {
		t.Errorf("span name = %q", got)
	}
	if len(spans[0].Events()) == 0 {
		t.Error("span has no error event")
	}

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(context.Background(), &rm); err != nil {
		t.Fatalf("Collect() error = %v", err)
	}
	var found bool
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != "storage.call.total" {
				continue
			}
			sum, ok := m.Data.(metricdata.Sum[int64])
			if !ok || len(sum.DataPoints) != 1 || sum.DataPoints[0].Value != 1 {
				t.Errorf("storage.call.total = %+v", m.Data)
			}
			found = true
		}
	}
	if !found {
		t.Error("storage.call.total not recorded")
	}
}
