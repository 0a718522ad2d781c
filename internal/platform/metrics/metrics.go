// Package metrics exposes Prometheus counters for entity lifecycle outcomes.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "projectmanagement"

// Metrics provides observability for the lifecycle services.
// Every series is labelled by entity (client, project, activity).
type Metrics struct {
	registry *prometheus.Registry

	EntitiesCreated   *prometheus.CounterVec
	EntitiesDeleted   *prometheus.CounterVec
	DeletionsBlocked  *prometheus.CounterVec
	OperationFailures *prometheus.CounterVec
	OperationDuration *prometheus.HistogramVec
}

// New creates a Metrics instance registered on a fresh registry, together
// with the Go runtime and process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return NewWithRegistry(reg)
}

// NewWithRegistry registers all metrics on reg.
func NewWithRegistry(reg *prometheus.Registry) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		registry: reg,
		EntitiesCreated: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "entities_created_total",
			Help:      "Total number of entities created",
		}, []string{"entity"}),
		EntitiesDeleted: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "entities_deleted_total",
			Help:      "Total number of entities deleted, by deletion policy",
		}, []string{"entity", "policy"}),
		DeletionsBlocked: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "deletions_blocked_total",
			Help:      "Deletions refused because dependents still reference the entity",
		}, []string{"entity"}),
		OperationFailures: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operation_failures_total",
			Help:      "Unexpected storage failures surfaced as operation errors",
		}, []string{"entity", "operation"}),
		OperationDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "operation_duration_seconds",
			Help:      "Duration of lifecycle operations",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"entity", "operation"}),
	}
}

// IncrementCreated records a successful creation.
func (m *Metrics) IncrementCreated(entity string) {
	m.EntitiesCreated.WithLabelValues(entity).Inc()
}

// IncrementDeleted records a successful deletion under the given policy.
func (m *Metrics) IncrementDeleted(entity, policy string) {
	m.EntitiesDeleted.WithLabelValues(entity, policy).Inc()
}

// IncrementDeletionBlocked records a deletion refused by a deletion guard.
func (m *Metrics) IncrementDeletionBlocked(entity string) {
	m.DeletionsBlocked.WithLabelValues(entity).Inc()
}

// IncrementOperationFailure records an operation error.
func (m *Metrics) IncrementOperationFailure(entity, operation string) {
	m.OperationFailures.WithLabelValues(entity, operation).Inc()
}

// ObserveOperation records the duration of an operation.
// Call with time.Now() at the start of the operation.
func (m *Metrics) ObserveOperation(entity, operation string, start time.Time) {
	m.OperationDuration.WithLabelValues(entity, operation).Observe(time.Since(start).Seconds())
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
