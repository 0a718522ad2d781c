package app

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/brunogodoif/projectmanagement/internal/domain"
	"github.com/brunogodoif/projectmanagement/internal/ports"
)

// Option configures a lifecycle service.
type Option func(*options)

type options struct {
	now     func() time.Time
	metrics ports.LifecycleMetrics
}

// WithClock overrides the time source used for entity timestamps.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

// WithMetrics records lifecycle outcomes on m.
func WithMetrics(m ports.LifecycleMetrics) Option {
	return func(o *options) {
		if m != nil {
			o.metrics = m
		}
	}
}

func newOptions(opts []Option) options {
	o := options{
		now:     func() time.Time { return time.Now().UTC().Truncate(time.Microsecond) },
		metrics: noopMetrics{},
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func loggerOrDiscard(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return logger
}

type noopMetrics struct{}

func (noopMetrics) IncrementCreated(string)                  {}
func (noopMetrics) IncrementDeleted(string, string)          {}
func (noopMetrics) IncrementDeletionBlocked(string)          {}
func (noopMetrics) IncrementOperationFailure(string, string) {}

// failure is the common error exit of every service method. Domain errors
// pass through unchanged; anything else is wrapped in a
// *domain.OperationError carrying msg and counted as an operation failure.
func failure(
	ctx context.Context,
	logger *slog.Logger,
	m ports.LifecycleMetrics,
	entity, operation, msg string,
	err error,
	attrs ...slog.Attr,
) error {
	if domain.IsDomainError(err) {
		return err
	}

	logAttrs := make([]slog.Attr, 0, len(attrs)+2)
	logAttrs = append(logAttrs, slog.String("operation", operation))
	logAttrs = append(logAttrs, attrs...)
	logAttrs = append(logAttrs, slog.Any("error", err))
	logger.LogAttrs(ctx, slog.LevelError, msg, logAttrs...)

	m.IncrementOperationFailure(entity, operation)

	var opErr *domain.OperationError
	if errors.As(err, &opErr) {
		return err
	}
	return &domain.OperationError{Op: msg, Err: err}
}

// notFoundOr translates ports.ErrRecordNotFound into a *domain.NotFoundError
// for entity and leaves other errors alone.
func notFoundOr(err error, entity, id string) error {
	if errors.Is(err, ports.ErrRecordNotFound) {
		return &domain.NotFoundError{Entity: entity, ID: id}
	}
	return err
}
