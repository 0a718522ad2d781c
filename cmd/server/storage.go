package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/brunogodoif/projectmanagement/internal/adapters/storage/memory"
	"github.com/brunogodoif/projectmanagement/internal/adapters/storage/postgres"
	"github.com/brunogodoif/projectmanagement/internal/adapters/storage/redis"
	"github.com/brunogodoif/projectmanagement/internal/adapters/storage/resilient"
	"github.com/brunogodoif/projectmanagement/internal/platform/config"
	"github.com/brunogodoif/projectmanagement/internal/platform/telemetry"
	"github.com/brunogodoif/projectmanagement/internal/ports"
)

var errUnknownDriver = errors.New("unknown storage driver")

// repositories is the set of stores selected by storage.driver, plus the
// components the readiness probe should check.
type repositories struct {
	clients    ports.ClientRepository
	projects   ports.ProjectRepository
	activities ports.ActivityRepository
	checkers   []ports.HealthChecker
	close      func() error
}

// Shutdown releases the driver's connections.
func (r *repositories) Shutdown() error {
	if r.close == nil {
		return nil
	}
	return r.close()
}

func openRepositories(
	ctx context.Context,
	cfg config.StorageConfig,
	logger *slog.Logger,
	metrics *telemetry.Metrics,
) (*repositories, error) {
	var repos *repositories

	switch cfg.Driver {
	case config.DriverMemory, "":
		repos = &repositories{
			clients:    memory.NewClientStore(),
			projects:   memory.NewProjectStore(),
			activities: memory.NewActivityStore(),
		}

	case config.DriverPostgres:
		db, err := postgres.Open(ctx, cfg.Postgres)
		if err != nil {
			return nil, fmt.Errorf("opening postgres: %w", err)
		}
		if cfg.Postgres.Migrate {
			if err := db.Migrate(ctx); err != nil {
				_ = db.Close()
				return nil, fmt.Errorf("migrating postgres: %w", err)
			}
		}
		repos = &repositories{
			clients:    postgres.NewClientStore(db),
			projects:   postgres.NewProjectStore(db),
			activities: postgres.NewActivityStore(db),
			checkers:   []ports.HealthChecker{db},
			close:      db.Close,
		}

	case config.DriverRedis:
		c, err := redis.Open(ctx, cfg.Redis)
		if err != nil {
			return nil, fmt.Errorf("opening redis: %w", err)
		}
		repos = &repositories{
			clients:    redis.NewClientStore(c),
			projects:   redis.NewProjectStore(c),
			activities: redis.NewActivityStore(c),
			checkers:   []ports.HealthChecker{c},
			close:      c.Close,
		}

	default:
		return nil, fmt.Errorf("%w: %q", errUnknownDriver, cfg.Driver)
	}

	// The in-memory driver cannot fail, so only remote drivers are guarded.
	if len(repos.checkers) > 0 {
		guard := resilient.NewGuard(cfg.Driver, cfg.CircuitBreaker, logger, resilient.WithMetrics(metrics))
		repos.clients = resilient.NewClientRepository(repos.clients, guard)
		repos.projects = resilient.NewProjectRepository(repos.projects, guard)
		repos.activities = resilient.NewActivityRepository(repos.activities, guard)
		repos.checkers = append(repos.checkers, guard)
	}

	logger.InfoContext(ctx, "storage ready", slog.String("driver", driverName(cfg.Driver)))
	return repos, nil
}

func driverName(d string) string {
	if d == "" {
		return config.DriverMemory
	}
	return d
}
