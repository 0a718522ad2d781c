package config

import (
	"errors"
	"fmt"
)

// Validate checks all configuration values and returns aggregated errors.
func (c *Config) Validate() error {
	return errors.Join(
		c.Server.validate(),
		c.Log.validate(),
		c.Server.RateLimit.validate(),
		c.Storage.validate(),
		c.Auth.validate(),
		c.Telemetry.validate(),
	)
}

func (s *ServerConfig) validate() error {
	var errs []error

	if s.Port < 1 || s.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be between 1 and 65535, got %d", s.Port))
	}
	if s.ReadTimeout <= 0 {
		errs = append(errs, errors.New("server.read_timeout must be positive"))
	}
	if s.WriteTimeout <= 0 {
		errs = append(errs, errors.New("server.write_timeout must be positive"))
	}

	return errors.Join(errs...)
}

func (l *LogConfig) validate() error {
	var errs []error

	switch l.Level {
	case "debug", "info", "warn", "error":
		// Valid levels.
	default:
		errs = append(errs, fmt.Errorf("log.level must be one of: debug, info, warn, error; got %q", l.Level))
	}

	switch l.Format {
	case "json", "text":
		// Valid formats.
	default:
		errs = append(errs, fmt.Errorf("log.format must be one of: json, text; got %q", l.Format))
	}

	return errors.Join(errs...)
}

func (st *StorageConfig) validate() error {
	var errs []error

	switch st.Driver {
	case DriverMemory:
		// No settings required.
	case DriverPostgres:
		if st.Postgres.DSN == "" {
			errs = append(errs, errors.New("storage.postgres.dsn must not be empty when driver is postgres"))
		}
		if st.Postgres.MaxOpenConns < 1 {
			errs = append(errs, fmt.Errorf("storage.postgres.max_open_conns must be >= 1, got %d",
				st.Postgres.MaxOpenConns))
		}
	case DriverRedis:
		if st.Redis.URL == "" {
			errs = append(errs, errors.New("storage.redis.url must not be empty when driver is redis"))
		}
	default:
		errs = append(errs, fmt.Errorf("storage.driver must be one of: memory, postgres, redis; got %q", st.Driver))
	}

	if st.CircuitBreaker.Enabled && st.CircuitBreaker.MaxFailures < 1 {
		errs = append(errs, fmt.Errorf("storage.circuit_breaker.max_failures must be >= 1, got %d",
			st.CircuitBreaker.MaxFailures))
	}

	return errors.Join(errs...)
}

func (r *RateLimitConfig) validate() error {
	if !r.Enabled {
		return nil
	}

	var errs []error
	if r.RequestsPerSecond <= 0 {
		errs = append(errs, fmt.Errorf("server.rate_limit.requests_per_second must be positive, got %g",
			r.RequestsPerSecond))
	}
	if r.Burst < 1 {
		errs = append(errs, fmt.Errorf("server.rate_limit.burst must be >= 1, got %d", r.Burst))
	}
	return errors.Join(errs...)
}

func (a *AuthConfig) validate() error {
	if !a.Enabled {
		return nil
	}
	if len(a.JWTSecret) < minJWTSecretLength {
		return fmt.Errorf("auth.jwt_secret must be at least %d bytes when auth is enabled", minJWTSecretLength)
	}
	return nil
}

func (t *TelemetryConfig) validate() error {
	if !t.Enabled {
		return nil
	}

	var errs []error

	switch t.Exporter {
	case "stdout", "otlp":
		// Valid exporters.
	default:
		errs = append(errs, fmt.Errorf("telemetry.exporter must be one of: stdout, otlp; got %q", t.Exporter))
	}

	if t.Exporter == "otlp" && t.Endpoint == "" {
		errs = append(errs, errors.New("telemetry.endpoint must not be empty when exporter is otlp"))
	}

	return errors.Join(errs...)
}
