package config

const (
	defaultServerPort = 8080

	defaultRateLimitRPS   = 50.0
	defaultRateLimitBurst = 100

	defaultPostgresMaxOpen = 10
	defaultPostgresMaxIdle = 5
	defaultRedisPoolSize   = 10

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1

	minJWTSecretLength = 32
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"server.host":                           "0.0.0.0",
		"server.port":                           defaultServerPort,
		"server.read_timeout":                   "5s",
		"server.write_timeout":                  "10s",
		"server.idle_timeout":                   "120s",
		"server.rate_limit.enabled":             false,
		"server.rate_limit.requests_per_second": defaultRateLimitRPS,
		"server.rate_limit.burst":               defaultRateLimitBurst,

		"log.level":  "info",
		"log.format": "json",

		"storage.driver":                          DriverMemory,
		"storage.postgres.dsn":                    "",
		"storage.postgres.max_open_conns":         defaultPostgresMaxOpen,
		"storage.postgres.max_idle_conns":         defaultPostgresMaxIdle,
		"storage.postgres.conn_max_lifetime":      "30m",
		"storage.postgres.migrate":                true,
		"storage.redis.url":                       "",
		"storage.redis.key_prefix":                "pm",
		"storage.redis.pool_size":                 defaultRedisPoolSize,
		"storage.redis.dial_timeout":              "5s",
		"storage.redis.read_timeout":              "3s",
		"storage.redis.write_timeout":             "3s",
		"storage.circuit_breaker.enabled":         false,
		"storage.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"storage.circuit_breaker.timeout":         "30s",
		"storage.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,

		"auth.enabled":    false,
		"auth.jwt_secret": "",
		"auth.issuer":     "",

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "projectmanagement",
	}
}
