// Package storage groups the persistence adapters implementing the repository
// ports: memory (default), postgres and redis, plus resilient decorators that
// put a circuit breaker in front of any of them.
//
// None of the drivers enforce foreign keys or uniqueness; referential
// integrity is owned by the application services.
package storage
