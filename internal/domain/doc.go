// Package domain contains shared domain types used across entity sub-packages.
// Entity-specific types live in sub-packages (domain/client, domain/project,
// domain/activity). This root package holds the error taxonomy, the generic
// patch field and the per-entity deletion policy type.
package domain
