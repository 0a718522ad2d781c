package ports

// LifecycleMetrics records entity lifecycle outcomes. Implemented by
// platform/metrics; a nil recorder is replaced by a no-op in the app layer.
type LifecycleMetrics interface {
	IncrementCreated(entity string)
	IncrementDeleted(entity, policy string)
	IncrementDeletionBlocked(entity string)
	IncrementOperationFailure(entity, operation string)
}
