package domain

// DeletionPolicy states how an entity is removed once its deletion guard
// passes.
type DeletionPolicy int

const (
	// HardDelete removes the record from storage.
	HardDelete DeletionPolicy = iota
	// SoftDelete keeps the record and flags it as deleted.
	SoftDelete
)

// String implements fmt.Stringer.
func (p DeletionPolicy) String() string {
	switch p {
	case HardDelete:
		return "hard"
	case SoftDelete:
		return "soft"
	default:
		return "unknown"
	}
}

// Entity names used in error values and log attributes.
const (
	EntityClient   = "client"
	EntityProject  = "project"
	EntityActivity = "activity"
)
