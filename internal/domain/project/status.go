package project

import (
	"fmt"
	"strings"
)

// Status is the lifecycle label of a Project. Any status may change to any
// other; there is no transition graph.
type Status string

const (
	StatusOpen       Status = "OPEN"
	StatusPlanned    Status = "PLANNED"
	StatusInProgress Status = "IN_PROGRESS"
	StatusOnHold     Status = "ON_HOLD"
	StatusCompleted  Status = "COMPLETED"
	StatusCancelled  Status = "CANCELLED"
)

func statuses() []Status {
	return []Status{
		StatusOpen,
		StatusPlanned,
		StatusInProgress,
		StatusOnHold,
		StatusCompleted,
		StatusCancelled,
	}
}

// IsValid returns true if the status is one of the defined constants.
func (s Status) IsValid() bool {
	switch s {
	case StatusOpen, StatusPlanned, StatusInProgress, StatusOnHold, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (s Status) String() string {
	return string(s)
}

// ParseStatus converts user input ("in_progress", "IN_PROGRESS") to a Status.
func ParseStatus(raw string) (Status, error) {
	s := Status(strings.ToUpper(strings.TrimSpace(raw)))
	if !s.IsValid() {
		return "", invalidStatus(raw)
	}
	return s, nil
}

func invalidStatus(raw string) error {
	names := make([]string, 0, 6)
	for _, s := range statuses() {
		names = append(names, string(s))
	}
	return fmt.Errorf("invalid: %q (want one of %s)", raw, strings.Join(names, ", "))
}
