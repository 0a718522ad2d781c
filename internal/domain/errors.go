package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// MsgRequired is the validation message for mandatory fields.
const MsgRequired = "is required"

// Sentinel errors for errors.Is() checking. Every error returned by an
// application service unwraps to exactly one of these.
var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("not found")
	ErrDuplicate  = errors.New("duplicate")
	ErrInUse      = errors.New("in use")
	ErrOperation  = errors.New("operation failed")
)

// Kind is the closed set of error kinds surfaced by the application layer.
type Kind int

const (
	KindNone Kind = iota
	KindValidation
	KindNotFound
	KindDuplicate
	KindInUse
	KindOperation
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindDuplicate:
		return "duplicate"
	case KindInUse:
		return "in_use"
	case KindOperation:
		return "operation"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// KindOf classifies err. A nil error is KindNone; anything outside the
// taxonomy is reported as KindOperation, matching how services wrap
// unexpected failures.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, ErrValidation):
		return KindValidation
	case errors.Is(err, ErrNotFound):
		return KindNotFound
	case errors.Is(err, ErrDuplicate):
		return KindDuplicate
	case errors.Is(err, ErrInUse):
		return KindInUse
	default:
		return KindOperation
	}
}

// IsDomainError reports whether err carries a decided business outcome
// (validation, not found, duplicate, in use) that must reach the caller
// unchanged.
func IsDomainError(err error) bool {
	switch KindOf(err) {
	case KindValidation, KindNotFound, KindDuplicate, KindInUse:
		return true
	default:
		return false
	}
}

// ValidationError provides programmatic access to field-level validation failures.
// Use errors.Is(err, ErrValidation) for simple checks, or errors.As(err, &verr) to
// access verr.Fields for per-field error details.
type ValidationError struct {
	Fields map[string]string
}

// NewValidationError returns a ValidationError for a single field.
func NewValidationError(field, msg string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: msg}}
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for field := range e.Fields {
		keys = append(keys, field)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, field := range keys {
		parts = append(parts, field+": "+e.Fields[field])
	}
	return fmt.Sprintf("%s: %s", ErrValidation.Error(), strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// NotFoundError reports that a referenced entity does not exist.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	if e.ID == "" {
		return e.Entity + " not found"
	}
	return fmt.Sprintf("%s not found: %s", e.Entity, e.ID)
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// DuplicateError reports a violated uniqueness rule. The offending value is
// kept for callers but left out of the message.
type DuplicateError struct {
	Entity string
	Field  string
	Value  string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("%s with this %s already exists", e.Entity, e.Field)
}

func (e *DuplicateError) Unwrap() error {
	return ErrDuplicate
}

// InUseError reports a deletion blocked by dependents.
type InUseError struct {
	Entity    string
	ID        string
	Dependent string
	Count     int
}

func (e *InUseError) Error() string {
	return fmt.Sprintf("%s %s is referenced by %d %s(s)", e.Entity, e.ID, e.Count, e.Dependent)
}

func (e *InUseError) Unwrap() error {
	return ErrInUse
}

// OperationError wraps an unexpected failure from a persistence port. Op is a
// stable message per operation ("failed to create activity"); Err is the
// original cause.
type OperationError struct {
	Op  string
	Err error
}

func (e *OperationError) Error() string {
	if e.Err == nil {
		return e.Op
	}
	return e.Op + ": " + e.Err.Error()
}

func (e *OperationError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrOperation}
	}
	return []error{ErrOperation, e.Err}
}
