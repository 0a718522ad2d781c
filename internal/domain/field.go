package domain

import "time"

// Field is one entry of an entity patch. An unset field leaves the current
// value alone; a null field clears it; otherwise Value replaces it.
type Field[T any] struct {
	IsSet  bool
	IsNull bool
	Value  T
}

// Unset returns a field that does not change anything.
func Unset[T any]() Field[T] { return Field[T]{} }

// Null returns a field that clears the current value.
func Null[T any]() Field[T] { return Field[T]{IsSet: true, IsNull: true} }

// Set returns a field that replaces the current value with v.
func Set[T any](v T) Field[T] { return Field[T]{IsSet: true, Value: v} }

// HasValue reports whether the field carries a non-null replacement.
func (f Field[T]) HasValue() bool { return f.IsSet && !f.IsNull }

// ApplyTo returns the patched value: current when unset, the zero value when
// null, Value otherwise.
func (f Field[T]) ApplyTo(current T) T {
	switch {
	case !f.IsSet:
		return current
	case f.IsNull:
		var zero T
		return zero
	default:
		return f.Value
	}
}

// ApplyToPtr is ApplyTo for optional values held by pointer.
func (f Field[T]) ApplyToPtr(current *T) *T {
	switch {
	case !f.IsSet:
		return current
	case f.IsNull:
		return nil
	default:
		v := f.Value
		return &v
	}
}

// DateOf truncates t to its calendar date in UTC.
func DateOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DatePtr returns DateOf(*t), or nil when t is nil.
func DatePtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	d := DateOf(*t)
	return &d
}
