package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/brunogodoif/projectmanagement/internal/domain"
)

// DateLayout is the wire format of calendar dates.
const DateLayout = time.DateOnly

// Date is a calendar date encoded as "2006-01-02".
type Date struct {
	time.Time
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Format(DateLayout))
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return fmt.Errorf("date must use layout %s: %w", DateLayout, err)
	}
	d.Time = t
	return nil
}

// Ptr returns the date as a *time.Time, nil for a nil receiver.
func (d *Date) Ptr() *time.Time {
	if d == nil {
		return nil
	}
	t := d.Time
	return &t
}

// FormatDate renders an optional date for responses.
func FormatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(DateLayout)
	return &s
}

// Nullable distinguishes an absent JSON member from an explicit null in
// PATCH bodies. The zero value means "absent".
type Nullable[T any] struct {
	Present bool
	Null    bool
	Value   T
}

func (n *Nullable[T]) UnmarshalJSON(b []byte) error {
	n.Present = true
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		n.Null = true
		return nil
	}
	return json.Unmarshal(b, &n.Value)
}

// Field converts n into a patch field.
func (n Nullable[T]) Field() domain.Field[T] {
	switch {
	case !n.Present:
		return domain.Unset[T]()
	case n.Null:
		return domain.Null[T]()
	default:
		return domain.Set(n.Value)
	}
}

// DateField converts a nullable date into a patch field.
func DateField(n Nullable[Date]) domain.Field[time.Time] {
	switch {
	case !n.Present:
		return domain.Unset[time.Time]()
	case n.Null:
		return domain.Null[time.Time]()
	default:
		return domain.Set(n.Value.Time)
	}
}
