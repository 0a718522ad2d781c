package activity

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/brunogodoif/projectmanagement/internal/domain"
)

var now = time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

func validParams() Params {
	return Params{
		Title:          "T",
		ProjectID:      uuid.New(),
		Priority:       "high",
		EstimatedHours: 4,
	}
}

func TestNew(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		modify    func(*Params)
		wantField string
	}{
		{name: "valid params", modify: func(_ *Params) {}},
		{name: "empty title", modify: func(p *Params) { p.Title = " " }, wantField: "title"},
		{name: "nil project id", modify: func(p *Params) { p.ProjectID = uuid.Nil }, wantField: "project_id"},
		{name: "negative hours", modify: func(p *Params) { p.EstimatedHours = -1 }, wantField: "estimated_hours"},
		{name: "free text priority", modify: func(p *Params) { p.Priority = "whenever" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p := validParams()
			tt.modify(&p)
			_, err := New(p, now)

			if tt.wantField == "" {
				if err != nil {
					t.Errorf("New() error = %v, want nil", err)
				}
				return
			}
			var verr *domain.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("New() error = %v, want *ValidationError", err)
			}
			if _, ok := verr.Fields[tt.wantField]; !ok {
				t.Errorf("Fields = %v, missing %q", verr.Fields, tt.wantField)
			}
		})
	}
}

func TestActivity_Apply(t *testing.T) {
	t.Parallel()

	orig, err := New(validParams(), now)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	later := now.Add(time.Hour)
	other := uuid.New()

	got, err := orig.Apply(Patch{
		ProjectID: domain.Set(other),
		Completed: domain.Set(true),
		DueDate:   domain.Set(time.Date(2025, 2, 3, 15, 4, 5, 0, time.UTC)),
	}, later)
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if got.ProjectID != other || !got.Completed {
		t.Errorf("Apply() = %+v", got)
	}
	if want := time.Date(2025, 2, 3, 0, 0, 0, 0, time.UTC); got.DueDate == nil || !got.DueDate.Equal(want) {
		t.Errorf("DueDate = %v, want %v", got.DueDate, want)
	}
	if orig.ProjectID == other || orig.Completed {
		t.Error("Apply() modified the receiver")
	}
	if !got.UpdatedAt.Equal(later) {
		t.Errorf("UpdatedAt = %v, want %v", got.UpdatedAt, later)
	}

	if _, err := orig.Apply(Patch{Title: domain.Set("")}, later); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("Apply(empty title) error = %v, want ErrValidation", err)
	}
}
