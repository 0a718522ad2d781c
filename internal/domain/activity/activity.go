// Package activity holds the Activity entity: one piece of work inside a
// project.
package activity

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/brunogodoif/projectmanagement/internal/domain"
)

// Deletion is the removal policy applied to activities.
const Deletion = domain.HardDelete

// Activity references its project by identity only. Priority is free text.
type Activity struct {
	ID             uuid.UUID
	Title          string
	Description    string
	ProjectID      uuid.UUID
	DueDate        *time.Time
	Assignee       string
	Completed      bool
	Priority       string
	EstimatedHours float64
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Params carries the caller-supplied fields for a new Activity.
type Params struct {
	Title          string
	Description    string
	ProjectID      uuid.UUID
	DueDate        *time.Time
	Assignee       string
	Completed      bool
	Priority       string
	EstimatedHours float64
}

// New builds a validated Activity with a fresh identity.
func New(p Params, now time.Time) (*Activity, error) {
	a := &Activity{
		ID:             uuid.New(),
		Title:          strings.TrimSpace(p.Title),
		Description:    p.Description,
		ProjectID:      p.ProjectID,
		DueDate:        domain.DatePtr(p.DueDate),
		Assignee:       strings.TrimSpace(p.Assignee),
		Completed:      p.Completed,
		Priority:       strings.TrimSpace(p.Priority),
		EstimatedHours: p.EstimatedHours,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := a.Validate(); err != nil {
		return nil, err
	}
	return a, nil
}

// Validate checks business rules for the Activity entity.
func (a *Activity) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(a.Title) == "" {
		fields["title"] = domain.MsgRequired
	}
	if a.ProjectID == uuid.Nil {
		fields["project_id"] = domain.MsgRequired
	}
	if a.EstimatedHours < 0 {
		fields["estimated_hours"] = fmt.Sprintf("must not be negative, got %g", a.EstimatedHours)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// Patch lists the activity fields to change. Unset fields are kept.
type Patch struct {
	Title          domain.Field[string]
	Description    domain.Field[string]
	ProjectID      domain.Field[uuid.UUID]
	DueDate        domain.Field[time.Time]
	Assignee       domain.Field[string]
	Completed      domain.Field[bool]
	Priority       domain.Field[string]
	EstimatedHours domain.Field[float64]
}

// Apply returns a copy of a with the patch applied and UpdatedAt set to now.
func (a *Activity) Apply(p Patch, now time.Time) (*Activity, error) {
	next := *a
	next.Title = strings.TrimSpace(p.Title.ApplyTo(a.Title))
	next.Description = p.Description.ApplyTo(a.Description)
	next.ProjectID = p.ProjectID.ApplyTo(a.ProjectID)
	next.DueDate = domain.DatePtr(p.DueDate.ApplyToPtr(a.DueDate))
	next.Assignee = strings.TrimSpace(p.Assignee.ApplyTo(a.Assignee))
	next.Completed = p.Completed.ApplyTo(a.Completed)
	next.Priority = strings.TrimSpace(p.Priority.ApplyTo(a.Priority))
	next.EstimatedHours = p.EstimatedHours.ApplyTo(a.EstimatedHours)
	next.UpdatedAt = now

	if err := next.Validate(); err != nil {
		return nil, err
	}
	return &next, nil
}
