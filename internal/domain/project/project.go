// Package project holds the Project entity: a unit of work commissioned by a
// client and made of activities.
package project

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/brunogodoif/projectmanagement/internal/domain"
	"github.com/brunogodoif/projectmanagement/internal/domain/activity"
)

// Deletion is the removal policy applied to projects: the record stays and
// IsDeleted is raised.
const Deletion = domain.SoftDelete

const msgEndBeforeStart = "cannot be before start date"

// Project references its client by identity only.
type Project struct {
	ID          uuid.UUID
	Name        string
	Description string
	ClientID    uuid.UUID
	StartDate   *time.Time
	EndDate     *time.Time
	Status      Status
	ManagerName string
	Notes       string
	IsDeleted   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Params carries the caller-supplied fields for a new Project.
// An empty Status defaults to StatusOpen.
type Params struct {
	Name        string
	Description string
	ClientID    uuid.UUID
	StartDate   *time.Time
	EndDate     *time.Time
	Status      Status
	ManagerName string
	Notes       string
}

// New builds a validated Project with a fresh identity.
func New(p Params, now time.Time) (*Project, error) {
	status := p.Status
	if status == "" {
		status = StatusOpen
	}

	proj := &Project{
		ID:          uuid.New(),
		Name:        strings.TrimSpace(p.Name),
		Description: p.Description,
		ClientID:    p.ClientID,
		StartDate:   domain.DatePtr(p.StartDate),
		EndDate:     domain.DatePtr(p.EndDate),
		Status:      status,
		ManagerName: strings.TrimSpace(p.ManagerName),
		Notes:       p.Notes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := proj.Validate(); err != nil {
		return nil, err
	}
	return proj, nil
}

// Validate checks business rules for the Project entity.
// Returns a *domain.ValidationError (wrapping domain.ErrValidation) with per-field details,
// or nil if all rules pass.
func (p *Project) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(p.Name) == "" {
		fields["name"] = domain.MsgRequired
	}
	if p.ClientID == uuid.Nil {
		fields["client_id"] = domain.MsgRequired
	}
	if !p.Status.IsValid() {
		fields["status"] = invalidStatus(string(p.Status)).Error()
	}
	if p.StartDate != nil && p.EndDate != nil && p.EndDate.Before(*p.StartDate) {
		fields["end_date"] = msgEndBeforeStart
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// Patch lists the project fields to change. Unset fields are kept; a null
// date clears it.
type Patch struct {
	Name        domain.Field[string]
	Description domain.Field[string]
	ClientID    domain.Field[uuid.UUID]
	StartDate   domain.Field[time.Time]
	EndDate     domain.Field[time.Time]
	Status      domain.Field[Status]
	ManagerName domain.Field[string]
	Notes       domain.Field[string]
}

// Apply returns a copy of p with the patch applied and UpdatedAt set to now.
// Dates are re-validated; any status may replace any other.
func (p *Project) Apply(patch Patch, now time.Time) (*Project, error) {
	next := *p
	next.Name = strings.TrimSpace(patch.Name.ApplyTo(p.Name))
	next.Description = patch.Description.ApplyTo(p.Description)
	next.ClientID = patch.ClientID.ApplyTo(p.ClientID)
	next.StartDate = domain.DatePtr(patch.StartDate.ApplyToPtr(p.StartDate))
	next.EndDate = domain.DatePtr(patch.EndDate.ApplyToPtr(p.EndDate))
	next.Status = patch.Status.ApplyTo(p.Status)
	next.ManagerName = strings.TrimSpace(patch.ManagerName.ApplyTo(p.ManagerName))
	next.Notes = patch.Notes.ApplyTo(p.Notes)
	next.UpdatedAt = now

	if err := next.Validate(); err != nil {
		return nil, err
	}
	return &next, nil
}

// MarkDeleted returns a soft-deleted copy of p. There is no way back.
func (p *Project) MarkDeleted(now time.Time) *Project {
	next := *p
	next.IsDeleted = true
	next.UpdatedAt = now
	return &next
}

// ExcludeDeleted returns the projects that are not soft-deleted, preserving
// order. The result is never nil.
func ExcludeDeleted(projects []Project) []Project {
	out := make([]Project, 0, len(projects))
	for i := range projects {
		if !projects[i].IsDeleted {
			out = append(out, projects[i])
		}
	}
	return out
}

// Detail is a read-only view of a project together with its activities.
// Activities is derived at read time and never persisted.
type Detail struct {
	Project
	Activities []activity.Activity
}
