package dto

import (
	"strings"

	"github.com/google/uuid"

	"github.com/brunogodoif/projectmanagement/internal/domain"
	"github.com/brunogodoif/projectmanagement/internal/domain/activity"
	"github.com/brunogodoif/projectmanagement/internal/domain/client"
	"github.com/brunogodoif/projectmanagement/internal/domain/project"
)

const (
	msgInvalidUUID = "must be a valid UUID"
	msgNotNull     = "must not be null"
)

// Request DTOs only check what the wire format can get wrong (malformed ids,
// unknown enum values, null for non-nullable members). Business rules are
// enforced by the domain constructors.

// CreateClientRequest represents the JSON body for creating a client.
type CreateClientRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone,omitempty"`
	CompanyName string `json:"company_name,omitempty"`
	Address     string `json:"address,omitempty"`
	Active      *bool  `json:"active,omitempty"`
}

// Validate never fails; it exists so handlers decode every body the same way.
func (r *CreateClientRequest) Validate() error { return nil }

// Params maps the request to constructor input.
func (r *CreateClientRequest) Params() client.Params {
	return client.Params{
		Name:        r.Name,
		Email:       r.Email,
		Phone:       r.Phone,
		CompanyName: r.CompanyName,
		Address:     r.Address,
		Active:      r.Active,
	}
}

// UpdateClientRequest represents the JSON body for patching a client.
// Absent members are left unchanged; null clears optional members.
type UpdateClientRequest struct {
	Name        Nullable[string] `json:"name"`
	Email       Nullable[string] `json:"email"`
	Phone       Nullable[string] `json:"phone"`
	CompanyName Nullable[string] `json:"company_name"`
	Address     Nullable[string] `json:"address"`
	Active      Nullable[bool]   `json:"active"`
}

// Validate rejects null for members the client cannot go without.
func (r *UpdateClientRequest) Validate() error {
	fields := make(map[string]string)
	if r.Name.Null {
		fields["name"] = msgNotNull
	}
	if r.Email.Null {
		fields["email"] = msgNotNull
	}
	if r.Active.Null {
		fields["active"] = msgNotNull
	}
	return fieldsError(fields)
}

// Patch maps the request to a client patch.
func (r *UpdateClientRequest) Patch() client.Patch {
	return client.Patch{
		Name:        r.Name.Field(),
		Email:       r.Email.Field(),
		Phone:       r.Phone.Field(),
		CompanyName: r.CompanyName.Field(),
		Address:     r.Address.Field(),
		Active:      r.Active.Field(),
	}
}

// CreateProjectRequest represents the JSON body for creating a project.
type CreateProjectRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	ClientID    string `json:"client_id"`
	StartDate   *Date  `json:"start_date,omitempty"`
	EndDate     *Date  `json:"end_date,omitempty"`
	Status      string `json:"status,omitempty"`
	ManagerName string `json:"manager_name,omitempty"`
	Notes       string `json:"notes,omitempty"`

	clientID uuid.UUID
	status   project.Status
}

// Validate parses client_id and status.
func (r *CreateProjectRequest) Validate() error {
	fields := make(map[string]string)
	r.clientID = parseOptionalUUID(fields, "client_id", r.ClientID)
	if strings.TrimSpace(r.Status) != "" {
		s, err := project.ParseStatus(r.Status)
		if err != nil {
			fields["status"] = err.Error()
		}
		r.status = s
	}
	return fieldsError(fields)
}

// Params maps the request to constructor input. Call Validate first.
func (r *CreateProjectRequest) Params() project.Params {
	return project.Params{
		Name:        r.Name,
		Description: r.Description,
		ClientID:    r.clientID,
		StartDate:   r.StartDate.Ptr(),
		EndDate:     r.EndDate.Ptr(),
		Status:      r.status,
		ManagerName: r.ManagerName,
		Notes:       r.Notes,
	}
}

// UpdateProjectRequest represents the JSON body for patching a project.
type UpdateProjectRequest struct {
	Name        Nullable[string] `json:"name"`
	Description Nullable[string] `json:"description"`
	ClientID    Nullable[string] `json:"client_id"`
	StartDate   Nullable[Date]   `json:"start_date"`
	EndDate     Nullable[Date]   `json:"end_date"`
	Status      Nullable[string] `json:"status"`
	ManagerName Nullable[string] `json:"manager_name"`
	Notes       Nullable[string] `json:"notes"`

	clientID domain.Field[uuid.UUID]
	status   domain.Field[project.Status]
}

// Validate parses client_id and status when present.
func (r *UpdateProjectRequest) Validate() error {
	fields := make(map[string]string)
	if r.Name.Null {
		fields["name"] = msgNotNull
	}

	switch {
	case r.ClientID.Null:
		fields["client_id"] = msgNotNull
	case r.ClientID.Present:
		if id := parseOptionalUUID(fields, "client_id", r.ClientID.Value); id != uuid.Nil {
			r.clientID = domain.Set(id)
		} else if _, bad := fields["client_id"]; !bad {
			r.clientID = domain.Set(uuid.Nil)
		}
	}

	switch {
	case r.Status.Null:
		fields["status"] = msgNotNull
	case r.Status.Present:
		s, err := project.ParseStatus(r.Status.Value)
		if err != nil {
			fields["status"] = err.Error()
		}
		r.status = domain.Set(s)
	}
	return fieldsError(fields)
}

// Patch maps the request to a project patch. Call Validate first.
func (r *UpdateProjectRequest) Patch() project.Patch {
	return project.Patch{
		Name:        r.Name.Field(),
		Description: r.Description.Field(),
		ClientID:    r.clientID,
		StartDate:   DateField(r.StartDate),
		EndDate:     DateField(r.EndDate),
		Status:      r.status,
		ManagerName: r.ManagerName.Field(),
		Notes:       r.Notes.Field(),
	}
}

// CreateActivityRequest represents the JSON body for creating an activity.
// ProjectID may be omitted when the route carries the project.
type CreateActivityRequest struct {
	Title          string  `json:"title"`
	Description    string  `json:"description,omitempty"`
	ProjectID      string  `json:"project_id,omitempty"`
	DueDate        *Date   `json:"due_date,omitempty"`
	Assignee       string  `json:"assignee,omitempty"`
	Completed      bool    `json:"completed,omitempty"`
	Priority       string  `json:"priority,omitempty"`
	EstimatedHours float64 `json:"estimated_hours,omitempty"`

	projectID uuid.UUID
}

// Validate parses project_id.
func (r *CreateActivityRequest) Validate() error {
	fields := make(map[string]string)
	r.projectID = parseOptionalUUID(fields, "project_id", r.ProjectID)
	return fieldsError(fields)
}

// Params maps the request to constructor input. Call Validate first.
func (r *CreateActivityRequest) Params() activity.Params {
	return activity.Params{
		Title:          r.Title,
		Description:    r.Description,
		ProjectID:      r.projectID,
		DueDate:        r.DueDate.Ptr(),
		Assignee:       r.Assignee,
		Completed:      r.Completed,
		Priority:       r.Priority,
		EstimatedHours: r.EstimatedHours,
	}
}

// UpdateActivityRequest represents the JSON body for patching an activity.
type UpdateActivityRequest struct {
	Title          Nullable[string]  `json:"title"`
	Description    Nullable[string]  `json:"description"`
	ProjectID      Nullable[string]  `json:"project_id"`
	DueDate        Nullable[Date]    `json:"due_date"`
	Assignee       Nullable[string]  `json:"assignee"`
	Completed      Nullable[bool]    `json:"completed"`
	Priority       Nullable[string]  `json:"priority"`
	EstimatedHours Nullable[float64] `json:"estimated_hours"`

	projectID domain.Field[uuid.UUID]
}

// Validate parses project_id when present.
func (r *UpdateActivityRequest) Validate() error {
	fields := make(map[string]string)
	if r.Title.Null {
		fields["title"] = msgNotNull
	}
	if r.Completed.Null {
		fields["completed"] = msgNotNull
	}

	switch {
	case r.ProjectID.Null:
		fields["project_id"] = msgNotNull
	case r.ProjectID.Present:
		if id := parseOptionalUUID(fields, "project_id", r.ProjectID.Value); id != uuid.Nil {
			r.projectID = domain.Set(id)
		} else if _, bad := fields["project_id"]; !bad {
			r.projectID = domain.Set(uuid.Nil)
		}
	}
	return fieldsError(fields)
}

// Patch maps the request to an activity patch. Call Validate first.
func (r *UpdateActivityRequest) Patch() activity.Patch {
	return activity.Patch{
		Title:          r.Title.Field(),
		Description:    r.Description.Field(),
		ProjectID:      r.projectID,
		DueDate:        DateField(r.DueDate),
		Assignee:       r.Assignee.Field(),
		Completed:      r.Completed.Field(),
		Priority:       r.Priority.Field(),
		EstimatedHours: r.EstimatedHours.Field(),
	}
}

// parseOptionalUUID returns uuid.Nil for blank input, leaving the "required"
// decision to the domain. Malformed input is recorded in fields.
func parseOptionalUUID(fields map[string]string, name, raw string) uuid.UUID {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return uuid.Nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		fields[name] = msgInvalidUUID
		return uuid.Nil
	}
	return id
}

func fieldsError(fields map[string]string) error {
	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}
