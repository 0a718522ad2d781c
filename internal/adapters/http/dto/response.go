// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"time"

	"github.com/brunogodoif/projectmanagement/internal/domain/activity"
	"github.com/brunogodoif/projectmanagement/internal/domain/client"
	"github.com/brunogodoif/projectmanagement/internal/domain/project"
)

// ClientResponse represents a single client in HTTP responses.
type ClientResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	CompanyName string `json:"company_name"`
	Address     string `json:"address"`
	Active      bool   `json:"active"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

// ClientDetailResponse is a client together with every project referencing it.
type ClientDetailResponse struct {
	ClientResponse
	Projects []ProjectResponse `json:"projects"`
}

// ClientListResponse represents a list of clients in HTTP responses.
type ClientListResponse struct {
	Clients []ClientResponse `json:"clients"`
	Count   int              `json:"count"`
}

// ToClientResponse converts a domain Client to an HTTP response DTO.
func ToClientResponse(c *client.Client) ClientResponse {
	return ClientResponse{
		ID:          c.ID.String(),
		Name:        c.Name,
		Email:       c.Email,
		Phone:       c.Phone,
		CompanyName: c.CompanyName,
		Address:     c.Address,
		Active:      c.Active,
		CreatedAt:   c.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   c.UpdatedAt.Format(time.RFC3339),
	}
}

// ToClientDetailResponse converts a client detail view.
func ToClientDetailResponse(d *client.Detail) ClientDetailResponse {
	return ClientDetailResponse{
		ClientResponse: ToClientResponse(&d.Client),
		Projects:       toProjectResponses(d.Projects),
	}
}

// ToClientListResponse converts a slice of clients.
func ToClientListResponse(clients []client.Client) ClientListResponse {
	items := make([]ClientResponse, len(clients))
	for i := range clients {
		items[i] = ToClientResponse(&clients[i])
	}
	return ClientListResponse{Clients: items, Count: len(items)}
}

// ProjectResponse represents a single project in HTTP responses.
type ProjectResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	ClientID    string  `json:"client_id"`
	StartDate   *string `json:"start_date"`
	EndDate     *string `json:"end_date"`
	Status      string  `json:"status"`
	ManagerName string  `json:"manager_name"`
	Notes       string  `json:"notes"`
	IsDeleted   bool    `json:"is_deleted"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

// ProjectDetailResponse is a project together with its activities.
type ProjectDetailResponse struct {
	ProjectResponse
	Activities []ActivityResponse `json:"activities"`
}

// ProjectListResponse represents a list of projects in HTTP responses.
type ProjectListResponse struct {
	Projects []ProjectResponse `json:"projects"`
	Count    int               `json:"count"`
}

// ToProjectResponse converts a domain Project to an HTTP response DTO.
func ToProjectResponse(p *project.Project) ProjectResponse {
	return ProjectResponse{
		ID:          p.ID.String(),
		Name:        p.Name,
		Description: p.Description,
		ClientID:    p.ClientID.String(),
		StartDate:   FormatDate(p.StartDate),
		EndDate:     FormatDate(p.EndDate),
		Status:      p.Status.String(),
		ManagerName: p.ManagerName,
		Notes:       p.Notes,
		IsDeleted:   p.IsDeleted,
		CreatedAt:   p.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   p.UpdatedAt.Format(time.RFC3339),
	}
}

// ToProjectDetailResponse converts a project detail view.
func ToProjectDetailResponse(d *project.Detail) ProjectDetailResponse {
	return ProjectDetailResponse{
		ProjectResponse: ToProjectResponse(&d.Project),
		Activities:      toActivityResponses(d.Activities),
	}
}

// ToProjectListResponse converts a slice of projects.
func ToProjectListResponse(projects []project.Project) ProjectListResponse {
	items := toProjectResponses(projects)
	return ProjectListResponse{Projects: items, Count: len(items)}
}

// ActivityResponse represents a single activity in HTTP responses.
type ActivityResponse struct {
	ID             string  `json:"id"`
	Title          string  `json:"title"`
	Description    string  `json:"description"`
	ProjectID      string  `json:"project_id"`
	DueDate        *string `json:"due_date"`
	Assignee       string  `json:"assignee"`
	Completed      bool    `json:"completed"`
	Priority       string  `json:"priority"`
	EstimatedHours float64 `json:"estimated_hours"`
	CreatedAt      string  `json:"created_at"`
	UpdatedAt      string  `json:"updated_at"`
}

// ActivityListResponse represents a list of activities in HTTP responses.
type ActivityListResponse struct {
	Activities []ActivityResponse `json:"activities"`
	Count      int                `json:"count"`
}

// ToActivityResponse converts a domain Activity to an HTTP response DTO.
func ToActivityResponse(a *activity.Activity) ActivityResponse {
	return ActivityResponse{
		ID:             a.ID.String(),
		Title:          a.Title,
		Description:    a.Description,
		ProjectID:      a.ProjectID.String(),
		DueDate:        FormatDate(a.DueDate),
		Assignee:       a.Assignee,
		Completed:      a.Completed,
		Priority:       a.Priority,
		EstimatedHours: a.EstimatedHours,
		CreatedAt:      a.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      a.UpdatedAt.Format(time.RFC3339),
	}
}

// ToActivityListResponse converts a slice of activities.
func ToActivityListResponse(activities []activity.Activity) ActivityListResponse {
	items := toActivityResponses(activities)
	return ActivityListResponse{Activities: items, Count: len(items)}
}

func toProjectResponses(projects []project.Project) []ProjectResponse {
	items := make([]ProjectResponse, len(projects))
	for i := range projects {
		items[i] = ToProjectResponse(&projects[i])
	}
	return items
}

func toActivityResponses(activities []activity.Activity) []ActivityResponse {
	items := make([]ActivityResponse, len(activities))
	for i := range activities {
		items[i] = ToActivityResponse(&activities[i])
	}
	return items
}
