package redis

import (
	"time"

	"github.com/google/uuid"

	"github.com/brunogodoif/projectmanagement/internal/domain/activity"
	"github.com/brunogodoif/projectmanagement/internal/domain/client"
	"github.com/brunogodoif/projectmanagement/internal/domain/project"
)

type clientRecord struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	CompanyName string    `json:"company_name"`
	Address     string    `json:"address"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toClientRecord(c *client.Client) clientRecord {
	return clientRecord{
		ID:          c.ID,
		Name:        c.Name,
		Email:       c.Email,
		Phone:       c.Phone,
		CompanyName: c.CompanyName,
		Address:     c.Address,
		Active:      c.Active,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func (r clientRecord) toDomain() client.Client {
	return client.Client{
		ID:          r.ID,
		Name:        r.Name,
		Email:       r.Email,
		Phone:       r.Phone,
		CompanyName: r.CompanyName,
		Address:     r.Address,
		Active:      r.Active,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

type projectRecord struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	ClientID    uuid.UUID  `json:"client_id"`
	StartDate   *time.Time `json:"start_date,omitempty"`
	EndDate     *time.Time `json:"end_date,omitempty"`
	Status      string     `json:"status"`
	ManagerName string     `json:"manager_name"`
	Notes       string     `json:"notes"`
	IsDeleted   bool       `json:"is_deleted"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func toProjectRecord(p *project.Project) projectRecord {
	return projectRecord{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		ClientID:    p.ClientID,
		StartDate:   p.StartDate,
		EndDate:     p.EndDate,
		Status:      string(p.Status),
		ManagerName: p.ManagerName,
		Notes:       p.Notes,
		IsDeleted:   p.IsDeleted,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func (r projectRecord) toDomain() project.Project {
	return project.Project{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		ClientID:    r.ClientID,
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
		Status:      project.Status(r.Status),
		ManagerName: r.ManagerName,
		Notes:       r.Notes,
		IsDeleted:   r.IsDeleted,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

type activityRecord struct {
	ID             uuid.UUID  `json:"id"`
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	ProjectID      uuid.UUID  `json:"project_id"`
	DueDate        *time.Time `json:"due_date,omitempty"`
	Assignee       string     `json:"assignee"`
	Completed      bool       `json:"completed"`
	Priority       string     `json:"priority"`
	EstimatedHours float64    `json:"estimated_hours"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

func toActivityRecord(a *activity.Activity) activityRecord {
	return activityRecord{
		ID:             a.ID,
		Title:          a.Title,
		Description:    a.Description,
		ProjectID:      a.ProjectID,
		DueDate:        a.DueDate,
		Assignee:       a.Assignee,
		Completed:      a.Completed,
		Priority:       a.Priority,
		EstimatedHours: a.EstimatedHours,
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}
}

func (r activityRecord) toDomain() activity.Activity {
	return activity.Activity{
		ID:             r.ID,
		Title:          r.Title,
		Description:    r.Description,
		ProjectID:      r.ProjectID,
		DueDate:        r.DueDate,
		Assignee:       r.Assignee,
		Completed:      r.Completed,
		Priority:       r.Priority,
		EstimatedHours: r.EstimatedHours,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
}

// score orders sorted-set members by creation time.
func score(t time.Time) float64 {
	return float64(t.UnixMicro())
}
