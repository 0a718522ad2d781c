package resilient

import (
	"context"

	"github.com/google/uuid"

	"github.com/brunogodoif/projectmanagement/internal/domain/activity"
	"github.com/brunogodoif/projectmanagement/internal/domain/client"
	"github.com/brunogodoif/projectmanagement/internal/domain/project"
	"github.com/brunogodoif/projectmanagement/internal/ports"
)

var (
	_ ports.ClientRepository   = (*ClientRepository)(nil)
	_ ports.ProjectRepository  = (*ProjectRepository)(nil)
	_ ports.ActivityRepository = (*ActivityRepository)(nil)
)

// ClientRepository guards a ports.ClientRepository.
type ClientRepository struct {
	next  ports.ClientRepository
	guard *Guard
}

// NewClientRepository wraps next with guard.
func NewClientRepository(next ports.ClientRepository, guard *Guard) *ClientRepository {
	return &ClientRepository{next: next, guard: guard}
}

func (r *ClientRepository) Save(ctx context.Context, c *client.Client) (*client.Client, error) {
	return call(ctx, r.guard, "clients", "Save", func(ctx context.Context) (*client.Client, error) {
		return r.next.Save(ctx, c)
	})
}

func (r *ClientRepository) FindByID(ctx context.Context, id uuid.UUID) (*client.Client, error) {
	return call(ctx, r.guard, "clients", "FindByID", func(ctx context.Context) (*client.Client, error) {
		return r.next.FindByID(ctx, id)
	})
}

func (r *ClientRepository) FindAll(ctx context.Context) ([]client.Client, error) {
	return call(ctx, r.guard, "clients", "FindAll", r.next.FindAll)
}

func (r *ClientRepository) FindAllActive(ctx context.Context) ([]client.Client, error) {
	return call(ctx, r.guard, "clients", "FindAllActive", r.next.FindAllActive)
}

func (r *ClientRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return call(ctx, r.guard, "clients", "ExistsByEmail", func(ctx context.Context) (bool, error) {
		return r.next.ExistsByEmail(ctx, email)
	})
}

func (r *ClientRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	return exec(ctx, r.guard, "clients", "DeleteByID", func(ctx context.Context) error {
		return r.next.DeleteByID(ctx, id)
	})
}

// ProjectRepository guards a ports.ProjectRepository.
type ProjectRepository struct {
	next  ports.ProjectRepository
	guard *Guard
}

// NewProjectRepository wraps next with guard.
func NewProjectRepository(next ports.ProjectRepository, guard *Guard) *ProjectRepository {
	return &ProjectRepository{next: next, guard: guard}
}

func (r *ProjectRepository) Save(ctx context.Context, p *project.Project) (*project.Project, error) {
	return call(ctx, r.guard, "projects", "Save", func(ctx context.Context) (*project.Project, error) {
		return r.next.Save(ctx, p)
	})
}

func (r *ProjectRepository) FindByID(ctx context.Context, id uuid.UUID) (*project.Project, error) {
	return call(ctx, r.guard, "projects", "FindByID", func(ctx context.Context) (*project.Project, error) {
		return r.next.FindByID(ctx, id)
	})
}

func (r *ProjectRepository) FindAll(ctx context.Context) ([]project.Project, error) {
	return call(ctx, r.guard, "projects", "FindAll", r.next.FindAll)
}

func (r *ProjectRepository) FindByStatus(ctx context.Context, status project.Status) ([]project.Project, error) {
	return call(ctx, r.guard, "projects", "FindByStatus", func(ctx context.Context) ([]project.Project, error) {
		return r.next.FindByStatus(ctx, status)
	})
}

func (r *ProjectRepository) FindByClientID(ctx context.Context, clientID uuid.UUID) ([]project.Project, error) {
	return call(ctx, r.guard, "projects", "FindByClientID", func(ctx context.Context) ([]project.Project, error) {
		return r.next.FindByClientID(ctx, clientID)
	})
}

// ActivityRepository guards a ports.ActivityRepository.
type ActivityRepository struct {
	next  ports.ActivityRepository
	guard *Guard
}

// NewActivityRepository wraps next with guard.
func NewActivityRepository(next ports.ActivityRepository, guard *Guard) *ActivityRepository {
	return &ActivityRepository{next: next, guard: guard}
}

func (r *ActivityRepository) Save(ctx context.Context, a *activity.Activity) (*activity.Activity, error) {
	return call(ctx, r.guard, "activities", "Save", func(ctx context.Context) (*activity.Activity, error) {
		return r.next.Save(ctx, a)
	})
}

func (r *ActivityRepository) FindByID(ctx context.Context, id uuid.UUID) (*activity.Activity, error) {
	return call(ctx, r.guard, "activities", "FindByID", func(ctx context.Context) (*activity.Activity, error) {
		return r.next.FindByID(ctx, id)
	})
}

func (r *ActivityRepository) FindAll(ctx context.Context) ([]activity.Activity, error) {
	return call(ctx, r.guard, "activities", "FindAll", r.next.FindAll)
}

func (r *ActivityRepository) FindByProjectID(ctx context.Context, projectID uuid.UUID) ([]activity.Activity, error) {
	return call(ctx, r.guard, "activities", "FindByProjectID", func(ctx context.Context) ([]activity.Activity, error) {
		return r.next.FindByProjectID(ctx, projectID)
	})
}

func (r *ActivityRepository) FindByProjectIDAndCompletedFalse(ctx context.Context, projectID uuid.UUID) ([]activity.Activity, error) {
	return call(ctx, r.guard, "activities", "FindByProjectIDAndCompletedFalse",
		func(ctx context.Context) ([]activity.Activity, error) {
			return r.next.FindByProjectIDAndCompletedFalse(ctx, projectID)
		})
}

func (r *ActivityRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	return exec(ctx, r.guard, "activities", "DeleteByID", func(ctx context.Context) error {
		return r.next.DeleteByID(ctx, id)
	})
}
