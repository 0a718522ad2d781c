package memory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/brunogodoif/projectmanagement/internal/domain/activity"
	"github.com/brunogodoif/projectmanagement/internal/domain/client"
	"github.com/brunogodoif/projectmanagement/internal/domain/project"
	"github.com/brunogodoif/projectmanagement/internal/ports"
)

var (
	_ ports.ClientRepository   = (*ClientStore)(nil)
	_ ports.ProjectRepository  = (*ProjectStore)(nil)
	_ ports.ActivityRepository = (*ActivityStore)(nil)
)

// ClientStore is an in-memory ports.ClientRepository.
type ClientStore struct {
	t *table[client.Client]
}

// NewClientStore returns an empty ClientStore.
func NewClientStore() *ClientStore {
	return &ClientStore{t: newTable(func(c *client.Client) (time.Time, uuid.UUID) { return c.CreatedAt, c.ID })}
}

func (s *ClientStore) Save(_ context.Context, c *client.Client) (*client.Client, error) {
	s.t.put(c.ID, *c)
	out := *c
	return &out, nil
}

func (s *ClientStore) FindByID(_ context.Context, id uuid.UUID) (*client.Client, error) {
	c, ok := s.t.get(id)
	if !ok {
		return nil, ports.ErrRecordNotFound
	}
	return &c, nil
}

func (s *ClientStore) FindAll(_ context.Context) ([]client.Client, error) {
	return s.t.filter(nil), nil
}

func (s *ClientStore) FindAllActive(_ context.Context) ([]client.Client, error) {
	return s.t.filter(func(c *client.Client) bool { return c.Active }), nil
}

func (s *ClientStore) ExistsByEmail(_ context.Context, email string) (bool, error) {
	email = client.NormalizeEmail(email)
	return s.t.exists(func(c *client.Client) bool { return c.Email == email }), nil
}

func (s *ClientStore) DeleteByID(_ context.Context, id uuid.UUID) error {
	s.t.remove(id)
	return nil
}

// ProjectStore is an in-memory ports.ProjectRepository.
type ProjectStore struct {
	t *table[project.Project]
}

// NewProjectStore returns an empty ProjectStore.
func NewProjectStore() *ProjectStore {
	return &ProjectStore{t: newTable(func(p *project.Project) (time.Time, uuid.UUID) { return p.CreatedAt, p.ID })}
}

func (s *ProjectStore) Save(_ context.Context, p *project.Project) (*project.Project, error) {
	s.t.put(p.ID, *p)
	out := *p
	return &out, nil
}

func (s *ProjectStore) FindByID(_ context.Context, id uuid.UUID) (*project.Project, error) {
	p, ok := s.t.get(id)
	if !ok {
		return nil, ports.ErrRecordNotFound
	}
	return &p, nil
}

func (s *ProjectStore) FindAll(_ context.Context) ([]project.Project, error) {
	return s.t.filter(nil), nil
}

func (s *ProjectStore) FindByStatus(_ context.Context, status project.Status) ([]project.Project, error) {
	return s.t.filter(func(p *project.Project) bool { return p.Status == status }), nil
}

func (s *ProjectStore) FindByClientID(_ context.Context, clientID uuid.UUID) ([]project.Project, error) {
	return s.t.filter(func(p *project.Project) bool { return p.ClientID == clientID }), nil
}

// ActivityStore is an in-memory ports.ActivityRepository.
type ActivityStore struct {
	t *table[activity.Activity]
}

// NewActivityStore returns an empty ActivityStore.
func NewActivityStore() *ActivityStore {
	return &ActivityStore{t: newTable(func(a *activity.Activity) (time.Time, uuid.UUID) { return a.CreatedAt, a.ID })}
}

func (s *ActivityStore) Save(_ context.Context, a *activity.Activity) (*activity.Activity, error) {
	s.t.put(a.ID, *a)
	out := *a
	return &out, nil
}

func (s *ActivityStore) FindByID(_ context.Context, id uuid.UUID) (*activity.Activity, error) {
	a, ok := s.t.get(id)
	if !ok {
		return nil, ports.ErrRecordNotFound
	}
	return &a, nil
}

func (s *ActivityStore) FindAll(_ context.Context) ([]activity.Activity, error) {
	return s.t.filter(nil), nil
}

func (s *ActivityStore) FindByProjectID(_ context.Context, projectID uuid.UUID) ([]activity.Activity, error) {
	return s.t.filter(func(a *activity.Activity) bool { return a.ProjectID == projectID }), nil
}

func (s *ActivityStore) FindByProjectIDAndCompletedFalse(
	_ context.Context,
	projectID uuid.UUID,
) ([]activity.Activity, error) {
	return s.t.filter(func(a *activity.Activity) bool { return a.ProjectID == projectID && !a.Completed }), nil
}

func (s *ActivityStore) DeleteByID(_ context.Context, id uuid.UUID) error {
	s.t.remove(id)
	return nil
}
