// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
// The services are the only place where cross-entity rules live: parent
// existence, email uniqueness and deletion guards.
package app

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/brunogodoif/projectmanagement/internal/domain"
	"github.com/brunogodoif/projectmanagement/internal/domain/project"
	"github.com/brunogodoif/projectmanagement/internal/ports"
)

// Compile-time check that ProjectService implements ports.ProjectService.
var _ ports.ProjectService = (*ProjectService)(nil)

// ProjectService implements ports.ProjectService. Projects reference a client
// by id; the reference is resolved on create and whenever it changes.
type ProjectService struct {
	projects   ports.ProjectRepository
	clients    ports.ClientRepository
	activities ports.ActivityRepository
	logger     *slog.Logger
	opts       options
}

// NewProjectService creates a ProjectService. The client repository resolves
// parent references; the activity repository builds details and guards
// deletion.
func NewProjectService(
	projects ports.ProjectRepository,
	clients ports.ClientRepository,
	activities ports.ActivityRepository,
	logger *slog.Logger,
	opts ...Option,
) *ProjectService {
	return &ProjectService{
		projects:   projects,
		clients:    clients,
		activities: activities,
		logger:     loggerOrDiscard(logger),
		opts:       newOptions(opts),
	}
}

func (s *ProjectService) fail(ctx context.Context, operation, msg string, err error, attrs ...slog.Attr) error {
	return failure(ctx, s.logger, s.opts.metrics, domain.EntityProject, operation, msg, err, attrs...)
}

// Create resolves the client, validates the input and persists the project.
func (s *ProjectService) Create(ctx context.Context, params project.Params) (*project.Project, error) {
	s.logger.InfoContext(ctx, "creating project",
		slog.String("name", params.Name),
		slog.String("client_id", params.ClientID.String()),
	)

	if params.ClientID != uuid.Nil {
		if err := s.resolveClient(ctx, params.ClientID); err != nil {
			return nil, s.fail(ctx, "Create", "failed to create project", err,
				slog.String("client_id", params.ClientID.String()))
		}
	}

	p, err := project.New(params, s.opts.now())
	if err != nil {
		return nil, err
	}

	saved, err := s.projects.Save(ctx, p)
	if err != nil {
		return nil, s.fail(ctx, "Create", "failed to create project", err)
	}

	s.opts.metrics.IncrementCreated(domain.EntityProject)
	return saved, nil
}

// Get returns the project with its activities attached. Soft-deleted
// projects are returned too, with IsDeleted set.
func (s *ProjectService) Get(ctx context.Context, id uuid.UUID) (*project.Detail, error) {
	s.logger.InfoContext(ctx, "fetching project", slog.String("id", id.String()))

	p, err := s.find(ctx, id)
	if err != nil {
		return nil, s.fail(ctx, "Get", "failed to fetch project", err, slog.String("id", id.String()))
	}

	activities, err := s.activities.FindByProjectID(ctx, id)
	if err != nil {
		return nil, s.fail(ctx, "Get", "failed to fetch project activities", err, slog.String("id", id.String()))
	}

	return &project.Detail{Project: *p, Activities: nonNil(activities)}, nil
}

// List returns all projects that are not soft-deleted.
func (s *ProjectService) List(ctx context.Context) ([]project.Project, error) {
	s.logger.InfoContext(ctx, "listing projects")

	projects, err := s.projects.FindAll(ctx)
	if err != nil {
		return nil, s.fail(ctx, "List", "failed to list projects", err)
	}
	return project.ExcludeDeleted(projects), nil
}

// ListByStatus returns live projects in the given status. An unknown status
// is a validation error.
func (s *ProjectService) ListByStatus(ctx context.Context, status string) ([]project.Project, error) {
	s.logger.InfoContext(ctx, "listing projects by status", slog.String("status", status))

	st, err := project.ParseStatus(status)
	if err != nil {
		return nil, domain.NewValidationError("status", err.Error())
	}

	projects, err := s.projects.FindByStatus(ctx, st)
	if err != nil {
		return nil, s.fail(ctx, "ListByStatus", "failed to list projects", err, slog.String("status", status))
	}
	return project.ExcludeDeleted(projects), nil
}

// ListByClient returns live projects of a client. An unknown client yields an
// empty list.
func (s *ProjectService) ListByClient(ctx context.Context, clientID uuid.UUID) ([]project.Project, error) {
	s.logger.InfoContext(ctx, "listing projects by client", slog.String("client_id", clientID.String()))

	projects, err := s.projects.FindByClientID(ctx, clientID)
	if err != nil {
		return nil, s.fail(ctx, "ListByClient", "failed to list projects", err,
			slog.String("client_id", clientID.String()))
	}
	return project.ExcludeDeleted(projects), nil
}

// Update applies patch to an existing project. When the client reference
// changes the new client must exist; otherwise nothing is written.
func (s *ProjectService) Update(ctx context.Context, id uuid.UUID, patch project.Patch) (*project.Project, error) {
	s.logger.InfoContext(ctx, "updating project", slog.String("id", id.String()))

	current, err := s.find(ctx, id)
	if err != nil {
		return nil, s.fail(ctx, "Update", "failed to update project", err, slog.String("id", id.String()))
	}

	if patch.ClientID.HasValue() && patch.ClientID.Value != current.ClientID && patch.ClientID.Value != uuid.Nil {
		if err := s.resolveClient(ctx, patch.ClientID.Value); err != nil {
			return nil, s.fail(ctx, "Update", "failed to update project", err,
				slog.String("id", id.String()),
				slog.String("client_id", patch.ClientID.Value.String()),
			)
		}
	}

	next, err := current.Apply(patch, s.opts.now())
	if err != nil {
		return nil, err
	}

	saved, err := s.projects.Save(ctx, next)
	if err != nil {
		return nil, s.fail(ctx, "Update", "failed to update project", err, slog.String("id", id.String()))
	}
	return saved, nil
}

// Delete soft-deletes a project no activity references.
func (s *ProjectService) Delete(ctx context.Context, id uuid.UUID) error {
	s.logger.InfoContext(ctx, "deleting project", slog.String("id", id.String()))

	current, err := s.find(ctx, id)
	if err != nil {
		return s.fail(ctx, "Delete", "failed to delete project", err, slog.String("id", id.String()))
	}

	activities, err := s.activities.FindByProjectID(ctx, id)
	if err != nil {
		return s.fail(ctx, "Delete", "failed to delete project", err, slog.String("id", id.String()))
	}
	if n := len(activities); n > 0 {
		s.opts.metrics.IncrementDeletionBlocked(domain.EntityProject)
		s.logger.InfoContext(ctx, "project deletion blocked",
			slog.String("id", id.String()),
			slog.Int("activities", n),
		)
		return &domain.InUseError{
			Entity:    domain.EntityProject,
			ID:        id.String(),
			Dependent: domain.EntityActivity,
			Count:     n,
		}
	}

	if _, err := s.projects.Save(ctx, current.MarkDeleted(s.opts.now())); err != nil {
		return s.fail(ctx, "Delete", "failed to delete project", err, slog.String("id", id.String()))
	}

	s.opts.metrics.IncrementDeleted(domain.EntityProject, project.Deletion.String())
	return nil
}

func (s *ProjectService) find(ctx context.Context, id uuid.UUID) (*project.Project, error) {
	p, err := s.projects.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, domain.EntityProject, id.String())
	}
	return p, nil
}

func (s *ProjectService) resolveClient(ctx context.Context, clientID uuid.UUID) error {
	if _, err := s.clients.FindByID(ctx, clientID); err != nil {
		return notFoundOr(err, domain.EntityClient, clientID.String())
	}
	return nil
}
