package app

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/brunogodoif/projectmanagement/internal/domain"
	"github.com/brunogodoif/projectmanagement/internal/domain/activity"
	"github.com/brunogodoif/projectmanagement/internal/ports"
)

// Compile-time check that ActivityService implements ports.ActivityService.
var _ ports.ActivityService = (*ActivityService)(nil)

// ActivityService implements ports.ActivityService. Activities reference a
// project by id. A soft-deleted project still resolves: the record exists.
type ActivityService struct {
	activities ports.ActivityRepository
	projects   ports.ProjectRepository
	logger     *slog.Logger
	opts       options
}

// NewActivityService creates an ActivityService.
func NewActivityService(
	activities ports.ActivityRepository,
	projects ports.ProjectRepository,
	logger *slog.Logger,
	opts ...Option,
) *ActivityService {
	return &ActivityService{
		activities: activities,
		projects:   projects,
		logger:     loggerOrDiscard(logger),
		opts:       newOptions(opts),
	}
}

func (s *ActivityService) fail(ctx context.Context, operation, msg string, err error, attrs ...slog.Attr) error {
	return failure(ctx, s.logger, s.opts.metrics, domain.EntityActivity, operation, msg, err, attrs...)
}

// Create resolves the project, validates the input and persists the activity.
func (s *ActivityService) Create(ctx context.Context, params activity.Params) (*activity.Activity, error) {
	s.logger.InfoContext(ctx, "creating activity",
		slog.String("title", params.Title),
		slog.String("project_id", params.ProjectID.String()),
	)

	if params.ProjectID != uuid.Nil {
		if err := s.resolveProject(ctx, params.ProjectID); err != nil {
			return nil, s.fail(ctx, "Create", "failed to create activity", err,
				slog.String("project_id", params.ProjectID.String()))
		}
	}

	a, err := activity.New(params, s.opts.now())
	if err != nil {
		return nil, err
	}

	saved, err := s.activities.Save(ctx, a)
	if err != nil {
		return nil, s.fail(ctx, "Create", "failed to create activity", err)
	}

	s.opts.metrics.IncrementCreated(domain.EntityActivity)
	return saved, nil
}

// Get returns a single activity.
func (s *ActivityService) Get(ctx context.Context, id uuid.UUID) (*activity.Activity, error) {
	s.logger.InfoContext(ctx, "fetching activity", slog.String("id", id.String()))

	a, err := s.find(ctx, id)
	if err != nil {
		return nil, s.fail(ctx, "Get", "failed to fetch activity", err, slog.String("id", id.String()))
	}
	return a, nil
}

// List returns every activity.
func (s *ActivityService) List(ctx context.Context) ([]activity.Activity, error) {
	s.logger.InfoContext(ctx, "listing activities")

	activities, err := s.activities.FindAll(ctx)
	if err != nil {
		return nil, s.fail(ctx, "List", "failed to list activities", err)
	}
	return nonNil(activities), nil
}

// ListByProject returns the activities of an existing project.
func (s *ActivityService) ListByProject(ctx context.Context, projectID uuid.UUID) ([]activity.Activity, error) {
	s.logger.InfoContext(ctx, "listing activities by project", slog.String("project_id", projectID.String()))

	if err := s.resolveProject(ctx, projectID); err != nil {
		return nil, s.fail(ctx, "ListByProject", "failed to list activities", err,
			slog.String("project_id", projectID.String()))
	}

	activities, err := s.activities.FindByProjectID(ctx, projectID)
	if err != nil {
		return nil, s.fail(ctx, "ListByProject", "failed to list activities", err,
			slog.String("project_id", projectID.String()))
	}
	return nonNil(activities), nil
}

// ListPendingByProject returns the activities of an existing project that are
// not completed.
func (s *ActivityService) ListPendingByProject(ctx context.Context, projectID uuid.UUID) ([]activity.Activity, error) {
	s.logger.InfoContext(ctx, "listing pending activities by project", slog.String("project_id", projectID.String()))

	if err := s.resolveProject(ctx, projectID); err != nil {
		return nil, s.fail(ctx, "ListPendingByProject", "failed to list pending activities", err,
			slog.String("project_id", projectID.String()))
	}

	activities, err := s.activities.FindByProjectIDAndCompletedFalse(ctx, projectID)
	if err != nil {
		return nil, s.fail(ctx, "ListPendingByProject", "failed to list pending activities", err,
			slog.String("project_id", projectID.String()))
	}
	return nonNil(activities), nil
}

// Update applies patch to an existing activity. When the project reference
// changes the new project must exist.
func (s *ActivityService) Update(ctx context.Context, id uuid.UUID, patch activity.Patch) (*activity.Activity, error) {
	s.logger.InfoContext(ctx, "updating activity", slog.String("id", id.String()))

	current, err := s.find(ctx, id)
	if err != nil {
		return nil, s.fail(ctx, "Update", "failed to update activity", err, slog.String("id", id.String()))
	}

	if patch.ProjectID.HasValue() && patch.ProjectID.Value != current.ProjectID && patch.ProjectID.Value != uuid.Nil {
		if err := s.resolveProject(ctx, patch.ProjectID.Value); err != nil {
			return nil, s.fail(ctx, "Update", "failed to update activity", err,
				slog.String("id", id.String()),
				slog.String("project_id", patch.ProjectID.Value.String()),
			)
		}
	}

	next, err := current.Apply(patch, s.opts.now())
	if err != nil {
		return nil, err
	}

	saved, err := s.activities.Save(ctx, next)
	if err != nil {
		return nil, s.fail(ctx, "Update", "failed to update activity", err, slog.String("id", id.String()))
	}
	return saved, nil
}

// Delete hard-deletes an activity.
func (s *ActivityService) Delete(ctx context.Context, id uuid.UUID) error {
	s.logger.InfoContext(ctx, "deleting activity", slog.String("id", id.String()))

	if _, err := s.find(ctx, id); err != nil {
		return s.fail(ctx, "Delete", "failed to delete activity", err, slog.String("id", id.String()))
	}

	if err := s.activities.DeleteByID(ctx, id); err != nil {
		return s.fail(ctx, "Delete", "failed to delete activity", err, slog.String("id", id.String()))
	}

	s.opts.metrics.IncrementDeleted(domain.EntityActivity, activity.Deletion.String())
	return nil
}

func (s *ActivityService) find(ctx context.Context, id uuid.UUID) (*activity.Activity, error) {
	a, err := s.activities.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, domain.EntityActivity, id.String())
	}
	return a, nil
}

func (s *ActivityService) resolveProject(ctx context.Context, projectID uuid.UUID) error {
	if _, err := s.projects.FindByID(ctx, projectID); err != nil {
		return notFoundOr(err, domain.EntityProject, projectID.String())
	}
	return nil
}
