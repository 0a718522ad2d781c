package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/brunogodoif/projectmanagement/internal/domain/activity"
	"github.com/brunogodoif/projectmanagement/internal/ports"
)

var _ ports.ActivityRepository = (*ActivityStore)(nil)

const activityColumns = `id, title, description, project_id, due_date, assignee, completed,
	priority, estimated_hours, created_at, updated_at`

// ActivityStore persists activities in the activities table.
type ActivityStore struct {
	db *sql.DB
}

// NewActivityStore returns an ActivityStore backed by db.
func NewActivityStore(db *DB) *ActivityStore {
	return &ActivityStore{db: db.DB}
}

func (s *ActivityStore) Save(ctx context.Context, a *activity.Activity) (*activity.Activity, error) {
	query := `
		INSERT INTO activities (` + activityColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (id) DO UPDATE SET
			title = EXCLUDED.title,
			description = EXCLUDED.description,
			project_id = EXCLUDED.project_id,
			due_date = EXCLUDED.due_date,
			assignee = EXCLUDED.assignee,
			completed = EXCLUDED.completed,
			priority = EXCLUDED.priority,
			estimated_hours = EXCLUDED.estimated_hours,
			updated_at = EXCLUDED.updated_at
	`
	_, err := s.db.ExecContext(ctx, query,
		a.ID, a.Title, a.Description, a.ProjectID, nullDate(a.DueDate), a.Assignee, a.Completed,
		a.Priority, a.EstimatedHours, a.CreatedAt, a.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("save activity: %w", err)
	}
	out := *a
	return &out, nil
}

func (s *ActivityStore) FindByID(ctx context.Context, id uuid.UUID) (*activity.Activity, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+activityColumns+` FROM activities WHERE id = $1`, id)
	a, err := scanActivity(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ports.ErrRecordNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find activity: %w", err)
	}
	return a, nil
}

func (s *ActivityStore) FindAll(ctx context.Context) ([]activity.Activity, error) {
	return s.list(ctx, `SELECT `+activityColumns+` FROM activities ORDER BY created_at, id`)
}

func (s *ActivityStore) FindByProjectID(ctx context.Context, projectID uuid.UUID) ([]activity.Activity, error) {
	return s.list(ctx,
		`SELECT `+activityColumns+` FROM activities WHERE project_id = $1 ORDER BY created_at, id`, projectID)
}

func (s *ActivityStore) FindByProjectIDAndCompletedFalse(ctx context.Context, projectID uuid.UUID) ([]activity.Activity, error) {
	return s.list(ctx,
		`SELECT `+activityColumns+` FROM activities WHERE project_id = $1 AND NOT completed ORDER BY created_at, id`,
		projectID)
}

func (s *ActivityStore) DeleteByID(ctx context.Context, id uuid.UUID) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM activities WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete activity: %w", err)
	}
	return nil
}

func (s *ActivityStore) list(ctx context.Context, query string, args ...any) ([]activity.Activity, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	out, err := collect(rows, scanActivity)
	if err != nil {
		return nil, fmt.Errorf("scan activities: %w", err)
	}
	return out, nil
}

func scanActivity(r rowScanner) (*activity.Activity, error) {
	var (
		a   activity.Activity
		due sql.NullTime
	)
	err := r.Scan(&a.ID, &a.Title, &a.Description, &a.ProjectID, &due, &a.Assignee, &a.Completed,
		&a.Priority, &a.EstimatedHours, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	a.DueDate = datePtr(due)
	return &a, nil
}
