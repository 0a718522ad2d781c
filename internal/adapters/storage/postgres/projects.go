package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/brunogodoif/projectmanagement/internal/domain/project"
	"github.com/brunogodoif/projectmanagement/internal/ports"
)

var _ ports.ProjectRepository = (*ProjectStore)(nil)

const projectColumns = `id, name, description, client_id, start_date, end_date, status,
	manager_name, notes, is_deleted, created_at, updated_at`

// ProjectStore persists projects in the projects table. Soft-deleted rows
// are returned like any other; filtering is the caller's concern.
type ProjectStore struct {
	db *sql.DB
}

// NewProjectStore returns a ProjectStore backed by db.
func NewProjectStore(db *DB) *ProjectStore {
	return &ProjectStore{db: db.DB}
}

func (s *ProjectStore) Save(ctx context.Context, p *project.Project) (*project.Project, error) {
	query := `
		INSERT INTO projects (` + projectColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			description = EXCLUDED.description,
			client_id = EXCLUDED.client_id,
			start_date = EXCLUDED.start_date,
			end_date = EXCLUDED.end_date,
			status = EXCLUDED.status,
			manager_name = EXCLUDED.manager_name,
			notes = EXCLUDED.notes,
			is_deleted = EXCLUDED.is_deleted,
			updated_at = EXCLUDED.updated_at
	`
	_, err := s.db.ExecContext(ctx, query,
		p.ID, p.Name, p.Description, p.ClientID, nullDate(p.StartDate), nullDate(p.EndDate), string(p.Status),
		p.ManagerName, p.Notes, p.IsDeleted, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("save project: %w", err)
	}
	out := *p
	return &out, nil
}

func (s *ProjectStore) FindByID(ctx context.Context, id uuid.UUID) (*project.Project, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+projectColumns+` FROM projects WHERE id = $1`, id)
	p, err := scanProject(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ports.ErrRecordNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find project: %w", err)
	}
	return p, nil
}

func (s *ProjectStore) FindAll(ctx context.Context) ([]project.Project, error) {
	return s.list(ctx, `SELECT `+projectColumns+` FROM projects ORDER BY created_at, id`)
}

func (s *ProjectStore) FindByStatus(ctx context.Context, status project.Status) ([]project.Project, error) {
	return s.list(ctx,
		`SELECT `+projectColumns+` FROM projects WHERE status = $1 ORDER BY created_at, id`, string(status))
}

func (s *ProjectStore) FindByClientID(ctx context.Context, clientID uuid.UUID) ([]project.Project, error) {
	return s.list(ctx,
		`SELECT `+projectColumns+` FROM projects WHERE client_id = $1 ORDER BY created_at, id`, clientID)
}

func (s *ProjectStore) list(ctx context.Context, query string, args ...any) ([]project.Project, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	out, err := collect(rows, scanProject)
	if err != nil {
		return nil, fmt.Errorf("scan projects: %w", err)
	}
	return out, nil
}

func scanProject(r rowScanner) (*project.Project, error) {
	var (
		p          project.Project
		status     string
		start, end sql.NullTime
	)
	err := r.Scan(&p.ID, &p.Name, &p.Description, &p.ClientID, &start, &end, &status,
		&p.ManagerName, &p.Notes, &p.IsDeleted, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	p.Status = project.Status(status)
	p.StartDate = datePtr(start)
	p.EndDate = datePtr(end)
	return &p, nil
}
