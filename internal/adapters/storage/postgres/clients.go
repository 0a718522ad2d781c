package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/brunogodoif/projectmanagement/internal/domain/client"
	"github.com/brunogodoif/projectmanagement/internal/ports"
)

var _ ports.ClientRepository = (*ClientStore)(nil)

const clientColumns = `id, name, email, phone, company_name, address, active, created_at, updated_at`

// ClientStore persists clients in the clients table.
type ClientStore struct {
	db *sql.DB
}

// NewClientStore returns a ClientStore backed by db.
func NewClientStore(db *DB) *ClientStore {
	return &ClientStore{db: db.DB}
}

func (s *ClientStore) Save(ctx context.Context, c *client.Client) (*client.Client, error) {
	query := `
		INSERT INTO clients (` + clientColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			email = EXCLUDED.email,
			phone = EXCLUDED.phone,
			company_name = EXCLUDED.company_name,
			address = EXCLUDED.address,
			active = EXCLUDED.active,
			updated_at = EXCLUDED.updated_at
	`
	_, err := s.db.ExecContext(ctx, query,
		c.ID, c.Name, c.Email, c.Phone, c.CompanyName, c.Address, c.Active, c.CreatedAt, c.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("save client: %w", err)
	}
	out := *c
	return &out, nil
}

func (s *ClientStore) FindByID(ctx context.Context, id uuid.UUID) (*client.Client, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+clientColumns+` FROM clients WHERE id = $1`, id)
	c, err := scanClient(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ports.ErrRecordNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find client: %w", err)
	}
	return c, nil
}

func (s *ClientStore) FindAll(ctx context.Context) ([]client.Client, error) {
	return s.list(ctx, `SELECT `+clientColumns+` FROM clients ORDER BY created_at, id`)
}

func (s *ClientStore) FindAllActive(ctx context.Context) ([]client.Client, error) {
	return s.list(ctx, `SELECT `+clientColumns+` FROM clients WHERE active ORDER BY created_at, id`)
}

func (s *ClientStore) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM clients WHERE email = $1)`, client.NormalizeEmail(email)).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check client email: %w", err)
	}
	return exists, nil
}

func (s *ClientStore) DeleteByID(ctx context.Context, id uuid.UUID) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM clients WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete client: %w", err)
	}
	return nil
}

func (s *ClientStore) list(ctx context.Context, query string, args ...any) ([]client.Client, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	out, err := collect(rows, scanClient)
	if err != nil {
		return nil, fmt.Errorf("scan clients: %w", err)
	}
	return out, nil
}

func scanClient(r rowScanner) (*client.Client, error) {
	var c client.Client
	err := r.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.CompanyName, &c.Address, &c.Active, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
