package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/brunogodoif/projectmanagement/internal/domain/project"
	"github.com/brunogodoif/projectmanagement/internal/ports"
)

var _ ports.ProjectRepository = (*ProjectStore)(nil)

// ProjectStore keeps projects under {prefix}:project:{id}. Besides the global
// index it maintains one sorted set per client and one per status, moving
// members when a save changes either field. Projects are never removed.
type ProjectStore struct {
	c *Client
}

// NewProjectStore returns a ProjectStore using c.
func NewProjectStore(c *Client) *ProjectStore {
	return &ProjectStore{c: c}
}

func (s *ProjectStore) docKey(id string) string { return s.c.key("project", id) }
func (s *ProjectStore) indexKey() string        { return s.c.key("projects") }
func (s *ProjectStore) clientKey(id string) string {
	return s.c.key("client", id, "projects")
}
func (s *ProjectStore) statusKey(status string) string {
	return s.c.key("projects", "status", status)
}

func (s *ProjectStore) Save(ctx context.Context, p *project.Project) (*project.Project, error) {
	id := p.ID.String()
	prev, err := getJSON[projectRecord](ctx, s.c, s.docKey(id))
	if err != nil && !errors.Is(err, ports.ErrRecordNotFound) {
		return nil, fmt.Errorf("load project: %w", err)
	}

	rec := toProjectRecord(p)
	data, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("encode project: %w", err)
	}

	member := redis.Z{Score: score(p.CreatedAt), Member: id}
	_, err = s.c.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, s.docKey(id), data, 0)
		pipe.ZAdd(ctx, s.indexKey(), member)
		if prev != nil && prev.ClientID != rec.ClientID {
			pipe.ZRem(ctx, s.clientKey(prev.ClientID.String()), id)
		}
		if prev != nil && prev.Status != rec.Status {
			pipe.ZRem(ctx, s.statusKey(prev.Status), id)
		}
		pipe.ZAdd(ctx, s.clientKey(rec.ClientID.String()), member)
		pipe.ZAdd(ctx, s.statusKey(rec.Status), member)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("save project: %w", err)
	}
	out := *p
	return &out, nil
}

func (s *ProjectStore) FindByID(ctx context.Context, id uuid.UUID) (*project.Project, error) {
	rec, err := getJSON[projectRecord](ctx, s.c, s.docKey(id.String()))
	if errors.Is(err, ports.ErrRecordNotFound) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("find project: %w", err)
	}
	p := rec.toDomain()
	return &p, nil
}

func (s *ProjectStore) FindAll(ctx context.Context) ([]project.Project, error) {
	return s.list(ctx, s.indexKey())
}

func (s *ProjectStore) FindByStatus(ctx context.Context, status project.Status) ([]project.Project, error) {
	return s.list(ctx, s.statusKey(string(status)))
}

func (s *ProjectStore) FindByClientID(ctx context.Context, clientID uuid.UUID) ([]project.Project, error) {
	return s.list(ctx, s.clientKey(clientID.String()))
}

func (s *ProjectStore) list(ctx context.Context, index string) ([]project.Project, error) {
	recs, err := listJSON[projectRecord](ctx, s.c, index, s.docKey)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	out := make([]project.Project, len(recs))
	for i, r := range recs {
		out[i] = r.toDomain()
	}
	return out, nil
}
