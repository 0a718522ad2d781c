package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/brunogodoif/projectmanagement/internal/domain/activity"
	"github.com/brunogodoif/projectmanagement/internal/ports"
)

var _ ports.ActivityRepository = (*ActivityStore)(nil)

// ActivityStore keeps activities under {prefix}:activity:{id} with a global
// index and one sorted set per owning project.
type ActivityStore struct {
	c *Client
}

// NewActivityStore returns an ActivityStore using c.
func NewActivityStore(c *Client) *ActivityStore {
	return &ActivityStore{c: c}
}

func (s *ActivityStore) docKey(id string) string { return s.c.key("activity", id) }
func (s *ActivityStore) indexKey() string        { return s.c.key("activities") }
func (s *ActivityStore) projectKey(id string) string {
	return s.c.key("project", id, "activities")
}

func (s *ActivityStore) Save(ctx context.Context, a *activity.Activity) (*activity.Activity, error) {
	id := a.ID.String()
	prev, err := getJSON[activityRecord](ctx, s.c, s.docKey(id))
	if err != nil && !errors.Is(err, ports.ErrRecordNotFound) {
		return nil, fmt.Errorf("load activity: %w", err)
	}

	data, err := json.Marshal(toActivityRecord(a))
	if err != nil {
		return nil, fmt.Errorf("encode activity: %w", err)
	}

	member := redis.Z{Score: score(a.CreatedAt), Member: id}
	_, err = s.c.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, s.docKey(id), data, 0)
		pipe.ZAdd(ctx, s.indexKey(), member)
		if prev != nil && prev.ProjectID != a.ProjectID {
			pipe.ZRem(ctx, s.projectKey(prev.ProjectID.String()), id)
		}
		pipe.ZAdd(ctx, s.projectKey(a.ProjectID.String()), member)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("save activity: %w", err)
	}
	out := *a
	return &out, nil
}

func (s *ActivityStore) FindByID(ctx context.Context, id uuid.UUID) (*activity.Activity, error) {
	rec, err := getJSON[activityRecord](ctx, s.c, s.docKey(id.String()))
	if errors.Is(err, ports.ErrRecordNotFound) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("find activity: %w", err)
	}
	a := rec.toDomain()
	return &a, nil
}

func (s *ActivityStore) FindAll(ctx context.Context) ([]activity.Activity, error) {
	return s.list(ctx, s.indexKey(), false)
}

func (s *ActivityStore) FindByProjectID(ctx context.Context, projectID uuid.UUID) ([]activity.Activity, error) {
	return s.list(ctx, s.projectKey(projectID.String()), false)
}

func (s *ActivityStore) FindByProjectIDAndCompletedFalse(ctx context.Context, projectID uuid.UUID) ([]activity.Activity, error) {
	return s.list(ctx, s.projectKey(projectID.String()), true)
}

func (s *ActivityStore) DeleteByID(ctx context.Context, id uuid.UUID) error {
	key := s.docKey(id.String())
	prev, err := getJSON[activityRecord](ctx, s.c, key)
	if errors.Is(err, ports.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("load activity: %w", err)
	}

	_, err = s.c.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, key)
		pipe.ZRem(ctx, s.indexKey(), id.String())
		pipe.ZRem(ctx, s.projectKey(prev.ProjectID.String()), id.String())
		return nil
	})
	if err != nil {
		return fmt.Errorf("delete activity: %w", err)
	}
	return nil
}

func (s *ActivityStore) list(ctx context.Context, index string, pendingOnly bool) ([]activity.Activity, error) {
	recs, err := listJSON[activityRecord](ctx, s.c, index, s.docKey)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	out := make([]activity.Activity, 0, len(recs))
	for _, r := range recs {
		if pendingOnly && r.Completed {
			continue
		}
		out = append(out, r.toDomain())
	}
	return out, nil
}
