package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/brunogodoif/projectmanagement/internal/domain/client"
	"github.com/brunogodoif/projectmanagement/internal/ports"
)

var _ ports.ClientRepository = (*ClientStore)(nil)

// ClientStore keeps clients under {prefix}:client:{id}, indexed by the
// {prefix}:clients sorted set and the {prefix}:client:email:{email} lookup key.
type ClientStore struct {
	c *Client
}

// NewClientStore returns a ClientStore using c.
func NewClientStore(c *Client) *ClientStore {
	return &ClientStore{c: c}
}

func (s *ClientStore) docKey(id string) string      { return s.c.key("client", id) }
func (s *ClientStore) indexKey() string             { return s.c.key("clients") }
func (s *ClientStore) emailKey(email string) string { return s.c.key("client", "email", email) }

func (s *ClientStore) Save(ctx context.Context, c *client.Client) (*client.Client, error) {
	prev, err := getJSON[clientRecord](ctx, s.c, s.docKey(c.ID.String()))
	if err != nil && !errors.Is(err, ports.ErrRecordNotFound) {
		return nil, fmt.Errorf("load client: %w", err)
	}

	rec := toClientRecord(c)
	rec.Email = client.NormalizeEmail(rec.Email)
	data, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("encode client: %w", err)
	}

	id := c.ID.String()
	_, err = s.c.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, s.docKey(id), data, 0)
		pipe.ZAdd(ctx, s.indexKey(), redis.Z{Score: score(c.CreatedAt), Member: id})
		if prev != nil && prev.Email != rec.Email {
			pipe.Del(ctx, s.emailKey(prev.Email))
		}
		pipe.Set(ctx, s.emailKey(rec.Email), id, 0)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("save client: %w", err)
	}
	out := *c
	return &out, nil
}

func (s *ClientStore) FindByID(ctx context.Context, id uuid.UUID) (*client.Client, error) {
	rec, err := getJSON[clientRecord](ctx, s.c, s.docKey(id.String()))
	if errors.Is(err, ports.ErrRecordNotFound) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("find client: %w", err)
	}
	c := rec.toDomain()
	return &c, nil
}

func (s *ClientStore) FindAll(ctx context.Context) ([]client.Client, error) {
	return s.list(ctx, func(client.Client) bool { return true })
}

func (s *ClientStore) FindAllActive(ctx context.Context) ([]client.Client, error) {
	return s.list(ctx, func(c client.Client) bool { return c.Active })
}

func (s *ClientStore) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	n, err := s.c.Exists(ctx, s.emailKey(client.NormalizeEmail(email))).Result()
	if err != nil {
		return false, fmt.Errorf("check client email: %w", err)
	}
	return n > 0, nil
}

func (s *ClientStore) DeleteByID(ctx context.Context, id uuid.UUID) error {
	key := s.docKey(id.String())
	prev, err := getJSON[clientRecord](ctx, s.c, key)
	if errors.Is(err, ports.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("load client: %w", err)
	}

	_, err = s.c.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, key, s.emailKey(prev.Email))
		pipe.ZRem(ctx, s.indexKey(), id.String())
		return nil
	})
	if err != nil {
		return fmt.Errorf("delete client: %w", err)
	}
	return nil
}

func (s *ClientStore) list(ctx context.Context, keep func(client.Client) bool) ([]client.Client, error) {
	recs, err := listJSON[clientRecord](ctx, s.c, s.indexKey(), s.docKey)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	out := make([]client.Client, 0, len(recs))
	for _, r := range recs {
		if c := r.toDomain(); keep(c) {
			out = append(out, c)
		}
	}
	return out, nil
}
