// Package redis implements the repository ports on Redis. Each entity is a
// JSON document under its own key; secondary lookups are sorted sets scored
// by creation time, so listings come back oldest first.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/brunogodoif/projectmanagement/internal/platform/config"
	"github.com/brunogodoif/projectmanagement/internal/ports"
)

var _ ports.HealthChecker = (*Client)(nil)

// Client wraps the go-redis client with the key prefix shared by all stores.
type Client struct {
	*redis.Client
	prefix string
}

// Open parses cfg.URL, applies the pool overrides and verifies the
// connection with a ping.
func Open(ctx context.Context, cfg config.RedisConfig) (*Client, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parse redis URL: %w", err)
	}
	if cfg.PoolSize > 0 {
		opts.PoolSize = cfg.PoolSize
	}
	if cfg.DialTimeout > 0 {
		opts.DialTimeout = cfg.DialTimeout
	}
	if cfg.ReadTimeout > 0 {
		opts.ReadTimeout = cfg.ReadTimeout
	}
	if cfg.WriteTimeout > 0 {
		opts.WriteTimeout = cfg.WriteTimeout
	}

	rdb := redis.NewClient(opts)
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}
	return NewClient(rdb, cfg.KeyPrefix), nil
}

// NewClient wraps an existing go-redis client.
func NewClient(rdb *redis.Client, prefix string) *Client {
	return &Client{Client: rdb, prefix: prefix}
}

// Name implements [ports.HealthChecker].
func (c *Client) Name() string { return "redis" }

// HealthCheck implements [ports.HealthChecker].
func (c *Client) HealthCheck(ctx context.Context) error {
	return c.Ping(ctx).Err()
}

func (c *Client) key(parts ...string) string {
	if c.prefix == "" {
		return strings.Join(parts, ":")
	}
	return c.prefix + ":" + strings.Join(parts, ":")
}

// getJSON loads one document, mapping a missing key to ports.ErrRecordNotFound.
func getJSON[R any](ctx context.Context, c *Client, key string) (*R, error) {
	data, err := c.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ports.ErrRecordNotFound
	}
	if err != nil {
		return nil, err
	}
	var r R
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("decode %s: %w", key, err)
	}
	return &r, nil
}

// listJSON loads every document whose id is a member of the sorted set at
// index. Members whose document vanished in between are skipped.
func listJSON[R any](ctx context.Context, c *Client, index string, docKey func(id string) string) ([]R, error) {
	ids, err := c.ZRange(ctx, index, 0, -1).Result()
	if err != nil {
		return nil, err
	}
	out := make([]R, 0, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = docKey(id)
	}
	vals, err := c.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}
	for i, v := range vals {
		s, ok := v.(string)
		if !ok {
			continue
		}
		var r R
		if err := json.Unmarshal([]byte(s), &r); err != nil {
			return nil, fmt.Errorf("decode %s: %w", keys[i], err)
		}
		out = append(out, r)
	}
	return out, nil
}
