// Package redis provides the read-through StudyGroupCache backed by Redis.
// Groups are stored as JSON under stuti:study-group:{id} with a fixed TTL.
package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/jsamuelsen11/stuti-api/internal/domain/studygroup"
	"github.com/jsamuelsen11/stuti-api/internal/platform/config"
	"github.com/jsamuelsen11/stuti-api/internal/ports"
)

const keyPrefix = "stuti:study-group:"

var (
	_ ports.StudyGroupCache = (*Cache)(nil)
	_ ports.HealthChecker   = (*Cache)(nil)
)

// Cache stores study groups in Redis.
type Cache struct {
	rdb *goredis.Client
	ttl time.Duration
}

// NewClient builds a go-redis client from cfg.
func NewClient(cfg config.CacheConfig) *goredis.Client {
	return goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

// New wraps rdb. Entries expire after ttl.
func New(rdb *goredis.Client, ttl time.Duration) *Cache {
	return &Cache{rdb: rdb, ttl: ttl}
}

// Name identifies the cache in readiness results.
func (c *Cache) Name() string { return "redis" }

// HealthCheck pings the server.
func (c *Cache) HealthCheck(ctx context.Context) error {
	if err := c.rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis: %w", err)
	}
	return nil
}

// Get returns the cached group, or (nil, nil) on a miss.
func (c *Cache) Get(ctx context.Context, id int64) (*studygroup.StudyGroup, error) {
	raw, err := c.rdb.Get(ctx, key(id)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting cached study group %d: %w", id, err)
	}

	g, err := decode(raw)
	if err != nil {
		return nil, fmt.Errorf("decoding cached study group %d: %w", id, err)
	}
	return g, nil
}

// Set stores g under its id.
func (c *Cache) Set(ctx context.Context, g *studygroup.StudyGroup) error {
	raw, err := encode(g)
	if err != nil {
		return fmt.Errorf("encoding study group %d: %w", g.ID, err)
	}
	if err := c.rdb.Set(ctx, key(g.ID), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("caching study group %d: %w", g.ID, err)
	}
	return nil
}

// Evict drops the entry for id. Evicting a missing entry is not an error.
func (c *Cache) Evict(ctx context.Context, id int64) error {
	if err := c.rdb.Del(ctx, key(id)).Err(); err != nil {
		return fmt.Errorf("evicting study group %d: %w", id, err)
	}
	return nil
}

func key(id int64) string {
	return keyPrefix + strconv.FormatInt(id, 10)
}
