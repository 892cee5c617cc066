package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/conectar/clients-api/internal/core/ports"
)

// StatsCache caches per-owner client stats in Redis.
// Key format: stats:<owner_id>, JSON value.
type StatsCache struct {
	client *redis.Client
}

// NewStatsCache creates a StatsCache wrapping the given Redis client.
func NewStatsCache(client *redis.Client) *StatsCache {
	return &StatsCache{client: client}
}

// Get returns the cached stats, or (nil, nil) on a miss.
func (c *StatsCache) Get(ctx context.Context, ownerID string) (*ports.ClientStats, error) {
	raw, err := c.client.Get(ctx, c.key(ownerID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("stats cache get: %w", err)
	}

	var stats ports.ClientStats
	if err := json.Unmarshal(raw, &stats); err != nil {
		return nil, fmt.Errorf("stats cache decode: %w", err)
	}
	return &stats, nil
}

// Set stores the stats with the given TTL.
func (c *StatsCache) Set(ctx context.Context, ownerID string, stats *ports.ClientStats, ttl time.Duration) error {
	raw, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("stats cache encode: %w", err)
	}
	return c.client.Set(ctx, c.key(ownerID), raw, ttl).Err()
}

// Invalidate drops the cached entry for ownerID.
func (c *StatsCache) Invalidate(ctx context.Context, ownerID string) error {
	return c.client.Del(ctx, c.key(ownerID)).Err()
}

func (c *StatsCache) key(ownerID string) string {
	return "stats:" + ownerID
}
