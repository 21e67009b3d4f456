package cache

import (
	"context"
	"strconv"

	"github.com/redis/go-redis/v9"
)

const statsKey = "stats"

// Counter families. Step- and level-specific counters append ":" plus the
// variant via Field. None of them ever carries user content.
const (
	StatSessionsStarted = "sessions_started"
	StatStepStarted     = "step_started"
	StatStepCompleted   = "step_completed"
	StatRisk            = "risk"
	StatClarifyRemote   = "clarify_remote"
	StatClarifyFallback = "clarify_fallback"
	StatClarifyCached   = "clarify_cached"
)

// Field joins a counter family with its variant.
func Field(family, variant string) string {
	return family + ":" + variant
}

// StatsCache tracks content-free usage counters in a redis hash.
type StatsCache interface {
	Incr(ctx context.Context, field string) error
	Snapshot(ctx context.Context) (map[string]int64, error)
}

type statsCache struct {
	client *redis.Client
}

// NewStatsCache creates a new stats cache
func NewStatsCache(client *redis.Client) StatsCache {
	return &statsCache{
		client: client,
	}
}

func (c *statsCache) Incr(ctx context.Context, field string) error {
	return c.client.HIncrBy(ctx, statsKey, field, 1).Err()
}

func (c *statsCache) Snapshot(ctx context.Context) (map[string]int64, error) {
	values, err := c.client.HGetAll(ctx, statsKey).Result()
	if err != nil {
		return nil, err
	}

	counters := make(map[string]int64, len(values))
	for field, raw := range values {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			continue
		}
		counters[field] = n
	}
	return counters, nil
}
