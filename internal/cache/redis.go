package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"team-form-service/internal/domain"
	"team-form-service/internal/logging"
	"team-form-service/internal/providers"
	"team-form-service/internal/timeutil"
)

const defaultRedisTTL = 6 * time.Hour

// RedisDayCache layers a shared Redis cache under the in-process day cache so
// multiple instances can reuse each other's scoreboard fetches. Redis being
// down degrades to plain pass-through.
type RedisDayCache struct {
	inner  providers.ScoreboardProvider
	client *redis.Client
	logger *slog.Logger
	ttl    time.Duration
}

// NewRedisDayCache wraps the given provider with a Redis-backed day cache.
func NewRedisDayCache(inner providers.ScoreboardProvider, client *redis.Client, logger *slog.Logger, ttl time.Duration) *RedisDayCache {
	if ttl <= 0 {
		ttl = defaultRedisTTL
	}
	return &RedisDayCache{
		inner:  inner,
		client: client,
		logger: logger,
		ttl:    ttl,
	}
}

func (c *RedisDayCache) FetchDay(ctx context.Context, sport domain.Sport, day time.Time) ([]domain.Event, error) {
	key := redisKey(sport, day)

	raw, err := c.client.Get(ctx, key).Bytes()
	if err == nil {
		var events []domain.Event
		if unmarshalErr := json.Unmarshal(raw, &events); unmarshalErr == nil {
			return events, nil
		}
		// Corrupt entry; fall through and overwrite it.
	} else if err != redis.Nil {
		c.logWarn(ctx, "redis day cache read failed", key, err)
	}

	events, fetchErr := c.inner.FetchDay(ctx, sport, day)
	if fetchErr != nil {
		return nil, fetchErr
	}

	if data, marshalErr := json.Marshal(events); marshalErr == nil {
		if setErr := c.client.Set(ctx, key, data, c.ttl).Err(); setErr != nil {
			c.logWarn(ctx, "redis day cache write failed", key, setErr)
		}
	}
	return events, nil
}

func (c *RedisDayCache) logWarn(ctx context.Context, msg, key string, err error) {
	logger := logging.FromContext(ctx, c.logger)
	if logger != nil {
		logger.Warn(msg, slog.String("key", key), slog.Any("error", err))
	}
}

func redisKey(sport domain.Sport, day time.Time) string {
	return fmt.Sprintf("scoreboard:%s:%s", sport, timeutil.CompactDate(day))
}
