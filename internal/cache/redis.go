package cache

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// Key layout for sync state entries
const (
	lastSyncTimeKey = "football_sync:last_sync:%s:time"
	lastSyncRowsKey = "football_sync:last_sync:%s:rows"
)

// RedisCache stores lightweight worker state (last sync timestamps and
// row counts per operation) so operators can inspect the worker without
// querying Postgres. The worker runs fine without it.
type RedisCache struct {
	client *redis.Client
}

// Config holds Redis connection configuration
type Config struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// NewRedisCache connects to Redis and verifies the connection
func NewRedisCache(cfg Config) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	return &RedisCache{client: client}, nil
}

// Close closes the Redis connection
func (c *RedisCache) Close() {
	if err := c.client.Close(); err != nil {
		log.Warn().Err(err).Msg("Failed to close Redis connection")
	}
}

// RecordSyncResult stores the timestamp and row count of a completed
// sync operation
func (c *RedisCache) RecordSyncResult(ctx context.Context, operation string, at time.Time, rows int) error {
	pipe := c.client.Pipeline()
	pipe.Set(ctx, fmt.Sprintf(lastSyncTimeKey, operation), at.Format(time.RFC3339), 0)
	pipe.Set(ctx, fmt.Sprintf(lastSyncRowsKey, operation), strconv.Itoa(rows), 0)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to record sync result: %w", err)
	}

	return nil
}

// LastSync returns the timestamp and row count of the last recorded
// sync for the given operation. Returns a zero time when nothing has
// been recorded yet.
func (c *RedisCache) LastSync(ctx context.Context, operation string) (time.Time, int, error) {
	raw, err := c.client.Get(ctx, fmt.Sprintf(lastSyncTimeKey, operation)).Result()
	if err == redis.Nil {
		return time.Time{}, 0, nil
	}
	if err != nil {
		return time.Time{}, 0, fmt.Errorf("failed to get last sync time: %w", err)
	}

	at, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, 0, fmt.Errorf("failed to parse last sync time: %w", err)
	}

	rows, err := c.client.Get(ctx, fmt.Sprintf(lastSyncRowsKey, operation)).Int()
	if err != nil && err != redis.Nil {
		return time.Time{}, 0, fmt.Errorf("failed to get last sync rows: %w", err)
	}

	return at, rows, nil
}
