package cache

//go:generate go run go.uber.org/mock/mockgen -source=./cache.go -destination=./mocks/cache_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"
	"todolist/infras/otel"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	otelScopeName         = "cache"
	otelCacheKeyAttribute = "cache.key"
)

// Counter is a fixed-window request counter kept in Redis.
type Counter interface {
	// Increment bumps key and returns the new count together with the time
	// left in the window. The window starts on the first increment.
	Increment(ctx context.Context, key string, window time.Duration) (count int64, ttl time.Duration, err error)
	Ping(ctx context.Context) error
}

type redisCounter struct {
	client *redis.Client
	otel   otel.Otel
}

func NewRedisCounter(client *redis.Client, ot otel.Otel) Counter {
	return &redisCounter{
		client: client,
		otel:   ot,
	}
}

// Increment implements Counter.
func (c *redisCounter) Increment(ctx context.Context, key string, window time.Duration) (count int64, ttl time.Duration, err error) {
	ctx, scope := c.otel.NewScope(ctx, otelScopeName, otelScopeName+".Increment")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(otelCacheKeyAttribute, key)

	var (
		incr   *redis.IntCmd
		ttlCmd *redis.DurationCmd
	)

	_, err = c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, key)
		pipe.ExpireNX(ctx, key, window)
		ttlCmd = pipe.TTL(ctx, key)

		return nil
	})
	if err != nil {
		log.Error().Err(err).Str("key", key).Str("op", "Increment").Msg("failed to increment counter")

		return 0, 0, fmt.Errorf("failed to increment cache value: %w", err)
	}

	ttl = ttlCmd.Val()
	if ttl < 0 {
		ttl = window
	}

	return incr.Val(), ttl, nil
}

// Ping implements Counter.
func (c *redisCounter) Ping(ctx context.Context) (err error) {
	ctx, scope := c.otel.NewScope(ctx, otelScopeName, otelScopeName+".Ping")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = c.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("failed to ping cache: %w", err)
	}

	return nil
}
