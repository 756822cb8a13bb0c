package redis

import (
	"context"
	"net"
	"time"
	"todolist/config"

	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	dialTimeout = 5 * time.Second
	// the limiter lets requests through on cache errors, so a slow redis
	// must not hold requests up for long
	commandTimeout = 500 * time.Millisecond
)

// New builds the client backing the rate limiter. The server is only
// required to answer when the limiter is enabled.
func New(cfg *config.Config) *goRedis.Client {
	primary := cfg.Cache.Redis.Primary

	client := goRedis.NewClient(&goRedis.Options{
		Addr:         net.JoinHostPort(primary.Host, primary.Port),
		Password:     primary.Password,
		DB:           primary.DB,
		DialTimeout:  dialTimeout,
		ReadTimeout:  commandTimeout,
		WriteTimeout: commandTimeout,
	})

	if !cfg.App.RateLimiter.Enable {
		return client
	}

	ctx, cancel := context.WithTimeout(context.Background(), dialTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatal().Err(err).Str("host", primary.Host).Msg("Failed to connect to Redis")
	}

	log.Info().Int("db", primary.DB).Str("host", primary.Host).Str("port", primary.Port).Msg("Connected to Redis")

	return client
}
