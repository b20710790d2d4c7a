// Package cache provides a Redis cache-aside layer for entity lookups.
// Every helper is a no-op while no client is configured.
package cache

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"qaforum/internal/observability"

	"github.com/redis/go-redis/v9"
	"github.com/redis/go-redis/v9/maintnotifications"
)

var client *redis.Client

type metricsHook struct{}

func (h metricsHook) DialHook(next redis.DialHook) redis.DialHook {
	return next
}

func (h metricsHook) ProcessHook(next redis.ProcessHook) redis.ProcessHook {
	return func(ctx context.Context, cmd redis.Cmder) error {
		err := next(ctx, cmd)
		if err != nil && !errors.Is(err, redis.Nil) {
			observability.RedisErrors.WithLabelValues(cmd.Name()).Inc()
		}
		return err
	}
}

func (h metricsHook) ProcessPipelineHook(next redis.ProcessPipelineHook) redis.ProcessPipelineHook {
	return func(ctx context.Context, cmds []redis.Cmder) error {
		err := next(ctx, cmds)
		if err != nil && !errors.Is(err, redis.Nil) {
			observability.RedisErrors.WithLabelValues("pipeline").Inc()
		}
		return err
	}
}

// InitRedis connects to url, which may be a redis:// URL or a bare host:port.
// An empty url, a malformed url or a failed ping leaves caching disabled.
func InitRedis(url string) {
	client = nil
	if strings.TrimSpace(url) == "" {
		observability.Logger.Info("Redis not configured, lookups will not be cached")
		return
	}

	var opts *redis.Options
	if strings.Contains(url, "://") {
		parsed, err := redis.ParseURL(url)
		if err != nil {
			observability.Logger.Warn("Invalid REDIS_URL, continuing without cache", slog.String("error", err.Error()))
			return
		}
		opts = parsed
	} else {
		opts = &redis.Options{Addr: url}
	}
	// Plain Redis servers reject the maintenance notifications handshake.
	opts.MaintNotificationsConfig = &maintnotifications.Config{Mode: maintnotifications.ModeDisabled}

	c := redis.NewClient(opts)
	c.AddHook(metricsHook{})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := c.Ping(ctx).Err(); err != nil {
		observability.Logger.Warn("Redis unreachable, continuing without cache", slog.String("error", err.Error()))
		_ = c.Close()
		return
	}

	client = c
	observability.Logger.Info("Redis connected")
}

// GetClient returns the current Redis client, or nil when caching is disabled.
func GetClient() *redis.Client {
	return client
}

// SetClient replaces the Redis client. Passing nil disables caching.
func SetClient(c *redis.Client) {
	client = c
}

// Close releases the Redis client and disables caching.
func Close() error {
	if client == nil {
		return nil
	}
	err := client.Close()
	client = nil
	return err
}
