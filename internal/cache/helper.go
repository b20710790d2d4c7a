package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"qaforum/internal/observability"

	"github.com/redis/go-redis/v9"
)

// GetJSON reads key into dest. It reports (false, nil) on a miss.
func GetJSON(ctx context.Context, key string, dest any) (bool, error) {
	if client == nil {
		return false, nil
	}
	ctx, span := observability.GetTraceLayer().TraceCacheOperation(ctx, "get", key)
	defer span.End()

	s, err := client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		observability.RecordErrorInContext(ctx, err)
		return false, err
	}
	if err := json.Unmarshal([]byte(s), dest); err != nil {
		return false, err
	}
	return true, nil
}

// SetJSON stores v under key for ttl.
func SetJSON(ctx context.Context, key string, v any, ttl time.Duration) error {
	if client == nil {
		return nil
	}
	ctx, span := observability.GetTraceLayer().TraceCacheOperation(ctx, "set", key)
	defer span.End()

	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	if err := client.Set(ctx, key, b, ttl).Err(); err != nil {
		observability.RecordErrorInContext(ctx, err)
		return err
	}
	return nil
}

// Aside serves key from Redis when present; otherwise fetch fills dest and the
// result is stored for ttl. Redis failures are logged and fall through to fetch,
// so a cache outage never fails a lookup. Errors from fetch are returned as is
// and nothing is cached.
func Aside(ctx context.Context, key string, dest any, ttl time.Duration, fetch func() error) error {
	found, err := GetJSON(ctx, key, dest)
	if err != nil {
		observability.Logger.WarnContext(ctx, "cache read failed", slog.String("key", key), slog.String("error", err.Error()))
	}
	if found {
		return nil
	}

	if err := fetch(); err != nil {
		return err
	}

	if err := SetJSON(ctx, key, dest, ttl); err != nil {
		observability.Logger.WarnContext(ctx, "cache write failed", slog.String("key", key), slog.String("error", err.Error()))
	}
	return nil
}
