package cache

import (
	"context"
	"fmt"
	"strings"
	"time"

	"qaforum/internal/observability"
)

const (
	UserKeyPrefix     = "user:%d"
	QuestionKeyPrefix = "question:%d"
	ReplyKeyPrefix    = "reply:%d"
)

const (
	UserTTL     = 10 * time.Minute
	QuestionTTL = 5 * time.Minute
	ReplyTTL    = 2 * time.Minute
)

// entityPrefixes are the key families FlushEntities clears.
var entityPrefixes = []string{"user:", "question:", "reply:"}

const scanBatch = 100

var namespace string

// SetNamespace scopes every entity key to one database, so databases sharing a
// Redis server never read each other's rows. Empty leaves keys unscoped.
func SetNamespace(ns string) {
	namespace = ns
}

// Namespace returns the current key namespace.
func Namespace() string {
	return namespace
}

func scoped(key string) string {
	if namespace == "" {
		return key
	}
	return namespace + ":" + key
}

func UserKey(userID uint) string {
	return scoped(fmt.Sprintf(UserKeyPrefix, userID))
}

func QuestionKey(questionID uint) string {
	return scoped(fmt.Sprintf(QuestionKeyPrefix, questionID))
}

func ReplyKey(replyID uint) string {
	return scoped(fmt.Sprintf(ReplyKeyPrefix, replyID))
}

// Invalidate drops key. Failures only cost a stale read until the TTL expires.
func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

func InvalidateUser(ctx context.Context, userID uint) {
	Invalidate(ctx, UserKey(userID))
}

func InvalidateQuestion(ctx context.Context, questionID uint) {
	Invalidate(ctx, QuestionKey(questionID))
}

func InvalidateReply(ctx context.Context, replyID uint) {
	Invalidate(ctx, ReplyKey(replyID))
}

// InvalidatePrefix deletes every key starting with prefix inside the current
// namespace and returns how many were removed.
func InvalidatePrefix(ctx context.Context, prefix string) (int, error) {
	if client == nil {
		return 0, nil
	}
	ctx, span := observability.GetTraceLayer().TraceCacheOperation(ctx, "scan_del", prefix)
	defer span.End()

	iter := client.Scan(ctx, 0, escapeGlob(scoped(prefix))+"*", scanBatch).Iterator()
	batch := make([]string, 0, scanBatch)
	removed := 0
	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		pipe := client.Pipeline()
		for _, key := range batch {
			pipe.Del(ctx, key)
		}
		if _, err := pipe.Exec(ctx); err != nil {
			return err
		}
		removed += len(batch)
		batch = batch[:0]
		return nil
	}

	for iter.Next(ctx) {
		batch = append(batch, iter.Val())
		if len(batch) == scanBatch {
			if err := flush(); err != nil {
				return removed, err
			}
		}
	}
	if err := iter.Err(); err != nil {
		return removed, err
	}
	return removed, flush()
}

// FlushEntities drops every cached user, question and reply in the current
// namespace. Call it whenever rows are removed behind the repositories' back.
func FlushEntities(ctx context.Context) error {
	for _, prefix := range entityPrefixes {
		if _, err := InvalidatePrefix(ctx, prefix); err != nil {
			return fmt.Errorf("flush %s keys: %w", prefix, err)
		}
	}
	return nil
}

var globReplacer = strings.NewReplacer(`\`, `\\`, `*`, `\*`, `?`, `\?`, `[`, `\[`, `]`, `\]`)

func escapeGlob(s string) string {
	return globReplacer.Replace(s)
}
