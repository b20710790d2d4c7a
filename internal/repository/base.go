// Package repository implements the forum's data access layer. Every
// statement is a fixed SQL string with bound parameters.
package repository

import (
	"context"

	"qaforum/internal/database"
	"qaforum/internal/models"
	"qaforum/internal/observability"

	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"
)

// base carries what every table repository needs.
type base struct {
	db     *gorm.DB
	table  string
	logger *observability.RepoLogger
}

func newBase(db *gorm.DB, table string) base {
	return base{db: db, table: table, logger: observability.NewRepoLogger(table)}
}

func (b *base) trace(ctx context.Context, method string) (context.Context, trace.Span) {
	return observability.GetTraceLayer().TraceRepositoryMethod(ctx, database.Dialect(b.db), b.table, method)
}

// storageError logs err against the table and wraps it as STORAGE_FAILURE.
func (b *base) storageError(ctx context.Context, err error, operation string) error {
	b.logger.LogError(ctx, err, operation)
	observability.RecordErrorInContext(ctx, err)
	return models.NewStorageError(err)
}

// queryOne hydrates the first row of query into a T. No row yields NOT_FOUND
// for resource/key.
func queryOne[T any](ctx context.Context, b *base, operation, resource string, key any, query string, args ...any) (*T, error) {
	var dest T
	res := b.db.WithContext(ctx).Raw(query, args...).Scan(&dest)
	if res.Error != nil {
		return nil, b.storageError(ctx, res.Error, operation)
	}
	if res.RowsAffected == 0 {
		return nil, models.NewNotFoundError(resource, key)
	}
	return &dest, nil
}

// queryMany hydrates every row of query. The result is never nil.
func queryMany[T any](ctx context.Context, b *base, operation, query string, args ...any) ([]*T, error) {
	dest := make([]*T, 0)
	if err := b.db.WithContext(ctx).Raw(query, args...).Scan(&dest).Error; err != nil {
		return nil, b.storageError(ctx, err, operation)
	}
	return dest, nil
}

// execUpdate runs an UPDATE keyed by id. Matching no row is NOT_FOUND, so an
// update never turns into an insert.
func execUpdate(ctx context.Context, b *base, resource string, id uint, query string, args ...any) error {
	res := b.db.WithContext(ctx).Exec(query, args...)
	if res.Error != nil {
		return b.storageError(ctx, res.Error, "update")
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError(resource, id)
	}
	return nil
}

// exec runs a statement whose row count carries no meaning.
func exec(ctx context.Context, b *base, operation, query string, args ...any) error {
	if err := b.db.WithContext(ctx).Exec(query, args...).Error; err != nil {
		return b.storageError(ctx, err, operation)
	}
	return nil
}

// insert creates row through gorm so the storage-assigned id is written back.
func insert(ctx context.Context, b *base, row any) error {
	if err := b.db.WithContext(ctx).Create(row).Error; err != nil {
		return b.storageError(ctx, err, "create")
	}
	return nil
}
