// Command migrate runs schema operations for the forum database.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strconv"
	"strings"

	"qaforum/internal/cache"
	"qaforum/internal/config"
	"qaforum/internal/database"
	"qaforum/internal/observability"

	"go.opentelemetry.io/otel/attribute"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func usage() error {
	return fmt.Errorf("usage: go run ./cmd/migrate <up|status|down> [version]")
}

func run() (err error) {
	flag.Parse()
	if flag.NArg() < 1 {
		return usage()
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	observability.InitLogger(cfg.Env, cfg.LogLevel)

	shutdown, err := observability.InitTracing(observability.TracingConfig{
		ServiceName:  "qaforum-migrate",
		Environment:  cfg.Env,
		Enabled:      cfg.TracingEnabled,
		Exporter:     cfg.TracingExporter,
		OTLPEndpoint: cfg.OTLPEndpoint,
		SamplerRatio: cfg.TracingSamplerRatio,
	})
	if err != nil {
		return fmt.Errorf("init tracing: %w", err)
	}
	defer shutdown(context.Background())

	db, err := database.ConnectWithOptions(cfg, database.ConnectOptions{ApplySchema: false})
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer database.Close(db)

	ctx := observability.WithCorrelationID(context.Background(), observability.GenerateCorrelationID())
	cmd := strings.ToLower(strings.TrimSpace(flag.Arg(0)))

	span, ctx := observability.NewSpan(ctx, "migrate."+cmd)
	span.AddAttributes(
		attribute.String("migrate.command", cmd),
		attribute.String("db.system", database.Dialect(db)),
	)
	defer func() {
		span.SetError(err)
		span.End()
	}()

	switch cmd {
	case "up":
		if err := database.RunMigrations(ctx, db); err != nil {
			return fmt.Errorf("sql migrations failed: %w", err)
		}
		log.Println("sql migrations applied")
	case "status":
		status, err := database.GetSchemaStatus(ctx, db)
		if err != nil {
			return fmt.Errorf("schema status failed: %w", err)
		}
		log.Printf("dialect=%s applied=%d pending=%d", status.Dialect, len(status.AppliedVersions), len(status.PendingMigrations))
		for _, m := range status.PendingMigrations {
			log.Printf("pending: %s", m.String())
		}
	case "down":
		if flag.NArg() < 2 {
			return fmt.Errorf("usage: go run ./cmd/migrate down <version>")
		}
		version, err := strconv.Atoi(flag.Arg(1))
		if err != nil {
			return fmt.Errorf("invalid version %q: %w", flag.Arg(1), err)
		}
		span.AddAttributes(attribute.Int("migrate.version", version))
		if err := database.RollbackMigration(ctx, db, version); err != nil {
			return fmt.Errorf("rollback failed: %w", err)
		}
		// Dropped tables take their rows with them; cached copies must go too.
		cache.InitRedis(cfg.RedisURL)
		cache.SetNamespace(database.CacheNamespace(cfg))
		defer cache.Close()
		if err := cache.FlushEntities(ctx); err != nil {
			return fmt.Errorf("flush cache: %w", err)
		}
		log.Printf("rolled back migration %d", version)
	default:
		return usage()
	}

	return nil
}
