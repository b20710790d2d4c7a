// Command seed fills the forum database with fake users, questions and replies.
package main

import (
	"context"
	"flag"
	"log"

	"qaforum/internal/cache"
	"qaforum/internal/config"
	"qaforum/internal/database"
	"qaforum/internal/observability"
	"qaforum/internal/seed"
)

func main() {
	opts := seed.DefaultOptions
	flag.IntVar(&opts.Users, "users", opts.Users, "Number of users to create")
	flag.IntVar(&opts.Questions, "questions", opts.Questions, "Number of questions to create")
	flag.IntVar(&opts.RepliesPerQuestion, "replies", opts.RepliesPerQuestion, "Replies per question")
	flag.IntVar(&opts.FollowsPerUser, "follows", opts.FollowsPerUser, "Questions followed per user")
	flag.IntVar(&opts.LikesPerUser, "likes", opts.LikesPerUser, "Questions liked per user")
	flag.Int64Var(&opts.Seed, "seed", 0, "Random seed (0 picks one)")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	observability.InitLogger(cfg.Env, cfg.LogLevel)

	shutdown, err := observability.InitTracing(observability.TracingConfig{
		ServiceName:  "qaforum-seed",
		Environment:  cfg.Env,
		Enabled:      cfg.TracingEnabled,
		Exporter:     cfg.TracingExporter,
		OTLPEndpoint: cfg.OTLPEndpoint,
		SamplerRatio: cfg.TracingSamplerRatio,
	})
	if err != nil {
		log.Fatalf("Failed to initialise tracing: %v", err)
	}
	defer shutdown(context.Background())

	cache.InitRedis(cfg.RedisURL)
	cache.SetNamespace(database.CacheNamespace(cfg))
	defer cache.Close()

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	ctx := observability.WithCorrelationID(context.Background(), observability.GenerateCorrelationID())
	s := seed.NewSeeder(db, opts)

	if *shouldClean {
		if err := s.ClearAll(ctx); err != nil {
			log.Fatalf("Cleanup failed: %v", err)
		}
	}

	summary, err := s.SeedForum(ctx)
	if err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
	log.Printf("Seeded %d users, %d questions, %d replies, %d follows, %d likes",
		summary.Users, summary.Questions, summary.Replies, summary.Follows, summary.Likes)
}
