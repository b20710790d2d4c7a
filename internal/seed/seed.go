package seed

import (
	"context"
	"fmt"
	"log/slog"

	"qaforum/internal/cache"
	"qaforum/internal/models"
	"qaforum/internal/observability"
	"qaforum/internal/repository"

	"go.opentelemetry.io/otel/attribute"
	"gorm.io/gorm"
)

// Options sizes a seeded forum.
type Options struct {
	Users              int
	Questions          int
	RepliesPerQuestion int
	FollowsPerUser     int
	LikesPerUser       int
	// Seed makes the generated content reproducible. Zero picks a random seed.
	Seed int64
}

// DefaultOptions is a small forum suitable for local development.
var DefaultOptions = Options{
	Users:              20,
	Questions:          40,
	RepliesPerQuestion: 4,
	FollowsPerUser:     3,
	LikesPerUser:       5,
}

// Summary counts what SeedForum wrote.
type Summary struct {
	Users     int
	Questions int
	Replies   int
	Follows   int
	Likes     int
}

// Seeder populates and clears the forum tables.
type Seeder struct {
	db      *gorm.DB
	repos   *repository.Repositories
	factory *Factory
	opts    Options
}

// NewSeeder returns a Seeder writing through repositories on db.
func NewSeeder(db *gorm.DB, opts Options) *Seeder {
	repos := repository.NewRepositories(db)
	return &Seeder{
		db:      db,
		repos:   repos,
		factory: NewFactory(repos, opts.Seed),
		opts:    opts,
	}
}

// ClearAll empties every forum table, children first, then drops the cached
// entities so deleted ids read as missing.
func (s *Seeder) ClearAll(ctx context.Context) (err error) {
	span, ctx := observability.NewSpan(ctx, "seed.ClearAll")
	defer func() {
		span.SetError(err)
		span.End()
	}()

	for _, table := range []string{"question_likes", "question_follows", "replies", "questions", "users"} {
		if err := s.db.WithContext(ctx).Exec("DELETE FROM " + table).Error; err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}
	if err := cache.FlushEntities(ctx); err != nil {
		return fmt.Errorf("clear cache: %w", err)
	}
	observability.Logger.InfoContext(ctx, "Forum tables cleared")
	return nil
}

// SeedForum creates users, their questions, threaded replies, follows and likes.
func (s *Seeder) SeedForum(ctx context.Context) (summary *Summary, err error) {
	span, ctx := observability.NewSpan(ctx, "seed.SeedForum")
	defer func() {
		span.SetError(err)
		span.End()
	}()
	span.AddAttributes(
		attribute.Int("seed.users", s.opts.Users),
		attribute.Int("seed.questions", s.opts.Questions),
		attribute.Int64("seed.seed", s.opts.Seed),
	)

	summary = &Summary{}
	if s.opts.Users <= 0 {
		return summary, nil
	}
	faker := s.factory.faker

	users := make([]*models.User, 0, s.opts.Users)
	for i := 0; i < s.opts.Users; i++ {
		u, err := s.factory.CreateUser(ctx)
		if err != nil {
			return summary, fmt.Errorf("create user: %w", err)
		}
		users = append(users, u)
	}
	summary.Users = len(users)

	questions := make([]*models.Question, 0, s.opts.Questions)
	for i := 0; i < s.opts.Questions; i++ {
		author := users[faker.Number(0, len(users)-1)]
		q, err := s.factory.CreateQuestion(ctx, author)
		if err != nil {
			return summary, fmt.Errorf("create question: %w", err)
		}
		questions = append(questions, q)
	}
	summary.Questions = len(questions)

	for _, q := range questions {
		thread := make([]*models.Reply, 0, s.opts.RepliesPerQuestion)
		for i := 0; i < s.opts.RepliesPerQuestion; i++ {
			var parent *models.Reply
			if len(thread) > 0 && faker.Bool() {
				parent = thread[faker.Number(0, len(thread)-1)]
			}
			author := users[faker.Number(0, len(users)-1)]
			r, err := s.factory.CreateReply(ctx, q, author, parent)
			if err != nil {
				return summary, fmt.Errorf("create reply: %w", err)
			}
			thread = append(thread, r)
		}
		summary.Replies += len(thread)
	}

	if len(questions) > 0 {
		for _, u := range users {
			followed := pick(faker.Number(0, len(questions)-1), s.opts.FollowsPerUser, len(questions))
			for _, idx := range followed {
				if err := s.repos.QuestionFollows.Add(ctx, questions[idx].ID, u.ID); err != nil {
					return summary, fmt.Errorf("add follow: %w", err)
				}
			}
			summary.Follows += len(followed)

			liked := pick(faker.Number(0, len(questions)-1), s.opts.LikesPerUser, len(questions))
			for _, idx := range liked {
				if err := s.repos.QuestionLikes.Add(ctx, questions[idx].ID, u.ID); err != nil {
					return summary, fmt.Errorf("add like: %w", err)
				}
			}
			summary.Likes += len(liked)
		}
	}

	span.AddAttributes(
		attribute.Int("seed.replies", summary.Replies),
		attribute.Int("seed.follows", summary.Follows),
		attribute.Int("seed.likes", summary.Likes),
	)
	observability.Logger.InfoContext(ctx, "Forum seeded",
		slog.Int("users", summary.Users),
		slog.Int("questions", summary.Questions),
		slog.Int("replies", summary.Replies),
		slog.Int("follows", summary.Follows),
		slog.Int("likes", summary.Likes),
	)
	return summary, nil
}

// pick returns up to want distinct indexes in [0, total), walking from start.
func pick(start, want, total int) []int {
	if want > total {
		want = total
	}
	if want < 0 {
		want = 0
	}
	out := make([]int, 0, want)
	for i := 0; i < want; i++ {
		out = append(out, (start+i)%total)
	}
	return out
}
