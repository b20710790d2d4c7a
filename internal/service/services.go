// Package service exposes relationship traversal between forum entities on
// top of the repositories.
package service

import (
	"context"

	"qaforum/internal/observability"
	"qaforum/internal/repository"

	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Services bundles the forum services.
type Services struct {
	Users     *UserService
	Questions *QuestionService
	Replies   *ReplyService
}

// NewServices wires every service onto repos.
func NewServices(repos *repository.Repositories) *Services {
	return &Services{
		Users:     NewUserService(repos.Users, repos.Questions, repos.Replies, repos.QuestionFollows, repos.QuestionLikes),
		Questions: NewQuestionService(repos.Questions, repos.Users, repos.Replies, repos.QuestionFollows, repos.QuestionLikes),
		Replies:   NewReplyService(repos.Replies, repos.Users, repos.Questions),
	}
}

func startSpan(ctx context.Context, service, method string) (context.Context, trace.Span) {
	return observability.GetTraceLayer().TraceServiceToRepository(ctx, service, method)
}

// endSpan closes span, marking it failed when err is set.
func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
