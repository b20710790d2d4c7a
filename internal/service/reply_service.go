package service

import (
	"context"
	"fmt"

	"qaforum/internal/models"
	"qaforum/internal/repository"
)

const replyServiceName = "ReplyService"

type ReplyService struct {
	replies   repository.ReplyRepository
	users     repository.UserRepository
	questions repository.QuestionRepository
}

func NewReplyService(
	replies repository.ReplyRepository,
	users repository.UserRepository,
	questions repository.QuestionRepository,
) *ReplyService {
	return &ReplyService{
		replies:   replies,
		users:     users,
		questions: questions,
	}
}

func (s *ReplyService) All(ctx context.Context) (replies []*models.Reply, err error) {
	ctx, span := startSpan(ctx, replyServiceName, "All")
	defer func() { endSpan(span, err) }()
	return s.replies.All(ctx)
}

func (s *ReplyService) FindByID(ctx context.Context, id uint) (reply *models.Reply, err error) {
	ctx, span := startSpan(ctx, replyServiceName, "FindByID")
	defer func() { endSpan(span, err) }()
	return s.replies.FindByID(ctx, id)
}

func (s *ReplyService) FindByUserID(ctx context.Context, userID uint) (replies []*models.Reply, err error) {
	ctx, span := startSpan(ctx, replyServiceName, "FindByUserID")
	defer func() { endSpan(span, err) }()
	return s.replies.FindByUserID(ctx, userID)
}

func (s *ReplyService) FindByQuestionID(ctx context.Context, questionID uint) (replies []*models.Reply, err error) {
	ctx, span := startSpan(ctx, replyServiceName, "FindByQuestionID")
	defer func() { endSpan(span, err) }()
	return s.replies.FindByQuestionID(ctx, questionID)
}

func (s *ReplyService) Save(ctx context.Context, reply *models.Reply) (err error) {
	ctx, span := startSpan(ctx, replyServiceName, "Save")
	defer func() { endSpan(span, err) }()
	return s.replies.Save(ctx, reply)
}

// Author resolves the user who wrote r.
func (s *ReplyService) Author(ctx context.Context, r *models.Reply) (user *models.User, err error) {
	ctx, span := startSpan(ctx, replyServiceName, "Author")
	defer func() { endSpan(span, err) }()
	return s.users.FindByID(ctx, r.UserID)
}

// Question resolves the question r answers.
func (s *ReplyService) Question(ctx context.Context, r *models.Reply) (question *models.Question, err error) {
	ctx, span := startSpan(ctx, replyServiceName, "Question")
	defer func() { endSpan(span, err) }()
	return s.questions.FindByID(ctx, r.QuestionID)
}

// ParentReply resolves the reply r answers. A root reply has no parent and
// yields NOT_FOUND.
func (s *ReplyService) ParentReply(ctx context.Context, r *models.Reply) (parent *models.Reply, err error) {
	ctx, span := startSpan(ctx, replyServiceName, "ParentReply")
	defer func() { endSpan(span, err) }()

	if r.IsRoot() {
		return nil, models.NewNotFoundError("Reply", fmt.Sprintf("parent of reply %d", r.ID))
	}
	return s.replies.FindByID(ctx, *r.ParentID)
}

// ChildReplies returns the replies on r's question whose parent is r. A parent
// id that names some other reply, or none at all, simply excludes the row, so
// a dangling parent never raises. A transient reply has no children.
func (s *ReplyService) ChildReplies(ctx context.Context, r *models.Reply) (children []*models.Reply, err error) {
	ctx, span := startSpan(ctx, replyServiceName, "ChildReplies")
	defer func() { endSpan(span, err) }()

	children = []*models.Reply{}
	if !r.IsPersisted() {
		return children, nil
	}

	siblings, err := s.replies.FindByQuestionID(ctx, r.QuestionID)
	if err != nil {
		return nil, err
	}
	for _, reply := range siblings {
		if reply.ParentID != nil && *reply.ParentID == r.ID {
			children = append(children, reply)
		}
	}
	return children, nil
}
