package service

import (
	"context"

	"qaforum/internal/models"
	"qaforum/internal/repository"
)

const userServiceName = "UserService"

type UserService struct {
	users     repository.UserRepository
	questions repository.QuestionRepository
	replies   repository.ReplyRepository
	follows   repository.QuestionFollowRepository
	likes     repository.QuestionLikeRepository
}

func NewUserService(
	users repository.UserRepository,
	questions repository.QuestionRepository,
	replies repository.ReplyRepository,
	follows repository.QuestionFollowRepository,
	likes repository.QuestionLikeRepository,
) *UserService {
	return &UserService{
		users:     users,
		questions: questions,
		replies:   replies,
		follows:   follows,
		likes:     likes,
	}
}

func (s *UserService) All(ctx context.Context) (users []*models.User, err error) {
	ctx, span := startSpan(ctx, userServiceName, "All")
	defer func() { endSpan(span, err) }()
	return s.users.All(ctx)
}

func (s *UserService) FindByID(ctx context.Context, id uint) (user *models.User, err error) {
	ctx, span := startSpan(ctx, userServiceName, "FindByID")
	defer func() { endSpan(span, err) }()
	return s.users.FindByID(ctx, id)
}

func (s *UserService) FindByName(ctx context.Context, fname, lname string) (user *models.User, err error) {
	ctx, span := startSpan(ctx, userServiceName, "FindByName")
	defer func() { endSpan(span, err) }()
	return s.users.FindByName(ctx, fname, lname)
}

func (s *UserService) Save(ctx context.Context, user *models.User) (err error) {
	ctx, span := startSpan(ctx, userServiceName, "Save")
	defer func() { endSpan(span, err) }()
	return s.users.Save(ctx, user)
}

// AuthoredQuestions returns the questions whose author is u.
func (s *UserService) AuthoredQuestions(ctx context.Context, u *models.User) (questions []*models.Question, err error) {
	ctx, span := startSpan(ctx, userServiceName, "AuthoredQuestions")
	defer func() { endSpan(span, err) }()
	return s.questions.FindByAuthorID(ctx, u.ID)
}

// AuthoredReplies returns the replies written by u.
func (s *UserService) AuthoredReplies(ctx context.Context, u *models.User) (replies []*models.Reply, err error) {
	ctx, span := startSpan(ctx, userServiceName, "AuthoredReplies")
	defer func() { endSpan(span, err) }()
	return s.replies.FindByUserID(ctx, u.ID)
}

func (s *UserService) FollowedQuestions(ctx context.Context, u *models.User) (questions []*models.Question, err error) {
	ctx, span := startSpan(ctx, userServiceName, "FollowedQuestions")
	defer func() { endSpan(span, err) }()
	return s.follows.FollowedQuestionsForUserID(ctx, u.ID)
}

func (s *UserService) LikedQuestions(ctx context.Context, u *models.User) (questions []*models.Question, err error) {
	ctx, span := startSpan(ctx, userServiceName, "LikedQuestions")
	defer func() { endSpan(span, err) }()
	return s.likes.LikedQuestionsForUserID(ctx, u.ID)
}

// AverageKarma is likes received per authored question; 0 without questions.
func (s *UserService) AverageKarma(ctx context.Context, u *models.User) (karma float64, err error) {
	ctx, span := startSpan(ctx, userServiceName, "AverageKarma")
	defer func() { endSpan(span, err) }()
	return s.users.AverageKarma(ctx, u.ID)
}
