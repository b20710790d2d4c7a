package service

import (
	"context"

	"qaforum/internal/models"
	"qaforum/internal/repository"
)

const questionServiceName = "QuestionService"

type QuestionService struct {
	questions repository.QuestionRepository
	users     repository.UserRepository
	replies   repository.ReplyRepository
	follows   repository.QuestionFollowRepository
	likes     repository.QuestionLikeRepository
}

func NewQuestionService(
	questions repository.QuestionRepository,
	users repository.UserRepository,
	replies repository.ReplyRepository,
	follows repository.QuestionFollowRepository,
	likes repository.QuestionLikeRepository,
) *QuestionService {
	return &QuestionService{
		questions: questions,
		users:     users,
		replies:   replies,
		follows:   follows,
		likes:     likes,
	}
}

func (s *QuestionService) All(ctx context.Context) (questions []*models.Question, err error) {
	ctx, span := startSpan(ctx, questionServiceName, "All")
	defer func() { endSpan(span, err) }()
	return s.questions.All(ctx)
}

func (s *QuestionService) FindByID(ctx context.Context, id uint) (question *models.Question, err error) {
	ctx, span := startSpan(ctx, questionServiceName, "FindByID")
	defer func() { endSpan(span, err) }()
	return s.questions.FindByID(ctx, id)
}

func (s *QuestionService) FindByAuthorID(ctx context.Context, authorID uint) (questions []*models.Question, err error) {
	ctx, span := startSpan(ctx, questionServiceName, "FindByAuthorID")
	defer func() { endSpan(span, err) }()
	return s.questions.FindByAuthorID(ctx, authorID)
}

func (s *QuestionService) Save(ctx context.Context, question *models.Question) (err error) {
	ctx, span := startSpan(ctx, questionServiceName, "Save")
	defer func() { endSpan(span, err) }()
	return s.questions.Save(ctx, question)
}

// Author resolves the question's author. A dangling author id is NOT_FOUND.
func (s *QuestionService) Author(ctx context.Context, q *models.Question) (user *models.User, err error) {
	ctx, span := startSpan(ctx, questionServiceName, "Author")
	defer func() { endSpan(span, err) }()
	return s.users.FindByID(ctx, q.AuthorID)
}

func (s *QuestionService) Replies(ctx context.Context, q *models.Question) (replies []*models.Reply, err error) {
	ctx, span := startSpan(ctx, questionServiceName, "Replies")
	defer func() { endSpan(span, err) }()
	return s.replies.FindByQuestionID(ctx, q.ID)
}

func (s *QuestionService) Followers(ctx context.Context, q *models.Question) (users []*models.User, err error) {
	ctx, span := startSpan(ctx, questionServiceName, "Followers")
	defer func() { endSpan(span, err) }()
	return s.follows.FollowersForQuestionID(ctx, q.ID)
}

func (s *QuestionService) Likers(ctx context.Context, q *models.Question) (users []*models.User, err error) {
	ctx, span := startSpan(ctx, questionServiceName, "Likers")
	defer func() { endSpan(span, err) }()
	return s.likes.LikersForQuestionID(ctx, q.ID)
}

func (s *QuestionService) NumLikes(ctx context.Context, q *models.Question) (count int64, err error) {
	ctx, span := startSpan(ctx, questionServiceName, "NumLikes")
	defer func() { endSpan(span, err) }()
	return s.likes.NumLikesForQuestionID(ctx, q.ID)
}

// MostFollowed returns the n most followed questions.
func (s *QuestionService) MostFollowed(ctx context.Context, n int) (questions []*models.Question, err error) {
	ctx, span := startSpan(ctx, questionServiceName, "MostFollowed")
	defer func() { endSpan(span, err) }()
	return s.follows.MostFollowedQuestions(ctx, n)
}

// MostLiked returns the n most liked questions.
func (s *QuestionService) MostLiked(ctx context.Context, n int) (questions []*models.Question, err error) {
	ctx, span := startSpan(ctx, questionServiceName, "MostLiked")
	defer func() { endSpan(span, err) }()
	return s.likes.MostLikedQuestions(ctx, n)
}

func (s *QuestionService) Follow(ctx context.Context, q *models.Question, u *models.User) (err error) {
	ctx, span := startSpan(ctx, questionServiceName, "Follow")
	defer func() { endSpan(span, err) }()
	return s.follows.Add(ctx, q.ID, u.ID)
}

func (s *QuestionService) Unfollow(ctx context.Context, q *models.Question, u *models.User) (err error) {
	ctx, span := startSpan(ctx, questionServiceName, "Unfollow")
	defer func() { endSpan(span, err) }()
	return s.follows.Remove(ctx, q.ID, u.ID)
}

func (s *QuestionService) Like(ctx context.Context, q *models.Question, u *models.User) (err error) {
	ctx, span := startSpan(ctx, questionServiceName, "Like")
	defer func() { endSpan(span, err) }()
	return s.likes.Add(ctx, q.ID, u.ID)
}

func (s *QuestionService) Unlike(ctx context.Context, q *models.Question, u *models.User) (err error) {
	ctx, span := startSpan(ctx, questionServiceName, "Unlike")
	defer func() { endSpan(span, err) }()
	return s.likes.Remove(ctx, q.ID, u.ID)
}
