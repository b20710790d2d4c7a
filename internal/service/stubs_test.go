package service

import (
	"context"

	"qaforum/internal/models"
)

// userRepoStub is a stub for repository.UserRepository.
type userRepoStub struct {
	allFn          func(context.Context) ([]*models.User, error)
	findByIDFn     func(context.Context, uint) (*models.User, error)
	findByNameFn   func(context.Context, string, string) (*models.User, error)
	saveFn         func(context.Context, *models.User) error
	averageKarmaFn func(context.Context, uint) (float64, error)
}

func (s *userRepoStub) All(ctx context.Context) ([]*models.User, error) { return s.allFn(ctx) }
func (s *userRepoStub) FindByID(ctx context.Context, id uint) (*models.User, error) {
	return s.findByIDFn(ctx, id)
}
func (s *userRepoStub) FindByName(ctx context.Context, fname, lname string) (*models.User, error) {
	return s.findByNameFn(ctx, fname, lname)
}
func (s *userRepoStub) Save(ctx context.Context, u *models.User) error { return s.saveFn(ctx, u) }
func (s *userRepoStub) AverageKarma(ctx context.Context, userID uint) (float64, error) {
	return s.averageKarmaFn(ctx, userID)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		allFn:          func(context.Context) ([]*models.User, error) { return []*models.User{}, nil },
		findByIDFn:     func(_ context.Context, id uint) (*models.User, error) { return &models.User{ID: id}, nil },
		findByNameFn:   func(context.Context, string, string) (*models.User, error) { return &models.User{}, nil },
		saveFn:         func(context.Context, *models.User) error { return nil },
		averageKarmaFn: func(context.Context, uint) (float64, error) { return 0, nil },
	}
}

// questionRepoStub is a stub for repository.QuestionRepository.
type questionRepoStub struct {
	allFn            func(context.Context) ([]*models.Question, error)
	findByIDFn       func(context.Context, uint) (*models.Question, error)
	findByAuthorIDFn func(context.Context, uint) ([]*models.Question, error)
	saveFn           func(context.Context, *models.Question) error
}

func (s *questionRepoStub) All(ctx context.Context) ([]*models.Question, error) { return s.allFn(ctx) }
func (s *questionRepoStub) FindByID(ctx context.Context, id uint) (*models.Question, error) {
	return s.findByIDFn(ctx, id)
}
func (s *questionRepoStub) FindByAuthorID(ctx context.Context, authorID uint) ([]*models.Question, error) {
	return s.findByAuthorIDFn(ctx, authorID)
}
func (s *questionRepoStub) Save(ctx context.Context, q *models.Question) error { return s.saveFn(ctx, q) }

func noopQuestionRepo() *questionRepoStub {
	return &questionRepoStub{
		allFn:            func(context.Context) ([]*models.Question, error) { return []*models.Question{}, nil },
		findByIDFn:       func(_ context.Context, id uint) (*models.Question, error) { return &models.Question{ID: id}, nil },
		findByAuthorIDFn: func(context.Context, uint) ([]*models.Question, error) { return []*models.Question{}, nil },
		saveFn:           func(context.Context, *models.Question) error { return nil },
	}
}

// replyRepoStub is a stub for repository.ReplyRepository.
type replyRepoStub struct {
	allFn              func(context.Context) ([]*models.Reply, error)
	findByIDFn         func(context.Context, uint) (*models.Reply, error)
	findByUserIDFn     func(context.Context, uint) ([]*models.Reply, error)
	findByQuestionIDFn func(context.Context, uint) ([]*models.Reply, error)
	saveFn             func(context.Context, *models.Reply) error
}

func (s *replyRepoStub) All(ctx context.Context) ([]*models.Reply, error) { return s.allFn(ctx) }
func (s *replyRepoStub) FindByID(ctx context.Context, id uint) (*models.Reply, error) {
	return s.findByIDFn(ctx, id)
}
func (s *replyRepoStub) FindByUserID(ctx context.Context, userID uint) ([]*models.Reply, error) {
	return s.findByUserIDFn(ctx, userID)
}
func (s *replyRepoStub) FindByQuestionID(ctx context.Context, questionID uint) ([]*models.Reply, error) {
	return s.findByQuestionIDFn(ctx, questionID)
}
func (s *replyRepoStub) Save(ctx context.Context, r *models.Reply) error { return s.saveFn(ctx, r) }

func noopReplyRepo() *replyRepoStub {
	return &replyRepoStub{
		allFn:              func(context.Context) ([]*models.Reply, error) { return []*models.Reply{}, nil },
		findByIDFn:         func(_ context.Context, id uint) (*models.Reply, error) { return &models.Reply{ID: id}, nil },
		findByUserIDFn:     func(context.Context, uint) ([]*models.Reply, error) { return []*models.Reply{}, nil },
		findByQuestionIDFn: func(context.Context, uint) ([]*models.Reply, error) { return []*models.Reply{}, nil },
		saveFn:             func(context.Context, *models.Reply) error { return nil },
	}
}

// associationCall records the ids an Add or Remove stub received.
type associationCall struct {
	questionID uint
	userID     uint
}

// followRepoStub is a stub for repository.QuestionFollowRepository.
type followRepoStub struct {
	followersFn    func(context.Context, uint) ([]*models.User, error)
	followedFn     func(context.Context, uint) ([]*models.Question, error)
	mostFollowedFn func(context.Context, int) ([]*models.Question, error)
	added          []associationCall
	removed        []associationCall
}

func (s *followRepoStub) All(context.Context) ([]*models.QuestionFollow, error) {
	return []*models.QuestionFollow{}, nil
}
func (s *followRepoStub) FollowersForQuestionID(ctx context.Context, questionID uint) ([]*models.User, error) {
	return s.followersFn(ctx, questionID)
}
func (s *followRepoStub) FollowedQuestionsForUserID(ctx context.Context, userID uint) ([]*models.Question, error) {
	return s.followedFn(ctx, userID)
}
func (s *followRepoStub) MostFollowedQuestions(ctx context.Context, n int) ([]*models.Question, error) {
	return s.mostFollowedFn(ctx, n)
}
func (s *followRepoStub) Add(_ context.Context, questionID, userID uint) error {
	s.added = append(s.added, associationCall{questionID, userID})
	return nil
}
func (s *followRepoStub) Remove(_ context.Context, questionID, userID uint) error {
	s.removed = append(s.removed, associationCall{questionID, userID})
	return nil
}

func noopFollowRepo() *followRepoStub {
	return &followRepoStub{
		followersFn:    func(context.Context, uint) ([]*models.User, error) { return []*models.User{}, nil },
		followedFn:     func(context.Context, uint) ([]*models.Question, error) { return []*models.Question{}, nil },
		mostFollowedFn: func(context.Context, int) ([]*models.Question, error) { return []*models.Question{}, nil },
	}
}

// likeRepoStub is a stub for repository.QuestionLikeRepository.
type likeRepoStub struct {
	likersFn    func(context.Context, uint) ([]*models.User, error)
	numLikesFn  func(context.Context, uint) (int64, error)
	likedFn     func(context.Context, uint) ([]*models.Question, error)
	mostLikedFn func(context.Context, int) ([]*models.Question, error)
	added       []associationCall
	removed     []associationCall
}

func (s *likeRepoStub) All(context.Context) ([]*models.QuestionLike, error) {
	return []*models.QuestionLike{}, nil
}
func (s *likeRepoStub) LikersForQuestionID(ctx context.Context, questionID uint) ([]*models.User, error) {
	return s.likersFn(ctx, questionID)
}
func (s *likeRepoStub) NumLikesForQuestionID(ctx context.Context, questionID uint) (int64, error) {
	return s.numLikesFn(ctx, questionID)
}
func (s *likeRepoStub) LikedQuestionsForUserID(ctx context.Context, userID uint) ([]*models.Question, error) {
	return s.likedFn(ctx, userID)
}
func (s *likeRepoStub) MostLikedQuestions(ctx context.Context, n int) ([]*models.Question, error) {
	return s.mostLikedFn(ctx, n)
}
func (s *likeRepoStub) Add(_ context.Context, questionID, userID uint) error {
	s.added = append(s.added, associationCall{questionID, userID})
	return nil
}
func (s *likeRepoStub) Remove(_ context.Context, questionID, userID uint) error {
	s.removed = append(s.removed, associationCall{questionID, userID})
	return nil
}

func noopLikeRepo() *likeRepoStub {
	return &likeRepoStub{
		likersFn:    func(context.Context, uint) ([]*models.User, error) { return []*models.User{}, nil },
		numLikesFn:  func(context.Context, uint) (int64, error) { return 0, nil },
		likedFn:     func(context.Context, uint) ([]*models.Question, error) { return []*models.Question{}, nil },
		mostLikedFn: func(context.Context, int) ([]*models.Question, error) { return []*models.Question{}, nil },
	}
}

func uintPtr(v uint) *uint { return &v }
