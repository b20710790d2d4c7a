package repository

import (
	"context"

	"qaforum/internal/models"

	"gorm.io/gorm"
)

const (
	questionLikesTable = "question_likes"

	likeSelectAll    = `SELECT question_id, user_id FROM question_likes`
	likeSelectLikers = `
		SELECT users.id, users.fname, users.lname
		FROM question_likes
		JOIN users ON users.id = question_likes.user_id
		WHERE question_likes.question_id = ?
		ORDER BY users.id`
	likeCountForQuestion = `SELECT COUNT(*) FROM question_likes WHERE question_id = ?`
	likeSelectLiked      = `
		SELECT ` + questionColumns + `
		FROM question_likes
		JOIN questions ON questions.id = question_likes.question_id
		WHERE question_likes.user_id = ?
		ORDER BY questions.id`
	likeSelectMostLiked = `
		SELECT ` + questionColumns + `
		FROM questions
		LEFT OUTER JOIN question_likes ON questions.id = question_likes.question_id
		GROUP BY ` + questionColumns + `
		ORDER BY COUNT(question_likes.user_id) DESC, questions.id ASC
		LIMIT ?`
	likeInsert = `INSERT INTO question_likes (question_id, user_id) VALUES (?, ?) ON CONFLICT (question_id, user_id) DO NOTHING`
	likeDelete = `DELETE FROM question_likes WHERE question_id = ? AND user_id = ?`
)

// QuestionLikeRepository reads and writes the users-like-questions association.
type QuestionLikeRepository interface {
	All(ctx context.Context) ([]*models.QuestionLike, error)
	LikersForQuestionID(ctx context.Context, questionID uint) ([]*models.User, error)
	NumLikesForQuestionID(ctx context.Context, questionID uint) (int64, error)
	LikedQuestionsForUserID(ctx context.Context, userID uint) ([]*models.Question, error)
	MostLikedQuestions(ctx context.Context, n int) ([]*models.Question, error)
	Add(ctx context.Context, questionID, userID uint) error
	Remove(ctx context.Context, questionID, userID uint) error
}

type questionLikeRepository struct {
	base
}

// NewQuestionLikeRepository returns a new QuestionLikeRepository implementation.
func NewQuestionLikeRepository(db *gorm.DB) QuestionLikeRepository {
	return &questionLikeRepository{base: newBase(db, questionLikesTable)}
}

func (r *questionLikeRepository) All(ctx context.Context) ([]*models.QuestionLike, error) {
	ctx, span := r.trace(ctx, "All")
	defer span.End()
	return queryMany[models.QuestionLike](ctx, &r.base, "all", likeSelectAll)
}

func (r *questionLikeRepository) LikersForQuestionID(ctx context.Context, questionID uint) ([]*models.User, error) {
	ctx, span := r.trace(ctx, "LikersForQuestionID")
	defer span.End()
	return queryMany[models.User](ctx, &r.base, "likers_for_question_id", likeSelectLikers, questionID)
}

func (r *questionLikeRepository) NumLikesForQuestionID(ctx context.Context, questionID uint) (int64, error) {
	ctx, span := r.trace(ctx, "NumLikesForQuestionID")
	defer span.End()

	var count int64
	if err := r.db.WithContext(ctx).Raw(likeCountForQuestion, questionID).Scan(&count).Error; err != nil {
		return 0, r.storageError(ctx, err, "num_likes_for_question_id")
	}
	return count, nil
}

func (r *questionLikeRepository) LikedQuestionsForUserID(ctx context.Context, userID uint) ([]*models.Question, error) {
	ctx, span := r.trace(ctx, "LikedQuestionsForUserID")
	defer span.End()
	return queryMany[models.Question](ctx, &r.base, "liked_questions_for_user_id", likeSelectLiked, userID)
}

// MostLikedQuestions returns up to n questions, most likes first, ties to the lower id.
func (r *questionLikeRepository) MostLikedQuestions(ctx context.Context, n int) ([]*models.Question, error) {
	if n <= 0 {
		return []*models.Question{}, nil
	}
	ctx, span := r.trace(ctx, "MostLikedQuestions")
	defer span.End()
	return queryMany[models.Question](ctx, &r.base, "most_liked_questions", likeSelectMostLiked, n)
}

// Add records the like. Liking twice is a no-op.
func (r *questionLikeRepository) Add(ctx context.Context, questionID, userID uint) error {
	ctx, span := r.trace(ctx, "Add")
	defer span.End()

	if err := exec(ctx, &r.base, "create", likeInsert, questionID, userID); err != nil {
		return err
	}
	r.logger.LogCreate(ctx, map[string]any{"question_id": questionID, "user_id": userID})
	return nil
}

func (r *questionLikeRepository) Remove(ctx context.Context, questionID, userID uint) error {
	ctx, span := r.trace(ctx, "Remove")
	defer span.End()

	if err := exec(ctx, &r.base, "delete", likeDelete, questionID, userID); err != nil {
		return err
	}
	r.logger.LogDelete(ctx, map[string]any{"question_id": questionID, "user_id": userID})
	return nil
}
