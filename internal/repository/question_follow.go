package repository

import (
	"context"

	"qaforum/internal/models"

	"gorm.io/gorm"
)

const (
	questionFollowsTable = "question_follows"

	followSelectAll       = `SELECT question_id, user_id FROM question_follows`
	followSelectFollowers = `
		SELECT users.id, users.fname, users.lname
		FROM question_follows
		JOIN users ON question_follows.user_id = users.id
		WHERE question_follows.question_id = ?
		ORDER BY users.id`
	followSelectFollowed = `
		SELECT ` + questionColumns + `
		FROM question_follows
		JOIN questions ON question_follows.question_id = questions.id
		WHERE question_follows.user_id = ?
		ORDER BY questions.id`
	followSelectMostFollowed = `
		SELECT ` + questionColumns + `
		FROM questions
		LEFT OUTER JOIN question_follows ON questions.id = question_follows.question_id
		GROUP BY ` + questionColumns + `
		ORDER BY COUNT(question_follows.user_id) DESC, questions.id ASC
		LIMIT ?`
	followInsert = `INSERT INTO question_follows (question_id, user_id) VALUES (?, ?) ON CONFLICT (question_id, user_id) DO NOTHING`
	followDelete = `DELETE FROM question_follows WHERE question_id = ? AND user_id = ?`
)

// QuestionFollowRepository reads and writes the users-follow-questions association.
type QuestionFollowRepository interface {
	All(ctx context.Context) ([]*models.QuestionFollow, error)
	FollowersForQuestionID(ctx context.Context, questionID uint) ([]*models.User, error)
	FollowedQuestionsForUserID(ctx context.Context, userID uint) ([]*models.Question, error)
	MostFollowedQuestions(ctx context.Context, n int) ([]*models.Question, error)
	Add(ctx context.Context, questionID, userID uint) error
	Remove(ctx context.Context, questionID, userID uint) error
}

type questionFollowRepository struct {
	base
}

// NewQuestionFollowRepository returns a new QuestionFollowRepository implementation.
func NewQuestionFollowRepository(db *gorm.DB) QuestionFollowRepository {
	return &questionFollowRepository{base: newBase(db, questionFollowsTable)}
}

func (r *questionFollowRepository) All(ctx context.Context) ([]*models.QuestionFollow, error) {
	ctx, span := r.trace(ctx, "All")
	defer span.End()
	return queryMany[models.QuestionFollow](ctx, &r.base, "all", followSelectAll)
}

func (r *questionFollowRepository) FollowersForQuestionID(ctx context.Context, questionID uint) ([]*models.User, error) {
	ctx, span := r.trace(ctx, "FollowersForQuestionID")
	defer span.End()
	return queryMany[models.User](ctx, &r.base, "followers_for_question_id", followSelectFollowers, questionID)
}

func (r *questionFollowRepository) FollowedQuestionsForUserID(ctx context.Context, userID uint) ([]*models.Question, error) {
	ctx, span := r.trace(ctx, "FollowedQuestionsForUserID")
	defer span.End()
	return queryMany[models.Question](ctx, &r.base, "followed_questions_for_user_id", followSelectFollowed, userID)
}

// MostFollowedQuestions returns up to n questions, most followers first. Questions
// nobody follows still rank; ties go to the lower id.
func (r *questionFollowRepository) MostFollowedQuestions(ctx context.Context, n int) ([]*models.Question, error) {
	if n <= 0 {
		return []*models.Question{}, nil
	}
	ctx, span := r.trace(ctx, "MostFollowedQuestions")
	defer span.End()
	return queryMany[models.Question](ctx, &r.base, "most_followed_questions", followSelectMostFollowed, n)
}

// Add records the follow. Following twice is a no-op.
func (r *questionFollowRepository) Add(ctx context.Context, questionID, userID uint) error {
	ctx, span := r.trace(ctx, "Add")
	defer span.End()

	if err := exec(ctx, &r.base, "create", followInsert, questionID, userID); err != nil {
		return err
	}
	r.logger.LogCreate(ctx, map[string]any{"question_id": questionID, "user_id": userID})
	return nil
}

func (r *questionFollowRepository) Remove(ctx context.Context, questionID, userID uint) error {
	ctx, span := r.trace(ctx, "Remove")
	defer span.End()

	if err := exec(ctx, &r.base, "delete", followDelete, questionID, userID); err != nil {
		return err
	}
	r.logger.LogDelete(ctx, map[string]any{"question_id": questionID, "user_id": userID})
	return nil
}
