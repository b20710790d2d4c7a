package repository

import (
	"context"

	"qaforum/internal/cache"
	"qaforum/internal/models"

	"gorm.io/gorm"
)

const (
	questionsTable = "questions"

	questionColumns          = `questions.id, questions.title, questions.body, questions.author_id`
	questionSelectAll        = `SELECT id, title, body, author_id FROM questions ORDER BY id`
	questionSelectByID       = `SELECT id, title, body, author_id FROM questions WHERE id = ?`
	questionSelectByAuthorID = `SELECT id, title, body, author_id FROM questions WHERE author_id = ? ORDER BY id`
	questionUpdate           = `UPDATE questions SET title = ?, body = ?, author_id = ? WHERE id = ?`
)

// QuestionRepository defines persistence operations for questions.
type QuestionRepository interface {
	All(ctx context.Context) ([]*models.Question, error)
	FindByID(ctx context.Context, id uint) (*models.Question, error)
	FindByAuthorID(ctx context.Context, authorID uint) ([]*models.Question, error)
	Save(ctx context.Context, question *models.Question) error
}

type questionRepository struct {
	base
}

// NewQuestionRepository returns a new QuestionRepository implementation.
func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{base: newBase(db, questionsTable)}
}

func (r *questionRepository) All(ctx context.Context) ([]*models.Question, error) {
	ctx, span := r.trace(ctx, "All")
	defer span.End()
	return queryMany[models.Question](ctx, &r.base, "all", questionSelectAll)
}

func (r *questionRepository) FindByID(ctx context.Context, id uint) (*models.Question, error) {
	ctx, span := r.trace(ctx, "FindByID")
	defer span.End()

	var question models.Question
	err := cache.Aside(ctx, cache.QuestionKey(id), &question, cache.QuestionTTL, func() error {
		found, err := queryOne[models.Question](ctx, &r.base, "find_by_id", "Question", id, questionSelectByID, id)
		if err != nil {
			return err
		}
		question = *found
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &question, nil
}

func (r *questionRepository) FindByAuthorID(ctx context.Context, authorID uint) ([]*models.Question, error) {
	ctx, span := r.trace(ctx, "FindByAuthorID")
	defer span.End()
	return queryMany[models.Question](ctx, &r.base, "find_by_author_id", questionSelectByAuthorID, authorID)
}

func (r *questionRepository) Save(ctx context.Context, question *models.Question) error {
	if question == nil {
		return models.NewValidationError("cannot save a nil question")
	}
	ctx, span := r.trace(ctx, "Save")
	defer span.End()

	if !question.IsPersisted() {
		if err := insert(ctx, &r.base, question); err != nil {
			return err
		}
		r.logger.LogCreate(ctx, map[string]any{"id": question.ID, "author_id": question.AuthorID})
		return nil
	}

	err := execUpdate(ctx, &r.base, "Question", question.ID, questionUpdate,
		question.Title, question.Body, question.AuthorID, question.ID)
	if err != nil {
		return err
	}
	cache.InvalidateQuestion(ctx, question.ID)
	r.logger.LogUpdate(ctx, map[string]any{"id": question.ID})
	return nil
}
