package repository

import (
	"context"

	"qaforum/internal/cache"
	"qaforum/internal/models"

	"gorm.io/gorm"
)

const (
	repliesTable = "replies"

	replySelectAll          = `SELECT id, body, parent_id, question_id, user_id FROM replies ORDER BY id`
	replySelectByID         = `SELECT id, body, parent_id, question_id, user_id FROM replies WHERE id = ?`
	replySelectByUserID     = `SELECT id, body, parent_id, question_id, user_id FROM replies WHERE user_id = ? ORDER BY id`
	replySelectByQuestionID = `SELECT id, body, parent_id, question_id, user_id FROM replies WHERE question_id = ? ORDER BY id`
	replyUpdate             = `UPDATE replies SET body = ?, parent_id = ?, question_id = ?, user_id = ? WHERE id = ?`
)

// ReplyRepository defines persistence operations for replies.
type ReplyRepository interface {
	All(ctx context.Context) ([]*models.Reply, error)
	FindByID(ctx context.Context, id uint) (*models.Reply, error)
	FindByUserID(ctx context.Context, userID uint) ([]*models.Reply, error)
	FindByQuestionID(ctx context.Context, questionID uint) ([]*models.Reply, error)
	Save(ctx context.Context, reply *models.Reply) error
}

type replyRepository struct {
	base
}

// NewReplyRepository returns a new ReplyRepository implementation.
func NewReplyRepository(db *gorm.DB) ReplyRepository {
	return &replyRepository{base: newBase(db, repliesTable)}
}

func (r *replyRepository) All(ctx context.Context) ([]*models.Reply, error) {
	ctx, span := r.trace(ctx, "All")
	defer span.End()
	return queryMany[models.Reply](ctx, &r.base, "all", replySelectAll)
}

func (r *replyRepository) FindByID(ctx context.Context, id uint) (*models.Reply, error) {
	ctx, span := r.trace(ctx, "FindByID")
	defer span.End()

	var reply models.Reply
	err := cache.Aside(ctx, cache.ReplyKey(id), &reply, cache.ReplyTTL, func() error {
		found, err := queryOne[models.Reply](ctx, &r.base, "find_by_id", "Reply", id, replySelectByID, id)
		if err != nil {
			return err
		}
		reply = *found
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &reply, nil
}

func (r *replyRepository) FindByUserID(ctx context.Context, userID uint) ([]*models.Reply, error) {
	ctx, span := r.trace(ctx, "FindByUserID")
	defer span.End()
	return queryMany[models.Reply](ctx, &r.base, "find_by_user_id", replySelectByUserID, userID)
}

func (r *replyRepository) FindByQuestionID(ctx context.Context, questionID uint) ([]*models.Reply, error) {
	ctx, span := r.trace(ctx, "FindByQuestionID")
	defer span.End()
	return queryMany[models.Reply](ctx, &r.base, "find_by_question_id", replySelectByQuestionID, questionID)
}

func (r *replyRepository) Save(ctx context.Context, reply *models.Reply) error {
	if reply == nil {
		return models.NewValidationError("cannot save a nil reply")
	}
	ctx, span := r.trace(ctx, "Save")
	defer span.End()

	if !reply.IsPersisted() {
		if err := insert(ctx, &r.base, reply); err != nil {
			return err
		}
		r.logger.LogCreate(ctx, map[string]any{"id": reply.ID, "question_id": reply.QuestionID})
		return nil
	}

	err := execUpdate(ctx, &r.base, "Reply", reply.ID, replyUpdate,
		reply.Body, reply.ParentID, reply.QuestionID, reply.UserID, reply.ID)
	if err != nil {
		return err
	}
	cache.InvalidateReply(ctx, reply.ID)
	r.logger.LogUpdate(ctx, map[string]any{"id": reply.ID})
	return nil
}
