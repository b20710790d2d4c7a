package service

import (
	"context"
	"errors"
	"testing"

	"qaforum/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReplyService_ChildReplies(t *testing.T) {
	t.Parallel()

	thread := []*models.Reply{
		{ID: 1, QuestionID: 9},
		{ID: 2, QuestionID: 9, ParentID: uintPtr(1)},
		{ID: 3, QuestionID: 9, ParentID: uintPtr(2)},
		{ID: 4, QuestionID: 9, ParentID: uintPtr(1)},
		{ID: 5, QuestionID: 9, ParentID: uintPtr(404)},
	}
	// Reply 6 lives on another question but names reply 1 as its parent.
	elsewhere := []*models.Reply{
		{ID: 6, QuestionID: 10, ParentID: uintPtr(1)},
	}
	replies := noopReplyRepo()
	replies.findByQuestionIDFn = func(_ context.Context, questionID uint) ([]*models.Reply, error) {
		switch questionID {
		case 9:
			return thread, nil
		case 10:
			return elsewhere, nil
		}
		return []*models.Reply{}, nil
	}
	svc := NewReplyService(replies, noopUserRepo(), noopQuestionRepo())
	ctx := context.Background()

	t.Run("direct children only", func(t *testing.T) {
		t.Parallel()
		children, err := svc.ChildReplies(ctx, thread[0])
		require.NoError(t, err)
		require.Len(t, children, 2)
		assert.Equal(t, uint(2), children[0].ID)
		assert.Equal(t, uint(4), children[1].ID)
	})

	t.Run("replies on other questions are excluded", func(t *testing.T) {
		t.Parallel()
		children, err := svc.ChildReplies(ctx, thread[0])
		require.NoError(t, err)
		for _, c := range children {
			assert.Equal(t, uint(9), c.QuestionID)
			assert.NotEqual(t, uint(6), c.ID)
		}
	})

	t.Run("leaf has none", func(t *testing.T) {
		t.Parallel()
		children, err := svc.ChildReplies(ctx, thread[3])
		require.NoError(t, err)
		assert.NotNil(t, children)
		assert.Empty(t, children)
	})

	t.Run("transient reply has none", func(t *testing.T) {
		t.Parallel()
		children, err := svc.ChildReplies(ctx, &models.Reply{QuestionID: 9})
		require.NoError(t, err)
		assert.Empty(t, children)
	})
}

func TestReplyService_ChildReplies_PropagatesStorageFailure(t *testing.T) {
	t.Parallel()

	repoErr := models.NewStorageError(errors.New("database is locked"))
	replies := noopReplyRepo()
	replies.findByQuestionIDFn = func(context.Context, uint) ([]*models.Reply, error) {
		return nil, repoErr
	}
	svc := NewReplyService(replies, noopUserRepo(), noopQuestionRepo())

	children, err := svc.ChildReplies(context.Background(), &models.Reply{ID: 1, QuestionID: 2})
	assert.Nil(t, children)
	assert.ErrorIs(t, err, models.ErrStorage)
}

func TestReplyService_ParentReply(t *testing.T) {
	t.Parallel()

	replies := noopReplyRepo()
	replies.findByIDFn = func(_ context.Context, id uint) (*models.Reply, error) {
		if id == 1 {
			return &models.Reply{ID: 1, Body: "root"}, nil
		}
		return nil, models.NewNotFoundError("Reply", id)
	}
	svc := NewReplyService(replies, noopUserRepo(), noopQuestionRepo())
	ctx := context.Background()

	parent, err := svc.ParentReply(ctx, &models.Reply{ID: 2, ParentID: uintPtr(1)})
	require.NoError(t, err)
	assert.Equal(t, "root", parent.Body)

	parent, err = svc.ParentReply(ctx, &models.Reply{ID: 1})
	assert.Nil(t, parent)
	assert.True(t, models.IsNotFound(err))

	_, err = svc.ParentReply(ctx, &models.Reply{ID: 3, ParentID: uintPtr(77)})
	assert.True(t, models.IsNotFound(err))
}

func TestReplyService_AuthorAndQuestion(t *testing.T) {
	t.Parallel()

	svc := NewReplyService(noopReplyRepo(), noopUserRepo(), noopQuestionRepo())
	r := &models.Reply{ID: 5, UserID: 11, QuestionID: 22}

	author, err := svc.Author(context.Background(), r)
	require.NoError(t, err)
	assert.Equal(t, uint(11), author.ID)

	question, err := svc.Question(context.Background(), r)
	require.NoError(t, err)
	assert.Equal(t, uint(22), question.ID)
}
