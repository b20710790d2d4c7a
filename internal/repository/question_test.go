package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"qaforum/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuestionRepository_SaveFindUpdate(t *testing.T) {
	repos := NewRepositories(setupTestDB(t))
	ctx := context.Background()

	author := mustUser(t, repos, "Ada", "Lovelace")
	q := &models.Question{Title: "Engines", Body: "Can they compose music?", AuthorID: author.ID}
	require.NoError(t, repos.Questions.Save(ctx, q))
	require.NotZero(t, q.ID)

	got, err := repos.Questions.FindByID(ctx, q.ID)
	require.NoError(t, err)
	assert.Equal(t, *q, *got)

	q.Body = "Can they weave algebraic patterns?"
	require.NoError(t, repos.Questions.Save(ctx, q))
	got, err = repos.Questions.FindByID(ctx, q.ID)
	require.NoError(t, err)
	assert.Equal(t, "Can they weave algebraic patterns?", got.Body)

	_, err = repos.Questions.FindByID(ctx, q.ID+100)
	assert.True(t, models.IsNotFound(err))

	err = repos.Questions.Save(ctx, &models.Question{ID: q.ID + 100, Title: "x"})
	assert.True(t, models.IsNotFound(err))
}

func TestQuestionRepository_FindByAuthorID(t *testing.T) {
	repos := NewRepositories(setupTestDB(t))
	ctx := context.Background()

	ada := mustUser(t, repos, "Ada", "Lovelace")
	alan := mustUser(t, repos, "Alan", "Turing")
	q1 := mustQuestion(t, repos, "Engines", ada.ID)
	q2 := mustQuestion(t, repos, "Looms", ada.ID)
	mustQuestion(t, repos, "Machines", alan.ID)

	got, err := repos.Questions.FindByAuthorID(ctx, ada.ID)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, q1.ID, got[0].ID)
	assert.Equal(t, q2.ID, got[1].ID)

	none, err := repos.Questions.FindByAuthorID(ctx, 999)
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)

	all, err := repos.Questions.All(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestQuestionRepository_StorageFailure(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewQuestionRepository(db)
	driverErr := errors.New("database is locked")

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, title, body, author_id FROM questions WHERE author_id = $1`)).
		WithArgs(5).
		WillReturnError(driverErr)

	got, err := repo.FindByAuthorID(context.Background(), 5)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, models.ErrStorage)
	assert.ErrorIs(t, err, driverErr)
	assert.NoError(t, mock.ExpectationsWereMet())
}
