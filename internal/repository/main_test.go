package repository

import (
	"context"
	"testing"

	"qaforum/internal/config"
	"qaforum/internal/database"
	"qaforum/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB opens a private in-memory sqlite database with the schema applied.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	cfg := &config.Config{
		Env:           "test",
		DBDriver:      config.DriverSQLite,
		DBPath:        ":memory:",
		DBSlowQueryMS: 200,
	}
	db, err := database.ConnectWithOptions(cfg, database.ConnectOptions{ApplySchema: true})
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })
	return db
}

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn: db,
	}), &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err)

	return gormDB, mock
}

func mustUser(t *testing.T, repos *Repositories, fname, lname string) *models.User {
	t.Helper()
	u := &models.User{FirstName: fname, LastName: lname}
	require.NoError(t, repos.Users.Save(context.Background(), u))
	return u
}

func mustQuestion(t *testing.T, repos *Repositories, title string, authorID uint) *models.Question {
	t.Helper()
	q := &models.Question{Title: title, Body: title + "?", AuthorID: authorID}
	require.NoError(t, repos.Questions.Save(context.Background(), q))
	return q
}

func mustReply(t *testing.T, repos *Repositories, body string, questionID, userID uint, parentID *uint) *models.Reply {
	t.Helper()
	r := &models.Reply{Body: body, QuestionID: questionID, UserID: userID, ParentID: parentID}
	require.NoError(t, repos.Replies.Save(context.Background(), r))
	return r
}
