package repository

import (
	"context"

	"qaforum/internal/cache"
	"qaforum/internal/models"

	"gorm.io/gorm"
)

const (
	usersTable = "users"

	userSelectAll    = `SELECT id, fname, lname FROM users ORDER BY id`
	userSelectByID   = `SELECT id, fname, lname FROM users WHERE id = ?`
	userSelectByName = `SELECT id, fname, lname FROM users WHERE fname = ? AND lname = ? ORDER BY id LIMIT 1`
	userUpdate       = `UPDATE users SET fname = ?, lname = ? WHERE id = ?`
	userKarma        = `
		SELECT
			COUNT(DISTINCT questions.id) AS questions,
			COUNT(question_likes.user_id) AS likes
		FROM questions
		LEFT OUTER JOIN question_likes ON questions.id = question_likes.question_id
		WHERE questions.author_id = ?`
)

// UserRepository defines persistence operations for users.
type UserRepository interface {
	All(ctx context.Context) ([]*models.User, error)
	FindByID(ctx context.Context, id uint) (*models.User, error)
	FindByName(ctx context.Context, fname, lname string) (*models.User, error)
	Save(ctx context.Context, user *models.User) error
	AverageKarma(ctx context.Context, userID uint) (float64, error)
}

type userRepository struct {
	base
}

// NewUserRepository returns a new UserRepository implementation.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{base: newBase(db, usersTable)}
}

func (r *userRepository) All(ctx context.Context) ([]*models.User, error) {
	ctx, span := r.trace(ctx, "All")
	defer span.End()
	return queryMany[models.User](ctx, &r.base, "all", userSelectAll)
}

func (r *userRepository) FindByID(ctx context.Context, id uint) (*models.User, error) {
	ctx, span := r.trace(ctx, "FindByID")
	defer span.End()

	var user models.User
	err := cache.Aside(ctx, cache.UserKey(id), &user, cache.UserTTL, func() error {
		found, err := queryOne[models.User](ctx, &r.base, "find_by_id", "User", id, userSelectByID, id)
		if err != nil {
			return err
		}
		user = *found
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByName returns the lowest-id user with the given first and last name.
func (r *userRepository) FindByName(ctx context.Context, fname, lname string) (*models.User, error) {
	ctx, span := r.trace(ctx, "FindByName")
	defer span.End()
	return queryOne[models.User](ctx, &r.base, "find_by_name", "User", fname+" "+lname, userSelectByName, fname, lname)
}

// Save inserts a transient user, writing the new id back, or updates a persisted one.
func (r *userRepository) Save(ctx context.Context, user *models.User) error {
	if user == nil {
		return models.NewValidationError("cannot save a nil user")
	}
	ctx, span := r.trace(ctx, "Save")
	defer span.End()

	if !user.IsPersisted() {
		if err := insert(ctx, &r.base, user); err != nil {
			return err
		}
		r.logger.LogCreate(ctx, map[string]any{"id": user.ID})
		return nil
	}

	if err := execUpdate(ctx, &r.base, "User", user.ID, userUpdate, user.FirstName, user.LastName, user.ID); err != nil {
		return err
	}
	cache.InvalidateUser(ctx, user.ID)
	r.logger.LogUpdate(ctx, map[string]any{"id": user.ID})
	return nil
}

type karmaRow struct {
	Questions int64
	Likes     int64
}

// AverageKarma is the number of likes on the user's questions divided by the
// number of those questions. A user without questions has karma 0.
func (r *userRepository) AverageKarma(ctx context.Context, userID uint) (float64, error) {
	ctx, span := r.trace(ctx, "AverageKarma")
	defer span.End()

	var row karmaRow
	if err := r.db.WithContext(ctx).Raw(userKarma, userID).Scan(&row).Error; err != nil {
		return 0, r.storageError(ctx, err, "average_karma")
	}
	if row.Questions == 0 {
		return 0, nil
	}
	return float64(row.Likes) / float64(row.Questions), nil
}
