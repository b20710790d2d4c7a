package repository

import "gorm.io/gorm"

// Repositories bundles one repository per table over a shared handle.
type Repositories struct {
	Users           UserRepository
	Questions       QuestionRepository
	Replies         ReplyRepository
	QuestionFollows QuestionFollowRepository
	QuestionLikes   QuestionLikeRepository
}

// NewRepositories builds every repository on db.
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Users:           NewUserRepository(db),
		Questions:       NewQuestionRepository(db),
		Replies:         NewReplyRepository(db),
		QuestionFollows: NewQuestionFollowRepository(db),
		QuestionLikes:   NewQuestionLikeRepository(db),
	}
}
