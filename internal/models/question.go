package models

// Question is a post authored by a user.
type Question struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Title    string `gorm:"column:title" json:"title"`
	Body     string `gorm:"column:body" json:"body"`
	AuthorID uint   `gorm:"column:author_id" json:"author_id"`
}

func (Question) TableName() string { return "questions" }

func (q *Question) IsPersisted() bool {
	return q != nil && q.ID != 0
}
