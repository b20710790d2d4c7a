package models

// Reply answers a question. A nil ParentID marks the root of a thread;
// otherwise ParentID points at the reply being answered.
type Reply struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	Body       string `gorm:"column:body" json:"body"`
	ParentID   *uint  `gorm:"column:parent_id" json:"parent_id,omitempty"`
	QuestionID uint   `gorm:"column:question_id" json:"question_id"`
	UserID     uint   `gorm:"column:user_id" json:"user_id"`
}

func (Reply) TableName() string { return "replies" }

func (r *Reply) IsPersisted() bool {
	return r != nil && r.ID != 0
}

// IsRoot reports whether the reply starts a thread.
func (r *Reply) IsRoot() bool {
	return r.ParentID == nil
}
