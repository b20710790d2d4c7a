package models

// QuestionFollow records that a user follows a question.
type QuestionFollow struct {
	QuestionID uint `gorm:"column:question_id;primaryKey;autoIncrement:false" json:"question_id"`
	UserID     uint `gorm:"column:user_id;primaryKey;autoIncrement:false" json:"user_id"`
}

func (QuestionFollow) TableName() string { return "question_follows" }
