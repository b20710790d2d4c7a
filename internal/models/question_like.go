package models

// QuestionLike records that a user likes a question.
type QuestionLike struct {
	QuestionID uint `gorm:"column:question_id;primaryKey;autoIncrement:false" json:"question_id"`
	UserID     uint `gorm:"column:user_id;primaryKey;autoIncrement:false" json:"user_id"`
}

func (QuestionLike) TableName() string { return "question_likes" }
