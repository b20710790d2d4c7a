// Package models contains the forum entities and the data-access error taxonomy.
package models

// User is an author of questions and replies.
type User struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	FirstName string `gorm:"column:fname" json:"fname"`
	LastName  string `gorm:"column:lname" json:"lname"`
}

func (User) TableName() string { return "users" }

// IsPersisted reports whether the user has been assigned an id by storage.
func (u *User) IsPersisted() bool {
	return u != nil && u.ID != 0
}
