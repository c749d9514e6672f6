package models

import "gorm.io/gorm"

// User represents a registered account
type User struct {
	gorm.Model
	FirstName string `gorm:"not null;size:100"`
	LastName  string `gorm:"not null;size:100"`
	Email     string `gorm:"uniqueIndex;not null;size:200"`
	Password  string `gorm:"not null" json:"-"`
	Photo     string `gorm:"size:500"`

	Boards   []Board   `gorm:"many2many:board_users" json:"-"`
	Comments []Comment `gorm:"foreignKey:AuthorID" json:"-"`
}
