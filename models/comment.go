package models

import "gorm.io/gorm"

// Comment is a threaded note on a card, attributed to its author
type Comment struct {
	gorm.Model
	Text     string `gorm:"not null;size:1000"`
	CardID   uint   `gorm:"not null;index"`
	Card     Card   `gorm:"foreignKey:CardID" json:"-"`
	AuthorID uint   `gorm:"not null;index"`
	Author   User   `gorm:"foreignKey:AuthorID"`
}
