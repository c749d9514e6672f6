package models

import "gorm.io/gorm"

// Section is a named column within a board
type Section struct {
	gorm.Model
	Name    string `gorm:"not null;size:100"`
	BoardID uint   `gorm:"not null;index"`
	Board   Board  `gorm:"foreignKey:BoardID" json:"-"`

	Cards []Card `gorm:"foreignKey:SectionID"`
}
