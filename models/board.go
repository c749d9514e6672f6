package models

import "gorm.io/gorm"

// Board is the top-level container of a retrospective session.
// MaxVotes is a per-card vote cap; it is stored and editable but no
// operation enforces it yet.
type Board struct {
	gorm.Model
	Name     string `gorm:"not null;size:100"`
	MaxVotes int    `gorm:"not null"`

	Sections []Section `gorm:"foreignKey:BoardID"`
	Users    []User    `gorm:"many2many:board_users"`
}
