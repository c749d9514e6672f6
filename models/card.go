package models

import "gorm.io/gorm"

// Card is a single idea on a board. SectionID is nullable: removing a
// card from its section detaches it rather than deleting it.
type Card struct {
	gorm.Model
	Text      string   `gorm:"not null;size:1000"`
	SectionID *uint    `gorm:"index"`
	Section   *Section `gorm:"foreignKey:SectionID" json:"-"`

	Votes    []User    `gorm:"many2many:card_votes"`
	Comments []Comment `gorm:"foreignKey:CardID"`
}
