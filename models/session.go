package models

import "time"

// Session binds an opaque token to a user id. The token is the only
// thing the client ever sees; everything else stays server-side.
type Session struct {
	Token     string    `gorm:"primaryKey;size:64"`
	UserID    uint      `gorm:"not null;index"`
	ExpiresAt time.Time `gorm:"not null"`
	CreatedAt time.Time
}
