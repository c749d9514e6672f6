package session

import (
	"time"

	"gorm.io/gorm"

	"github.com/cironunes/funretro-api/models"
)

// DBStore persists sessions as rows so logins survive restarts.
type DBStore struct {
	db  *gorm.DB
	ttl time.Duration
}

func NewDBStore(db *gorm.DB) *DBStore {
	return &DBStore{db: db, ttl: DefaultTTL}
}

func (s *DBStore) Create(userID uint) (string, error) {
	token, err := newToken()
	if err != nil {
		return "", err
	}

	row := models.Session{
		Token:     token,
		UserID:    userID,
		ExpiresAt: time.Now().Add(s.ttl),
	}
	if err := s.db.Create(&row).Error; err != nil {
		return "", err
	}
	return token, nil
}

func (s *DBStore) Resolve(token string) (uint, bool) {
	var row models.Session
	if err := s.db.Where("token = ?", token).First(&row).Error; err != nil {
		// Lookup failures read as unauthenticated; the caller can log
		// in again.
		return 0, false
	}
	if time.Now().After(row.ExpiresAt) {
		// Expired rows are reaped lazily on the next resolve.
		s.db.Delete(&row)
		return 0, false
	}
	return row.UserID, true
}

func (s *DBStore) Destroy(token string) error {
	return s.db.Where("token = ?", token).Delete(&models.Session{}).Error
}
