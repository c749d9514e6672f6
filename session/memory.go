package session

import (
	"sync"
	"time"
)

type memoryEntry struct {
	userID    uint
	expiresAt time.Time
}

// MemoryStore keeps sessions in process memory. Sessions do not survive
// a restart; use DBStore for that.
type MemoryStore struct {
	mu       sync.RWMutex
	ttl      time.Duration
	sessions map[string]memoryEntry
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		ttl:      DefaultTTL,
		sessions: make(map[string]memoryEntry),
	}
}

func (s *MemoryStore) Create(userID uint) (string, error) {
	token, err := newToken()
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	s.sessions[token] = memoryEntry{userID: userID, expiresAt: time.Now().Add(s.ttl)}
	s.mu.Unlock()
	return token, nil
}

func (s *MemoryStore) Resolve(token string) (uint, bool) {
	s.mu.RLock()
	entry, ok := s.sessions[token]
	s.mu.RUnlock()
	if !ok || time.Now().After(entry.expiresAt) {
		return 0, false
	}
	return entry.userID, true
}

func (s *MemoryStore) Destroy(token string) error {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
	return nil
}
