package service

import (
	"sync"
	"time"

	"github.com/rhythmiq/controlplane/internal/controlplane/domain"
)

// DefaultSessionWindow is how long a session survives without re-login.
const DefaultSessionWindow = time.Hour

// SessionStore maps opaque session ids to the token pair obtained at login.
// It lives only as long as the process.
type SessionStore struct {
	now     func() time.Time
	mu      sync.RWMutex
	entries map[string]domain.Session
}

func NewSessionStore(now func() time.Time) *SessionStore {
	if now == nil {
		now = time.Now
	}
	return &SessionStore{
		now:     now,
		entries: make(map[string]domain.Session),
	}
}

// Put inserts or overwrites the session id. Concurrent writers to the same id
// race; the last one wins.
func (s *SessionStore) Put(id string, tokens domain.TokenPair) domain.Session {
	sess := domain.Session{ID: id, Tokens: tokens, CreatedAt: s.now()}

	s.mu.Lock()
	s.entries[id] = sess
	s.mu.Unlock()

	return sess
}

// Get returns a copy of the token pair stored for id.
func (s *SessionStore) Get(id string) (domain.TokenPair, bool) {
	sess, ok := s.Lookup(id)
	return sess.Tokens, ok
}

func (s *SessionStore) Lookup(id string) (domain.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.entries[id]
	return sess, ok
}

func (s *SessionStore) Delete(id string) {
	s.mu.Lock()
	delete(s.entries, id)
	s.mu.Unlock()
}

// EvictOlderThan removes sessions whose age is strictly greater than window.
func (s *SessionStore) EvictOlderThan(window time.Duration, now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, sess := range s.entries {
		if now.Sub(sess.CreatedAt) > window {
			delete(s.entries, id)
			removed++
		}
	}
	return removed
}

func (s *SessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
