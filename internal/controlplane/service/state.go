package service

import (
	"sync"
	"time"

	"github.com/rhythmiq/controlplane/pkg/cryptox"
)

// DefaultStateTTL bounds how long a login may take between redirect and callback.
const DefaultStateTTL = 10 * time.Minute

// StateStore issues the OAuth2 state values sent on login and accepts each
// one back exactly once, which ties a callback to the browser that started it.
type StateStore struct {
	TTL time.Duration

	now    func() time.Time
	mu     sync.Mutex
	states map[string]time.Time
}

func NewStateStore(ttl time.Duration, now func() time.Time) *StateStore {
	if ttl <= 0 {
		ttl = DefaultStateTTL
	}
	if now == nil {
		now = time.Now
	}
	return &StateStore{
		TTL:    ttl,
		now:    now,
		states: make(map[string]time.Time),
	}
}

// Issue returns a fresh 128-bit state value.
func (s *StateStore) Issue() (string, error) {
	state, err := cryptox.GenerateToken(cryptox.TokenSize128)
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	s.states[state] = s.now()
	s.mu.Unlock()

	return state, nil
}

// Consume reports whether state was issued and has not expired. The value is
// forgotten either way.
func (s *StateStore) Consume(state string) bool {
	if state == "" {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	issuedAt, ok := s.states[state]
	if !ok {
		return false
	}
	delete(s.states, state)

	return s.now().Sub(issuedAt) <= s.TTL
}

// Sweep drops states older than the TTL.
func (s *StateStore) Sweep(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for state, at := range s.states {
		if now.Sub(at) > s.TTL {
			delete(s.states, state)
			removed++
		}
	}
	return removed
}

// Len returns the number of outstanding states.
func (s *StateStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.states)
}
