package store

import (
	"crypto/rand"
	"encoding/hex"
	"sync"
	"time"
)

const sessionIDBytes = 32

// SessionStore holds live sessions and their expiry instants. Sessions are
// created only through a successful credential exchange and die by expiry;
// there is no explicit logout.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[string]time.Time
	ttl      time.Duration
	now      func() time.Time
}

// NewSessionStore creates an empty store whose sessions live for ttl per
// creation or refresh.
func NewSessionStore(ttl time.Duration) *SessionStore {
	return &SessionStore{
		sessions: make(map[string]time.Time),
		ttl:      ttl,
		now:      time.Now,
	}
}

// Create issues a fresh random session identifier valid for one session
// duration.
func (s *SessionStore) Create() (string, time.Time, error) {
	buf := make([]byte, sessionIDBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", time.Time{}, err
	}
	id := hex.EncodeToString(buf)
	expiry := s.now().Add(s.ttl)

	s.mu.Lock()
	s.sessions[id] = expiry
	s.mu.Unlock()

	return id, expiry, nil
}

// Validate reports whether id names a live session and, if so, its expiry.
// An expired entry is treated as nonexistent even before the sweeper gets to
// it. Validate never mutates the store.
func (s *SessionStore) Validate(id string) (time.Time, bool) {
	if id == "" {
		return time.Time{}, false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	expiry, ok := s.sessions[id]
	if !ok || !s.now().Before(expiry) {
		return time.Time{}, false
	}
	return expiry, true
}

// Refresh slides a live session's expiry forward to now plus the session
// duration and returns the new expiry. For an unknown or expired id it makes
// no change and returns false.
func (s *SessionStore) Refresh(id string) (time.Time, bool) {
	if id == "" {
		return time.Time{}, false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	expiry, ok := s.sessions[id]
	now := s.now()
	if !ok || !now.Before(expiry) {
		return time.Time{}, false
	}
	next := now.Add(s.ttl)
	s.sessions[id] = next
	return next, true
}

// Sweep evicts sessions whose expiry has passed and reports how many were
// removed.
func (s *SessionStore) Sweep() int {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, expiry := range s.sessions {
		if expiry.Before(now) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

// Len reports the number of recorded sessions, expired or not.
func (s *SessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}
