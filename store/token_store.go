package store

import (
	"crypto/rand"
	"encoding/hex"
	"sync"
	"time"
)

const tokenBytes = 16

// TokenStore holds issued one-time tokens and their expiry instants. State is
// process-memory only: a restart invalidates outstanding tokens, and
// requesting a fresh one is cheap.
type TokenStore struct {
	mu     sync.Mutex
	tokens map[string]time.Time
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenStore creates an empty store whose tokens live for ttl.
func NewTokenStore(ttl time.Duration) *TokenStore {
	return &TokenStore{
		tokens: make(map[string]time.Time),
		ttl:    ttl,
		now:    time.Now,
	}
}

// Issue generates a cryptographically random token, records it with its
// expiry and returns both.
func (s *TokenStore) Issue() (string, time.Time, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", time.Time{}, err
	}
	token := hex.EncodeToString(buf)
	expiry := s.now().Add(s.ttl)

	s.mu.Lock()
	s.tokens[token] = expiry
	s.mu.Unlock()

	return token, expiry, nil
}

// Consume validates and removes a token in a single critical section, so of
// any number of requests racing on the same token exactly one can succeed.
// It returns true iff the token existed and had not yet expired. Either way
// the token is gone afterwards.
func (s *TokenStore) Consume(token string) bool {
	if token == "" {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	expiry, ok := s.tokens[token]
	if !ok {
		return false
	}
	delete(s.tokens, token)
	return s.now().Before(expiry)
}

// Sweep evicts tokens whose expiry has passed and reports how many were
// removed. Sweeping is memory reclamation only; Consume checks expiry itself.
func (s *TokenStore) Sweep() int {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for token, expiry := range s.tokens {
		if expiry.Before(now) {
			delete(s.tokens, token)
			removed++
		}
	}
	return removed
}

// Len reports the number of recorded tokens, expired or not.
func (s *TokenStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tokens)
}
