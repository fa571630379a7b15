package oauthstate

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	userID    string
	expiresAt time.Time
}

// MemoryStore is an in-process Store. Expired entries are swept on Put.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	nowFunc func() time.Time
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore creates an empty MemoryStore. A nil nowFunc uses time.Now.
func NewMemoryStore(nowFunc func() time.Time) *MemoryStore {
	if nowFunc == nil {
		nowFunc = time.Now
	}
	return &MemoryStore{
		entries: make(map[string]memoryEntry),
		nowFunc: nowFunc,
	}
}

// Put records nonce for userID until ttl elapses.
func (s *MemoryStore) Put(_ context.Context, nonce, userID string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.nowFunc()
	for k, e := range s.entries {
		if !now.Before(e.expiresAt) {
			delete(s.entries, k)
		}
	}

	s.entries[nonce] = memoryEntry{userID: userID, expiresAt: now.Add(ttl)}
	return nil
}

// Take removes nonce and returns its user id.
func (s *MemoryStore) Take(_ context.Context, nonce string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[nonce]
	if !ok {
		return "", false, nil
	}
	delete(s.entries, nonce)

	if !s.nowFunc().Before(e.expiresAt) {
		return "", false, nil
	}
	return e.userID, true, nil
}

// Len returns the number of outstanding nonces.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}
