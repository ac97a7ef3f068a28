package storage

import (
	"context"
	"sync"
	"time"
)

// MemorySessions keeps admin session tokens in process memory. Expired
// entries are dropped lazily on lookup.
type MemorySessions struct {
	mu     sync.Mutex
	expiry map[string]time.Time
}

func NewMemorySessions() *MemorySessions {
	return &MemorySessions{expiry: make(map[string]time.Time)}
}

var _ SessionStore = (*MemorySessions)(nil)

func (s *MemorySessions) Create(_ context.Context, token string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.expiry[token] = time.Now().Add(ttl)
	return nil
}

func (s *MemorySessions) Exists(_ context.Context, token string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	deadline, ok := s.expiry[token]
	if !ok {
		return false, nil
	}
	if time.Now().After(deadline) {
		delete(s.expiry, token)
		return false, nil
	}
	return true, nil
}

func (s *MemorySessions) Delete(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.expiry, token)
	return nil
}
