package auth

import (
	"context"
	"sync"
)

// MemoryTokenStore keeps issued tokens in a mutex-guarded set. Suitable for
// single-node runs and tests; multi-replica deployments wire the redis store.
type MemoryTokenStore struct {
	mu     sync.RWMutex
	tokens map[string]struct{}
}

func NewMemoryTokenStore() *MemoryTokenStore {
	return &MemoryTokenStore{tokens: make(map[string]struct{})}
}

func (s *MemoryTokenStore) Add(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[token] = struct{}{}
	return nil
}

func (s *MemoryTokenStore) Exists(_ context.Context, token string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.tokens[token]
	return ok, nil
}

var _ TokenStore = (*MemoryTokenStore)(nil)
