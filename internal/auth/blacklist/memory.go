package blacklist

import (
	"context"
	"sync"
	"time"
)

// sweepEvery bounds how many inserts may happen between full sweeps of
// expired entries.
const sweepEvery = 4096

// MemoryStore is a process-local blacklist keyed by token id. It backs
// deployments without Redis and the service tests. Expired entries are
// dropped lazily on lookup and swept periodically on insert.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]time.Time
	inserts int

	now func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]time.Time),
		now:     time.Now,
	}
}

func (s *MemoryStore) Revoke(_ context.Context, tokenID string, expiresAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.insert(tokenID, expiresAt)

	return nil
}

func (s *MemoryStore) RevokeIfAbsent(_ context.Context, tokenID string, expiresAt time.Time) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if exp, ok := s.entries[tokenID]; ok && s.now().Before(exp) {
		return false, nil
	}

	s.insert(tokenID, expiresAt)

	return true, nil
}

func (s *MemoryStore) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	exp, ok := s.entries[tokenID]
	if !ok {
		return false, nil
	}

	if !s.now().Before(exp) {
		delete(s.entries, tokenID)
		return false, nil
	}

	return true, nil
}

// insert assumes the caller holds the lock.
func (s *MemoryStore) insert(tokenID string, expiresAt time.Time) {
	if !s.now().Before(expiresAt) {
		return
	}

	s.entries[tokenID] = expiresAt

	s.inserts++
	if s.inserts >= sweepEvery {
		s.inserts = 0
		now := s.now()
		for id, exp := range s.entries {
			if !now.Before(exp) {
				delete(s.entries, id)
			}
		}
	}
}
