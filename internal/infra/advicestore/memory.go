package advicestore

import (
	"context"
	"sync"
	"time"

	"github.com/aqisense/aqi-sense/internal/domain/advice"
)

type memoryEntry struct {
	payload   advice.Advice
	expiresAt time.Time
}

// MemoryStore is the in-process advice cache. Entries expire lazily on read;
// there is no background sweeper.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	now     func() time.Time
}

// NewMemoryStore constructs a cache backed by process memory.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

// Get implements advice.Store.
func (s *MemoryStore) Get(_ context.Context, key string) (advice.Advice, bool, error) {
	s.mu.RLock()
	entry, ok := s.entries[key]
	s.mu.RUnlock()
	if !ok {
		return advice.Advice{}, false, nil
	}
	if s.hasExpired(entry.expiresAt) {
		s.mu.Lock()
		delete(s.entries, key)
		s.mu.Unlock()
		return advice.Advice{}, false, nil
	}
	return entry.payload, true, nil
}

// Save implements advice.Store.
func (s *MemoryStore) Save(_ context.Context, key string, value advice.Advice, ttl time.Duration) error {
	exp := time.Time{}
	if ttl > 0 {
		exp = s.now().Add(ttl)
	}
	s.mu.Lock()
	s.entries[key] = memoryEntry{payload: value, expiresAt: exp}
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) hasExpired(ts time.Time) bool {
	if ts.IsZero() {
		return false
	}
	return ts.Before(s.now())
}

var _ advice.Store = (*MemoryStore)(nil)
