package repository

import (
	"context"
	"sync"
	"time"

	"github.com/iumatch/coursematch-backend/internal/model"
)

type memoryEntry struct {
	session   *model.SwipeSession
	expiresAt time.Time
}

type memorySessionStore struct {
	mu       sync.RWMutex
	sessions map[string]memoryEntry
}

// NewMemorySessionStore creates an in-process session store. Used when no
// Redis URL is configured and in tests. Expired entries linger until read
// or until a janitor calls Sweep.
func NewMemorySessionStore() SessionStore {
	return &memorySessionStore{sessions: make(map[string]memoryEntry)}
}

func (s *memorySessionStore) Save(_ context.Context, session *model.SwipeSession, ttl time.Duration) error {
	s.mu.Lock()
	s.sessions[session.ID] = memoryEntry{
		session:   session.Clone(),
		expiresAt: time.Now().Add(ttl),
	}
	s.mu.Unlock()
	return nil
}

func (s *memorySessionStore) Get(_ context.Context, id string) (*model.SwipeSession, error) {
	s.mu.RLock()
	entry, ok := s.sessions[id]
	s.mu.RUnlock()

	if !ok || time.Now().After(entry.expiresAt) {
		return nil, ErrSessionNotFound
	}

	return entry.session.Clone(), nil
}

func (s *memorySessionStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
	return nil
}

// Sweep removes expired entries and reports how many were dropped.
func (s *memorySessionStore) Sweep() int {
	now := time.Now()
	removed := 0

	s.mu.Lock()
	for id, entry := range s.sessions {
		if now.After(entry.expiresAt) {
			delete(s.sessions, id)
			removed++
		}
	}
	s.mu.Unlock()

	return removed
}
