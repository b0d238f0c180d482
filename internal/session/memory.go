package session

import (
	"context"
	"sync"
)

// MemoryStore is an in-process Store for tests.
type MemoryStore struct {
	mu      sync.Mutex
	users   map[string]int64
	flashes map[string][]string
}

// NewMemoryStore returns an empty in-memory Store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:   make(map[string]int64),
		flashes: make(map[string][]string),
	}
}

// SetUser associates a user ID with the token.
func (s *MemoryStore) SetUser(_ context.Context, token string, userID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[token] = userID
	return nil
}

// User returns the user ID for the token, or ErrNoSession.
func (s *MemoryStore) User(_ context.Context, token string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	userID, ok := s.users[token]
	if !ok {
		return 0, ErrNoSession
	}
	return userID, nil
}

// Delete clears the identity for the token.
func (s *MemoryStore) Delete(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.users, token)
	return nil
}

// AddFlash queues a one-time message for the token.
func (s *MemoryStore) AddFlash(_ context.Context, token, message string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flashes[token] = append(s.flashes[token], message)
	return nil
}

// PopFlashes returns and discards all queued messages for the token.
func (s *MemoryStore) PopFlashes(_ context.Context, token string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	messages := s.flashes[token]
	delete(s.flashes, token)
	return messages, nil
}
