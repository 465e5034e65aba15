package chat

import (
	"context"
	"sync"
)

// InMemoryStore implements TurnStore interface with in-memory storage
type InMemoryStore struct {
	mu    sync.RWMutex
	turns map[string][]*Turn
}

// NewInMemoryStore creates a new in-memory store
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		turns: make(map[string][]*Turn),
	}
}

// AppendTurn adds a turn to the end of its session's log
func (s *InMemoryStore) AppendTurn(ctx context.Context, turn *Turn) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := *turn
	s.turns[turn.SessionID] = append(s.turns[turn.SessionID], &copied)
	return nil
}

// ListTurns returns the full ordered history for a session, oldest first.
// A session that has never been written to yields an empty slice.
func (s *InMemoryStore) ListTurns(ctx context.Context, sessionID string) ([]*Turn, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stored := s.turns[sessionID]
	out := make([]*Turn, len(stored))
	for i, turn := range stored {
		copied := *turn
		out[i] = &copied
	}
	return out, nil
}
