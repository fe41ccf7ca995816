package memory

import (
	"context"
	"sync"

	"github.com/custodia-labs/tally-cli/internal/core/domain"
	"github.com/custodia-labs/tally-cli/internal/core/ports/driven"
)

// Ensure HistoryStore implements the interface.
var _ driven.HistoryStore = (*HistoryStore)(nil)

// HistoryStore is an in-memory implementation of driven.HistoryStore.
// Operations are held in append order for the lifetime of the process.
type HistoryStore struct {
	mu  sync.RWMutex
	ops []domain.Operation
}

// NewHistoryStore creates a new in-memory history store.
func NewHistoryStore() *HistoryStore {
	return &HistoryStore{}
}

// Append records an operation at the end of the history.
func (s *HistoryStore) Append(_ context.Context, op domain.Operation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ops = append(s.ops, op)
	return nil
}

// List returns all recorded operations in append order.
func (s *HistoryStore) List(_ context.Context) ([]domain.Operation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Operation, len(s.ops))
	copy(out, s.ops)
	return out, nil
}

// Count returns the number of recorded operations.
func (s *HistoryStore) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.ops), nil
}

// Clear removes all recorded operations.
func (s *HistoryStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ops = nil
	return nil
}
