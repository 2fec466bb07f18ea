package storage

import (
	"context"
	"fmt"
	"sync"

	"jira_tracker/internal/tracker"
)

// MemoryOptionsStore keeps options in process memory.
type MemoryOptionsStore struct {
	mu      sync.RWMutex
	options map[string]tracker.Options
}

// NewMemoryOptionsStore creates an empty store.
func NewMemoryOptionsStore() *MemoryOptionsStore {
	return &MemoryOptionsStore{options: make(map[string]tracker.Options)}
}

// Load returns a copy of the named tracker's options.
func (s *MemoryOptionsStore) Load(_ context.Context, name string) (tracker.Options, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	options, ok := s.options[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return options.Clone(), nil
}

// Save stores a copy of options.
func (s *MemoryOptionsStore) Save(_ context.Context, name string, options tracker.Options) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.options[name] = options.Clone()
	return nil
}
