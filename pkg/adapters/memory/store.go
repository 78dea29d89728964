// Package memory provides an in-process preference store, used for
// ephemeral sessions and as a test double.
package memory

import (
	"context"
	"sync"

	"github.com/aretw0/jotter/pkg/core"
)

// Store keeps values in a map.
type Store struct {
	mu     sync.RWMutex
	values map[string][]byte
	writes int
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{values: make(map[string][]byte)}
}

// Read returns a copy of the value stored under key.
func (s *Store) Read(ctx context.Context, key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), v...), true, nil
}

// Write stores a copy of data under key.
func (s *Store) Write(ctx context.Context, key string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = append([]byte(nil), data...)
	s.writes++
	return nil
}

// Writes returns the number of successful writes.
func (s *Store) Writes() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.writes
}

// ComponentType implements introspection.Component.
func (s *Store) ComponentType() string {
	return "memory"
}

var _ core.Preferences = (*Store)(nil)
