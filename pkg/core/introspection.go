package core

import (
	"github.com/aretw0/introspection"
)

// StoreState exposes internal state for observability.
type StoreState struct {
	Key             string `json:"key"`
	Count           int    `json:"count"`
	SeedOnly        bool   `json:"seed_only"`
	PreferencesType string `json:"preferences_type"`
	LastWriteError  string `json:"last_write_error,omitempty"`
}

// State implements introspection.Introspectable.
func (s *Store) State() any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	prefsType := "preferences"
	if comp, ok := s.prefs.(introspection.Component); ok {
		prefsType = comp.ComponentType()
	}

	state := StoreState{
		Key:             s.key,
		Count:           len(s.notes),
		SeedOnly:        len(s.notes) == 1 && s.notes[0].IsSeed(),
		PreferencesType: prefsType,
	}
	if s.lastWriteErr != nil {
		state.LastWriteError = s.lastWriteErr.Error()
	}
	return state
}

// ComponentType implements introspection.Component.
func (s *Store) ComponentType() string {
	return "store"
}

var _ introspection.Introspectable = (*Store)(nil)
var _ introspection.Component = (*Store)(nil)
