package core

import (
	"context"
	"io"
	"log/slog"
	"sync"
)

// Store owns the in-memory note collection and persists it, as a whole,
// after every mutation.
//
// Encode and write failures are logged and swallowed: the in-memory state
// stays correct but the change is not persisted until the next successful
// write. Decode failures fall back to the seed collection.
type Store struct {
	mu     sync.RWMutex
	prefs  Preferences
	key    string
	logger *slog.Logger
	notes  []Note

	lastWriteErr error
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithLogger sets the logger for the store.
func WithLogger(logger *slog.Logger) StoreOption {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithKey overrides the preference key (defaults to "notes").
func WithKey(key string) StoreOption {
	return func(s *Store) {
		if key != "" {
			s.key = key
		}
	}
}

// NewStore creates a Store on top of prefs.
func NewStore(prefs Preferences, opts ...StoreOption) *Store {
	s := &Store{
		prefs:  prefs,
		key:    DefaultKey,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// LoadAll reads the persisted collection, replacing the in-memory state.
func (s *Store) LoadAll(ctx context.Context) []Note {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.notes = []Note{SeedNote()}

	data, ok, err := s.prefs.Read(ctx, s.key)
	if err != nil {
		s.logger.Warn("failed to read notes, using seed", "key", s.key, "error", err)
		return s.snapshot()
	}
	if !ok {
		s.logger.Debug("no persisted notes, using seed", "key", s.key)
		return s.snapshot()
	}

	notes, err := DecodeCollection(data)
	if err != nil {
		s.logger.Warn("failed to decode notes, using seed", "key", s.key, "error", err)
		return s.snapshot()
	}

	if len(notes) > 0 {
		s.notes = dedupe(notes)
		s.stripSeed()
	}
	s.logger.Debug("notes loaded", "count", len(s.notes))
	return s.snapshot()
}

// GetAll returns the current in-memory collection without touching persistence.
func (s *Store) GetAll() []Note {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot()
}

// Get returns the note with the given identifier.
func (s *Store) Get(id string) (Note, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, n := range s.notes {
		if n.ID == id {
			return n, nil
		}
	}
	return Note{}, ErrNotFound
}

// Add inserts note at the front of the collection and persists. An entry
// with the same identifier is replaced.
func (s *Store) Add(ctx context.Context, note Note) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.notes = append([]Note{note}, without(s.notes, note.ID)...)
	s.stripSeed()
	s.persist(ctx)
}

// Update removes any entry with the same identifier, re-inserts note at the
// front and persists. Updating always promotes a note to most recent.
func (s *Store) Update(ctx context.Context, note Note) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.notes = append([]Note{note}, without(s.notes, note.ID)...)
	s.stripSeed()
	s.persist(ctx)
}

// Delete removes all entries with the note's identifier and persists.
// Removing the last note brings the seed back in memory.
func (s *Store) Delete(ctx context.Context, note Note) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.notes = without(s.notes, note.ID)
	s.persist(ctx)
	if len(s.notes) == 0 {
		s.notes = []Note{SeedNote()}
	}
}

// Save upserts a note coming from an editor. Blank notes are rejected.
func (s *Store) Save(ctx context.Context, note Note) error {
	if note.IsBlank() {
		return ErrEmptyNote
	}
	s.Update(ctx, note)
	return nil
}

// Watch observes external changes to the persisted collection if the
// preference store supports it.
func (s *Store) Watch(ctx context.Context) (<-chan Event, error) {
	w, ok := s.prefs.(Watchable)
	if !ok {
		return nil, ErrWatchUnsupported
	}
	return w.Watch(ctx, s.key)
}

// LastWriteError returns the error of the most recent failed persist, if the
// last persist failed.
func (s *Store) LastWriteError() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastWriteErr
}

// Close releases the preference store if it holds resources.
func (s *Store) Close() error {
	if c, ok := s.prefs.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// persist must be called with the lock held.
func (s *Store) persist(ctx context.Context) {
	data, err := EncodeCollection(s.notes)
	if err != nil {
		s.lastWriteErr = err
		s.logger.Warn("failed to encode notes, write skipped", "error", err)
		return
	}
	if err := s.prefs.Write(ctx, s.key, data); err != nil {
		s.lastWriteErr = err
		s.logger.Warn("failed to write notes", "key", s.key, "error", err)
		return
	}
	s.lastWriteErr = nil
	s.logger.Debug("notes persisted", "count", len(s.notes), "bytes", len(data))
}

// stripSeed removes the seed note once any other identifier exists.
func (s *Store) stripSeed() {
	for _, n := range s.notes {
		if !n.IsSeed() {
			s.notes = without(s.notes, SeedID)
			return
		}
	}
}

func (s *Store) snapshot() []Note {
	out := make([]Note, len(s.notes))
	copy(out, s.notes)
	return out
}

func without(notes []Note, id string) []Note {
	out := make([]Note, 0, len(notes))
	for _, n := range notes {
		if n.ID != id {
			out = append(out, n)
		}
	}
	return out
}

// dedupe keeps the first (most recent) occurrence of each identifier.
func dedupe(notes []Note) []Note {
	seen := make(map[string]struct{}, len(notes))
	out := make([]Note, 0, len(notes))
	for _, n := range notes {
		if _, ok := seen[n.ID]; ok {
			continue
		}
		seen[n.ID] = struct{}{}
		out = append(out, n)
	}
	return out
}
