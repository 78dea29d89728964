package core

import "context"

// DefaultKey is the preference key holding the encoded note collection.
const DefaultKey = "notes"

// Preferences defines the contract for the key-value store backing the notes.
// Adhering to this interface keeps the Store independent of the underlying
// storage mechanism (files, SQLite, Redis, memory).
type Preferences interface {
	// Read returns the bytes previously written under key.
	// The boolean is false when nothing was ever written.
	Read(ctx context.Context, key string) ([]byte, bool, error)

	// Write overwrites the value for key.
	Write(ctx context.Context, key string, data []byte) error
}

// Watchable defines an interface for preference stores that can report
// external changes to a key.
type Watchable interface {
	Watch(ctx context.Context, key string) (<-chan Event, error)
}
