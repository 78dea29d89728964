// Package jotter is the composition root for the jotter note library.
//
// It connects the note domain (pkg/core) and the rich-text editing session
// (pkg/richtext) with a concrete preference store chosen at runtime.
//
// The whole note collection lives under a single key of a key-value
// preference store and is rewritten on every mutation. A fixed welcome note
// stands in for an empty collection and disappears as soon as a real note
// exists.
//
// Adapters:
//
//   - fs: one JSON file per key, atomic writes, fsnotify watch (default).
//   - sqlite: a single table through modernc.org/sqlite.
//   - redis: string values under a key prefix.
//   - memory: process-local, for tests and scratch sessions.
//
// Usage:
//
//	store, err := jotter.New("./notes", jotter.WithLogger(logger))
//	notes := store.LoadAll(ctx)
//
//	session := richtext.Open(notes[0])
//	session.Select(0, 5)
//	session.ToggleBold()
//	note, err := session.Save()
//	store.Update(ctx, note)
package jotter
