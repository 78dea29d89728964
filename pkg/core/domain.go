// Package core holds the note domain: the Note record, the collection
// ordering rules, and the Store that persists it through a Preferences
// collaborator.
package core

import "fmt"

// EventType represents the type of change observed on the preference store.
type EventType string

const (
	EventModify EventType = "MODIFY"
	EventDelete EventType = "DELETE"
)

// Event represents a change to a persisted key.
type Event struct {
	Type      EventType
	Key       string
	Timestamp int64 // Unix timestamp
}

// String implements lifecycle.Event.
func (e Event) String() string {
	return fmt.Sprintf("%s %s", e.Type, e.Key)
}
