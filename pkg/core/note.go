package core

import (
	"strings"

	"github.com/google/uuid"
)

// SeedText is the text of the welcome note shown when no user content exists.
const SeedText = "Welcome to Notes App!"

// SeedID is the fixed identifier of the welcome note.
const SeedID = "00000000-0000-0000-0000-000000000001"

// Note is the central entity of the domain.
// RichContent is an opaque encoding of styled runs; when it is nil the note
// is plain text only and Text alone defines the content.
type Note struct {
	ID          string
	Text        string
	RichContent []byte
}

// NewNote creates a note with a freshly generated identifier.
func NewNote(text string) Note {
	return Note{ID: uuid.NewString(), Text: text}
}

// SeedNote returns the welcome note.
func SeedNote() Note {
	return Note{ID: SeedID, Text: SeedText}
}

// IsSeed reports whether n is the welcome note.
func (n Note) IsSeed() bool {
	return n.ID == SeedID
}

// IsBlank reports whether the note has no visible text.
func (n Note) IsBlank() bool {
	return strings.TrimSpace(n.Text) == ""
}

// Title returns the first non-empty line of the note.
func (n Note) Title() string {
	for _, line := range strings.Split(n.Text, "\n") {
		if t := strings.TrimSpace(line); t != "" {
			return t
		}
	}
	return ""
}

// Equal compares identity and content.
func (n Note) Equal(other Note) bool {
	return n.ID == other.ID && n.Text == other.Text && string(n.RichContent) == string(other.RichContent)
}
