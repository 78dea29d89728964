package core

import (
	"encoding/json"
	"fmt"
)

// record is the persisted shape of a Note.
type record struct {
	ID                 string `json:"id"`
	Text               string `json:"text"`
	AttributedTextData []byte `json:"attributedTextData,omitempty"`
}

// EncodeCollection serializes notes as a JSON array of records.
func EncodeCollection(notes []Note) ([]byte, error) {
	records := make([]record, 0, len(notes))
	for _, n := range notes {
		records = append(records, record{
			ID:                 n.ID,
			Text:               n.Text,
			AttributedTextData: n.RichContent,
		})
	}
	return json.Marshal(records)
}

// DecodeCollection parses a JSON array of records.
// Records without attributedTextData decode as plain-text notes.
func DecodeCollection(data []byte) ([]Note, error) {
	var records []record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("invalid note collection: %w", err)
	}

	notes := make([]Note, 0, len(records))
	for i, r := range records {
		if r.ID == "" {
			return nil, fmt.Errorf("invalid note collection: record %d has no id", i)
		}
		n := Note{ID: r.ID, Text: r.Text}
		if len(r.AttributedTextData) > 0 {
			n.RichContent = r.AttributedTextData
		}
		notes = append(notes, n)
	}
	return notes, nil
}
