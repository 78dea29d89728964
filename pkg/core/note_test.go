package core

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNewNote(t *testing.T) {
	n := NewNote("hello")
	_, err := uuid.Parse(n.ID)
	assert.NoError(t, err)
	assert.NotEqual(t, NewNote("hello").ID, n.ID)
	assert.False(t, n.IsSeed())
}

func TestNote_Title(t *testing.T) {
	assert.Equal(t, "Groceries", Note{Text: "\n  Groceries \nmilk"}.Title())
	assert.Equal(t, "", Note{Text: " \n "}.Title())
	assert.True(t, Note{Text: " \n\t"}.IsBlank())
}

func TestSeedNote(t *testing.T) {
	seed := SeedNote()
	assert.True(t, seed.IsSeed())
	assert.Equal(t, SeedText, seed.Text)
	_, err := uuid.Parse(seed.ID)
	assert.NoError(t, err)
}
