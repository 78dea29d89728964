package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/jotter/pkg/core"
)

func TestStore_CopiesValues(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	in := []byte("abc")
	require.NoError(t, s.Write(ctx, "k", in))
	in[0] = 'X'

	out, ok, err := s.Read(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "abc", string(out))
	assert.Equal(t, 1, s.Writes())
}

func TestStore_WithNoteStore(t *testing.T) {
	ctx := context.Background()
	prefs := NewStore()
	store := core.NewStore(prefs)
	store.LoadAll(ctx)
	store.Add(ctx, core.Note{ID: "1", Text: "one"})

	state := store.State().(core.StoreState)
	assert.Equal(t, "memory", state.PreferencesType)
	assert.Equal(t, 1, prefs.Writes())
}
