package core_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/jotter/pkg/core"
)

// MockPreferences implements core.Preferences in memory.
// It deliberately does NOT implement core.Watchable.
type MockPreferences struct {
	data     map[string][]byte
	writes   int
	readErr  error
	writeErr error
}

func NewMockPreferences() *MockPreferences {
	return &MockPreferences{data: make(map[string][]byte)}
}

func (m *MockPreferences) Read(ctx context.Context, key string) ([]byte, bool, error) {
	if m.readErr != nil {
		return nil, false, m.readErr
	}
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *MockPreferences) Write(ctx context.Context, key string, data []byte) error {
	if m.writeErr != nil {
		return m.writeErr
	}
	m.writes++
	m.data[key] = append([]byte(nil), data...)
	return nil
}

func ids(notes []core.Note) []string {
	out := make([]string, 0, len(notes))
	for _, n := range notes {
		out = append(out, n.ID)
	}
	return out
}

func TestStore_LoadAll(t *testing.T) {
	ctx := context.Background()

	t.Run("Empty Store Yields Seed", func(t *testing.T) {
		store := core.NewStore(NewMockPreferences())
		notes := store.LoadAll(ctx)
		require.Len(t, notes, 1)
		assert.Equal(t, core.SeedID, notes[0].ID)
		assert.Equal(t, "Welcome to Notes App!", notes[0].Text)
	})

	t.Run("Undecodable Blob Yields Seed", func(t *testing.T) {
		prefs := NewMockPreferences()
		prefs.data[core.DefaultKey] = []byte("{not json")
		notes := core.NewStore(prefs).LoadAll(ctx)
		assert.Equal(t, []string{core.SeedID}, ids(notes))
	})

	t.Run("Read Error Yields Seed", func(t *testing.T) {
		prefs := NewMockPreferences()
		prefs.readErr = errors.New("disk on fire")
		notes := core.NewStore(prefs).LoadAll(ctx)
		assert.Equal(t, []string{core.SeedID}, ids(notes))
	})

	t.Run("Empty Array Yields Seed", func(t *testing.T) {
		prefs := NewMockPreferences()
		prefs.data[core.DefaultKey] = []byte("[]")
		notes := core.NewStore(prefs).LoadAll(ctx)
		assert.Equal(t, []string{core.SeedID}, ids(notes))
	})

	t.Run("Seed Stripped When User Notes Exist", func(t *testing.T) {
		prefs := NewMockPreferences()
		prefs.data[core.DefaultKey] = []byte(`[{"id":"a","text":"A"},{"id":"` + core.SeedID + `","text":"Welcome to Notes App!"}]`)
		notes := core.NewStore(prefs).LoadAll(ctx)
		assert.Equal(t, []string{"a"}, ids(notes))
	})

	t.Run("Missing Rich Content Is Plain Note", func(t *testing.T) {
		prefs := NewMockPreferences()
		prefs.data[core.DefaultKey] = []byte(`[{"id":"a","text":"plain"}]`)
		notes := core.NewStore(prefs).LoadAll(ctx)
		require.Len(t, notes, 1)
		assert.Nil(t, notes[0].RichContent)
		assert.Equal(t, "plain", notes[0].Text)
	})
}

func TestStore_AddOrdering(t *testing.T) {
	ctx := context.Background()
	prefs := NewMockPreferences()
	store := core.NewStore(prefs)
	store.LoadAll(ctx)

	a := core.Note{ID: "1", Text: "Groceries"}
	b := core.Note{ID: "2", Text: "Call mom"}
	store.Add(ctx, a)
	store.Add(ctx, b)

	assert.Equal(t, []string{"2", "1"}, ids(store.GetAll()))
	assert.Equal(t, 2, prefs.writes)

	// A fresh store over the same preferences never sees the seed again.
	reloaded := core.NewStore(prefs).LoadAll(ctx)
	assert.Equal(t, []string{"2", "1"}, ids(reloaded))
}

func TestStore_AddKeepsIdentifiersUnique(t *testing.T) {
	ctx := context.Background()
	prefs := NewMockPreferences()
	store := core.NewStore(prefs)
	store.LoadAll(ctx)

	store.Add(ctx, core.Note{ID: "1", Text: "a"})
	store.Add(ctx, core.Note{ID: "2", Text: "other"})
	store.Add(ctx, core.Note{ID: "1", Text: "b"})

	notes := store.GetAll()
	assert.Equal(t, []string{"1", "2"}, ids(notes))
	assert.Equal(t, "b", notes[0].Text)
	assert.Equal(t, []string{"1", "2"}, ids(core.NewStore(prefs).LoadAll(ctx)))
}

func TestStore_Update(t *testing.T) {
	ctx := context.Background()
	store := core.NewStore(NewMockPreferences())
	store.LoadAll(ctx)

	store.Add(ctx, core.Note{ID: "1", Text: "one"})
	store.Add(ctx, core.Note{ID: "2", Text: "two"})

	edited := core.Note{ID: "1", Text: "one, edited"}
	store.Update(ctx, edited)
	once := store.GetAll()
	assert.Equal(t, []string{"1", "2"}, ids(once))
	assert.Equal(t, "one, edited", once[0].Text)

	store.Update(ctx, edited)
	assert.Equal(t, once, store.GetAll(), "update must be idempotent")
}

func TestStore_UpdateUnknownInserts(t *testing.T) {
	ctx := context.Background()
	store := core.NewStore(NewMockPreferences())
	store.LoadAll(ctx)

	store.Update(ctx, core.Note{ID: "x", Text: "new"})
	assert.Equal(t, []string{"x"}, ids(store.GetAll()))
}

func TestStore_Delete(t *testing.T) {
	ctx := context.Background()
	prefs := NewMockPreferences()
	store := core.NewStore(prefs)
	store.LoadAll(ctx)

	store.Add(ctx, core.Note{ID: "1", Text: "one"})
	store.Add(ctx, core.Note{ID: "2", Text: "two"})
	store.Delete(ctx, core.Note{ID: "1"})

	assert.Equal(t, []string{"2"}, ids(store.GetAll()))
	_, err := store.Get("1")
	assert.ErrorIs(t, err, core.ErrNotFound)

	store.Delete(ctx, core.Note{ID: "2"})
	assert.Equal(t, []string{core.SeedID}, ids(store.GetAll()))

	// Reload falls back to the seed once nothing is left.
	assert.Equal(t, []string{core.SeedID}, ids(core.NewStore(prefs).LoadAll(ctx)))
}

func TestStore_GetAllDoesNotTouchPersistence(t *testing.T) {
	prefs := NewMockPreferences()
	prefs.readErr = errors.New("must not be called")
	store := core.NewStore(prefs)

	assert.Empty(t, store.GetAll())
	assert.Equal(t, 0, prefs.writes)
}

func TestStore_WriteFailureIsSwallowed(t *testing.T) {
	ctx := context.Background()
	prefs := NewMockPreferences()
	store := core.NewStore(prefs)
	store.LoadAll(ctx)

	prefs.writeErr = errors.New("quota exceeded")
	store.Add(ctx, core.Note{ID: "1", Text: "kept in memory"})

	assert.Equal(t, []string{"1"}, ids(store.GetAll()))
	assert.Error(t, store.LastWriteError())
	_, persisted := prefs.data[core.DefaultKey]
	assert.False(t, persisted)

	prefs.writeErr = nil
	store.Add(ctx, core.Note{ID: "2", Text: "flushes both"})
	assert.NoError(t, store.LastWriteError())
	assert.Equal(t, []string{"2", "1"}, ids(core.NewStore(prefs).LoadAll(ctx)))
}

func TestStore_SaveRejectsBlank(t *testing.T) {
	ctx := context.Background()
	prefs := NewMockPreferences()
	store := core.NewStore(prefs)
	store.LoadAll(ctx)

	err := store.Save(ctx, core.Note{ID: "1", Text: "   \n\t"})
	assert.ErrorIs(t, err, core.ErrEmptyNote)
	assert.Equal(t, 0, prefs.writes)
	assert.Equal(t, []string{core.SeedID}, ids(store.GetAll()))

	require.NoError(t, store.Save(ctx, core.Note{ID: "1", Text: "ok"}))
	assert.Equal(t, []string{"1"}, ids(store.GetAll()))
}

func TestStore_WatchUnsupported(t *testing.T) {
	store := core.NewStore(NewMockPreferences())
	_, err := store.Watch(context.Background())
	assert.ErrorIs(t, err, core.ErrWatchUnsupported)
}

func TestStore_CustomKey(t *testing.T) {
	ctx := context.Background()
	prefs := NewMockPreferences()
	store := core.NewStore(prefs, core.WithKey("drafts"))
	store.LoadAll(ctx)
	store.Add(ctx, core.Note{ID: "1", Text: "draft"})

	_, ok := prefs.data["drafts"]
	assert.True(t, ok)
	_, ok = prefs.data[core.DefaultKey]
	assert.False(t, ok)
}

func TestStore_State(t *testing.T) {
	ctx := context.Background()
	store := core.NewStore(NewMockPreferences())
	store.LoadAll(ctx)

	state, ok := store.State().(core.StoreState)
	require.True(t, ok)
	assert.True(t, state.SeedOnly)
	assert.Equal(t, "preferences", state.PreferencesType)
	assert.Equal(t, "store", store.ComponentType())
}

type closingPreferences struct {
	*MockPreferences
	closed bool
}

func (c *closingPreferences) Close() error {
	c.closed = true
	return nil
}

func TestStore_Close(t *testing.T) {
	assert.NoError(t, core.NewStore(NewMockPreferences()).Close())

	prefs := &closingPreferences{MockPreferences: NewMockPreferences()}
	require.NoError(t, core.NewStore(prefs).Close())
	assert.True(t, prefs.closed)
}
