package platform

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/jotter/pkg/richtext"
)

const sampleConfig = `adapter: sqlite
data: store
key: journal
redis:
  addr: localhost:6380
editor:
  family: serif
  base_size: 14
  enlarged_size: 20
  image_width: 320
`

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ConfigFile)
	require.NoError(t, os.WriteFile(path, []byte(sampleConfig), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "sqlite", cfg.Adapter)
	assert.Equal(t, "journal", cfg.Key)
	assert.Equal(t, "localhost:6380", cfg.Redis.Addr)
	assert.Equal(t, filepath.Join(dir, "store"), cfg.DataPath())
	assert.Len(t, cfg.Options(), 3)

	s := richtext.New(cfg.SessionOptions()...)
	assert.Equal(t, 14.0, s.FontSize())
	s.ToggleSize()
	assert.Equal(t, 20.0, s.FontSize())
	assert.Equal(t, "serif", s.TypingAttributes().Font.Family)
}

func TestLoadConfig_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFile)
	require.NoError(t, os.WriteFile(path, []byte("adapter: [unclosed"), 0644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestFindConfig(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0755))
	require.NoError(t, os.Mkdir(filepath.Join(root, SystemDir), 0755))

	cfg, err := FindConfig(nested)
	require.NoError(t, err)
	assert.Empty(t, cfg.Options())
	assert.Equal(t, filepath.Join(root, SystemDir), cfg.DataPath())

	_, err = FindConfig(t.TempDir())
	assert.Error(t, err)
}
