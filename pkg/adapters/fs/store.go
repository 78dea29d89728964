package fs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/aretw0/jotter/pkg/core"
)

// FileExt is appended to every key to form its file name.
const FileExt = ".json"

// Store implements core.Preferences with one file per key inside a directory.
// Writes are atomic (temp file + rename), so readers never observe a
// partially written collection.
type Store struct {
	Path   string
	config Config
	logger *slog.Logger

	mu            sync.RWMutex
	watcherActive bool
	writes        int
}

// Config holds the configuration for the filesystem preference store.
type Config struct {
	Path      string
	MustExist bool
	ReadOnly  bool
	Logger    *slog.Logger
	// ErrorHandler receives runtime watcher failures, which are otherwise only logged.
	ErrorHandler func(error)
}

// NewStore creates a new filesystem-backed preference store.
func NewStore(config Config) *Store {
	logger := config.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Store{
		Path:   config.Path,
		config: config,
		logger: logger,
	}
}

// Initialize ensures the directory exists (or is required to exist).
func (s *Store) Initialize(ctx context.Context) error {
	if s.config.MustExist || s.config.ReadOnly {
		info, err := os.Stat(s.Path)
		if os.IsNotExist(err) {
			return fmt.Errorf("store path does not exist: %s", s.Path)
		}
		if err != nil {
			return err
		}
		if !info.IsDir() {
			return fmt.Errorf("store path is not a directory: %s", s.Path)
		}
		return nil
	}
	if err := os.MkdirAll(s.Path, 0755); err != nil {
		return fmt.Errorf("failed to create store directory: %w", err)
	}
	return nil
}

// Read returns the contents of the file backing key.
func (s *Store) Read(ctx context.Context, key string) ([]byte, bool, error) {
	path, err := s.pathFor(key)
	if err != nil {
		return nil, false, err
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read %s: %w", key, err)
	}
	return data, true, nil
}

// Write atomically replaces the file backing key.
func (s *Store) Write(ctx context.Context, key string, data []byte) error {
	if s.config.ReadOnly {
		return core.ErrReadOnly
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	path, err := s.pathFor(key)
	if err != nil {
		return err
	}
	if err := writeFileAtomic(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}

	s.mu.Lock()
	s.writes++
	s.mu.Unlock()

	s.logger.Debug("preference written", "key", key, "bytes", len(data))
	return nil
}

func (s *Store) pathFor(key string) (string, error) {
	if key == "" || strings.ContainsAny(key, `/\`) || key == "." || key == ".." {
		return "", fmt.Errorf("invalid preference key: %q", key)
	}
	return filepath.Join(s.Path, key+FileExt), nil
}

var _ core.Preferences = (*Store)(nil)
var _ core.Watchable = (*Store)(nil)
