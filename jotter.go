package jotter

import (
	"log/slog"

	"github.com/aretw0/jotter/internal/platform"
	"github.com/aretw0/jotter/pkg/core"
)

// --- Configuration ---

// Option defines a functional option for configuring a note store.
type Option = platform.Option

// Config mirrors a jotter.yaml file.
type Config = platform.Config

// WithLogger sets the logger for the store and its adapter.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithAdapter selects the preference adapter ("fs", "sqlite", "redis", "memory").
func WithAdapter(name string) Option {
	return platform.WithAdapter(name)
}

// WithPreferences injects a custom preference store.
func WithPreferences(prefs core.Preferences) Option {
	return platform.WithPreferences(prefs)
}

// WithReadOnly enables read-only mode.
func WithReadOnly(enabled bool) Option {
	return platform.WithReadOnly(enabled)
}

// WithKey overrides the preference key holding the collection.
func WithKey(key string) Option {
	return platform.WithKey(key)
}

// WithForceTemp forces the use of a temporary directory (useful for testing).
func WithForceTemp(force bool) Option {
	return platform.WithForceTemp(force)
}

// WithMustExist ensures the data directory must already exist.
func WithMustExist(must bool) Option {
	return platform.WithMustExist(must)
}

// WithDevSafety controls the sandbox used under `go run` / `go test`.
func WithDevSafety(enabled bool) Option {
	return platform.WithDevSafety(enabled)
}

// WithRedisAddr sets the server address for the redis adapter.
func WithRedisAddr(addr string) Option {
	return platform.WithRedisAddr(addr)
}

// WithWatcherErrorHandler registers a callback for watch loop failures.
func WithWatcherErrorHandler(fn func(error)) Option {
	return platform.WithWatcherErrorHandler(fn)
}

// --- Factory ---

// New creates a note store on the configured adapter.
func New(uri string, opts ...Option) (*core.Store, error) {
	return platform.New(uri, opts...)
}

// Init opens the preference store explicitly.
func Init(uri string, opts ...Option) (core.Preferences, error) {
	return platform.Init(uri, opts...)
}

// --- Config & Utils ---

// LoadConfig parses a jotter.yaml file.
func LoadConfig(path string) (*Config, error) {
	return platform.LoadConfig(path)
}

// FindConfig locates the configuration governing startDir.
func FindConfig(startDir string) (*Config, error) {
	return platform.FindConfig(startDir)
}

// FindRoot looks upwards for a .jotter directory or jotter.yaml file.
func FindRoot(startDir string) (string, error) {
	return platform.FindRoot(startDir)
}

// ResolveDataPath determines the actual data location based on safety rules.
func ResolveDataPath(userPath string, forceTemp bool) string {
	return platform.ResolveDataPath(userPath, forceTemp)
}

// IsDevRun checks if the current process is running via `go run` or `go test`.
func IsDevRun() bool {
	return platform.IsDevRun()
}
