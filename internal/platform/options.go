package platform

import (
	"log/slog"

	"github.com/aretw0/jotter/pkg/core"
)

// options holds the internal configuration for a note store.
type options struct {
	preferences core.Preferences
	logger      *slog.Logger
	adapter     string
	config      map[string]interface{}
}

// Option defines a functional option for configuring jotter.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		adapter: "fs",
		config:  make(map[string]interface{}),
	}
}

// WithLogger sets the logger for the store and its adapter.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithAdapter selects the preference adapter by name: "fs" (default),
// "sqlite", "redis" or "memory".
func WithAdapter(name string) Option {
	return func(o *options) {
		o.adapter = name
	}
}

// WithPreferences injects a preference store, skipping adapter selection.
func WithPreferences(prefs core.Preferences) Option {
	return func(o *options) {
		o.preferences = prefs
	}
}

// WithKey overrides the preference key holding the collection.
func WithKey(key string) Option {
	return func(o *options) {
		o.config["key"] = key
	}
}

// WithForceTemp forces the data location into a temporary directory.
func WithForceTemp(force bool) Option {
	return func(o *options) {
		o.config["temp_dir"] = force
	}
}

// WithMustExist requires the data directory to exist already.
func WithMustExist(must bool) Option {
	return func(o *options) {
		o.config["must_exist"] = must
	}
}

// WithReadOnly enables read-only mode.
// In this mode:
// 1. Writes fail with core.ErrReadOnly and are logged by the store.
// 2. Directories are never created.
// 3. The dev sandbox is bypassed (the real path is used).
func WithReadOnly(enabled bool) Option {
	return func(o *options) {
		o.config["read_only"] = enabled
	}
}

// WithDevSafety controls the sandbox used under `go run` / `go test`.
// By default (true) file-backed adapters are redirected to a temporary
// directory so a development run cannot touch real notes.
//
// CAUTION: Only disable this if you are sure your code is safe.
func WithDevSafety(enabled bool) Option {
	return func(o *options) {
		o.config["dev_safety"] = enabled
	}
}

// WithRedisAddr sets the server address for the redis adapter.
func WithRedisAddr(addr string) Option {
	return func(o *options) {
		o.config["redis_addr"] = addr
	}
}

// WithWatcherErrorHandler registers a callback for errors raised inside the
// fs watch loop.
func WithWatcherErrorHandler(fn func(error)) Option {
	return func(o *options) {
		o.config["watcher_error_handler"] = fn
	}
}
