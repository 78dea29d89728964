package platform

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/aretw0/jotter/pkg/adapters/fs"
	"github.com/aretw0/jotter/pkg/adapters/memory"
	"github.com/aretw0/jotter/pkg/adapters/redis"
	"github.com/aretw0/jotter/pkg/adapters/sqlite"
	"github.com/aretw0/jotter/pkg/core"
)

// SQLiteFile is the database file name used when the sqlite adapter is
// given a directory.
const SQLiteFile = "jotter.db"

// Init opens the preference store selected by the options.
// The 'uri' argument is adapter-specific: a directory for "fs" and
// "sqlite", a server address for "redis" (unless WithRedisAddr is set),
// ignored for "memory".
func Init(uri string, opts ...Option) (core.Preferences, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return o.open(context.Background(), uri)
}

func (o *options) open(ctx context.Context, uri string) (core.Preferences, error) {
	if o.preferences != nil {
		return o.preferences, nil
	}

	switch o.adapter {
	case "fs", "":
		return o.initFS(ctx, uri)
	case "sqlite":
		return o.initSQLite(ctx, uri)
	case "redis":
		return o.initRedis(ctx, uri)
	case "memory":
		return memory.NewStore(), nil
	default:
		return nil, fmt.Errorf("unknown adapter: %s", o.adapter)
	}
}

// resolvePath applies the dev sandbox rules to a file-backed location.
func (o *options) resolvePath(path string) string {
	tempDir, _ := o.config["temp_dir"].(bool)
	readOnly, _ := o.config["read_only"].(bool)
	devSafety := true
	if val, ok := o.config["dev_safety"].(bool); ok {
		devSafety = val
	}

	// Read-only access cannot damage anything.
	bypass := readOnly || !devSafety
	useTemp := tempDir || (IsDevRun() && !bypass)
	resolved := ResolveDataPath(path, useTemp)

	if o.logger != nil {
		switch {
		case useTemp:
			o.logger.Warn("running in SAFE MODE (dev sandbox)", "original_path", path, "resolved_path", resolved)
		case IsDevRun() && !readOnly:
			o.logger.Warn("running in UNSAFE mode (bypassing dev sandbox)", "path", resolved)
		}
	}
	return resolved
}

func (o *options) initFS(ctx context.Context, path string) (core.Preferences, error) {
	mustExist, _ := o.config["must_exist"].(bool)
	readOnly, _ := o.config["read_only"].(bool)
	errorHandler, _ := o.config["watcher_error_handler"].(func(error))

	store := fs.NewStore(fs.Config{
		Path:         o.resolvePath(path),
		MustExist:    mustExist,
		ReadOnly:     readOnly,
		Logger:       o.logger,
		ErrorHandler: errorHandler,
	})
	if err := store.Initialize(ctx); err != nil {
		return nil, err
	}
	return store, nil
}

func (o *options) initSQLite(ctx context.Context, path string) (core.Preferences, error) {
	readOnly, _ := o.config["read_only"].(bool)

	// A directory goes through the same preparation as the fs adapter.
	dir := o.resolvePath(path)
	if err := fs.NewStore(fs.Config{Path: dir, MustExist: readOnly, ReadOnly: readOnly}).Initialize(ctx); err != nil {
		return nil, err
	}

	return sqlite.Open(ctx, sqlite.Config{
		DSN:      filepath.Join(dir, SQLiteFile),
		ReadOnly: readOnly,
		Logger:   o.logger,
	})
}

func (o *options) initRedis(ctx context.Context, uri string) (core.Preferences, error) {
	readOnly, _ := o.config["read_only"].(bool)
	addr, _ := o.config["redis_addr"].(string)
	if addr == "" {
		addr = uri
	}
	if addr == "" {
		addr = "localhost:6379"
	}

	store := redis.New(redis.Config{
		Addr:     addr,
		ReadOnly: readOnly,
		Logger:   o.logger,
	})
	if err := store.Initialize(ctx); err != nil {
		_ = store.Close()
		return nil, err
	}
	return store, nil
}
