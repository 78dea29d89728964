package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/aretw0/jotter"
	"github.com/aretw0/jotter/pkg/core"
	"github.com/aretw0/jotter/pkg/richtext"
)

// environment is what every command needs: the loaded store and the editor
// settings from the config file.
type environment struct {
	store   *core.Store
	session []richtext.SessionOption
}

func loadConfig() (*jotter.Config, error) {
	if configPath != "" {
		return jotter.LoadConfig(configPath)
	}
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("getting working directory: %w", err)
	}
	cfg, err := jotter.FindConfig(wd)
	if err != nil {
		// No root: use .jotter under the working directory.
		slog.Debug("no jotter root found, using working directory", "path", wd)
		return &jotter.Config{Data: filepath.Join(wd, ".jotter")}, nil
	}
	return cfg, nil
}

// openEnvironment resolves flags and config, opens the store and loads the
// collection.
func openEnvironment(ctx context.Context) *environment {
	cfg, err := loadConfig()
	if err != nil {
		fatal("Error loading config", err)
	}

	opts := append(cfg.Options(), jotter.WithLogger(slog.Default()), jotter.WithReadOnly(readOnly))
	if adapterName != "" {
		opts = append(opts, jotter.WithAdapter(adapterName))
	}

	uri := cfg.DataPath()
	if dataPath != "" {
		uri = dataPath
	}

	store, err := jotter.New(uri, opts...)
	if err != nil {
		fatal("Error initializing jotter", err)
	}
	store.LoadAll(ctx)

	return &environment{
		store:   store,
		session: append(cfg.SessionOptions(), richtext.WithLogger(slog.Default())),
	}
}

func (e *environment) close() {
	if err := e.store.Close(); err != nil {
		slog.Warn("failed to close store", "error", err)
	}
}

// get returns the note with id or exits.
func (e *environment) get(id string) core.Note {
	note, err := e.store.Get(id)
	if err != nil {
		fatal("Error", fmt.Errorf("%s: %w", id, err))
	}
	return note
}

// save persists an edited session, exiting if the note cannot be saved.
func (e *environment) save(ctx context.Context, s *richtext.Session) core.Note {
	note, err := s.Save()
	if err != nil {
		fatal("Error saving note", err)
	}
	e.store.Update(ctx, note)
	if err := e.store.LastWriteError(); err != nil {
		fatal("Error writing notes", err)
	}
	return note
}
