// Package redis stores preferences as Redis string values.
package redis

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/aretw0/jotter/pkg/core"
)

// DefaultPrefix namespaces every key.
const DefaultPrefix = "jotter:"

// Store implements core.Preferences with a Redis client.
type Store struct {
	client   redis.UniversalClient
	prefix   string
	readOnly bool
	logger   *slog.Logger
}

// Config holds the configuration for the Redis preference store.
type Config struct {
	Addr     string
	Password string
	DB       int
	Prefix   string
	ReadOnly bool
	Logger   *slog.Logger
}

// New creates a store with its own client.
func New(config Config) *Store {
	client := redis.NewClient(&redis.Options{
		Addr:     config.Addr,
		Password: config.Password,
		DB:       config.DB,
	})
	return NewWithClient(client, config)
}

// NewWithClient wraps an existing client. Addr, Password and DB are ignored.
func NewWithClient(client redis.UniversalClient, config Config) *Store {
	prefix := config.Prefix
	if prefix == "" {
		prefix = DefaultPrefix
	}
	logger := config.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Store{client: client, prefix: prefix, readOnly: config.ReadOnly, logger: logger}
}

// Initialize verifies the server is reachable.
func (s *Store) Initialize(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis unreachable: %w", err)
	}
	return nil
}

// Close releases the client.
func (s *Store) Close() error {
	return s.client.Close()
}

// Read returns the value of the prefixed key; redis.Nil means absent.
func (s *Store) Read(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := s.client.Get(ctx, s.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read %s: %w", key, err)
	}
	return data, true, nil
}

// Write sets the prefixed key without expiry.
func (s *Store) Write(ctx context.Context, key string, data []byte) error {
	if s.readOnly {
		return core.ErrReadOnly
	}
	if err := s.client.Set(ctx, s.prefix+key, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	s.logger.Debug("preference written", "key", key, "bytes", len(data))
	return nil
}

// ComponentType implements introspection.Component.
func (s *Store) ComponentType() string {
	return "redis"
}

var _ core.Preferences = (*Store)(nil)
