// Package lifecycle publishes note store changes as a lifecycle.Source so
// a supervisor can consume them next to its other event sources.
package lifecycle

import (
	"context"

	"github.com/aretw0/lifecycle"

	"github.com/aretw0/jotter/pkg/core"
)

// StoreSource relays the events of core.Store.Watch.
type StoreSource struct {
	changes <-chan core.Event
	out     chan lifecycle.Event
}

// NewSource wraps the channel returned by core.Store.Watch.
func NewSource(changes <-chan core.Event) *StoreSource {
	return &StoreSource{
		changes: changes,
		out:     make(chan lifecycle.Event),
	}
}

// Events is closed once the store stops watching or Start's context ends.
func (s *StoreSource) Events() <-chan lifecycle.Event {
	return s.out
}

// Start relays in the background and returns immediately.
func (s *StoreSource) Start(ctx context.Context) error {
	lifecycle.Go(ctx, s.relay)
	return nil
}

func (s *StoreSource) relay(ctx context.Context) error {
	defer close(s.out)
	for {
		var change core.Event
		var ok bool
		select {
		case <-ctx.Done():
			return nil
		case change, ok = <-s.changes:
		}
		if !ok {
			return nil
		}

		select {
		case s.out <- change:
		case <-ctx.Done():
			return nil
		}
	}
}

var _ lifecycle.Source = (*StoreSource)(nil)
