package detail

import (
	"context"
	"encoding/json"
	"fmt"
)

// Shell is the master/detail controller of one collection. Each viewer has
// its own state; a new selection replaces the previous one.
type Shell[T any] struct {
	store      SelectionStore
	collection string
}

// NewShell binds a shell to a collection name.
func NewShell[T any](store SelectionStore, collection string) *Shell[T] {
	return &Shell[T]{store: store, collection: collection}
}

func (s *Shell[T]) key(viewer string) string {
	return viewer + ":" + s.collection
}

// Select opens the overlay on a snapshot of r.
func (s *Shell[T]) Select(ctx context.Context, viewer string, r T) (State[T], error) {
	b, err := json.Marshal(r)
	if err != nil {
		return Closed[T](), fmt.Errorf("encoding selection: %w", err)
	}
	if err := s.store.Set(ctx, s.key(viewer), b); err != nil {
		return Closed[T](), fmt.Errorf("saving selection: %w", err)
	}
	return Open(r), nil
}

// Close dismisses the overlay.
func (s *Shell[T]) Close(ctx context.Context, viewer string) (State[T], error) {
	if err := s.store.Delete(ctx, s.key(viewer)); err != nil {
		return Closed[T](), fmt.Errorf("clearing selection: %w", err)
	}
	return Closed[T](), nil
}

// State returns the viewer's current state. A viewer that never selected
// anything is Closed.
func (s *Shell[T]) State(ctx context.Context, viewer string) (State[T], error) {
	b, ok, err := s.store.Get(ctx, s.key(viewer))
	if err != nil {
		return Closed[T](), fmt.Errorf("loading selection: %w", err)
	}
	if !ok {
		return Closed[T](), nil
	}
	var r T
	if err := json.Unmarshal(b, &r); err != nil {
		return Closed[T](), fmt.Errorf("decoding selection: %w", err)
	}
	return Open(r), nil
}
