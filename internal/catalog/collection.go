// Package catalog binds every record collection of the dashboard to its
// repository, search and filter fields, detail shell and summary.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"evcharge-admin-backend/internal/command"
	"evcharge-admin-backend/internal/detail"
	"evcharge-admin-backend/internal/filter"
	"evcharge-admin-backend/internal/store"
	"evcharge-admin-backend/internal/views"
)

// ErrUnknownCollection is returned for collection names that are not in
// the catalog.
var ErrUnknownCollection = errors.New("unknown collection")

// Summary is the set of headline figures shown above a listing.
type Summary map[string]any

// Listing is one page of a collection as served to the dashboard.
type Listing struct {
	Collection string            `json:"collection"`
	View       views.Key         `json:"view"`
	Items      any               `json:"items"`
	Total      int               `json:"total"`
	Matched    int               `json:"matched"`
	Summary    Summary           `json:"summary"`
	Filters    []string          `json:"filters"`
	Actions    command.ActionSet `json:"actions"`
}

// Collection is the type-erased face of a record collection.
type Collection interface {
	Name() string
	View() views.Key
	FilterKeys() []string
	List(ctx context.Context, c filter.Criteria) (Listing, error)
	Get(ctx context.Context, id string) (any, error)
	Subject(ctx context.Context, id string) (command.Subject, error)
	Selection(ctx context.Context, viewer string) (any, error)
	Select(ctx context.Context, viewer, id string) (any, error)
	Deselect(ctx context.Context, viewer string) (any, error)
	Reload(ctx context.Context) error
}

type collection[T any] struct {
	name      string
	view      views.Key
	repo      store.Repository[T]
	spec      filter.Spec[T]
	subject   func(T) command.Subject
	summarize func([]T) Summary
	shell     *detail.Shell[T]

	mu   sync.Mutex
	memo *filter.View[T]
}

func (c *collection[T]) Name() string    { return c.name }
func (c *collection[T]) View() views.Key { return c.view }

func (c *collection[T]) FilterKeys() []string {
	keys := make([]string, len(c.spec.Exact))
	for i, f := range c.spec.Exact {
		keys[i] = f.Key
	}
	return keys
}

// records returns the memoized view, loading it on first use. Records do
// not change after seeding, so the view is only rebuilt by Reload.
func (c *collection[T]) records(ctx context.Context) (*filter.View[T], error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.memo != nil {
		return c.memo, nil
	}
	recs, err := c.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", c.name, err)
	}
	c.memo = filter.NewView(c.spec, recs)
	return c.memo, nil
}

func (c *collection[T]) Reload(ctx context.Context) error {
	recs, err := c.repo.List(ctx)
	if err != nil {
		return fmt.Errorf("reloading %s: %w", c.name, err)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.memo == nil {
		c.memo = filter.NewView(c.spec, recs)
		return nil
	}
	c.memo.Reset(recs)
	return nil
}

func (c *collection[T]) List(ctx context.Context, crit filter.Criteria) (Listing, error) {
	v, err := c.records(ctx)
	if err != nil {
		return Listing{}, err
	}
	all := v.Records()
	matched := v.Filtered(crit)
	actions, err := command.ActionsQuery{}.Query(ctx, c.name)
	if err != nil {
		return Listing{}, fmt.Errorf("listing actions of %s: %w", c.name, err)
	}

	return Listing{
		Collection: c.name,
		View:       c.view,
		Items:      matched,
		Total:      len(all),
		Matched:    len(matched),
		Summary:    c.summarize(all),
		Filters:    c.FilterKeys(),
		Actions:    actions,
	}, nil
}

func (c *collection[T]) Get(ctx context.Context, id string) (any, error) {
	return c.repo.Get(ctx, id)
}

func (c *collection[T]) Subject(ctx context.Context, id string) (command.Subject, error) {
	rec, err := c.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return c.subject(rec), nil
}

func (c *collection[T]) Selection(ctx context.Context, viewer string) (any, error) {
	return c.shell.State(ctx, viewer)
}

func (c *collection[T]) Select(ctx context.Context, viewer, id string) (any, error) {
	rec, err := c.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return c.shell.Select(ctx, viewer, rec)
}

func (c *collection[T]) Deselect(ctx context.Context, viewer string) (any, error) {
	return c.shell.Close(ctx, viewer)
}

func field[T any](key string, value func(T) string) filter.Field[T] {
	return filter.Field[T]{Key: key, Value: value}
}

func rawField[T any](key string, value func(T) string) filter.Field[T] {
	return filter.Field[T]{Key: key, Value: value, Raw: true}
}
