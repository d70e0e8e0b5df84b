package catalog

import (
	"context"
	"fmt"
	"sort"

	"evcharge-admin-backend/internal/command"
	"evcharge-admin-backend/internal/detail"
	"evcharge-admin-backend/internal/store"
	"evcharge-admin-backend/internal/views"
)

// Catalog indexes the collections by name.
type Catalog struct {
	byName map[string]Collection
	order  []string
}

// New binds every collection to the store, keeping master/detail
// selections in sel.
func New(s store.Store, sel detail.SelectionStore) *Catalog {
	c := &Catalog{byName: make(map[string]Collection)}
	for _, col := range collections(s, sel) {
		c.byName[col.Name()] = col
		c.order = append(c.order, col.Name())
	}
	return c
}

// Lookup returns the named collection.
func (c *Catalog) Lookup(name string) (Collection, error) {
	col, ok := c.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCollection, name)
	}
	return col, nil
}

// Names lists the collections in registration order.
func (c *Catalog) Names() []string {
	return append([]string(nil), c.order...)
}

// ForView returns the collections shown on a view, in registration order.
func (c *Catalog) ForView(view views.Key) []Collection {
	var out []Collection
	for _, name := range c.order {
		if col := c.byName[name]; col.View() == view {
			out = append(out, col)
		}
	}
	return out
}

var _ command.Resolver = (*Catalog)(nil)

// Subject resolves the record an action refers to.
func (c *Catalog) Subject(ctx context.Context, collection, id string) (command.Subject, error) {
	col, err := c.Lookup(collection)
	if err != nil {
		return nil, err
	}
	return col.Subject(ctx, id)
}

// Reload re-reads the collections of a view from the store.
func (c *Catalog) Reload(ctx context.Context, view views.Key) error {
	for _, col := range c.ForView(view) {
		if err := col.Reload(ctx); err != nil {
			return err
		}
	}
	return nil
}

// Views lists the distinct views that own at least one collection.
func (c *Catalog) Views() []views.Key {
	seen := make(map[views.Key]bool)
	var out []views.Key
	for _, name := range c.order {
		v := c.byName[name].View()
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
