// Package filter implements the search and exact-match filtering shared by
// every record listing.
package filter

import (
	"net/url"
	"strings"
)

// All is the filter value that disables an exact-match filter.
const All = "all"

// Field extracts one string attribute of a record.
type Field[T any] struct {
	Key   string
	Value func(T) string
	// Raw fields are searched without case folding.
	Raw bool
}

// Spec declares which fields a record set searches and filters on.
type Spec[T any] struct {
	Search []Field[T]
	Exact  []Field[T]
}

// Criteria is the user input for one listing.
type Criteria struct {
	Search  string
	Filters map[string]string
}

// Active returns the filters that restrict the result, i.e. those whose
// value is neither empty nor All.
func (c Criteria) Active() map[string]string {
	active := make(map[string]string, len(c.Filters))
	for k, v := range c.Filters {
		if v != "" && v != All {
			active[k] = v
		}
	}
	return active
}

// Key is a canonical encoding of the criteria. Criteria that select the
// same records under every spec produce the same key. Components are query
// escaped so search text cannot pose as a filter.
func (c Criteria) Key() string {
	q := url.Values{"q": {c.Search}}
	for k, v := range c.Active() {
		q.Set("f."+k, v)
	}
	return q.Encode()
}

// Apply returns the records matching the criteria, in source order. The
// result is never nil. A filter key with no Exact field matches no
// record.
func Apply[T any](records []T, spec Spec[T], c Criteria) []T {
	out := make([]T, 0, len(records))

	exact := make([]Field[T], 0, len(spec.Exact))
	want := make([]string, 0, len(spec.Exact))
	for k, v := range c.Active() {
		f, ok := lookup(spec.Exact, k)
		if !ok {
			return out
		}
		exact = append(exact, f)
		want = append(want, v)
	}

	needle := lower(c.Search)
	for _, r := range records {
		if !matchesSearch(r, spec.Search, c.Search, needle) {
			continue
		}
		if !matchesExact(r, exact, want) {
			continue
		}
		out = append(out, r)
	}
	return out
}

func lookup[T any](fields []Field[T], key string) (Field[T], bool) {
	for _, f := range fields {
		if f.Key == key {
			return f, true
		}
	}
	return Field[T]{}, false
}

func matchesSearch[T any](r T, fields []Field[T], raw, folded string) bool {
	if raw == "" {
		return true
	}
	for _, f := range fields {
		v := f.Value(r)
		if f.Raw {
			if strings.Contains(v, raw) {
				return true
			}
			continue
		}
		if strings.Contains(lower(v), folded) {
			return true
		}
	}
	return false
}

func matchesExact[T any](r T, fields []Field[T], want []string) bool {
	for i, f := range fields {
		if f.Value(r) != want[i] {
			return false
		}
	}
	return true
}

// lower folds ASCII letters only; other runes are left as they are.
func lower(s string) string {
	for i := 0; i < len(s); i++ {
		if c := s[i]; 'A' <= c && c <= 'Z' {
			b := []byte(s)
			for j := i; j < len(b); j++ {
				if 'A' <= b[j] && b[j] <= 'Z' {
					b[j] += 'a' - 'A'
				}
			}
			return string(b)
		}
	}
	return s
}
