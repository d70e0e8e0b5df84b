package filter

import "sync"

// View memoizes the filtered result of one record set. The cached slice is
// reused until the records or the criteria change.
type View[T any] struct {
	spec Spec[T]

	mu      sync.Mutex
	records []T
	version uint64
	memo    *memo[T]
}

type memo[T any] struct {
	version uint64
	key     string
	result  []T
}

// NewView creates a view over the given records.
func NewView[T any](spec Spec[T], records []T) *View[T] {
	return &View[T]{spec: spec, records: records, version: 1}
}

// Filtered returns Apply(records, spec, c), recomputing only when the
// records were reset or the criteria key changed since the last call.
// Callers must not modify the returned slice.
func (v *View[T]) Filtered(c Criteria) []T {
	key := c.Key()

	v.mu.Lock()
	defer v.mu.Unlock()
	if v.memo != nil && v.memo.version == v.version && v.memo.key == key {
		return v.memo.result
	}
	result := Apply(v.records, v.spec, c)
	v.memo = &memo[T]{version: v.version, key: key, result: result}
	return result
}

// Records returns the unfiltered source.
func (v *View[T]) Records() []T {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.records
}

// Reset replaces the source records and invalidates the memo.
func (v *View[T]) Reset(records []T) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.records = records
	v.version++
	v.memo = nil
}

// Version increases on every Reset.
func (v *View[T]) Version() uint64 {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.version
}
