// Package detail keeps the master/detail selection of each viewer: which
// record, if any, has its read-only detail overlay open.
package detail

import "encoding/json"

// State is either Closed or Open with exactly one record. The zero value
// is Closed.
type State[T any] struct {
	open   bool
	record T
}

// Closed returns the state with no overlay.
func Closed[T any]() State[T] {
	return State[T]{}
}

// Open returns the state showing r.
func Open[T any](r T) State[T] {
	return State[T]{open: true, record: r}
}

// IsOpen reports whether a record is selected.
func (s State[T]) IsOpen() bool { return s.open }

// Record returns the selected record.
func (s State[T]) Record() (T, bool) {
	return s.record, s.open
}

type stateJSON[T any] struct {
	Open   bool `json:"open"`
	Record *T   `json:"record,omitempty"`
}

// MarshalJSON encodes {"open":false} or {"open":true,"record":{...}}.
func (s State[T]) MarshalJSON() ([]byte, error) {
	if !s.open {
		return json.Marshal(stateJSON[T]{})
	}
	r := s.record
	return json.Marshal(stateJSON[T]{Open: true, Record: &r})
}
