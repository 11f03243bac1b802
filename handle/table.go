// Package handle implements an opaque handle table: callers address a
// registered value by an integer Handle rather than holding the
// concrete value directly, the way a file descriptor stands in for an
// open file.
//
// Table is a plain map guarded by a sync.RWMutex: Query takes the read
// lock, Create and Close take the write lock. There is no lock-free
// read path.
package handle

import (
	"sync"

	"go.uber.org/atomic"
)

// Handle is an opaque reference to a registered value. The zero Handle is
// never issued by Create and can be used as a "no handle" sentinel.
type Handle uint64

// Table is a registry mapping Handles to values of type T. The zero value
// is an empty, ready-to-use table.
type Table[T any] struct {
	mu      sync.RWMutex
	entries map[Handle]T
	next    atomic.Uint64
}

// NewTable returns an empty Table.
func NewTable[T any]() *Table[T] {
	return &Table[T]{entries: make(map[Handle]T)}
}

// Create registers v and returns a freshly minted Handle for it. Handles
// are never reused within a Table's lifetime, so a Handle from a closed
// entry can never alias a later Create: using a stale handle must fail,
// not silently hit someone else's entry.
func (t *Table[T]) Create(v T) Handle {
	h := Handle(t.next.Add(1))
	t.mu.Lock()
	if t.entries == nil {
		t.entries = make(map[Handle]T)
	}
	t.entries[h] = v
	t.mu.Unlock()
	return h
}

// Query resolves h to its value. ok is false for a handle that was never
// issued or has since been Closed.
func (t *Table[T]) Query(h Handle) (v T, ok bool) {
	t.mu.RLock()
	v, ok = t.entries[h]
	t.mu.RUnlock()
	return v, ok
}

// Close removes h from the table and returns its value. ok is false if h
// was not present, mirroring Query.
func (t *Table[T]) Close(h Handle) (v T, ok bool) {
	t.mu.Lock()
	v, ok = t.entries[h]
	if ok {
		delete(t.entries, h)
	}
	t.mu.Unlock()
	return v, ok
}

// Len reports the number of live handles, for tests and diagnostics.
func (t *Table[T]) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.entries)
}
