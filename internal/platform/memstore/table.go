// Package memstore provides a small generic in-memory table used by the
// repository implementations when the server runs without Postgres. Each
// table hands out sequential int64 IDs and preserves insertion order, so
// listings behave like a SERIAL-keyed table scanned in key order.
package memstore

import "sync"

// Table stores rows of type T keyed by a sequential int64 ID.
// All methods are safe for concurrent use.
type Table[T any] struct {
	mu     sync.RWMutex
	rows   map[int64]T
	order  []int64
	nextID int64
}

// NewTable returns an empty table whose first inserted row gets ID 1.
func NewTable[T any]() *Table[T] {
	return &Table[T]{rows: make(map[int64]T)}
}

// Insert allocates the next ID, calls build with it to produce the row,
// and stores the result. The built row is returned.
func (t *Table[T]) Insert(build func(id int64) T) T {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.nextID++
	row := build(t.nextID)
	t.rows[t.nextID] = row
	t.order = append(t.order, t.nextID)
	return row
}

// Get returns the row with the given ID.
func (t *Table[T]) Get(id int64) (T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	row, ok := t.rows[id]
	return row, ok
}

// Update applies fn to the row with the given ID and stores the result.
// It reports whether the row existed.
func (t *Table[T]) Update(id int64, fn func(T) T) (T, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	row, ok := t.rows[id]
	if !ok {
		var zero T
		return zero, false
	}
	row = fn(row)
	t.rows[id] = row
	return row, true
}

// List returns all rows in insertion order. The returned slice is a copy.
func (t *Table[T]) List() []T {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]T, 0, len(t.order))
	for _, id := range t.order {
		out = append(out, t.rows[id])
	}
	return out
}

// Len reports the number of rows.
func (t *Table[T]) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.rows)
}
