package repositories

import (
	"slices"
	"sync"
	"sync/atomic"
)

// orderedTable is an in-memory table keyed by a sequential id that keeps
// rows in insertion order.
type orderedTable[T any] struct {
	mu   sync.RWMutex
	seq  atomic.Uint64
	ids  []uint
	rows map[uint]T
}

func newOrderedTable[T any]() *orderedTable[T] {
	return &orderedTable[T]{rows: make(map[uint]T)}
}

// add allocates the next id and stores build(id) under the same lock, so
// insertion order always equals id order.
func (t *orderedTable[T]) add(build func(id uint) T) uint {
	t.mu.Lock()
	defer t.mu.Unlock()

	id := uint(t.seq.Add(1))
	t.ids = append(t.ids, id)
	t.rows[id] = build(id)
	return id
}

func (t *orderedTable[T]) get(id uint) (T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	row, ok := t.rows[id]
	return row, ok
}

// filter returns matching rows in insertion order; never nil.
func (t *orderedTable[T]) filter(match func(T) bool) []T {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]T, 0, len(t.ids))
	for _, id := range t.ids {
		row := t.rows[id]
		if match == nil || match(row) {
			out = append(out, row)
		}
	}
	return out
}

func (t *orderedTable[T]) len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.ids)
}

func (t *orderedTable[T]) update(id uint, mutate func(*T)) (T, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	row, ok := t.rows[id]
	if !ok {
		var zero T
		return zero, false
	}
	mutate(&row)
	t.rows[id] = row
	return row, true
}

func (t *orderedTable[T]) delete(id uint) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.deleteLocked(id)
}

// deleteFirst removes the earliest inserted row that matches.
func (t *orderedTable[T]) deleteFirst(match func(T) bool) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	for _, id := range t.ids {
		if match(t.rows[id]) {
			return t.deleteLocked(id)
		}
	}
	return false
}

func (t *orderedTable[T]) deleteLocked(id uint) bool {
	if _, ok := t.rows[id]; !ok {
		return false
	}
	delete(t.rows, id)
	if i := slices.Index(t.ids, id); i >= 0 {
		t.ids = slices.Delete(t.ids, i, i+1)
	}
	return true
}
