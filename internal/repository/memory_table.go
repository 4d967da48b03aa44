package repository

import (
	"sort"
	"sync"
	"time"
)

type memoryRow[T any] struct {
	value T
	seq   uint64
}

// memoryTable is one keyed collection guarded by its own lock.
// Values go in and come out through clone so callers never share stored state.
type memoryTable[T any] struct {
	mu    sync.RWMutex
	rows  map[string]memoryRow[T]
	seq   uint64
	clone func(T) T
}

func newMemoryTable[T any](clone func(T) T) *memoryTable[T] {
	return &memoryTable[T]{
		rows:  make(map[string]memoryRow[T]),
		clone: clone,
	}
}

// insert stores value under id unless id is taken or conflict reports a clash
func (t *memoryTable[T]) insert(id string, value T, conflict func(existing T) bool) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.rows[id]; ok {
		return ErrDuplicateKey
	}
	if conflict != nil {
		for _, row := range t.rows {
			if conflict(row.value) {
				return ErrDuplicateKey
			}
		}
	}

	t.seq++
	t.rows[id] = memoryRow[T]{value: t.clone(value), seq: t.seq}
	return nil
}

func (t *memoryTable[T]) get(id string) (T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	row, ok := t.rows[id]
	if !ok {
		var zero T
		return zero, false
	}
	return t.clone(row.value), true
}

// find returns the first match in insertion order
func (t *memoryTable[T]) find(match func(T) bool) (T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	var (
		found T
		best  uint64
		ok    bool
	)
	for _, row := range t.rows {
		if match(row.value) && (!ok || row.seq < best) {
			found, best, ok = row.value, row.seq, true
		}
	}
	if !ok {
		return found, false
	}
	return t.clone(found), true
}

// listNewestFirst returns every match ordered by createdAt descending.
// Rows created at the same instant keep reverse insertion order.
func (t *memoryTable[T]) listNewestFirst(match func(T) bool, createdAt func(T) time.Time) []T {
	t.mu.RLock()
	rows := make([]memoryRow[T], 0, len(t.rows))
	for _, row := range t.rows {
		if match(row.value) {
			rows = append(rows, memoryRow[T]{value: t.clone(row.value), seq: row.seq})
		}
	}
	t.mu.RUnlock()

	sort.Slice(rows, func(i, j int) bool {
		ci, cj := createdAt(rows[i].value), createdAt(rows[j].value)
		if !ci.Equal(cj) {
			return ci.After(cj)
		}
		return rows[i].seq > rows[j].seq
	})

	out := make([]T, len(rows))
	for i, row := range rows {
		out[i] = row.value
	}
	return out
}

// modify applies fn to the stored value under the write lock
func (t *memoryTable[T]) modify(id string, fn func(*T)) (T, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	row, ok := t.rows[id]
	if !ok {
		var zero T
		return zero, false
	}
	fn(&row.value)
	t.rows[id] = row
	return t.clone(row.value), true
}
