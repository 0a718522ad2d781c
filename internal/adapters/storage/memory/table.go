// Package memory provides in-process repository implementations backed by
// maps. They are the default driver and the fixture for service-level tests.
package memory

import (
	"bytes"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// table is a concurrency-safe map of rows keyed by id. Values are stored and
// returned by copy.
type table[T any] struct {
	mu      sync.RWMutex
	rows    map[uuid.UUID]T
	key     func(*T) (time.Time, uuid.UUID)
}

// newTable orders rows by the creation time and id that key returns.
func newTable[T any](key func(*T) (time.Time, uuid.UUID)) *table[T] {
	return &table[T]{rows: make(map[uuid.UUID]T), key: key}
}

func (t *table[T]) put(id uuid.UUID, v T) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.rows[id] = v
}

func (t *table[T]) get(id uuid.UUID) (T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	v, ok := t.rows[id]
	return v, ok
}

func (t *table[T]) remove(id uuid.UUID) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.rows, id)
}

// filter returns matching rows ordered by creation time, oldest first, with
// ties broken by id.
// A nil keep matches every row. The result is never nil.
func (t *table[T]) filter(keep func(*T) bool) []T {
	t.mu.RLock()
	out := make([]T, 0, len(t.rows))
	for _, v := range t.rows {
		if keep == nil || keep(&v) {
			out = append(out, v)
		}
	}
	t.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		ti, idi := t.key(&out[i])
		tj, idj := t.key(&out[j])
		if !ti.Equal(tj) {
			return ti.Before(tj)
		}
		return bytes.Compare(idi[:], idj[:]) < 0
	})
	return out
}

func (t *table[T]) exists(match func(*T) bool) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	for _, v := range t.rows {
		if match(&v) {
			return true
		}
	}
	return false
}
