// Package store holds the in-memory collection every resource MemStore is built on.
package store

import (
	"errors"
	"iter"
	"sync"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("not found")

// Collection is an insertion-ordered map of records keyed by a string id.
// It is safe for concurrent use. Iterators run over a snapshot taken when
// iteration starts, so callers may mutate the collection while ranging.
type Collection[T any] struct {
	mu     sync.RWMutex
	prefix string
	idOf   func(*T) *string
	order  []string
	m      map[string]T
}

// NewCollection returns an empty collection. idOf must return a pointer to
// the record's id field; prefix is prepended to generated ids.
func NewCollection[T any](prefix string, idOf func(*T) *string) *Collection[T] {
	return &Collection[T]{
		prefix: prefix,
		idOf:   idOf,
		m:      map[string]T{},
	}
}

func (c *Collection[T]) Get(id string) (T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	rec, ok := c.m[id]
	if !ok {
		var zero T
		return zero, ErrNotFound
	}
	return rec, nil
}

// Put inserts rec or overwrites the record with the same id. An empty id is
// replaced with a freshly generated one. Overwrites keep their original
// position in iteration order.
func (c *Collection[T]) Put(rec T) T {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.idOf(&rec)
	if *id == "" {
		*id = c.newIDLocked()
	}
	if _, exists := c.m[*id]; !exists {
		c.order = append(c.order, *id)
	}
	c.m[*id] = rec
	return rec
}

// Update applies fn to the stored record under the write lock.
func (c *Collection[T]) Update(id string, fn func(*T)) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	rec, ok := c.m[id]
	if !ok {
		var zero T
		return zero, ErrNotFound
	}
	fn(&rec)
	*c.idOf(&rec) = id
	c.m[id] = rec
	return rec, nil
}

func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.m)
}

func (c *Collection[T]) All() iter.Seq[T] {
	return c.Filter(func(T) bool { return true })
}

// Filter yields the records matching pred, lazily, in insertion order.
func (c *Collection[T]) Filter(pred func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, rec := range c.snapshot() {
			if !pred(rec) {
				continue
			}
			if !yield(rec) {
				return
			}
		}
	}
}

func (c *Collection[T]) snapshot() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]T, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.m[id])
	}
	return out
}

func (c *Collection[T]) newIDLocked() string {
	for {
		id := c.prefix + uuid.NewString()
		if _, taken := c.m[id]; !taken {
			return id
		}
	}
}
