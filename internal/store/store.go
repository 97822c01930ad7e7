// Package store provides the in-memory entity collections that act as the
// marketplace's only source of truth. Every read hands out a clone so callers
// can never reach into shared state, mirroring how a remote API would behave.
package store

import "sync"

// Record is implemented by every entity kept in a Collection. WithID and
// Clone return modified copies; the stored value is never handed out.
type Record[T any] interface {
	RecordID() int
	WithID(id int) T
	Clone() T
}

// Collection holds one entity type in insertion order. IDs are positive,
// assigned as max(existing)+1 and never reused within a process.
type Collection[T Record[T]] struct {
	mu    sync.Mutex
	kind  string
	items []T
}

func NewCollection[T Record[T]](kind string) *Collection[T] {
	return &Collection[T]{kind: kind}
}

// Kind returns the entity name used in NotFoundError messages.
func (c *Collection[T]) Kind() string { return c.kind }

// Insert assigns a fresh id (any caller-supplied id is ignored), appends the
// entity and returns a copy of the stored value.
func (c *Collection[T]) Insert(item T) T {
	c.mu.Lock()
	defer c.mu.Unlock()

	next := 1
	for _, it := range c.items {
		if id := it.RecordID(); id >= next {
			next = id + 1
		}
	}
	stored := item.Clone().WithID(next)
	c.items = append(c.items, stored)
	return stored.Clone()
}

// Get returns a copy of the entity with the given id.
func (c *Collection[T]) Get(id int) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, it := range c.items {
		if it.RecordID() == id {
			return it.Clone(), nil
		}
	}
	var zero T
	return zero, &NotFoundError{Kind: c.kind, ID: id}
}

// All returns copies of every entity in insertion order. The slice is never
// nil so callers can tell "empty" apart from "not loaded".
func (c *Collection[T]) All() []T {
	return c.Where(func(T) bool { return true })
}

// Where returns copies of the entities matching pred, insertion order kept.
func (c *Collection[T]) Where(pred func(T) bool) []T {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]T, 0, len(c.items))
	for _, it := range c.items {
		if pred(it) {
			out = append(out, it.Clone())
		}
	}
	return out
}

// Update applies fn to a copy of the stored entity, writes it back with the
// id preserved and returns a copy of the result.
func (c *Collection[T]) Update(id int, fn func(*T)) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, it := range c.items {
		if it.RecordID() != id {
			continue
		}
		next := it.Clone()
		fn(&next)
		next = next.WithID(id)
		c.items[i] = next
		return next.Clone(), nil
	}
	var zero T
	return zero, &NotFoundError{Kind: c.kind, ID: id}
}

// Delete removes the entity and returns the removed copy.
func (c *Collection[T]) Delete(id int) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, it := range c.items {
		if it.RecordID() == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return it.Clone(), nil
		}
	}
	var zero T
	return zero, &NotFoundError{Kind: c.kind, ID: id}
}

func (c *Collection[T]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}
