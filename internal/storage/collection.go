package storage

import (
	"fmt"
	"iter"
	"slices"
)

// Entity is anything a repository can hold.
type Entity interface {
	// Key returns the identifier the entity is stored under.
	Key() string
	fmt.Stringer
}

// Collection is an insertion ordered map from identifier to entity.
// It performs no uniqueness checks of its own; Add on an existing id replaces in place.
type Collection[T Entity] struct {
	keys  []string
	items map[string]T
}

// NewCollection returns an empty collection.
func NewCollection[T Entity]() *Collection[T] {
	return &Collection[T]{items: make(map[string]T)}
}

// Add inserts e under id.
func (c *Collection[T]) Add(id string, e T) {
	if _, ok := c.items[id]; !ok {
		c.keys = append(c.keys, id)
	}
	c.items[id] = e
}

// Get returns the entity stored under id.
func (c *Collection[T]) Get(id string) (T, error) {
	e, ok := c.items[id]
	if !ok {
		var zero T
		return zero, fmt.Errorf("id %q: %w", id, ErrNotFound)
	}
	return e, nil
}

// Set stores e under id, appending id if it is new.
func (c *Collection[T]) Set(id string, e T) {
	c.Add(id, e)
}

// Delete removes id.
func (c *Collection[T]) Delete(id string) error {
	if _, ok := c.items[id]; !ok {
		return fmt.Errorf("id %q: %w", id, ErrNotFound)
	}
	delete(c.items, id)
	c.keys = slices.DeleteFunc(c.keys, func(k string) bool { return k == id })
	return nil
}

// Has reports whether id is present.
func (c *Collection[T]) Has(id string) bool {
	_, ok := c.items[id]
	return ok
}

// HasEntity reports whether an entity with the same identifier is present.
func (c *Collection[T]) HasEntity(e T) bool {
	return c.Has(e.Key())
}

// Len returns the number of entities.
func (c *Collection[T]) Len() int { return len(c.keys) }

// Clear drops every entity.
func (c *Collection[T]) Clear() {
	c.keys = nil
	c.items = make(map[string]T)
}

// Values yields the entities in insertion order. Each call starts a fresh
// traversal over the current contents.
func (c *Collection[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, k := range c.keys {
			if !yield(c.items[k]) {
				return
			}
		}
	}
}

// All yields identifier and entity pairs in insertion order.
func (c *Collection[T]) All() iter.Seq2[string, T] {
	return func(yield func(string, T) bool) {
		for _, k := range c.keys {
			if !yield(k, c.items[k]) {
				return
			}
		}
	}
}
