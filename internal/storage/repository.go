package storage

import (
	"fmt"
	"slices"
	"strings"
)

// Repository defines the storage operations shared by every backend.
// Callers depend on this interface so the in-memory, text, binary and
// badger implementations are interchangeable.
type Repository[T Entity] interface {
	// Add stores a new entity. It fails with ErrDuplicateID when the id is taken.
	Add(e T) error

	// Has reports whether an entity with the given id exists.
	Has(id string) (bool, error)

	// Get returns the entity with the given id or ErrNotFound.
	Get(id string) (T, error)

	// Set stores e under id, replacing any existing entity.
	Set(id string, e T) error

	// Delete removes the entity with the given id or returns ErrNotFound.
	Delete(id string) error

	// Listing renders every entity, blocks separated by a blank line.
	Listing() (string, error)

	// Values returns every entity in insertion order.
	Values() ([]T, error)
}

// Memory is a Repository held purely in memory.
type Memory[T Entity] struct {
	data *Collection[T]
}

// NewMemory returns an empty in-memory repository.
func NewMemory[T Entity]() *Memory[T] {
	return &Memory[T]{data: NewCollection[T]()}
}

// Add stores e. It fails with ErrDuplicateID when the id is taken.
func (m *Memory[T]) Add(e T) error {
	if m.data.HasEntity(e) {
		return fmt.Errorf("object with id %s already exists in repository: %w", e.Key(), ErrDuplicateID)
	}
	m.data.Add(e.Key(), e)
	return nil
}

// Has reports whether id is stored. It never fails.
func (m *Memory[T]) Has(id string) (bool, error) {
	return m.data.Has(id), nil
}

// Get returns the entity stored under id or ErrNotFound.
func (m *Memory[T]) Get(id string) (T, error) {
	return m.data.Get(id)
}

// Set stores e under id, appending it when id is new.
func (m *Memory[T]) Set(id string, e T) error {
	m.data.Set(id, e)
	return nil
}

// Delete removes id or returns ErrNotFound.
func (m *Memory[T]) Delete(id string) error {
	return m.data.Delete(id)
}

// Listing renders every entity followed by a blank line.
func (m *Memory[T]) Listing() (string, error) {
	var b strings.Builder
	for e := range m.data.Values() {
		b.WriteString(e.String())
		b.WriteString("\n\n")
	}
	return b.String(), nil
}

// Values returns a snapshot of the entities in insertion order.
func (m *Memory[T]) Values() ([]T, error) {
	return slices.Collect(m.data.Values()), nil
}
