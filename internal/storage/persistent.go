package storage

import (
	"errors"
	"fmt"
	"slices"

	"github.com/sirupsen/logrus"
)

// backend reads and writes the complete record set behind a Persistent repository.
type backend[T Entity] interface {
	load() ([]T, error)
	store(records []T) error
	String() string
}

// Persistent is a Repository that holds no state between calls. Every call
// reloads the backing store into a scratch collection, performs one operation
// on it, writes the whole collection back and clears the scratch space, so a
// mutation is durable by the time the call returns.
type Persistent[T Entity] struct {
	scratch *Memory[T]
	backend backend[T]
	log     logrus.FieldLogger
}

func newPersistent[T Entity](b backend[T], logger logrus.FieldLogger) *Persistent[T] {
	return &Persistent[T]{
		scratch: NewMemory[T](),
		backend: b,
		log:     logger.WithFields(logrus.Fields{"component": "repository", "store": b.String()}),
	}
}

// cycle runs fn between a reload and a flush. A failing fn leaves the backing
// store untouched.
func cycle[T Entity, R any](p *Persistent[T], op string, fn func(*Memory[T]) (R, error)) (R, error) {
	var zero R
	defer p.scratch.data.Clear()

	if err := p.reload(); err != nil {
		p.log.WithError(err).WithField("op", op).Error("Failed to reload store")
		return zero, err
	}

	out, err := fn(p.scratch)
	if err != nil {
		return zero, err
	}

	if err := p.flush(); err != nil {
		p.log.WithError(err).WithField("op", op).Error("Failed to flush store")
		return zero, err
	}
	return out, nil
}

func (p *Persistent[T]) reload() error {
	p.scratch.data.Clear()
	records, err := p.backend.load()
	if err != nil {
		return err
	}
	for _, r := range records {
		if err := p.scratch.Add(r); err != nil {
			if errors.Is(err, ErrDuplicateID) {
				return fmt.Errorf("%w: %s holds id %q twice", ErrMalformedRecord, p.backend, r.Key())
			}
			return err
		}
	}
	p.log.WithField("records", len(records)).Debug("Store reloaded")
	return nil
}

func (p *Persistent[T]) flush() error {
	records := slices.Collect(p.scratch.data.Values())
	if err := p.backend.store(records); err != nil {
		return err
	}
	p.log.WithField("records", len(records)).Debug("Store flushed")
	return nil
}

// Add stores e and flushes the store.
func (p *Persistent[T]) Add(e T) error {
	_, err := cycle(p, "add", func(m *Memory[T]) (struct{}, error) {
		return struct{}{}, m.Add(e)
	})
	return err
}

// Has reports whether id is in the store.
func (p *Persistent[T]) Has(id string) (bool, error) {
	return cycle(p, "has", func(m *Memory[T]) (bool, error) {
		return m.Has(id)
	})
}

// Get returns the stored entity with the given id or ErrNotFound.
func (p *Persistent[T]) Get(id string) (T, error) {
	return cycle(p, "get", func(m *Memory[T]) (T, error) {
		return m.Get(id)
	})
}

// Set stores e under id and flushes the store.
func (p *Persistent[T]) Set(id string, e T) error {
	_, err := cycle(p, "set", func(m *Memory[T]) (struct{}, error) {
		return struct{}{}, m.Set(id, e)
	})
	return err
}

// Delete removes id from the store or returns ErrNotFound.
func (p *Persistent[T]) Delete(id string) error {
	_, err := cycle(p, "delete", func(m *Memory[T]) (struct{}, error) {
		return struct{}{}, m.Delete(id)
	})
	return err
}

// Listing renders every stored entity.
func (p *Persistent[T]) Listing() (string, error) {
	return cycle(p, "listing", func(m *Memory[T]) (string, error) {
		return m.Listing()
	})
}

// Values returns every stored entity in insertion order.
func (p *Persistent[T]) Values() ([]T, error) {
	return cycle(p, "values", func(m *Memory[T]) ([]T, error) {
		return m.Values()
	})
}
