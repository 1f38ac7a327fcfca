// Package undo keeps a linear history of reversible operations.
//
// The history only sequences actions supplied by callers; it never touches a
// repository itself. Callers perform the forward action once, directly, and
// then Record the operation so it can be undone and redone later.
package undo

import (
	"errors"
	"fmt"
)

// Invoker is a deferred action.
type Invoker interface {
	Invoke() error
}

// Func adapts a plain function to Invoker.
type Func func() error

func (f Func) Invoke() error { return f() }

// Kind names the repository operation a Call performs.
type Kind int

const (
	KindAdd Kind = iota
	KindSet
	KindDelete
)

func (k Kind) String() string {
	switch k {
	case KindAdd:
		return "add"
	case KindSet:
		return "set"
	case KindDelete:
		return "delete"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Target is the part of a repository a Call needs.
type Target[T any] interface {
	Add(e T) error
	Set(id string, e T) error
	Delete(id string) error
}

// Call records which operation to run, on which repository, with which
// arguments. Entity is captured by value when the call is built, so a later
// change to the caller's copy does not leak into the history.
type Call[T any] struct {
	Kind   Kind
	Target Target[T]
	ID     string
	Entity T
}

// AddCall builds a Call that adds e.
func AddCall[T any](target Target[T], id string, e T) Call[T] {
	return Call[T]{Kind: KindAdd, Target: target, ID: id, Entity: e}
}

// SetCall builds a Call that stores e under id.
func SetCall[T any](target Target[T], id string, e T) Call[T] {
	return Call[T]{Kind: KindSet, Target: target, ID: id, Entity: e}
}

// DeleteCall builds a Call that removes id.
func DeleteCall[T any](target Target[T], id string) Call[T] {
	return Call[T]{Kind: KindDelete, Target: target, ID: id}
}

func (c Call[T]) Invoke() error {
	switch c.Kind {
	case KindAdd:
		return c.Target.Add(c.Entity)
	case KindSet:
		return c.Target.Set(c.ID, c.Entity)
	case KindDelete:
		return c.Target.Delete(c.ID)
	default:
		return fmt.Errorf("unknown call kind %s", c.Kind)
	}
}

func (c Call[T]) String() string {
	return fmt.Sprintf("%s %s", c.Kind, c.ID)
}

// Operation is one entry of the history.
type Operation interface {
	Forward() error
	Backward() error
}

// Step pairs a forward action with the action that reverses it.
type Step struct {
	Redo Invoker
	Undo Invoker
}

// NewStep returns a Step running redo forward and undo backward.
func NewStep(redo, undo Invoker) *Step {
	return &Step{Redo: redo, Undo: undo}
}

func (s *Step) Forward() error  { return s.Redo.Invoke() }
func (s *Step) Backward() error { return s.Undo.Invoke() }

// Cascade groups operations that form one logical change, such as removing a
// client together with its rentals. Sub-operations run in the order they were
// added, both forward and backward. A cascade applies completely or not at
// all: when a sub-operation fails, the ones already run are reverted in
// reverse order.
type Cascade struct {
	ops []Operation
}

// Add appends op. Add sub-operations in the order they were applied.
func (c *Cascade) Add(op Operation) {
	c.ops = append(c.ops, op)
}

// Len returns the number of sub-operations.
func (c *Cascade) Len() int { return len(c.ops) }

// Operations returns the sub-operations in insertion order.
func (c *Cascade) Operations() []Operation {
	return append([]Operation(nil), c.ops...)
}

// Forward applies the sub-operations in insertion order.
func (c *Cascade) Forward() error {
	for i, op := range c.ops {
		if err := op.Forward(); err != nil {
			return c.rollback(i, err, Operation.Backward)
		}
	}
	return nil
}

// Backward reverses the sub-operations in insertion order.
func (c *Cascade) Backward() error {
	for i, op := range c.ops {
		if err := op.Backward(); err != nil {
			return c.rollback(i, err, Operation.Forward)
		}
	}
	return nil
}

// rollback reverts ops[:failed] from last to first after ops[failed] failed
// with cause. A revert that fails stops the rollback and is joined to cause.
func (c *Cascade) rollback(failed int, cause error, revert func(Operation) error) error {
	err := fmt.Errorf("cascade step %d: %w", failed, cause)
	for i := failed - 1; i >= 0; i-- {
		if rerr := revert(c.ops[i]); rerr != nil {
			return errors.Join(err, fmt.Errorf("rollback cascade step %d: %w", i, rerr))
		}
	}
	return err
}
