package undo

import (
	"github.com/sirupsen/logrus"
)

// History is a linear sequence of operations with a cursor at the most
// recently applied one. Entries after the cursor are available for redo.
type History struct {
	ops    []Operation
	cursor int
	log    logrus.FieldLogger
}

// NewHistory returns an empty history.
func NewHistory(logger logrus.FieldLogger) *History {
	return &History{
		cursor: -1,
		log:    logger.WithField("component", "undo"),
	}
}

// Record appends op as the most recently applied operation, discarding any
// operations that were undone and not redone.
func (h *History) Record(op Operation) {
	clear(h.ops[h.cursor+1:])
	h.ops = append(h.ops[:h.cursor+1], op)
	h.cursor = len(h.ops) - 1
	h.log.WithField("size", len(h.ops)).Debug("Operation recorded")
}

// Undo reverses the operation at the cursor. It reports false when there is
// nothing to undo. When the backward action fails the cursor stays put.
func (h *History) Undo() (bool, error) {
	if !h.CanUndo() {
		h.log.Info("No undos available")
		return false, nil
	}
	if err := h.ops[h.cursor].Backward(); err != nil {
		h.log.WithError(err).Error("Undo failed")
		return false, err
	}
	h.cursor--
	return true, nil
}

// Redo reapplies the operation after the cursor. It reports false when there
// is nothing to redo. When the forward action fails the cursor stays put.
func (h *History) Redo() (bool, error) {
	if !h.CanRedo() {
		h.log.Info("No redos available")
		return false, nil
	}
	if err := h.ops[h.cursor+1].Forward(); err != nil {
		h.log.WithError(err).Error("Redo failed")
		return false, err
	}
	h.cursor++
	return true, nil
}

func (h *History) CanUndo() bool { return h.cursor >= 0 }

func (h *History) CanRedo() bool { return h.cursor < len(h.ops)-1 }

// Len returns the number of recorded operations, including undone ones.
func (h *History) Len() int { return len(h.ops) }

// Cursor returns the index of the most recently applied operation, or -1.
func (h *History) Cursor() int { return h.cursor }
