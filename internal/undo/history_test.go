package undo

import (
	"errors"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testHistory() *History {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return NewHistory(l)
}

// counter is observable state mutated by forward and backward actions.
type counter struct{ value int }

func (c *counter) step(delta int) *Step {
	return NewStep(
		Func(func() error { c.value += delta; return nil }),
		Func(func() error { c.value -= delta; return nil }),
	)
}

func TestHistory_EmptyIsNoop(t *testing.T) {
	h := testHistory()

	ok, err := h.Undo()
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = h.Redo()
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, -1, h.Cursor())
}

func TestHistory_UndoRedoLinearity(t *testing.T) {
	h := testHistory()
	c := &counter{}

	op1 := c.step(1)
	h.Record(op1)
	require.NoError(t, op1.Forward())
	afterOp1 := c.value

	op2 := c.step(10)
	h.Record(op2)
	require.NoError(t, op2.Forward())
	assert.Equal(t, 11, c.value)

	ok, err := h.Undo()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 1, c.value)

	ok, err = h.Undo()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 0, c.value)

	ok, err = h.Undo()
	require.NoError(t, err)
	assert.False(t, ok, "history exhausted")

	ok, err = h.Redo()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, afterOp1, c.value)
	assert.Equal(t, 0, h.Cursor())
	assert.True(t, h.CanRedo())
}

func TestHistory_RecordPrunesRedoBranch(t *testing.T) {
	h := testHistory()
	c := &counter{}

	h.Record(c.step(1))
	h.Record(c.step(2))
	_, err := h.Undo()
	require.NoError(t, err)

	h.Record(c.step(3))
	assert.Equal(t, 2, h.Len())
	assert.False(t, h.CanRedo())

	ok, err := h.Redo()
	require.NoError(t, err)
	assert.False(t, ok, "op2 was discarded by the new record")
}

func TestHistory_RecordAfterFullUndo(t *testing.T) {
	h := testHistory()
	c := &counter{}

	h.Record(c.step(1))
	h.Record(c.step(2))
	_, _ = h.Undo()
	_, _ = h.Undo()

	h.Record(c.step(5))
	assert.Equal(t, 1, h.Len())
	assert.Equal(t, 0, h.Cursor())
}

func TestHistory_FailedActionKeepsCursor(t *testing.T) {
	h := testHistory()
	boom := errors.New("boom")
	fail := true
	h.Record(NewStep(
		Func(func() error { return nil }),
		Func(func() error {
			if fail {
				return boom
			}
			return nil
		}),
	))

	ok, err := h.Undo()
	assert.ErrorIs(t, err, boom)
	assert.False(t, ok)
	assert.Equal(t, 0, h.Cursor())

	fail = false
	ok, err = h.Undo()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, -1, h.Cursor())
}
