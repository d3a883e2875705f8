package list_test

import (
	"testing"

	"github.com/katalvlaran/collections/list"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDoubly_BothEnds exercises insertion and removal at head and tail.
func TestDoubly_BothEnds(t *testing.T) {
	l := list.NewDoubly[int]()
	l.InsertEnd(2)
	l.InsertFront(1)
	l.InsertEnd(3)
	assert.Equal(t, []int{1, 2, 3}, l.Values())

	front, err := l.Front()
	require.NoError(t, err)
	assert.Equal(t, 1, front)

	back, err := l.Back()
	require.NoError(t, err)
	assert.Equal(t, 3, back)

	v, err := l.RemoveEnd()
	require.NoError(t, err)
	assert.Equal(t, 3, v)

	v, err = l.RemoveFront()
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	assert.Equal(t, []int{2}, l.Values())
	assert.Equal(t, 1, l.Size())
}

// TestDoubly_Empty verifies every accessor fails cleanly on an empty list.
func TestDoubly_Empty(t *testing.T) {
	l := list.NewDoubly[string]()
	assert.True(t, l.IsEmpty())

	_, err := l.Front()
	assert.ErrorIs(t, err, list.ErrEmptyList)
	_, err = l.Back()
	assert.ErrorIs(t, err, list.ErrEmptyList)
	_, err = l.RemoveFront()
	assert.ErrorIs(t, err, list.ErrEmptyList)
	_, err = l.RemoveEnd()
	assert.ErrorIs(t, err, list.ErrEmptyList)
}

// TestDoubly_SingleElement checks head/tail bookkeeping when the last
// element leaves from either end.
func TestDoubly_SingleElement(t *testing.T) {
	l := list.NewDoubly[int]()

	l.InsertEnd(42)
	v, err := l.RemoveFront()
	require.NoError(t, err)
	assert.Equal(t, 42, v)
	assert.True(t, l.IsEmpty())

	l.InsertFront(7)
	v, err = l.RemoveEnd()
	require.NoError(t, err)
	assert.Equal(t, 7, v)
	assert.True(t, l.IsEmpty())

	// list must remain fully usable afterwards
	l.InsertEnd(1)
	l.InsertEnd(2)
	assert.Equal(t, []int{1, 2}, l.Values())
}

// TestDoubly_Clear verifies Clear resets all three fields.
func TestDoubly_Clear(t *testing.T) {
	l := list.NewDoubly[int]()
	l.InsertEnd(1)
	l.InsertEnd(2)
	l.Clear()

	assert.True(t, l.IsEmpty())
	assert.Empty(t, l.Values())

	l.InsertEnd(9)
	assert.Equal(t, []int{9}, l.Values())
}
