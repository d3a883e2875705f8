package queue_test

import (
	"testing"

	"github.com/katalvlaran/collections/queue"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestQueue_FIFO verifies first-in-first-out ordering.
func TestQueue_FIFO(t *testing.T) {
	q := queue.New[int]()
	for _, v := range []int{1, 2, 3} {
		q.Enqueue(v)
	}
	assert.Equal(t, 3, q.Size())

	for _, want := range []int{1, 2, 3} {
		v, err := q.Dequeue()
		require.NoError(t, err)
		assert.Equal(t, want, v)
	}
	assert.True(t, q.IsEmpty())
}

// TestQueue_Peek checks Peek does not consume the front element.
func TestQueue_Peek(t *testing.T) {
	q := queue.New[string]()
	q.Enqueue("first")
	q.Enqueue("second")

	v, err := q.Peek()
	require.NoError(t, err)
	assert.Equal(t, "first", v)
	assert.Equal(t, 2, q.Size())
}

// TestQueue_Empty verifies Dequeue/Peek fail cleanly on an empty queue.
func TestQueue_Empty(t *testing.T) {
	q := queue.New[int]()

	_, err := q.Dequeue()
	assert.ErrorIs(t, err, queue.ErrEmptyQueue)
	_, err = q.Peek()
	assert.ErrorIs(t, err, queue.ErrEmptyQueue)

	q.Enqueue(5)
	q.Clear()
	assert.True(t, q.IsEmpty())
	_, err = q.Dequeue()
	assert.ErrorIs(t, err, queue.ErrEmptyQueue)
}

// TestQueue_Interleaved mixes enqueues and dequeues to exercise head/tail
// bookkeeping across empty transitions.
func TestQueue_Interleaved(t *testing.T) {
	q := queue.New[int]()
	q.Enqueue(1)

	v, err := q.Dequeue()
	require.NoError(t, err)
	assert.Equal(t, 1, v)
	assert.True(t, q.IsEmpty())

	q.Enqueue(2)
	q.Enqueue(3)
	v, err = q.Dequeue()
	require.NoError(t, err)
	assert.Equal(t, 2, v)

	q.Enqueue(4)
	v, err = q.Dequeue()
	require.NoError(t, err)
	assert.Equal(t, 3, v)
	v, err = q.Dequeue()
	require.NoError(t, err)
	assert.Equal(t, 4, v)
}
