package containers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRingQueueFIFO(t *testing.T) {
	rq := NewRingQueue[string](3)
	require.NoError(t, rq.Enqueue("a"))
	require.NoError(t, rq.Enqueue("b"))
	require.NoError(t, rq.Enqueue("c"))
	assert.True(t, rq.IsFull())
	assert.ErrorIs(t, rq.Enqueue("d"), ErrQueueFull)

	assert.Equal(t, []string{"a", "b", "c"}, rq.Items())
	assert.Equal(t, 3, rq.Len())
}

func TestRingQueueEmpty(t *testing.T) {
	rq := NewRingQueue[string](2)
	assert.True(t, rq.IsEmpty())
	assert.Empty(t, rq.Items())
}

func TestRingQueuePushOverwritesOldest(t *testing.T) {
	rq := NewRingQueue[int](3)
	for i := 1; i <= 5; i++ {
		rq.Push(i)
	}
	assert.Equal(t, 3, rq.Len())
	assert.Equal(t, []int{3, 4, 5}, rq.Items())

	rq.Push(6)
	assert.Equal(t, []int{4, 5, 6}, rq.Items())
	assert.True(t, rq.IsFull())
}

func TestRingQueueZeroSize(t *testing.T) {
	rq := NewRingQueue[int](0)
	rq.Push(1)
	assert.Equal(t, 0, rq.Len())
	assert.Empty(t, rq.Items())
}
