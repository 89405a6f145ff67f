package queue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryQueue(t *testing.T) {
	q := NewInMemoryQueue(2)

	require.NoError(t, q.Enqueue("a"))
	require.NoError(t, q.Enqueue("b"))
	assert.ErrorIs(t, q.Enqueue("c"), ErrQueueFull)
	assert.Equal(t, 2, q.Size())

	item, err := q.Dequeue()
	require.NoError(t, err)
	assert.Equal(t, "a", item)

	require.NoError(t, q.Enqueue("c"))
	messages, err := q.ReadAllMessages()
	require.NoError(t, err)
	assert.Equal(t, []interface{}{"b", "c"}, messages)

	_, err = q.Dequeue()
	assert.ErrorIs(t, err, ErrQueueEmpty)
}

func TestInMemoryQueue_Clear(t *testing.T) {
	q := NewInMemoryQueue(0)
	for i := 0; i < 5; i++ {
		require.NoError(t, q.Enqueue(i))
	}

	require.NoError(t, q.ClearQueue())
	assert.Equal(t, 0, q.Size())

	messages, err := q.ReadAllMessages()
	require.NoError(t, err)
	assert.Empty(t, messages)
}
