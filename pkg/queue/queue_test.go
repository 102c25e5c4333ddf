package queue

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInMemoryQueue(t *testing.T) {
	q := NewInMemoryQueue()
	assert.Equal(t, 0, q.Size())

	q.Enqueue("first")
	q.Enqueue("second")
	q.Enqueue("third")
	assert.Equal(t, 3, q.Size())

	assert.Equal(t, "first", q.Dequeue())
	assert.Equal(t, 2, q.Size())

	events := q.ReadAllEvents()
	assert.Equal(t, []interface{}{"second", "third"}, events)
	assert.Equal(t, 0, q.Size())

	q.Enqueue("stale")
	q.ClearQueue()
	assert.Equal(t, 0, q.Size())
	assert.Nil(t, q.ReadAllEvents())
}
