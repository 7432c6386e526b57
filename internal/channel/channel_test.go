package channel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFIFOOrder(t *testing.T) {
	c := New[int](4)

	for i := 1; i <= 3; i++ {
		require.True(t, c.TrySend(i))
	}
	require.Equal(t, 3, c.Len())

	for i := 1; i <= 3; i++ {
		v, ok := c.TryReceive()
		require.True(t, ok)
		assert.Equal(t, i, v)
	}

	_, ok := c.TryReceive()
	assert.False(t, ok, "channel should be empty after draining")
}

func TestOverflowDropsOfferedMessage(t *testing.T) {
	c := New[string](2)

	require.True(t, c.TrySend("a"))
	require.True(t, c.TrySend("b"))
	assert.False(t, c.TrySend("c"), "send into full channel must fail, not block")
	assert.Equal(t, 2, c.Len())

	// The queued messages are untouched; only the offered one was dropped.
	v, ok := c.TryReceive()
	require.True(t, ok)
	assert.Equal(t, "a", v)
	v, ok = c.TryReceive()
	require.True(t, ok)
	assert.Equal(t, "b", v)
}

func TestReceiveEmpty(t *testing.T) {
	c := New[int](1)

	v, ok := c.TryReceive()
	assert.False(t, ok)
	assert.Zero(t, v)
}

func TestRefillAfterDrain(t *testing.T) {
	c := New[int](2)

	// Cycle the ring through several wrap-arounds.
	for round := 0; round < 5; round++ {
		require.True(t, c.TrySend(round))
		require.True(t, c.TrySend(round+100))

		v, ok := c.TryReceive()
		require.True(t, ok)
		assert.Equal(t, round, v)
		v, ok = c.TryReceive()
		require.True(t, ok)
		assert.Equal(t, round+100, v)
	}
}

func TestCap(t *testing.T) {
	assert.Equal(t, 4, New[int](4).Cap())
	assert.Equal(t, 2, New[int](2).Cap())
}

func TestNewRejectsNonPositiveCapacity(t *testing.T) {
	assert.Panics(t, func() { New[int](0) })
	assert.Panics(t, func() { New[int](-1) })
}

// TestSingleProducerSingleConsumer exercises the channel under true
// concurrent access: everything the producer managed to enqueue must arrive
// at the consumer intact and in order.
func TestSingleProducerSingleConsumer(t *testing.T) {
	c := New[int](4)

	const total = 10000
	accepted := make(chan int, total)
	done := make(chan struct{})

	go func() {
		defer close(accepted)
		defer close(done)
		for i := 0; i < total; i++ {
			if c.TrySend(i) {
				accepted <- i
			}
		}
	}()

	producerDone := false
	var received []int
	for {
		v, ok := c.TryReceive()
		if ok {
			received = append(received, v)
			continue
		}
		if producerDone {
			// Producer finished and the channel is empty: all done.
			break
		}
		select {
		case <-done:
			producerDone = true
		default:
		}
	}

	var want []int
	for v := range accepted {
		want = append(want, v)
	}
	require.Equal(t, want, received, "accepted messages must arrive in FIFO order with none lost")
}
