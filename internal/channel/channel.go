// Package channel provides the bounded non-blocking FIFO that connects
// actors running on different cores. Each channel has exactly one producer
// and one consumer by construction; the internal mutex is the only
// synchronization between them.
package channel

import "sync"

// Channel is a fixed-capacity FIFO queue. TrySend and TryReceive never
// block: a send against a full channel discards the offered message, so a
// producer can never stall on a slow consumer.
type Channel[T any] struct {
	mu    sync.Mutex
	buf   []T
	head  int // next read position
	count int
}

// New creates a channel with the given fixed capacity.
// Panics if capacity is not positive; capacities are build-time constants,
// so a bad value is a programming error, not a runtime condition.
func New[T any](capacity int) *Channel[T] {
	if capacity <= 0 {
		panic("channel: capacity must be positive")
	}
	return &Channel[T]{buf: make([]T, capacity)}
}

// TrySend enqueues v. It returns false without blocking when the channel is
// full; the offered message is dropped.
func (c *Channel[T]) TrySend(v T) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.count == len(c.buf) {
		return false
	}
	c.buf[(c.head+c.count)%len(c.buf)] = v
	c.count++
	return true
}

// TryReceive dequeues the oldest message. The second return value is false
// when the channel is empty.
func (c *Channel[T]) TryReceive() (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero T
	if c.count == 0 {
		return zero, false
	}
	v := c.buf[c.head]
	c.buf[c.head] = zero
	c.head = (c.head + 1) % len(c.buf)
	c.count--
	return v, true
}

// Len reports the number of queued messages.
func (c *Channel[T]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.count
}

// Cap returns the fixed capacity.
func (c *Channel[T]) Cap() int {
	return len(c.buf)
}
