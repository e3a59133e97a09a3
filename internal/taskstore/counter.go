package taskstore

import "sync/atomic"

// Counter hands out task identities. Implementations must never return the
// same value twice, whatever the number of concurrent callers.
type Counter interface {
	Next() int64
}

// AtomicCounter is a lock-free Counter.
type AtomicCounter struct {
	n atomic.Int64
}

// NewAtomicCounter returns a counter whose first Next call yields start+1.
func NewAtomicCounter(start int64) *AtomicCounter {
	c := &AtomicCounter{}
	c.n.Store(start)
	return c
}

// Next increments and returns the counter.
func (c *AtomicCounter) Next() int64 {
	return c.n.Add(1)
}
