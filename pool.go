package ecbor

import "sync"

// OutputBuffer is a reusable byte slice meant to back repeated Encoder
// calls, adapted from the teacher codec's pooled Buffer: acquire one
// from the package pool, encode into it, and return it when done
// instead of letting the backing array get collected and reallocated
// on the next message.
type OutputBuffer struct {
	Bytes []byte
}

var outputBufferPool = sync.Pool{
	New: func() any { return &OutputBuffer{} },
}

// NewOutputBufferFromPool obtains a reset OutputBuffer from the pool.
// Call ReturnToPool when finished with it.
func NewOutputBufferFromPool() *OutputBuffer {
	b := outputBufferPool.Get().(*OutputBuffer)
	b.Bytes = b.Bytes[:0]
	return b
}

// Grow ensures the buffer has at least n bytes of capacity, preserving
// its existing length.
func (b *OutputBuffer) Grow(n int) {
	if cap(b.Bytes) >= n {
		return
	}
	grown := make([]byte, len(b.Bytes), n)
	copy(grown, b.Bytes)
	b.Bytes = grown
}

// ReturnToPool releases the buffer back to the pool. Using it after
// this call results in undefined behavior.
func (b *OutputBuffer) ReturnToPool() {
	outputBufferPool.Put(b)
}
