// Package pool recycles glyph coverage buffers.
package pool

import (
	"math/bits"
	"sync"
)

// minClass is the smallest size class, 64 bytes.
const minClass = 6

// maxClass is the largest pooled size class, 16 MiB. Larger buffers are
// allocated directly and dropped on Put.
const maxClass = 24

// Pool is a thread-safe pool of byte buffers.
//
// Pool groups buffers by power-of-two capacity so a buffer released by
// one glyph can be reused by any glyph of similar area.
//
// Thread safety: All methods are safe for concurrent use.
type Pool struct {
	mu      sync.Mutex
	buckets [maxClass + 1][][]byte
	maxSize int // max buffers per bucket
}

// New creates a buffer pool retaining at most maxPerBucket buffers per
// size class. A maxPerBucket of 0 or less means unlimited.
func New(maxPerBucket int) *Pool {
	return &Pool{maxSize: maxPerBucket}
}

// class returns the size class holding n bytes.
func class(n int) int {
	if n <= 1<<minClass {
		return minClass
	}
	return bits.Len(uint(n - 1))
}

// Get returns a zeroed buffer of length n.
// Returns nil for n <= 0.
func (p *Pool) Get(n int) []byte {
	if n <= 0 {
		return nil
	}
	c := class(n)
	if c > maxClass {
		return make([]byte, n)
	}

	p.mu.Lock()
	bucket := p.buckets[c]
	if len(bucket) > 0 {
		buf := bucket[len(bucket)-1]
		p.buckets[c] = bucket[:len(bucket)-1]
		p.mu.Unlock()

		buf = buf[:n]
		clear(buf)
		return buf
	}
	p.mu.Unlock()

	return make([]byte, n, 1<<c)
}

// Put returns a buffer to the pool for reuse.
// Buffers not obtained from Get, or whose bucket is full, are discarded.
func (p *Pool) Put(buf []byte) {
	if cap(buf) == 0 {
		return
	}
	c := class(cap(buf))
	if c > maxClass || cap(buf) != 1<<c {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	bucket := p.buckets[c]
	if p.maxSize > 0 && len(bucket) >= p.maxSize {
		return
	}
	p.buckets[c] = append(bucket, buf[:0])
}

// Len reports the number of buffers currently pooled.
func (p *Pool) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	n := 0
	for _, b := range p.buckets {
		n += len(b)
	}
	return n
}

// defaultPool is the package-level pool for convenient usage.
var defaultPool = New(16)

// Get retrieves a buffer from the default pool.
func Get(n int) []byte {
	return defaultPool.Get(n)
}

// Put returns a buffer to the default pool.
func Put(buf []byte) {
	defaultPool.Put(buf)
}
