package allocator

import (
	"math/bits"
	"sync"

	"github.com/wippyai/avro-datum/errors"
)

const (
	// Pool limits to prevent memory bloat
	poolMinShift = 4  // 16 bytes
	poolMaxShift = 16 // 64 KiB
	poolClasses  = poolMaxShift - poolMinShift + 1
)

// Pool recycles buffers in power-of-two size classes through sync.Pool.
// Requests above 64 KiB bypass the pool.
type Pool struct {
	classes [poolClasses]sync.Pool
}

// NewPool creates an empty pool allocator.
func NewPool() *Pool {
	p := &Pool{}
	for i := range p.classes {
		size := 1 << (i + poolMinShift)
		p.classes[i].New = func() any {
			buf := make([]byte, size)
			return &buf
		}
	}
	return p
}

// classFor returns the class index for a request of size bytes, or -1 if
// the request is not pooled.
func classFor(size int) int {
	if size > 1<<poolMaxShift {
		return -1
	}
	if size <= 1<<poolMinShift {
		return 0
	}
	return bits.Len(uint(size-1)) - poolMinShift
}

// classOf returns the class a returned buffer belongs to, or -1.
func classOf(capacity int) int {
	if capacity < 1<<poolMinShift || capacity > 1<<poolMaxShift || capacity&(capacity-1) != 0 {
		return -1
	}
	return bits.TrailingZeros(uint(capacity)) - poolMinShift
}

func (p *Pool) Malloc(size int) ([]byte, error) {
	if size < 0 {
		return nil, errors.AllocationFailed(errors.PhaseAlloc, size)
	}
	c := classFor(size)
	if c < 0 {
		return make([]byte, size), nil
	}
	buf := p.classes[c].Get().(*[]byte)
	return (*buf)[:size], nil
}

func (p *Pool) Calloc(count, size int) ([]byte, error) {
	n, ok := mulSize(count, size)
	if !ok {
		return nil, errors.AllocationFailed(errors.PhaseAlloc, n)
	}
	buf, err := p.Malloc(n)
	if err != nil {
		return nil, err
	}
	clear(buf)
	return buf, nil
}

func (p *Pool) Realloc(buf []byte, size int) ([]byte, error) {
	if size < 0 {
		return nil, errors.AllocationFailed(errors.PhaseAlloc, size)
	}
	if cap(buf) > 0 && size <= cap(buf) {
		return buf[:size], nil
	}
	out, err := p.Malloc(size)
	if err != nil {
		return nil, err
	}
	copy(out, buf)
	p.Free(buf)
	return out, nil
}

func (p *Pool) Free(buf []byte) {
	c := classOf(cap(buf))
	if c < 0 {
		return // not ours or oversized
	}
	full := buf[:cap(buf)]
	p.classes[c].Put(&full)
}
