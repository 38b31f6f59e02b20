package allocator

import (
	"unsafe"

	"github.com/wippyai/avro-datum/errors"
)

const arenaAlign = 8

// Arena is a bump allocator over a fixed, caller-owned region. Individual
// Free calls are no-ops except for the most recent block; Reset reclaims
// everything at once. Blocks never overlap, and each block's capacity ends
// where the next block begins.
type Arena struct {
	region []byte
	off    int
	last   int // offset of the most recent block, -1 if none
}

// NewArena creates an arena over region.
func NewArena(region []byte) *Arena {
	return &Arena{region: region, last: -1}
}

func alignUp(n int) int {
	if n < arenaAlign {
		return arenaAlign
	}
	return (n + arenaAlign - 1) &^ (arenaAlign - 1)
}

func (a *Arena) Malloc(size int) ([]byte, error) {
	if size < 0 {
		return nil, errors.AllocationFailed(errors.PhaseAlloc, size)
	}
	n := alignUp(size)
	if n > len(a.region)-a.off {
		return nil, errors.New(errors.PhaseAlloc, errors.KindAllocation).
			Detail("arena exhausted: %d bytes wanted, %d remaining", size, len(a.region)-a.off).
			Value(size).
			Build()
	}
	start := a.off
	a.off += n
	a.last = start
	return a.region[start : start+size : start+n], nil
}

func (a *Arena) Calloc(count, size int) ([]byte, error) {
	n, ok := mulSize(count, size)
	if !ok {
		return nil, errors.AllocationFailed(errors.PhaseAlloc, n)
	}
	buf, err := a.Malloc(n)
	if err != nil {
		return nil, err
	}
	clear(buf)
	return buf, nil
}

func (a *Arena) Realloc(buf []byte, size int) ([]byte, error) {
	if size < 0 {
		return nil, errors.AllocationFailed(errors.PhaseAlloc, size)
	}
	if cap(buf) == 0 {
		return a.Malloc(size)
	}
	if size <= cap(buf) {
		return buf[:size], nil
	}
	// grow in place when buf is the most recent block
	if start, ok := a.offsetOf(buf); ok && start == a.last {
		n := alignUp(size)
		if start+n <= len(a.region) {
			a.off = start + n
			return a.region[start : start+size : start+n], nil
		}
	}
	out, err := a.Malloc(size)
	if err != nil {
		return nil, err
	}
	copy(out, buf)
	return out, nil
}

// Free rolls the arena back if buf is the most recent block; otherwise it is
// a no-op until Reset.
func (a *Arena) Free(buf []byte) {
	if start, ok := a.offsetOf(buf); ok && start == a.last {
		a.off = start
		a.last = -1
	}
}

func (a *Arena) offsetOf(buf []byte) (int, bool) {
	if cap(buf) == 0 || cap(a.region) == 0 {
		return 0, false
	}
	base := uintptr(unsafe.Pointer(unsafe.SliceData(a.region)))
	p := uintptr(unsafe.Pointer(unsafe.SliceData(buf)))
	if p < base || p >= base+uintptr(len(a.region)) {
		return 0, false
	}
	return int(p - base), true
}

// Reset reclaims every block. Buffers handed out earlier must no longer be used.
func (a *Arena) Reset() {
	a.off = 0
	a.last = -1
}

// Used returns the number of bytes currently reserved.
func (a *Arena) Used() int {
	return a.off
}

// Cap returns the size of the region.
func (a *Arena) Cap() int {
	return len(a.region)
}
