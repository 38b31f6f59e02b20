package allocator

import (
	"sync"

	avrodatum "github.com/wippyai/avro-datum"
	"github.com/wippyai/avro-datum/errors"
)

var (
	defaultAlloc avrodatum.Allocator
	defaultOnce  sync.Once
)

// Default returns the process-wide allocator, installing System on first use.
func Default() avrodatum.Allocator {
	defaultOnce.Do(func() {
		if defaultAlloc == nil {
			defaultAlloc = System()
		}
	})
	return defaultAlloc
}

// SetDefault installs the process-wide allocator. Passing nil restores System.
func SetDefault(a avrodatum.Allocator) {
	if a == nil {
		a = System()
	}
	defaultOnce.Do(func() {})
	defaultAlloc = a
}

type systemAllocator struct{}

var systemInstance = &systemAllocator{}

// System returns the allocator backed by the Go runtime. Every returned
// buffer has a capacity of at least one byte so distinct allocations never
// share a base address.
func System() avrodatum.Allocator {
	return systemInstance
}

func (*systemAllocator) Malloc(size int) ([]byte, error) {
	if size < 0 {
		return nil, errors.AllocationFailed(errors.PhaseAlloc, size)
	}
	return make([]byte, size, max(size, 1)), nil
}

func (s *systemAllocator) Calloc(count, size int) ([]byte, error) {
	n, ok := mulSize(count, size)
	if !ok {
		return nil, errors.AllocationFailed(errors.PhaseAlloc, n)
	}
	// make already zeroes
	return s.Malloc(n)
}

func (s *systemAllocator) Realloc(buf []byte, size int) ([]byte, error) {
	if size < 0 {
		return nil, errors.AllocationFailed(errors.PhaseAlloc, size)
	}
	if size <= cap(buf) {
		return buf[:size], nil
	}
	out, err := s.Malloc(size)
	if err != nil {
		return nil, err
	}
	copy(out, buf)
	return out, nil
}

func (*systemAllocator) Free([]byte) {}

func mulSize(count, size int) (int, bool) {
	if count < 0 || size < 0 {
		return -1, false
	}
	if size != 0 && count > int(^uint(0)>>1)/size {
		return -1, false
	}
	return count * size, true
}
