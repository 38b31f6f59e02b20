package allocator

import (
	avrodatum "github.com/wippyai/avro-datum"
	"github.com/wippyai/avro-datum/errors"
)

// Failing wraps another allocator and fails every allocation once its
// budget of successful allocations is spent. Free always passes through.
type Failing struct {
	parent    avrodatum.Allocator
	remaining int
}

// NewFailing allows n allocations through parent before failing.
func NewFailing(parent avrodatum.Allocator, n int) *Failing {
	if parent == nil {
		parent = System()
	}
	return &Failing{parent: parent, remaining: n}
}

// SetRemaining resets the allocation budget.
func (f *Failing) SetRemaining(n int) {
	f.remaining = n
}

// Remaining returns how many allocations will still succeed.
func (f *Failing) Remaining() int {
	return f.remaining
}

func (f *Failing) take(size int) error {
	if f.remaining <= 0 {
		return errors.AllocationFailed(errors.PhaseAlloc, size)
	}
	f.remaining--
	return nil
}

func (f *Failing) Malloc(size int) ([]byte, error) {
	if err := f.take(size); err != nil {
		return nil, err
	}
	return f.parent.Malloc(size)
}

func (f *Failing) Calloc(count, size int) ([]byte, error) {
	if err := f.take(count * size); err != nil {
		return nil, err
	}
	return f.parent.Calloc(count, size)
}

func (f *Failing) Realloc(buf []byte, size int) ([]byte, error) {
	if err := f.take(size); err != nil {
		return nil, err
	}
	return f.parent.Realloc(buf, size)
}

func (f *Failing) Free(buf []byte) {
	f.parent.Free(buf)
}
