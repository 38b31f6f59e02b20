package allocator

import (
	"fmt"
	"sync"
	"unsafe"

	"go.uber.org/zap"

	avrodatum "github.com/wippyai/avro-datum"
)

// Stats is a snapshot of a Tracking allocator's counters.
type Stats struct {
	Allocs       int   // successful Malloc/Calloc/Realloc calls that produced a new block
	Frees        int   // Free calls that released a live block
	InvalidFrees int   // Free calls on unknown or already released blocks
	LiveAllocs   int   // blocks currently outstanding
	LiveBytes    int64 // bytes currently outstanding
	PeakBytes    int64
}

func (s Stats) String() string {
	return fmt.Sprintf("{allocs: %d, frees: %d, invalid frees: %d, live: %d (%d bytes), peak: %d bytes}",
		s.Allocs, s.Frees, s.InvalidFrees, s.LiveAllocs, s.LiveBytes, s.PeakBytes)
}

// Tracking wraps another allocator and records every block it hands out.
// It is how tests prove that a datum frees an adopted buffer exactly once
// and never frees a borrowed one.
type Tracking struct {
	parent avrodatum.Allocator
	live   map[*byte]int
	stats  Stats
	mu     sync.Mutex
}

// NewTracking wraps parent. A nil parent uses System.
func NewTracking(parent avrodatum.Allocator) *Tracking {
	if parent == nil {
		parent = System()
	}
	return &Tracking{
		parent: parent,
		live:   make(map[*byte]int),
	}
}

func blockID(buf []byte) *byte {
	if cap(buf) == 0 {
		return nil
	}
	return unsafe.SliceData(buf[:cap(buf)])
}

func (t *Tracking) record(buf []byte) {
	id := blockID(buf)
	if id == nil {
		return
	}
	t.live[id] = cap(buf)
	t.stats.Allocs++
	t.stats.LiveAllocs++
	t.stats.LiveBytes += int64(cap(buf))
	if t.stats.LiveBytes > t.stats.PeakBytes {
		t.stats.PeakBytes = t.stats.LiveBytes
	}
}

func (t *Tracking) forget(id *byte) bool {
	size, ok := t.live[id]
	if !ok {
		return false
	}
	delete(t.live, id)
	t.stats.Frees++
	t.stats.LiveAllocs--
	t.stats.LiveBytes -= int64(size)
	return true
}

func (t *Tracking) Malloc(size int) ([]byte, error) {
	buf, err := t.parent.Malloc(size)
	if err != nil {
		return nil, err
	}
	t.mu.Lock()
	t.record(buf)
	t.mu.Unlock()
	return buf, nil
}

func (t *Tracking) Calloc(count, size int) ([]byte, error) {
	buf, err := t.parent.Calloc(count, size)
	if err != nil {
		return nil, err
	}
	t.mu.Lock()
	t.record(buf)
	t.mu.Unlock()
	return buf, nil
}

func (t *Tracking) Realloc(buf []byte, size int) ([]byte, error) {
	old := blockID(buf)
	out, err := t.parent.Realloc(buf, size)
	if err != nil {
		return nil, err
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if old != nil && blockID(out) == old {
		t.stats.LiveBytes += int64(cap(out) - t.live[old])
		t.live[old] = cap(out)
		if t.stats.LiveBytes > t.stats.PeakBytes {
			t.stats.PeakBytes = t.stats.LiveBytes
		}
		return out, nil
	}
	if old != nil && !t.forget(old) {
		t.invalidFree(old)
	}
	t.record(out)
	return out, nil
}

func (t *Tracking) Free(buf []byte) {
	id := blockID(buf)
	if id == nil {
		return
	}
	t.mu.Lock()
	ok := t.forget(id)
	if !ok {
		t.invalidFree(id)
	}
	t.mu.Unlock()
	if ok {
		t.parent.Free(buf)
	}
}

func (t *Tracking) invalidFree(id *byte) {
	t.stats.InvalidFrees++
	Logger().Error("free of unknown or released block",
		zap.Uintptr("addr", uintptr(unsafe.Pointer(id))))
}

// Owns reports whether buf is a live block handed out by t.
func (t *Tracking) Owns(buf []byte) bool {
	id := blockID(buf)
	if id == nil {
		return false
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	_, ok := t.live[id]
	return ok
}

// Stats returns a snapshot of the counters.
func (t *Tracking) Stats() Stats {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.stats
}

// Check returns an error if any block is still live or any free was invalid.
func (t *Tracking) Check() error {
	s := t.Stats()
	if s.LiveAllocs == 0 && s.InvalidFrees == 0 {
		return nil
	}
	Logger().Warn("allocator check failed",
		zap.Int("live", s.LiveAllocs),
		zap.Int64("live_bytes", s.LiveBytes),
		zap.Int("invalid_frees", s.InvalidFrees))
	return fmt.Errorf("allocator: %d live blocks (%d bytes), %d invalid frees", s.LiveAllocs, s.LiveBytes, s.InvalidFrees)
}
