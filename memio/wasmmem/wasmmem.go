package wasmmem

import (
	"strconv"

	"github.com/tetratelabs/wazero/api"

	"github.com/wippyai/avro-datum/allocator"
	"github.com/wippyai/avro-datum/datum"
	"github.com/wippyai/avro-datum/errors"
	"github.com/wippyai/avro-datum/memio"
)

// View returns the guest memory region [offset, offset+length) as a slice
// aliasing the guest's memory.
func View(mem api.Memory, offset, length uint32) ([]byte, error) {
	if mem == nil {
		return nil, errors.NilPointer(errors.PhaseAccess, nil, "guest memory")
	}
	buf, ok := mem.Read(offset, length)
	if !ok {
		return nil, errors.New(errors.PhaseAccess, errors.KindOutOfBounds).
			Path(strconv.FormatUint(uint64(offset), 10)).
			Detail("region of %d bytes exceeds guest memory of %d bytes", length, mem.Size()).
			Build()
	}
	return buf, nil
}

// NewReader creates a reader over a guest memory region.
func NewReader(mem api.Memory, offset, length uint32) (*memio.Reader, error) {
	buf, err := View(mem, offset, length)
	if err != nil {
		return nil, err
	}
	return memio.NewReader(buf), nil
}

// NewWriter creates a writer over a guest memory region.
func NewWriter(mem api.Memory, offset, length uint32) (*memio.Writer, error) {
	buf, err := View(mem, offset, length)
	if err != nil {
		return nil, err
	}
	return memio.NewWriter(buf), nil
}

// NewArena creates a bump allocator over a guest memory region.
func NewArena(mem api.Memory, offset, length uint32) (*allocator.Arena, error) {
	buf, err := View(mem, offset, length)
	if err != nil {
		return nil, err
	}
	return allocator.NewArena(buf), nil
}

// NewFactory creates a datum factory whose payload buffers are carved from a
// guest memory region. The returned arena can be Reset once every datum
// from the factory has been released.
func NewFactory(mem api.Memory, offset, length uint32) (*datum.Factory, *allocator.Arena, error) {
	arena, err := NewArena(mem, offset, length)
	if err != nil {
		return nil, nil, err
	}
	return datum.NewFactory(arena), arena, nil
}
