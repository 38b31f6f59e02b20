package allocator

import avrodatum "github.com/wippyai/avro-datum"

// Strdup allocates len(s)+1 bytes through a, copies s followed by a zero
// terminator, and returns the len(s)-byte prefix. The full allocation is
// released by passing the result to a.Free.
func Strdup(a avrodatum.Allocator, s string) ([]byte, error) {
	buf, err := a.Malloc(len(s) + 1)
	if err != nil {
		return nil, err
	}
	n := copy(buf, s)
	buf[n] = 0
	return buf[:n], nil
}

// Dup allocates len(b) bytes through a and copies b into them.
func Dup(a avrodatum.Allocator, b []byte) ([]byte, error) {
	buf, err := a.Malloc(len(b))
	if err != nil {
		return nil, err
	}
	copy(buf, b)
	return buf, nil
}

// Releaser returns the releaser that frees buffers through a.
func Releaser(a avrodatum.Allocator) avrodatum.Releaser {
	return a.Free
}
