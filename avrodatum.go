package avrodatum

// Allocator is the allocation facade every datum payload goes through.
// Hosts substitute arena or pool implementations by passing their own.
type Allocator interface {
	// Malloc returns a buffer of exactly size bytes. Contents are unspecified.
	Malloc(size int) ([]byte, error)
	// Calloc returns a zeroed buffer of count*size bytes.
	Calloc(count, size int) ([]byte, error)
	// Realloc resizes buf, preserving its contents up to the smaller length.
	// A nil buf behaves like Malloc.
	Realloc(buf []byte, size int) ([]byte, error)
	// Free releases a buffer previously returned by this allocator.
	Free(buf []byte)
}

// Releaser disposes of a buffer when the datum holding it is destroyed or
// overwritten. A nil Releaser marks a borrowed buffer.
type Releaser func(buf []byte)
