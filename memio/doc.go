// Package memio provides bounds-checked cursors over a fixed byte buffer.
//
// A Reader advances a read position and a Writer advances a write position
// over a caller-owned buffer whose length is the cursor's capacity. An
// operation that would cross the capacity fails with an out_of_space error
// and leaves the position unchanged. Cursors never allocate or free the
// buffer they wrap, and work without any allocator being configured.
//
//	buf := make([]byte, 3)
//	w := memio.NewWriter(buf)
//	w.WriteRaw([]byte{1, 2, 3}, 3)
//	w.WriteRaw([]byte{4}, 1) // out_of_space, Tell() still 3
//
//	r := memio.NewReader(buf)
//	out := make([]byte, 3)
//	r.ReadRaw(out, 3)
//
// Both cursors also implement the matching io interfaces so they can be
// handed to stream encoders. io.Writer writes are all-or-nothing.
//
// After Release a cursor rejects every call with a not_initialized error.
package memio
