package memio

import (
	"encoding/hex"
	"io"

	"go.uber.org/zap"

	"github.com/wippyai/avro-datum/errors"
)

// Reader reads sequentially from a fixed buffer.
type Reader struct {
	buf      []byte
	pos      int
	released bool
}

// NewReader creates a reader over buf. The capacity is len(buf).
func NewReader(buf []byte) *Reader {
	return &Reader{buf: buf}
}

func (r *Reader) check() error {
	if r == nil || r.released {
		return errors.NotInitialized(errors.PhaseRead, "reader")
	}
	return nil
}

// ReadRaw copies exactly n bytes into dst and advances the position.
func (r *Reader) ReadRaw(dst []byte, n int) error {
	if err := r.check(); err != nil {
		return err
	}
	if n < 0 {
		return errors.InvalidInput(errors.PhaseRead, nil, "negative length")
	}
	if n == 0 {
		return nil
	}
	if dst == nil {
		return errors.NilPointer(errors.PhaseRead, nil, "destination buffer")
	}
	if len(dst) < n {
		return errors.InvalidInput(errors.PhaseRead, nil, "destination shorter than requested length")
	}
	if rem := len(r.buf) - r.pos; rem < n {
		return errors.OutOfSpace(errors.PhaseRead, int64(n), int64(rem))
	}
	r.pos += copy(dst[:n], r.buf[r.pos:r.pos+n])
	return nil
}

// Skip advances the position by n bytes without copying. A non-positive n
// is a no-op.
func (r *Reader) Skip(n int) error {
	if err := r.check(); err != nil {
		return err
	}
	if n <= 0 {
		return nil
	}
	if rem := len(r.buf) - r.pos; rem < n {
		return errors.OutOfSpace(errors.PhaseRead, int64(n), int64(rem))
	}
	r.pos += n
	return nil
}

// Read implements io.Reader. It returns io.EOF once the buffer is consumed.
func (r *Reader) Read(p []byte) (int, error) {
	if err := r.check(); err != nil {
		return 0, err
	}
	if len(p) == 0 {
		return 0, nil
	}
	if r.pos >= len(r.buf) {
		return 0, io.EOF
	}
	n := copy(p, r.buf[r.pos:])
	r.pos += n
	return n, nil
}

// ReadByte implements io.ByteReader.
func (r *Reader) ReadByte() (byte, error) {
	if err := r.check(); err != nil {
		return 0, err
	}
	if r.pos >= len(r.buf) {
		return 0, io.EOF
	}
	b := r.buf[r.pos]
	r.pos++
	return b, nil
}

// Tell returns the number of bytes consumed.
func (r *Reader) Tell() int64 { return int64(r.pos) }

// Remaining returns the number of bytes left before the capacity.
func (r *Reader) Remaining() int { return len(r.buf) - r.pos }

// Cap returns the capacity.
func (r *Reader) Cap() int { return len(r.buf) }

// Dump writes a hex dump of the consumed region to w.
func (r *Reader) Dump(w io.Writer) error {
	if err := r.check(); err != nil {
		return err
	}
	return dump(w, r.buf[:r.pos])
}

// Release detaches the reader from its buffer. The buffer itself is left
// untouched.
func (r *Reader) Release() {
	if r == nil || r.released {
		return
	}
	Logger().Debug("reader released", zap.Int("pos", r.pos), zap.Int("cap", len(r.buf)))
	r.buf = nil
	r.pos = 0
	r.released = true
}

func dump(w io.Writer, b []byte) error {
	d := hex.Dumper(w)
	if _, err := d.Write(b); err != nil {
		return err
	}
	return d.Close()
}
