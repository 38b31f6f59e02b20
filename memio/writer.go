package memio

import (
	"io"

	"go.uber.org/zap"

	"github.com/wippyai/avro-datum/errors"
)

// Writer writes sequentially into a fixed buffer.
type Writer struct {
	buf      []byte
	pos      int
	released bool
}

// NewWriter creates a writer over buf. The capacity is len(buf).
func NewWriter(buf []byte) *Writer {
	return &Writer{buf: buf}
}

func (w *Writer) check() error {
	if w == nil || w.released {
		return errors.NotInitialized(errors.PhaseWrite, "writer")
	}
	return nil
}

// WriteRaw copies exactly n bytes from src and advances the position.
func (w *Writer) WriteRaw(src []byte, n int) error {
	if err := w.check(); err != nil {
		return err
	}
	if n < 0 {
		return errors.InvalidInput(errors.PhaseWrite, nil, "negative length")
	}
	if n == 0 {
		return nil
	}
	if src == nil {
		return errors.NilPointer(errors.PhaseWrite, nil, "source buffer")
	}
	if len(src) < n {
		return errors.InvalidInput(errors.PhaseWrite, nil, "source shorter than requested length")
	}
	if rem := len(w.buf) - w.pos; rem < n {
		return errors.OutOfSpace(errors.PhaseWrite, int64(n), int64(rem))
	}
	w.pos += copy(w.buf[w.pos:], src[:n])
	return nil
}

// Write implements io.Writer. A write that does not fit is rejected whole.
func (w *Writer) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, w.check()
	}
	if err := w.WriteRaw(p, len(p)); err != nil {
		return 0, err
	}
	return len(p), nil
}

// WriteByte implements io.ByteWriter.
func (w *Writer) WriteByte(c byte) error {
	if err := w.check(); err != nil {
		return err
	}
	if w.pos >= len(w.buf) {
		return errors.OutOfSpace(errors.PhaseWrite, 1, 0)
	}
	w.buf[w.pos] = c
	w.pos++
	return nil
}

// WriteString implements io.StringWriter.
func (w *Writer) WriteString(s string) (int, error) {
	if err := w.check(); err != nil {
		return 0, err
	}
	if rem := len(w.buf) - w.pos; rem < len(s) {
		return 0, errors.OutOfSpace(errors.PhaseWrite, int64(len(s)), int64(rem))
	}
	w.pos += copy(w.buf[w.pos:], s)
	return len(s), nil
}

// Tell returns the number of bytes written.
func (w *Writer) Tell() int64 { return int64(w.pos) }

// Reset rewinds the write position so the buffer can be reused.
func (w *Writer) Reset() { w.pos = 0 }

// Bytes returns the written prefix of the buffer without copying.
func (w *Writer) Bytes() []byte { return w.buf[:w.pos] }

// Remaining returns the number of bytes left before the capacity.
func (w *Writer) Remaining() int { return len(w.buf) - w.pos }

// Cap returns the capacity.
func (w *Writer) Cap() int { return len(w.buf) }

// Dump writes a hex dump of the written region to dst.
func (w *Writer) Dump(dst io.Writer) error {
	if err := w.check(); err != nil {
		return err
	}
	return dump(dst, w.buf[:w.pos])
}

// Release detaches the writer from its buffer. The buffer itself is left
// untouched.
func (w *Writer) Release() {
	if w == nil || w.released {
		return
	}
	Logger().Debug("writer released", zap.Int("pos", w.pos), zap.Int("cap", len(w.buf)))
	w.buf = nil
	w.pos = 0
	w.released = true
}

var (
	_ io.Writer       = (*Writer)(nil)
	_ io.ByteWriter   = (*Writer)(nil)
	_ io.StringWriter = (*Writer)(nil)
	_ io.Reader       = (*Reader)(nil)
	_ io.ByteReader   = (*Reader)(nil)
)
