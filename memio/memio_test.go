package memio

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/wippyai/avro-datum/errors"
)

func TestWriterCapacity(t *testing.T) {
	w := NewWriter(make([]byte, 4))

	if err := w.WriteRaw([]byte{1, 2, 3}, 3); err != nil {
		t.Fatalf("WriteRaw: %v", err)
	}
	err := w.WriteRaw([]byte{4, 5}, 2)
	if !errors.IsResourceExhausted(err) {
		t.Fatalf("overflowing write error = %v, want resource exhausted", err)
	}
	if w.Tell() != 3 {
		t.Errorf("Tell after failed write = %d, want 3", w.Tell())
	}

	if err := w.WriteRaw([]byte{4}, 1); err != nil {
		t.Fatalf("write up to capacity: %v", err)
	}
	if w.Tell() != 4 || w.Remaining() != 0 {
		t.Errorf("Tell = %d, Remaining = %d", w.Tell(), w.Remaining())
	}
	if err := w.WriteRaw([]byte{5}, 1); !errors.IsResourceExhausted(err) {
		t.Errorf("write past capacity error = %v, want resource exhausted", err)
	}
	if !bytes.Equal(w.Bytes(), []byte{1, 2, 3, 4}) {
		t.Errorf("Bytes = %v", w.Bytes())
	}
}

func TestWriterArguments(t *testing.T) {
	w := NewWriter(make([]byte, 4))
	tests := []struct {
		name string
		src  []byte
		n    int
	}{
		{"negative", []byte{1}, -1},
		{"nil source", nil, 1},
		{"short source", []byte{1}, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := w.WriteRaw(tt.src, tt.n); !errors.IsInvalidArgument(err) {
				t.Errorf("WriteRaw error = %v, want invalid argument", err)
			}
			if w.Tell() != 0 {
				t.Errorf("Tell = %d, want 0", w.Tell())
			}
		})
	}
	if err := w.WriteRaw(nil, 0); err != nil {
		t.Errorf("zero-length write: %v", err)
	}
}

func TestRoundTrip(t *testing.T) {
	buf := make([]byte, 3)
	w := NewWriter(buf)
	if err := w.WriteRaw([]byte{0x01, 0x02, 0x03}, 3); err != nil {
		t.Fatal(err)
	}

	r := NewReader(buf)
	out := make([]byte, 3)
	if err := r.ReadRaw(out, 3); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(out, []byte{0x01, 0x02, 0x03}) {
		t.Errorf("read %v, want [1 2 3]", out)
	}
	if err := r.ReadRaw(out, 1); !errors.IsResourceExhausted(err) {
		t.Errorf("read past end error = %v, want resource exhausted", err)
	}
	if r.Tell() != 3 {
		t.Errorf("Tell = %d, want 3", r.Tell())
	}
}

func TestReaderArguments(t *testing.T) {
	r := NewReader([]byte{1, 2, 3})
	if err := r.ReadRaw(make([]byte, 1), -1); !errors.IsInvalidArgument(err) {
		t.Errorf("negative read error = %v", err)
	}
	if err := r.ReadRaw(nil, 1); !errors.IsInvalidArgument(err) {
		t.Errorf("nil destination error = %v", err)
	}
	if err := r.ReadRaw(make([]byte, 1), 2); !errors.IsInvalidArgument(err) {
		t.Errorf("short destination error = %v", err)
	}
	if err := r.ReadRaw(nil, 0); err != nil {
		t.Errorf("zero-length read: %v", err)
	}
	if r.Tell() != 0 {
		t.Errorf("Tell = %d, want 0", r.Tell())
	}
}

func TestReaderSkip(t *testing.T) {
	r := NewReader([]byte{1, 2, 3, 4})
	if err := r.Skip(2); err != nil {
		t.Fatal(err)
	}
	b, err := r.ReadByte()
	if err != nil || b != 3 {
		t.Errorf("ReadByte after skip = %d, %v, want 3", b, err)
	}
	if err := r.Skip(-5); err != nil {
		t.Errorf("negative skip should be a no-op, got %v", err)
	}
	if err := r.Skip(2); !errors.IsResourceExhausted(err) {
		t.Errorf("skip past end error = %v", err)
	}
	if r.Tell() != 3 || r.Remaining() != 1 {
		t.Errorf("Tell = %d, Remaining = %d", r.Tell(), r.Remaining())
	}
}

func TestWriterReset(t *testing.T) {
	buf := make([]byte, 2)
	w := NewWriter(buf)
	_ = w.WriteByte('a')
	_ = w.WriteByte('b')
	if err := w.WriteByte('c'); !errors.IsResourceExhausted(err) {
		t.Errorf("WriteByte past end error = %v", err)
	}
	w.Reset()
	if w.Tell() != 0 {
		t.Errorf("Tell after Reset = %d", w.Tell())
	}
	if _, err := w.WriteString("xy"); err != nil {
		t.Fatal(err)
	}
	if string(buf) != "xy" {
		t.Errorf("buffer = %q, want xy", buf)
	}
}

func TestIOInterfaces(t *testing.T) {
	w := NewWriter(make([]byte, 8))
	n, err := io.WriteString(w, "hello")
	if err != nil || n != 5 {
		t.Fatalf("WriteString = %d, %v", n, err)
	}
	n, err = w.Write([]byte("world"))
	if n != 0 || !errors.IsResourceExhausted(err) {
		t.Errorf("oversized Write = %d, %v; want all-or-nothing failure", n, err)
	}
	if w.Tell() != 5 {
		t.Errorf("Tell = %d, want 5", w.Tell())
	}

	r := NewReader(w.Bytes())
	got, err := io.ReadAll(r)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "hello" {
		t.Errorf("ReadAll = %q", got)
	}
	if _, err := r.ReadByte(); err != io.EOF {
		t.Errorf("ReadByte at end = %v, want EOF", err)
	}
}

func TestDump(t *testing.T) {
	w := NewWriter(make([]byte, 16))
	_, _ = w.WriteString("AB")
	var sb strings.Builder
	if err := w.Dump(&sb); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(sb.String(), "00000000  41 42") {
		t.Errorf("writer dump = %q", sb.String())
	}

	r := NewReader([]byte{0xde, 0xad, 0xbe})
	_ = r.Skip(2)
	sb.Reset()
	if err := r.Dump(&sb); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(sb.String(), "de ad") || strings.Contains(sb.String(), "be") {
		t.Errorf("reader dump should cover the consumed bytes only: %q", sb.String())
	}
}

func TestRelease(t *testing.T) {
	buf := []byte{1, 2}
	r := NewReader(buf)
	r.Release()
	r.Release()
	if err := r.ReadRaw(make([]byte, 1), 1); !errors.IsInvalidArgument(err) {
		t.Errorf("read after release error = %v", err)
	}
	if _, err := r.ReadByte(); err == nil {
		t.Error("ReadByte after release succeeded")
	}

	w := NewWriter(buf)
	w.Release()
	if err := w.WriteRaw([]byte{9}, 1); !errors.IsInvalidArgument(err) {
		t.Errorf("write after release error = %v", err)
	}
	if _, err := w.Write(nil); err == nil {
		t.Error("Write after release succeeded")
	}
	if buf[0] != 1 {
		t.Error("release touched the buffer")
	}
}
