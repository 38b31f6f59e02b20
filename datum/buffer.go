package datum

import (
	"unsafe"

	avrodatum "github.com/wippyai/avro-datum"
	"github.com/wippyai/avro-datum/errors"
)

// buffer is the payload shared by String, Bytes and Fixed. A non-nil release
// marks the buffer as owned.
type buffer struct {
	data    []byte
	release avrodatum.Releaser
}

// install replaces the payload and releases the previous one if it was
// owned. Reinstalling the block already held does not free it, and wrapping
// it keeps the existing releaser so the block is still freed on destroy.
func (b *buffer) install(data []byte, release avrodatum.Releaser) {
	old, oldRelease := b.data, b.release
	if sameBlock(old, data) {
		if release == nil {
			release = oldRelease
		}
		b.data, b.release = data, release
		return
	}
	b.data, b.release = data, release
	if oldRelease != nil {
		oldRelease(old)
	}
}

func (b *buffer) free() {
	if b.release != nil {
		b.release(b.data)
	}
	b.data, b.release = nil, nil
}

func (b *buffer) owned() bool {
	return b.release != nil
}

func sameBlock(a, b []byte) bool {
	if cap(a) == 0 || cap(b) == 0 {
		return false
	}
	return unsafe.SliceData(a) == unsafe.SliceData(b)
}

// String holds an Avro string. The contents are either copied into an owned
// buffer, adopted from the caller, or borrowed.
type String struct {
	header
	buf buffer
}

// NewString copies s into a buffer owned by the datum.
func (f *Factory) NewString(s string) (*String, error) {
	data, err := f.strdup(s)
	if err != nil {
		return nil, err
	}
	d := &String{header: newHeader(f, KindString)}
	d.buf.install(data, f.alloc.Free)
	return d, nil
}

// GiveString adopts buf, which must come from the factory's allocator. The
// datum frees it on destruction; the caller must not touch it afterwards.
func (f *Factory) GiveString(buf []byte) *String {
	d := &String{header: newHeader(f, KindString)}
	d.buf.install(buf, f.alloc.Free)
	return d
}

// WrapString borrows buf. It is never freed by the datum and must outlive it.
func (f *Factory) WrapString(buf []byte) *String {
	d := &String{header: newHeader(f, KindString)}
	d.buf.install(buf, nil)
	return d
}

func NewString(s string) (*String, error) { return DefaultFactory().NewString(s) }
func GiveString(buf []byte) *String       { return DefaultFactory().GiveString(buf) }
func WrapString(buf []byte) *String       { return DefaultFactory().WrapString(buf) }

// Get returns the contents as a string sharing the datum's buffer. The
// result is valid until the datum is mutated or destroyed.
func (d *String) Get() string { return view(d.buf.data) }

// Bytes returns the underlying buffer without copying.
func (d *String) Bytes() []byte { return d.buf.data }

func (d *String) Len() int { return len(d.buf.data) }

// Owned reports whether the datum frees its buffer on destruction.
func (d *String) Owned() bool { return d.buf.owned() }

// Set copies s into a new owned buffer. On allocation failure the previous
// contents remain installed.
func (d *String) Set(s string) error {
	if d.destroyed() {
		return errors.NotInitialized(errors.PhaseMutate, "string")
	}
	data, err := d.f.strdup(s)
	if err != nil {
		return err
	}
	d.buf.install(data, d.f.alloc.Free)
	return nil
}

// Give adopts buf as the new contents.
func (d *String) Give(buf []byte) { d.buf.install(buf, d.f.alloc.Free) }

// Wrap borrows buf as the new contents.
func (d *String) Wrap(buf []byte) { d.buf.install(buf, nil) }

func (d *String) destroy() { d.buf.free() }

// Bytes holds an Avro bytes value.
type Bytes struct {
	header
	buf buffer
}

// NewBytes copies b into a buffer owned by the datum.
func (f *Factory) NewBytes(b []byte) (*Bytes, error) {
	data, err := f.dup(b)
	if err != nil {
		return nil, err
	}
	d := &Bytes{header: newHeader(f, KindBytes)}
	d.buf.install(data, f.alloc.Free)
	return d, nil
}

// GiveBytes adopts buf, which must come from the factory's allocator.
func (f *Factory) GiveBytes(buf []byte) *Bytes {
	d := &Bytes{header: newHeader(f, KindBytes)}
	d.buf.install(buf, f.alloc.Free)
	return d
}

// WrapBytes borrows buf.
func (f *Factory) WrapBytes(buf []byte) *Bytes {
	d := &Bytes{header: newHeader(f, KindBytes)}
	d.buf.install(buf, nil)
	return d
}

func NewBytes(b []byte) (*Bytes, error) { return DefaultFactory().NewBytes(b) }
func GiveBytes(buf []byte) *Bytes        { return DefaultFactory().GiveBytes(buf) }
func WrapBytes(buf []byte) *Bytes        { return DefaultFactory().WrapBytes(buf) }

// Get returns the buffer without copying.
func (d *Bytes) Get() []byte { return d.buf.data }

func (d *Bytes) Len() int { return len(d.buf.data) }

func (d *Bytes) Owned() bool { return d.buf.owned() }

// Set copies b into a new owned buffer. On allocation failure the previous
// contents remain installed.
func (d *Bytes) Set(b []byte) error {
	if d.destroyed() {
		return errors.NotInitialized(errors.PhaseMutate, "bytes")
	}
	data, err := d.f.dup(b)
	if err != nil {
		return err
	}
	d.buf.install(data, d.f.alloc.Free)
	return nil
}

func (d *Bytes) Give(buf []byte) { d.buf.install(buf, d.f.alloc.Free) }
func (d *Bytes) Wrap(buf []byte) { d.buf.install(buf, nil) }

func (d *Bytes) destroy() { d.buf.free() }

// Fixed holds an Avro fixed value together with the name of its type.
type Fixed struct {
	header
	name []byte
	buf  buffer
}

func (f *Factory) newFixed(name string) (*Fixed, error) {
	n, err := f.strdup(name)
	if err != nil {
		return nil, err
	}
	return &Fixed{header: newHeader(f, KindFixed), name: n}, nil
}

// NewFixed copies b into a buffer owned by the datum.
func (f *Factory) NewFixed(name string, b []byte) (*Fixed, error) {
	data, err := f.dup(b)
	if err != nil {
		return nil, err
	}
	d, err := f.newFixed(name)
	if err != nil {
		f.free(data)
		return nil, err
	}
	d.buf.install(data, f.alloc.Free)
	return d, nil
}

// GiveFixed adopts buf. If the name cannot be allocated buf is left with the
// caller.
func (f *Factory) GiveFixed(name string, buf []byte) (*Fixed, error) {
	d, err := f.newFixed(name)
	if err != nil {
		return nil, err
	}
	d.buf.install(buf, f.alloc.Free)
	return d, nil
}

// WrapFixed borrows buf.
func (f *Factory) WrapFixed(name string, buf []byte) (*Fixed, error) {
	d, err := f.newFixed(name)
	if err != nil {
		return nil, err
	}
	d.buf.install(buf, nil)
	return d, nil
}

func NewFixed(name string, b []byte) (*Fixed, error) {
	return DefaultFactory().NewFixed(name, b)
}

func GiveFixed(name string, buf []byte) (*Fixed, error) {
	return DefaultFactory().GiveFixed(name, buf)
}

func WrapFixed(name string, buf []byte) (*Fixed, error) {
	return DefaultFactory().WrapFixed(name, buf)
}

// Name returns the fixed type's name.
func (d *Fixed) Name() string { return view(d.name) }

// Get returns the buffer without copying.
func (d *Fixed) Get() []byte { return d.buf.data }

// Size returns the length of the current contents.
func (d *Fixed) Size() int { return len(d.buf.data) }

func (d *Fixed) Owned() bool { return d.buf.owned() }

// Set copies b into a new owned buffer. On allocation failure the previous
// contents remain installed.
func (d *Fixed) Set(b []byte) error {
	if d.destroyed() {
		return errors.NotInitialized(errors.PhaseMutate, "fixed")
	}
	data, err := d.f.dup(b)
	if err != nil {
		return err
	}
	d.buf.install(data, d.f.alloc.Free)
	return nil
}

func (d *Fixed) Give(buf []byte) { d.buf.install(buf, d.f.alloc.Free) }
func (d *Fixed) Wrap(buf []byte) { d.buf.install(buf, nil) }

func (d *Fixed) destroy() {
	d.buf.free()
	d.f.free(d.name)
	d.name = nil
}
