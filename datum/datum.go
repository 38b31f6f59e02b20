package datum

import (
	"unsafe"

	"go.uber.org/zap"
)

// Immortal is the reference count reported for datums that are never freed.
const Immortal = ^uint32(0)

// Datum is a reference-counted Avro value. The set of implementations is
// closed: *NullDatum, *Boolean, *Int32, *Int64, *Float, *Double, *String,
// *Bytes, *Fixed, *Enum, *Array, *Map, *Record and *Union.
//
// A datum starts with one reference held by its creator. Composite datums
// hold their own reference on every child. Datums are not safe for
// concurrent mutation.
type Datum interface {
	Kind() Kind
	Class() Class
	base() *header
	destroy()
}

type header struct {
	f     *Factory
	refs  uint32
	kind  Kind
	class Class
}

func newHeader(f *Factory, k Kind) header {
	return header{f: f, refs: 1, kind: k, class: ClassDatum}
}

// Kind returns the variant tag.
func (h *header) Kind() Kind { return h.kind }

// Class returns ClassDatum for every value created by this package.
func (h *header) Class() Class { return h.class }

func (h *header) base() *header { return h }

func (h *header) destroyed() bool { return h.refs == 0 }

// destroy is overridden by variants that own buffers or children.
func (h *header) destroy() {}

// Incref takes another reference on d and returns it. nil and immortal
// datums are returned unchanged.
func Incref[D Datum](d D) D {
	if Datum(d) == nil {
		return d
	}
	h := d.base()
	switch h.refs {
	case Immortal:
	case 0:
		Logger().Warn("incref of destroyed datum ignored", zap.Stringer("kind", h.kind))
	default:
		h.refs++
	}
	return d
}

// Decref drops a reference on d. When the last reference is dropped the
// datum releases its buffers and children exactly once. nil is a no-op and a
// datum that was already destroyed is left alone.
func Decref(d Datum) {
	if d == nil {
		return
	}
	h := d.base()
	switch h.refs {
	case Immortal:
		return
	case 0:
		Logger().Warn("decref of destroyed datum ignored", zap.Stringer("kind", h.kind))
		return
	}
	h.refs--
	if h.refs == 0 {
		if h.kind.IsComposite() {
			Logger().Debug("destroying composite datum", zap.Stringer("kind", h.kind))
		}
		d.destroy()
	}
}

// Refcount returns the current reference count of d. Destroyed datums report
// 0 and nil reports 0.
func Refcount(d Datum) uint32 {
	if d == nil {
		return 0
	}
	return d.base().refs
}

// IsDestroyed reports whether d's last reference has been dropped.
func IsDestroyed(d Datum) bool {
	return d != nil && d.base().refs == 0
}

// view returns a string sharing b's storage.
func view(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(unsafe.SliceData(b), len(b))
}
