package datum

import "bytes"

// Equal reports whether a and b hold the same value. Records compare their
// names and fields in declaration order, maps compare entries regardless of
// order, and ownership of buffers is ignored.
func Equal(a, b Datum) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a == b {
		return true
	}
	if a.Kind() != b.Kind() {
		return false
	}
	switch x := a.(type) {
	case *NullDatum:
		return true
	case *Boolean:
		return x.v == b.(*Boolean).v
	case *Int32:
		return x.v == b.(*Int32).v
	case *Int64:
		return x.v == b.(*Int64).v
	case *Float:
		return x.v == b.(*Float).v
	case *Double:
		return x.v == b.(*Double).v
	case *String:
		return bytes.Equal(x.buf.data, b.(*String).buf.data)
	case *Bytes:
		return bytes.Equal(x.buf.data, b.(*Bytes).buf.data)
	case *Fixed:
		y := b.(*Fixed)
		return bytes.Equal(x.name, y.name) && bytes.Equal(x.buf.data, y.buf.data)
	case *Enum:
		y := b.(*Enum)
		return x.value == y.value && bytes.Equal(x.name, y.name)
	case *Union:
		y := b.(*Union)
		return x.discriminant == y.discriminant && Equal(x.branch, y.branch)
	case *Array:
		y := b.(*Array)
		if len(x.items) != len(y.items) {
			return false
		}
		for i := range x.items {
			if !Equal(x.items[i], y.items[i]) {
				return false
			}
		}
		return true
	case *Map:
		y := b.(*Map)
		if len(x.entries) != len(y.entries) {
			return false
		}
		for k, e := range x.entries {
			o, ok := y.entries[k]
			if !ok || !Equal(e.value, o.value) {
				return false
			}
		}
		return true
	case *Record:
		y := b.(*Record)
		if x.FullName() != y.FullName() || len(x.order) != len(y.order) {
			return false
		}
		xn, yn := x.FieldNames(), y.FieldNames()
		for i, name := range xn {
			if yn[i] != name || !Equal(x.fields[x.order[i]], y.fields[y.order[i]]) {
				return false
			}
		}
		return true
	}
	return false
}
