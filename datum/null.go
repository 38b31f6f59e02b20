package datum

// NullDatum is the Avro null value. There is a single shared instance.
type NullDatum struct {
	header
}

var null = &NullDatum{header: header{refs: Immortal, kind: KindNull, class: ClassDatum}}

// Null returns the shared null datum. Reference counting on it is a no-op.
func Null() *NullDatum {
	return null
}

// NewNull returns the shared null datum.
func (f *Factory) NewNull() *NullDatum {
	return null
}
