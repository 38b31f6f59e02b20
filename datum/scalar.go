package datum

// Boolean holds an Avro boolean.
type Boolean struct {
	header
	v bool
}

// Int32 holds an Avro int.
type Int32 struct {
	header
	v int32
}

// Int64 holds an Avro long.
type Int64 struct {
	header
	v int64
}

// Float holds an Avro float.
type Float struct {
	header
	v float32
}

// Double holds an Avro double.
type Double struct {
	header
	v float64
}

func (f *Factory) NewBoolean(v bool) *Boolean {
	return &Boolean{header: newHeader(f, KindBoolean), v: v}
}

func (f *Factory) NewInt32(v int32) *Int32 {
	return &Int32{header: newHeader(f, KindInt32), v: v}
}

func (f *Factory) NewInt64(v int64) *Int64 {
	return &Int64{header: newHeader(f, KindInt64), v: v}
}

func (f *Factory) NewFloat(v float32) *Float {
	return &Float{header: newHeader(f, KindFloat), v: v}
}

func (f *Factory) NewDouble(v float64) *Double {
	return &Double{header: newHeader(f, KindDouble), v: v}
}

func NewBoolean(v bool) *Boolean  { return DefaultFactory().NewBoolean(v) }
func NewInt32(v int32) *Int32     { return DefaultFactory().NewInt32(v) }
func NewInt64(v int64) *Int64     { return DefaultFactory().NewInt64(v) }
func NewFloat(v float32) *Float   { return DefaultFactory().NewFloat(v) }
func NewDouble(v float64) *Double { return DefaultFactory().NewDouble(v) }

func (d *Boolean) Get() bool  { return d.v }
func (d *Boolean) Set(v bool) { d.v = v }

func (d *Int32) Get() int32  { return d.v }
func (d *Int32) Set(v int32) { d.v = v }

func (d *Int64) Get() int64  { return d.v }
func (d *Int64) Set(v int64) { d.v = v }

func (d *Float) Get() float32  { return d.v }
func (d *Float) Set(v float32) { d.v = v }

func (d *Double) Get() float64  { return d.v }
func (d *Double) Set(v float64) { d.v = v }
