package datum

// Enum holds an Avro enum symbol index together with the enum type's name.
type Enum struct {
	header
	name  []byte
	value int
}

// NewEnum creates an enum datum with the given symbol index.
func (f *Factory) NewEnum(name string, value int) (*Enum, error) {
	n, err := f.strdup(name)
	if err != nil {
		return nil, err
	}
	return &Enum{header: newHeader(f, KindEnum), name: n, value: value}, nil
}

func NewEnum(name string, value int) (*Enum, error) {
	return DefaultFactory().NewEnum(name, value)
}

func (d *Enum) Name() string { return view(d.name) }
func (d *Enum) Get() int     { return d.value }
func (d *Enum) Set(v int)    { d.value = v }

func (d *Enum) destroy() {
	d.f.free(d.name)
	d.name = nil
}
