package datum

import (
	"iter"

	"github.com/wippyai/avro-datum/atom"
	"github.com/wippyai/avro-datum/errors"
)

// Record holds named fields in declaration order. Fields are indexed by
// atom so lookups compare interned handles rather than strings.
//
// Every field key carries two atom references held by the record: one for
// its slot in the order list and one for its index entry.
type Record struct {
	header
	name      []byte
	namespace []byte
	hasNS     bool
	order     []atom.Atom
	fields    map[atom.Atom]Datum
}

// NewRecord creates an empty record. An empty namespace means none.
func (f *Factory) NewRecord(name, namespace string) (*Record, error) {
	n, err := f.strdup(name)
	if err != nil {
		return nil, err
	}
	r := &Record{
		header: newHeader(f, KindRecord),
		name:   n,
		order:  make([]atom.Atom, 0, 10),
		fields: make(map[atom.Atom]Datum),
	}
	if namespace != "" {
		ns, err := f.strdup(namespace)
		if err != nil {
			f.free(n)
			return nil, err
		}
		r.namespace = ns
		r.hasNS = true
	}
	return r, nil
}

func NewRecord(name, namespace string) (*Record, error) {
	return DefaultFactory().NewRecord(name, namespace)
}

func (r *Record) Name() string { return view(r.name) }

// Namespace returns the record's namespace and whether it has one.
func (r *Record) Namespace() (string, bool) { return view(r.namespace), r.hasNS }

// FullName returns namespace.name, or name when there is no namespace.
func (r *Record) FullName() string {
	if !r.hasNS {
		return r.Name()
	}
	return view(r.namespace) + "." + r.Name()
}

// Len returns the number of distinct fields.
func (r *Record) Len() int { return len(r.order) }

// Get returns the child stored under a without taking a reference.
func (r *Record) Get(a atom.Atom) (Datum, error) {
	child, ok := r.fields[a]
	if !ok {
		name, _ := r.f.atoms.Name(a)
		return nil, errors.NotFound(errors.PhaseAccess, nil, name)
	}
	return child, nil
}

// GetField returns the child stored under name without taking a reference.
func (r *Record) GetField(name string) (Datum, error) {
	a, ok := r.f.atoms.Lookup(name)
	if !ok {
		return nil, errors.NotFound(errors.PhaseAccess, nil, name)
	}
	child, ok := r.fields[a]
	if !ok {
		return nil, errors.NotFound(errors.PhaseAccess, nil, name)
	}
	return child, nil
}

// Set stores child under a, taking a reference on it. Overwriting a field
// releases the previous child and keeps the field's position.
func (r *Record) Set(a atom.Atom, child Datum) error {
	if r.destroyed() {
		return errors.NotInitialized(errors.PhaseMutate, "record")
	}
	if child == nil {
		return errors.NilPointer(errors.PhaseMutate, nil, "field value")
	}
	if r.f.atoms.Refs(a) == 0 {
		return errors.InvalidInput(errors.PhaseMutate, nil, "field key is not a live atom of this record's factory")
	}
	if old, ok := r.fields[a]; ok {
		r.fields[a] = Incref(child)
		Decref(old)
		return nil
	}
	r.f.atoms.Incref(a)
	r.order = append(r.order, a)
	r.f.atoms.Incref(a)
	r.fields[a] = Incref(child)
	return nil
}

// SetField interns name and stores child under it.
func (r *Record) SetField(name string, child Datum) error {
	a := r.f.atoms.Intern(name)
	defer r.f.atoms.Decref(a)
	return r.Set(a, child)
}

// Keys returns the field atoms in declaration order.
func (r *Record) Keys() []atom.Atom {
	return append([]atom.Atom(nil), r.order...)
}

// FieldNames returns the field names in declaration order.
func (r *Record) FieldNames() []string {
	names := make([]string, 0, len(r.order))
	for _, a := range r.order {
		name, _ := r.f.atoms.Name(a)
		names = append(names, name)
	}
	return names
}

// Fields iterates name/child pairs in declaration order. Children are
// borrowed.
func (r *Record) Fields() iter.Seq2[string, Datum] {
	return func(yield func(string, Datum) bool) {
		for _, a := range r.order {
			name, _ := r.f.atoms.Name(a)
			if !yield(name, r.fields[a]) {
				return
			}
		}
	}
}

func (r *Record) destroy() {
	for _, a := range r.order {
		child := r.fields[a]
		delete(r.fields, a)
		Decref(child)
		r.f.atoms.Decref(a)
		r.f.atoms.Decref(a)
	}
	r.order = nil
	r.fields = nil
	r.f.free(r.name)
	r.f.free(r.namespace)
	r.name, r.namespace = nil, nil
}
