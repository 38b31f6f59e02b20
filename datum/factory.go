package datum

import (
	"sync"

	avrodatum "github.com/wippyai/avro-datum"
	"github.com/wippyai/avro-datum/allocator"
	"github.com/wippyai/avro-datum/atom"
	"github.com/wippyai/avro-datum/errors"
)

// Factory constructs datums. Every payload buffer a datum owns (string and
// blob contents, type names, map keys) is allocated and released through the
// factory's allocator, and record field names are interned in its atom table.
//
// Datums from different factories may be mixed in one tree; each datum
// releases its payload through the factory that created it.
type Factory struct {
	alloc avrodatum.Allocator
	atoms *atom.Table
}

var (
	defaultFactory     *Factory
	defaultFactoryOnce sync.Once
)

// NewFactory creates a factory over alloc. A nil alloc uses allocator.Default.
func NewFactory(alloc avrodatum.Allocator) *Factory {
	if alloc == nil {
		alloc = allocator.Default()
	}
	return &Factory{
		alloc: alloc,
		atoms: atom.NewTable(),
	}
}

// DefaultFactory returns the process-wide factory used by the package-level
// constructors. It binds allocator.Default on first use.
func DefaultFactory() *Factory {
	defaultFactoryOnce.Do(func() {
		defaultFactory = NewFactory(nil)
	})
	return defaultFactory
}

// Allocator returns the factory's allocator.
func (f *Factory) Allocator() avrodatum.Allocator {
	return f.alloc
}

// Atoms returns the table record field names are interned in.
func (f *Factory) Atoms() *atom.Table {
	return f.atoms
}

// Intern returns the atom for a field name. The caller owns the returned
// reference and drops it with Factory.Release.
func (f *Factory) Intern(name string) atom.Atom {
	return f.atoms.Intern(name)
}

// Release drops a reference obtained from Intern.
func (f *Factory) Release(a atom.Atom) {
	f.atoms.Decref(a)
}

func (f *Factory) strdup(s string) ([]byte, error) {
	return allocator.Strdup(f.alloc, s)
}

func (f *Factory) dup(b []byte) ([]byte, error) {
	return allocator.Dup(f.alloc, b)
}

func (f *Factory) free(b []byte) {
	if b != nil {
		f.alloc.Free(b)
	}
}

// Link would resolve a recursive schema reference to a concrete datum.
// Recursive references are not supported by this value model.
func (f *Factory) Link(target Datum) (Datum, error) {
	return nil, errors.Unsupported(errors.PhaseConstruct, "link datum")
}

// Link reports that recursive schema references are unsupported.
func Link(target Datum) (Datum, error) {
	return DefaultFactory().Link(target)
}
