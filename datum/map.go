package datum

import (
	"iter"
	"slices"

	"github.com/wippyai/avro-datum/errors"
)

type mapEntry struct {
	key   []byte
	value Datum
}

// Map holds Avro map entries keyed by string content. Each entry owns its
// key buffer, allocated through the factory's allocator. The index itself is
// keyed by a runtime copy so freeing a key buffer never disturbs lookups.
type Map struct {
	header
	entries map[string]*mapEntry
}

// NewMap creates an empty map.
func (f *Factory) NewMap() *Map {
	return &Map{header: newHeader(f, KindMap), entries: make(map[string]*mapEntry)}
}

func NewMap() *Map { return DefaultFactory().NewMap() }

func (m *Map) Len() int { return len(m.entries) }

// Get returns the child stored under key without taking a reference.
func (m *Map) Get(key string) (Datum, error) {
	e, ok := m.entries[key]
	if !ok {
		return nil, errors.NotFound(errors.PhaseAccess, nil, key)
	}
	return e.value, nil
}

// Has reports whether key is present.
func (m *Map) Has(key string) bool {
	_, ok := m.entries[key]
	return ok
}

// Set stores child under key, taking a reference on child.
//
// For a new key the map stores its own copy of key and the caller keeps
// key. For an existing key the previous key buffer is freed and key itself
// is adopted, so it must have been allocated by the map's factory allocator
// and the caller gives it up. Use Put when that distinction is not wanted.
func (m *Map) Set(key []byte, child Datum) error {
	if m.destroyed() {
		return errors.NotInitialized(errors.PhaseMutate, "map")
	}
	if child == nil {
		return errors.NilPointer(errors.PhaseMutate, []string{string(key)}, "map value")
	}
	if e, ok := m.entries[string(key)]; ok {
		old := e.value
		e.value = Incref(child)
		Decref(old)
		if !sameBlock(e.key, key) {
			m.f.free(e.key)
		}
		e.key = key
		return nil
	}
	k, err := m.f.strdup(view(key))
	if err != nil {
		return err
	}
	m.entries[string(k)] = &mapEntry{key: k, value: Incref(child)}
	return nil
}

// Put stores child under key, copying key whether or not it is present.
func (m *Map) Put(key string, child Datum) error {
	if m.destroyed() {
		return errors.NotInitialized(errors.PhaseMutate, "map")
	}
	if child == nil {
		return errors.NilPointer(errors.PhaseMutate, []string{key}, "map value")
	}
	if _, ok := m.entries[key]; !ok {
		return m.Set([]byte(key), child)
	}
	k, err := m.f.strdup(key)
	if err != nil {
		return err
	}
	return m.Set(k, child)
}

// Keys returns the keys in sorted order.
func (m *Map) Keys() []string {
	keys := make([]string, 0, len(m.entries))
	for k := range m.entries {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// All iterates entries in sorted key order. Children are borrowed.
func (m *Map) All() iter.Seq2[string, Datum] {
	return func(yield func(string, Datum) bool) {
		for _, k := range m.Keys() {
			if !yield(k, m.entries[k].value) {
				return
			}
		}
	}
}

func (m *Map) destroy() {
	for k, e := range m.entries {
		delete(m.entries, k)
		Decref(e.value)
		m.f.free(e.key)
	}
	m.entries = nil
}
