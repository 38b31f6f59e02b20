package atom

import "sync"

// Atom is an interned name handle. Two atoms from the same table are equal
// exactly when their names are equal.
type Atom uint32

// Invalid is the zero handle.
const Invalid Atom = 0

// EventType identifies an interning lifecycle event.
type EventType int

const (
	EventCreated EventType = iota
	EventDropped
)

// Event describes an atom being created or dropped.
type Event struct {
	Name string
	Type EventType
	Atom Atom
}

// Observer receives interning events.
type Observer func(Event)

type entry struct {
	name  string
	refs  uint32
	valid bool
}

// Table interns names into reference-counted atoms.
type Table struct {
	byName    map[string]Atom
	entries   []entry
	freeList  []Atom
	observers []Observer
	mu        sync.Mutex
}

// NewTable creates an empty table.
func NewTable() *Table {
	return &Table{
		byName:   make(map[string]Atom),
		entries:  make([]entry, 0, 64),
		freeList: make([]Atom, 0, 16),
	}
}

// Intern returns the atom for name, creating it if needed, and takes one
// reference on it.
func (t *Table) Intern(name string) Atom {
	t.mu.Lock()
	if a, ok := t.byName[name]; ok {
		t.entries[a-1].refs++
		t.mu.Unlock()
		return a
	}

	e := entry{name: name, refs: 1, valid: true}
	var a Atom
	if len(t.freeList) > 0 {
		a = t.freeList[len(t.freeList)-1]
		t.freeList = t.freeList[:len(t.freeList)-1]
		t.entries[a-1] = e
	} else {
		t.entries = append(t.entries, e)
		a = Atom(len(t.entries))
	}
	t.byName[name] = a
	t.mu.Unlock()

	t.notify(Event{Type: EventCreated, Atom: a, Name: name})
	return a
}

// Lookup returns the atom for name without taking a reference.
func (t *Table) Lookup(name string) (Atom, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	a, ok := t.byName[name]
	return a, ok
}

func (t *Table) get(a Atom) *entry {
	if a == Invalid || int(a) > len(t.entries) {
		return nil
	}
	e := &t.entries[a-1]
	if !e.valid {
		return nil
	}
	return e
}

// Incref takes another reference on a. It returns false for an invalid atom.
func (t *Table) Incref(a Atom) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	e := t.get(a)
	if e == nil {
		return false
	}
	e.refs++
	return true
}

// Decref drops a reference on a, removing it when none remain. It returns
// false for an invalid atom.
func (t *Table) Decref(a Atom) bool {
	t.mu.Lock()
	e := t.get(a)
	if e == nil {
		t.mu.Unlock()
		return false
	}
	e.refs--
	if e.refs > 0 {
		t.mu.Unlock()
		return true
	}
	name := e.name
	delete(t.byName, name)
	*e = entry{}
	t.freeList = append(t.freeList, a)
	t.mu.Unlock()

	t.notify(Event{Type: EventDropped, Atom: a, Name: name})
	return true
}

// Name returns the interned name of a.
func (t *Table) Name(a Atom) (string, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	e := t.get(a)
	if e == nil {
		return "", false
	}
	return e.name, true
}

// Refs returns the reference count of a, 0 if invalid.
func (t *Table) Refs(a Atom) uint32 {
	t.mu.Lock()
	defer t.mu.Unlock()
	e := t.get(a)
	if e == nil {
		return 0
	}
	return e.refs
}

// Len returns the number of live atoms.
func (t *Table) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.byName)
}

// AddObserver registers an observer for interning events.
func (t *Table) AddObserver(o Observer) {
	t.mu.Lock()
	t.observers = append(t.observers, o)
	t.mu.Unlock()
}

func (t *Table) notify(e Event) {
	t.mu.Lock()
	observers := t.observers
	t.mu.Unlock()
	for _, o := range observers {
		o(e)
	}
}
