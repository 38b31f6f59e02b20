// Package atom interns record field names into integer handles.
//
// Record fields are keyed by Atom rather than by string so that the field
// index compares keys by identity. Every Atom is reference counted: a record
// holds one reference for the field's slot in its declaration order and one
// for its index entry. When the last reference is dropped the name is removed
// from the table and the handle is recycled.
//
//	table := atom.NewTable()
//
//	a := table.Intern("name")   // refs = 1
//	table.Incref(a)             // refs = 2
//	table.Name(a)               // "name"
//	table.Decref(a)
//	table.Decref(a)             // removed, handle free for reuse
//
// Handle 0 is reserved and always invalid.
//
// # Observers
//
// Register observers to track interning events:
//
//	table.AddObserver(func(e atom.Event) {
//	    if e.Type == atom.EventDropped {
//	        log.Printf("atom %q dropped", e.Name)
//	    }
//	})
package atom
