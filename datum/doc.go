// Package datum implements the in-memory Avro value model.
//
// A Datum is a reference-counted value of one of the Avro kinds: null,
// boolean, int, long, float, double, string, bytes, fixed, enum, array, map,
// record and union. Datums are built bottom-up through a Factory, which
// routes every payload allocation through an injected allocator:
//
//	f := datum.NewFactory(allocator.NewTracking(nil))
//
//	rec, _ := f.NewRecord("Person", "com.example")
//	name, _ := f.NewString("Ada")
//	rec.SetField("name", name)
//	datum.Decref(name) // rec holds its own reference
//
//	v, _ := datum.Lookup(rec, "name")
//	s, _ := datum.GetString(v)
//
//	datum.Decref(rec) // frees the record, its name and the string
//
// # Ownership
//
// String, Bytes and Fixed support three ways to install a buffer:
//
//   - New/Set copies the input into a buffer the datum owns.
//   - Give adopts a buffer allocated by the factory's allocator. The datum
//     frees it when it is replaced or destroyed.
//   - Wrap borrows a buffer. The datum never frees it and the caller keeps it
//     alive for as long as the datum refers to it.
//
// Getters never copy: they expose the installed buffer directly.
//
// # Reference counting
//
// Every datum starts with one reference. Composite datums (array, map,
// record, union) take a reference on each child they store and drop it when
// the child is replaced or the composite is destroyed. Getters on composites
// return borrowed children. Null is a shared instance that is never freed.
//
// Datums are not safe for concurrent use. A tree shared between goroutines
// must be guarded by the caller.
package datum
