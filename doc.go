// Package avrodatum provides the in-memory value model and binary I/O
// substrate for Avro in Go.
//
// The library holds dynamically typed, reference-counted values ("datums")
// for every primitive and composite Avro type, routes all payload storage
// through a pluggable allocator, and exposes bounds-checked cursors for
// sequential binary transfer.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct responsibilities:
//
//	avrodatum/           Root package with the core Allocator contract
//	├── allocator/       Default, tracking, pooled and arena allocators
//	├── atom/            Interned field-name handles for record keys
//	├── datum/           Datum value model: scalars, buffers, records, maps, arrays, unions
//	├── memio/           Bounds-checked Reader and Writer cursors
//	│   └── wasmmem/     Cursors and arenas over WebAssembly guest memory
//	├── convert/         Datum trees to and from JSON, YAML and MessagePack
//	├── errors/          Structured error types for debugging
//	└── cmd/datum/       Inspection CLI
//
// # Quick Start
//
// Build a record and read it back:
//
//	f := datum.NewFactory(allocator.System())
//
//	rec, err := f.NewRecord("User", "com.example")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer datum.Decref(rec)
//
//	name, _ := f.NewString("Ada")
//	rec.SetField("name", name)
//	datum.Decref(name) // the record holds its own reference
//
//	v, _ := rec.GetField("name")
//	fmt.Println(v.(*datum.String).Get()) // "Ada"
//
// # Ownership
//
// String, Bytes and Fixed datums support three ownership modes:
//
//   - Copy: the input is duplicated through the allocator and owned
//   - Give: the caller's allocator-owned buffer is adopted and later freed
//   - Wrap: the caller's buffer is referenced and never freed
//
// # Thread Safety
//
// Nothing in this library synchronizes. Reference counts are plain integers;
// a datum tree shared between goroutines must be guarded by the caller or
// restricted to read-only traversal.
package avrodatum
