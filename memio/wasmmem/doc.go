// Package wasmmem places cursors and datum payloads in a WebAssembly
// guest's linear memory.
//
// Views come from wazero's api.Memory.Read, so they alias guest memory
// directly: bytes written through a Writer are immediately visible to the
// guest and a Reader sees what the guest wrote, with no copies in between.
//
//	mem := mod.ExportedMemory("memory")
//	w, err := wasmmem.NewWriter(mem, 1024, 256)
//
// A view is invalidated if the guest grows its memory. Create cursors and
// arenas after the guest has reached its working size, and recreate them
// after a grow.
package wasmmem
