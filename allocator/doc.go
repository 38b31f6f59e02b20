// Package allocator implements the allocation facade used by every datum.
//
// All payload storage of the value model (string, bytes and fixed contents,
// type names, namespaces, map keys) is obtained from an
// avrodatum.Allocator. This package provides the process-wide default and a
// set of implementations a host can inject instead:
//
//	System()        Go runtime backed default
//	NewTracking(a)  Counts live allocations and detects double frees
//	NewFailing(a,n) Fails every allocation after n successes
//	NewPool()       Size-class recycler built on sync.Pool
//	NewArena(buf)   Bump allocator over a fixed region, freed all at once
//
// # Process-wide default
//
// Default returns the configured allocator, installing System on first use.
// SetDefault must be called before any datum is created; swapping the
// allocator while datums allocated under the previous one are alive leads to
// mismatched Free calls and is not detected.
//
//	allocator.SetDefault(allocator.NewPool())
//
// # Strings
//
// Strdup duplicates a string the way the value model stores names: len+1
// bytes with a trailing zero, returning the len-byte prefix.
package allocator
