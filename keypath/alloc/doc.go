// Package alloc provides arena allocation and growth policy for subscript
// path buffers.
//
// # Overview
//
// Every path buffer stores its varname and subscript bytes in one contiguous
// arena. This package decides how large those arenas are (sizing policy with
// slot and byte headroom) and where their storage comes from (heap or a
// caller-supplied scratch region).
//
// # Arena Interface
//
// The core abstraction is the Arena interface, a single method:
//
//   - Alloc(n): Return a zero-length byte slice with capacity >= n
//
// # Implementations
//
// HeapArena: the default; every request is an independent heap allocation
// that lives as long as the buffer built on it.
//
// ScratchArena: a fixed-size region handed out by bump allocation, for
// single-call transient buffers. Reset() reclaims the whole region at once.
// Requests that do not fit the remaining region fall back to the heap, so
// the logical buffer contract is identical either way; only storage
// lifetime differs.
//
// A ScratchArena's region can live on the Go heap or, via NewMappedScratch,
// in an anonymous memory mapping kept off the garbage-collected heap.
//
// # Sizing Policy
//
// Construction reserves headroom so typical small descents extend the same
// arena without reallocating:
//
//	slot capacity = requested depth + SlotHeadroom (capped at MaxSubscripts)
//	byte capacity = payload bytes + SlotHeadroom*TypicalSubLen (capped at MaxPathBytes)
//
// # Usage Example
//
//	scratch := alloc.NewScratch(4096)
//	for _, job := range jobs {
//	    p, err := keypath.NewIn(scratch, "^tmp", job.Sub)
//	    if err != nil {
//	        return err
//	    }
//	    process(p)
//	    scratch.Reset()
//	}
//
// Like the client this package serves, arenas are not safe for concurrent
// use from multiple goroutines.
package alloc
