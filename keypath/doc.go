// Package keypath implements a cache of hierarchical database key paths:
// a variable name plus an ordered list of binary subscripts, marshalled once
// and reused across many engine calls.
//
// # Overview
//
// A high-frequency key-value client spends real time re-encoding the same
// key on every call. This package builds the (varname, subscripts) pair
// once into a contiguous arena, then lets callers derive deeper or
// shallower paths by structural sharing instead of copying.
//
// # Key Types
//
// The main types provided by this package are:
//
//   - Buffer: the owned storage, one arena of bytes plus (offset, length)
//     slots for the varname and each populated subscript
//   - Path: a handle exposing a Buffer at a logical depth; a freshly built
//     Path owns its Buffer, a derived handle at another depth is a view
//     over the same Buffer
//
// # Sharing and Copy-on-Write
//
// Append extends a path in place only when that can never be observed by
// another live handle: the target slot is the next unpopulated one with
// spare capacity, or it already holds byte-identical content. Anything else
// copies into a fresh Buffer. A non-copying append that changes logical
// depth returns a view handle; the view keeps its root Buffer alive through
// an ordinary pointer, and Buffers never reference their views.
//
// # Mutable Cursors
//
// ToMutable produces a Buffer with zero spare slot capacity and the mutable
// flag set. Because every append on such a buffer must reallocate, the
// cursor's final subscript can be substituted in place during iteration
// without any derived handle ever seeing the change.
//
// # Building a Path
//
//	p, err := keypath.New("^orders", []byte("2024"), []byte("17"))
//	if err != nil {
//	    return err
//	}
//	child, err := p.Append([]byte("status"))
//
// Construction can draw from the heap (New) or from a caller-supplied
// scratch arena (NewIn) for single-call transient paths; the two differ
// only in storage lifetime.
//
// Like the client it serves, this package is not safe for concurrent use
// of one Buffer from multiple goroutines.
package keypath
