package alloc

// Arena supplies byte storage for path buffers.
//
// Implementations:
//   - HeapArena: independent heap allocation per request
//   - ScratchArena: bump allocation from one fixed region
//
// This interface lets the persistent and transient construction paths share
// one buffer contract, differing only in where the bytes live.
type Arena interface {
	// Alloc returns a zero-length byte slice with capacity of at least n.
	// The caller appends into the slice and must never index past its
	// returned capacity.
	Alloc(n int) []byte
}

// HeapArena allocates every request directly from the Go heap. It is the
// zero-value, stateless default used for buffers that outlive the call that
// created them.
type HeapArena struct{}

// Alloc returns a fresh heap allocation of capacity n.
func (HeapArena) Alloc(n int) []byte {
	return make([]byte, 0, n)
}

// Heap is the shared heap arena used when no arena is supplied.
var Heap Arena = HeapArena{}

// Compile-time interface checks
var (
	_ Arena = HeapArena{}
	_ Arena = (*ScratchArena)(nil)
)
