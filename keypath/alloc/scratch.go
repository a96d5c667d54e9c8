package alloc

// ScratchArena hands out slices of one fixed region by bump allocation.
//
// It exists for transient, single-call path buffers: construct into the
// scratch, use the buffer, then Reset() to reclaim the entire region in one
// step. A request that does not fit the remaining region silently falls back
// to the heap, so callers never see an exhaustion error; an undersized
// scratch only costs the headroom it was meant to save.
//
// Not safe for concurrent use.
type ScratchArena struct {
	region  []byte
	off     int
	unmap   func() error // non-nil when the region is a memory mapping
	spilled int          // requests that fell back to the heap since Reset
}

// NewScratch creates a ScratchArena backed by a heap-allocated region of
// the given size. Size must be positive.
func NewScratch(size int) *ScratchArena {
	if size <= 0 {
		size = ScratchRegionSize
	}
	return &ScratchArena{region: make([]byte, size)}
}

// NewMappedScratch creates a ScratchArena backed by an anonymous memory
// mapping, keeping large transient regions off the garbage-collected heap.
// On platforms without mmap support the region falls back to the heap.
// The caller must Close() the arena to release the mapping.
func NewMappedScratch(size int) (*ScratchArena, error) {
	if size <= 0 {
		size = ScratchRegionSize
	}
	region, unmap, err := mapRegion(size)
	if err != nil {
		return nil, err
	}
	return &ScratchArena{region: region, unmap: unmap}, nil
}

// Alloc returns a zero-length slice with capacity n carved from the region,
// or a heap allocation when the remaining region is too small. The returned
// slice is capped so appends past n can never clobber a neighbouring
// allocation.
func (s *ScratchArena) Alloc(n int) []byte {
	if s.off+n > len(s.region) {
		s.spilled++
		return make([]byte, 0, n)
	}
	b := s.region[s.off : s.off : s.off+n]
	s.off += n
	return b
}

// Reset reclaims the whole region. Buffers previously allocated from this
// arena must not be used afterwards; their bytes will be overwritten by the
// next allocations.
func (s *ScratchArena) Reset() {
	s.off = 0
	s.spilled = 0
}

// Remaining reports how many bytes of the region are still available.
func (s *ScratchArena) Remaining() int {
	return len(s.region) - s.off
}

// Spilled reports how many allocations fell back to the heap since the last
// Reset. Useful when tuning the region size.
func (s *ScratchArena) Spilled() int {
	return s.spilled
}

// Close releases the backing region. For mapped regions this unmaps the
// memory; afterwards the arena must not be used.
func (s *ScratchArena) Close() error {
	s.region = nil
	s.off = 0
	if s.unmap != nil {
		unmap := s.unmap
		s.unmap = nil
		return unmap()
	}
	return nil
}
