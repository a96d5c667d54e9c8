package keypath

import (
	"github.com/joshuapare/pathkit/internal/buf"
	"github.com/joshuapare/pathkit/keypath/alloc"
)

// slot records where one byte string lives inside a Buffer's arena.
type slot struct {
	off uint32
	ln  uint32
}

// Buffer is the owned storage behind one or more Path handles: a contiguous
// arena holding the varname and every populated subscript, plus the slot
// table describing it.
//
// Capacity accounting rides on the Go slices themselves:
//
//	len(slots) = populated depth     cap(slots) = slot capacity
//	len(arena) = bytes in use        cap(arena) = byte capacity
//
// Invariants: every handle depth is within [0, len(slots)]; slot byte
// ranges are contiguous, in order, and inside the arena; a mutable buffer
// has len(slots) == cap(slots), so no append can ever write into it.
type Buffer struct {
	arena []byte
	vlen  uint32
	slots []slot

	// mutable marks a buffer produced by ToMutable.
	mutable bool

	// src is the arena allocator the buffer was built from. Copy-on-write
	// reallocations draw from the same source, so transient buffers stay
	// transient.
	src alloc.Arena
}

// populated returns the number of populated subscript slots.
func (b *Buffer) populated() int {
	return len(b.slots)
}

// varname returns the variable-name bytes. The slice is capped so an append
// through it cannot reach subscript bytes.
func (b *Buffer) varname() []byte {
	return b.arena[0:b.vlen:b.vlen]
}

// sub returns the bytes of populated slot i, capped at the slot boundary.
func (b *Buffer) sub(i int) ([]byte, bool) {
	if i < 0 || i >= len(b.slots) {
		return nil, false
	}
	s := b.slots[i]
	return buf.Slice(b.arena, int(s.off), int(s.ln))
}

// bytesThrough returns the arena bytes used by the varname plus the first
// depth subscripts. Slot ranges are contiguous, so this is just the end of
// the last counted slot.
func (b *Buffer) bytesThrough(depth int) int {
	if depth == 0 {
		return int(b.vlen)
	}
	s := b.slots[depth-1]
	return int(s.off) + int(s.ln)
}

// appendSub writes one subscript at the next unpopulated slot. The caller
// has already verified slot and byte capacity.
func (b *Buffer) appendSub(sub []byte) {
	off := uint32(len(b.arena))
	b.arena = append(b.arena, sub...)
	b.slots = append(b.slots, slot{off: off, ln: uint32(len(sub))})
}

// subEqual reports whether populated slot i holds exactly these bytes.
func (b *Buffer) subEqual(i int, sub []byte) bool {
	got, ok := b.sub(i)
	if !ok || len(got) != len(sub) {
		return false
	}
	for j := range got {
		if got[j] != sub[j] {
			return false
		}
	}
	return true
}
