package keypath

import (
	"fmt"

	"github.com/joshuapare/pathkit/internal/format"
)

// ToMutable returns an independent cursor copying exactly the populated
// content up to the handle's depth.
//
// The copy has zero spare slot capacity and no arena slack, so any append
// performed through it, or through anything later derived from it, is
// forced into a fresh allocation. That is what makes in-place Substitute
// safe: no other handle can ever share the cursor's storage.
func (p *Path) ToMutable() *Path {
	b := p.buf
	used := b.bytesThrough(p.depth)

	nb := &Buffer{
		arena:   b.src.Alloc(used),
		vlen:    b.vlen,
		slots:   make([]slot, p.depth), // len == cap: no spare slots
		mutable: true,
		src:     b.src,
	}
	nb.arena = nb.arena[:used]
	copy(nb.arena, b.arena[:used])
	copy(nb.slots, b.slots[:p.depth])
	return &Path{buf: nb, depth: p.depth}
}

// Substitute replaces the final subscript of a mutable cursor.
//
// When the replacement fits within the arena capacity past the final slot's
// offset, the bytes are overwritten in place with zero allocations.
// Otherwise the cursor reallocates once, sized exactly to the new
// requirement, so a later run of equal-or-shorter substitutions is again
// allocation-free.
//
// The buffer must have been produced by ToMutable and the handle must
// expose every populated slot, else ErrNotMutable. Callers must continue
// with the returned handle; after a reallocation the receiver is stale.
func (p *Path) Substitute(sub []byte) (*Path, error) {
	b := p.buf
	if !b.mutable || p.depth != b.populated() {
		return nil, fmt.Errorf("%w: depth %d, populated %d", ErrNotMutable, p.depth, b.populated())
	}
	if p.depth == 0 {
		return nil, fmt.Errorf("%w: no final subscript at depth 0", ErrInvalidDepth)
	}
	if len(sub) > format.MaxSubscriptLen {
		return nil, fmt.Errorf("%w: %d bytes", ErrSubscriptTooLong, len(sub))
	}

	last := b.slots[p.depth-1]
	need := int(last.off) + len(sub)
	if need > format.MaxPathBytes {
		return nil, fmt.Errorf("%w: %d bytes", ErrPathTooBig, need)
	}

	if need <= cap(b.arena) {
		// Fits in the tail slack: overwrite in place.
		b.arena = b.arena[:need]
		copy(b.arena[last.off:], sub)
		b.slots[p.depth-1].ln = uint32(len(sub))
		return p, nil
	}

	// Reallocate tight. Slot offsets are arena-relative and the layout
	// before the final slot is preserved byte for byte, so they carry
	// over unchanged; only the backing allocation is new.
	na := b.src.Alloc(need)
	na = na[:last.off]
	copy(na, b.arena[:last.off])
	na = append(na, sub...)

	slots := make([]slot, p.depth)
	copy(slots, b.slots)
	slots[p.depth-1] = slot{off: last.off, ln: uint32(len(sub))}

	nb := &Buffer{arena: na, vlen: b.vlen, slots: slots, mutable: true, src: b.src}
	return &Path{buf: nb, depth: p.depth}, nil
}
