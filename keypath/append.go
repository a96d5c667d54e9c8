package keypath

import (
	"fmt"

	"github.com/joshuapare/pathkit/internal/format"
)

// Append derives a path one or more subscripts deeper than this handle.
// See AppendAt for the sharing rules.
func (p *Path) Append(subs ...[]byte) (*Path, error) {
	return p.AppendAt(p.depth, subs...)
}

// AppendAt appends subscripts starting at an explicit depth, which may be
// shallower than the handle's own depth (appending below an ancestor).
//
// Each subscript lands in place only when that cannot be observed through
// any other live handle: the target slot is the next unpopulated one and
// both slot and byte capacity suffice, or the slot already holds
// byte-identical content. Otherwise the operation copies everything up to
// the target into a fresh, independent buffer and continues there.
//
// When no copy was needed but the resulting depth differs from the handle's,
// the returned Path is a view sharing the root buffer. Callers always use
// the returned handle; the receiver is never modified.
//
// Appending zero subscripts at the handle's own depth returns the receiver.
func (p *Path) AppendAt(depth int, subs ...[]byte) (*Path, error) {
	b := p.buf
	if depth < 0 || depth > b.populated() {
		return nil, fmt.Errorf("%w: start depth %d, populated %d", ErrCorruptDepth, depth, b.populated())
	}
	if len(subs) == 0 {
		if depth == p.depth {
			return p, nil
		}
		return &Path{buf: b, depth: depth}, nil
	}

	newDepth := depth + len(subs)
	if newDepth > format.MaxSubscripts {
		return nil, fmt.Errorf("%w: depth %d exceeds %d", ErrTooManySubscripts, newDepth, format.MaxSubscripts)
	}

	// Validate every input before the first byte is written, so a failed
	// append never leaves partial mutation behind.
	extra := 0
	for i, s := range subs {
		if len(s) > format.MaxSubscriptLen {
			return nil, fmt.Errorf("%w: subscript %d is %d bytes", ErrSubscriptTooLong, i, len(s))
		}
		extra += len(s)
	}
	if b.bytesThrough(depth)+extra > format.MaxPathBytes {
		return nil, fmt.Errorf("%w: %d bytes", ErrPathTooBig, b.bytesThrough(depth)+extra)
	}

	cur := depth
	for si, s := range subs {
		if cur < b.populated() {
			// Occupied slot: byte-identical content is confirmed in
			// place, anything else forces the copy.
			if b.subEqual(cur, s) {
				cur++
				continue
			}
			b = cowTail(b, cur, newDepth, subs[si:])
			cur++
			continue
		}

		// Next unpopulated slot. Once b is our own copy, capacity is
		// guaranteed; on the shared buffer both slot and byte capacity
		// must suffice. A mutable buffer never has spare slots, so it
		// always takes the copy branch here.
		if b != p.buf || (len(b.slots) < cap(b.slots) && len(b.arena)+len(s) <= cap(b.arena)) {
			b.appendSub(s)
			cur++
			continue
		}
		b = cowTail(b, cur, newDepth, subs[si:])
		cur++
	}

	if b != p.buf {
		// Copied: the result is a new, independent owned path.
		return &Path{buf: b, depth: newDepth}, nil
	}
	if newDepth == p.depth {
		return p, nil
	}
	// Extended or re-confirmed in place at a different depth: hand out a
	// view over the shared root.
	return &Path{buf: b, depth: newDepth}, nil
}

// cowTail copies b's content up to depth into a fresh buffer sized for the
// final depth plus headroom, and writes the first pending subscript into it.
// The remaining pending subscripts are guaranteed to fit.
func cowTail(b *Buffer, depth, finalDepth int, pending [][]byte) *Buffer {
	need := b.bytesThrough(depth)
	for _, s := range pending {
		need += len(s)
	}
	nb := cloneThrough(b, depth, finalDepth, need)
	nb.appendSub(pending[0])
	return nb
}
