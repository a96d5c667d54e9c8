package keypath

import "fmt"

// Depth returns the number of subscripts this handle exposes. A depth of
// zero means the bare varname.
func (p *Path) Depth() int {
	return p.depth
}

// Populated returns the number of populated slots in the underlying buffer.
// For a view this can exceed Depth.
func (p *Path) Populated() int {
	return p.buf.populated()
}

// Varname returns the variable-name bytes. The slice aliases the buffer's
// arena and must not be modified.
func (p *Path) Varname() []byte {
	return p.buf.varname()
}

// Subscript returns the bytes of the subscript at index i. Negative indices
// count back from the handle's depth, so -1 is the final subscript. The
// returned slice aliases the arena and must not be modified.
func (p *Path) Subscript(i int) ([]byte, error) {
	idx := i
	if idx < 0 {
		idx += p.depth
	}
	if idx < 0 || idx >= p.depth {
		return nil, fmt.Errorf("%w: index %d at depth %d", ErrInvalidDepth, i, p.depth)
	}
	s, ok := p.buf.sub(idx)
	if !ok {
		return nil, fmt.Errorf("%w: slot %d outside arena", ErrCorruptDepth, idx)
	}
	return s, nil
}

// Subs returns zero-copy views of every subscript up to the handle's depth,
// in order. This is the shape the engine call layer consumes alongside
// Varname. The slices alias the arena and must not be modified.
func (p *Path) Subs() [][]byte {
	out := make([][]byte, p.depth)
	for i := range out {
		out[i], _ = p.buf.sub(i)
	}
	return out
}

// SubsInto appends zero-copy views of every subscript to dst and returns
// it, reusing dst's backing array when it is large enough. Iteration code
// uses this to rebuild an engine reference with no per-step allocation.
func (p *Path) SubsInto(dst [][]byte) [][]byte {
	dst = dst[:0]
	for i := 0; i < p.depth; i++ {
		s, _ := p.buf.sub(i)
		dst = append(dst, s)
	}
	return dst
}

// IsMutable reports whether the underlying buffer is a mutable cursor
// produced by ToMutable.
func (p *Path) IsMutable() bool {
	return p.buf.mutable
}

// IsView reports whether this handle exposes a depth different from its
// buffer's populated depth, the condition under which an in-place append
// through it is forbidden.
func (p *Path) IsView() bool {
	return p.depth != p.buf.populated()
}
