package keypath

import (
	"fmt"
	"math"
	"strconv"

	"github.com/joshuapare/pathkit/internal/format"
	"github.com/joshuapare/pathkit/keypath/alloc"
)

// Path is a handle exposing a Buffer at a logical depth.
//
// A Path returned by a constructor owns its Buffer. A Path returned by a
// non-copying Append is a view: it shares the root Buffer at a different
// depth, and the buf pointer is the strong reference that keeps the root
// alive. Buffers hold no references to their views, so no cycles exist.
type Path struct {
	buf   *Buffer
	depth int
}

// New builds a heap-allocated path from a varname and zero or more
// subscripts. The subscript bytes are copied; callers may reuse their
// slices afterwards.
func New(varname string, subs ...[]byte) (*Path, error) {
	return NewIn(alloc.Heap, varname, subs...)
}

// NewIn builds a path whose arena is drawn from the given allocator. Used
// with a ScratchArena it produces a transient, single-call path with the
// same logical contract as a heap path; only storage lifetime differs.
func NewIn(a alloc.Arena, varname string, subs ...[]byte) (*Path, error) {
	if err := checkVarname(varname); err != nil {
		return nil, err
	}
	if len(subs) > format.MaxSubscripts {
		return nil, fmt.Errorf("%w: depth %d exceeds %d", ErrTooManySubscripts, len(subs), format.MaxSubscripts)
	}
	need := len(varname)
	for i, s := range subs {
		if len(s) > format.MaxSubscriptLen {
			return nil, fmt.Errorf("%w: subscript %d is %d bytes", ErrSubscriptTooLong, i, len(s))
		}
		need += len(s)
	}
	if need > format.MaxPathBytes {
		return nil, fmt.Errorf("%w: %d bytes", ErrPathTooBig, need)
	}

	b := &Buffer{
		arena: a.Alloc(alloc.ByteCapacity(need)),
		vlen:  uint32(len(varname)),
		slots: make([]slot, 0, alloc.SlotCapacity(len(subs))),
		src:   a,
	}
	b.arena = append(b.arena, varname...)
	for _, s := range subs {
		b.appendSub(s)
	}
	return &Path{buf: b, depth: len(subs)}, nil
}

// FromStrings is a convenience constructor for string subscripts.
func FromStrings(varname string, subs ...string) (*Path, error) {
	bs := make([][]byte, len(subs))
	for i, s := range subs {
		bs[i] = []byte(s)
	}
	return New(varname, bs...)
}

// Values builds a path from loosely typed subscripts: byte slices and
// strings are used as-is, and integer or float values are coerced to their
// decimal byte representation. Any other type fails with
// ErrInvalidSubscriptType.
func Values(varname string, subs ...any) (*Path, error) {
	bs := make([][]byte, len(subs))
	for i, v := range subs {
		s, err := coerceSubscript(v)
		if err != nil {
			return nil, fmt.Errorf("subscript %d: %w", i, err)
		}
		bs[i] = s
	}
	return New(varname, bs...)
}

// Derive builds a new, independent path that copies the parent's content up
// to the parent's depth and extends it with the given subscripts. Unlike
// Append it never shares storage with the parent.
func Derive(p *Path, subs ...[]byte) (*Path, error) {
	total := p.depth + len(subs)
	if total > format.MaxSubscripts {
		return nil, fmt.Errorf("%w: depth %d exceeds %d", ErrTooManySubscripts, total, format.MaxSubscripts)
	}
	need := p.buf.bytesThrough(p.depth)
	for i, s := range subs {
		if len(s) > format.MaxSubscriptLen {
			return nil, fmt.Errorf("%w: subscript %d is %d bytes", ErrSubscriptTooLong, i, len(s))
		}
		need += len(s)
	}
	if need > format.MaxPathBytes {
		return nil, fmt.Errorf("%w: %d bytes", ErrPathTooBig, need)
	}

	nb := cloneThrough(p.buf, p.depth, total, need)
	for _, s := range subs {
		nb.appendSub(s)
	}
	return &Path{buf: nb, depth: total}, nil
}

// cloneThrough copies the varname and first depth subscripts of b into a
// fresh buffer sized for totalDepth subscripts and totalBytes of payload,
// drawn from the same arena source as b.
func cloneThrough(b *Buffer, depth, totalDepth, totalBytes int) *Buffer {
	nb := &Buffer{
		arena: b.src.Alloc(alloc.ByteCapacity(totalBytes)),
		vlen:  b.vlen,
		slots: make([]slot, depth, alloc.SlotCapacity(totalDepth)),
		src:   b.src,
	}
	used := b.bytesThrough(depth)
	nb.arena = nb.arena[:used]
	copy(nb.arena, b.arena[:used])
	copy(nb.slots, b.slots[:depth])
	return nb
}

// checkVarname validates the variable name: non-empty and at most
// MaxVarnameLen bytes, not counting the optional leading '^' of a global.
func checkVarname(varname string) error {
	n := len(varname)
	if n > 0 && varname[0] == '^' {
		n--
	}
	if n == 0 {
		return fmt.Errorf("%w: empty name", ErrInvalidVarname)
	}
	if n > format.MaxVarnameLen {
		return fmt.Errorf("%w: %d bytes exceeds %d", ErrInvalidVarname, n, format.MaxVarnameLen)
	}
	return nil
}

// coerceSubscript converts a loosely typed subscript value to bytes.
func coerceSubscript(v any) ([]byte, error) {
	switch x := v.(type) {
	case []byte:
		return x, nil
	case string:
		return []byte(x), nil
	case int:
		return strconv.AppendInt(nil, int64(x), 10), nil
	case int8:
		return strconv.AppendInt(nil, int64(x), 10), nil
	case int16:
		return strconv.AppendInt(nil, int64(x), 10), nil
	case int32:
		return strconv.AppendInt(nil, int64(x), 10), nil
	case int64:
		return strconv.AppendInt(nil, x, 10), nil
	case uint:
		return strconv.AppendUint(nil, uint64(x), 10), nil
	case uint8:
		return strconv.AppendUint(nil, uint64(x), 10), nil
	case uint16:
		return strconv.AppendUint(nil, uint64(x), 10), nil
	case uint32:
		return strconv.AppendUint(nil, uint64(x), 10), nil
	case uint64:
		return strconv.AppendUint(nil, x, 10), nil
	case float32:
		return coerceFloat(float64(x)), nil
	case float64:
		return coerceFloat(x), nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrInvalidSubscriptType, v)
	}
}

// coerceFloat renders integral floats without a decimal point, matching how
// the engine writes numbers back.
func coerceFloat(f float64) []byte {
	if f == math.Trunc(f) && math.Abs(f) < 1e15 {
		return strconv.AppendInt(nil, int64(f), 10)
	}
	return strconv.AppendFloat(nil, f, 'f', -1, 64)
}
