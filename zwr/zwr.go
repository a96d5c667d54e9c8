// Package zwr renders key paths in the engine's ZWRITE-style diagnostic
// form: the varname followed by a parenthesised, comma-separated subscript
// list, for example:
//
//	^hello("cowboy","ranches")
//	^stats(2024,"bytes"_$C(9)_"in")
//
// A subscript whose bytes are a canonically written number appears
// unquoted. Anything else is quoted, with embedded quote characters doubled
// and non-printable bytes broken out into $C(n,...) segments joined by '_'.
//
// This form appears in error messages and debug dumps only; it is not on
// any performance path and is never parsed back.
package zwr

import (
	"fmt"

	"github.com/joshuapare/pathkit/internal/format"
	"github.com/joshuapare/pathkit/keypath"
)

// Render returns the diagnostic form of a path at its full depth.
func Render(p *keypath.Path) string {
	s, err := RenderAt(p, p.Depth())
	if err != nil {
		// Depth() is always in range for its own path.
		return string(p.Varname())
	}
	return s
}

// RenderAt renders the path truncated to the given depth. Depth 0 renders
// the bare varname. A depth outside [0, p.Depth()] fails with
// keypath.ErrInvalidDepth.
func RenderAt(p *keypath.Path, depth int) (string, error) {
	subs, err := Subscripts(p, depth)
	if err != nil {
		return "", err
	}
	if depth == 0 {
		return string(p.Varname()), nil
	}
	return fmt.Sprintf("%s(%s)", p.Varname(), subs), nil
}

// Subscripts returns just the comma-joined subscript list at the given
// depth, without the varname or parentheses. Depth 0 yields an empty
// string.
func Subscripts(p *keypath.Path, depth int) (string, error) {
	if depth < 0 || depth > p.Depth() {
		return "", fmt.Errorf("%w: render depth %d, path depth %d",
			keypath.ErrInvalidDepth, depth, p.Depth())
	}
	var out []byte
	for i := 0; i < depth; i++ {
		if i > 0 {
			out = append(out, ',')
		}
		s, err := p.Subscript(i)
		if err != nil {
			return "", err
		}
		out = AppendSubscript(out, s)
	}
	return string(out), nil
}

// AppendSubscript appends the rendered form of one subscript to dst and
// returns the extended slice.
func AppendSubscript(dst, sub []byte) []byte {
	if format.IsCanonicalNumber(sub) {
		return append(dst, sub...)
	}
	if len(sub) == 0 {
		return append(dst, '"', '"')
	}

	i := 0
	first := true
	for i < len(sub) {
		if !first {
			dst = append(dst, '_')
		}
		first = false

		if printable(sub[i]) {
			dst = append(dst, '"')
			for i < len(sub) && printable(sub[i]) {
				if sub[i] == '"' {
					dst = append(dst, '"', '"')
				} else {
					dst = append(dst, sub[i])
				}
				i++
			}
			dst = append(dst, '"')
			continue
		}

		dst = append(dst, '$', 'C', '(')
		for n := 0; i < len(sub) && !printable(sub[i]); n++ {
			if n > 0 {
				dst = append(dst, ',')
			}
			dst = appendByteCode(dst, sub[i])
			i++
		}
		dst = append(dst, ')')
	}
	return dst
}

// printable reports whether c renders directly inside a quoted segment.
func printable(c byte) bool {
	return c >= 0x20 && c <= 0x7E
}

// appendByteCode appends the decimal code of c without allocating.
func appendByteCode(dst []byte, c byte) []byte {
	if c >= 100 {
		dst = append(dst, '0'+c/100)
	}
	if c >= 10 {
		dst = append(dst, '0'+(c/10)%10)
	}
	return append(dst, '0'+c%10)
}
