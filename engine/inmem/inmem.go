// Package inmem provides an in-memory Engine backed by an ordered B-tree.
//
// It exists for tests, examples, and tooling that exercise the path cache
// end to end without a real database: keys order the way the engine orders
// them (empty subscript first, then canonical numbers numerically, then
// strings bytewise), so sibling iteration behaves identically.
//
// Not safe for concurrent use, matching the client it stands in for.
package inmem

import (
	"math"
	"strconv"
	"strings"

	"github.com/google/btree"
	"github.com/joshuapare/pathkit/engine"
	"github.com/joshuapare/pathkit/internal/format"
)

// entry is one stored node, or a transient ordering pivot. topAt >= 0 marks
// a pivot that compares greater than any subscript at that index; stored
// entries always carry topAt == -1.
type entry struct {
	varname string
	subs    []string
	val     []byte
	topAt   int
}

// Store is an ordered in-memory key-value engine.
type Store struct {
	tr *btree.BTreeG[*entry]
}

// New creates an empty store.
func New() *Store {
	return &Store{tr: btree.NewG(32, func(a, b *entry) bool {
		return compareKey(a, b) < 0
	})}
}

// Len returns the number of nodes holding a value.
func (s *Store) Len() int {
	return s.tr.Len()
}

// keyOf copies a KeyRef into a stored key shape. The copy matters: the
// KeyRef aliases a path arena that the caller will reuse.
func keyOf(k engine.KeyRef) *entry {
	e := &entry{varname: string(k.Varname), topAt: -1}
	if len(k.Subs) > 0 {
		e.subs = make([]string, len(k.Subs))
		for i, s := range k.Subs {
			e.subs[i] = string(s)
		}
	}
	return e
}

// Get returns the value stored at the key, or engine.ErrNotFound. The
// returned slice is owned by the store and must not be modified.
func (s *Store) Get(k engine.KeyRef) ([]byte, error) {
	e, ok := s.tr.Get(keyOf(k))
	if !ok {
		return nil, engine.ErrNotFound
	}
	return e.val, nil
}

// Set stores a value at the key, creating it as needed.
func (s *Store) Set(k engine.KeyRef, val []byte) error {
	e := keyOf(k)
	e.val = append([]byte(nil), val...)
	s.tr.ReplaceOrInsert(e)
	return nil
}

// Kill deletes the key's value and its entire subtree.
func (s *Store) Kill(k engine.KeyRef) error {
	pivot := keyOf(k)
	var doomed []*entry
	s.tr.AscendGreaterOrEqual(pivot, func(e *entry) bool {
		if !underneath(e, pivot) {
			return false
		}
		doomed = append(doomed, e)
		return true
	})
	for _, e := range doomed {
		s.tr.Delete(e)
	}
	return nil
}

// Data reports whether the key holds a value and whether it has descendants.
func (s *Store) Data(k engine.KeyRef) (hasValue, hasTree bool, err error) {
	pivot := keyOf(k)
	s.tr.AscendGreaterOrEqual(pivot, func(e *entry) bool {
		if compareKey(e, pivot) == 0 {
			hasValue = true
			return true
		}
		hasTree = underneath(e, pivot)
		return false
	})
	return hasValue, hasTree, nil
}

// Incr adds by to the key's numeric value, treating a missing or
// non-numeric value as zero, and returns the stored result.
func (s *Store) Incr(k engine.KeyRef, by int64) ([]byte, error) {
	cur := 0.0
	if e, ok := s.tr.Get(keyOf(k)); ok {
		cur, _ = strconv.ParseFloat(string(e.val), 64)
	}
	out := canonicNumber(cur + float64(by))
	if err := s.Set(k, out); err != nil {
		return nil, err
	}
	return out, nil
}

// SubscriptNext returns the sibling subscript ordered directly after the
// final subscript of k, or engine.ErrEnd.
func (s *Store) SubscriptNext(k engine.KeyRef) ([]byte, error) {
	if len(k.Subs) == 0 {
		return nil, engine.ErrEnd
	}
	level := len(k.Subs) - 1

	// The pivot sorts above the final subscript's entire subtree but below
	// its next sibling.
	pivot := keyOf(k)
	pivot.topAt = level + 1

	var next []byte
	s.tr.AscendGreaterOrEqual(pivot, func(e *entry) bool {
		if e.varname == pivot.varname && len(e.subs) > level && samePrefix(e.subs, pivot.subs, level) {
			next = []byte(e.subs[level])
		}
		return false
	})
	if next == nil {
		return nil, engine.ErrEnd
	}
	return next, nil
}

// SubscriptPrev is the reverse counterpart of SubscriptNext. An empty final
// subscript positions the scan after the last sibling.
func (s *Store) SubscriptPrev(k engine.KeyRef) ([]byte, error) {
	if len(k.Subs) == 0 {
		return nil, engine.ErrEnd
	}
	level := len(k.Subs) - 1
	last := string(k.Subs[level])

	pivot := keyOf(k)
	if last == "" {
		// Scan down from past every sibling at this level.
		pivot.subs = pivot.subs[:level]
		pivot.topAt = level
	}

	var prev []byte
	s.tr.DescendLessOrEqual(pivot, func(e *entry) bool {
		if e.varname != pivot.varname || !samePrefix(e.subs, pivot.subs, level) {
			return false
		}
		if len(e.subs) <= level {
			// The prefix node itself sits below every sibling.
			return false
		}
		cand := e.subs[level]
		if last != "" && cand == last {
			return true // inside the starting subscript's subtree
		}
		prev = []byte(cand)
		return false
	})
	if prev == nil {
		return nil, engine.ErrEnd
	}
	return prev, nil
}

// underneath reports whether e is the pivot node itself or one of its
// descendants.
func underneath(e, pivot *entry) bool {
	return e.varname == pivot.varname &&
		len(e.subs) >= len(pivot.subs) &&
		samePrefix(e.subs, pivot.subs, len(pivot.subs))
}

func samePrefix(subs, prefix []string, n int) bool {
	if len(subs) < n {
		return false
	}
	for i := 0; i < n; i++ {
		if subs[i] != prefix[i] {
			return false
		}
	}
	return true
}

// compareKey orders entries the way the engine collates keys: by varname,
// then subscript by subscript, with a shorter key sorting before its
// descendants. A pivot's topAt index outranks any real subscript there.
func compareKey(a, b *entry) int {
	if c := strings.Compare(a.varname, b.varname); c != 0 {
		return c
	}
	for i := 0; ; i++ {
		aTop := a.topAt == i
		bTop := b.topAt == i
		switch {
		case aTop && bTop:
			return 0
		case aTop:
			return 1
		case bTop:
			return -1
		}
		aEnd := i >= len(a.subs)
		bEnd := i >= len(b.subs)
		switch {
		case aEnd && bEnd:
			return 0
		case aEnd:
			return -1
		case bEnd:
			return 1
		}
		if c := compareSub(a.subs[i], b.subs[i]); c != 0 {
			return c
		}
	}
}

// compareSub orders two subscripts at one level: empty first, then
// canonical numbers in numeric order, then everything else bytewise.
func compareSub(a, b string) int {
	if a == b {
		return 0
	}
	if a == "" {
		return -1
	}
	if b == "" {
		return 1
	}
	aNum := format.IsCanonicalNumber([]byte(a))
	bNum := format.IsCanonicalNumber([]byte(b))
	switch {
	case aNum && bNum:
		af, _ := strconv.ParseFloat(a, 64)
		bf, _ := strconv.ParseFloat(b, 64)
		switch {
		case af < bf:
			return -1
		case af > bf:
			return 1
		default:
			return 0
		}
	case aNum:
		return -1
	case bNum:
		return 1
	default:
		return strings.Compare(a, b)
	}
}

// canonicNumber renders f in the engine's canonical form: integral values
// without a decimal point, fractions without a leading zero.
func canonicNumber(f float64) []byte {
	if f == math.Trunc(f) && math.Abs(f) < 1e15 {
		return strconv.AppendInt(nil, int64(f), 10)
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if strings.HasPrefix(s, "0.") {
		s = s[1:]
	} else if strings.HasPrefix(s, "-0.") {
		s = "-" + s[2:]
	}
	return []byte(s)
}

// Compile-time interface check
var _ engine.Engine = (*Store)(nil)
