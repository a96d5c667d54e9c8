// Package engine defines the boundary between the path cache and the
// underlying key-value engine.
//
// A path buffer is handed to the engine as a KeyRef: the (varname,
// subscript-array) pair in the engine's native calling convention, aliasing
// the buffer's arena with zero copies. The Engine interface carries the
// operations the client issues against a key; implementations marshal the
// KeyRef into whatever the real engine expects.
//
// Engines treat a KeyRef as read-only and must not retain its slices past
// the call.
package engine

import (
	"errors"

	"github.com/joshuapare/pathkit/keypath"
)

var (
	// ErrNotFound indicates the node exists nowhere in the store: it has
	// neither a value nor descendants.
	ErrNotFound = errors.New("engine: node has no value")

	// ErrEnd indicates a sibling iteration ran past the last (or first)
	// subscript at its level.
	ErrEnd = errors.New("engine: no more siblings")
)

// KeyRef is one key in the engine's native shape. Both fields alias a path
// buffer's arena; engines read them during the call only.
type KeyRef struct {
	Varname []byte
	Subs    [][]byte
}

// Depth returns the number of subscripts in the reference.
func (k KeyRef) Depth() int {
	return len(k.Subs)
}

// RefOf builds a KeyRef from a path without copying any bytes.
func RefOf(p *keypath.Path) KeyRef {
	return KeyRef{Varname: p.Varname(), Subs: p.Subs()}
}

// Engine is the set of key-value operations the client invokes. Like the
// client itself, implementations are not required to be safe for concurrent
// use.
type Engine interface {
	// Get returns the value stored at the key, or ErrNotFound.
	Get(k KeyRef) ([]byte, error)

	// Set stores a value at the key, creating it as needed.
	Set(k KeyRef, val []byte) error

	// Kill deletes the key's value and its entire subtree.
	Kill(k KeyRef) error

	// Data reports whether the key holds a value and whether it has
	// descendants.
	Data(k KeyRef) (hasValue, hasTree bool, err error)

	// Incr adds by to the key's numeric value (missing counts as zero)
	// and returns the stored result.
	Incr(k KeyRef, by int64) ([]byte, error)

	// SubscriptNext returns the sibling subscript value ordered directly
	// after the final subscript of k, or ErrEnd. An empty final subscript
	// positions the scan before the first sibling.
	SubscriptNext(k KeyRef) ([]byte, error)

	// SubscriptPrev is the reverse counterpart of SubscriptNext. An empty
	// final subscript positions the scan after the last sibling.
	SubscriptPrev(k KeyRef) ([]byte, error)
}
