// Package node provides the key abstraction layer: a Node binds one
// database location, represented internally as a cached key path, to the
// engine that owns it.
//
// Deriving a child node shares the parent's path storage whenever the
// copy-on-write rules allow, so walking down a tree re-marshals nothing.
// Sibling iteration drives a mutable path cursor through the engine's
// ordered subscript scan, substituting each returned value in place.
//
// Not safe for concurrent use, like the engine client it fronts.
package node

import (
	"errors"
	"fmt"

	"github.com/joshuapare/pathkit/engine"
	"github.com/joshuapare/pathkit/keypath"
	"github.com/joshuapare/pathkit/zwr"
)

// Node is one database location bound to an engine.
type Node struct {
	eng  engine.Engine
	path *keypath.Path
}

// New builds a node from a varname and subscripts.
func New(eng engine.Engine, varname string, subs ...[]byte) (*Node, error) {
	p, err := keypath.New(varname, subs...)
	if err != nil {
		return nil, err
	}
	return &Node{eng: eng, path: p}, nil
}

// Wrap builds a node around an existing path handle.
func Wrap(eng engine.Engine, p *keypath.Path) *Node {
	return &Node{eng: eng, path: p}
}

// Child derives a node one or more subscripts deeper. The child shares the
// parent's storage whenever the append can happen without copying.
func (n *Node) Child(subs ...[]byte) (*Node, error) {
	p, err := n.path.Append(subs...)
	if err != nil {
		return nil, fmt.Errorf("child of %s: %w", zwr.Render(n.path), err)
	}
	return &Node{eng: n.eng, path: p}, nil
}

// Path returns the node's underlying path handle.
func (n *Node) Path() *keypath.Path {
	return n.path
}

// Depth returns the node's subscript depth.
func (n *Node) Depth() int {
	return n.path.Depth()
}

// String renders the node's key in diagnostic form.
func (n *Node) String() string {
	return zwr.Render(n.path)
}

// Get returns the value stored at this node.
func (n *Node) Get() ([]byte, error) {
	v, err := n.eng.Get(engine.RefOf(n.path))
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", zwr.Render(n.path), err)
	}
	return v, nil
}

// Set stores a value at this node.
func (n *Node) Set(val []byte) error {
	if err := n.eng.Set(engine.RefOf(n.path), val); err != nil {
		return fmt.Errorf("set %s: %w", zwr.Render(n.path), err)
	}
	return nil
}

// Kill deletes this node's value and its entire subtree.
func (n *Node) Kill() error {
	if err := n.eng.Kill(engine.RefOf(n.path)); err != nil {
		return fmt.Errorf("kill %s: %w", zwr.Render(n.path), err)
	}
	return nil
}

// Data reports whether the node holds a value and whether it has
// descendants.
func (n *Node) Data() (hasValue, hasTree bool, err error) {
	hasValue, hasTree, err = n.eng.Data(engine.RefOf(n.path))
	if err != nil {
		return false, false, fmt.Errorf("data %s: %w", zwr.Render(n.path), err)
	}
	return hasValue, hasTree, nil
}

// Incr adds by to the node's numeric value and returns the stored result.
func (n *Node) Incr(by int64) ([]byte, error) {
	v, err := n.eng.Incr(engine.RefOf(n.path), by)
	if err != nil {
		return nil, fmt.Errorf("incr %s: %w", zwr.Render(n.path), err)
	}
	return v, nil
}

// Subscripts iterates the subscripts one level below this node in
// ascending collation order, starting after from. A nil or empty from
// starts before the first sibling.
func (n *Node) Subscripts(from []byte) *SubscriptIter {
	return n.subscripts(from, false)
}

// SubscriptsReverse iterates in descending order, starting before from.
// A nil or empty from starts after the last sibling.
func (n *Node) SubscriptsReverse(from []byte) *SubscriptIter {
	return n.subscripts(from, true)
}

func (n *Node) subscripts(from []byte, reverse bool) *SubscriptIter {
	seed, err := n.path.Append(from)
	if err != nil {
		return &SubscriptIter{err: fmt.Errorf("subscripts of %s: %w", zwr.Render(n.path), err)}
	}
	// The cursor owns its storage outright, so per-step substitution can
	// never be observed through this node or its children.
	cur := seed.ToMutable()
	it := &SubscriptIter{eng: n.eng, cur: cur, reverse: reverse}
	it.ref.Varname = cur.Varname()
	return it
}

// SubscriptIter walks sibling subscripts using a mutable path cursor. Each
// step substitutes the engine's answer into the cursor in place, so
// iterating values of non-increasing length allocates nothing.
type SubscriptIter struct {
	eng     engine.Engine
	cur     *keypath.Path
	ref     engine.KeyRef
	reverse bool
	err     error
	val     []byte
}

// Next advances to the following sibling, reporting false at the end of
// the level or on error.
func (it *SubscriptIter) Next() bool {
	if it.err != nil || it.cur == nil {
		return false
	}
	it.ref.Varname = it.cur.Varname()
	it.ref.Subs = it.cur.SubsInto(it.ref.Subs)

	var next []byte
	var err error
	if it.reverse {
		next, err = it.eng.SubscriptPrev(it.ref)
	} else {
		next, err = it.eng.SubscriptNext(it.ref)
	}
	if err != nil {
		if !errors.Is(err, engine.ErrEnd) {
			it.err = err
		}
		return false
	}

	cur, err := it.cur.Substitute(next)
	if err != nil {
		it.err = err
		return false
	}
	it.cur = cur
	it.val = next
	return true
}

// Subscript returns the current sibling's subscript bytes.
func (it *SubscriptIter) Subscript() []byte {
	return it.val
}

// Node returns an independent node for the current sibling.
func (it *SubscriptIter) Node() (*Node, error) {
	if it.val == nil {
		return nil, fmt.Errorf("%w: iterator not positioned", keypath.ErrInvalidDepth)
	}
	p, err := keypath.Derive(it.cur)
	if err != nil {
		return nil, err
	}
	return &Node{eng: it.eng, path: p}, nil
}

// Err returns the first engine or cursor error the iteration hit, if any.
func (it *SubscriptIter) Err() error {
	return it.err
}
