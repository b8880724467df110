// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package phfwd

import (
	"github.com/gaissmai/phfwd/internal/alphabet"
	"github.com/gaissmai/phfwd/internal/arena"
	"github.com/gaissmai/phfwd/internal/bitset"
)

// handle is required in many places, aliased to keep the code readable.
type handle = arena.Handle

// links is the trie shape shared by both node types.
type links struct {
	parent   handle                // weak back-reference, nil for the root
	children [alphabet.Size]handle // owned children, indexed by symbol
	kids     bitset.BitSet16       // occupancy of children
	depth    int                   // length of the prefix ending here
	label    uint8                 // symbol index of the edge from parent
	cursor   uint8                 // resumable child cursor for walks
}

// childCount returns the number of children.
func (l *links) childCount() int {
	return l.kids.Size()
}

// nodeRef abstracts over *redirNode and *targetNode for the
// generic trie algorithms.
type nodeRef[T any] interface {
	*T

	// link returns the trie shape of the node.
	link() *links

	// hasPayload reports whether the node carries live terminal data.
	hasPayload() bool
}

// trie is an arena of nodes with a root that is never deleted.
// The zero value has no root, see init.
type trie[T any, P nodeRef[T]] struct {
	arena.Arena[T]
	root handle
}

// init allocates the root.
func (t *trie[T, P]) init() {
	if t.root != 0 {
		return
	}

	h, ok := t.Alloc()
	if !ok {
		// limit is always > 0 in a fresh arena
		panic("logic error, no room for the root node")
	}
	t.root = h
}

// reset drops all nodes and allocates a fresh root.
func (t *trie[T, P]) reset() {
	t.Reset()
	t.root = 0
	t.init()
}

// node returns the node for h.
func (t *trie[T, P]) node(h handle) P {
	return P(t.At(h))
}

// child returns the child of h for the symbol c or the nil handle.
func (t *trie[T, P]) child(h handle, c byte) handle {
	return t.node(h).link().children[alphabet.MustIndex(c)]
}

// find walks num from the root and returns the node at the end of
// the path, or false if the path is incomplete.
func (t *trie[T, P]) find(num string) (handle, bool) {
	h := t.root
	for i := range len(num) {
		if h = t.child(h, num[i]); h == 0 {
			return 0, false
		}
	}
	return h, true
}

// extend walks num from the root, missing nodes are created.
// Returns the node at the end of the path.
//
// If the arena runs out of room the freshly created nodes are pruned
// and ErrAllocation is returned.
func (t *trie[T, P]) extend(num string) (handle, error) {
	h := t.root
	for i := range len(num) {
		idx := alphabet.MustIndex(num[i])

		if c := t.node(h).link().children[idx]; c != 0 {
			h = c
			continue
		}

		c, ok := t.Alloc()
		if !ok {
			t.prune(h)
			return 0, ErrAllocation
		}

		// Alloc may have moved the items, fetch parent again
		pl := t.node(h).link()
		pl.children[idx] = c
		pl.kids.MustSet(uint(idx))

		cl := t.node(c).link()
		cl.parent = h
		cl.depth = i + 1
		cl.label = idx

		h = c
	}

	return h, nil
}

// detach unlinks h from its parent and releases it.
// The root is never detached.
func (t *trie[T, P]) detach(h handle) {
	l := t.node(h).link()
	if l.parent == 0 {
		return
	}

	pl := t.node(l.parent).link()
	pl.children[l.label] = 0
	pl.kids.MustClear(uint(l.label))

	t.Free(h)
}

// prune removes stumps, nodes without children and without payload,
// from h upward. The root is never removed.
func (t *trie[T, P]) prune(h handle) {
	for h != 0 && h != t.root {
		n := t.node(h)
		l := n.link()
		if !l.kids.IsEmpty() || n.hasPayload() {
			return
		}

		parent := l.parent
		t.detach(h)
		h = parent
	}
}

// cut deletes the subtree rooted at top in post-order, without
// recursion. Every node is handed to visit after its children are
// gone and right before it is released. The root survives a cut,
// only its children are deleted.
func (t *trie[T, P]) cut(top handle, visit func(handle)) {
	stop := t.node(top).link().parent
	t.node(top).link().cursor = 0

	h := top
	for h != stop {
		l := t.node(h).link()

		// resume with the next child still present
		if next, ok := l.kids.NextSet(uint(l.cursor)); ok {
			l.cursor = uint8(next)
			h = l.children[next]
			continue
		}

		if visit != nil {
			visit(h)
		}

		if h == t.root {
			t.node(h).link().cursor = 0
			return
		}

		parent := t.node(h).link().parent
		t.detach(h)
		h = parent
	}
}
