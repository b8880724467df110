// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package phfwd

import (
	"fmt"
	"slices"

	"github.com/gaissmai/phfwd/internal/alphabet"
)

// Engine stores phone number redirections.
// The zero value is ready to use.
//
// The Engine is not safe for concurrent use, callers must
// serialize access, see the concurrent example. Lookups on an
// Engine created with New only read and may share a read lock.
// A zero Engine allocates its roots on first use, even in Get
// and Reverse, so its first access needs the write lock.
type Engine struct {
	// trie of redirected prefixes
	redirected trie[redirNode, *redirNode]

	// trie of target prefixes, cross-linked with redirected
	targets trie[targetNode, *targetNode]

	// number of redirections
	size int
}

// New returns an empty Engine.
func New() *Engine {
	e := new(Engine)
	e.init()
	return e
}

// init the roots, so no constructor is needed.
func (e *Engine) init() {
	e.redirected.init()
	e.targets.init()
}

// Len returns the number of redirections.
func (e *Engine) Len() int {
	if e == nil {
		return 0
	}
	return e.size
}

// Add redirects all numbers starting with the prefix from to the
// numbers where this prefix is replaced by to.
//
// An existing redirection of from is replaced. The redirection is
// not transitive. Add fails with ErrInvalidNumber if from or to is
// not a phone number and with ErrIdenticalNumbers if from == to.
func (e *Engine) Add(from, to string) error {
	if !alphabet.Valid(from) {
		return fmt.Errorf("%w: %q", ErrInvalidNumber, from)
	}
	if !alphabet.Valid(to) {
		return fmt.Errorf("%w: %q", ErrInvalidNumber, to)
	}
	if from == to {
		return fmt.Errorf("%w: %q", ErrIdenticalNumbers, from)
	}

	e.init()

	r, err := e.redirected.extend(from)
	if err != nil {
		return err
	}

	t, err := e.targets.extend(to)
	if err != nil {
		// remove the fresh redirected path, if any
		e.redirected.prune(r)
		return err
	}

	rn := e.redirected.node(r)

	// same redirection again, nothing to do
	if rn.target == t {
		return nil
	}

	oldTarget, oldSlot := rn.target, rn.slot

	// link the new target first, releasing the old target may
	// prune upward and the new target is still a stump
	tn := e.targets.node(t)
	slot := tn.refs.Append(r)
	if tn.prefix == "" {
		tn.prefix = to
	}

	if oldTarget != 0 {
		e.release(oldTarget, oldSlot)
	} else {
		e.size++
	}

	rn.target = t
	rn.slot = slot
	rn.prefix = from

	return nil
}

// release clears the back-reference at slot in the target node t.
// When the last forwarder is gone the target loses its terminal data
// and the dead branch is pruned.
func (e *Engine) release(t handle, slot int) {
	tn := e.targets.node(t)
	tn.refs.DeleteAt(slot)

	switch {
	case !tn.isTarget():
		tn.prefix = ""
		e.targets.prune(t)
	case tn.refs.Sparse():
		// renumber the forwarders moved by the compaction
		tn.refs.Compact(func(r handle, i int) {
			e.redirected.node(r).slot = i
		})
	}
}

// retire removes the redirection terminating in the redirected node r.
func (e *Engine) retire(r handle) {
	rn := e.redirected.node(r)
	if rn.target == 0 {
		return
	}

	t, slot := rn.target, rn.slot

	rn.target = 0
	rn.slot = 0
	rn.prefix = ""

	e.release(t, slot)
	e.size--
}

// Remove deletes all redirections with a redirected prefix starting
// with prefix. Remove is a no-op for an invalid prefix or if there
// is no such redirection.
func (e *Engine) Remove(prefix string) {
	if !alphabet.Valid(prefix) {
		return
	}

	e.init()

	top, ok := e.redirected.find(prefix)
	if !ok {
		return
	}

	parent := e.redirected.node(top).parent

	// post-order walk, retire and delete the whole subtree
	e.redirected.cut(top, e.retire)

	// purge the dangling path above the subtree
	e.redirected.prune(parent)
}

// Clear removes all redirections and drops the node storage of
// both tries, only two fresh roots remain. Clear on a nil Engine
// is a no-op.
func (e *Engine) Clear() {
	if e == nil {
		return
	}

	e.redirected.reset()
	e.targets.reset()
	e.size = 0
}

// Get returns the redirection of number, using the longest matching
// redirected prefix. The result contains number itself if no prefix
// matches and is empty if number is not a phone number.
func (e *Engine) Get(number string) *Numbers {
	if !alphabet.Valid(number) {
		return new(Numbers)
	}

	e.init()

	// deepest terminal on the path
	var lpm handle

	h := e.redirected.root
	for i := range len(number) {
		if h = e.redirected.child(h, number[i]); h == 0 {
			break
		}
		if e.redirected.node(h).target != 0 {
			lpm = h
		}
	}

	if lpm == 0 {
		return &Numbers{nums: []string{number}}
	}

	rn := e.redirected.node(lpm)
	tn := e.targets.node(rn.target)

	return &Numbers{nums: []string{tn.prefix + number[rn.depth:]}}
}

// Reverse returns all numbers x with a redirection of a prefix of x
// to a prefix of number, for every matching target prefix, not only
// the longest. The number itself is always part of the result.
//
// The result is sorted with Compare and free of duplicates, it is
// empty if number is not a phone number.
func (e *Engine) Reverse(number string) *Numbers {
	if !alphabet.Valid(number) {
		return new(Numbers)
	}

	e.init()

	nums := []string{number}

	h := e.targets.root
	for i := range len(number) {
		if h = e.targets.child(h, number[i]); h == 0 {
			break
		}

		tn := e.targets.node(h)
		if !tn.isTarget() {
			continue
		}

		suffix := number[tn.depth:]
		for _, r := range tn.refs.All() {
			nums = append(nums, e.redirected.node(r).prefix+suffix)
		}
	}

	slices.SortFunc(nums, alphabet.Compare)

	return &Numbers{nums: slices.Compact(nums)}
}
