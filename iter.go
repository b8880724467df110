// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package phfwd

import (
	"iter"

	"github.com/gaissmai/phfwd/internal/alphabet"
)

// All returns an iterator over all redirections (from, to),
// ascending in the order of [Compare] for from.
func (e *Engine) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		if e == nil {
			return
		}
		e.init()

		e.eachTerminal(e.redirected.root, yield)
	}
}

// Covered returns an iterator over all redirections (from, to) with
// from starting with prefix, ascending in the order of [Compare].
// These are the redirections deleted by Remove(prefix).
func (e *Engine) Covered(prefix string) iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		if e == nil || !alphabet.Valid(prefix) {
			return
		}
		e.init()

		top, ok := e.redirected.find(prefix)
		if !ok {
			return
		}

		e.eachTerminal(top, yield)
	}
}

// Matches returns an iterator over all redirections (from, to) with
// from being a prefix of number. The iteration is from the longest
// to the shortest match, the first one is used by Get.
func (e *Engine) Matches(number string) iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		if e == nil || !alphabet.Valid(number) {
			return
		}
		e.init()

		// stack of the terminals on the path for reverse ordering
		var stack []handle

		h := e.redirected.root
		for i := range len(number) {
			if h = e.redirected.child(h, number[i]); h == 0 {
				break
			}
			if e.redirected.node(h).target != 0 {
				stack = append(stack, h)
			}
		}

		// unwind the stack, longest match first
		for i := len(stack) - 1; i >= 0; i-- {
			from, to := e.redirection(stack[i])
			if !yield(from, to) {
				return
			}
		}
	}
}

// redirection returns the prefixes of the redirection in terminal r.
func (e *Engine) redirection(r handle) (from, to string) {
	rn := e.redirected.node(r)
	return rn.prefix, e.targets.node(rn.target).prefix
}

// eachTerminal calls yield for all redirections in the subtree at top,
// in pre-order with ascending child symbols. Stops early if yield
// returns false.
func (e *Engine) eachTerminal(top handle, yield func(string, string) bool) bool {
	stack := []handle{top}

	for len(stack) > 0 {
		// pop
		h := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		n := e.redirected.node(h)
		if n.target != 0 {
			if !yield(e.redirection(h)) {
				return false
			}
		}

		// push the children in reverse order, smallest symbol on top
		all := n.kids.All()
		for i := len(all) - 1; i >= 0; i-- {
			stack = append(stack, n.children[all[i]])
		}
	}

	return true
}
