// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package phfwd

import (
	"fmt"
	"io"
	"strings"

	"github.com/gaissmai/phfwd/internal/alphabet"
)

// ##################################################
//  useful during development, debugging and testing
// ##################################################

// dumpString is just a wrapper for dump.
func (e *Engine) dumpString() string {
	w := new(strings.Builder)
	e.dump(w)

	return w.String()
}

// dump both tries with all nodes to w.
func (e *Engine) dump(w io.Writer) {
	if e == nil {
		return
	}
	e.init()

	fmt.Fprintf(w, "### redirected: size(%d), nodes(%d)\n", e.size, e.redirected.Len())
	e.dumpRedirected(w)

	fmt.Fprintf(w, "### targets: nodes(%d)\n", e.targets.Len())
	e.dumpTargets(w)
}

// dumpRedirected, pre-order walk of the redirected trie.
func (e *Engine) dumpRedirected(w io.Writer) {
	stack := []handle{e.redirected.root}
	for len(stack) > 0 {
		h := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		n := e.redirected.node(h)
		fmt.Fprintf(w, "%s[%d] %s kids: %v", strings.Repeat(".", n.depth), h, edge(&n.links), n.kids)
		if n.target != 0 {
			fmt.Fprintf(w, " prefix: %s target: %d slot: %d", n.prefix, n.target, n.slot)
		}
		fmt.Fprintln(w)

		all := n.kids.All()
		for i := len(all) - 1; i >= 0; i-- {
			stack = append(stack, n.children[all[i]])
		}
	}
}

// dumpTargets, pre-order walk of the target trie.
func (e *Engine) dumpTargets(w io.Writer) {
	stack := []handle{e.targets.root}
	for len(stack) > 0 {
		h := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		n := e.targets.node(h)
		fmt.Fprintf(w, "%s[%d] %s kids: %v", strings.Repeat(".", n.depth), h, edge(&n.links), n.kids)
		if n.isTarget() {
			fmt.Fprintf(w, " prefix: %s refs: %v live: %d", n.prefix, n.refs.Items, n.refs.Live())
		}
		fmt.Fprintln(w)

		all := n.kids.All()
		for i := len(all) - 1; i >= 0; i-- {
			stack = append(stack, n.children[all[i]])
		}
	}
}

// edge returns the symbol of the edge leading to the node, or
// "root" for the root.
func edge(l *links) string {
	if l.parent == 0 {
		return "root"
	}
	return "'" + string(alphabet.Symbol(l.label)) + "'"
}
