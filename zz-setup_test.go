// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package phfwd

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gaissmai/phfwd/internal/alphabet"
)

// this file contains helpers for other test functions

// workLoadN to adjust loops for tests with -short
func workLoadN() int {
	if testing.Short() {
		return 100
	}
	return 1_000
}

// few symbols and short numbers, to provoke shared prefixes
const testSymbols = "012*#"

// randomNumber returns a random phone number with 1..maxLen symbols.
func randomNumber(prng *rand.Rand, maxLen int) string {
	n := 1 + prng.IntN(maxLen)
	b := make([]byte, n)
	for i := range b {
		b[i] = testSymbols[prng.IntN(len(testSymbols))]
	}
	return string(b)
}

// checkInvariants walks both tries and verifies the structural
// invariants: consistent links, no stumps, matching cross-references.
func checkInvariants(t *testing.T, e *Engine) {
	t.Helper()

	dump := e.dumpString()

	// redirected trie
	nodes, terminals := 0, 0
	stack := []handle{e.redirected.root}
	for len(stack) > 0 {
		h := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		nodes++

		n := e.redirected.node(h)
		for idx := range uint8(alphabet.Size) {
			c := n.children[idx]
			require.Equal(t, c != 0, n.kids.Test(uint(idx)), "redirected [%d] occupancy of %d\n%s", h, idx, dump)
			if c == 0 {
				continue
			}

			cn := e.redirected.node(c)
			require.Equal(t, h, cn.parent, "redirected [%d] parent\n%s", c, dump)
			require.Equal(t, idx, cn.label, "redirected [%d] label\n%s", c, dump)
			require.Equal(t, n.depth+1, cn.depth, "redirected [%d] depth\n%s", c, dump)
			stack = append(stack, c)
		}

		if h != e.redirected.root {
			require.True(t, n.childCount() > 0 || n.target != 0, "redirected stump [%d]\n%s", h, dump)
		}

		if n.target == 0 {
			require.Empty(t, n.prefix, "redirected [%d] prefix without target\n%s", h, dump)
			continue
		}

		terminals++
		require.Len(t, n.prefix, n.depth, "redirected [%d] prefix length\n%s", h, dump)

		back, ok := e.targets.node(n.target).refs.Get(n.slot)
		require.True(t, ok, "redirected [%d] slot %d is a hole\n%s", h, n.slot, dump)
		require.Equal(t, h, back, "redirected [%d] back-reference\n%s", h, dump)
	}

	require.Equal(t, e.redirected.Len(), nodes, "redirected nodes reachable\n%s", dump)
	require.Equal(t, e.size, terminals, "size\n%s", dump)

	// target trie
	nodes, backRefs := 0, 0
	stack = append(stack, e.targets.root)
	for len(stack) > 0 {
		h := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		nodes++

		n := e.targets.node(h)
		for idx := range uint8(alphabet.Size) {
			c := n.children[idx]
			require.Equal(t, c != 0, n.kids.Test(uint(idx)), "target [%d] occupancy of %d\n%s", h, idx, dump)
			if c == 0 {
				continue
			}

			cn := e.targets.node(c)
			require.Equal(t, h, cn.parent, "target [%d] parent\n%s", c, dump)
			require.Equal(t, idx, cn.label, "target [%d] label\n%s", c, dump)
			require.Equal(t, n.depth+1, cn.depth, "target [%d] depth\n%s", c, dump)
			stack = append(stack, c)
		}

		if h != e.targets.root {
			require.True(t, n.childCount() > 0 || n.isTarget(), "target stump [%d]\n%s", h, dump)
		}

		if !n.isTarget() {
			require.Empty(t, n.prefix, "target [%d] prefix without forwarders\n%s", h, dump)
			continue
		}
		require.Len(t, n.prefix, n.depth, "target [%d] prefix length\n%s", h, dump)

		for i, r := range n.refs.All() {
			backRefs++
			rn := e.redirected.node(r)
			require.Equal(t, h, rn.target, "target [%d] ref %d\n%s", h, r, dump)
			require.Equal(t, i, rn.slot, "target [%d] ref %d slot\n%s", h, r, dump)
		}
	}

	require.Equal(t, e.targets.Len(), nodes, "target nodes reachable\n%s", dump)
	require.Equal(t, e.size, backRefs, "back-references\n%s", dump)
}
