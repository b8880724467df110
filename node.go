// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package phfwd

import (
	"github.com/gaissmai/phfwd/internal/sparse"
)

// redirNode is a node in the trie of redirected prefixes.
type redirNode struct {
	links

	// handle of the target node in the other trie, nil if this
	// node is not a redirection terminal
	target handle

	// index of this node in the back-references of target
	slot int

	// the redirected prefix, only on terminals
	prefix string
}

func (n *redirNode) link() *links { return &n.links }

func (n *redirNode) hasPayload() bool { return n.target != 0 }

// targetNode is a node in the trie of target prefixes.
type targetNode struct {
	links

	// back-references to the redirected terminals forwarding here,
	// with holes after removals
	refs sparse.Slots[handle]

	// the target prefix, set with the first forwarder
	prefix string
}

func (n *targetNode) link() *links { return &n.links }

func (n *targetNode) hasPayload() bool { return n.refs.Live() > 0 }

// isTarget reports whether any redirection forwards to this node.
func (n *targetNode) isTarget() bool { return n.refs.Live() > 0 }
