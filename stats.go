// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package phfwd

// Stats are node and reference counts of an Engine.
type Stats struct {
	Redirections    int `json:"redirections"`     // number of redirections
	Targets         int `json:"targets"`          // distinct target prefixes
	RedirectedNodes int `json:"redirected_nodes"` // nodes in the redirected trie, root included
	TargetNodes     int `json:"target_nodes"`     // nodes in the target trie, root included
	BackRefs        int `json:"back_refs"`        // live back-references
	BackRefSlots    int `json:"back_ref_slots"`   // back-reference slots, holes included
	Allocations     int `json:"allocations"`      // node allocations ever served
}

// Stats returns the current statistics of e.
func (e *Engine) Stats() Stats {
	if e == nil {
		return Stats{}
	}
	e.init()

	s := Stats{
		Redirections:    e.size,
		RedirectedNodes: e.redirected.Len(),
		TargetNodes:     e.targets.Len(),
	}

	_, rTotal := e.redirected.Stats()
	_, tTotal := e.targets.Stats()
	s.Allocations = rTotal + tTotal

	// walk the target trie for the back-reference counts
	stack := []handle{e.targets.root}
	for len(stack) > 0 {
		h := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		n := e.targets.node(h)
		if n.isTarget() {
			s.Targets++
		}
		s.BackRefs += n.refs.Live()
		s.BackRefSlots += n.refs.Len()

		for _, idx := range n.kids.All() {
			stack = append(stack, n.children[idx])
		}
	}

	return s
}
