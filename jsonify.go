// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package phfwd

import (
	"encoding/json"
)

// DumpListNode contains the redirection and the nested redirections
// covered by its redirected prefix, representing the engine in a
// sorted, recursive representation, especially useful for serialization.
type DumpListNode struct {
	From    string         `json:"from"`
	To      string         `json:"to"`
	Covered []DumpListNode `json:"covered,omitempty"`
}

// MarshalJSON dumps the engine as a list of nested redirections.
// The list is an array and not a map, because the order matters.
func (e *Engine) MarshalJSON() ([]byte, error) {
	list := e.DumpList()
	if list == nil {
		list = []DumpListNode{}
	}

	return json.Marshal(list)
}

// DumpList dumps the engine into a list of roots and their nested
// redirections, the same hierarchy as in [Engine.Fprint].
func (e *Engine) DumpList() []DumpListNode {
	if e == nil || e.size == 0 {
		return nil
	}

	return e.dumpListRec(e.redirected.root)
}

func (e *Engine) dumpListRec(h handle) []DumpListNode {
	directKids := e.directKids(h)
	if len(directKids) == 0 {
		return nil
	}

	nodes := make([]DumpListNode, 0, len(directKids))
	for _, kid := range directKids {
		from, to := e.redirection(kid)
		nodes = append(nodes, DumpListNode{
			From:    from,
			To:      to,
			Covered: e.dumpListRec(kid),
		})
	}

	return nodes
}
