// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package phfwd

// Clone returns a deep copy of e.
//
// The copy is rebuilt from the redirections, it is compact:
// no back-reference holes and no recycled node slots.
func (e *Engine) Clone() *Engine {
	c := New()
	if e == nil {
		return c
	}

	for from, to := range e.All() {
		// already validated, can't fail
		if err := c.Add(from, to); err != nil {
			panic(err)
		}
	}

	return c
}
