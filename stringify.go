// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package phfwd

import (
	"bytes"
	"fmt"
	"io"
	"strings"
)

// MarshalText implements the [encoding.TextMarshaler] interface,
// just a wrapper for [Engine.Fprint].
func (e *Engine) MarshalText() ([]byte, error) {
	w := new(bytes.Buffer)
	if err := e.Fprint(w); err != nil {
		return nil, err
	}

	return w.Bytes(), nil
}

// String returns a hierarchical tree diagram of the redirections
// as string, just a wrapper for [Engine.Fprint].
// If Fprint returns an error, String panics.
func (e *Engine) String() string {
	w := new(strings.Builder)
	if err := e.Fprint(w); err != nil {
		panic(err)
	}

	return w.String()
}

// Fprint writes a hierarchical tree diagram of the redirections to w.
// If w is nil, Fprint returns an error.
//
// The order from top to bottom is ascending in the order of [Compare]
// and a redirection is nested below the longest redirected prefix
// covering it.
//
//	▼
//	├─ 12 → 9
//	│  ├─ 123 → 8
//	│  └─ 12* → 0
//	└─ 5 → 77
//	   └─ 555 → 1
func (e *Engine) Fprint(w io.Writer) error {
	if w == nil {
		return fmt.Errorf("nil writer")
	}

	if e == nil || e.size == 0 {
		return nil
	}

	if _, err := fmt.Fprint(w, "▼\n"); err != nil {
		return err
	}

	return e.fprintRec(w, e.redirected.root, "")
}

// fprintRec, the output is a hierarchical tree starting with the
// direct kids of h.
func (e *Engine) fprintRec(w io.Writer, h handle, pad string) error {
	directKids := e.directKids(h)

	// symbols used in tree
	glyphe := "├─ "
	spacer := "│  "

	// for all direct kids under this node ...
	for i, kid := range directKids {
		// ... treat last kid special
		if i == len(directKids)-1 {
			glyphe = "└─ "
			spacer = "   "
		}

		from, to := e.redirection(kid)
		if _, err := fmt.Fprintf(w, "%s%s → %s\n", pad+glyphe, from, to); err != nil {
			return err
		}

		// rec-descent with this kid as new parent
		if err := e.fprintRec(w, kid, pad+spacer); err != nil {
			return err
		}
	}

	return nil
}

// directKids returns the redirected terminals below h with no
// other terminal between them and h, in ascending order.
func (e *Engine) directKids(h handle) []handle {
	var kids []handle

	// children of h, smallest symbol on top
	var stack []handle
	pushChildren := func(h handle) {
		n := e.redirected.node(h)
		all := n.kids.All()
		for i := len(all) - 1; i >= 0; i-- {
			stack = append(stack, n.children[all[i]])
		}
	}

	pushChildren(h)
	for len(stack) > 0 {
		h := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		// terminal, stop the descent here
		if e.redirected.node(h).target != 0 {
			kids = append(kids, h)
			continue
		}

		pushChildren(h)
	}

	return kids
}
