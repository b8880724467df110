// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package phfwd provides an engine for phone number prefix redirections.
//
// A redirection maps a redirected prefix to a target prefix: every number
// starting with the redirected prefix is rewritten by replacing this prefix
// with the target prefix. Phone numbers are non-empty strings over the
// symbols 0-9, '*' and '#'.
//
// The [Engine] supports:
//
//   - Add:     insert or replace a redirection
//   - Remove:  delete all redirections below a prefix
//   - Get:     resolve a number with longest-prefix-match
//   - Reverse: all numbers resolving to a number, over all matching prefixes
//
// The implementation is a pair of cross-linked tries, one indexed by the
// redirected prefixes and one indexed by the target prefixes. Every target
// terminal keeps back-references to the redirected terminals forwarding to
// it, so removal and reverse lookup need no full trie scan. Nodes live in
// arenas and are addressed by handles, all walks are iterative.
//
// The Engine is not safe for concurrent use.
package phfwd
