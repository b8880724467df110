// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package alphabet maps the symbols of phone numbers to dense
// indices and back.
//
// The accepted symbols are the decimal digits followed by '*' and '#',
// in this order. The order of the indices is also the collation order
// of phone numbers, see [Compare].
package alphabet

// Size is the number of symbols, every trie node has Size child slots.
const Size = 12

// symbols in index order
const symbols = "0123456789*#"

// indexTbl maps a byte to its index+1, zero means: not a symbol.
var indexTbl = func() (tbl [256]uint8) {
	for i := range len(symbols) {
		tbl[symbols[i]] = uint8(i + 1)
	}
	return
}()

// Index returns the dense index of c and true, or false if c is not
// a symbol of the alphabet.
func Index(c byte) (uint8, bool) {
	idx := indexTbl[c]
	if idx == 0 {
		return 0, false
	}
	return idx - 1, true
}

// MustIndex, use it only on already validated numbers.
func MustIndex(c byte) uint8 {
	return indexTbl[c] - 1
}

// Symbol returns the symbol for index i, it panics if i >= Size.
func Symbol(i uint8) byte {
	return symbols[i]
}

// Valid reports whether s is a non-empty string of alphabet symbols.
func Valid(s string) bool {
	if s == "" {
		return false
	}
	for i := range len(s) {
		if indexTbl[s[i]] == 0 {
			return false
		}
	}
	return true
}

// Compare returns an integer comparing a and b symbol by symbol
// in alphabet order, a proper prefix sorts before the longer string.
// The result is -1, 0 or +1.
//
// Bytes outside the alphabet sort before all symbols, Compare is
// meant for validated numbers.
func Compare(a, b string) int {
	n := min(len(a), len(b))
	for i := range n {
		x, y := indexTbl[a[i]], indexTbl[b[i]]
		switch {
		case x < y:
			return -1
		case x > y:
			return 1
		}
	}

	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	return 0
}
