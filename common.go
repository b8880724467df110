// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package phfwd

import (
	"errors"

	"github.com/gaissmai/phfwd/internal/alphabet"
)

var (
	// ErrInvalidNumber is returned by Add for an empty number
	// or a number with symbols outside of 0-9, '*' and '#'.
	ErrInvalidNumber = errors.New("invalid phone number")

	// ErrIdenticalNumbers is returned by Add for a redirection
	// of a prefix to itself.
	ErrIdenticalNumbers = errors.New("identical phone numbers")

	// ErrAllocation is returned by Add if the node storage is exhausted.
	ErrAllocation = errors.New("node storage exhausted")
)

// Valid reports whether s is a phone number: a non-empty string
// of the symbols 0-9, '*' and '#'.
func Valid(s string) bool {
	return alphabet.Valid(s)
}

// Compare compares two phone numbers in the collation order of
// the symbols, 0 < 1 < ... < 9 < * < #, a proper prefix sorts
// before the longer number. The result is -1, 0 or +1.
func Compare(a, b string) int {
	return alphabet.Compare(a, b)
}
