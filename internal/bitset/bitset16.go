// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package bitset implements a small fixed size bitset, used as
// occupancy map for the child slots of a trie node.
//
// Studied [github.com/bits-and-blooms/bitset] inside out
// and rewrote the needed parts for 16 bits.
package bitset

import (
	"fmt"
	"math/bits"
)

// BitSet16 represents a fixed size bitset from [0..15]
type BitSet16 uint16

func (b BitSet16) String() string {
	return fmt.Sprint(b.All())
}

// MustSet sets the bit, bits > 15 are silently shifted out.
func (b *BitSet16) MustSet(bit uint) {
	*b |= 1 << (bit & 15)
}

// MustClear clears the bit.
func (b *BitSet16) MustClear(bit uint) {
	*b &^= 1 << (bit & 15)
}

// Test if the bit is set.
func (b BitSet16) Test(bit uint) bool {
	if bit > 15 {
		return false
	}
	return b&(1<<bit) != 0
}

// NextSet returns the next bit set from the specified start bit,
// including possibly the current bit along with an ok code.
func (b BitSet16) NextSet(bit uint) (uint, bool) {
	if bit > 15 {
		return 0, false
	}

	rest := uint16(b) >> bit
	if rest == 0 {
		return 0, false
	}
	return bit + uint(bits.TrailingZeros16(rest)), true
}

// All returns all set bits in ascending order.
func (b BitSet16) All() []uint {
	result := make([]uint, 0, b.Size())
	for w := uint16(b); w != 0; w &= w - 1 {
		result = append(result, uint(bits.TrailingZeros16(w)))
	}
	return result
}

// IsEmpty returns true if no bit is set.
func (b BitSet16) IsEmpty() bool {
	return b == 0
}

// Size is the number of set bits (popcount).
func (b BitSet16) Size() int {
	return bits.OnesCount16(uint16(b))
}
