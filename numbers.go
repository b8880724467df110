// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package phfwd

import (
	"fmt"
	"iter"
	"slices"
)

// Numbers is the sequence of phone numbers returned by
// [Engine.Get] and [Engine.Reverse].
//
// All methods accept a nil receiver, it behaves like an empty sequence.
type Numbers struct {
	nums []string
}

// Len returns the number of phone numbers.
func (ns *Numbers) Len() int {
	if ns == nil {
		return 0
	}
	return len(ns.nums)
}

// At returns the phone number at index i and true,
// or false if i is out of range.
func (ns *Numbers) At(i int) (string, bool) {
	if ns == nil || i < 0 || i >= len(ns.nums) {
		return "", false
	}
	return ns.nums[i], true
}

// All returns an iterator over the indices and phone numbers.
func (ns *Numbers) All() iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		if ns == nil {
			return
		}
		for i, num := range ns.nums {
			if !yield(i, num) {
				return
			}
		}
	}
}

// Slice returns a copy of the phone numbers.
func (ns *Numbers) Slice() []string {
	if ns == nil {
		return nil
	}
	return slices.Clone(ns.nums)
}

// String returns the phone numbers in square brackets,
// separated by blanks.
func (ns *Numbers) String() string {
	if ns == nil {
		return "[]"
	}
	return fmt.Sprint(ns.nums)
}
