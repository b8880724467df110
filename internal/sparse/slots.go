// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package sparse implements a growable slot array with holes.
//
// A slot keeps its index for its whole lifetime, deleting a value
// leaves a hole instead of shifting the tail. The number of live
// values is tracked apart from the array length.
package sparse

import "iter"

// Slots is an append-only array of values with holes, the zero
// value of T marks a hole. The zero value of Slots is ready to use.
type Slots[T comparable] struct {
	Items []T
	live  int
}

// Len returns the number of slots in use, holes included.
func (s *Slots[T]) Len() int {
	return len(s.Items)
}

// Live returns the number of values, holes excluded.
func (s *Slots[T]) Live() int {
	return s.live
}

// Append stores val in a new slot and returns the slot index.
// When the backing array is full it grows to 2*cap+1.
//
// Appending the zero value of T is a programming error, it would
// be indistinguishable from a hole.
func (s *Slots[T]) Append(val T) int {
	var zero T
	if val == zero {
		panic("sparse: append of zero value")
	}

	if len(s.Items) == cap(s.Items) {
		newSlice := make([]T, len(s.Items), 2*cap(s.Items)+1)
		copy(newSlice, s.Items)
		s.Items = newSlice
	}

	s.Items = append(s.Items, val)
	s.live++

	return len(s.Items) - 1
}

// Get returns the value at slot i and true, or false for
// a hole or an index out of range.
func (s *Slots[T]) Get(i int) (T, bool) {
	var zero T
	if i < 0 || i >= len(s.Items) || s.Items[i] == zero {
		return zero, false
	}
	return s.Items[i], true
}

// DeleteAt punches a hole at slot i and reports whether
// a value was deleted.
func (s *Slots[T]) DeleteAt(i int) bool {
	var zero T
	if i < 0 || i >= len(s.Items) || s.Items[i] == zero {
		return false
	}

	s.Items[i] = zero
	s.live--

	// last value gone, release the backing array
	if s.live == 0 {
		s.Items = nil
	}

	return true
}

// Sparse reports whether the holes outnumber the values
// in a non-trivial array.
func (s *Slots[T]) Sparse() bool {
	return len(s.Items) >= 8 && 2*s.live < len(s.Items)
}

// Compact moves all values to the front, preserving their order,
// and shrinks the array. For every value that changed its slot
// moved is called with the value and its new index.
func (s *Slots[T]) Compact(moved func(val T, i int)) {
	var zero T

	j := 0
	for i, val := range s.Items {
		if val == zero {
			continue
		}
		if i != j {
			s.Items[j] = val
			if moved != nil {
				moved(val, j)
			}
		}
		j++
	}

	if j == 0 {
		s.Items = nil
		return
	}

	// new backing array, exactly sized
	compacted := make([]T, j)
	copy(compacted, s.Items[:j])
	s.Items = compacted
}

// All returns an iterator over all slot indices and values,
// holes are skipped.
func (s *Slots[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		var zero T
		for i, val := range s.Items {
			if val == zero {
				continue
			}
			if !yield(i, val) {
				return
			}
		}
	}
}
