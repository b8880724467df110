// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package arena provides handle-indexed storage for trie nodes.
//
// Nodes are addressed by a [Handle] instead of a pointer. Released
// slots go to a free list and are reused by the next allocation, a
// stale handle therefore never points to freed memory, at worst to
// a recycled node.
package arena

// Handle addresses an item in an Arena, the zero Handle is the nil handle.
type Handle uint32

// MaxItems is the default capacity limit of an Arena.
const MaxItems = 1<<31 - 1

// Arena is a slice backed item store with a free list.
// The zero value is ready to use.
//
// Pointers returned by At are invalidated by the next Alloc,
// re-fetch them after allocating.
type Arena[T any] struct {
	items []T      // items[0] is the unused nil slot
	free  []Handle // released handles, LIFO

	// Limit caps the number of live items, zero means MaxItems.
	Limit int

	live  int // currently allocated items
	total int // allocations ever served, including reused slots
}

// Alloc returns the handle of a zeroed item, or false if the
// arena is at its limit.
func (a *Arena[T]) Alloc() (Handle, bool) {
	limit := a.Limit
	if limit <= 0 || limit > MaxItems {
		limit = MaxItems
	}
	if a.live >= limit {
		return 0, false
	}

	if a.items == nil {
		a.items = make([]T, 1, 16)
	}

	a.live++
	a.total++

	// reuse released slot
	if n := len(a.free); n > 0 {
		h := a.free[n-1]
		a.free = a.free[:n-1]
		return h, true
	}

	var zero T
	a.items = append(a.items, zero)

	//nolint:gosec // len is bounded by limit
	return Handle(len(a.items) - 1), true
}

// Free resets the item at h to its zero value and releases the slot.
// Free on the nil handle is a no-op.
func (a *Arena[T]) Free(h Handle) {
	if h == 0 {
		return
	}

	var zero T
	a.items[h] = zero

	a.free = append(a.free, h)
	a.live--
}

// At returns a pointer to the item at h, it panics on the nil handle
// or a handle out of range.
func (a *Arena[T]) At(h Handle) *T {
	if h == 0 {
		panic("arena: nil handle")
	}
	return &a.items[h]
}

// Len returns the number of live items.
func (a *Arena[T]) Len() int {
	return a.live
}

// Stats returns the number of live items and the total number of
// allocations ever served by this arena.
func (a *Arena[T]) Stats() (live int, total int) {
	return a.live, a.total
}

// Reset drops all items, keeps the limit and the allocation total.
func (a *Arena[T]) Reset() {
	a.items = nil
	a.free = nil
	a.live = 0
}
