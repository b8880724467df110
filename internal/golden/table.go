// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package golden provides a simple and slow redirection table,
// the golden reference for the phfwd engine in tests.
package golden

import (
	"fmt"
	"slices"
	"strings"

	"github.com/gaissmai/phfwd/internal/alphabet"
)

// Table is a simple and slow redirection table, implemented as a
// slice of redirections.
type Table []Item

// Item is a redirection.
type Item struct {
	From string
	To   string
}

func (g Item) String() string {
	return fmt.Sprintf("(%s → %s)", g.From, g.To)
}

// Add inserts or replaces the redirection of from, invalid input
// is rejected like by the engine.
func (t *Table) Add(from, to string) bool {
	if !alphabet.Valid(from) || !alphabet.Valid(to) || from == to {
		return false
	}

	for i, item := range *t {
		if item.From == from {
			(*t)[i].To = to // de-dupe
			return true
		}
	}
	*t = append(*t, Item{from, to})
	return true
}

// Remove deletes all redirections with from starting with prefix.
func (t *Table) Remove(prefix string) {
	if !alphabet.Valid(prefix) {
		return
	}
	*t = slices.DeleteFunc(*t, func(item Item) bool {
		return strings.HasPrefix(item.From, prefix)
	})
}

// Get resolves number with the longest matching redirection.
func (t Table) Get(number string) []string {
	if !alphabet.Valid(number) {
		return nil
	}

	best := -1
	for i, item := range t {
		if strings.HasPrefix(number, item.From) && (best < 0 || len(item.From) > len(t[best].From)) {
			best = i
		}
	}

	if best < 0 {
		return []string{number}
	}
	return []string{t[best].To + number[len(t[best].From):]}
}

// Reverse returns all numbers redirected by any matching target prefix
// to number and number itself, sorted and unique.
func (t Table) Reverse(number string) []string {
	if !alphabet.Valid(number) {
		return nil
	}

	result := []string{number}
	for _, item := range t {
		if strings.HasPrefix(number, item.To) {
			result = append(result, item.From+number[len(item.To):])
		}
	}

	slices.SortFunc(result, alphabet.Compare)
	return slices.Compact(result)
}

// AllSorted returns all redirections sorted by From.
func (t Table) AllSorted() []Item {
	result := slices.Clone(t)
	slices.SortFunc(result, func(a, b Item) int {
		return alphabet.Compare(a.From, b.From)
	})
	return result
}

// Targets returns the number of distinct target prefixes.
func (t Table) Targets() int {
	seen := map[string]bool{}
	for _, item := range t {
		seen[item.To] = true
	}
	return len(seen)
}
