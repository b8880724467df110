// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package golden

import (
	"slices"
	"testing"
)

func TestTableAdd(t *testing.T) {
	tbl := new(Table)

	if !tbl.Add("12", "3") {
		t.Fatal("expected Add to succeed")
	}

	// replace
	tbl.Add("12", "4")
	if len(*tbl) != 1 {
		t.Errorf("expected table length 1 after replace, got %d", len(*tbl))
	}
	if got := tbl.Get("125"); !slices.Equal(got, []string{"45"}) {
		t.Errorf("Get(125), expected [45], got %v", got)
	}

	for _, in := range [][2]string{{"", "1"}, {"1", ""}, {"1a", "2"}, {"7", "7"}} {
		if tbl.Add(in[0], in[1]) {
			t.Errorf("Add(%q, %q), expected false", in[0], in[1])
		}
	}
}

func TestTableRemove(t *testing.T) {
	tbl := Table{{"12", "3"}, {"123", "4"}, {"13", "4"}}

	tbl.Remove("12")
	if len(tbl) != 1 || tbl[0].From != "13" {
		t.Errorf("expected only 13 left, got %v", tbl)
	}

	tbl.Remove("1a")
	if len(tbl) != 1 {
		t.Errorf("invalid prefix must be a no-op, got %v", tbl)
	}
}

func TestTableGet(t *testing.T) {
	tbl := Table{{"1", "7"}, {"12", "8"}}

	tests := []struct {
		in   string
		want []string
	}{
		{"123", []string{"83"}},
		{"13", []string{"73"}},
		{"2", []string{"2"}},
		{"", nil},
	}

	for _, tt := range tests {
		if got := tbl.Get(tt.in); !slices.Equal(got, tt.want) {
			t.Errorf("Get(%q), expected %v, got %v", tt.in, tt.want, got)
		}
	}
}

func TestTableReverse(t *testing.T) {
	tbl := Table{{"1", "2"}, {"3", "21"}, {"#", "2"}}

	want := []string{"11", "21", "3", "#1"}
	if got := tbl.Reverse("21"); !slices.Equal(got, want) {
		t.Errorf("Reverse(21), expected %v, got %v", want, got)
	}

	if got := tbl.Targets(); got != 2 {
		t.Errorf("Targets, expected 2, got %d", got)
	}
}

func TestTableAllSorted(t *testing.T) {
	tbl := Table{{"#", "1"}, {"10", "1"}, {"1", "2"}, {"*", "3"}}

	var got []string
	for _, item := range tbl.AllSorted() {
		got = append(got, item.From)
	}

	want := []string{"1", "10", "*", "#"}
	if !slices.Equal(got, want) {
		t.Errorf("AllSorted, expected %v, got %v", want, got)
	}
}
