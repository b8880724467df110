// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package script

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		line string
		op   Op
		args []string
	}{
		{"add 12 34", OpAdd, []string{"12", "34"}},
		{"12 > 34", OpAdd, []string{"12", "34"}},
		{"12>34", OpAdd, []string{"12", "34"}},
		{"  *#>#*  ", OpAdd, []string{"*#", "#*"}},
		{"remove 12", OpRemove, []string{"12"}},
		{"del 12", OpRemove, []string{"12"}},
		{"get 123", OpGet, []string{"123"}},
		{"123 ?", OpGet, []string{"123"}},
		{"123?", OpGet, []string{"123"}},
		{"reverse 123", OpReverse, []string{"123"}},
		{"? 123", OpReverse, []string{"123"}},
		{"?123", OpReverse, []string{"123"}},
		{"list", OpList, []string{}},
		{"list 1", OpList, []string{"1"}},
		{"tree", OpTree, []string{}},
		{"stats", OpStats, []string{}},
		{"\tclear\t", OpClear, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			t.Parallel()

			cmd, ok, err := Parse(tt.line, 7)
			require.NoError(t, err)
			require.True(t, ok)

			assert.Equal(t, 7, cmd.Line)
			assert.Equal(t, tt.op, cmd.Op)
			assert.Equal(t, tt.args, cmd.Args)
		})
	}
}

func TestParseSkip(t *testing.T) {
	t.Parallel()

	for _, line := range []string{"", "   ", "\t", "// comment", "  // add 1 2"} {
		_, ok, err := Parse(line, 1)
		assert.NoError(t, err, "%q", line)
		assert.False(t, ok, "%q", line)
	}
}

func TestParseSyntaxError(t *testing.T) {
	t.Parallel()

	lines := []string{
		"foo",
		"add 1",
		"add 1 2 3",
		"1 > 2 > 3",
		"> 1",
		"?",
		"get",
		"del 1 2",
		"list 1 2",
		"tree 1",
		"ADD 1 2",
		"# comment",
	}

	for _, line := range lines {
		_, ok, err := Parse(line, 1)
		assert.False(t, ok, "%q", line)
		assert.True(t, errors.Is(err, ErrSyntax), "%q: %v", line, err)
	}
}

func TestTokenize(t *testing.T) {
	t.Parallel()

	assert.Nil(t, tokenize(""))
	assert.Equal(t, []string{"1", ">", "2"}, tokenize("1>2"))
	assert.Equal(t, []string{"?", "?"}, tokenize("??"))
	assert.Equal(t, []string{"a", "b"}, tokenize(" a \t b "))
}

func TestOpString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "add", OpAdd.String())
	assert.Equal(t, "clear", OpClear.String())
	assert.Equal(t, "unknown", Op(0).String())
}
