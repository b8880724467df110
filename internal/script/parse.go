// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package script

import (
	"strings"

	"github.com/pkg/errors"
)

// ErrSyntax is returned for unknown commands and a wrong number of arguments.
var ErrSyntax = errors.New("syntax error")

// Op is the operation of a script command.
type Op int

// The script operations.
const (
	OpAdd Op = iota + 1
	OpRemove
	OpGet
	OpReverse
	OpList
	OpTree
	OpStats
	OpClear
)

var opNames = map[Op]string{
	OpAdd:     "add",
	OpRemove:  "remove",
	OpGet:     "get",
	OpReverse: "reverse",
	OpList:    "list",
	OpTree:    "tree",
	OpStats:   "stats",
	OpClear:   "clear",
}

func (op Op) String() string {
	if name, ok := opNames[op]; ok {
		return name
	}
	return "unknown"
}

// keywords and their arity, list takes an optional prefix
var keywords = map[string]struct {
	op       Op
	min, max int
}{
	"add":     {OpAdd, 2, 2},
	"remove":  {OpRemove, 1, 1},
	"del":     {OpRemove, 1, 1},
	"get":     {OpGet, 1, 1},
	"reverse": {OpReverse, 1, 1},
	"list":    {OpList, 0, 1},
	"tree":    {OpTree, 0, 0},
	"stats":   {OpStats, 0, 0},
	"clear":   {OpClear, 0, 0},
}

// Command is a parsed script line.
type Command struct {
	Line int      // line number, 1-based
	Op   Op       // operation
	Args []string // phone numbers, not yet validated
}

// Parse parses a single script line. Blank lines and comments
// yield false and no error.
//
//	add FROM TO     FROM > TO
//	remove PREFIX   del PREFIX
//	get NUMBER      NUMBER ?
//	reverse NUMBER  ? NUMBER
//	list [PREFIX]
//	tree
//	stats
//	clear
func Parse(line string, n int) (Command, bool, error) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "//") {
		return Command{}, false, nil
	}

	toks := tokenize(trimmed)
	cmd := Command{Line: n}

	// operator forms
	switch {
	case len(toks) == 3 && toks[1] == ">":
		cmd.Op, cmd.Args = OpAdd, []string{toks[0], toks[2]}
		return cmd, true, nil
	case len(toks) == 2 && toks[1] == "?":
		cmd.Op, cmd.Args = OpGet, []string{toks[0]}
		return cmd, true, nil
	case len(toks) == 2 && toks[0] == "?":
		cmd.Op, cmd.Args = OpReverse, []string{toks[1]}
		return cmd, true, nil
	}

	kw, ok := keywords[toks[0]]
	if !ok {
		return Command{}, false, errors.Wrapf(ErrSyntax, "unknown command %q", trimmed)
	}

	args := toks[1:]
	if len(args) < kw.min || len(args) > kw.max {
		return Command{}, false, errors.Wrapf(ErrSyntax, "%s: wrong number of arguments %d", toks[0], len(args))
	}

	cmd.Op, cmd.Args = kw.op, args
	return cmd, true, nil
}

// tokenize splits s at whitespace, '>' and '?' are tokens on their own.
func tokenize(s string) []string {
	var toks []string

	start := -1
	flush := func(end int) {
		if start >= 0 {
			toks = append(toks, s[start:end])
			start = -1
		}
	}

	for i := range len(s) {
		switch c := s[i]; c {
		case ' ', '\t', '\r', '\v', '\f':
			flush(i)
		case '>', '?':
			flush(i)
			toks = append(toks, s[i:i+1])
		default:
			if start < 0 {
				start = i
			}
		}
	}
	flush(len(s))

	return toks
}
