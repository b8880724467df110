// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package script

import (
	"encoding/json"
	"fmt"
	"iter"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"

	"github.com/gaissmai/phfwd"
)

// Format of the command output.
type Format string

// The output formats.
const (
	FormatPlain Format = "plain"
	FormatJSON  Format = "json"
	FormatTable Format = "table"
)

// Formats lists the valid output formats.
var Formats = []Format{FormatPlain, FormatJSON, FormatTable}

// ParseFormat returns the Format for s, the empty string is FormatPlain.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case "", FormatPlain:
		return FormatPlain, nil
	case FormatJSON, FormatTable:
		return f, nil
	}
	return "", errors.Errorf("unknown output format %q, want one of %v", s, Formats)
}

// redirection is the JSON form of a single redirection.
type redirection struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// printNumbers prints the result of get and reverse.
func (r *Runner) printNumbers(nums *phfwd.Numbers) error {
	switch r.opts.Format {
	case FormatJSON:
		return r.printJSON(nums.Slice())

	case FormatTable:
		table := r.newTable("#", "NUMBER")
		for i, num := range nums.All() {
			table.Append([]string{strconv.Itoa(i + 1), num})
		}
		table.Render()
		return nil

	default:
		_, err := fmt.Fprintln(r.out, strings.Join(nums.Slice(), " "))
		return err
	}
}

// printList prints the redirections in seq.
func (r *Runner) printList(seq iter.Seq2[string, string]) error {
	switch r.opts.Format {
	case FormatJSON:
		list := []redirection{}
		for from, to := range seq {
			list = append(list, redirection{from, to})
		}
		return r.printJSON(list)

	case FormatTable:
		table := r.newTable("FROM", "TO")
		for from, to := range seq {
			table.Append([]string{from, to})
		}
		table.Render()
		return nil

	default:
		// the output is a valid script again
		for from, to := range seq {
			if _, err := fmt.Fprintf(r.out, "%s > %s\n", from, to); err != nil {
				return err
			}
		}
		return nil
	}
}

// printTree prints the tree diagram, or the nested list as JSON.
// The table format has no tree representation and falls back to
// the diagram.
func (r *Runner) printTree() error {
	if r.opts.Format == FormatJSON {
		return r.printJSON(r.engine)
	}
	return r.engine.Fprint(r.out)
}

// printStats prints the engine statistics.
func (r *Runner) printStats(s phfwd.Stats) error {
	if r.opts.Format == FormatJSON {
		return r.printJSON(s)
	}

	rows := [][2]string{
		{"redirections", humanize.Comma(int64(s.Redirections))},
		{"targets", humanize.Comma(int64(s.Targets))},
		{"redirected nodes", humanize.Comma(int64(s.RedirectedNodes))},
		{"target nodes", humanize.Comma(int64(s.TargetNodes))},
		{"back-references", humanize.Comma(int64(s.BackRefs))},
		{"back-reference slots", humanize.Comma(int64(s.BackRefSlots))},
		{"allocations", humanize.Comma(int64(s.Allocations))},
	}

	if r.opts.Format == FormatTable {
		table := r.newTable("STAT", "VALUE")
		for _, row := range rows {
			table.Append(row[:])
		}
		table.Render()
		return nil
	}

	for _, row := range rows {
		if _, err := fmt.Fprintf(r.out, "%-21s %s\n", row[0]+":", row[1]); err != nil {
			return err
		}
	}
	return nil
}

func (r *Runner) printJSON(v any) error {
	enc := json.NewEncoder(r.out)
	if err := enc.Encode(v); err != nil {
		return errors.Wrap(err, "encoding json")
	}
	return nil
}

// newTable returns a borderless ASCII table writing to the output.
func (r *Runner) newTable(header ...string) *tablewriter.Table {
	table := tablewriter.NewWriter(r.out)
	table.SetHeader(header)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetBorder(false)
	table.SetColumnSeparator(" ")
	table.SetHeaderLine(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetTablePadding(" ")
	table.SetNoWhiteSpace(true)
	return table
}
