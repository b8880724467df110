// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package script implements a line oriented command language
// for a phone number redirection engine.
package script

import (
	"bufio"
	"context"
	"io"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/gaissmai/phfwd"
)

// maxLineLen limits a single script line, phone numbers may be long.
const maxLineLen = 16 << 20

// Options configure a Runner.
type Options struct {
	// Format of the command output, the zero value is FormatPlain.
	Format Format

	// KeepGoing continues after a failing line, all errors are
	// collected and returned together.
	KeepGoing bool

	// Logger for commands and recovered errors, nil discards.
	Logger logrus.FieldLogger
}

// Runner executes script commands against an engine.
type Runner struct {
	engine *phfwd.Engine
	out    io.Writer
	opts   Options
	log    logrus.FieldLogger
}

// NewRunner returns a Runner, command output is written to out.
// A nil engine is replaced by a new one.
func NewRunner(e *phfwd.Engine, out io.Writer, opts Options) *Runner {
	if e == nil {
		e = phfwd.New()
	}

	log := opts.Logger
	if log == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		log = discard
	}

	return &Runner{
		engine: e,
		out:    out,
		opts:   opts,
		log:    log,
	}
}

// Engine returns the engine of r.
func (r *Runner) Engine() *phfwd.Engine {
	return r.engine
}

// Run reads and executes the script from in, line by line.
//
// Without KeepGoing the first failing line aborts the run. With
// KeepGoing all line errors are returned as a *multierror.Error.
// Read errors and a canceled ctx always abort.
func (r *Runner) Run(ctx context.Context, in io.Reader) error {
	var errs *multierror.Error

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLen)

	n := 0
	for scanner.Scan() {
		n++

		if err := ctx.Err(); err != nil {
			return errors.Wrapf(err, "line %d", n)
		}

		err := r.runLine(scanner.Text(), n)
		if err == nil {
			continue
		}

		if !r.opts.KeepGoing {
			return err
		}

		r.log.WithError(err).WithField("line", n).Warn("command failed, keep going")
		errs = multierror.Append(errs, err)
	}

	if err := scanner.Err(); err != nil {
		return errors.Wrapf(err, "line %d", n+1)
	}

	return errs.ErrorOrNil()
}

// runLine parses and executes a single line.
func (r *Runner) runLine(line string, n int) error {
	cmd, ok, err := Parse(line, n)
	if err != nil {
		return errors.Wrapf(err, "line %d", n)
	}
	if !ok {
		return nil
	}

	if err := r.Exec(cmd); err != nil {
		return errors.Wrapf(err, "line %d", n)
	}
	return nil
}

// Exec executes a single command.
func (r *Runner) Exec(cmd Command) error {
	fields := logrus.Fields{"line": cmd.Line, "cmd": cmd.Op.String()}

	switch cmd.Op {
	case OpAdd:
		from, to := cmd.Args[0], cmd.Args[1]
		r.log.WithFields(fields).WithField("from", from).WithField("to", to).Debug("add redirection")

		return r.engine.Add(from, to)

	case OpRemove:
		prefix := cmd.Args[0]
		if err := validate(prefix); err != nil {
			return err
		}
		r.log.WithFields(fields).WithField("from", prefix).Debug("remove redirections")

		r.engine.Remove(prefix)
		return nil

	case OpGet, OpReverse:
		number := cmd.Args[0]
		if err := validate(number); err != nil {
			return err
		}
		r.log.WithFields(fields).WithField("from", number).Debug("lookup")

		if cmd.Op == OpReverse {
			return r.printNumbers(r.engine.Reverse(number))
		}
		return r.printNumbers(r.engine.Get(number))

	case OpList:
		seq := r.engine.All()
		if len(cmd.Args) == 1 {
			if err := validate(cmd.Args[0]); err != nil {
				return err
			}
			seq = r.engine.Covered(cmd.Args[0])
		}
		r.log.WithFields(fields).Debug("list redirections")

		return r.printList(seq)

	case OpTree:
		r.log.WithFields(fields).Debug("print tree")
		return r.printTree()

	case OpStats:
		r.log.WithFields(fields).Debug("print stats")
		return r.printStats(r.engine.Stats())

	case OpClear:
		r.log.WithFields(fields).Debug("clear")
		r.engine.Clear()
		return nil

	default:
		return errors.Wrapf(ErrSyntax, "unknown operation %d", cmd.Op)
	}
}

// validate returns a wrapped phfwd.ErrInvalidNumber for an invalid number.
func validate(number string) error {
	if !phfwd.Valid(number) {
		return errors.Wrapf(phfwd.ErrInvalidNumber, "%q", number)
	}
	return nil
}
