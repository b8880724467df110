// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package main

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/gaissmai/phfwd"
	"github.com/gaissmai/phfwd/internal/script"
)

// newLookupCommand returns the get or reverse command, evaluating
// numbers against the redirections given with --redirect.
func newLookupCommand(params *globalParams, op script.Op) (cmd *cobra.Command) {
	var redirects redirectsValue

	short := "Print the redirection of each NUMBER"
	if op == script.OpReverse {
		short = "Print all numbers redirected to each NUMBER"
	}

	cmd = &cobra.Command{
		Use:     op.String() + " NUMBER...",
		Short:   short,
		Example: `phfwd ` + op.String() + ` --redirect 12=9 --redirect 123=8 12345 945`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			e := phfwd.New()
			for _, r := range redirects {
				if err := e.Add(r.from, r.to); err != nil {
					return errors.Wrap(err, "redirect")
				}
				params.logger.WithField("from", r.from).WithField("to", r.to).Debug("add redirection")
			}

			runner := script.NewRunner(e, cmd.OutOrStdout(), script.Options{
				Format: params.output,
				Logger: params.logger,
			})

			for i, number := range args {
				if err := runner.Exec(script.Command{Line: i + 1, Op: op, Args: []string{number}}); err != nil {
					return errors.Wrapf(err, "argument %d", i+1)
				}
			}

			return nil
		},
	}

	cmd.Flags().Var(&redirects, "redirect", "redirection FROM=TO, repeatable")

	return cmd
}
