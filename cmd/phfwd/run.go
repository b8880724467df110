// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package main

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/gaissmai/phfwd/internal/script"
)

// newRunCommand returns the run command, executing a script.
func newRunCommand(params *globalParams) (cmd *cobra.Command) {
	var keepGoing bool

	cmd = &cobra.Command{
		Use:   "run [FILE|-]",
		Short: "Execute a redirection script",
		Long: `Execute a redirection script, one command per line:

  add FROM TO     FROM > TO
  remove PREFIX   del PREFIX
  get NUMBER      NUMBER ?
  reverse NUMBER  ? NUMBER
  list [PREFIX]
  tree
  stats
  clear

Lines starting with // are comments. Without FILE or with -
the script is read from stdin.`,
		Example: `phfwd run --format table calls.txt`,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			in := cmd.InOrStdin()
			name := "stdin"

			if len(args) == 1 && args[0] != "-" {
				name = args[0]

				f, err := os.Open(name)
				if err != nil {
					return errors.Wrap(err, "open script")
				}
				defer f.Close()

				in = f
			}

			params.logger.WithField("script", name).Debug("run script")

			runner := script.NewRunner(nil, cmd.OutOrStdout(), script.Options{
				Format:    params.output,
				KeepGoing: keepGoing,
				Logger:    params.logger,
			})

			return errors.Wrap(runner.Run(cmd.Context(), in), name)
		},
	}

	cmd.Flags().BoolVar(&keepGoing, "keep-going", false, "continue after failing lines and report all errors")

	return cmd
}
