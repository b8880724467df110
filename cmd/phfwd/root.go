// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package main

import (
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/gaissmai/phfwd/internal/script"
)

// envLogLevel overrides the default log level.
const envLogLevel = "PHFWD_LOG_LEVEL"

// globalParams are shared by all subcommands.
type globalParams struct {
	logLevel  string
	logFormat string
	format    string

	// set up in the persistent pre-run
	logger *logrus.Logger
	output script.Format
}

// NewCommand returns the root command for the phfwd CLI.
func NewCommand() (cmd *cobra.Command) {
	params := &globalParams{}

	cmd = &cobra.Command{
		Use:          "phfwd",
		Short:        "phone number redirections",
		Long:         `phfwd evaluates phone number redirections, from scripts or from the command line.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return params.setup(cmd)
		},
	}

	cmd.AddCommand(
		newRunCommand(params),
		newLookupCommand(params, script.OpGet),
		newLookupCommand(params, script.OpReverse),
		newBenchCommand(params),
	)

	cmd.PersistentFlags().StringVar(&params.logLevel, "log-level", "info", "log level: trace, debug, info, warn, error")
	cmd.PersistentFlags().StringVar(&params.logFormat, "log-format", "text", "log format: text or json")
	cmd.PersistentFlags().StringVar(&params.format, "format", "plain", "output format: plain, json or table")

	return cmd
}

// setup configures the logger and the output format from the flags.
func (p *globalParams) setup(cmd *cobra.Command) error {
	level := p.logLevel
	if env := os.Getenv(envLogLevel); env != "" && !cmd.Flag("log-level").Changed {
		level = env
	}

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return errors.Wrap(err, "log-level")
	}

	logger := logrus.New()
	logger.SetOutput(cmd.ErrOrStderr())
	logger.SetLevel(lvl)

	switch p.logFormat {
	case "text":
		logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	default:
		return errors.Errorf("log-format: unknown format %q", p.logFormat)
	}

	output, err := script.ParseFormat(p.format)
	if err != nil {
		return errors.Wrap(err, "format")
	}

	p.logger = logger
	p.output = output

	return nil
}
