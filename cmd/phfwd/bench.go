// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/gaissmai/phfwd"
)

// benchSymbols for the random numbers
const benchSymbols = "0123456789"

// newBenchCommand returns the bench command, loading random
// redirections and timing the lookups.
func newBenchCommand(params *globalParams) (cmd *cobra.Command) {
	var (
		redirections int
		lookups      int
		maxLen       int
		seed         uint64
	)

	cmd = &cobra.Command{
		Use:   "bench",
		Short: "Measure add, get and reverse with random numbers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			prng := rand.New(rand.NewPCG(seed, 42))
			out := cmd.OutOrStdout()

			probes := make([]string, 0, 1024)
			for range cap(probes) {
				probes = append(probes, randomNumber(prng, maxLen+4))
			}

			e := phfwd.New()

			start := time.Now()
			failed := 0
			for range redirections {
				if err := e.Add(randomNumber(prng, maxLen), randomNumber(prng, maxLen)); err != nil {
					failed++
				}
			}
			report(cmd, "add", redirections, time.Since(start))

			params.logger.WithField("failed", failed).WithField("redirections", e.Len()).Debug("engine loaded")

			start = time.Now()
			for i := range lookups {
				e.Get(probes[i%len(probes)])
			}
			report(cmd, "get", lookups, time.Since(start))

			start = time.Now()
			for i := range lookups {
				e.Reverse(probes[i%len(probes)])
			}
			report(cmd, "reverse", lookups, time.Since(start))

			s := e.Stats()
			_, err = fmt.Fprintf(out, "%-8s %s redirections, %s nodes\n", "engine:",
				humanize.Comma(int64(s.Redirections)),
				humanize.Comma(int64(s.RedirectedNodes+s.TargetNodes)))

			return err
		},
	}

	cmd.Flags().IntVar(&redirections, "redirections", 100_000, "number of random redirections")
	cmd.Flags().IntVar(&lookups, "lookups", 1_000_000, "number of get and reverse lookups each")
	cmd.Flags().IntVar(&maxLen, "max-len", 8, "max length of the random prefixes")
	cmd.Flags().Uint64Var(&seed, "seed", 42, "seed of the random generator")

	return cmd
}

// report prints the duration of n operations and the time per operation.
func report(cmd *cobra.Command, name string, n int, d time.Duration) {
	perOp := time.Duration(0)
	if n > 0 {
		perOp = d / time.Duration(n)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%-8s %s ops in %v, %v/op\n", name+":", humanize.Comma(int64(n)), d.Round(time.Millisecond), perOp)
}

// randomNumber returns a random phone number with 1..maxLen digits.
func randomNumber(prng *rand.Rand, maxLen int) string {
	if maxLen < 1 {
		maxLen = 1
	}

	b := make([]byte, 1+prng.IntN(maxLen))
	for i := range b {
		b[i] = benchSymbols[prng.IntN(len(benchSymbols))]
	}
	return string(b)
}
