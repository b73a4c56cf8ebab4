// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package main

import (
	"github.com/spf13/cobra"

	"github.com/AleutianAI/seqbench/cmd/seqbench/config"
	"github.com/AleutianAI/seqbench/pkg/logging"
)

// --- Global Command Variables ---
var (
	outputPath  string // CLI override for sweep.output
	runsPerSize int    // CLI override for sweep.runs_per_size
	sequential  bool   // disable concurrent vector/list timing
	seedValue   int64  // fixed seed for reproducible sweeps (0 = time-based)
	quiet       bool
	verbose     bool
	loopsCount  int // CLI override for loops.count
	loopsRuns   int // CLI override for loops.runs

	logger *logging.Logger

	rootCmd = &cobra.Command{
		Use:   "seqbench [count]",
		Short: "Benchmark ordered inserts and removals on array vs linked-list sequences",
		Long: `Seqbench times how long it takes to keep a sequence of integers ordered
under random inserts and removals, once with a contiguous array and once
with a doubly-linked list, and writes one CSV row per sequence size.

The optional count argument sets how many sizes to sweep (0 up to count-1).`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Load(); err != nil {
				return err
			}
			logger = logging.New(logging.Config{
				Level:   logLevel(),
				LogDir:  config.Global.Logging.Dir,
				Service: "seqbench",
				Quiet:   quiet,
			})
			return nil
		},
		RunE: runSweep, // Defined in cmd_sweep.go
	}

	// --- Loops ---
	loopsCmd = &cobra.Command{
		Use:   "loops",
		Short: "Compare loop-iteration styles for summing a large slice",
		Args:  cobra.NoArgs,
		RunE:  runLoops, // Defined in cmd_loops.go
	}

	// --- Pool ---
	poolCmd = &cobra.Command{
		Use:   "pool",
		Short: "Manage the shared random-integer pool snapshot",
	}
	poolGenerateCmd = &cobra.Command{
		Use:   "generate [n]",
		Short: "Generate a fresh pool of n distinct integers and write the snapshot",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runPoolGenerate, // Defined in cmd_pool.go
	}
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress log output on stderr")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().Int64Var(&seedValue, "seed", 0, "seed for reproducible runs (0 uses the current time)")

	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "CSV output path (default from config)")
	rootCmd.Flags().IntVarP(&runsPerSize, "runs", "r", 0, "timed repetitions per size (default from config)")
	rootCmd.Flags().BoolVar(&sequential, "sequential", false, "time the variants one after the other instead of concurrently")

	loopsCmd.Flags().IntVarP(&loopsCount, "count", "n", 0, "elements in the summation input (default from config)")
	loopsCmd.Flags().IntVarP(&loopsRuns, "runs", "r", 0, "repetitions per strategy (default from config)")

	poolCmd.AddCommand(poolGenerateCmd)
	rootCmd.AddCommand(loopsCmd)
	rootCmd.AddCommand(poolCmd)
}

// logLevel resolves the effective log level from the --verbose flag and the
// config file, in that order.
func logLevel() logging.Level {
	if verbose {
		return logging.LevelDebug
	}
	switch config.Global.Logging.Level {
	case "debug":
		return logging.LevelDebug
	case "warn":
		return logging.LevelWarn
	case "error":
		return logging.LevelError
	default:
		return logging.LevelInfo
	}
}
