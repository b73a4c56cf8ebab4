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
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/AleutianAI/seqbench/bench"
	"github.com/AleutianAI/seqbench/cmd/seqbench/config"
	"github.com/AleutianAI/seqbench/pool"
	"github.com/AleutianAI/seqbench/sequence"
)

// runSweep is the root command: sweep sequence sizes 0..count-1 and write
// one CSV row per size.
//
// All argument validation happens before the output file is created, so a
// rejected invocation never leaves a partial CSV behind.
func runSweep(cmd *cobra.Command, args []string) error {
	count, err := resolveCount(args)
	if err != nil {
		return err
	}

	seed := seedValue
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	runs := runsPerSize
	if runs == 0 {
		runs = config.Global.Sweep.RunsPerSize
	}
	parallel := config.Global.Sweep.Parallel && !sequential

	output := outputPath
	if output == "" {
		output = config.Global.Sweep.Output
	}

	runID := uuid.New().String()
	logger.Info("starting sequence sweep",
		"run_id", runID,
		"count", count,
		"runs_per_size", runs,
		"parallel", parallel,
		"seed", seed,
	)

	snapshotPath := config.ExpandPath(config.Global.Pool.SnapshotPath)
	provider := pool.NewProvider(snapshotPath)
	provider.SetLogger(logger.Slog())

	rng := rand.New(rand.NewSource(seed))
	p, err := provider.Fetch(rng, count)
	if err != nil {
		return fmt.Errorf("fetching the integer pool: %w", err)
	}

	out, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("creating output file %s: %w", output, err)
	}
	defer out.Close()

	reporter, err := bench.NewCSVReporter(out)
	if err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}

	runner := bench.NewRunner(p, sequence.DefaultRegistry())
	runner.SetLogger(logger.Slog())

	progress := newProgressWriter(reporter, count, os.Stderr)
	benchConfig := &bench.Config{RunsPerSize: runs, Parallel: parallel, Seed: seed}

	start := time.Now()
	if err := runner.Sweep(cmd.Context(), bench.SizeRange(count), benchConfig, progress); err != nil {
		progress.finish()
		return fmt.Errorf("sweep failed: %w", err)
	}
	progress.finish()

	logger.Info("sweep complete",
		"run_id", runID,
		"output", output,
		"duration", time.Since(start).Round(time.Millisecond).String(),
	)
	return nil
}

// resolveCount parses the optional positional count argument, falling back
// to the configured default and enforcing the configured maximum.
func resolveCount(args []string) (int, error) {
	count := config.Global.Sweep.DefaultCount
	if len(args) == 1 {
		parsed, err := strconv.Atoi(args[0])
		if err != nil {
			return 0, fmt.Errorf("count must be an integer, got %q", args[0])
		}
		count = parsed
	}
	if count < 0 {
		return 0, fmt.Errorf("count must be non-negative, got %d", count)
	}
	if max := config.Global.Sweep.MaxCount; max > 0 && count > max {
		return 0, fmt.Errorf("count %d exceeds the maximum of %d", count, max)
	}
	return count, nil
}
