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
	"time"

	"github.com/spf13/cobra"

	"github.com/AleutianAI/seqbench/cmd/seqbench/config"
	"github.com/AleutianAI/seqbench/loops"
)

// runLoops times every summation strategy over one shared random slice and
// prints an aligned table to stdout.
func runLoops(cmd *cobra.Command, args []string) error {
	count := loopsCount
	if count == 0 {
		count = config.Global.Loops.Count
	}
	if count <= 0 {
		return fmt.Errorf("count must be positive, got %d", count)
	}

	runs := loopsRuns
	if runs == 0 {
		runs = config.Global.Loops.Runs
	}

	seed := seedValue
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	logger.Info("starting loop benchmark", "count", count, "runs", runs, "seed", seed)

	v := loops.Fill(rand.New(rand.NewSource(seed)), count)

	runner := loops.NewRunner()
	runner.SetLogger(logger.Slog())

	results, err := runner.Run(cmd.Context(), v, runs)
	if err != nil {
		return fmt.Errorf("loop benchmark failed: %w", err)
	}

	return loops.WriteTable(os.Stdout, results)
}
