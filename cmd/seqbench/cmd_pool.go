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
	"path/filepath"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/AleutianAI/seqbench/cmd/seqbench/config"
	"github.com/AleutianAI/seqbench/pool"
)

// runPoolGenerate regenerates the shared integer pool snapshot so later
// sweeps all draw from the same values.
func runPoolGenerate(cmd *cobra.Command, args []string) error {
	n := config.Global.Sweep.DefaultCount
	if len(args) == 1 {
		parsed, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("n must be an integer, got %q", args[0])
		}
		n = parsed
	}
	if n <= 0 {
		return fmt.Errorf("n must be positive, got %d", n)
	}
	if n > pool.MaxPoolSize {
		return fmt.Errorf("n %d exceeds the maximum pool size of %d", n, pool.MaxPoolSize)
	}

	seed := seedValue
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	path := config.ExpandPath(config.Global.Pool.SnapshotPath)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating the snapshot directory: %w", err)
	}

	values := pool.Generate(rand.New(rand.NewSource(seed)), n)
	p := pool.New(values)

	if err := p.WriteSnapshot(path); err != nil {
		return fmt.Errorf("writing the pool snapshot: %w", err)
	}

	logger.Info("pool snapshot written", "path", path, "values", p.Size(), "seed", seed)
	return nil
}
