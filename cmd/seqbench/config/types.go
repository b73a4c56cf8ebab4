// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package config

type SeqbenchConfig struct {
	// Sweep: settings for the sequence insert/remove benchmark
	Sweep SweepConfig `yaml:"sweep"`

	// Pool: where the shared random-integer snapshot lives
	Pool PoolConfig `yaml:"pool"`

	// Loops: settings for the loop-style summation benchmark
	Loops LoopsConfig `yaml:"loops"`

	// Logging: log level and optional log directory
	Logging LoggingConfig `yaml:"logging"`
}

type SweepConfig struct {
	DefaultCount int    `yaml:"default_count"` // sizes swept when no arg is given, e.g. 10000
	MaxCount     int    `yaml:"max_count"`     // upper bound on the count argument
	RunsPerSize  int    `yaml:"runs_per_size"` // repetitions averaged per size, e.g. 3
	Parallel     bool   `yaml:"parallel"`      // time both variants concurrently
	Output       string `yaml:"output"`        // CSV output path
}

type PoolConfig struct {
	SnapshotPath string `yaml:"snapshot_path"` // e.g. ~/.seqbench/random_ints.txt
}

type LoopsConfig struct {
	Count int `yaml:"count"` // elements in the summation input
	Runs  int `yaml:"runs"`  // repetitions averaged per strategy
}

type LoggingConfig struct {
	// Level can be "debug", "info", "warn", or "error".
	Level string `yaml:"level"`
	// Dir enables JSON file logging when non-empty.
	Dir string `yaml:"dir,omitempty"`
}

func DefaultConfig() SeqbenchConfig {
	return SeqbenchConfig{
		Sweep: SweepConfig{
			DefaultCount: 10_000,
			MaxCount:     1_000_000,
			RunsPerSize:  3,
			Parallel:     true,
			Output:       "out.csv",
		},
		Pool: PoolConfig{
			SnapshotPath: "~/.seqbench/random_ints.txt",
		},
		Loops: LoopsConfig{
			Count: 10_000_000,
			Runs:  10,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}
