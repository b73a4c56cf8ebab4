// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package bench

import (
	"errors"
	"time"
)

// -----------------------------------------------------------------------------
// Errors
// -----------------------------------------------------------------------------

var (
	// ErrInvalidConfig indicates an invalid harness configuration.
	ErrInvalidConfig = errors.New("invalid benchmark configuration")

	// ErrPoolTooSmall indicates a sweep whose largest size exceeds the pool.
	ErrPoolTooSmall = errors.New("pool smaller than requested element count")

	// ErrInvalidPlan indicates a removal plan with out-of-bounds entries.
	ErrInvalidPlan = errors.New("invalid removal plan")
)

// -----------------------------------------------------------------------------
// Configuration
// -----------------------------------------------------------------------------

// DefaultRunsPerSize is the number of repetitions averaged per tested size.
const DefaultRunsPerSize = 3

// Config holds harness configuration for averaged runs and sweeps.
//
// Description:
//
//	Config controls repetition count, parallel variant execution, and the
//	base seed from which per-repetition removal-plan generators are derived.
//	Use DefaultConfig() for sensible defaults, then override fields as
//	needed.
//
// Thread Safety: Safe for concurrent read access after initialization.
type Config struct {
	// RunsPerSize is the number of repetitions averaged per size.
	// Default: 3
	RunsPerSize int

	// Parallel runs the two variant benchmarks for each size on
	// independent workers. They share only the read-only pool, so no
	// synchronization beyond the final join is needed.
	// Default: true
	Parallel bool

	// Seed is the base seed for removal-plan generators. Every repetition
	// derives its own generator from this value, so runs are reproducible
	// without any process-global random state.
	Seed int64
}

// DefaultConfig returns a configuration with default values.
//
// Outputs:
//   - *Config: Configuration with default values. Never nil.
//
// Example:
//
//	config := bench.DefaultConfig()
//	config.RunsPerSize = 5
func DefaultConfig() *Config {
	return &Config{
		RunsPerSize: DefaultRunsPerSize,
		Parallel:    true,
		Seed:        time.Now().UnixNano(),
	}
}

// Validate checks that the configuration is valid.
//
// Outputs:
//   - error: Non-nil if a field is out of range, wrapping ErrInvalidConfig.
func (c *Config) Validate() error {
	if c.RunsPerSize <= 0 {
		return errors.Join(ErrInvalidConfig, errors.New("runs per size must be positive"))
	}
	return nil
}

// -----------------------------------------------------------------------------
// Results
// -----------------------------------------------------------------------------

// Result holds the averaged timing for one variant at one size.
//
// Thread Safety: Safe for concurrent read access after creation.
type Result struct {
	// Variant is the registry name of the benchmarked implementation.
	Variant string

	// Size is the number of elements inserted and removed per trial.
	Size int

	// Runs is the number of repetitions averaged.
	Runs int

	// Mean is the arithmetic mean trial duration.
	Mean time.Duration

	// Min is the fastest trial.
	Min time.Duration

	// Max is the slowest trial.
	Max time.Duration

	// Samples holds the individual trial durations.
	Samples []time.Duration
}

// Row is one output line of a sweep: both variants at a single size.
type Row struct {
	// Size is the tested element count.
	Size int

	// VecTime is the averaged contiguous-array duration.
	VecTime time.Duration

	// ListTime is the averaged linked-list duration.
	ListTime time.Duration
}

// VecGain returns how much slower the list was: ListTime - VecTime.
//
// Positive values mean the array variant won.
func (r Row) VecGain() time.Duration {
	return r.ListTime - r.VecTime
}

// RowWriter consumes sweep rows as they are produced.
//
// Sweeps stream one row per size so partial results survive interruption of
// a long run.
type RowWriter interface {
	WriteRow(row Row) error
}

// summarize folds trial samples into a Result.
func summarize(variant string, size int, samples []time.Duration) *Result {
	result := &Result{
		Variant: variant,
		Size:    size,
		Runs:    len(samples),
		Samples: samples,
	}
	if len(samples) == 0 {
		return result
	}

	var total time.Duration
	result.Min = samples[0]
	result.Max = samples[0]
	for _, s := range samples {
		total += s
		if s < result.Min {
			result.Min = s
		}
		if s > result.Max {
			result.Max = s
		}
	}
	result.Mean = total / time.Duration(len(samples))
	return result
}
