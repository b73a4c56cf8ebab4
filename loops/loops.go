// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package loops compares loop-iteration styles for summing a large slice.
//
// Every plain-sum strategy computes the identical total over the same input,
// so the only variable is iteration style. The computed sum is carried into
// the results so the compiler cannot discard the measured work.
package loops

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"math/rand"
	"time"
)

// DefaultRuns is the number of repetitions averaged per strategy.
const DefaultRuns = 10

// ErrNoInput indicates a run over an empty input slice.
var ErrNoInput = errors.New("input slice is empty")

// Strategy is one named way of summing a slice.
type Strategy struct {
	// Name identifies the iteration style in output tables.
	Name string

	// Sum computes the strategy's total over v.
	Sum func(v []int64) int64
}

// Strategies returns the compared iteration styles, in output order.
//
// The first four are alternative spellings of the same plain sum and must
// agree on every input; the sqrt-abs variant accumulates a transformed
// total and is expected to differ.
func Strategies() []Strategy {
	return []Strategy{
		{
			Name: "indexed for",
			Sum: func(v []int64) int64 {
				var sum int64
				for i := 0; i < len(v); i++ {
					sum += v[i]
				}
				return sum
			},
		},
		{
			Name: "range index",
			Sum: func(v []int64) int64 {
				var sum int64
				for i := range v {
					sum += v[i]
				}
				return sum
			},
		},
		{
			Name: "range value",
			Sum: func(v []int64) int64 {
				var sum int64
				for _, x := range v {
					sum += x
				}
				return sum
			},
		},
		{
			Name: "callback",
			Sum: func(v []int64) int64 {
				var sum int64
				forEach(v, func(x int64) {
					sum += x
				})
				return sum
			},
		},
		{
			Name: "sqrt abs",
			Sum: func(v []int64) int64 {
				var sum int64
				for _, x := range v {
					sum += int64(math.Sqrt(math.Abs(float64(x))))
				}
				return sum
			},
		},
	}
}

// forEach applies fn to every element. Kept as a separate function so the
// callback strategy pays a real indirect-call cost per element.
func forEach(v []int64, fn func(int64)) {
	for _, x := range v {
		fn(x)
	}
}

// Fill produces n uniform random values for the summation input.
func Fill(rng *rand.Rand, n int) []int64 {
	v := make([]int64, n)
	for i := range v {
		v[i] = int64(int32(rng.Uint32()))
	}
	return v
}

// Result is the averaged timing for one strategy.
type Result struct {
	// Name is the strategy name.
	Name string

	// Runs is the number of repetitions averaged.
	Runs int

	// Mean is the arithmetic mean duration per run.
	Mean time.Duration

	// Sum is the strategy's computed total, kept so the measured work is
	// observable output.
	Sum int64
}

// Runner times summation strategies over a shared input slice.
//
// Thread Safety: Safe for concurrent use; the input is only read.
type Runner struct {
	logger *slog.Logger
}

// NewRunner creates a summation-benchmark runner.
func NewRunner() *Runner {
	return &Runner{logger: slog.Default()}
}

// SetLogger sets the logger for the runner. Nil values are ignored.
func (r *Runner) SetLogger(logger *slog.Logger) {
	if logger != nil {
		r.logger = logger
	}
}

// Run times every strategy `runs` times over v and returns one averaged
// result per strategy, in Strategies() order.
//
// Inputs:
//   - ctx: Context for cancellation between runs. Must not be nil.
//   - v: The shared input slice. Must not be empty.
//   - runs: Repetitions per strategy. Must be positive.
//
// Outputs:
//   - []Result: One result per strategy.
//   - error: Non-nil on empty input, non-positive runs, or cancellation.
func (r *Runner) Run(ctx context.Context, v []int64, runs int) ([]Result, error) {
	if ctx == nil {
		return nil, errors.New("context must not be nil")
	}
	if len(v) == 0 {
		return nil, ErrNoInput
	}
	if runs <= 0 {
		return nil, errors.New("runs must be positive")
	}

	strategies := Strategies()
	results := make([]Result, 0, len(strategies))

	for _, strategy := range strategies {
		var total time.Duration
		var sum int64

		for run := 0; run < runs; run++ {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			default:
			}

			start := time.Now()
			sum = strategy.Sum(v)
			elapsed := time.Since(start)
			total += elapsed

			r.logger.Debug("summation run completed",
				slog.String("strategy", strategy.Name),
				slog.Int("run", run),
				slog.Int64("duration_ms", elapsed.Milliseconds()),
				slog.Int64("sum", sum),
			)
		}

		results = append(results, Result{
			Name: strategy.Name,
			Runs: runs,
			Mean: total / time.Duration(runs),
			Sum:  sum,
		})
	}

	return results, nil
}

// WriteTable renders results as an aligned text table.
func WriteTable(w io.Writer, results []Result) error {
	for _, result := range results {
		if _, err := fmt.Fprintf(w, "%-25s %10s   sum=%d\n", result.Name, result.Mean.Round(time.Microsecond), result.Sum); err != nil {
			return fmt.Errorf("writing results table: %w", err)
		}
	}
	return nil
}
