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
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/AleutianAI/seqbench/pool"
	"github.com/AleutianAI/seqbench/sequence"
)

const tracerName = "seqbench.bench"

// -----------------------------------------------------------------------------
// Runner
// -----------------------------------------------------------------------------

// Runner executes insert/remove workloads against registered sequence
// variants.
//
// Description:
//
//	Runner owns the shared integer pool and the variant registry. It runs
//	single timed trials, averages repetitions, and drives full sweeps over
//	a range of sizes. The pool is read-only, so concurrent variant workers
//	need no synchronization beyond the final join.
//
// Thread Safety: Safe for concurrent use.
type Runner struct {
	pool     *pool.Pool
	registry *sequence.Registry
	logger   *slog.Logger
}

// NewRunner creates a runner over the given pool and variant registry.
//
// Inputs:
//   - p: The shared integer pool. Must not be nil.
//   - registry: The sequence variant registry. Must not be nil.
//
// Outputs:
//   - *Runner: The new runner. Never nil.
//
// Example:
//
//	runner := bench.NewRunner(p, sequence.DefaultRegistry())
func NewRunner(p *pool.Pool, registry *sequence.Registry) *Runner {
	return &Runner{
		pool:     p,
		registry: registry,
		logger:   slog.Default(),
	}
}

// SetLogger sets the logger for the runner. Nil values are ignored.
func (r *Runner) SetLogger(logger *slog.Logger) {
	if logger != nil {
		r.logger = logger
	}
}

// RunTrial executes one timed insert/remove trial.
//
// Description:
//
//	Inserts len(plan) values into seq via InsertNumerical, in value-slice
//	order, then removes one element per plan entry until the sequence is
//	empty. The timed window spans exactly those two loops; preconditions
//	are checked before the clock starts.
//
// Inputs:
//   - seq: A fresh, empty sequence instance. Must not be nil.
//   - values: Insertion values in pool iteration order. Must have at least
//     len(plan) elements.
//   - plan: The precomputed removal plan.
//
// Outputs:
//   - time.Duration: Wall time of the insert and removal loops.
//   - error: ErrPoolTooSmall if values cannot cover the plan, or a
//     sequence removal error (indicates a corrupt plan).
//
// Thread Safety: Safe for concurrent use as long as each call owns its seq.
func (r *Runner) RunTrial(seq sequence.IntSequence, values []int, plan Plan) (time.Duration, error) {
	n := len(plan)
	if len(values) < n {
		return 0, fmt.Errorf("%w: have %d values, need %d", ErrPoolTooSmall, len(values), n)
	}

	start := time.Now()
	for i := 0; i < n; i++ {
		seq.InsertNumerical(values[i])
	}
	for _, idx := range plan {
		if err := seq.Remove(idx); err != nil {
			return 0, fmt.Errorf("removing position %d: %w", idx, err)
		}
	}
	return time.Since(start), nil
}

// RunAveraged runs repeated trials for one variant and averages them.
//
// Description:
//
//	Runs the trial `runs` times for the named variant at the given size.
//	Every repetition constructs a fresh sequence instance and derives a
//	fresh removal-plan generator from seed+repetition, so no pseudo-random
//	stream or sequence state is shared across repetitions. Plan generation
//	happens outside the timed window.
//
// Inputs:
//   - ctx: Context for cancellation. Must not be nil.
//   - variant: Registry name of the implementation to benchmark.
//   - size: Number of elements inserted and removed per trial. Must not
//     exceed the pool size.
//   - runs: Number of repetitions. Must be positive.
//   - seed: Base seed for removal-plan generation.
//
// Outputs:
//   - *Result: Averaged timing. Never nil on success.
//   - error: Non-nil on precondition violation, unknown variant, or
//     cancellation.
//
// Thread Safety: Safe for concurrent use.
//
// Example:
//
//	result, err := runner.RunAveraged(ctx, sequence.VariantVector, 10_000, 3, seed)
//	if err != nil {
//	    return fmt.Errorf("benchmarking vector: %w", err)
//	}
//	fmt.Printf("mean: %v\n", result.Mean)
func (r *Runner) RunAveraged(ctx context.Context, variant string, size, runs int, seed int64) (*Result, error) {
	if ctx == nil {
		return nil, errors.New("context must not be nil")
	}
	if runs <= 0 {
		return nil, fmt.Errorf("%w: runs must be positive", ErrInvalidConfig)
	}
	if size < 0 {
		return nil, fmt.Errorf("%w: size must be non-negative", ErrInvalidConfig)
	}
	if size > r.pool.Size() {
		return nil, fmt.Errorf("%w: pool has %d values, need %d", ErrPoolTooSmall, r.pool.Size(), size)
	}

	tracer := otel.Tracer(tracerName)
	ctx, span := tracer.Start(ctx, "bench.Runner.RunAveraged",
		trace.WithAttributes(
			attribute.String("bench.variant", variant),
			attribute.Int("bench.size", size),
			attribute.Int("bench.runs", runs),
		),
	)
	defer span.End()

	values := r.pool.Values()
	samples := make([]time.Duration, 0, runs)

	for rep := 0; rep < runs; rep++ {
		select {
		case <-ctx.Done():
			span.RecordError(ctx.Err())
			span.SetStatus(codes.Error, "benchmark cancelled")
			return nil, ctx.Err()
		default:
		}

		// Fresh generator per repetition so no single stream biases the
		// removal order across runs.
		rng := rand.New(rand.NewSource(seed + int64(rep)))
		plan := NewPlan(rng, size)

		seq, err := r.registry.New(variant)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "unknown variant")
			return nil, fmt.Errorf("constructing variant %s: %w", variant, err)
		}

		duration, err := r.RunTrial(seq, values, plan)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "trial failed")
			return nil, fmt.Errorf("trial %d of %s at size %d: %w", rep, variant, size, err)
		}
		samples = append(samples, duration)
	}

	result := summarize(variant, size, samples)
	span.SetAttributes(
		attribute.Int64("bench.result.mean_ns", int64(result.Mean)),
		attribute.Int64("bench.result.max_ns", int64(result.Max)),
	)
	span.SetStatus(codes.Ok, "benchmark completed")
	return result, nil
}

// -----------------------------------------------------------------------------
// Sweep
// -----------------------------------------------------------------------------

// SizeRange returns the sweep sizes 0..count-1.
//
// A non-positive count yields an empty range.
func SizeRange(count int) []int {
	if count <= 0 {
		return nil
	}
	sizes := make([]int, count)
	for i := range sizes {
		sizes[i] = i
	}
	return sizes
}

// Sweep benchmarks both variants at every size and streams one row each.
//
// Description:
//
//	For each size, runs RunAveraged for the contiguous-array variant and
//	the linked-list variant — concurrently when config.Parallel is set,
//	since the workers share only the read-only pool — joins the two
//	results, and writes a Row to w. The pool precondition is checked for
//	the whole size range before any timing begins: a sweep either starts
//	with enough values for its largest size or fails fast, never mid-sweep.
//
// Inputs:
//   - ctx: Context for cancellation. Must not be nil.
//   - sizes: The element counts to test, in output order.
//   - config: Harness configuration. Must validate.
//   - w: Destination for the result rows. Must not be nil.
//
// Outputs:
//   - error: Non-nil on precondition violation, benchmark failure, or row
//     write failure. Rows already written remain written.
//
// Thread Safety: Safe for concurrent use with distinct RowWriters.
func (r *Runner) Sweep(ctx context.Context, sizes []int, config *Config, w RowWriter) error {
	if ctx == nil {
		return errors.New("context must not be nil")
	}
	if err := config.Validate(); err != nil {
		return err
	}
	for _, size := range sizes {
		if size > r.pool.Size() {
			return fmt.Errorf("%w: pool has %d values, sweep needs %d", ErrPoolTooSmall, r.pool.Size(), size)
		}
	}

	tracer := otel.Tracer(tracerName)
	ctx, span := tracer.Start(ctx, "bench.Runner.Sweep",
		trace.WithAttributes(
			attribute.Int("bench.sweep.sizes", len(sizes)),
			attribute.Int("bench.sweep.runs_per_size", config.RunsPerSize),
			attribute.Bool("bench.sweep.parallel", config.Parallel),
		),
	)
	defer span.End()

	for _, size := range sizes {
		row, err := r.runSize(ctx, size, config)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "sweep failed")
			return err
		}

		if err := w.WriteRow(row); err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "row write failed")
			return fmt.Errorf("writing row for size %d: %w", size, err)
		}

		r.logger.Debug("sweep row completed",
			slog.Int("size", size),
			slog.Int64("vectime_ns", row.VecTime.Nanoseconds()),
			slog.Int64("listtime_ns", row.ListTime.Nanoseconds()),
			slog.Int64("vecgain_ns", row.VecGain().Nanoseconds()),
		)
	}

	span.SetStatus(codes.Ok, "sweep completed")
	return nil
}

// runSize benchmarks both variants at one size, joining the two workers
// before the combined row is returned.
func (r *Runner) runSize(ctx context.Context, size int, config *Config) (Row, error) {
	// Distinct seed blocks per variant so the removal streams never alias.
	base := config.Seed + int64(size)*2*int64(config.RunsPerSize)
	vecSeed := base
	listSeed := base + int64(config.RunsPerSize)

	var vecResult, listResult *Result

	if config.Parallel {
		g, gCtx := errgroup.WithContext(ctx)
		g.Go(func() error {
			result, err := r.RunAveraged(gCtx, sequence.VariantVector, size, config.RunsPerSize, vecSeed)
			vecResult = result
			return err
		})
		g.Go(func() error {
			result, err := r.RunAveraged(gCtx, sequence.VariantList, size, config.RunsPerSize, listSeed)
			listResult = result
			return err
		})
		if err := g.Wait(); err != nil {
			return Row{}, err
		}
	} else {
		var err error
		if vecResult, err = r.RunAveraged(ctx, sequence.VariantVector, size, config.RunsPerSize, vecSeed); err != nil {
			return Row{}, err
		}
		if listResult, err = r.RunAveraged(ctx, sequence.VariantList, size, config.RunsPerSize, listSeed); err != nil {
			return Row{}, err
		}
	}

	return Row{
		Size:     size,
		VecTime:  vecResult.Mean,
		ListTime: listResult.Mean,
	}, nil
}
