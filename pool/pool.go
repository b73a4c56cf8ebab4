// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package pool provides the shared set of distinct random integers that
// feeds every benchmark trial.
//
// The pool is built once at startup and treated as immutable afterwards:
// trials only read it, so concurrent variant workers need no synchronization.
// Values come from a newline-delimited snapshot file when one is readable,
// otherwise from rejection sampling over the full int32 range. Keeping the
// snapshot on disk makes repeated runs reproducible; generating the values
// up front keeps their cost out of every timed window.
package pool

import (
	"bufio"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"math/rand"
	"os"
	"strconv"
)

// MaxPoolSize caps the number of distinct values a pool may hold.
//
// Rejection sampling over the int32 range converges quickly only while the
// requested count is a small fraction of the range. 2^24 values is under
// 0.4% of the 2^32-wide range, so the expected number of rejected draws
// stays negligible. Requests above the cap are refused outright rather than
// risking an effectively unbounded sampling loop.
const MaxPoolSize = 1 << 24

var (
	// ErrTooLarge indicates a requested pool size above MaxPoolSize.
	ErrTooLarge = errors.New("requested pool size exceeds maximum")

	// ErrNegativeCount indicates a negative requested pool size.
	ErrNegativeCount = errors.New("requested pool size is negative")
)

// Pool is an immutable set of distinct integers with a stable iteration
// order.
//
// Description:
//
//	Pool preserves the order values were read or generated in, so that
//	"insert pool values in pool iteration order" means the same thing on
//	every run against the same snapshot. Membership lookups are backed by a
//	set.
//
// Thread Safety: Safe for concurrent read access; the pool is never
// mutated after construction.
type Pool struct {
	values []int
	member map[int]struct{}
}

// New builds a Pool directly from values, preserving order.
//
// Description:
//
//	Duplicates are dropped, keeping the first occurrence, so the result
//	always satisfies the distinctness invariant. Useful for composing a
//	harness around an already-materialized value set; most callers go
//	through Provider.Fetch instead.
//
// Outputs:
//   - *Pool: Pool over the distinct values. Never nil.
func New(values []int) *Pool {
	distinct := make([]int, 0, len(values))
	member := make(map[int]struct{}, len(values))
	for _, v := range values {
		if _, dup := member[v]; dup {
			continue
		}
		member[v] = struct{}{}
		distinct = append(distinct, v)
	}
	return &Pool{values: distinct, member: member}
}

// newPool wraps already-distinct values without re-checking them.
func newPool(values []int) *Pool {
	member := make(map[int]struct{}, len(values))
	for _, v := range values {
		member[v] = struct{}{}
	}
	return &Pool{values: values, member: member}
}

// Values returns the pool contents in stable iteration order.
//
// The returned slice is shared, not copied; callers must treat it as
// read-only.
func (p *Pool) Values() []int {
	return p.values
}

// Size returns the number of distinct values in the pool.
func (p *Pool) Size() int {
	return len(p.values)
}

// Contains reports whether v is in the pool.
func (p *Pool) Contains(v int) bool {
	_, ok := p.member[v]
	return ok
}

// Provider fetches integer pools from a snapshot file with generation
// fallback.
//
// Thread Safety: Safe for concurrent use; Provider holds no mutable state.
type Provider struct {
	path   string
	logger *slog.Logger
}

// NewProvider creates a provider reading snapshots from the given path.
//
// Inputs:
//   - path: Snapshot file location. The file is optional; a missing or
//     unreadable file selects the generation fallback.
//
// Outputs:
//   - *Provider: The new provider. Never nil.
func NewProvider(path string) *Provider {
	return &Provider{
		path:   path,
		logger: slog.Default(),
	}
}

// SetLogger sets the logger for the provider. Nil values are ignored.
func (p *Provider) SetLogger(logger *slog.Logger) {
	if logger != nil {
		p.logger = logger
	}
}

// Fetch returns a pool of at least minCount distinct integers.
//
// Description:
//
//	Tries the snapshot file first. Any read failure — missing file,
//	malformed line, or a snapshot holding fewer than minCount distinct
//	values — silently selects the fallback: rejection-sampling minCount
//	fresh uniform values over the full int32 range. Snapshot problems are
//	logged at debug level, never treated as errors.
//
// Inputs:
//   - rng: Source of randomness for the fallback path. Must not be nil.
//   - minCount: Minimum number of distinct values required. Must be in
//     [0, MaxPoolSize].
//
// Outputs:
//   - *Pool: Pool with Size() >= minCount. Nil on error.
//   - error: ErrNegativeCount or ErrTooLarge for out-of-range requests.
//
// Thread Safety: Safe for concurrent use.
//
// Example:
//
//	provider := pool.NewProvider("random_ints.txt")
//	p, err := provider.Fetch(rand.New(rand.NewSource(time.Now().UnixNano())), 1_000_000)
func (p *Provider) Fetch(rng *rand.Rand, minCount int) (*Pool, error) {
	if minCount < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeCount, minCount)
	}
	if minCount > MaxPoolSize {
		return nil, fmt.Errorf("%w: %d > %d", ErrTooLarge, minCount, MaxPoolSize)
	}

	values, err := readSnapshot(p.path)
	if err == nil && len(values) >= minCount {
		p.logger.Debug("pool loaded from snapshot",
			slog.String("path", p.path),
			slog.Int("size", len(values)),
		)
		return newPool(values), nil
	}
	if err != nil {
		p.logger.Debug("pool snapshot unavailable, generating",
			slog.String("path", p.path),
			slog.String("reason", err.Error()),
		)
	} else {
		p.logger.Debug("pool snapshot too small, generating",
			slog.String("path", p.path),
			slog.Int("snapshot_size", len(values)),
			slog.Int("min_count", minCount),
		)
	}

	return newPool(Generate(rng, minCount)), nil
}

// Generate produces count distinct uniform integers over the int32 range.
//
// Description:
//
//	Draws values one at a time and inserts them into a set until the target
//	cardinality is reached. Convergence is fast because count is capped far
//	below the width of the sampling range (see MaxPoolSize).
//
// Inputs:
//   - rng: Source of randomness. Must not be nil.
//   - count: Number of distinct values to produce. Callers must have
//     validated count <= MaxPoolSize.
//
// Outputs:
//   - []int: count distinct values in generation order.
func Generate(rng *rand.Rand, count int) []int {
	values := make([]int, 0, count)
	seen := make(map[int]struct{}, count)
	for len(values) < count {
		v := int(int32(rng.Uint32())) // uniform over [math.MinInt32, math.MaxInt32]
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		values = append(values, v)
	}
	return values
}

// readSnapshot parses a newline-delimited integer file into distinct values.
//
// Returns an error for a missing file or any malformed line; duplicate
// lines are dropped silently.
func readSnapshot(path string) ([]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var values []int
	seen := make(map[int]struct{})
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		v, err := strconv.Atoi(line)
		if err != nil {
			return nil, fmt.Errorf("parsing snapshot line %q: %w", line, err)
		}
		if v < math.MinInt32 || v > math.MaxInt32 {
			return nil, fmt.Errorf("snapshot value %d outside int32 range", v)
		}
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		values = append(values, v)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return values, nil
}

// WriteSnapshot persists the pool to path, one decimal integer per line.
//
// Description:
//
//	Writes the pool in iteration order so that a later Fetch against the
//	same file reproduces this pool exactly.
//
// Inputs:
//   - path: Destination file. Overwritten if it exists.
//
// Outputs:
//   - error: Non-nil if the file could not be written.
func (p *Pool) WriteSnapshot(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating snapshot: %w", err)
	}

	w := bufio.NewWriter(f)
	for _, v := range p.values {
		if _, err := fmt.Fprintln(w, v); err != nil {
			f.Close()
			return fmt.Errorf("writing snapshot: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("flushing snapshot: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing snapshot: %w", err)
	}
	return nil
}
