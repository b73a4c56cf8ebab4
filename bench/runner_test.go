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
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AleutianAI/seqbench/pool"
	"github.com/AleutianAI/seqbench/sequence"
)

func testRunner(t *testing.T, poolSize int) *Runner {
	t.Helper()
	values := pool.Generate(rand.New(rand.NewSource(1)), poolSize)
	return NewRunner(pool.New(values), sequence.DefaultRegistry())
}

func TestRunTrial_ClassicExample(t *testing.T) {
	runner := testRunner(t, 0)
	for name := range map[string]struct{}{sequence.VariantVector: {}, sequence.VariantList: {}} {
		t.Run(name, func(t *testing.T) {
			seq, err := sequence.DefaultRegistry().New(name)
			require.NoError(t, err)

			duration, err := runner.RunTrial(seq, []int{5, 1, 4, 2}, Plan{1, 2, 0, 0})
			require.NoError(t, err)
			assert.GreaterOrEqual(t, duration, time.Duration(0))
			assert.True(t, seq.Empty(), "trial must drain the sequence")
		})
	}
}

func TestRunTrial_ValuesTooSmall(t *testing.T) {
	runner := testRunner(t, 0)
	seq := sequence.NewArray()

	_, err := runner.RunTrial(seq, []int{1, 2}, Plan{0, 0, 0})
	assert.ErrorIs(t, err, ErrPoolTooSmall)
	assert.True(t, seq.Empty(), "failed precondition must not mutate the sequence")
}

func TestRunTrial_EmptyPlan(t *testing.T) {
	runner := testRunner(t, 0)

	duration, err := runner.RunTrial(sequence.NewList(), nil, Plan{})
	require.NoError(t, err)
	assert.GreaterOrEqual(t, duration, time.Duration(0))
}

func TestRunAveraged(t *testing.T) {
	runner := testRunner(t, 256)

	t.Run("returns requested repetitions", func(t *testing.T) {
		result, err := runner.RunAveraged(context.Background(), sequence.VariantVector, 100, 3, 7)
		require.NoError(t, err)

		assert.Equal(t, sequence.VariantVector, result.Variant)
		assert.Equal(t, 100, result.Size)
		assert.Equal(t, 3, result.Runs)
		assert.Len(t, result.Samples, 3)
		assert.LessOrEqual(t, result.Min, result.Mean)
		assert.LessOrEqual(t, result.Mean, result.Max)
	})

	t.Run("size zero is a valid empty trial", func(t *testing.T) {
		result, err := runner.RunAveraged(context.Background(), sequence.VariantList, 0, 3, 7)
		require.NoError(t, err)
		assert.Equal(t, 0, result.Size)
		assert.GreaterOrEqual(t, result.Mean, time.Duration(0))
	})

	t.Run("unknown variant", func(t *testing.T) {
		_, err := runner.RunAveraged(context.Background(), "rope", 10, 1, 7)
		assert.ErrorIs(t, err, sequence.ErrNotFound)
	})

	t.Run("size exceeding pool fails before timing", func(t *testing.T) {
		_, err := runner.RunAveraged(context.Background(), sequence.VariantVector, 10_000, 1, 7)
		assert.ErrorIs(t, err, ErrPoolTooSmall)
	})

	t.Run("non-positive runs", func(t *testing.T) {
		_, err := runner.RunAveraged(context.Background(), sequence.VariantVector, 10, 0, 7)
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("nil context", func(t *testing.T) {
		_, err := runner.RunAveraged(nil, sequence.VariantVector, 10, 1, 7) //nolint:staticcheck
		assert.Error(t, err)
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := runner.RunAveraged(ctx, sequence.VariantVector, 10, 1, 7)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

// collectRows is a RowWriter that records rows in memory.
type collectRows struct {
	rows []Row
}

func (c *collectRows) WriteRow(row Row) error {
	c.rows = append(c.rows, row)
	return nil
}

func TestSweep(t *testing.T) {
	for _, parallel := range []bool{true, false} {
		name := "sequential"
		if parallel {
			name = "parallel"
		}
		t.Run(name, func(t *testing.T) {
			runner := testRunner(t, 8)
			config := &Config{RunsPerSize: 2, Parallel: parallel, Seed: 11}
			var sink collectRows

			err := runner.Sweep(context.Background(), SizeRange(3), config, &sink)
			require.NoError(t, err)

			require.Len(t, sink.rows, 3)
			for i, row := range sink.rows {
				assert.Equal(t, i, row.Size)
				assert.GreaterOrEqual(t, row.VecTime, time.Duration(0))
				assert.GreaterOrEqual(t, row.ListTime, time.Duration(0))
				assert.Equal(t, row.ListTime-row.VecTime, row.VecGain())
			}
		})
	}
}

func TestSweep_FailsFastOnPoolUnderflow(t *testing.T) {
	runner := testRunner(t, 3)
	var sink collectRows

	err := runner.Sweep(context.Background(), []int{0, 1, 10}, DefaultConfig(), &sink)
	assert.ErrorIs(t, err, ErrPoolTooSmall)
	assert.Empty(t, sink.rows, "underflow must be detected before any timing")
}

func TestSweep_InvalidConfig(t *testing.T) {
	runner := testRunner(t, 3)

	err := runner.Sweep(context.Background(), SizeRange(2), &Config{RunsPerSize: 0}, &collectRows{})
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestSizeRange(t *testing.T) {
	assert.Equal(t, []int{0, 1, 2}, SizeRange(3))
	assert.Empty(t, SizeRange(0))
	assert.Empty(t, SizeRange(-5))
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{name: "valid default config", modify: func(c *Config) {}, wantErr: false},
		{name: "zero runs", modify: func(c *Config) { c.RunsPerSize = 0 }, wantErr: true},
		{name: "negative runs", modify: func(c *Config) { c.RunsPerSize = -3 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfig()
			tt.modify(config)

			err := config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
