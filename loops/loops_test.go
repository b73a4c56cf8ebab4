// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package loops

import (
	"bytes"
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStrategies_PlainSumsAgree(t *testing.T) {
	v := Fill(rand.New(rand.NewSource(1)), 10_000)

	strategies := Strategies()
	reference := strategies[0].Sum(v)
	for _, strategy := range strategies[:4] {
		assert.Equal(t, reference, strategy.Sum(v), "strategy %s diverged", strategy.Name)
	}
}

func TestStrategies_KnownSums(t *testing.T) {
	v := []int64{3, -4, 16, 0}

	for _, strategy := range Strategies()[:4] {
		assert.Equal(t, int64(15), strategy.Sum(v), strategy.Name)
	}

	// sqrt(3)=1, sqrt(4)=2, sqrt(16)=4, sqrt(0)=0 after truncation.
	sqrtAbs := Strategies()[4]
	assert.Equal(t, "sqrt abs", sqrtAbs.Name)
	assert.Equal(t, int64(7), sqrtAbs.Sum(v))
}

func TestFill(t *testing.T) {
	a := Fill(rand.New(rand.NewSource(9)), 100)
	b := Fill(rand.New(rand.NewSource(9)), 100)

	require.Len(t, a, 100)
	assert.Equal(t, a, b, "same seed must fill identically")
}

func TestRunner_Run(t *testing.T) {
	runner := NewRunner()
	v := Fill(rand.New(rand.NewSource(2)), 50_000)

	results, err := runner.Run(context.Background(), v, 3)
	require.NoError(t, err)
	require.Len(t, results, len(Strategies()))

	reference := results[0].Sum
	for i, result := range results {
		assert.Equal(t, Strategies()[i].Name, result.Name)
		assert.Equal(t, 3, result.Runs)
		assert.GreaterOrEqual(t, result.Mean, time.Duration(0))
		if i < 4 {
			assert.Equal(t, reference, result.Sum)
		}
	}
}

func TestRunner_RunErrors(t *testing.T) {
	runner := NewRunner()
	v := Fill(rand.New(rand.NewSource(2)), 10)

	_, err := runner.Run(context.Background(), nil, 1)
	assert.ErrorIs(t, err, ErrNoInput)

	_, err = runner.Run(context.Background(), v, 0)
	assert.Error(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = runner.Run(ctx, v, 1)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestWriteTable(t *testing.T) {
	var buf bytes.Buffer
	results := []Result{
		{Name: "indexed for", Runs: 2, Mean: 1500 * time.Microsecond, Sum: 42},
	}

	require.NoError(t, WriteTable(&buf, results))
	assert.Contains(t, buf.String(), "indexed for")
	assert.Contains(t, buf.String(), "sum=42")
}
