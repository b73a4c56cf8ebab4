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
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AleutianAI/seqbench/bench"
	"github.com/AleutianAI/seqbench/cmd/seqbench/config"
)

func setTestConfig(t *testing.T) {
	t.Helper()
	old := config.Global
	config.Global = config.DefaultConfig()
	t.Cleanup(func() { config.Global = old })
}

func TestResolveCount(t *testing.T) {
	setTestConfig(t)

	tests := []struct {
		name    string
		args    []string
		want    int
		wantErr bool
	}{
		{name: "no args uses configured default", args: nil, want: 10_000},
		{name: "explicit count", args: []string{"250"}, want: 250},
		{name: "zero is a valid empty sweep", args: []string{"0"}, want: 0},
		{name: "at the maximum", args: []string{"1000000"}, want: 1_000_000},
		{name: "over the maximum", args: []string{"1000001"}, wantErr: true},
		{name: "negative", args: []string{"-5"}, wantErr: true},
		{name: "not a number", args: []string{"lots"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolveCount(tt.args)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestProgressWriter_NonTTYPassesThrough(t *testing.T) {
	sink, err := os.Create(filepath.Join(t.TempDir(), "stderr"))
	require.NoError(t, err)
	defer sink.Close()

	var collected []bench.Row
	inner := rowWriterFunc(func(row bench.Row) error {
		collected = append(collected, row)
		return nil
	})

	progress := newProgressWriter(inner, 2, sink)
	require.False(t, progress.tty, "a regular file must not be detected as a terminal")

	require.NoError(t, progress.WriteRow(bench.Row{Size: 0}))
	require.NoError(t, progress.WriteRow(bench.Row{Size: 1, VecTime: time.Microsecond}))
	progress.finish()

	require.Len(t, collected, 2)

	// No counter noise on the non-TTY stream.
	data, err := os.ReadFile(sink.Name())
	require.NoError(t, err)
	assert.Empty(t, data)
}

// rowWriterFunc adapts a function to bench.RowWriter.
type rowWriterFunc func(bench.Row) error

func (f rowWriterFunc) WriteRow(row bench.Row) error { return f(row) }

func TestLogLevel(t *testing.T) {
	setTestConfig(t)

	verbose = true
	assert.Equal(t, "DEBUG", logLevel().String())
	verbose = false

	config.Global.Logging.Level = "warn"
	assert.Equal(t, "WARN", logLevel().String())

	config.Global.Logging.Level = "nonsense"
	assert.Equal(t, "INFO", logLevel().String())
}
