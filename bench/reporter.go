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
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// csvHeader is the fixed column layout consumed by the plotting scripts.
var csvHeader = []string{"x", "vectime", "listtime", "vecgain"}

// CSVReporter streams sweep rows as CSV.
//
// Description:
//
//	Writes the header `x,vectime,listtime,vecgain` on construction and one
//	row per WriteRow call. Durations are emitted as integer nanoseconds;
//	vecgain is listtime minus vectime. Each row is flushed as soon as it is
//	written so a long sweep leaves usable partial output if interrupted.
//
// Thread Safety: NOT safe for concurrent use; sweeps write rows from a
// single goroutine after joining the variant workers.
type CSVReporter struct {
	w *csv.Writer
}

// NewCSVReporter creates a reporter and writes the CSV header.
//
// Inputs:
//   - w: Destination stream. Must not be nil.
//
// Outputs:
//   - *CSVReporter: The new reporter. Nil on error.
//   - error: Non-nil if the header could not be written.
//
// Example:
//
//	f, _ := os.Create("out.csv")
//	reporter, err := bench.NewCSVReporter(f)
func NewCSVReporter(w io.Writer) (*CSVReporter, error) {
	reporter := &CSVReporter{w: csv.NewWriter(w)}
	if err := reporter.w.Write(csvHeader); err != nil {
		return nil, fmt.Errorf("writing CSV header: %w", err)
	}
	reporter.w.Flush()
	if err := reporter.w.Error(); err != nil {
		return nil, fmt.Errorf("flushing CSV header: %w", err)
	}
	return reporter, nil
}

// WriteRow appends one sweep row.
//
// Outputs:
//   - error: Non-nil if the row could not be written or flushed.
func (r *CSVReporter) WriteRow(row Row) error {
	record := []string{
		strconv.Itoa(row.Size),
		strconv.FormatInt(row.VecTime.Nanoseconds(), 10),
		strconv.FormatInt(row.ListTime.Nanoseconds(), 10),
		strconv.FormatInt(row.VecGain().Nanoseconds(), 10),
	}
	if err := r.w.Write(record); err != nil {
		return fmt.Errorf("writing CSV row: %w", err)
	}
	r.w.Flush()
	if err := r.w.Error(); err != nil {
		return fmt.Errorf("flushing CSV row: %w", err)
	}
	return nil
}
