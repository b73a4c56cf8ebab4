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
	"os"

	"github.com/mattn/go-isatty"

	"github.com/AleutianAI/seqbench/bench"
)

// progressWriter wraps a bench.RowWriter and redraws a single-line counter
// on the terminal as rows arrive. On non-TTY output (piped stderr, CI) the
// counter is suppressed and rows pass straight through.
type progressWriter struct {
	inner bench.RowWriter
	total int
	done  int
	out   *os.File
	tty   bool
}

func newProgressWriter(inner bench.RowWriter, total int, out *os.File) *progressWriter {
	return &progressWriter{
		inner: inner,
		total: total,
		out:   out,
		tty:   isatty.IsTerminal(out.Fd()) || isatty.IsCygwinTerminal(out.Fd()),
	}
}

func (p *progressWriter) WriteRow(row bench.Row) error {
	if err := p.inner.WriteRow(row); err != nil {
		return err
	}
	p.done++
	if p.tty {
		fmt.Fprintf(p.out, "\rswept %d/%d sizes", p.done, p.total)
	}
	return nil
}

// finish terminates the counter line so subsequent output starts clean.
func (p *progressWriter) finish() {
	if p.tty && p.done > 0 {
		fmt.Fprintln(p.out)
	}
}
