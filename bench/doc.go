// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package bench measures ordered-sequence insert/remove performance.
//
// # Overview
//
// The bench package drives the classic list-vs-vector exercise: insert N
// distinct random integers into a sequence so that each lands at its sorted
// position, then remove them one at a time by random logical position. The
// same workload runs against the contiguous-array variant and the
// doubly-linked-list variant, and the timing difference per N is the
// result.
//
// # Architecture
//
//	┌────────────────────────────────────────────────────────────┐
//	│                        Harness                             │
//	├────────────────────────────────────────────────────────────┤
//	│                                                            │
//	│  ┌──────────┐      ┌──────────────┐      ┌─────────────┐  │
//	│  │   Pool   │─────▶│    Runner    │─────▶│  Reporter   │  │
//	│  │ (shared, │      │ • Plan       │      │ • CSV rows  │  │
//	│  │ distinct │      │ • RunTrial   │      │   x,vectime │  │
//	│  │   ints)  │      │ • RunAveraged│      │   listtime, │  │
//	│  └──────────┘      │ • Sweep      │      │   vecgain   │  │
//	│                    └──────────────┘      └─────────────┘  │
//	│                           │                                │
//	│                           ▼                                │
//	│                ┌─────────────────────┐                     │
//	│                │  sequence.Registry  │                     │
//	│                │  vector  │  list    │                     │
//	│                └─────────────────────┘                     │
//	│                                                            │
//	└────────────────────────────────────────────────────────────┘
//
// # Usage
//
//	runner := bench.NewRunner(p, sequence.DefaultRegistry())
//	reporter, err := bench.NewCSVReporter(out)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	err = runner.Sweep(ctx, bench.SizeRange(1000), bench.DefaultConfig(), reporter)
//
// # Measurement Discipline
//
// Removal plans and pool values are produced before the timed window opens,
// so random-number generation is never charged against a measurement. Each
// repetition re-seeds its own generator, and each trial constructs a fresh
// sequence instance, so no state crosses trial boundaries.
//
// # Thread Safety
//
// All types in this package are safe for concurrent use unless documented
// otherwise. The two variant workers for a size share only the read-only
// pool.
package bench
