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
	"fmt"
	"math/rand"
)

// Plan is a precomputed removal order: Plan[i] is the logical position to
// remove on step i, while the sequence still holds n-i elements.
//
// Plans are generated before the timed window opens so that random-number
// generation is never charged against a measurement.
type Plan []int

// NewPlan generates a removal plan for a sequence of n elements.
//
// Description:
//
//	Each entry is drawn uniformly from the positions valid at that step:
//	Plan[i] is in [0, n-i). The final entry is always 0 because exactly one
//	element remains for the last removal.
//
// Inputs:
//   - rng: Source of randomness. Must not be nil.
//   - n: Number of elements that will be inserted and removed. Must be
//     non-negative; negative values yield an empty plan.
//
// Outputs:
//   - Plan: A valid plan of length n.
//
// Example:
//
//	rng := rand.New(rand.NewSource(seed))
//	plan := bench.NewPlan(rng, 1000)
func NewPlan(rng *rand.Rand, n int) Plan {
	if n <= 0 {
		return Plan{}
	}
	plan := make(Plan, n)
	for i := range plan {
		plan[i] = rng.Intn(n - i)
	}
	return plan
}

// Validate checks the shrinking-bounds invariant.
//
// Outputs:
//   - error: Non-nil if any entry falls outside [0, len(plan)-i), wrapping
//     ErrInvalidPlan.
func (p Plan) Validate() error {
	n := len(p)
	for i, idx := range p {
		if idx < 0 || idx >= n-i {
			return fmt.Errorf("%w: entry %d is %d, want [0, %d)", ErrInvalidPlan, i, idx, n-i)
		}
	}
	return nil
}
