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
	"math/rand"
	"testing"
)

func TestNewPlan_Bounds(t *testing.T) {
	sizes := []int{1, 2, 3, 10, 100, 5000}
	for _, n := range sizes {
		for seed := int64(0); seed < 5; seed++ {
			rng := rand.New(rand.NewSource(seed))
			plan := NewPlan(rng, n)

			if len(plan) != n {
				t.Fatalf("n=%d seed=%d: len=%d, want %d", n, seed, len(plan), n)
			}
			for i, idx := range plan {
				if idx < 0 || idx >= n-i {
					t.Errorf("n=%d seed=%d: plan[%d]=%d, want [0, %d)", n, seed, i, idx, n-i)
				}
			}
			if plan[n-1] != 0 {
				t.Errorf("n=%d seed=%d: last entry = %d, want 0", n, seed, plan[n-1])
			}
			if err := plan.Validate(); err != nil {
				t.Errorf("n=%d seed=%d: Validate() = %v", n, seed, err)
			}
		}
	}
}

func TestNewPlan_Empty(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for _, n := range []int{0, -1} {
		plan := NewPlan(rng, n)
		if len(plan) != 0 {
			t.Errorf("n=%d: len=%d, want 0", n, len(plan))
		}
		if err := plan.Validate(); err != nil {
			t.Errorf("n=%d: Validate() = %v", n, err)
		}
	}
}

func TestNewPlan_Deterministic(t *testing.T) {
	a := NewPlan(rand.New(rand.NewSource(42)), 500)
	b := NewPlan(rand.New(rand.NewSource(42)), 500)

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("plans diverge at %d: %d vs %d", i, a[i], b[i])
		}
	}
}

func TestPlan_Validate(t *testing.T) {
	tests := []struct {
		name    string
		plan    Plan
		wantErr bool
	}{
		{name: "valid classic plan", plan: Plan{1, 2, 0, 0}, wantErr: false},
		{name: "single element", plan: Plan{0}, wantErr: false},
		{name: "negative entry", plan: Plan{-1, 0, 0}, wantErr: true},
		{name: "entry at shrinking bound", plan: Plan{0, 2, 0}, wantErr: true},
		{name: "nonzero last entry", plan: Plan{0, 0, 1}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.plan.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
