// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package sequence

import "errors"

// -----------------------------------------------------------------------------
// Errors
// -----------------------------------------------------------------------------

var (
	// ErrIndexOutOfRange indicates a removal index outside [0, Size()).
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrInsufficientValues indicates a fill request larger than the source.
	ErrInsufficientValues = errors.New("not enough values to fill sequence")
)

// -----------------------------------------------------------------------------
// IntSequence
// -----------------------------------------------------------------------------

// IntSequence is an ordered collection of integers kept sorted ascending.
//
// Description:
//
//	IntSequence abstracts over the two backing-store variants (contiguous
//	array and doubly-linked list) so that identical workload code can drive
//	both. After every InsertNumerical the collection is sorted ascending;
//	Remove(i) deletes the element at logical position i and shifts all later
//	positions down by one.
//
// Thread Safety: Implementations are NOT safe for concurrent use. Each
// benchmark trial owns its own instance.
type IntSequence interface {
	// InsertNumerical inserts n at its sorted position.
	InsertNumerical(n int)

	// PushFront prepends n without regard to ordering.
	PushFront(n int)

	// PushBack appends n without regard to ordering.
	PushBack(n int)

	// Remove deletes the element at logical position i.
	// Returns ErrIndexOutOfRange if i is not in [0, Size()).
	Remove(i int) error

	// Size returns the number of elements.
	Size() int

	// Empty reports whether the sequence has no elements.
	Empty() bool

	// Values returns a snapshot of the contents in logical order.
	// Diagnostic accessor for verification; never called inside a timed
	// window.
	Values() []int
}

// FillNumerically inserts the first n values into seq via InsertNumerical.
//
// Description:
//
//	Drives n ordered insertions from the given value slice, in slice order.
//	The sorted-ascending invariant holds after every insertion regardless of
//	the order of the source values.
//
// Inputs:
//   - seq: The sequence to fill. Must not be nil.
//   - values: Source values. Must have at least n elements.
//   - n: Number of values to insert. Must be non-negative.
//
// Outputs:
//   - error: ErrInsufficientValues if len(values) < n, nil otherwise.
//
// Example:
//
//	seq := sequence.NewArray()
//	err := sequence.FillNumerically(seq, pool.Values(), 1000)
func FillNumerically(seq IntSequence, values []int, n int) error {
	if n < 0 || len(values) < n {
		return ErrInsufficientValues
	}
	for i := 0; i < n; i++ {
		seq.InsertNumerical(values[i])
	}
	return nil
}
