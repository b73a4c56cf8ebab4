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

// Array is the contiguous-buffer variant of IntSequence.
//
// InsertNumerical pays an O(n) scan plus an O(n) element shift; the shift is
// a linear copy over contiguous memory, which is the whole point of the
// comparison against the linked variant.
type Array struct {
	v []int
}

// NewArray returns an empty contiguous-array sequence.
func NewArray() *Array {
	return &Array{}
}

// InsertNumerical inserts n before the first element greater than n.
func (a *Array) InsertNumerical(n int) {
	i := 0
	for i < len(a.v) && a.v[i] < n {
		i++
	}
	a.v = append(a.v, 0)
	copy(a.v[i+1:], a.v[i:])
	a.v[i] = n
}

// PushFront prepends n.
func (a *Array) PushFront(n int) {
	a.v = append(a.v, 0)
	copy(a.v[1:], a.v)
	a.v[0] = n
}

// PushBack appends n.
func (a *Array) PushBack(n int) {
	a.v = append(a.v, n)
}

// Remove deletes the element at position i, compacting the buffer.
func (a *Array) Remove(i int) error {
	if i < 0 || i >= len(a.v) {
		return ErrIndexOutOfRange
	}
	copy(a.v[i:], a.v[i+1:])
	a.v = a.v[:len(a.v)-1]
	return nil
}

// Size returns the element count.
func (a *Array) Size() int {
	return len(a.v)
}

// Empty reports whether the sequence has no elements.
func (a *Array) Empty() bool {
	return len(a.v) == 0
}

// Values returns a copy of the contents in order.
func (a *Array) Values() []int {
	out := make([]int, len(a.v))
	copy(out, a.v)
	return out
}
