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

// node is a doubly-linked list element. Nodes are allocated individually so
// the variant pays the per-node indirection cost the benchmark is designed
// to expose.
type node struct {
	val  int
	prev *node
	next *node
}

// List is the doubly-linked variant of IntSequence.
//
// All position-based operations traverse from the front with an explicit
// loop. The traversal must stay an explicit loop: the exercise compares the
// traversal cost itself, so no skip-ahead helpers.
type List struct {
	head *node
	tail *node
	n    int
}

// NewList returns an empty doubly-linked sequence.
func NewList() *List {
	return &List{}
}

// InsertNumerical splices n in before the first element greater than n.
func (l *List) InsertNumerical(n int) {
	cur := l.head
	for cur != nil && cur.val < n {
		cur = cur.next
	}
	switch {
	case cur == nil:
		l.PushBack(n)
	case cur.prev == nil:
		l.PushFront(n)
	default:
		nd := &node{val: n, prev: cur.prev, next: cur}
		cur.prev.next = nd
		cur.prev = nd
		l.n++
	}
}

// PushFront prepends n.
func (l *List) PushFront(n int) {
	nd := &node{val: n, next: l.head}
	if l.head != nil {
		l.head.prev = nd
	} else {
		l.tail = nd
	}
	l.head = nd
	l.n++
}

// PushBack appends n.
func (l *List) PushBack(n int) {
	nd := &node{val: n, prev: l.tail}
	if l.tail != nil {
		l.tail.next = nd
	} else {
		l.head = nd
	}
	l.tail = nd
	l.n++
}

// Remove walks to position i from the front and unlinks the node there.
func (l *List) Remove(i int) error {
	if i < 0 || i >= l.n {
		return ErrIndexOutOfRange
	}
	cur := l.head
	for j := 0; j < i; j++ {
		cur = cur.next
	}
	if cur.prev != nil {
		cur.prev.next = cur.next
	} else {
		l.head = cur.next
	}
	if cur.next != nil {
		cur.next.prev = cur.prev
	} else {
		l.tail = cur.prev
	}
	l.n--
	return nil
}

// Size returns the element count.
func (l *List) Size() int {
	return l.n
}

// Empty reports whether the sequence has no elements.
func (l *List) Empty() bool {
	return l.n == 0
}

// Values returns a copy of the contents in order.
func (l *List) Values() []int {
	out := make([]int, 0, l.n)
	for cur := l.head; cur != nil; cur = cur.next {
		out = append(out, cur.val)
	}
	return out
}
