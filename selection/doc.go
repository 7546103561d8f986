// SPDX-License-Identifier: MIT

// Package selection finds order statistics (the element of a given rank in
// sorted order) without sorting the whole sequence.
//
// 🚀 What is selection?
//
//	Rank k of a sequence is the element that would sit at index k after
//	sorting it (rank 0 is the minimum). Quickselect finds it in expected
//	linear time by partitioning around random pivots and keeping only the
//	side that still contains k.
//
// ✨ Key features:
//   - SelectOne: single rank, iterative narrowing, O(n) expected.
//   - SelectMany: an arbitrary rank set in one pass, O(n + m·log m) expected
//     for m distinct ranks, instead of O(n·log n) for a full sort.
//   - Adaptive bailout: when a partition splits a range very unevenly
//     (adversarial or highly repetitive data) the affected sub-ranges are
//     sorted directly, bounding the worst case to O(n·log n).
//   - Optional fork/join parallelism for SelectMany (WithParallelism).
//   - Partition is exported: a single forward scan that keeps every element
//     equal to the pivot on the right side.
//
// ⚙️ Usage:
//
//	xs := []int{3, 1, 2, 4, 6, 5, 8, 7}
//	fourth := selection.SelectOne(xs, 3)               // 4
//	found := selection.SelectMany(xs, []int{5, 7})     // map[5:6 7:8]
//
// Contract:
//
//   - Both selectors reorder xs in place. Pass a copy to keep the original order.
//   - xs must be totally ordered: float inputs must not contain NaN
//     (see package notnan for a checked wrapper).
//   - A rank outside [0, len(xs)) or an empty xs is a programming error and
//     panics with an error matching ErrRankOutOfRange or ErrEmptySequence.
//
// Performance:
//
//   - Time:   O(n) expected (SelectOne), O(n + m·log m) expected (SelectMany),
//     O(n·log n) worst case with the sort bailout.
//   - Memory: O(1) extra for SelectOne; O(m) for SelectMany.
package selection
