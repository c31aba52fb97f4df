// SPDX-License-Identifier: MIT

// Package stats answers the collections drill: the median and mode of a
// list of integers, plus the value → count table the mode is built from.
//
// ⚙️ Usage:
//
//	s, err := stats.Summarize([]int{1, 2, 3, 4, 5, 6, 6, 6, 7, 8})
//	// s.Median == 5.5, s.Mode == 6
//
// Policies:
//   - Inputs are never mutated; Median sorts a private copy.
//   - Empty inputs return ErrEmpty.
//   - Mode ties resolve to the largest of the equally frequent values.
package stats
