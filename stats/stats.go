// SPDX-License-Identifier: MIT

package stats

import (
	"fmt"
	"slices"
)

// Operation names used for error wrapping.
const (
	opMedian    = "Median"
	opMode      = "Mode"
	opSummarize = "Summarize"
)

func statsErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// Median returns the middle value of values once sorted. For an even count
// it is the mean of the two middle values.
//
// Complexity: O(n log n) time, O(n) memory for the sorted copy.
func Median(values []int) (float64, error) {
	n := len(values)
	if n == 0 {
		return 0, statsErrorf(opMedian, ErrEmpty)
	}

	sorted := slices.Clone(values)
	slices.Sort(sorted)

	if n%2 == 1 {
		return float64(sorted[n/2]), nil
	}
	// average in float64 so large neighbours cannot overflow int
	return (float64(sorted[n/2-1]) + float64(sorted[n/2])) / 2, nil
}

// Counts returns how many times each value occurs.
func Counts(values []int) map[int]int {
	counts := make(map[int]int, len(values))
	for _, v := range values {
		counts[v]++
	}

	return counts
}

// Mode returns the most frequent value. Among equally frequent values the
// largest one wins.
//
// Complexity: O(n) time, O(k) memory for k distinct values.
func Mode(values []int) (int, error) {
	if len(values) == 0 {
		return 0, statsErrorf(opMode, ErrEmpty)
	}

	return modeOf(Counts(values)), nil
}

// modeOf picks the mode from a non-empty count table.
func modeOf(counts map[int]int) int {
	first := true
	var mode, best int
	for v, c := range counts {
		if first || c > best || (c == best && v > mode) {
			mode, best, first = v, c, false
		}
	}

	return mode
}

// Summarize computes Median, Mode and Counts in one call.
func Summarize(values []int) (Summary, error) {
	if len(values) == 0 {
		return Summary{}, statsErrorf(opSummarize, ErrEmpty)
	}

	median, err := Median(values)
	if err != nil {
		return Summary{}, statsErrorf(opSummarize, err)
	}
	counts := Counts(values)

	return Summary{Median: median, Mode: modeOf(counts), Counts: counts}, nil
}
