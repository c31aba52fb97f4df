// SPDX-License-Identifier: MIT

package twosum

import (
	"math"
	"sort"
)

// Find returns the first pair (i, j), i < j, with nums[i]+nums[j] == target.
//
// Algorithm Outline:
//  1. For i = 0..n-2:
//     For j = i+1..n-1:
//     if nums[i]+nums[j] == target → return (i, j).
//  2. No pair → (Pair{}, false).
//
// Sums that overflow int never match.
//
// Complexity: O(n²) time, O(1) memory.
func Find(nums []int, target int) (Pair, bool) {
	n := len(nums)
	for i := 0; i < n-1; i++ {
		x := nums[i]
		for j := i + 1; j < n; j++ {
			y := nums[j]
			if !addOverflows(x, y) && x+y == target {
				return Pair{I: i, J: j}, true
			}
		}
	}

	return Pair{}, false
}

// FindIndexed answers the same question as Find and returns the same pair.
//
// Algorithm Outline:
//  1. Index every value to the ascending list of its positions.
//  2. For i ascending, look up target-nums[i] and binary-search its
//     positions for the smallest j > i.
//  3. The first i that yields a j gives the lexicographically smallest
//     (i, j), which is exactly the pair the double loop reaches first.
//
// Complexity: O(n log n) time, O(n) memory.
func FindIndexed(nums []int, target int) (Pair, bool) {
	if len(nums) < 2 {
		return Pair{}, false
	}

	positions := make(map[int][]int, len(nums))
	for i, v := range nums {
		positions[v] = append(positions[v], i) // appended in ascending i
	}

	for i, x := range nums {
		if subOverflows(target, x) {
			continue // no int y has x+y == target
		}
		candidates, ok := positions[target-x]
		if !ok {
			continue
		}
		k := sort.SearchInts(candidates, i+1)
		if k < len(candidates) {
			return Pair{I: i, J: candidates[k]}, true
		}
	}

	return Pair{}, false
}

// addOverflows reports whether x+y wraps around int.
func addOverflows(x, y int) bool {
	return (x > 0 && y > math.MaxInt-x) || (x < 0 && y < math.MinInt-x)
}

// subOverflows reports whether t-x wraps around int.
func subOverflows(t, x int) bool {
	return (x < 0 && t > math.MaxInt+x) || (x > 0 && t < math.MinInt+x)
}

// Search dispatches to Find or FindIndexed.
// Unknown methods fall back to BruteForce.
func Search(nums []int, target int, method Method) (Pair, bool) {
	if method == Indexed {
		return FindIndexed(nums, target)
	}

	return Find(nums, target)
}

// Indices returns []int{i, j} for the first matching pair, or an empty
// (non-nil) slice when none exists.
func Indices(nums []int, target int) []int {
	p, ok := Find(nums, target)
	if !ok {
		return []int{}
	}

	return p.Slice()
}
