// SPDX-License-Identifier: MIT

// Package twosum finds the first pair of positions in an integer sequence
// whose values add up to a target.
//
// 🚀 What is two-sum?
//
//	Given nums and target, return indices (i, j) with i < j such that
//	nums[i] + nums[j] == target. When several pairs qualify the answer is
//	the first one met by a double loop: outer index ascending, inner index
//	ascending over the elements after it.
//
// ✨ Strategies:
//   - BruteForce: the reference double loop. O(n²) time, O(1) memory.
//   - Indexed: value → positions index plus binary search.
//     O(n log n) time, O(n) memory. Returns exactly the pair BruteForce
//     would return, including on inputs with duplicates.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/drills/twosum"
//
//	p, ok := twosum.Find([]int{2, 7, 11, 15}, 9)
//	// p == twosum.Pair{I: 0, J: 1}, ok == true
//
// Neither strategy mutates its input.
package twosum
