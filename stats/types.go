// SPDX-License-Identifier: MIT

package stats

// Summary bundles the collections-drill answers for one list.
type Summary struct {
	Median float64
	Mode   int
	Counts map[int]int
}
