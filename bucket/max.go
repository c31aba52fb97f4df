// SPDX-License-Identifier: MIT

package bucket

import "cmp"

// Max returns the largest item. Ties keep the first occurrence.
// Empty input reports false.
func Max[T cmp.Ordered](items []T) (T, bool) {
	return MaxFunc(items, cmp.Less[T])
}

// MaxFunc returns the largest item under less. Ties keep the first
// occurrence, so only a strictly greater item replaces the current best.
func MaxFunc[T any](items []T, less func(a, b T) bool) (T, bool) {
	var best T
	if len(items) == 0 {
		return best, false
	}
	best = items[0]
	for _, v := range items[1:] {
		if less(best, v) {
			best = v
		}
	}

	return best, true
}
