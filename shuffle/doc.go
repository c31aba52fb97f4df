// SPDX-License-Identifier: MIT

// Package shuffle permutes sequences in place with the Fisher–Yates
// algorithm.
//
// Determinism is explicit. With no options a fixed default seed is used, so
// results are reproducible; pass WithSeed or WithRand to choose the stream.
// math/rand.Rand is not goroutine-safe: do not share one *rand.Rand across
// goroutines.
//
//	xs := []string{"a", "b", "c"}
//	shuffle.Slice(xs, shuffle.WithSeed(42))
//
// Any type with Len and Swap (see Swapper) can be shuffled with Sequence.
package shuffle
