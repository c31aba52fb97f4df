// SPDX-License-Identifier: MIT

// Package bucket provides Bucket, a small generic mutable sequence, and
// generic maximum helpers.
//
// Bucket supports indexed get/set/delete/insert with Python-style negative
// indexes, forward and backward iteration, membership, and Swap, so it plugs
// straight into shuffle.Sequence.
//
//	b := bucket.New(1, 2, 3)
//	last, _ := b.At(-1) // 3
//	shuffle.Sequence(b, shuffle.WithSeed(7))
//
// Bucket is not safe for concurrent use.
package bucket
