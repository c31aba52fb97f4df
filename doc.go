// SPDX-License-Identifier: MIT

// Package drills is a set of small, self-contained Go exercises, each in
// its own package with tests and runnable examples.
//
// Exercises:
//
//	twosum/   - first index pair whose values sum to a target (brute force and indexed)
//	stats/    - median, mode and value counts of an integer list
//	piglatin/ - word-by-word pig latin conversion, punctuation preserved
//	shuffle/  - seeded Fisher–Yates shuffle over any Swapper
//	fib/      - iterative Fibonacci with overflow detection
//	words/    - first word of a string or of one line from a reader
//	bucket/   - generic growable list with negative indexing and iterators
//
// Type demos:
//
//	shapes/  - sealed Shape interface, bed-size enum, orderings
//	people/  - struct with methods and a value-returning builder
//	carpark/ - enum-coloured cars and in-place filtering
//	shake/   - enum flavours and a struct with an unexported field
//	cart/    - products, discounts and checkout with zap logging
//	notes/   - open a file for appending, creating it when missing
//	emoji/   - :alias: shortcode encoding over an embedded YAML table
//
// The drills command (cmd/drills) exposes each of these as a cobra
// subcommand, configured from YAML (internal/config) and logging through
// zap (internal/logging).
package drills
