// SPDX-License-Identifier: MIT

package fib

import (
	"fmt"
	"math"
)

// greetingIndex is the index the hello-world drill prints.
const greetingIndex = 10

// Fib returns fib(n) with fib(0) = fib(1) = 1.
//
// Errors:
//   - ErrNegative if n < 0.
//   - ErrOverflow if fib(n) exceeds math.MaxInt.
//
// Complexity: O(n) time, O(1) memory.
func Fib(n int) (int, error) {
	if n < 0 {
		return 0, ErrNegative
	}

	prev, curr := 1, 1 // fib(0), fib(1)
	for i := 2; i <= n; i++ {
		if prev > math.MaxInt-curr {
			return 0, fmt.Errorf("fib(%d): %w", n, ErrOverflow)
		}
		prev, curr = curr, prev+curr
	}

	return curr, nil
}

// Sequence returns fib(0), ..., fib(n-1).
// n == 0 yields an empty slice.
func Sequence(n int) ([]int, error) {
	if n < 0 {
		return nil, ErrNegative
	}

	out := make([]int, 0, n)
	prev, curr := 1, 1
	for i := 0; i < n; i++ {
		if i < 2 {
			out = append(out, 1)
			continue
		}
		if prev > math.MaxInt-curr {
			return nil, fmt.Errorf("fib sequence(%d): %w", n, ErrOverflow)
		}
		prev, curr = curr, prev+curr
		out = append(out, curr)
	}

	return out, nil
}

// Greeting returns the hello-world line: "Hello, <name> <fib(10)>".
func Greeting(name string) string {
	v, _ := Fib(greetingIndex) // fixed small index, cannot fail

	return fmt.Sprintf("Hello, %s %d", name, v)
}
