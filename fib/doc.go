// SPDX-License-Identifier: MIT

// Package fib computes the Fibonacci numbers used by the hello-world drill.
//
// The base case follows the drill, not the textbook: fib(0) = fib(1) = 1,
// so fib(10) = 89. Values are computed iteratively in O(n) time and O(1)
// memory, and overflow of int is reported instead of wrapping.
package fib
