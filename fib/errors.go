// SPDX-License-Identifier: MIT

package fib

import "errors"

var (
	// ErrNegative indicates a negative index was requested.
	ErrNegative = errors.New("fib: index must be non-negative")

	// ErrOverflow indicates the requested value does not fit in an int.
	ErrOverflow = errors.New("fib: value overflows int")
)
