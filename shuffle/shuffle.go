// SPDX-License-Identifier: MIT

package shuffle

// Swapper is the minimal sequence Sequence needs.
type Swapper interface {
	Len() int
	Swap(i, j int)
}

// Sequence shuffles seq in place.
//
// Algorithm: for i = n-1 down to 1, pick j uniformly in [0, i] and swap
// i with j. Every permutation is equally likely.
//
// Complexity: O(n) time, O(1) extra space.
func Sequence(seq Swapper, opts ...Option) {
	n := seq.Len()
	if n <= 1 {
		return
	}
	r := resolve(opts).rng
	for i := n - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		seq.Swap(i, j)
	}
}

// sliceSwapper adapts a slice to Swapper without copying.
type sliceSwapper[T any] []T

func (s sliceSwapper[T]) Len() int      { return len(s) }
func (s sliceSwapper[T]) Swap(i, j int) { s[i], s[j] = s[j], s[i] }

// Slice shuffles s in place and returns it for chaining.
// Works the same for a slice of an array: the array sees the permutation.
func Slice[T any](s []T, opts ...Option) []T {
	Sequence(sliceSwapper[T](s), opts...)

	return s
}

// SwapFirstToLast exchanges the first and last elements of s.
// A single element is left as is.
func SwapFirstToLast[T any](s []T) error {
	if len(s) == 0 {
		return ErrEmpty
	}
	last := len(s) - 1
	s[0], s[last] = s[last], s[0]

	return nil
}
