// SPDX-License-Identifier: MIT

package bucket

import (
	"fmt"
	"iter"
	"slices"
)

// Bucket is a slice-backed mutable sequence.
// The zero value is an empty, ready-to-use bucket.
type Bucket[T any] struct {
	items []T
}

// New returns a bucket holding a copy of items.
func New[T any](items ...T) *Bucket[T] {
	return &Bucket[T]{items: slices.Clone(items)}
}

// Len returns the number of items.
func (b *Bucket[T]) Len() int { return len(b.items) }

// normalize maps a possibly negative index onto [0, n) and reports validity.
func normalize(i, n int) (int, bool) {
	if i < 0 {
		i += n
	}

	return i, i >= 0 && i < n
}

// At returns the item at i. Negative i counts from the end.
func (b *Bucket[T]) At(i int) (T, error) {
	idx, ok := normalize(i, len(b.items))
	if !ok {
		var zero T

		return zero, fmt.Errorf("At(%d): %w", i, ErrOutOfRange)
	}

	return b.items[idx], nil
}

// Set replaces the item at i. Negative i counts from the end.
func (b *Bucket[T]) Set(i int, v T) error {
	idx, ok := normalize(i, len(b.items))
	if !ok {
		return fmt.Errorf("Set(%d): %w", i, ErrOutOfRange)
	}
	b.items[idx] = v

	return nil
}

// Delete removes the item at i, shifting later items left.
func (b *Bucket[T]) Delete(i int) error {
	idx, ok := normalize(i, len(b.items))
	if !ok {
		return fmt.Errorf("Delete(%d): %w", i, ErrOutOfRange)
	}
	b.items = slices.Delete(b.items, idx, idx+1)

	return nil
}

// Insert places v before position i; i == Len() appends.
// Negative i counts from the end.
func (b *Bucket[T]) Insert(i int, v T) error {
	n := len(b.items)
	idx := i
	if idx < 0 {
		idx += n
	}
	if idx < 0 || idx > n {
		return fmt.Errorf("Insert(%d): %w", i, ErrOutOfRange)
	}
	b.items = slices.Insert(b.items, idx, v)

	return nil
}

// Append adds v at the end.
func (b *Bucket[T]) Append(v T) { b.items = append(b.items, v) }

// Swap exchanges the items at i and j. Like sort.Interface it expects valid
// indexes and panics otherwise.
func (b *Bucket[T]) Swap(i, j int) { b.items[i], b.items[j] = b.items[j], b.items[i] }

// All yields items front to back.
func (b *Bucket[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range b.items {
			if !yield(v) {
				return
			}
		}
	}
}

// Backward yields items back to front.
func (b *Bucket[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := len(b.items) - 1; i >= 0; i-- {
			if !yield(b.items[i]) {
				return
			}
		}
	}
}

// Items returns a copy of the contents.
func (b *Bucket[T]) Items() []T { return slices.Clone(b.items) }

// String formats the bucket like a slice.
func (b *Bucket[T]) String() string { return fmt.Sprint(b.items) }

// Contains reports whether v is in b.
func Contains[T comparable](b *Bucket[T], v T) bool {
	return slices.Contains(b.items, v)
}
